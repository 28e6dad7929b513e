package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChatMode(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"normal", "emergency", "caselaw"} {
		mode, err := ParseChatMode(raw)
		require.NoError(t, err)
		assert.Equal(t, ChatMode(raw), mode)
	}

	_, err := ParseChatMode("urgent")
	require.ErrorIs(t, err, ErrUnknownChatMode)
}

func TestParseFeedback(t *testing.T) {
	t.Parallel()

	up, err := ParseFeedback("up")
	require.NoError(t, err)
	assert.Equal(t, FeedbackUp, up)

	_, err = ParseFeedback("sideways")
	require.ErrorIs(t, err, ErrUnknownFeedback)
}

func TestSessionLastMessage(t *testing.T) {
	t.Parallel()

	session := ChatSession{ID: "s-1"}
	_, ok := session.LastMessage()
	assert.False(t, ok)

	session.Messages = append(session.Messages,
		Message{ID: 1, Text: "first", Sender: SenderAI},
		Message{ID: 2, Text: "second", Sender: SenderUser},
	)
	last, ok := session.LastMessage()
	require.True(t, ok)
	assert.Equal(t, int64(2), last.ID)
}
