package application

import (
	"context"
	"testing"
	"time"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Controller, *SessionManager, *fakeGateway) {
	t.Helper()

	gateway := &fakeGateway{}
	manager := newTestManager(t, &inMemoryStore{}, gateway)
	require.NoError(t, manager.Init(context.Background()))

	clock := fixedClock{now: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}
	return NewController(manager, clock, nil), manager, gateway
}

func activeMessages(t *testing.T, manager *SessionManager) []domain.Message {
	t.Helper()

	session, ok := manager.ActiveSession()
	require.True(t, ok)
	return session.Messages
}

func waitSettled(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not settle")
	}
}

func TestSubmitAppendsUserMessageBeforeAsyncWork(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "  What is Article 21?  ", domain.ModeNormal)
	require.NoError(t, err)

	// The user message is visible before the gateway call settles.
	messages := activeMessages(t, manager)
	require.Len(t, messages, 2)
	assert.Equal(t, "What is Article 21?", messages[1].Text)
	assert.Equal(t, domain.SenderUser, messages[1].Sender)
	assert.True(t, controller.IsLoading())

	gateway.last().awaitCall(t).settle("X", nil)
	waitSettled(t, done)

	messages = activeMessages(t, manager)
	require.Len(t, messages, 3)
	assert.Equal(t, "X", messages[2].Text)
	assert.Equal(t, domain.SenderAI, messages[2].Sender)
	assert.False(t, controller.IsLoading())
}

func TestSubmitSendsRawTextNotThePrompt(t *testing.T) {
	t.Parallel()

	controller, _, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "What is Article 21?", domain.ModeEmergency)
	require.NoError(t, err)
	gateway.last().awaitCall(t).settle("brief answer", nil)
	waitSettled(t, done)

	assert.Equal(t, []string{"What is Article 21?"}, gateway.last().sentMessages())
}

func TestSubmitRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	controller, manager, _ := newTestController(t)
	before := activeMessages(t, manager)

	_, err := controller.Submit(context.Background(), "", domain.ModeNormal)
	require.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = controller.Submit(context.Background(), "   \t\n", domain.ModeNormal)
	require.ErrorIs(t, err, domain.ErrEmptyMessage)

	assert.Equal(t, before, activeMessages(t, manager))
	assert.False(t, controller.IsLoading())
}

func TestSubmitRejectsSecondRequestWhileSending(t *testing.T) {
	t.Parallel()

	controller, _, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "first", domain.ModeNormal)
	require.NoError(t, err)

	_, err = controller.Submit(context.Background(), "second", domain.ModeNormal)
	require.ErrorIs(t, err, domain.ErrRequestInFlight)

	gateway.last().awaitCall(t).settle("ok", nil)
	waitSettled(t, done)

	done, err = controller.Submit(context.Background(), "third", domain.ModeNormal)
	require.NoError(t, err)
	gateway.last().awaitCall(t).settle("ok again", nil)
	waitSettled(t, done)
}

func TestGatewayFailureAppendsConnectivityMessage(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "hello", domain.ModeNormal)
	require.NoError(t, err)

	gateway.last().awaitCall(t).settle("", assert.AnError)
	waitSettled(t, done)

	messages := activeMessages(t, manager)
	require.Len(t, messages, 3)
	assert.Equal(t, "Sorry, I'm having trouble connecting. Please try again later.", messages[2].Text)
	assert.Equal(t, domain.SenderAI, messages[2].Sender)
	assert.False(t, controller.IsLoading())
}

func TestStopAppendsStopMessageAndClearsLoadingSynchronously(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	_, err := controller.Submit(context.Background(), "long question", domain.ModeNormal)
	require.NoError(t, err)
	call := gateway.last().awaitCall(t)
	require.True(t, controller.IsLoading())

	controller.Stop(context.Background())

	// Loading is already false, before the outstanding call settles.
	assert.False(t, controller.IsLoading())

	messages := activeMessages(t, manager)
	require.Len(t, messages, 3)
	assert.Equal(t, "Generation stopped.", messages[2].Text)
	assert.Equal(t, domain.SenderAI, messages[2].Sender)

	call.settle("late", nil)
}

func TestLateResultAfterStopIsDiscarded(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "question", domain.ModeNormal)
	require.NoError(t, err)
	call := gateway.last().awaitCall(t)
	controller.Stop(context.Background())

	afterStop := activeMessages(t, manager)

	call.settle("too late", nil)
	waitSettled(t, done)

	assert.Equal(t, afterStop, activeMessages(t, manager))
	assert.False(t, controller.IsLoading())
}

func TestLateFailureAfterStopIsDiscarded(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	done, err := controller.Submit(context.Background(), "question", domain.ModeNormal)
	require.NoError(t, err)
	call := gateway.last().awaitCall(t)
	controller.Stop(context.Background())

	afterStop := activeMessages(t, manager)

	call.settle("", assert.AnError)
	waitSettled(t, done)

	assert.Equal(t, afterStop, activeMessages(t, manager))
}

func TestStopWithoutOutstandingRequestIsANoOp(t *testing.T) {
	t.Parallel()

	controller, manager, _ := newTestController(t)
	before := activeMessages(t, manager)

	controller.Stop(context.Background())

	assert.Equal(t, before, activeMessages(t, manager))
	assert.False(t, controller.IsLoading())
}

func TestSubmitAllowedAgainAfterStop(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	_, err := controller.Submit(context.Background(), "first", domain.ModeNormal)
	require.NoError(t, err)
	abandoned := gateway.last().awaitCall(t)
	controller.Stop(context.Background())

	done, err := controller.Submit(context.Background(), "second", domain.ModeNormal)
	require.NoError(t, err)
	fresh := gateway.last().awaitCall(t)

	// The abandoned call settling late must not disturb the new request.
	abandoned.settle("stale", nil)
	fresh.settle("fresh", nil)
	waitSettled(t, done)

	messages := activeMessages(t, manager)
	last, ok := manager.Sessions()[0].LastMessage()
	require.True(t, ok)
	assert.Equal(t, "fresh", last.Text)
	assert.NotContains(t, messageTexts(messages), "stale")
}

func TestAttachFileAppendsPlaceholderWithoutGatewayCall(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	message, err := controller.AttachFile(context.Background(), domain.Attachment{
		Name:       "petition.pdf",
		MediaType:  "application/pdf",
		LocatorURL: "file:///tmp/petition.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, `Analyzing document: "petition.pdf"...`, message.Text)
	assert.Equal(t, domain.SenderAI, message.Sender)
	require.NotNil(t, message.File)
	assert.Equal(t, "application/pdf", message.File.MediaType)

	messages := activeMessages(t, manager)
	assert.Equal(t, message, messages[len(messages)-1])

	// Only the conversation opened by Init exists; nothing was sent.
	require.Equal(t, 1, gateway.opened())
	assert.Empty(t, gateway.last().sentMessages())
	assert.False(t, controller.IsLoading())
}

func TestMessageIDsAreUniqueWithinASession(t *testing.T) {
	t.Parallel()

	controller, manager, gateway := newTestController(t)

	for range 3 {
		done, err := controller.Submit(context.Background(), "q", domain.ModeNormal)
		require.NoError(t, err)
		gateway.last().awaitCall(t).settle("a", nil)
		waitSettled(t, done)
	}

	seen := map[int64]bool{}
	for _, message := range activeMessages(t, manager) {
		assert.False(t, seen[message.ID], "duplicate message id %d", message.ID)
		seen[message.ID] = true
	}
}

func messageTexts(messages []domain.Message) []string {
	texts := make([]string, 0, len(messages))
	for _, message := range messages {
		texts = append(texts, message.Text)
	}
	return texts
}
