package ports

import (
	"context"

	"github.com/nileshvk/adhikar/internal/domain"
)

// Gateway opens stateful dialogue contexts against the external model.
type Gateway interface {
	NewConversation(ctx context.Context) (Conversation, error)
}

// Conversation is one dialogue context. Send wraps the user text
// according to the mode, forwards it with all prior turns preserved,
// and returns the model's reply text. Any transport or model failure
// comes back as an error; no retry happens at this layer.
type Conversation interface {
	Send(ctx context.Context, message string, mode domain.ChatMode) (string, error)
}
