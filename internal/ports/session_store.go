package ports

import (
	"context"

	"github.com/nileshvk/adhikar/internal/domain"
)

// SessionStore persists the whole session collection and the active
// session pointer. Implementations must treat corrupt or missing data
// as absent on load rather than failing.
type SessionStore interface {
	LoadSessions(ctx context.Context) ([]domain.ChatSession, error)
	SaveSessions(ctx context.Context, sessions []domain.ChatSession) error
	ActiveSessionID(ctx context.Context) (string, error)
	SetActiveSessionID(ctx context.Context, id string) error
}

type FeedbackStore interface {
	LoadFeedback(ctx context.Context) (domain.FeedbackMap, error)
	SaveFeedback(ctx context.Context, feedback domain.FeedbackMap) error
}
