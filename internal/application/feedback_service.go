package application

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

// FeedbackService records per-message ratings. Rating a message with
// the value it already has clears it.
type FeedbackService struct {
	store  ports.FeedbackStore
	logger *log.Logger
}

func NewFeedbackService(store ports.FeedbackStore, logger *log.Logger) *FeedbackService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &FeedbackService{store: store, logger: logger}
}

// Toggle applies a rating and returns the resulting value, empty when
// the rating was cleared. Write failures are logged, not surfaced.
func (s *FeedbackService) Toggle(ctx context.Context, messageID int64, value domain.Feedback) (domain.Feedback, error) {
	feedback, err := s.store.LoadFeedback(ctx)
	if err != nil {
		return "", fmt.Errorf("load feedback: %w", err)
	}

	result := value
	if feedback[messageID] == value {
		delete(feedback, messageID)
		result = ""
	} else {
		feedback[messageID] = value
	}

	if err := s.store.SaveFeedback(ctx, feedback); err != nil {
		s.logger.Printf("save feedback: %v", err)
	}

	return result, nil
}

func (s *FeedbackService) All(ctx context.Context) (domain.FeedbackMap, error) {
	feedback, err := s.store.LoadFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}

	return feedback, nil
}
