package domain

import "fmt"

type Feedback string

const (
	FeedbackUp   Feedback = "up"
	FeedbackDown Feedback = "down"
)

// FeedbackMap records per-message ratings, keyed by message id.
// A missing key means no rating.
type FeedbackMap map[int64]Feedback

func ParseFeedback(raw string) (Feedback, error) {
	switch Feedback(raw) {
	case FeedbackUp, FeedbackDown:
		return Feedback(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFeedback, raw)
	}
}
