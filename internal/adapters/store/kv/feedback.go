package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

var _ ports.FeedbackStore = (*Store)(nil)

// Feedback is stored as a JSON object keyed by stringified message id,
// with null for entries the user has cleared.
func (s *Store) LoadFeedback(ctx context.Context) (domain.FeedbackMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok, err := s.get(feedbackKey)
	if err != nil || !ok {
		return domain.FeedbackMap{}, nil
	}

	var entries map[string]*string
	if err := json.Unmarshal(data, &entries); err != nil {
		return domain.FeedbackMap{}, nil
	}

	feedback := make(domain.FeedbackMap, len(entries))
	for rawID, value := range entries {
		if value == nil {
			continue
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		parsed, err := domain.ParseFeedback(*value)
		if err != nil {
			continue
		}
		feedback[id] = parsed
	}

	return feedback, nil
}

func (s *Store) SaveFeedback(ctx context.Context, feedback domain.FeedbackMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make(map[string]*string, len(feedback))
	for id, value := range feedback {
		v := string(value)
		entries[strconv.FormatInt(id, 10)] = &v
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}

	return s.set(feedbackKey, data)
}
