package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

var _ ports.SessionStore = (*Store)(nil)

// LoadSessions returns the persisted session collection in insertion
// order. Malformed or missing data counts as empty, never as an error.
func (s *Store) LoadSessions(ctx context.Context) ([]domain.ChatSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok, err := s.get(sessionsKey)
	if err != nil || !ok {
		return []domain.ChatSession{}, nil
	}

	var entries []sessionSchema
	if err := json.Unmarshal(data, &entries); err != nil {
		return []domain.ChatSession{}, nil
	}

	sessions := make([]domain.ChatSession, 0, len(entries))
	for _, entry := range entries {
		sessions = append(sessions, fromSessionSchema(entry))
	}

	return sessions, nil
}

func (s *Store) SaveSessions(ctx context.Context, sessions []domain.ChatSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]sessionSchema, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, toSessionSchema(session))
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}

	return s.set(sessionsKey, data)
}

func (s *Store) ActiveSessionID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok, err := s.get(activeSessionKey)
	if err != nil || !ok {
		return "", nil
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *Store) SetActiveSessionID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(activeSessionKey, []byte(id))
}
