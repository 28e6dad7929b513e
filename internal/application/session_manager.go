package application

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

// SessionManager owns the working session collection, the active
// session pointer and the current gateway conversation handle. The
// in-memory collection is authoritative between persistence writes;
// storage write failures are logged and swallowed so a full or broken
// store never takes the assistant down.
type SessionManager struct {
	store   ports.SessionStore
	gateway ports.Gateway
	clock   ports.Clock
	ids     *MessageIDs
	logger  *log.Logger

	sessions []domain.ChatSession
	activeID string
	conv     ports.Conversation
}

func NewSessionManager(store ports.SessionStore, gateway ports.Gateway, clock ports.Clock, ids *MessageIDs, logger *log.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = NewMessageIDs(clock.Now().UnixMilli())
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &SessionManager{
		store:   store,
		gateway: gateway,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// Init loads persisted state. With nothing stored it creates a session
// seeded with the greeting; otherwise it resolves the active pointer,
// falling back to the most recently created session when the pointer is
// missing or stale. Either way a fresh conversation handle is opened.
func (m *SessionManager) Init(ctx context.Context) error {
	sessions, err := m.store.LoadSessions(ctx)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	m.sessions = sessions

	if len(m.sessions) == 0 {
		if _, err := m.NewSession(ctx); err != nil {
			return err
		}
		return nil
	}

	activeID, err := m.store.ActiveSessionID(ctx)
	if err != nil {
		return fmt.Errorf("load active session id: %w", err)
	}
	if !m.hasSession(activeID) {
		activeID = m.sessions[len(m.sessions)-1].ID
		if err := m.store.SetActiveSessionID(ctx, activeID); err != nil {
			m.logger.Printf("save active session id: %v", err)
		}
	}
	m.activeID = activeID

	return m.resetConversation(ctx)
}

// NewSession creates a session holding the seeded greeting, persists
// it, makes it active and opens a fresh conversation handle.
func (m *SessionManager) NewSession(ctx context.Context) (domain.ChatSession, error) {
	now := m.clock.Now()
	session := domain.ChatSession{
		ID:        uuid.NewString(),
		StartTime: now,
		Messages: []domain.Message{{
			ID:        m.ids.Next(),
			Text:      greetingText,
			Sender:    domain.SenderAI,
			Timestamp: now.Format(timestampLayout),
		}},
	}

	m.sessions = append(m.sessions, session)
	m.persist(ctx)

	m.activeID = session.ID
	if err := m.store.SetActiveSessionID(ctx, session.ID); err != nil {
		m.logger.Printf("save active session id: %v", err)
	}

	if err := m.resetConversation(ctx); err != nil {
		return domain.ChatSession{}, err
	}

	return session, nil
}

// SelectSession moves the active pointer. Dialogue context never
// carries across a switch, so the conversation handle is reopened even
// though the stored transcript stays visible.
func (m *SessionManager) SelectSession(ctx context.Context, id string) error {
	if !m.hasSession(id) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	m.activeID = id
	if err := m.store.SetActiveSessionID(ctx, id); err != nil {
		m.logger.Printf("save active session id: %v", err)
	}

	return m.resetConversation(ctx)
}

// UpdateMessages replaces the message list of the named session and
// persists the whole collection. A session missing from the working
// collection is appended rather than the update being dropped.
func (m *SessionManager) UpdateMessages(ctx context.Context, sessionID string, messages []domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	updated := false
	for i := range m.sessions {
		if m.sessions[i].ID == sessionID {
			m.sessions[i].Messages = messages
			updated = true
			break
		}
	}
	if !updated {
		m.sessions = append(m.sessions, domain.ChatSession{
			ID:        sessionID,
			StartTime: m.clock.Now(),
			Messages:  messages,
		})
	}

	m.persist(ctx)

	return nil
}

func (m *SessionManager) ActiveSession() (domain.ChatSession, bool) {
	for _, session := range m.sessions {
		if session.ID == m.activeID {
			return session, true
		}
	}
	return domain.ChatSession{}, false
}

func (m *SessionManager) Sessions() []domain.ChatSession {
	return slices.Clone(m.sessions)
}

func (m *SessionManager) ActiveSessionID() string {
	return m.activeID
}

func (m *SessionManager) Conversation() ports.Conversation {
	return m.conv
}

func (m *SessionManager) MessageIDs() *MessageIDs {
	return m.ids
}

func (m *SessionManager) hasSession(id string) bool {
	if id == "" {
		return false
	}
	for _, session := range m.sessions {
		if session.ID == id {
			return true
		}
	}
	return false
}

// resetConversation opens a fresh dialogue context. Managers wired
// without a gateway (history-only commands) simply keep no handle.
func (m *SessionManager) resetConversation(ctx context.Context) error {
	if m.gateway == nil {
		m.conv = nil
		return nil
	}

	conv, err := m.gateway.NewConversation(ctx)
	if err != nil {
		return fmt.Errorf("open conversation: %w", err)
	}
	m.conv = conv

	return nil
}

func (m *SessionManager) persist(ctx context.Context) {
	if err := m.store.SaveSessions(ctx, m.sessions); err != nil {
		m.logger.Printf("save sessions: %v", err)
	}
}
