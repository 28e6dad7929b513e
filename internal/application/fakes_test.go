package application

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

type inMemoryStore struct {
	mu       sync.Mutex
	sessions []domain.ChatSession
	activeID string
	feedback domain.FeedbackMap

	saveErr      error
	sessionSaves int
}

func (s *inMemoryStore) LoadSessions(context.Context) ([]domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.sessions), nil
}

func (s *inMemoryStore) SaveSessions(_ context.Context, sessions []domain.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionSaves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions = cloneSessions(sessions)
	return nil
}

func (s *inMemoryStore) ActiveSessionID(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID, nil
}

func (s *inMemoryStore) SetActiveSessionID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = id
	return nil
}

func (s *inMemoryStore) LoadFeedback(context.Context) (domain.FeedbackMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feedback := domain.FeedbackMap{}
	for id, value := range s.feedback {
		feedback[id] = value
	}
	return feedback, nil
}

func (s *inMemoryStore) SaveFeedback(_ context.Context, feedback domain.FeedbackMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = domain.FeedbackMap{}
	for id, value := range feedback {
		s.feedback[id] = value
	}
	return nil
}

func (s *inMemoryStore) storedSessions() []domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.sessions)
}

func cloneSessions(sessions []domain.ChatSession) []domain.ChatSession {
	cloned := make([]domain.ChatSession, 0, len(sessions))
	for _, session := range sessions {
		session.Messages = slices.Clone(session.Messages)
		cloned = append(cloned, session)
	}
	return cloned
}

// fakeGateway opens scriptable conversations. Each conversation blocks
// its Send until released, so tests control exactly when the
// asynchronous result settles.
type fakeGateway struct {
	mu            sync.Mutex
	conversations []*fakeConversation
}

func (g *fakeGateway) NewConversation(context.Context) (ports.Conversation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	conv := &fakeConversation{calls: make(chan *pendingCall, 8)}
	g.conversations = append(g.conversations, conv)
	return conv, nil
}

func (g *fakeGateway) opened() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conversations)
}

func (g *fakeGateway) last() *fakeConversation {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.conversations) == 0 {
		return nil
	}
	return g.conversations[len(g.conversations)-1]
}

type fakeConversation struct {
	mu    sync.Mutex
	calls chan *pendingCall
	sent  []string
}

type sendResult struct {
	reply string
	err   error
}

type pendingCall struct {
	text   string
	result chan sendResult
}

func (p *pendingCall) settle(reply string, err error) {
	p.result <- sendResult{reply: reply, err: err}
}

func (c *fakeConversation) Send(ctx context.Context, message string, _ domain.ChatMode) (string, error) {
	c.mu.Lock()
	c.sent = append(c.sent, message)
	c.mu.Unlock()

	call := &pendingCall{text: message, result: make(chan sendResult, 1)}
	c.calls <- call

	select {
	case res := <-call.result:
		return res.reply, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// awaitCall blocks until an in-flight Send has registered, giving the
// test a handle to settle that specific call.
func (c *fakeConversation) awaitCall(t *testing.T) *pendingCall {
	t.Helper()

	select {
	case call := <-c.calls:
		return call
	case <-time.After(5 * time.Second):
		t.Fatal("no gateway call arrived")
		return nil
	}
}

func (c *fakeConversation) sentMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.sent)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
