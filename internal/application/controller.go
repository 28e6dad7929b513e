package application

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
)

// Controller is the request-lifecycle state machine. At most one
// generation is outstanding at a time; cancellation is cooperative —
// Stop flips a per-request token consulted after the gateway call
// settles, it never aborts the call itself.
type Controller struct {
	mu      sync.Mutex
	manager *SessionManager
	clock   ports.Clock
	logger  *log.Logger

	loading bool
	current *request
}

type request struct {
	cancelled bool
	done      chan struct{}
	closeOnce sync.Once
}

// finished closes done exactly once, whether the request settled or was
// stopped first.
func (r *request) finished() {
	r.closeOnce.Do(func() { close(r.done) })
}

func NewController(manager *SessionManager, clock ports.Clock, logger *log.Logger) *Controller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Controller{
		manager: manager,
		clock:   clock,
		logger:  logger,
	}
}

// Submit appends the user message synchronously, persists it, then
// issues the gateway call in the background. The returned channel is
// closed when the lifecycle finishes — on settle or on Stop, whichever
// comes first. A second submit while one is outstanding is rejected.
func (c *Controller) Submit(ctx context.Context, text string, mode domain.ChatMode) (<-chan struct{}, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		return nil, domain.ErrRequestInFlight
	}

	session, ok := c.manager.ActiveSession()
	if !ok {
		return nil, domain.ErrNoActiveSession
	}
	conv := c.manager.Conversation()
	if conv == nil {
		return nil, domain.ErrNoActiveSession
	}

	messages := append(slices.Clone(session.Messages), c.newMessage(trimmed, domain.SenderUser))
	if err := c.manager.UpdateMessages(ctx, session.ID, messages); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	req := &request{done: make(chan struct{})}
	c.current = req
	c.loading = true

	go c.await(ctx, req, conv, session.ID, messages, trimmed, mode)

	return req.done, nil
}

// await runs off the submitting goroutine and commits the settled
// result unless the request was cancelled in the meantime.
func (c *Controller) await(ctx context.Context, req *request, conv ports.Conversation, sessionID string, sent []domain.Message, text string, mode domain.ChatMode) {
	reply, err := conv.Send(ctx, text, mode)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer req.finished()

	if req.cancelled {
		// Stop already committed its message; the late result is dropped.
		return
	}

	message := c.newMessage(reply, domain.SenderAI)
	if err != nil {
		c.logger.Printf("gateway send: %v", err)
		message.Text = connectivityErrorText
	}

	if err := c.manager.UpdateMessages(context.WithoutCancel(ctx), sessionID, append(slices.Clone(sent), message)); err != nil {
		c.logger.Printf("persist reply: %v", err)
	}

	c.loading = false
	c.current = nil
}

// Stop abandons the outstanding generation. Loading drops to false
// before Stop returns; the in-flight call keeps running but its
// settlement is discarded. A no-op when nothing is outstanding.
func (c *Controller) Stop(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := c.current
	if req == nil {
		return
	}

	req.cancelled = true
	c.current = nil
	c.loading = false

	if session, ok := c.manager.ActiveSession(); ok {
		stopMessage := c.newMessage(generationStoppedText, domain.SenderAI)
		if err := c.manager.UpdateMessages(ctx, session.ID, append(slices.Clone(session.Messages), stopMessage)); err != nil {
			c.logger.Printf("persist stop message: %v", err)
		}
	}

	req.finished()
}

// AttachFile records a document hand-off as an immediate placeholder
// message. Actual document analysis is not part of this core, so no
// gateway call is made.
func (c *Controller) AttachFile(ctx context.Context, file domain.Attachment) (domain.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.manager.ActiveSession()
	if !ok {
		return domain.Message{}, domain.ErrNoActiveSession
	}

	message := c.newMessage(fmt.Sprintf("Analyzing document: %q...", file.Name), domain.SenderAI)
	message.File = &file

	if err := c.manager.UpdateMessages(ctx, session.ID, append(slices.Clone(session.Messages), message)); err != nil {
		return domain.Message{}, fmt.Errorf("persist attachment message: %w", err)
	}

	return message, nil
}

func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) newMessage(text string, sender domain.Sender) domain.Message {
	return domain.Message{
		ID:        c.manager.MessageIDs().Next(),
		Text:      text,
		Sender:    sender,
		Timestamp: c.clock.Now().Format(timestampLayout),
	}
}
