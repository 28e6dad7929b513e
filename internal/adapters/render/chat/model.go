// Package chat renders conversation transcripts and session listings
// for terminal output.
package chat

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nileshvk/adhikar/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	session domain.ChatSession
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(session domain.ChatSession, opts RenderOptions) model {
	return model{
		session: session,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderTranscript(m.session, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderTranscript produces the full transcript of a session without
// attaching to the terminal.
func RenderTranscript(session domain.ChatSession, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(session, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// RenderSessionList formats the saved sessions with the active one marked.
func RenderSessionList(sessions []domain.ChatSession, activeID string) string {
	return renderSessionList(sessions, activeID, newStyles())
}

// RenderMessage formats a single message the same way the transcript does.
func RenderMessage(message domain.Message, opts RenderOptions) string {
	return renderMessage(message, opts, newStyles())
}
