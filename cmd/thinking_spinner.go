package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type generationDoneMsg struct {
	err error
}

type thinkingSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	err     error
	done    bool
}

func newThinkingSpinnerModel(label string, wait tea.Cmd) thinkingSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return thinkingSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m thinkingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m thinkingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case generationDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m thinkingSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runThinkingSpinner(ctx context.Context, output io.Writer, wait func(context.Context) error) error {
	waitCmd := func() tea.Msg {
		return generationDoneMsg{err: wait(ctx)}
	}

	p := tea.NewProgram(
		newThinkingSpinnerModel("Thinking...", waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(thinkingSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
