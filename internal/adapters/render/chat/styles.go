package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	text       lipgloss.Style
	meta       lipgloss.Style
	attachment lipgloss.Style
	feedback   lipgloss.Style
	active     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		attachment: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("109")),
		feedback:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}
