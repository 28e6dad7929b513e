// Package cards renders the lawyer and legal-help directories as
// bordered terminal cards.
package cards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nileshvk/adhikar/internal/domain"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	card   lipgloss.Style
	name   lipgloss.Style
	role   lipgloss.Style
	detail lipgloss.Style
	meta   lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginTop(1),
		name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		role:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}

func RenderLawyers(lawyers []domain.LawyerProfile) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Lawyer Directory"),
		s.header.Render(fmt.Sprintf("listings: %d", len(lawyers))),
	}

	if len(lawyers) == 0 {
		lines = append(lines, s.empty.Render("No lawyers listed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, lawyer := range lawyers {
		lines = append(lines, s.card.Render(renderLawyer(lawyer, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLawyer(lawyer domain.LawyerProfile, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(lawyer.Name), "  ", s.role.Render(lawyer.Specialization)),
		s.detail.Render(lawyer.Bio),
		s.meta.Render(lawyer.Email),
	)
}

func RenderLegalHelp(profiles []domain.LegalHelpProfile) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Legal Help Directory"),
		s.header.Render(fmt.Sprintf("listings: %d", len(profiles))),
	}

	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("No legal help listed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, profile := range profiles {
		lines = append(lines, s.card.Render(renderLegalHelp(profile, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLegalHelp(profile domain.LegalHelpProfile, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(profile.Name), "  ", s.role.Render(string(profile.Role))),
		s.detail.Render(profile.Bio),
		s.meta.Render(fmt.Sprintf("expertise: %s", strings.Join(profile.Expertise, ", "))),
		s.meta.Render(fmt.Sprintf("%s | ₹%d/hr", profile.Email, profile.Rate)),
	)
}
