package chat

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nileshvk/adhikar/internal/domain"
)

type RenderOptions struct {
	Feedback domain.FeedbackMap
	Now      time.Time
}

func renderTranscript(session domain.ChatSession, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(sessionTitle(session)),
		s.header.Render(fmt.Sprintf("messages: %d", len(session.Messages))),
	}

	if len(session.Messages) == 0 {
		lines = append(lines, s.empty.Render("No messages in this conversation."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, message := range session.Messages {
		lines = append(lines, s.section.Render(renderMessage(message, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(message domain.Message, opts RenderOptions, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		senderStyle(message.Sender, s).Render(senderLabel(message.Sender)),
		" ",
		s.meta.Render(message.Timestamp),
	)

	if mark := feedbackMark(message, opts.Feedback); mark != "" {
		header += " " + s.feedback.Render(mark)
	}

	parts := []string{header, s.text.Render(message.Text)}
	if message.File != nil {
		parts = append(parts, s.attachment.Render(fmt.Sprintf("attached: %s (%s)", message.File.Name, message.File.MediaType)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSessionList(sessions []domain.ChatSession, activeID string, s styles) string {
	lines := []string{
		s.title.Render("Chat Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No saved sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range sessions {
		lines = append(lines, renderSessionLine(session, session.ID == activeID, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSessionLine(session domain.ChatSession, active bool, s styles) string {
	marker := "  "
	nameStyle := s.text
	if active {
		marker = "* "
		nameStyle = s.active
	}

	preview := "(empty)"
	if last, ok := session.LastMessage(); ok {
		preview = truncate(last.Text, 48)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(marker),
		nameStyle.Render(sessionTitle(session)),
		" ",
		s.meta.Render(fmt.Sprintf("[%d msgs]", len(session.Messages))),
		" ",
		s.empty.Render(preview),
	)
}

func sessionTitle(session domain.ChatSession) string {
	return fmt.Sprintf("Chat from %s", session.StartTime.Format("Jan 2, 15:04"))
}

func senderLabel(sender domain.Sender) string {
	if sender == domain.SenderUser {
		return "You"
	}

	return "Adhikar"
}

func senderStyle(sender domain.Sender, s styles) lipgloss.Style {
	if sender == domain.SenderUser {
		return s.user
	}

	return s.assistant
}

func feedbackMark(message domain.Message, feedback domain.FeedbackMap) string {
	if message.Sender != domain.SenderAI {
		return ""
	}

	switch feedback[message.ID] {
	case domain.FeedbackUp:
		return "[+1]"
	case domain.FeedbackDown:
		return "[-1]"
	}

	return ""
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	return string(runes[:max-1]) + "…"
}
