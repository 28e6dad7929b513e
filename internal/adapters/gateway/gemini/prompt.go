package gemini

import (
	"fmt"

	"github.com/nileshvk/adhikar/internal/domain"
)

// Mode changes only how the outgoing prompt is phrased.
var promptTemplates = map[domain.ChatMode]func(string) string{
	domain.ModeNormal: func(message string) string {
		return fmt.Sprintf("Provide a detailed, elaborated, and comprehensive answer to the following query related to Indian law. If possible, cite relevant constitutional articles or legal precedents from India. Query: %q", message)
	},
	domain.ModeEmergency: func(message string) string {
		return fmt.Sprintf("URGENT: Provide a concise, direct, and actionable answer to the following query related to Indian law. Be as brief as possible. Query: %q", message)
	},
	domain.ModeCaseLaw: func(message string) string {
		return fmt.Sprintf("Act as a legal case database. Provide a detailed summary of the following Indian constitutional case law. Include key facts, the main judgment, and the constitutional principles established. If the query is a keyword, find the most relevant landmark case. Case/Keyword: %q", message)
	},
}

func BuildPrompt(mode domain.ChatMode, message string) (string, error) {
	template, ok := promptTemplates[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownChatMode, mode)
	}

	return template(message), nil
}
