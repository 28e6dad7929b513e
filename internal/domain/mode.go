package domain

import "fmt"

// ChatMode selects how an outgoing prompt is framed. It never changes
// transport or message shape.
type ChatMode string

const (
	ModeNormal    ChatMode = "normal"
	ModeEmergency ChatMode = "emergency"
	ModeCaseLaw   ChatMode = "caselaw"
)

func ParseChatMode(raw string) (ChatMode, error) {
	switch ChatMode(raw) {
	case ModeNormal, ModeEmergency, ModeCaseLaw:
		return ChatMode(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChatMode, raw)
	}
}
