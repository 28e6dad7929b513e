package domain

import "time"

// ChatSession is one independent conversation thread. Every session
// carries at least one message (the seeded greeting) from creation.
type ChatSession struct {
	ID        string
	StartTime time.Time
	Messages  []Message
}

func (s ChatSession) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}
