package application

import "sync/atomic"

// MessageIDs hands out message ids unique within the process. Seeding
// with the current Unix milliseconds keeps ids from colliding with
// those of earlier runs persisted in the same session.
type MessageIDs struct {
	next atomic.Int64
}

func NewMessageIDs(seed int64) *MessageIDs {
	ids := &MessageIDs{}
	ids.next.Store(seed)
	return ids
}

func (g *MessageIDs) Next() int64 {
	return g.next.Add(1)
}
