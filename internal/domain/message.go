package domain

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is a single entry in a session transcript. Messages are
// immutable once created; transcripts only grow by appending.
type Message struct {
	ID        int64
	Text      string
	Sender    Sender
	Timestamp string
	File      *Attachment
}

// Attachment describes a file referenced by a message. LocatorURL
// points at a caller-owned resource; nothing is acquired on the
// attachment's behalf.
type Attachment struct {
	Name       string
	MediaType  string
	LocatorURL string
}
