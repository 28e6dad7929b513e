package kv

import (
	"time"

	"github.com/nileshvk/adhikar/internal/domain"
)

// The JSON field names and the millisecond start time reproduce the
// layout the web client wrote to local storage, so state files remain
// interchangeable with it.
type sessionSchema struct {
	ID        string          `json:"id"`
	StartTime int64           `json:"startTime"`
	Messages  []messageSchema `json:"messages"`
}

type messageSchema struct {
	ID        int64       `json:"id"`
	Text      string      `json:"text"`
	Sender    string      `json:"sender"`
	Timestamp string      `json:"timestamp"`
	File      *fileSchema `json:"file,omitempty"`
}

type fileSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func toSessionSchema(session domain.ChatSession) sessionSchema {
	messages := make([]messageSchema, 0, len(session.Messages))
	for _, message := range session.Messages {
		messages = append(messages, toMessageSchema(message))
	}

	return sessionSchema{
		ID:        session.ID,
		StartTime: session.StartTime.UnixMilli(),
		Messages:  messages,
	}
}

func fromSessionSchema(entry sessionSchema) domain.ChatSession {
	messages := make([]domain.Message, 0, len(entry.Messages))
	for _, message := range entry.Messages {
		messages = append(messages, fromMessageSchema(message))
	}

	// Canonicalize to UTC; the persisted value is a bare instant.
	return domain.ChatSession{
		ID:        entry.ID,
		StartTime: time.UnixMilli(entry.StartTime).UTC(),
		Messages:  messages,
	}
}

func toMessageSchema(message domain.Message) messageSchema {
	entry := messageSchema{
		ID:        message.ID,
		Text:      message.Text,
		Sender:    string(message.Sender),
		Timestamp: message.Timestamp,
	}
	if message.File != nil {
		entry.File = &fileSchema{
			Name: message.File.Name,
			Type: message.File.MediaType,
			URL:  message.File.LocatorURL,
		}
	}

	return entry
}

func fromMessageSchema(entry messageSchema) domain.Message {
	message := domain.Message{
		ID:        entry.ID,
		Text:      entry.Text,
		Sender:    domain.Sender(entry.Sender),
		Timestamp: entry.Timestamp,
	}
	if entry.File != nil {
		message.File = &domain.Attachment{
			Name:       entry.File.Name,
			MediaType:  entry.File.Type,
			LocatorURL: entry.File.URL,
		}
	}

	return message
}
