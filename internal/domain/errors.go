package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoActiveSession = errors.New("no active session")
	ErrEmptyMessage    = errors.New("empty message")
	ErrRequestInFlight = errors.New("a request is already in flight")
	ErrUnknownChatMode = errors.New("unknown chat mode")
	ErrUnknownFeedback = errors.New("unknown feedback value")
)
