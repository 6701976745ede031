package conversation

import "errors"

var (
	ErrEmptySessionID  = errors.New("session id is required")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidTurn     = errors.New("turn needs a speaker and text")

	// ErrNotLoaded is wrapped in the StoreIOError of writes held back
	// because the persisted history could not be read.
	ErrNotLoaded = errors.New("chat history could not be read, new turns are kept in memory")
)
