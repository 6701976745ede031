package chat

import "errors"

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrEmptySessionID = errors.New("session id is required")
)
