package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load chat history")
	ErrFailedToCreate = errors.New("failed to create session")
	ErrFailedToAppend = errors.New("failed to append turns")
)
