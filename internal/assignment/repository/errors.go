package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load assignments")
	ErrFailedToUpsert = errors.New("failed to upsert assignment")
	ErrFailedToDelete = errors.New("failed to delete assignment")
)
