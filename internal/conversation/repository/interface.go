package repository

import (
	"context"

	"homework-assistant/internal/model"
)

// Repository persists sessions and their turns. Sessions are append-only:
// there is no update or delete.
type Repository interface {
	// Load returns every session with its turns in append order. History
	// that cannot be decoded is reported empty, never as a startup failure.
	Load(ctx context.Context) ([]model.Session, error)
	CreateSession(ctx context.Context, s model.SessionSummary) error
	// AppendTurns writes all turns or none of them.
	AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error
}
