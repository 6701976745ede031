package conversation

import (
	"context"

	"homework-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// StartSession opens a new empty session. A non-nil error is always a
	// StoreIOError: the session exists in memory and can be used.
	StartSession(ctx context.Context) (model.SessionSummary, error)
	// Append records turns at the end of the session, creating it when it
	// is not known yet. Turns are immutable once appended.
	Append(ctx context.Context, sessionID string, turns ...model.Turn) error
	// History returns the last limit turns in chronological order. A
	// limit of zero or less returns every turn.
	History(ctx context.Context, sessionID string, limit int) ([]model.Turn, error)
	Sessions(ctx context.Context) []model.SessionSummary

	Load(ctx context.Context) error
	Flush(ctx context.Context) error
}
