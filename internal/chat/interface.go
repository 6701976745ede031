package chat

import (
	"context"

	"homework-assistant/internal/model"
)

// UseCase is the boundary the GUI shell talks to.
//
//go:generate mockery --name UseCase
type UseCase interface {
	StartSession(ctx context.Context) (StartSessionOutput, error)
	Sessions(ctx context.Context) []model.SessionSummary

	// SubmitUtterance returns the reply text with any notices appended.
	SubmitUtterance(ctx context.Context, sessionID, text string) (string, error)
	// Submit is SubmitUtterance with the turn's annotations.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// GetHistory returns the last history_limit turns in chronological order.
	GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error)
}
