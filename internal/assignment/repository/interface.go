package repository

import (
	"context"

	"homework-assistant/internal/model"
)

// Repository is the durable backing of the assignment store. The use case
// keeps the authoritative copy in memory; implementations only persist.
type Repository interface {
	// Load returns every stored assignment. A store that cannot be decoded
	// is reported empty, never as a startup failure.
	Load(ctx context.Context) ([]model.Assignment, error)
	Upsert(ctx context.Context, a model.Assignment) error
	Delete(ctx context.Context, id string) error
}
