package assignment

import (
	"context"

	"homework-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Mutations. Each one is a single serialized operation.
	Create(ctx context.Context, input CreateInput) (MutationOutput, error)
	Update(ctx context.Context, input UpdateInput) (MutationOutput, error)
	Delete(ctx context.Context, id string) (MutationOutput, error)
	MarkComplete(ctx context.Context, id string) (MutationOutput, error)
	SetCompletion(ctx context.Context, id string, completed bool) (MutationOutput, error)

	// Reads return copies.
	Get(ctx context.Context, id string) (model.Assignment, error)
	Query(ctx context.Context, filter Filter) ([]model.Assignment, error)
	KnownClasses(ctx context.Context) []string
	Events(ctx context.Context) []model.AssignmentEvent

	// Persistence.
	Load(ctx context.Context) error
	Flush(ctx context.Context) error

	// Optional calendar export.
	ExportToCalendar(ctx context.Context, input ExportInput) (ExportOutput, error)
}
