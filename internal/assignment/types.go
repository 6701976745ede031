package assignment

import (
	"strings"
	"time"

	"homework-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Name       string
	ClassName  string
	DueDate    time.Time
	Priority   model.Priority
	Difficulty int
}

// UpdateInput changes only the non-nil fields.
type UpdateInput struct {
	ID         string
	Name       *string
	ClassName  *string
	DueDate    *time.Time
	Priority   *model.Priority
	Difficulty *int
	Completed  *bool
}

// Filter narrows Query. Zero-valued fields do not filter.
type Filter struct {
	DueFrom       time.Time
	DueTo         time.Time
	ClassName     string
	Priority      model.Priority
	DifficultyMin int
	DifficultyMax int
	Completed     *bool
	// OverdueAt keeps only incomplete assignments due before this instant.
	OverdueAt time.Time
	Limit     int
}

// Incomplete is a convenience for Filter.Completed.
func Incomplete() *bool {
	b := false
	return &b
}

// Match reports whether a passes every set field of f.
func (f Filter) Match(a model.Assignment) bool {
	if !f.DueFrom.IsZero() && a.DueDate.Before(f.DueFrom) {
		return false
	}
	if !f.DueTo.IsZero() && a.DueDate.After(f.DueTo) {
		return false
	}
	if f.ClassName != "" && !strings.EqualFold(f.ClassName, a.ClassName) {
		return false
	}
	if f.Priority != "" && f.Priority != a.Priority {
		return false
	}
	if f.DifficultyMin != 0 && a.Difficulty < f.DifficultyMin {
		return false
	}
	if f.DifficultyMax != 0 && a.Difficulty > f.DifficultyMax {
		return false
	}
	if f.Completed != nil && *f.Completed != a.Completed {
		return false
	}
	if !f.OverdueAt.IsZero() && !a.IsOverdue(f.OverdueAt) {
		return false
	}
	return true
}

type ExportInput struct {
	// From skips assignments due before it. Zero means now.
	From time.Time
}

// --- UseCase Outputs ---

// MutationOutput reports the stored record after a mutation. Changed is
// false when the call was a no-op. PersistErr is a StoreIOError when the
// change is held in memory but could not be written.
type MutationOutput struct {
	Assignment model.Assignment
	Changed    bool
	PersistErr error
}

type ExportOutput struct {
	Exported int
	Skipped  int
	Failed   int
	Links    []string
}
