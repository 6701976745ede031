package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
)

const (
	defaultPriority   = model.PriorityMedium
	defaultDifficulty = 5
)

func validate(a model.Assignment) error {
	if strings.TrimSpace(a.Name) == "" {
		return assignment.ErrEmptyName
	}
	if strings.TrimSpace(a.ClassName) == "" {
		return assignment.ErrEmptyClass
	}
	if a.DueDate.IsZero() {
		return assignment.ErrMissingDueDate
	}
	if !a.Priority.Valid() {
		return assignment.ErrInvalidPriority
	}
	if a.Difficulty < model.MinDifficulty || a.Difficulty > model.MaxDifficulty {
		return assignment.ErrInvalidDifficulty
	}
	return nil
}

func (uc *implUseCase) recordLocked(kind model.AssignmentEventKind, id string, at time.Time) {
	uc.events = append(uc.events, model.AssignmentEvent{Kind: kind, AssignmentID: id, At: at})
}

// persistLocked queues id and writes every queued change. Failed writes stay
// queued for the next mutation or Flush.
func (uc *implUseCase) persistLocked(ctx context.Context, op string, id string, kind pendingOp) error {
	uc.pending[id] = kind
	return uc.flushLocked(ctx, op)
}

func (uc *implUseCase) flushLocked(ctx context.Context, op string) error {
	if len(uc.pending) == 0 {
		return nil
	}
	if !uc.loaded {
		err := pkgErrors.NewStoreIOError(op, assignment.ErrNotLoaded)
		uc.l.Warnf(ctx, "internal.assignment.usecase.%s: %v (%d change(s) pending)", op, err, len(uc.pending))
		return err
	}
	// The in-memory change already happened; a caller going away must not
	// abort the write.
	ctx = context.WithoutCancel(ctx)

	ids := make([]string, 0, len(uc.pending))
	for id := range uc.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return model.AssignmentSeq(ids[i]) < model.AssignmentSeq(ids[j]) })

	var errs []error
	for _, id := range ids {
		var err error
		switch uc.pending[id] {
		case pendingUpsert:
			a, ok := uc.items[id]
			if !ok {
				delete(uc.pending, id)
				continue
			}
			err = uc.repo.Upsert(ctx, a.Clone())
		case pendingDelete:
			err = uc.repo.Delete(ctx, id)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		delete(uc.pending, id)
	}

	if len(errs) > 0 {
		err := pkgErrors.NewStoreIOError(op, errors.Join(errs...))
		uc.l.Warnf(ctx, "internal.assignment.usecase.%s: %v (%d change(s) pending)", op, err, len(uc.pending))
		return err
	}
	return nil
}

func (uc *implUseCase) getLocked(id string) (model.Assignment, error) {
	a, ok := uc.items[normalizeID(id)]
	if !ok {
		return model.Assignment{}, fmt.Errorf("%w: %s", assignment.ErrNotFound, id)
	}
	return a, nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func sortByDue(items []model.Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate) {
			return items[i].DueDate.Before(items[j].DueDate)
		}
		return model.AssignmentSeq(items[i].ID) < model.AssignmentSeq(items[j].ID)
	})
}
