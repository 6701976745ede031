package usecase

import (
	"context"
	"strings"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, input assignment.CreateInput) (assignment.MutationOutput, error) {
	a := model.Assignment{
		Name:       strings.TrimSpace(input.Name),
		ClassName:  strings.TrimSpace(input.ClassName),
		DueDate:    input.DueDate,
		Priority:   input.Priority,
		Difficulty: input.Difficulty,
	}
	if a.Priority == "" {
		a.Priority = defaultPriority
	}
	if a.Difficulty == 0 {
		a.Difficulty = defaultDifficulty
	}
	if err := validate(a); err != nil {
		uc.l.Infof(ctx, "internal.assignment.usecase.Create: %v", err)
		return assignment.MutationOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	now := uc.now()
	uc.nextSeq++
	a.ID = model.AssignmentID(uc.nextSeq)
	a.CreatedAt = now
	a.UpdatedAt = now

	uc.items[a.ID] = a
	uc.recordLocked(model.EventCreated, a.ID, now)

	return assignment.MutationOutput{
		Assignment: a.Clone(),
		Changed:    true,
		PersistErr: uc.persistLocked(ctx, "create", a.ID, pendingUpsert),
	}, nil
}

// Update applies the set fields of input. The merged record is validated as
// a whole before anything is stored.
func (uc *implUseCase) Update(ctx context.Context, input assignment.UpdateInput) (assignment.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	current, err := uc.getLocked(input.ID)
	if err != nil {
		uc.l.Infof(ctx, "internal.assignment.usecase.Update: %v", err)
		return assignment.MutationOutput{}, err
	}

	next := current.Clone()
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
	}
	if input.ClassName != nil {
		next.ClassName = strings.TrimSpace(*input.ClassName)
	}
	if input.DueDate != nil {
		next.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		next.Priority = *input.Priority
	}
	if input.Difficulty != nil {
		next.Difficulty = *input.Difficulty
	}
	if err := validate(next); err != nil {
		uc.l.Infof(ctx, "internal.assignment.usecase.Update: %s: %v", current.ID, err)
		return assignment.MutationOutput{}, err
	}

	now := uc.now()
	fieldsChanged := next.Name != current.Name ||
		next.ClassName != current.ClassName ||
		!next.DueDate.Equal(current.DueDate) ||
		next.Priority != current.Priority ||
		next.Difficulty != current.Difficulty
	completionChanged := input.Completed != nil && *input.Completed != current.Completed

	if !fieldsChanged && !completionChanged {
		return assignment.MutationOutput{Assignment: current.Clone()}, nil
	}

	if fieldsChanged {
		uc.recordLocked(model.EventUpdated, current.ID, now)
	}
	if completionChanged {
		setCompleted(&next, *input.Completed, now)
		uc.recordLocked(completionEventKind(*input.Completed), current.ID, now)
	}
	next.UpdatedAt = now
	uc.items[next.ID] = next

	return assignment.MutationOutput{
		Assignment: next.Clone(),
		Changed:    true,
		PersistErr: uc.persistLocked(ctx, "update", next.ID, pendingUpsert),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) (assignment.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	current, err := uc.getLocked(id)
	if err != nil {
		uc.l.Infof(ctx, "internal.assignment.usecase.Delete: %v", err)
		return assignment.MutationOutput{}, err
	}

	delete(uc.items, current.ID)
	uc.recordLocked(model.EventDeleted, current.ID, uc.now())

	return assignment.MutationOutput{
		Assignment: current,
		Changed:    true,
		PersistErr: uc.persistLocked(ctx, "delete", current.ID, pendingDelete),
	}, nil
}

// MarkComplete is idempotent: completing a completed assignment changes
// nothing and records no event.
func (uc *implUseCase) MarkComplete(ctx context.Context, id string) (assignment.MutationOutput, error) {
	return uc.SetCompletion(ctx, id, true)
}

func (uc *implUseCase) SetCompletion(ctx context.Context, id string, completed bool) (assignment.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	current, err := uc.getLocked(id)
	if err != nil {
		uc.l.Infof(ctx, "internal.assignment.usecase.SetCompletion: %v", err)
		return assignment.MutationOutput{}, err
	}
	if current.Completed == completed {
		return assignment.MutationOutput{Assignment: current.Clone()}, nil
	}

	now := uc.now()
	next := current.Clone()
	setCompleted(&next, completed, now)
	next.UpdatedAt = now
	uc.items[next.ID] = next
	uc.recordLocked(completionEventKind(completed), next.ID, now)

	return assignment.MutationOutput{
		Assignment: next.Clone(),
		Changed:    true,
		PersistErr: uc.persistLocked(ctx, "set_completion", next.ID, pendingUpsert),
	}, nil
}

func setCompleted(a *model.Assignment, completed bool, now time.Time) {
	a.Completed = completed
	if completed {
		at := now
		a.CompletedAt = &at
		return
	}
	a.CompletedAt = nil
}

func completionEventKind(completed bool) model.AssignmentEventKind {
	if completed {
		return model.EventCompleted
	}
	return model.EventReopened
}
