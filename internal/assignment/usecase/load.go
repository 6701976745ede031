package usecase

import (
	"context"
	"sort"

	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
)

// Load replaces the in-memory set with the persisted one. When the backend
// cannot be read the store starts empty, holds every change in memory and
// the StoreIOError is returned so the caller can notify the user. Nothing is
// written until a later read succeeds.
func (uc *implUseCase) Load(ctx context.Context) error {
	items, err := uc.repo.Load(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = make(map[string]model.Assignment, len(items))
	uc.pending = make(map[string]pendingOp)
	uc.events = nil
	uc.nextSeq = 0

	if err != nil {
		uc.loaded = false
		uc.l.Warnf(ctx, "internal.assignment.usecase.Load: %v, starting empty", err)
		return pkgErrors.NewStoreIOError("load", err)
	}

	uc.loaded = true
	for _, a := range items {
		uc.items[a.ID] = a.Clone()
		if seq := model.AssignmentSeq(a.ID); seq > uc.nextSeq {
			uc.nextSeq = seq
		}
	}
	uc.l.Infof(ctx, "internal.assignment.usecase.Load: loaded %d assignment(s)", len(uc.items))
	return nil
}

// Flush retries every write that failed earlier.
func (uc *implUseCase) Flush(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)
	return uc.flushLocked(ctx, "flush")
}

// reloadLocked retries the read after a failed Load and merges the persisted
// set under the assignments created since. Those were numbered without
// knowing the persisted ids, so they move past the highest persisted one.
func (uc *implUseCase) reloadLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	persisted, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "internal.assignment.usecase.reload: %v", err)
		return
	}

	maxSeq := 0
	items := make(map[string]model.Assignment, len(persisted)+len(uc.items))
	for _, a := range persisted {
		items[a.ID] = a.Clone()
		if seq := model.AssignmentSeq(a.ID); seq > maxSeq {
			maxSeq = seq
		}
	}

	local := make([]model.Assignment, 0, len(uc.items))
	for _, a := range uc.items {
		local = append(local, a)
	}
	sort.Slice(local, func(i, j int) bool { return model.AssignmentSeq(local[i].ID) < model.AssignmentSeq(local[j].ID) })

	// Held deletes only ever name local records, which were never written.
	pending := make(map[string]pendingOp, len(local))
	renamed := make(map[string]string, len(local))
	for _, a := range local {
		maxSeq++
		id := model.AssignmentID(maxSeq)
		renamed[a.ID] = id
		a.ID = id
		items[id] = a
		pending[id] = pendingUpsert
	}
	for i, ev := range uc.events {
		if id, ok := renamed[ev.AssignmentID]; ok {
			uc.events[i].AssignmentID = id
		}
	}

	uc.items = items
	uc.pending = pending
	uc.nextSeq = maxSeq
	uc.loaded = true
	uc.l.Infof(ctx, "internal.assignment.usecase.reload: merged %d persisted and %d new assignment(s)", len(persisted), len(local))
}
