package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/jsonstore"
)

// Load reads the file. A corrupt file is moved aside and an empty set is
// returned so the assistant can start fresh.
func (r *implRepository) Load(ctx context.Context) ([]model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc fileFormat
	_, err := jsonstore.Read(r.path, &doc)
	if errors.Is(err, jsonstore.ErrCorrupt) {
		backup, qErr := jsonstore.Quarantine(r.path, r.now())
		if qErr != nil {
			r.l.Warnf(ctx, "internal.assignment.repository.jsonfile.Load: %v (quarantine failed: %v)", err, qErr)
		} else {
			r.l.Warnf(ctx, "internal.assignment.repository.jsonfile.Load: corrupted file backed up to %s", backup)
		}
		r.setLocked(fileFormat{})
		return nil, nil
	}
	if err != nil {
		r.loaded = false
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	r.setLocked(doc)
	out := make([]model.Assignment, 0, len(r.records))
	for _, rec := range doc.Assignments {
		if rec.ID == "" {
			continue
		}
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r *implRepository) setLocked(doc fileFormat) {
	r.records = make(map[string]fileRecord, len(doc.Assignments))
	for _, rec := range doc.Assignments {
		if rec.ID == "" {
			continue
		}
		r.records[rec.ID] = rec
	}
	r.loaded = true
}

// syncLocked reads the file into the mirror before the first write.
func (r *implRepository) syncLocked() error {
	if r.loaded {
		return nil
	}
	var doc fileFormat
	if _, err := jsonstore.Read(r.path, &doc); err != nil {
		return err
	}
	r.setLocked(doc)
	return nil
}

// Upsert replaces the record and rewrites the file. The mirror keeps the
// change even when the write fails so the next write carries it.
func (r *implRepository) Upsert(ctx context.Context, a model.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.syncLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	r.records[a.ID] = toRecord(a.Clone())
	if err := r.writeLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.syncLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	delete(r.records, id)
	if err := r.writeLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) writeLocked() error {
	doc := fileFormat{Version: fileVersion, Assignments: make([]fileRecord, 0, len(r.records))}
	for _, rec := range r.records {
		doc.Assignments = append(doc.Assignments, rec)
	}
	sort.Slice(doc.Assignments, func(i, j int) bool {
		return model.AssignmentSeq(doc.Assignments[i].ID) < model.AssignmentSeq(doc.Assignments[j].ID)
	})
	return jsonstore.WriteAtomic(r.path, doc)
}
