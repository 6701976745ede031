package jsonfile

import (
	"context"
	"errors"
	"fmt"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/jsonstore"
)

// Load reads the file. A corrupt file is moved aside and the history starts
// empty.
func (r *implRepository) Load(ctx context.Context) ([]model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc fileFormat
	_, err := jsonstore.Read(r.path, &doc)
	if errors.Is(err, jsonstore.ErrCorrupt) {
		backup, qErr := jsonstore.Quarantine(r.path, r.now())
		if qErr != nil {
			r.l.Warnf(ctx, "internal.conversation.repository.jsonfile.Load: %v (quarantine failed: %v)", err, qErr)
		} else {
			r.l.Warnf(ctx, "internal.conversation.repository.jsonfile.Load: corrupted history backed up to %s", backup)
		}
		r.setLocked(fileFormat{})
		return nil, nil
	}
	if err != nil {
		r.loaded = false
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	r.setLocked(doc)
	return r.doc.clone().Sessions, nil
}

func (r *implRepository) setLocked(doc fileFormat) {
	r.doc = fileFormat{Version: fileVersion}
	for _, s := range doc.Sessions {
		if s.ID == "" {
			continue
		}
		r.doc.Sessions = append(r.doc.Sessions, s)
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

func (r *implRepository) CreateSession(ctx context.Context, s model.SessionSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.syncLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	if r.doc.index(s.ID) >= 0 {
		return nil
	}
	next := r.doc.clone()
	next.Sessions = append(next.Sessions, model.Session{ID: s.ID, CreatedAt: s.CreatedAt})
	if err := jsonstore.WriteAtomic(r.path, next); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	r.doc = next
	return nil
}

// AppendTurns rewrites the file with the new turns. The mirror only changes
// once the write succeeded, so a retry never duplicates turns.
func (r *implRepository) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.syncLocked(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	next := r.doc.clone()
	i := next.index(sessionID)
	if i < 0 {
		created := r.now()
		if len(turns) > 0 {
			created = turns[0].Timestamp
		}
		next.Sessions = append(next.Sessions, model.Session{ID: sessionID, CreatedAt: created})
		i = len(next.Sessions) - 1
	}
	for _, t := range turns {
		next.Sessions[i].Turns = append(next.Sessions[i].Turns, t.Clone())
	}

	if err := jsonstore.WriteAtomic(r.path, next); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	r.doc = next
	return nil
}
