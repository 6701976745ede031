package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homework-assistant/internal/conversation"
	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
)

// Load replaces the in-memory log with the persisted one. Unreadable history
// degrades to empty and is reported as a StoreIOError. New turns are then
// held in memory until a later read succeeds, so the persisted history is
// never replaced by the empty one.
func (uc *implUseCase) Load(ctx context.Context) error {
	sessions, err := uc.repo.Load(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.sessions = make(map[string]*model.Session, len(sessions))
	uc.order = nil
	uc.pending = nil

	if err != nil {
		uc.loaded = false
		uc.l.Warnf(ctx, "internal.conversation.usecase.Load: %v, starting with empty history", err)
		return pkgErrors.NewStoreIOError("load", err)
	}
	uc.loaded = true

	turns := 0
	for _, s := range sessions {
		if _, dup := uc.sessions[s.ID]; dup {
			continue
		}
		s := s
		uc.sessions[s.ID] = &s
		uc.order = append(uc.order, s.ID)
		turns += len(s.Turns)
	}
	uc.l.Infof(ctx, "internal.conversation.usecase.Load: loaded %d session(s), %d turn(s)", len(uc.sessions), turns)
	return nil
}

func (uc *implUseCase) StartSession(ctx context.Context) (model.SessionSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	s := uc.createLocked(uc.newID(), uc.now())
	summary := summarize(s)
	uc.pending = append(uc.pending, pendingWrite{sessionID: s.ID, create: &summary})
	return summary, uc.flushLocked(ctx, "StartSession")
}

func (uc *implUseCase) Append(ctx context.Context, sessionID string, turns ...model.Turn) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return conversation.ErrEmptySessionID
	}
	for _, t := range turns {
		if (t.Speaker != model.SpeakerUser && t.Speaker != model.SpeakerAssistant) || t.Text == "" {
			return conversation.ErrInvalidTurn
		}
	}
	if len(turns) == 0 {
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)

	now := uc.now()
	copied := make([]model.Turn, len(turns))
	for i, t := range turns {
		if t.Timestamp.IsZero() {
			t.Timestamp = now
		}
		copied[i] = t.Clone()
	}

	s, ok := uc.sessions[sessionID]
	if !ok {
		// Repositories date an implicit session by its first turn.
		s = uc.createLocked(sessionID, copied[0].Timestamp)
	}
	s.Turns = append(s.Turns, copied...)

	uc.pending = append(uc.pending, pendingWrite{sessionID: sessionID, turns: copied})
	return uc.flushLocked(ctx, "Append")
}

func (uc *implUseCase) History(ctx context.Context, sessionID string, limit int) ([]model.Turn, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	s, ok := uc.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", conversation.ErrSessionNotFound, sessionID)
	}

	turns := s.Turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]model.Turn, len(turns))
	for i, t := range turns {
		out[i] = t.Clone()
	}
	return out, nil
}

// Sessions lists every session in creation order.
func (uc *implUseCase) Sessions(ctx context.Context) []model.SessionSummary {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.SessionSummary, 0, len(uc.order))
	for _, id := range uc.order {
		out = append(out, summarize(uc.sessions[id]))
	}
	return out
}

// Flush retries every write that failed earlier.
func (uc *implUseCase) Flush(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reloadLocked(ctx)
	return uc.flushLocked(ctx, "Flush")
}

// reloadLocked retries the read after a failed Load. Persisted sessions come
// first; turns appended since follow the persisted ones of the same session.
func (uc *implUseCase) reloadLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	persisted, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "internal.conversation.usecase.reload: %v", err)
		return
	}

	sessions := make(map[string]*model.Session, len(persisted)+len(uc.sessions))
	order := make([]string, 0, len(persisted)+len(uc.order))
	for _, s := range persisted {
		if _, dup := sessions[s.ID]; dup {
			continue
		}
		s := s
		sessions[s.ID] = &s
		order = append(order, s.ID)
	}
	for _, id := range uc.order {
		local := uc.sessions[id]
		if s, ok := sessions[id]; ok {
			s.Turns = append(s.Turns, local.Turns...)
			continue
		}
		sessions[id] = local
		order = append(order, id)
	}

	uc.sessions = sessions
	uc.order = order
	uc.loaded = true
	uc.l.Infof(ctx, "internal.conversation.usecase.reload: merged %d persisted session(s)", len(persisted))
}

func (uc *implUseCase) createLocked(id string, at time.Time) *model.Session {
	s := &model.Session{ID: id, CreatedAt: at}
	uc.sessions[id] = s
	uc.order = append(uc.order, id)
	return s
}

// flushLocked replays pending writes in order and stops at the first
// failure so turns never reach the repository out of order.
func (uc *implUseCase) flushLocked(ctx context.Context, op string) error {
	if !uc.loaded && len(uc.pending) > 0 {
		err := pkgErrors.NewStoreIOError(op, conversation.ErrNotLoaded)
		uc.l.Warnf(ctx, "internal.conversation.usecase.%s: %v (%d write(s) pending)", op, err, len(uc.pending))
		return err
	}
	ctx = context.WithoutCancel(ctx)
	for len(uc.pending) > 0 {
		w := uc.pending[0]
		var err error
		if w.create != nil {
			err = uc.repo.CreateSession(ctx, *w.create)
		} else {
			err = uc.repo.AppendTurns(ctx, w.sessionID, w.turns)
		}
		if err != nil {
			err = pkgErrors.NewStoreIOError(op, fmt.Errorf("session %s: %w", w.sessionID, err))
			uc.l.Warnf(ctx, "internal.conversation.usecase.%s: %v (%d write(s) pending)", op, err, len(uc.pending))
			return err
		}
		uc.pending = uc.pending[1:]
	}
	uc.pending = nil
	return nil
}

func summarize(s *model.Session) model.SessionSummary {
	out := model.SessionSummary{ID: s.ID, CreatedAt: s.CreatedAt, TurnCount: len(s.Turns)}
	if n := len(s.Turns); n > 0 {
		out.LastTurn = s.Turns[n-1].Timestamp
	}
	return out
}
