package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"homework-assistant/internal/conversation/repository"
	"homework-assistant/internal/model"
)

// annotation holds the optional analysis of a user turn in one JSON column.
type annotation struct {
	Intent   *model.IntentResult  `json:"intent,omitempty"`
	Entities *model.Entities      `json:"entities,omitempty"`
	Emotion  *model.EmotionResult `json:"emotion,omitempty"`
}

// Load returns every session with its turns in insertion order.
func (r *implRepository) Load(ctx context.Context) ([]model.Session, error) {
	sessions, index, err := r.loadSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	rows, err := r.db.QueryContext(ctx, querySelectTurns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sessionID, speaker, text, ts string
			ann                          sql.NullString
		)
		if err := rows.Scan(&sessionID, &speaker, &text, &ts, &ann); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
		}
		i, ok := index[sessionID]
		if !ok {
			continue
		}

		t := model.Turn{Speaker: model.Speaker(speaker), Text: text}
		if t.Timestamp, err = parseTime(ts); err != nil {
			r.l.Warnf(ctx, "internal.conversation.repository.sqlite.Load: skipping turn of %s: %v", sessionID, err)
			continue
		}
		if ann.Valid && ann.String != "" {
			var a annotation
			if err := json.Unmarshal([]byte(ann.String), &a); err != nil {
				r.l.Warnf(ctx, "internal.conversation.repository.sqlite.Load: dropping annotation of %s: %v", sessionID, err)
			} else {
				t.Intent, t.Entities, t.Emotion = a.Intent, a.Entities, a.Emotion
			}
		}
		sessions[i].Turns = append(sessions[i].Turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return sessions, nil
}

func (r *implRepository) loadSessions(ctx context.Context) ([]model.Session, map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, querySelectSessions)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		out   []model.Session
		index = make(map[string]int)
	)
	for rows.Next() {
		var id, created string
		if err := rows.Scan(&id, &created); err != nil {
			return nil, nil, err
		}
		at, err := parseTime(created)
		if err != nil {
			r.l.Warnf(ctx, "internal.conversation.repository.sqlite.Load: skipping session %s: %v", id, err)
			continue
		}
		index[id] = len(out)
		out = append(out, model.Session{ID: id, CreatedAt: at})
	}
	return out, index, rows.Err()
}

func (r *implRepository) CreateSession(ctx context.Context, s model.SessionSummary) error {
	if _, err := r.db.ExecContext(ctx, queryInsertSession, s.ID, formatTime(s.CreatedAt)); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	return nil
}

// AppendTurns inserts the turns in one transaction.
func (r *implRepository) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	if err := r.appendTurns(ctx, sessionID, turns); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	return nil
}

func (r *implRepository) appendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queryInsertSession, sessionID, formatTime(turns[0].Timestamp)); err != nil {
		return err
	}
	for _, t := range turns {
		var ann sql.NullString
		if t.Intent != nil || t.Entities != nil || t.Emotion != nil {
			data, err := json.Marshal(annotation{Intent: t.Intent, Entities: t.Entities, Emotion: t.Emotion})
			if err != nil {
				return err
			}
			ann = sql.NullString{String: string(data), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, queryInsertTurn, sessionID, string(t.Speaker), t.Text, formatTime(t.Timestamp), ann); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
