package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/internal/model"
)

// Load returns every assignment ordered by id sequence.
func (r *implRepository) Load(ctx context.Context) ([]model.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, querySelectAll)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		var (
			a                     model.Assignment
			priority              string
			completed             int
			due, created, updated string
			completedAt           sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.ClassName, &due, &priority, &a.Difficulty, &completed, &completedAt, &created, &updated); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
		}

		a.Priority = model.Priority(priority)
		a.Completed = completed != 0
		if a.DueDate, err = parseTime(due); err != nil {
			r.l.Warnf(ctx, "internal.assignment.repository.sqlite.Load: skipping %s: %v", a.ID, err)
			continue
		}
		a.CreatedAt, _ = parseTime(created)
		a.UpdatedAt, _ = parseTime(updated)
		if completedAt.Valid {
			if at, err := parseTime(completedAt.String); err == nil {
				a.CompletedAt = &at
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return out, nil
}

func (r *implRepository) Upsert(ctx context.Context, a model.Assignment) error {
	var completedAt sql.NullString
	if a.CompletedAt != nil {
		completedAt = sql.NullString{String: formatTime(*a.CompletedAt), Valid: true}
	}
	completed := 0
	if a.Completed {
		completed = 1
	}

	_, err := r.db.ExecContext(ctx, queryUpsert,
		a.ID, model.AssignmentSeq(a.ID), a.Name, a.ClassName, formatTime(a.DueDate), string(a.Priority),
		a.Difficulty, completed, completedAt, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, queryDelete, id); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
