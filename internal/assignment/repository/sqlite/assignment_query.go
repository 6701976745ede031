package sqlite

const (
	querySelectAll = `
SELECT id, name, class_name, due_date, priority, difficulty, completed, completed_at, created_at, updated_at
FROM assignments
ORDER BY seq`

	queryUpsert = `
INSERT INTO assignments (id, seq, name, class_name, due_date, priority, difficulty, completed, completed_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	class_name = excluded.class_name,
	due_date = excluded.due_date,
	priority = excluded.priority,
	difficulty = excluded.difficulty,
	completed = excluded.completed,
	completed_at = excluded.completed_at,
	updated_at = excluded.updated_at`

	queryDelete = `DELETE FROM assignments WHERE id = ?`
)
