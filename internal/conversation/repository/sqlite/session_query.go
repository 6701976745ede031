package sqlite

const (
	querySelectSessions = `
SELECT id, created_at
FROM sessions
ORDER BY created_at, id`

	querySelectTurns = `
SELECT session_id, speaker, text, timestamp, annotation
FROM turns
ORDER BY id`

	queryInsertSession = `INSERT OR IGNORE INTO sessions (id, created_at) VALUES (?, ?)`

	queryInsertTurn = `
INSERT INTO turns (session_id, speaker, text, timestamp, annotation)
VALUES (?, ?, ?, ?, ?)`
)
