package chat

import (
	"time"

	"homework-assistant/internal/model"
)

const (
	DefaultHistoryLimit    = 50
	DefaultContextTTL      = 30 * time.Minute
	DefaultContextCapacity = 16
)

type Config struct {
	HistoryLimit int
	// ContextTTL forgets a session's dialogue context after this much idle time.
	ContextTTL      time.Duration
	ContextCapacity int
}

// --- UseCase Inputs ---

type SubmitInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Response string
	Intent   model.IntentResult
	Entities model.Entities
	Emotion  model.EmotionResult
	Outcome  string
	Mutated  bool
	Notices  []string
}

// StartSessionOutput carries the new session. PersistErr is set when the
// session exists in memory but could not be written.
type StartSessionOutput struct {
	Session    model.SessionSummary
	PersistErr error
}
