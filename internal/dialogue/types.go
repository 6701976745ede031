package dialogue

import (
	"context"
	"time"

	"homework-assistant/internal/model"
	"homework-assistant/internal/nlu/entity"
)

// State is where the manager is within a turn.
type State int32

const (
	AwaitingInput State = iota
	Resolving
	Executing
	Responding
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Resolving:
		return "Resolving"
	case Executing:
		return "Executing"
	case Responding:
		return "Responding"
	}
	return "Unknown"
}

// Outcome is how a turn ended.
type Outcome string

const (
	OutcomeExecuted      Outcome = "executed"
	OutcomeClarification Outcome = "clarification"
	OutcomeFallback      Outcome = "fallback"
	OutcomeFailed        Outcome = "failed"
)

// DialogueContext is the short-term memory of one session. It is owned by
// the caller, passed into every turn and never persisted.
type DialogueContext struct {
	LastAssignmentID string           `json:"last_assignment_id,omitempty"`
	LastClass        string           `json:"last_class,omitempty"`
	LastDateRange    *model.DateRange `json:"last_date_range,omitempty"`
	LastIntent       model.Intent     `json:"last_intent,omitempty"`
}

// TurnResult is everything one turn produced.
type TurnResult struct {
	Response string
	Intent   model.IntentResult
	Entities model.Entities
	Emotion  model.EmotionResult
	Outcome  Outcome
	// Mutated reports whether the assignment store changed.
	Mutated bool
	// Notices are non-fatal persistence problems to show next to the reply.
	Notices []string
	// Path lists the states the turn went through.
	Path []State
}

type Config struct {
	MinConfidence     float64
	SuggestConfidence float64
	EmotionThreshold  float64
	InferenceTimeout  time.Duration
	HorizonDays       int
	Location          *time.Location
}

// IntentClassifier is satisfied by *intent.Classifier.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string, candidates []model.Intent) model.IntentResult
}

// EmotionDetector is satisfied by *emotion.Detector.
type EmotionDetector interface {
	Detect(ctx context.Context, utterance string) model.EmotionResult
}

// EntityExtractor is satisfied by *entity.Extractor.
type EntityExtractor interface {
	Extract(ctx context.Context, utterance string, known entity.Known, today time.Time) model.Entities
}

// StatusReporter describes the inference backends for "bot status".
type StatusReporter interface {
	Providers() []string
}
