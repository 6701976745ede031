package dialogue

import (
	"sync"
	"sync/atomic"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/conversation"
	pkgLog "homework-assistant/pkg/log"
)

// Deps are the collaborators of a Manager. Status is optional.
type Deps struct {
	Classifier IntentClassifier
	Detector   EmotionDetector
	Extractor  EntityExtractor
	Store      assignment.UseCase
	Memory     conversation.UseCase
	Status     StatusReporter
}

// Manager runs one turn at a time through Resolving, Executing and
// Responding and always ends back in AwaitingInput.
type Manager struct {
	l      pkgLog.Logger
	deps   Deps
	cfg    Config
	now    func() time.Time
	turnMu sync.Mutex
	state  atomic.Int32
}

func New(l pkgLog.Logger, deps Deps, cfg Config) *Manager {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	if cfg.SuggestConfidence <= 0 || cfg.SuggestConfidence > cfg.MinConfidence {
		cfg.SuggestConfidence = DefaultSuggestConfidence
	}
	if cfg.EmotionThreshold <= 0 {
		cfg.EmotionThreshold = DefaultEmotionThreshold
	}
	if cfg.InferenceTimeout <= 0 {
		cfg.InferenceTimeout = DefaultInferenceTimeout
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Manager{l: l, deps: deps, cfg: cfg, now: time.Now}
}

// State reports the current state. Between turns it is AwaitingInput.
func (m *Manager) State() State {
	return State(m.state.Load())
}
