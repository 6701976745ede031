package inference

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	failTimes  int
	scores     []float64
	callCount  int
	blockUntil chan struct{}
}

func (m *mockProvider) Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error) {
	m.callCount++
	if m.blockUntil != nil {
		select {
		case <-m.blockUntil:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.scores, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var twoHypotheses = []Hypothesis{{Label: "a", Text: "A"}, {Label: "b", Text: "B"}}

func TestScore_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", scores: []float64{0.9, 0.1}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	scores, err := manager.Score(context.Background(), "premise", twoHypotheses)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if scores[0] != 0.9 || primary.callCount != 1 {
		t.Errorf("unexpected scores %v after %d calls", scores, primary.callCount)
	}
}

func TestScore_RetryThenSucceed(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 2, scores: []float64{0.5, 0.5}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	if _, err := manager.Score(context.Background(), "premise", twoHypotheses); err != nil {
		t.Fatalf("Expected success on third attempt, got: %v", err)
	}
	if primary.callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", primary.callCount)
	}
}

func TestScore_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 10}
	secondary := &mockProvider{name: "secondary", scores: []float64{0.2, 0.8}}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, logger)

	scores, err := manager.Score(context.Background(), "premise", twoHypotheses)
	if err != nil {
		t.Fatalf("Expected fallback success, got: %v", err)
	}
	if scores[1] != 0.8 {
		t.Errorf("Expected secondary scores, got %v", scores)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected one failure log, got %d", len(logger.warnMessages))
	}
}

func TestScore_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 10}
	secondary := &mockProvider{name: "secondary", scores: []float64{0.2, 0.8}}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

	_, err := manager.Score(context.Background(), "premise", twoHypotheses)
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	var pErr *ProviderError
	if !errors.As(err, &pErr) || pErr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary must not be called when fallback is disabled")
	}
}

func TestScore_ScoreMismatch(t *testing.T) {
	bad := &mockProvider{name: "bad", scores: []float64{0.3}}
	manager := NewManager([]Provider{bad}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.Score(context.Background(), "premise", twoHypotheses)
	if !errors.Is(err, ErrScoreMismatch) {
		t.Fatalf("Expected ErrScoreMismatch, got %v", err)
	}
}

func TestScore_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", blockUntil: make(chan struct{}), scores: []float64{1, 0}}
	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 1, MaxTotalTimeout: 20 * time.Millisecond}, &mockLogger{})

	_, err := manager.Score(context.Background(), "premise", twoHypotheses)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got %v", err)
	}
}

func TestScore_NoProviders(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})
	if _, err := manager.Score(context.Background(), "premise", twoHypotheses); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("Expected ErrNoProvidersConfigured, got %v", err)
	}

	manager = NewManager([]Provider{&mockProvider{name: "p"}}, nil, &mockLogger{})
	if _, err := manager.Score(context.Background(), "premise", nil); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Expected ErrInvalidRequest, got %v", err)
	}
}

func TestProviders(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "ollama"}, NewLexiconProvider()}, nil, &mockLogger{})
	got := manager.Providers()
	want := []string{"ollama (ollama-model)", "lexicon (" + LexiconModelName + ")"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Providers() = %v, want %v", got, want)
	}
}
