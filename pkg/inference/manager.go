package inference

import (
	"context"
	"fmt"
	"time"

	"homework-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

var _ Scorer = (*Manager)(nil)

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Score iterates through providers in priority order with fallback logic
func (m *Manager) Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if len(hypotheses) == 0 {
		return nil, fmt.Errorf("%w: no hypotheses", ErrInvalidRequest)
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		scores, err := m.scoreWithRetry(ctx, provider, premise, hypotheses)
		if err == nil {
			m.logSuccess(ctx, provider, len(hypotheses))
			return scores, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// scoreWithRetry retries a single provider with linear backoff
func (m *Manager) scoreWithRetry(ctx context.Context, provider Provider, premise string, hypotheses []Hypothesis) ([]float64, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		scores, err := provider.Score(ctx, premise, hypotheses)
		if err == nil {
			if len(scores) != len(hypotheses) {
				return nil, fmt.Errorf("%w: got %d, want %d", ErrScoreMismatch, len(scores), len(hypotheses))
			}
			return scores, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, hypotheses int) {
	m.logger.Debugf(ctx, "inference scored %d hypotheses with %s (%s)", hypotheses, provider.Name(), provider.Model())
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "inference scoring failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}

// Providers describes the configured providers as "name (model)", in the
// order they are tried.
func (m *Manager) Providers() []string {
	out := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		out = append(out, fmt.Sprintf("%s (%s)", p.Name(), p.Model()))
	}
	return out
}
