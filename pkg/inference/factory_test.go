package inference

import (
	"errors"
	"testing"
	"time"

	"homework-assistant/config"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.InferenceConfig{
		Providers: []config.ProviderConfig{
			{Name: "lexicon", Enabled: true, Priority: 2},
			{Name: "ollama", Enabled: true, Priority: 1, Endpoint: "http://localhost:11434", Model: "nomic-embed-text", Timeout: "1s"},
			{Name: "mystery", Enabled: true, Priority: 3},
			{Name: "lexicon", Enabled: false, Priority: 4},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers (unknown skipped), got %d", len(providers))
	}
	if providers[0].Name() != EmbeddingProviderName || providers[1].Name() != LexiconProviderName {
		t.Errorf("providers not sorted by priority: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProvidersErrors(t *testing.T) {
	if _, err := InitializeProviders(nil); err == nil {
		t.Errorf("expected error for nil config")
	}
	_, err := InitializeProviders(&config.InferenceConfig{Providers: []config.ProviderConfig{{Name: "lexicon"}}})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
	_, err = InitializeProviders(&config.InferenceConfig{Providers: []config.ProviderConfig{{Name: "ollama", Enabled: true, Timeout: "soon"}}})
	if err == nil {
		t.Errorf("expected error when the only provider fails")
	}
}

func TestNewConfig(t *testing.T) {
	out, err := NewConfig(&config.InferenceConfig{RetryAttempts: 2, RetryDelay: "50ms", MaxTotalTimeout: "2s", FallbackEnabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RetryDelay != 50*time.Millisecond || out.MaxTotalTimeout != 2*time.Second || !out.FallbackEnabled {
		t.Errorf("unexpected config %+v", out)
	}
	if _, err := NewConfig(&config.InferenceConfig{RetryDelay: "x"}); err == nil {
		t.Errorf("expected parse error")
	}
}
