package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{Driver: StorageDriverJSON, DataDir: "./data"},
		Assistant: AssistantConfig{
			IntentMinConfidence:     0.5,
			IntentSuggestConfidence: 0.3,
			EmotionThreshold:        0.5,
			WorkloadHorizonDays:     7,
		},
		Inference: InferenceConfig{
			Providers: []ProviderConfig{{Name: "lexicon", Enabled: true, Priority: 1}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "postgres" }, wantErr: "storage.driver"},
		{name: "suggest above min", mutate: func(c *Config) { c.Assistant.IntentSuggestConfidence = 0.8 }, wantErr: "intent_suggest_confidence"},
		{name: "zero horizon", mutate: func(c *Config) { c.Assistant.WorkloadHorizonDays = 0 }, wantErr: "workload_horizon_days"},
		{
			name: "duplicate priority",
			mutate: func(c *Config) {
				c.Inference.Providers = append(c.Inference.Providers, ProviderConfig{Name: "ollama", Enabled: true, Priority: 1})
			},
			wantErr: "duplicate priority",
		},
		{
			name: "all disabled",
			mutate: func(c *Config) {
				c.Inference.Providers[0].Enabled = false
			},
			wantErr: "no enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStoragePaths(t *testing.T) {
	s := StorageConfig{DataDir: "/tmp/hw"}
	if s.AssignmentsPath() != "/tmp/hw/assignments.json" {
		t.Errorf("unexpected assignments path %s", s.AssignmentsPath())
	}
	if s.ChatHistoryPath() != "/tmp/hw/chat_history.json" {
		t.Errorf("unexpected chat history path %s", s.ChatHistoryPath())
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 2, "b": float64(3), "c": "x"}
	if getIntFromMap(m, "a") != 2 || getIntFromMap(m, "b") != 3 || getIntFromMap(m, "c") != 0 {
		t.Errorf("unexpected getIntFromMap results")
	}
}
