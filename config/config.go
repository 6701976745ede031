package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Homework assistant specifics
	Storage        StorageConfig
	Assistant      AssistantConfig
	GoogleCalendar GoogleCalendarConfig

	// Local inference backends
	Inference InferenceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	// AllowRemote accepts requests from other machines.
	AllowRemote bool
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// Storage drivers.
const (
	StorageDriverJSON   = "json"
	StorageDriverBolt   = "bolt"
	StorageDriverSQLite = "sqlite"
)

type StorageConfig struct {
	Driver  string
	DataDir string
}

// AssignmentsPath is the assignments file for the json driver.
func (s StorageConfig) AssignmentsPath() string {
	return filepath.Join(s.DataDir, "assignments.json")
}

// ChatHistoryPath is the conversation file for the json driver.
func (s StorageConfig) ChatHistoryPath() string {
	return filepath.Join(s.DataDir, "chat_history.json")
}

// BoltPath is the database file for the bolt driver.
func (s StorageConfig) BoltPath() string {
	return filepath.Join(s.DataDir, "homework.bolt")
}

// SQLitePath is the database file for the sqlite driver.
func (s StorageConfig) SQLitePath() string {
	return filepath.Join(s.DataDir, "homework.db")
}

// AssistantConfig tunes classification, fusion and analysis.
type AssistantConfig struct {
	Timezone                string
	IntentMinConfidence     float64
	IntentSuggestConfidence float64
	IntentEpsilon           float64
	EmotionThreshold        float64
	InferenceTimeout        time.Duration
	WorkloadHorizonDays     int
	HistoryLimit            int
	ContextTTL              time.Duration
	ContextCapacity         int
	ClassifierCacheSize     int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// InferenceConfig holds configuration for the scoring provider layer
type InferenceConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single scoring provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/homework/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/homework/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowRemote = viper.GetBool("http_server.allow_remote")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.DataDir = expandHome(viper.GetString("storage.data_dir"))

	// Assistant
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.IntentMinConfidence = viper.GetFloat64("assistant.intent_min_confidence")
	cfg.Assistant.IntentSuggestConfidence = viper.GetFloat64("assistant.intent_suggest_confidence")
	cfg.Assistant.IntentEpsilon = viper.GetFloat64("assistant.intent_epsilon")
	cfg.Assistant.EmotionThreshold = viper.GetFloat64("assistant.emotion_threshold")
	cfg.Assistant.InferenceTimeout = viper.GetDuration("assistant.inference_timeout")
	cfg.Assistant.WorkloadHorizonDays = viper.GetInt("assistant.workload_horizon_days")
	cfg.Assistant.HistoryLimit = viper.GetInt("assistant.history_limit")
	cfg.Assistant.ContextTTL = viper.GetDuration("assistant.context_ttl")
	cfg.Assistant.ContextCapacity = viper.GetInt("assistant.context_capacity")
	cfg.Assistant.ClassifierCacheSize = viper.GetInt("assistant.classifier_cache_size")

	// Google Calendar (optional export target)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Inference providers
	cfg.Inference.FallbackEnabled = viper.GetBool("inference.fallback_enabled")
	cfg.Inference.RetryAttempts = viper.GetInt("inference.retry_attempts")
	cfg.Inference.RetryDelay = viper.GetString("inference.retry_delay")
	cfg.Inference.MaxTotalTimeout = viper.GetString("inference.max_total_timeout")

	if viper.IsSet("inference.providers") {
		providersRaw := viper.Get("inference.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						Endpoint: expandEnvVar(getStringFromMap(providerMap, "endpoint")),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.Inference.Providers = append(cfg.Inference.Providers, provider)
				}
			}
		}
	}

	// Without any configured provider the built-in lexicon scorer is used.
	if len(cfg.Inference.Providers) == 0 {
		cfg.Inference.Providers = []ProviderConfig{{Name: "lexicon", Enabled: true, Priority: 1}}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "127.0.0.1")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allow_remote", false)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)

	viper.SetDefault("storage.driver", StorageDriverJSON)
	viper.SetDefault("storage.data_dir", "./data")

	viper.SetDefault("assistant.timezone", "Local")
	viper.SetDefault("assistant.intent_min_confidence", 0.5)
	viper.SetDefault("assistant.intent_suggest_confidence", 0.3)
	viper.SetDefault("assistant.intent_epsilon", 0.02)
	viper.SetDefault("assistant.emotion_threshold", 0.5)
	viper.SetDefault("assistant.inference_timeout", "2s")
	viper.SetDefault("assistant.workload_horizon_days", 7)
	viper.SetDefault("assistant.history_limit", 50)
	viper.SetDefault("assistant.context_ttl", "30m")
	viper.SetDefault("assistant.context_capacity", 16)
	viper.SetDefault("assistant.classifier_cache_size", 256)

	// Inference defaults
	viper.SetDefault("inference.fallback_enabled", true)
	viper.SetDefault("inference.retry_attempts", 1)
	viper.SetDefault("inference.retry_delay", "100ms")
	viper.SetDefault("inference.max_total_timeout", "2s")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverJSON, StorageDriverBolt, StorageDriverSQLite:
	default:
		return fmt.Errorf("storage.driver %q is not one of json, bolt, sqlite", cfg.Storage.Driver)
	}
	if cfg.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}

	a := cfg.Assistant
	if a.IntentSuggestConfidence > a.IntentMinConfidence {
		return fmt.Errorf("assistant.intent_suggest_confidence must not exceed intent_min_confidence")
	}
	if a.IntentMinConfidence < 0 || a.IntentMinConfidence > 1 || a.EmotionThreshold < 0 || a.EmotionThreshold > 1 {
		return fmt.Errorf("assistant confidence thresholds must be within [0, 1]")
	}
	if a.WorkloadHorizonDays <= 0 {
		return fmt.Errorf("assistant.workload_horizon_days must be positive")
	}

	return validateInferenceConfig(&cfg.Inference)
}

// validateInferenceConfig validates the inference provider configuration
func validateInferenceConfig(cfg *InferenceConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled inference providers")
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
