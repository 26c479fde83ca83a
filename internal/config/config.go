// Package config loads CLI configuration from an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-analyzer/internal/llm"
)

// AppName is used for the default config file name
const AppName = "resume_analyzer"

// Configuration keys. Each key is also read from the environment variable of the same
// name in upper case, e.g. gemini_api_key from GEMINI_API_KEY.
const (
	KeyGeminiAPIKey        = "gemini_api_key"
	KeyGeminiModel         = "gemini_model"
	KeyEnableAISuggestions = "enable_ai_suggestions"
	KeyMaxProcessingTime   = "max_processing_time"
	KeyDatabaseURL         = "database_url"
	KeyWorkers             = "workers"
	KeyLogJSON             = "log_json"
	KeyDebug               = "debug"
)

// Defaults
const (
	DefaultMaxProcessingTime = 30 // seconds
	DefaultWorkers           = 4
)

// Config is the runtime configuration of the CLI.
type Config struct {
	GeminiAPIKey        string `mapstructure:"gemini_api_key" json:"-"`
	GeminiModel         string `mapstructure:"gemini_model" json:"gemini_model,omitempty"`
	EnableAISuggestions bool   `mapstructure:"enable_ai_suggestions" json:"enable_ai_suggestions"`
	MaxProcessingTime   int    `mapstructure:"max_processing_time" json:"max_processing_time" validate:"min=1,max=600"` // seconds
	DatabaseURL         string `mapstructure:"database_url" json:"-" validate:"omitempty,url"`
	Workers             int    `mapstructure:"workers" json:"workers" validate:"min=1,max=64"`
	LogJSON             bool   `mapstructure:"log_json" json:"log_json"`
	Debug               bool   `mapstructure:"debug" json:"debug"`
}

// NewViper returns a viper instance with defaults set and environment lookup enabled.
// Callers bind CLI flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyGeminiAPIKey, "")
	v.SetDefault(KeyGeminiModel, "")
	v.SetDefault(KeyEnableAISuggestions, true)
	v.SetDefault(KeyMaxProcessingTime, DefaultMaxProcessingTime)
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyDebug, false)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path (when set) into v, then decodes and validates.
// Without a path, resume_analyzer.yaml in the working directory is used if present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(AppName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Timeout is the per-analysis time limit.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.MaxProcessingTime) * time.Second
}

// SuggestionsEnabled reports whether the LLM suggestion generator should be used.
func (c *Config) SuggestionsEnabled() bool {
	return c.EnableAISuggestions && c.GeminiAPIKey != ""
}

// LLMConfig returns the LLM configuration, overriding the standard tier model when set.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.GeminiModel != "" {
		cfg = cfg.WithModel(llm.TierStandard, c.GeminiModel)
	}
	return cfg
}
