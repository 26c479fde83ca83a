package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/llm"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.True(t, cfg.EnableAISuggestions)
	assert.Equal(t, DefaultMaxProcessingTime, cfg.MaxProcessingTime)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.False(t, cfg.Debug)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ENABLE_AI_SUGGESTIONS", "false")
	t.Setenv("MAX_PROCESSING_TIME", "12")
	t.Setenv("WORKERS", "8")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/resumes")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.False(t, cfg.EnableAISuggestions)
	assert.False(t, cfg.SuggestionsEnabled())
	assert.Equal(t, 12*time.Second, cfg.Timeout())
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "postgres://localhost:5432/resumes", cfg.DatabaseURL)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "analyzer.yaml", `
gemini_model: gemini-2.5-pro
max_processing_time: 5
log_json: true
`)

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, 5, cfg.MaxProcessingTime)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "analyzer.yaml", "workers: 2\n")
	t.Setenv("WORKERS", "6")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "invalid yaml", content: "workers: [", errMsg: "failed to read config file"},
		{name: "zero timeout", content: "max_processing_time: 0", errMsg: "config error"},
		{name: "too many workers", content: "workers: 500", errMsg: "config error"},
		{name: "bad database url", content: "database_url: not a url", errMsg: "config error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "analyzer.yaml", tt.content)
			_, err := Load(NewViper(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSuggestionsEnabled(t *testing.T) {
	cfg := &Config{EnableAISuggestions: true}
	assert.False(t, cfg.SuggestionsEnabled(), "no API key")

	cfg.GeminiAPIKey = "key"
	assert.True(t, cfg.SuggestionsEnabled())
}

func TestLLMConfig(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierStandard), cfg.LLMConfig().GetModel(llm.TierStandard))

	cfg.GeminiModel = "gemini-custom"
	assert.Equal(t, "gemini-custom", cfg.LLMConfig().GetModel(llm.TierStandard))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), cfg.LLMConfig().GetModel(llm.TierLite))
}
