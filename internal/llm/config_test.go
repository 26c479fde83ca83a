package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	// Empty config should return empty string
	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))

	// New config should have custom model
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))

	// Other tiers should be copied
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
}

func TestModelTierConstants(t *testing.T) {
	assert.Equal(t, ModelTier("lite"), TierLite)
	assert.Equal(t, ModelTier("standard"), TierStandard)
	assert.Equal(t, ModelTier("advanced"), TierAdvanced)
}

func TestDefaultConfig_CallBehaviour(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 3, config.MaxAttempts)
	assert.Equal(t, time.Second, config.RetryBaseDelay)
	assert.Equal(t, int32(1000), config.MaxOutputTokens)
	assert.InDelta(t, 0.7, float64(config.Temperature), 1e-6)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "", nil)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key", nil)
	assert.ErrorContains(t, err, "unsupported LLM provider")
}
