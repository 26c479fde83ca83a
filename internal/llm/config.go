// Package llm provides the LLM client used for optional suggestion generation and job
// posting extraction. Analysis never depends on it succeeding.
package llm

import "time"

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short structured extraction (job postings)
	TierLite ModelTier = "lite"
	// TierStandard is for resume review and suggestions
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for long-form rewriting
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider, the only one implemented.
const ProviderGemini Provider = "gemini"

// Config holds model selection and call behaviour
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	MaxAttempts     int           // total attempts per call, including the first
	RetryBaseDelay  time.Duration // doubled after every failed attempt
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     0.7,
		MaxOutputTokens: 1000,
		MaxAttempts:     3,
		RetryBaseDelay:  time.Second,
	}
}

// GetModel returns the model name for a tier, falling back to standard and then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c using model for tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := *c
	next.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return &next
}
