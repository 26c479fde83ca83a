package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates free text using the model for tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates a JSON document using the model for tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// APICallError is returned when every attempt of a call failed
type APICallError struct {
	Model    string
	Attempts int
	Cause    error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("LLM call to %s failed after %d attempts: %v", e.Model, e.Attempts, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ErrNoAPIKey is returned when a client is created without credentials.
var ErrNoAPIKey = errors.New("API key is required")

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	logger *zap.Logger
	sleep  func(context.Context, time.Duration) error
}

// NewClient creates the client for config.Provider.
func NewClient(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, config, apiKey, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		logger: logger,
		sleep:  sleepContext,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

// GenerateJSON generates JSON content using the specified model tier.
// Markdown code fences around the document are removed.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.Temperature)
	if c.config.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	}
	if asJSON {
		model.ResponseMIMEType = "application/json"
	}

	var text string
	err := retry(ctx, c.config.MaxAttempts, c.config.RetryBaseDelay, c.sleep, func(attempt int) error {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err == nil {
			text, err = extractTextFromResponse(resp)
		}
		if err != nil {
			c.logger.Warn("LLM call failed",
				zap.String("model", modelName),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", c.config.MaxAttempts),
				zap.Error(err),
			)
		}
		return err
	})
	if err != nil {
		return "", &APICallError{Model: modelName, Attempts: max(1, c.config.MaxAttempts), Cause: err}
	}
	return text, nil
}

// retry calls fn up to attempts times, sleeping base, 2*base, 4*base... between failures.
// It stops early when ctx is done.
func retry(ctx context.Context, attempts int, base time.Duration, sleep func(context.Context, time.Duration) error, fn func(attempt int) error) error {
	attempts = max(1, attempts)
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if serr := sleep(ctx, base<<(attempt-1)); serr != nil {
			return errors.Join(err, serr)
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.TrimSpace(strings.Join(parts, "")), nil
}
