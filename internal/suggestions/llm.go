package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	promptFile = "suggestions.json"

	suggestionExcerptRunes = 1500
	qualityExcerptRunes    = 2000
)

// LLM generates suggestions with a language model
type LLM struct {
	client llm.Client
	tier   llm.ModelTier
	logger *zap.Logger
}

// NewLLM creates an LLM-backed generator using the standard model tier.
func NewLLM(client llm.Client, logger *zap.Logger) *LLM {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLM{client: client, tier: llm.TierStandard, logger: logger}
}

// Generate asks the model for suggestions and parses its answer.
func (g *LLM) Generate(ctx context.Context, req Request) ([]types.Suggestion, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	out, err := ParseResponse(resp)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("generated AI suggestions", zap.Int("count", len(out)))
	return out, nil
}

// BuildPrompt renders the suggestion prompt for req.
func BuildPrompt(req Request) (string, error) {
	return prompts.Render(promptFile, "generate-suggestions", map[string]string{
		"System":             prompts.MustGet(promptFile, "review-system"),
		"Excerpt":            excerpt(req.Text, suggestionExcerptRunes),
		"SkillCount":         strconv.Itoa(len(req.Skills)),
		"ExperienceCount":    strconv.Itoa(len(req.Experience)),
		"ActionVerbUsage":    percent(req.Metrics.ActionVerbUsage),
		"QuantificationRate": percent(req.Metrics.QuantificationRate),
	})
}

type rawSuggestion struct {
	Category   *string  `json:"category"`
	Priority   *string  `json:"priority"`
	Suggestion string   `json:"suggestion"`
	Examples   []string `json:"examples"`
	Rationale  *string  `json:"rationale"`
}

// ParseResponse turns a model answer into suggestions. A JSON array is read item by item
// with category "content" and priority "medium" as defaults; other valid JSON yields no
// suggestions; anything else is read as a numbered list.
func ParseResponse(resp string) ([]types.Suggestion, error) {
	cleaned := llm.CleanJSONBlock(resp)
	if !json.Valid([]byte(cleaned)) {
		return parseNumberedText(resp), nil
	}
	if !strings.HasPrefix(cleaned, "[") {
		return []types.Suggestion{}, nil
	}

	var items []rawSuggestion
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions response: %w", err)
	}

	out := make([]types.Suggestion, 0, len(items))
	for _, item := range items {
		s := types.Suggestion{
			Category:   CategoryContent,
			Priority:   PriorityMedium,
			Suggestion: item.Suggestion,
			Examples:   item.Examples,
			Rationale:  item.Rationale,
		}
		if item.Category != nil {
			s.Category = *item.Category
		}
		if item.Priority != nil {
			s.Priority = *item.Priority
		}
		if s.Examples == nil {
			s.Examples = []string{}
		}
		out = append(out, s)
	}
	return out, nil
}

// parseNumberedText groups lines into suggestions, starting a new one at every line that
// begins with a number followed by a period ("1.", "12.").
func parseNumberedText(text string) []types.Suggestion {
	var out []types.Suggestion
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		out = append(out, types.Suggestion{
			Category:   CategoryContent,
			Priority:   PriorityMedium,
			Suggestion: strings.Join(current, " "),
			Examples:   []string{},
		})
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isNumbered(line) {
			flush()
			_, rest, _ := strings.Cut(line, ".")
			current = []string{strings.TrimSpace(rest)}
			continue
		}
		current = append(current, line)
	}
	flush()

	if out == nil {
		return []types.Suggestion{}
	}
	return out
}

func isNumbered(line string) bool {
	runes := []rune(line)
	if !unicode.IsDigit(runes[0]) {
		return false
	}
	head := runes[:min(3, len(runes))]
	return strings.ContainsRune(string(head), '.')
}

// Quality is a model's free-form assessment of resume writing
type Quality struct {
	WritingQuality    string `json:"writing_quality,omitempty"`
	Quantification    string `json:"quantification,omitempty"`
	ActionVerbs       string `json:"action_verbs,omitempty"`
	Specificity       string `json:"specificity,omitempty"`
	OverallImpression string `json:"overall_impression"`
}

// QualityUnavailable is the overall impression reported when the model cannot be reached.
const QualityUnavailable = "Unable to analyze content quality at this time."

// AssessQuality asks the model for a short assessment of the resume writing. A non-JSON
// answer becomes the overall impression.
func AssessQuality(ctx context.Context, client llm.Client, text string) (Quality, error) {
	prompt, err := prompts.Render(promptFile, "assess-quality", map[string]string{
		"Excerpt": excerpt(text, qualityExcerptRunes),
	})
	if err != nil {
		return Quality{}, err
	}

	resp, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return Quality{OverallImpression: QualityUnavailable}, fmt.Errorf("failed to assess content quality: %w", err)
	}

	var q Quality
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &q); err != nil {
		return Quality{OverallImpression: strings.TrimSpace(resp)}, nil
	}
	return q, nil
}

func excerpt(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

func percent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 0, 64) + "%"
}
