// Package metrics computes writing-quality metrics for resume text.
package metrics

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Calculator computes content metrics against a lexicon.
type Calculator struct {
	lex     *lexicon.Lexicon
	toolkit nlp.Toolkit
}

// NewCalculator creates a Calculator.
func NewCalculator(lex *lexicon.Lexicon, toolkit nlp.Toolkit) *Calculator {
	return &Calculator{lex: lex, toolkit: toolkit}
}

// Compute returns the content metrics of text. TotalExperienceYears is left at zero; it is
// derived from extracted experience by the caller. Only a toolkit failure returns an error.
func (c *Calculator) Compute(text string) (types.AnalysisMetrics, error) {
	var m types.AnalysisMetrics

	words, err := nlp.CountWords(c.toolkit, text)
	if err != nil {
		return m, fmt.Errorf("failed to count words: %w", err)
	}
	m.TotalWords = words

	bullets := ExtractBullets(text)
	if n := float64(len(bullets)); n > 0 {
		var verbs, quantified, weak, bulletWords int
		for _, b := range bullets {
			if c.StartsWithActionVerb(b) {
				verbs++
			}
			if HasDigit(b) {
				quantified++
			}
			if c.lex.ContainsWeakVerb(b) {
				weak++
			}
			bulletWords += len(strings.Fields(b))
		}
		m.ActionVerbUsage = float64(verbs) / n
		m.QuantificationRate = float64(quantified) / n
		m.WeakVerbUsage = float64(weak) / n
		m.AvgBulletLength = float64(bulletWords) / n
	}

	if m.TotalWords > 0 {
		m.KeywordDensity = float64(c.KeywordsPresent(text)) / float64(m.TotalWords) * 100
	}

	return m, nil
}

// StartsWithActionVerb reports whether the first whitespace-delimited token of bullet,
// lower-cased, is an action verb.
func (c *Calculator) StartsWithActionVerb(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	return c.lex.IsActionVerb(strings.ToLower(fields[0]))
}

// KeywordsPresent counts the distinct ATS keywords appearing anywhere in text.
func (c *Calculator) KeywordsPresent(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, kw := range c.lex.ATSKeywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
