package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/nlp"
)

type failingToolkit struct{}

func (failingToolkit) Recognize(string) ([]nlp.Entity, error) {
	return nil, &nlp.ToolkitError{Op: "recognize", Cause: errors.New("boom")}
}

func (failingToolkit) Tokenize(string) ([]nlp.Token, error) {
	return nil, &nlp.ToolkitError{Op: "tokenize", Cause: errors.New("boom")}
}

func TestExtractBullets(t *testing.T) {
	text := "Header line\n• Led a team\n  * Built 3 services\n- \n-no space\n○\tShipped v2\n▪ Cut costs\n· Reviewed code\nplain"
	assert.Equal(t, []string{"Led a team", "Built 3 services", "Shipped v2", "Cut costs", "Reviewed code"}, ExtractBullets(text))
	assert.Empty(t, ExtractBullets("no bullets here"))
}

func TestCompute_ZeroBullets(t *testing.T) {
	calc := NewCalculator(lexicon.Default(), nlp.NewRuleToolkit())
	m, err := calc.Compute("A short paragraph without any bullet points at all.")
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.ActionVerbUsage)
	assert.Equal(t, 0.0, m.QuantificationRate)
	assert.Equal(t, 0.0, m.AvgBulletLength)
	assert.Equal(t, 0.0, m.WeakVerbUsage)
	assert.Equal(t, 9, m.TotalWords)
}

func TestCompute_ZeroWords(t *testing.T) {
	calc := NewCalculator(lexicon.Default(), nlp.NewRuleToolkit())
	m, err := calc.Compute("")
	require.NoError(t, err)
	assert.Zero(t, m.TotalWords)
	assert.Zero(t, m.KeywordDensity)
}

func TestCompute_Rates(t *testing.T) {
	text := "Experience\n" +
		"- Led migration of 12 services\n" +
		"- Responsible for on-call rotation\n" +
		"- Improved latency by 40%\n" +
		"- worked on dashboards"
	calc := NewCalculator(lexicon.Default(), nlp.NewRuleToolkit())
	m, err := calc.Compute(text)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, m.ActionVerbUsage, 1e-9)
	assert.InDelta(t, 0.5, m.QuantificationRate, 1e-9)
	assert.InDelta(t, 0.5, m.WeakVerbUsage, 1e-9)
	assert.InDelta(t, 4.0, m.AvgBulletLength, 1e-9)
	assert.Equal(t, 17, m.TotalWords)
	// only "experience" is present: 1 / 17 * 100
	assert.InDelta(t, 100.0/17.0, m.KeywordDensity, 1e-9)
}

func TestKeywordsPresent_CountsDistinct(t *testing.T) {
	calc := NewCalculator(lexicon.Default(), nlp.NewRuleToolkit())
	assert.Equal(t, 1, calc.KeywordsPresent("team team team TEAM"))
	assert.Equal(t, 3, calc.KeywordsPresent("Team leadership and project work"))
}

func TestStartsWithActionVerb(t *testing.T) {
	calc := NewCalculator(lexicon.Default(), nlp.NewRuleToolkit())
	tests := []struct {
		bullet string
		want   bool
	}{
		{"Led the team", true},
		{"LED the team", true},
		{"Led, then followed", false},
		{"Responsible for the team", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.bullet, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.StartsWithActionVerb(tt.bullet))
		})
	}
}

func TestHasDigit(t *testing.T) {
	assert.True(t, HasDigit("cut costs by 30%"))
	assert.False(t, HasDigit("cut costs by thirty percent"))
	assert.False(t, HasDigit("٣ arabic-indic digit"))
}

func TestCompute_ToolkitFailure(t *testing.T) {
	calc := NewCalculator(lexicon.Default(), failingToolkit{})
	_, err := calc.Compute("some text")
	var tkErr *nlp.ToolkitError
	assert.True(t, errors.As(err, &tkErr))
}
