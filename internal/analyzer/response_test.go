package analyzer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestToResponse_Rounding(t *testing.T) {
	r := &types.AnalysisResult{
		OverallScore: 76.456,
		ATSScore:     59.994,
		Metrics: types.AnalysisMetrics{
			TotalExperienceYears: 8.4166,
			ActionVerbUsage:      0.666666,
			QuantificationRate:   0.333333,
			KeywordDensity:       4.7619,
			AvgBulletLength:      7.25,
			TotalWords:           210,
			WeakVerbUsage:        0.125,
		},
		Breakdown:      types.ScoreBreakdown{SkillsDiversity: 81.111, ATSOptimization: 59.994},
		ProcessingTime: 1234567 * time.Microsecond,
	}

	resp := ToResponse(r, lexicon.Default())

	assert.Equal(t, 76.46, resp.OverallScore)
	assert.Equal(t, "Good", resp.ScoreLabel)
	assert.Equal(t, 59.99, resp.ATSScore)
	assert.Equal(t, 8.4, resp.Analysis.TotalExperienceYears)
	assert.Equal(t, 0.67, resp.Analysis.ActionVerbUsage)
	assert.Equal(t, 0.33, resp.Analysis.QuantificationRate)
	assert.Equal(t, 4.76, resp.Analysis.KeywordDensity)
	assert.Equal(t, 7.3, resp.Analysis.AvgBulletLength)
	assert.Equal(t, 210, resp.Analysis.TotalWords)
	assert.Equal(t, 81.11, resp.Breakdown.SkillsDiversity)
	assert.Equal(t, 1.23, resp.ProcessingTime)
}

func TestToResponse_SkillGroups(t *testing.T) {
	r := &types.AnalysisResult{Skills: []types.Skill{
		{Name: "Go", Category: "programming_languages", Proficiency: "beginner", Count: 1},
		{Name: "Docker", Category: "tools", Proficiency: "beginner", Count: 1},
		{Name: "Leadership", Category: "soft_skills", Proficiency: "beginner", Count: 1},
		{Name: "Kanban", Category: "methodologies", Proficiency: "beginner", Count: 1},
	}}

	resp := ToResponse(r, nil)

	assert.Len(t, resp.Skills.Technical, 2)
	require.Len(t, resp.Skills.Soft, 1)
	assert.Equal(t, "Leadership", resp.Skills.Soft[0].Name)
	assert.Len(t, resp.Skills.Categories, 4)
	assert.Equal(t, "Kanban", resp.Skills.Categories["methodologies"][0].Name)
}

func TestToResponse_EmptyListsSerializeAsArrays(t *testing.T) {
	out, err := json.Marshal(ToResponse(&types.AnalysisResult{}, nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	for _, key := range []string{"experience", "education", "ai_suggestions", "ats_recommendations"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
	skills := decoded["skills"].(map[string]any)
	assert.Equal(t, []any{}, skills["technical"])
	assert.Equal(t, map[string]any{}, skills["categories"])
	assert.Equal(t, "Needs Work", decoded["score_label"])
}
