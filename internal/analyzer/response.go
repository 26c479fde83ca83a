package analyzer

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ToResponse converts a result into its serialized shape. Scores and rates are rounded to
// two decimals, years and bullet length to one, processing time to hundredths of a second.
// Every list is non-nil so it serializes as [].
func ToResponse(r *types.AnalysisResult, lex *lexicon.Lexicon) types.AnalysisResponse {
	if lex == nil {
		lex = lexicon.Default()
	}

	skills := types.SkillsResponse{
		Technical:  []types.Skill{},
		Soft:       []types.Skill{},
		Categories: map[string][]types.Skill{},
	}
	for _, s := range r.Skills {
		if lex.IsTechnical(s.Category) {
			skills.Technical = append(skills.Technical, s)
		}
		if s.Category == lex.SoftSkillKey {
			skills.Soft = append(skills.Soft, s)
		}
		skills.Categories[s.Category] = append(skills.Categories[s.Category], s)
	}

	m := r.Metrics
	overall := round(r.OverallScore, 2)
	return types.AnalysisResponse{
		OverallScore:       overall,
		ScoreLabel:         scoring.Label(overall, lex.ScoreThresholds),
		ATSScore:           round(r.ATSScore, 2),
		Skills:             skills,
		Experience:         orEmpty(r.Experience),
		Education:          orEmpty(r.Education),
		AISuggestions:      orEmpty(r.Suggestions),
		ATSRecommendations: orEmpty(r.Recommendations),
		Analysis: types.AnalysisMetrics{
			TotalExperienceYears: round(m.TotalExperienceYears, 1),
			ActionVerbUsage:      round(m.ActionVerbUsage, 2),
			QuantificationRate:   round(m.QuantificationRate, 2),
			KeywordDensity:       round(m.KeywordDensity, 2),
			AvgBulletLength:      round(m.AvgBulletLength, 1),
			TotalWords:           m.TotalWords,
			WeakVerbUsage:        round(m.WeakVerbUsage, 2),
		},
		Breakdown: types.ScoreBreakdown{
			SkillsDiversity: round(r.Breakdown.SkillsDiversity, 2),
			ExperienceDepth: round(r.Breakdown.ExperienceDepth, 2),
			ContentQuality:  round(r.Breakdown.ContentQuality, 2),
			ATSOptimization: round(r.Breakdown.ATSOptimization, 2),
		},
		ProcessingTime: round(r.ProcessingTime.Seconds(), 2),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
