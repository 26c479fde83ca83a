// Package scoring turns extracted resume data into ATS and overall scores.
//
// Every threshold and weight here is product-calibrated. Changing one changes the scores
// users see, so treat them as part of the public contract.
package scoring

import (
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the overall score.
const (
	WeightSkillsDiversity = 0.30
	WeightExperienceDepth = 0.25
	WeightContentQuality  = 0.25
	WeightATSOptimization = 0.20
)

// Recommendation texts, emitted in this order.
const (
	RecAddKeywords     = "Add more industry-specific keywords"
	RecKeywordDensity  = "Increase keyword density for better ATS matching"
	RecMoreSkills      = "Include more relevant technical skills"
	RecMoreActionVerbs = "Start more bullet points with strong action verbs"
)

// Input is everything the scores are computed from.
type Input struct {
	Skills     []types.Skill
	Experience []types.WorkExperience
	Metrics    types.AnalysisMetrics
}

// ATSScore estimates applicant-tracking-system compatibility, in [0,100].
func ATSScore(skillCount int, m types.AnalysisMetrics) float64 {
	var score float64

	switch {
	case skillCount >= 15:
		score += 40
	case skillCount >= 10:
		score += 30
	case skillCount >= 5:
		score += 20
	default:
		score += float64(skillCount) * 3
	}

	switch {
	case m.KeywordDensity >= 0.15:
		score += 30
	case m.KeywordDensity >= 0.10:
		score += 20
	default:
		score += m.KeywordDensity * 150
	}

	score += m.ActionVerbUsage * 20
	score += m.QuantificationRate * 10

	return clamp(score)
}

// SkillsDiversity scores skill count and the number of distinct categories.
func SkillsDiversity(skills []types.Skill) float64 {
	count := len(skills)
	categories := make(map[string]struct{})
	for _, s := range skills {
		categories[s.Category] = struct{}{}
	}

	var countScore float64
	switch {
	case count >= 15:
		countScore = 70
	case count >= 10:
		countScore = 50
	case count >= 5:
		countScore = 30
	default:
		countScore = float64(count) * 5
	}

	var diversityScore float64
	switch n := len(categories); {
	case n >= 5:
		diversityScore = 30
	case n >= 3:
		diversityScore = 20
	default:
		diversityScore = float64(n) * 7
	}

	return min(100, countScore+diversityScore)
}

// ExperienceDepth scores years of experience and the number of bullets across all jobs.
func ExperienceDepth(years float64, experience []types.WorkExperience) float64 {
	var yearsScore float64
	switch {
	case years >= 5:
		yearsScore = 60
	case years >= 3:
		yearsScore = 45
	case years >= 1:
		yearsScore = 30
	default:
		yearsScore = years * 20
	}

	bullets := 0
	for _, exp := range experience {
		bullets += exp.BulletCount()
	}

	var qualityScore float64
	switch {
	case bullets >= 15:
		qualityScore = 40
	case bullets >= 10:
		qualityScore = 30
	case bullets >= 5:
		qualityScore = 20
	default:
		qualityScore = float64(bullets) * 3
	}

	return min(100, yearsScore+qualityScore)
}

// ContentQuality scores action verbs, quantification and keyword density.
func ContentQuality(m types.AnalysisMetrics) float64 {
	return m.ActionVerbUsage*40 + m.QuantificationRate*30 + min(30, m.KeywordDensity*200)
}

// Breakdown computes the four sub-scores for in with a precomputed ATS score.
func Breakdown(in Input, ats float64) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		SkillsDiversity: SkillsDiversity(in.Skills),
		ExperienceDepth: ExperienceDepth(in.Metrics.TotalExperienceYears, in.Experience),
		ContentQuality:  ContentQuality(in.Metrics),
		ATSOptimization: ats,
	}
}

// Overall combines a breakdown into the weighted overall score, in [0,100].
func Overall(b types.ScoreBreakdown) float64 {
	return clamp(b.SkillsDiversity*WeightSkillsDiversity +
		b.ExperienceDepth*WeightExperienceDepth +
		b.ContentQuality*WeightContentQuality +
		b.ATSOptimization*WeightATSOptimization)
}

// Recommendations returns the ATS recommendations that apply. The checks are independent.
func Recommendations(ats float64, skillCount int, m types.AnalysisMetrics) []string {
	recs := make([]string, 0, 4)
	if ats < 70 {
		recs = append(recs, RecAddKeywords)
	}
	if m.KeywordDensity < 0.10 {
		recs = append(recs, RecKeywordDensity)
	}
	if skillCount < 10 {
		recs = append(recs, RecMoreSkills)
	}
	if m.ActionVerbUsage < 0.60 {
		recs = append(recs, RecMoreActionVerbs)
	}
	return recs
}

// Scores is the complete scoring output.
type Scores struct {
	ATS             float64
	Overall         float64
	Breakdown       types.ScoreBreakdown
	Recommendations []string
}

// Score runs every scoring step over in.
func Score(in Input) Scores {
	ats := ATSScore(len(in.Skills), in.Metrics)
	b := Breakdown(in, ats)
	return Scores{
		ATS:             ats,
		Overall:         Overall(b),
		Breakdown:       b,
		Recommendations: Recommendations(ats, len(in.Skills), in.Metrics),
	}
}

// Label names a score band using the lexicon thresholds.
func Label(score float64, t lexicon.ScoreThresholds) string {
	switch {
	case score >= t.Excellent:
		return "Excellent"
	case score >= t.Good:
		return "Good"
	case score >= t.Fair:
		return "Fair"
	default:
		return "Needs Work"
	}
}

func clamp(score float64) float64 {
	return max(0, min(100, score))
}
