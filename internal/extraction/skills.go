package extraction

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// wholeWord anchors a lower-cased, escaped keyword on word boundaries.
func wholeWord(keyword string) string {
	return `\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`
}

// Proficiency buckets a mention count.
func Proficiency(count int) string {
	switch {
	case count >= 5:
		return types.ProficiencyAdvanced
	case count >= 3:
		return types.ProficiencyIntermediate
	default:
		return types.ProficiencyBeginner
	}
}

// ExtractSkills returns every lexicon skill mentioned in text, in lexicon order.
// Matching is whole-word and case-insensitive; Count is the number of non-overlapping matches.
func (e *Extractor) ExtractSkills(text string) []types.Skill {
	lower := strings.ToLower(text)
	skills := make([]types.Skill, 0)

	for _, p := range e.skills {
		count := len(p.re.FindAllStringIndex(lower, -1))
		if count == 0 {
			continue
		}
		skill := types.Skill{
			Name:        p.name,
			Category:    p.category,
			Proficiency: Proficiency(count),
			Count:       count,
		}
		if containsSkill(skills, skill) {
			continue
		}
		skills = append(skills, skill)
	}

	e.logger.Debug("extracted skills", zap.Int("count", len(skills)))
	return skills
}

func containsSkill(skills []types.Skill, s types.Skill) bool {
	for _, existing := range skills {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}
