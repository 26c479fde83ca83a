package suggestions

import (
	"context"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Suggestion categories and priorities
const (
	CategoryContent    = "content"
	CategoryFormatting = "formatting"
	CategoryATS        = "ats"
	CategorySkills     = "skills"
	CategoryExperience = "experience"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Fallback thresholds
const (
	minQuantificationRate = 0.5
	minActionVerbUsage    = 0.6
	minSkillCount         = 10
	minKeywordDensity     = 0.10
)

// Fallback is the deterministic rule-based generator used when no LLM is configured or the
// LLM call fails. It never returns an error.
type Fallback struct{}

// Generate returns rule-based suggestions for req. The formatting suggestion is always last.
func (Fallback) Generate(_ context.Context, req Request) ([]types.Suggestion, error) {
	return FallbackSuggestions(req), nil
}

// FallbackSuggestions applies the fallback rules to req.
func FallbackSuggestions(req Request) []types.Suggestion {
	m := req.Metrics
	var out []types.Suggestion

	if m.QuantificationRate < minQuantificationRate {
		out = append(out, suggestion(CategoryContent, PriorityHigh,
			"Add quantifiable metrics to your achievements",
			"Numbers make your achievements tangible and memorable",
			`Instead of: "Improved system performance"`,
			`Write: "Improved system performance by 40%, reducing load time from 5s to 3s"`,
		))
	}

	if m.ActionVerbUsage < minActionVerbUsage {
		out = append(out, suggestion(CategoryContent, PriorityHigh,
			"Start more bullet points with strong action verbs",
			"Action verbs make your resume more dynamic and impactful",
			`Instead of: "Responsible for managing team"`,
			`Write: "Led cross-functional team of 8 developers"`,
		))
	}

	if m.WeakVerbUsage > 0 {
		out = append(out, suggestion(CategoryContent, PriorityMedium,
			"Replace weak phrases with verbs that show ownership",
			"Phrases like \"responsible for\" describe duties, not results",
			`Instead of: "Helped with the database migration"`,
			`Write: "Migrated 2TB of customer data to PostgreSQL with zero downtime"`,
		))
	}

	if len(req.Skills) < minSkillCount {
		out = append(out, suggestion(CategorySkills, PriorityMedium,
			"Include more relevant technical skills",
			"ATS systems and recruiters scan for specific skill keywords",
			"Add specific technologies, frameworks, and tools you have used",
			"Include both hard skills (programming languages) and soft skills (leadership)",
		))
	}

	if m.KeywordDensity < minKeywordDensity {
		out = append(out, suggestion(CategoryATS, PriorityMedium,
			"Optimize for Applicant Tracking Systems (ATS)",
			"Most companies use ATS to screen resumes before human review",
			"Use industry-standard job titles",
			"Include keywords from the job description",
			"Avoid complex formatting, tables, and graphics",
		))
	}

	out = append(out, suggestion(CategoryFormatting, PriorityLow,
		"Ensure consistent formatting throughout",
		"Consistent formatting shows attention to detail and professionalism",
		`Use consistent date formats (e.g., "Jan 2020" or "01/2020")`,
		"Keep bullet point style uniform",
		"Maintain consistent spacing and font sizes",
	))

	return out
}

func suggestion(category, priority, text, rationale string, examples ...string) types.Suggestion {
	return types.Suggestion{
		Category:   category,
		Priority:   priority,
		Suggestion: text,
		Examples:   examples,
		Rationale:  &rationale,
	}
}
