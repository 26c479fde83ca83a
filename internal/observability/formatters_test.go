package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleResponse() *types.AnalysisResponse {
	start, end, months := "2019", "2021", 24
	skills := []types.Skill{
		{Name: "Go", Category: "programming_languages", Proficiency: "intermediate", Count: 3},
		{Name: "Leadership", Category: "soft_skills", Proficiency: "beginner", Count: 1},
	}
	return &types.AnalysisResponse{
		OverallScore: 71.5,
		ScoreLabel:   "Fair",
		ATSScore:     64,
		Skills: types.SkillsResponse{
			Technical: skills[:1],
			Soft:      skills[1:],
		},
		Experience: []types.WorkExperience{{
			Title: "Backend Engineer", Company: "Acme Corp",
			StartDate: &start, EndDate: &end, DurationMonths: &months,
			Responsibilities: []string{"Built APIs", "Led migrations"},
		}},
		AISuggestions: []types.Suggestion{{
			Category: "content", Priority: "high",
			Suggestion: "Add more quantifiable achievements",
			Examples:   []string{"Increased sales by 25%"},
		}},
		ATSRecommendations: []string{"Use more action verbs"},
		Analysis:           types.AnalysisMetrics{TotalExperienceYears: 2, ActionVerbUsage: 0.5, QuantificationRate: 0.25, TotalWords: 300},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis("resume.txt", sampleResponse())
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS")
	assert.Contains(t, output, "resume.txt")
	assert.Contains(t, output, "71.50 (Fair)")
	assert.Contains(t, output, "Action verbs: 50%")
	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Go [programming_languages, intermediate]")
	assert.Contains(t, output, "Backend Engineer at Acme Corp")
	assert.Contains(t, output, "2019 - 2021 (24 months), 2 bullets")
	assert.Contains(t, output, "ATS RECOMMENDATIONS")
	assert.Contains(t, output, "[high/content] Add more quantifiable achievements")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis("x", nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_EmptySectionsOmitted(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis("", &types.AnalysisResponse{ScoreLabel: "Needs Work"})
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS")
	assert.NotContains(t, output, "SKILLS")
	assert.NotContains(t, output, "bullets")
	assert.NotContains(t, output, "SUGGESTIONS")
}

func TestPrintExperience_UnknownDates(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience([]types.WorkExperience{{Title: "Position", Company: "Company"}})
	assert.Contains(t, buf.String(), "dates unknown, 0 bullets")
}

func TestPrintSuggestions_Truncated(t *testing.T) {
	suggestions := make([]types.Suggestion, 7)
	for i := range suggestions {
		suggestions[i] = types.Suggestion{Category: "content", Priority: "low", Suggestion: "Tighten wording"}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions(suggestions)
	assert.Contains(t, buf.String(), "... and 2 more suggestions")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&types.MatchResult{
		OverallMatch:    68.33,
		SkillsMatch:     50,
		ExperienceMatch: 80,
		RequiredYears:   5,
		ResumeYears:     4,
		DegreeLevel:     "Bachelors",
		MatchingSkills:  []string{"go", "postgresql"},
		MissingSkills:   []string{"aws", "docker", "kubernetes", "terraform", "python", "rust"},
		Recommendations: []types.MatchRecommendation{{
			Priority: "high", Title: "Add Missing Skills", Action: "Add these skills if you have them: aws, docker",
		}},
		Job: types.JobPostingHeader{Title: "Platform Engineer", Company: "Initech"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "80.00 (4.0 of 5 years)")
	assert.Contains(t, output, "Matching: go, postgresql")
	assert.Contains(t, output, "... and 1 more skills")
	assert.Contains(t, output, "MATCH RECOMMENDATIONS")
	assert.Contains(t, output, "[high] Add Missing Skills")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("é", 100))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintQuality(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQuality(suggestions.Quality{
		WritingQuality:    "Clear",
		OverallImpression: "Strong backend profile",
	})
	output := buf.String()

	assert.Contains(t, output, "CONTENT QUALITY")
	assert.Contains(t, output, "Writing:        Clear")
	assert.NotContains(t, output, "Specificity")
	assert.Contains(t, output, "Strong backend profile")
}
