package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JobPosting represents a job posting to match a resume against
type JobPosting struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company,omitempty"`
	Source         string   `json:"source,omitempty"`
	URL            string   `json:"url,omitempty" validate:"omitempty,url"`
	Description    string   `json:"description" validate:"required,min=20"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

// Validate checks that the posting has a title and a usable description.
func (p *JobPosting) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}
	return nil
}

// MatchResult is the comparison of one resume against one job posting
type MatchResult struct {
	OverallMatch      float64               `json:"overall_match"`
	SkillsMatch       float64               `json:"skills_match"`
	ExperienceMatch   float64               `json:"experience_match"`
	KeywordsMatch     float64               `json:"keywords_match"`
	EducationMatch    float64               `json:"education_match"`
	MatchingSkills    []string              `json:"matching_skills"`
	MissingSkills     []string              `json:"missing_skills"`
	MatchingKeywords  []string              `json:"matching_keywords"`
	SuggestedKeywords []string              `json:"suggested_keywords"`
	RequiredYears     int                   `json:"required_years"`
	ResumeYears       float64               `json:"resume_years"`
	DegreeLevel       string                `json:"degree_level"`
	Recommendations   []MatchRecommendation `json:"recommendations"`
	Job               JobPostingHeader      `json:"job"`
}

// MatchRecommendation is one way to improve a resume's fit for a posting
type MatchRecommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// JobPostingHeader identifies the posting a MatchResult refers to
type JobPostingHeader struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	URL     string `json:"url,omitempty"`
}
