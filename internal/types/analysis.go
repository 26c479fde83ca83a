package types

import "time"

// AnalysisMetrics holds writing-quality metrics computed from the resume text
type AnalysisMetrics struct {
	TotalExperienceYears float64 `json:"total_experience_years"`
	ActionVerbUsage      float64 `json:"action_verb_usage"`   // fraction of bullets, 0.0-1.0
	QuantificationRate   float64 `json:"quantification_rate"` // fraction of bullets with a digit
	KeywordDensity       float64 `json:"keyword_density"`     // distinct ATS keywords per 100 words
	AvgBulletLength      float64 `json:"avg_bullet_length"`   // words per bullet
	TotalWords           int     `json:"total_words"`
	WeakVerbUsage        float64 `json:"weak_verb_usage"` // fraction of bullets with a weak phrase
}

// Suggestion is an improvement suggestion produced by a suggestion generator.
// Its content is accepted verbatim.
type Suggestion struct {
	Category   string   `json:"category"`
	Priority   string   `json:"priority"`
	Suggestion string   `json:"suggestion"`
	Examples   []string `json:"examples"`
	Rationale  *string  `json:"rationale"`
}

// ScoreBreakdown holds the four weighted sub-scores of the overall score
type ScoreBreakdown struct {
	SkillsDiversity float64 `json:"skills_diversity"`
	ExperienceDepth float64 `json:"experience_depth"`
	ContentQuality  float64 `json:"content_quality"`
	ATSOptimization float64 `json:"ats_optimization"`
}

// AnalysisResult is the in-memory result of analyzing one resume
type AnalysisResult struct {
	OverallScore    float64
	ATSScore        float64
	Skills          []Skill
	Experience      []WorkExperience
	Education       []Education
	Suggestions     []Suggestion
	Metrics         AnalysisMetrics
	Breakdown       ScoreBreakdown
	Recommendations []string
	ProcessingTime  time.Duration
}

// AnalysisResponse is the serialized shape of an AnalysisResult
type AnalysisResponse struct {
	OverallScore       float64          `json:"overall_score"`
	ScoreLabel         string           `json:"score_label"`
	ATSScore           float64          `json:"ats_score"`
	Skills             SkillsResponse   `json:"skills"`
	Experience         []WorkExperience `json:"experience"`
	Education          []Education      `json:"education"`
	AISuggestions      []Suggestion     `json:"ai_suggestions"`
	ATSRecommendations []string         `json:"ats_recommendations"`
	Analysis           AnalysisMetrics  `json:"analysis"`
	Breakdown          ScoreBreakdown   `json:"breakdown"`
	ProcessingTime     float64          `json:"processing_time"` // seconds
}

// SkillsResponse groups skills into technical, soft and per-category lists
type SkillsResponse struct {
	Technical  []Skill            `json:"technical"`
	Soft       []Skill            `json:"soft"`
	Categories map[string][]Skill `json:"categories"`
}
