// Package matching compares an analyzed resume with a job posting.
package matching

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the overall match.
const (
	WeightSkills     = 0.40
	WeightExperience = 0.25
	WeightKeywords   = 0.20
	WeightEducation  = 0.15
)

const (
	neutralScore     = 50
	maxKeywordsShown = 5
)

// Degree levels reported in MatchResult.DegreeLevel
const (
	DegreeNone      = "None"
	DegreeBachelors = "Bachelors"
	DegreeMasters   = "Masters"
	DegreePhD       = "PhD"
)

var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:or more\s+)?years`),
	regexp.MustCompile(`minimum\s+(?:of\s+)?(\d+)\s+years`),
	regexp.MustCompile(`at least\s+(\d+)\s+years`),
	regexp.MustCompile(`(\d+)-\d+\s+years`),
}

// Matcher scores resumes against postings. It is safe for concurrent use.
type Matcher struct {
	extractor *extraction.Extractor
}

// New creates a Matcher. extractor finds skills in postings that do not list any.
func New(extractor *extraction.Extractor) *Matcher {
	return &Matcher{extractor: extractor}
}

// Match compares a serialized analysis with job. Scores are in [0,100] and rounded to two
// decimals; skill lists are sorted.
func (m *Matcher) Match(resume *types.AnalysisResponse, job *types.JobPosting) types.MatchResult {
	result := types.MatchResult{
		Job: types.JobPostingHeader{Title: job.Title, Company: job.Company, URL: job.URL},
	}

	result.SkillsMatch, result.MatchingSkills, result.MissingSkills = m.matchSkills(resume, job)

	result.ResumeYears = resume.Analysis.TotalExperienceYears
	result.RequiredYears = RequiredYears(job.Description)
	result.ExperienceMatch = experienceScore(result.ResumeYears, result.RequiredYears)

	result.KeywordsMatch, result.MatchingKeywords, result.SuggestedKeywords = matchKeywords(resume, jobKeywords(job))

	result.DegreeLevel = degreeLevel(resume.Education)
	result.EducationMatch = educationScore(result.DegreeLevel, len(resume.Education) > 0, job.Description)

	result.OverallMatch = round2(result.SkillsMatch*WeightSkills +
		result.ExperienceMatch*WeightExperience +
		result.KeywordsMatch*WeightKeywords +
		result.EducationMatch*WeightEducation)

	result.Recommendations = recommendations(resume, result)
	return result
}

func (m *Matcher) matchSkills(resume *types.AnalysisResponse, job *types.JobPosting) (score float64, matching, missing []string) {
	have := make(map[string]bool)
	for _, s := range resume.Skills.Technical {
		have[strings.ToLower(s.Name)] = true
	}
	for _, s := range resume.Skills.Soft {
		have[strings.ToLower(s.Name)] = true
	}

	want := make(map[string]bool)
	for _, s := range job.RequiredSkills {
		want[strings.ToLower(strings.TrimSpace(s))] = true
	}
	if len(want) == 0 {
		for _, s := range m.extractor.ExtractSkills(job.Description) {
			want[strings.ToLower(s.Name)] = true
		}
	}

	matching, missing = []string{}, []string{}
	for s := range want {
		if have[s] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	if len(want) == 0 {
		return neutralScore, matching, missing
	}
	return round2(float64(len(matching)) / float64(len(want)) * 100), matching, missing
}

// RequiredYears returns the years of experience a description asks for, or 0.
func RequiredYears(description string) int {
	lower := strings.ToLower(description)
	for _, re := range requiredYearsPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func experienceScore(have float64, required int) float64 {
	req := float64(required)
	switch {
	case required == 0 && have > 0:
		return 75
	case required == 0:
		return neutralScore
	case have >= req:
		return 100
	case have >= req*0.8:
		return 80
	case have >= req*0.5:
		return 60
	default:
		return 40
	}
}

func jobKeywords(job *types.JobPosting) []string {
	if len(job.Keywords) > 0 {
		return job.Keywords
	}
	return ExtractRequirementSentences(job.Description)
}

func matchKeywords(resume *types.AnalysisResponse, keywords []string) (score float64, matching, suggested []string) {
	matching, suggested = []string{}, []string{}
	if len(keywords) == 0 {
		return neutralScore, matching, suggested
	}

	text := resumeText(resume)
	var found int
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(strings.TrimSpace(kw))) {
			found++
			if len(matching) < maxKeywordsShown {
				matching = append(matching, kw)
			}
		} else if len(suggested) < maxKeywordsShown {
			suggested = append(suggested, kw)
		}
	}
	return round2(float64(found) / float64(len(keywords)) * 100), matching, suggested
}

// resumeText joins the searchable parts of a resume: skill names, titles, companies,
// responsibilities, degrees and fields of study.
func resumeText(resume *types.AnalysisResponse) string {
	var parts []string
	for _, s := range resume.Skills.Technical {
		parts = append(parts, s.Name)
	}
	for _, s := range resume.Skills.Soft {
		parts = append(parts, s.Name)
	}
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title, exp.Company)
		parts = append(parts, exp.Responsibilities...)
	}
	for _, edu := range resume.Education {
		parts = append(parts, edu.Degree)
		if edu.FieldOfStudy != nil {
			parts = append(parts, *edu.FieldOfStudy)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

var degreeLevels = map[string]string{
	"bachelor's": DegreeBachelors, "bachelor": DegreeBachelors, "bs": DegreeBachelors,
	"ba": DegreeBachelors, "bsc": DegreeBachelors, "beng": DegreeBachelors, "bfa": DegreeBachelors,
	"master's": DegreeMasters, "master": DegreeMasters, "ms": DegreeMasters, "ma": DegreeMasters,
	"msc": DegreeMasters, "meng": DegreeMasters, "mba": DegreeMasters, "mfa": DegreeMasters,
	"phd": DegreePhD, "ph.d.": DegreePhD, "doctorate": DegreePhD, "doctoral": DegreePhD,
}

var degreeRank = map[string]int{DegreeNone: 0, DegreeBachelors: 1, DegreeMasters: 2, DegreePhD: 3}

// degreeLevel returns the highest degree level among entries.
func degreeLevel(education []types.Education) string {
	level := DegreeNone
	for _, edu := range education {
		if l, ok := degreeLevels[strings.ToLower(edu.Degree)]; ok && degreeRank[l] > degreeRank[level] {
			level = l
		}
	}
	return level
}

func educationScore(level string, hasEducation bool, description string) float64 {
	desc := strings.ToLower(description)
	rank := degreeRank[level]

	switch {
	case strings.Contains(desc, "phd") || strings.Contains(desc, "doctorate"):
		return [...]float64{20, 40, 60, 100}[rank]
	case strings.Contains(desc, "master"):
		return [...]float64{30, 70, 100, 100}[rank]
	case strings.Contains(desc, "bachelor"):
		if rank > 0 {
			return 100
		}
		return neutralScore
	case hasEducation:
		return 75
	default:
		return neutralScore
	}
}

func recommendations(resume *types.AnalysisResponse, r types.MatchResult) []types.MatchRecommendation {
	recs := []types.MatchRecommendation{}

	if len(r.MissingSkills) > 0 {
		recs = append(recs, types.MatchRecommendation{
			Type:     "skills",
			Priority: "high",
			Title:    fmt.Sprintf("Add %d missing key skills", len(r.MissingSkills)),
			Description: "The job posting mentions these skills that are not in your resume: " +
				strings.Join(r.MissingSkills[:min(5, len(r.MissingSkills))], ", "),
			Action: "Consider adding these skills to your resume if you have experience with them, or highlight related experience.",
		})
	}

	if len(r.SuggestedKeywords) > 0 {
		recs = append(recs, types.MatchRecommendation{
			Type:        "keywords",
			Priority:    "medium",
			Title:       "Incorporate key phrases from job description",
			Description: "Your resume is missing some important phrases from the job posting.",
			Action: "Try to naturally include phrases like: " +
				strings.Join(r.SuggestedKeywords[:min(3, len(r.SuggestedKeywords))], ", "),
		})
	}

	if r.RequiredYears > 0 && r.ResumeYears < float64(r.RequiredYears) {
		recs = append(recs, types.MatchRecommendation{
			Type:     "experience",
			Priority: "high",
			Title:    "Highlight relevant experience",
			Description: fmt.Sprintf("The job requires %d years of experience, you have %s years listed.",
				r.RequiredYears, strconv.FormatFloat(r.ResumeYears, 'f', 1, 64)),
			Action: "Emphasize transferable skills and any relevant project experience to strengthen your application.",
		})
	}

	if resume.Analysis.ActionVerbUsage < 0.6 {
		recs = append(recs, types.MatchRecommendation{
			Type:        "content",
			Priority:    "medium",
			Title:       "Use more action verbs",
			Description: "Strong resumes typically start bullet points with action verbs.",
			Action:      "Rewrite accomplishments using verbs like: led, developed, implemented, achieved, improved.",
		})
	}

	if resume.Analysis.QuantificationRate < 0.5 {
		recs = append(recs, types.MatchRecommendation{
			Type:        "content",
			Priority:    "medium",
			Title:       "Add more quantifiable achievements",
			Description: "Numbers and metrics make your accomplishments more impactful.",
			Action:      "Add specific numbers, percentages, or metrics to demonstrate your impact.",
		})
	}

	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
