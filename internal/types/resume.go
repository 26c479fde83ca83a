// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Proficiency levels derived from mention counts
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
)

// Placeholders used when a work experience title or company cannot be resolved
const (
	PlaceholderTitle   = "Position"
	PlaceholderCompany = "Company"
	PresentDate        = "Present"
)

// Skill represents a lexicon skill found in a resume
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
	Count       int    `json:"count"`
}

// Equal reports whether two skills share a name (case-insensitive) and category.
func (s Skill) Equal(other Skill) bool {
	return strings.EqualFold(s.Name, other.Name) && s.Category == other.Category
}

// String returns "Name (category)".
func (s Skill) String() string {
	return s.Name + " (" + s.Category + ")"
}

// WorkExperience represents a single job entry parsed from the experience section
type WorkExperience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	DurationMonths   *int     `json:"duration_months"`
	Location         *string  `json:"location"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

// BulletCount returns the number of responsibilities and achievements.
func (w WorkExperience) BulletCount() int {
	return len(w.Responsibilities) + len(w.Achievements)
}

// String returns "Title at Company".
func (w WorkExperience) String() string {
	return w.Title + " at " + w.Company
}

// Education represents a degree found in the education section.
// GPA and Honors are carried through but never populated by extraction.
type Education struct {
	Degree       string   `json:"degree"`
	FieldOfStudy *string  `json:"field"`
	Institution  string   `json:"institution"`
	Year         *int     `json:"year"`
	GPA          *float64 `json:"gpa"`
	Honors       []string `json:"honors"`
}

// SameEntry reports whether two education records have the same degree, field, institution and year.
func (e Education) SameEntry(other Education) bool {
	if e.Degree != other.Degree || e.Institution != other.Institution {
		return false
	}
	if (e.FieldOfStudy == nil) != (other.FieldOfStudy == nil) {
		return false
	}
	if e.FieldOfStudy != nil && *e.FieldOfStudy != *other.FieldOfStudy {
		return false
	}
	if (e.Year == nil) != (other.Year == nil) {
		return false
	}
	return e.Year == nil || *e.Year == *other.Year
}

// String returns a readable description such as "BS in Computer Science from Stanford University".
func (e Education) String() string {
	parts := []string{e.Degree}
	if e.FieldOfStudy != nil {
		parts = append(parts, "in "+*e.FieldOfStudy)
	}
	if e.Institution != "" {
		parts = append(parts, "from "+e.Institution)
	}
	return strings.Join(parts, " ")
}
