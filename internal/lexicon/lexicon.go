// Package lexicon provides the static reference tables used by resume extraction and scoring.
//
// A Lexicon is built once and shared read-only by every analysis. Nothing in this package
// mutates a Lexicon after construction, so a single value can serve concurrent requests.
package lexicon

import "strings"

// Version identifies the reference dataset shipped with Default.
const Version = "2024.1"

// Category is an ordered list of skill keywords sharing one category key.
type Category struct {
	Key         string
	DisplayName string
	Keywords    []string
}

// DatePatterns holds the regular expressions used to recognise dates in free text.
type DatePatterns struct {
	Full      string // "Jan 2020", "September 2019"
	MonthYear string // "01/2020"
	YearOnly  string // 1900-2099
	Present   string // present, current, now
}

// ScoreThresholds are the lower bounds of the score labels.
type ScoreThresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
	NeedsWork float64
}

// Lexicon is the full set of reference tables.
type Lexicon struct {
	Version          string
	SkillCategories  []Category
	ActionVerbs      []string
	WeakVerbs        []string
	JobTitles        []string
	DegreeTypes      []string
	EducationFields  []string
	ATSKeywords      []string
	DatePatterns     DatePatterns
	ScoreThresholds  ScoreThresholds
	TechnicalKeys    []string
	SoftSkillKey     string
	actionVerbLookup map[string]struct{}
}

var defaultLexicon = build()

// Default returns the process-wide lexicon.
func Default() *Lexicon {
	return defaultLexicon
}

func build() *Lexicon {
	lex := &Lexicon{
		Version:         Version,
		SkillCategories: skillCategories,
		ActionVerbs:     actionVerbs,
		WeakVerbs:       weakVerbs,
		JobTitles:       jobTitles,
		DegreeTypes:     degreeTypes,
		EducationFields: educationFields,
		ATSKeywords:     atsKeywords,
		DatePatterns:    datePatterns,
		ScoreThresholds: scoreThresholds,
		TechnicalKeys:   []string{"programming_languages", "frameworks", "databases", "tools", "cloud"},
		SoftSkillKey:    "soft_skills",
	}
	lex.index()
	return lex
}

// New builds a Lexicon from caller-supplied categories, keeping every other table at its
// default. It is meant for tests and for alternative skill datasets.
func New(categories []Category) *Lexicon {
	lex := build()
	lex.SkillCategories = categories
	return lex
}

func (l *Lexicon) index() {
	l.actionVerbLookup = make(map[string]struct{}, len(l.ActionVerbs))
	for _, verb := range l.ActionVerbs {
		l.actionVerbLookup[verb] = struct{}{}
	}
}

// IsActionVerb reports whether word, already lower-cased, is an action verb.
func (l *Lexicon) IsActionVerb(word string) bool {
	_, ok := l.actionVerbLookup[word]
	return ok
}

// IsTechnical reports whether the category key counts as a technical skill category.
func (l *Lexicon) IsTechnical(category string) bool {
	for _, key := range l.TechnicalKeys {
		if key == category {
			return true
		}
	}
	return false
}

// ContainsWeakVerb reports whether text contains one of the weak verb phrases.
func (l *Lexicon) ContainsWeakVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range l.WeakVerbs {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
