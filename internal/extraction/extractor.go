// Package extraction turns resume text into skills, work experience and education records.
//
// Every extractor reports a three-valued outcome so callers can tell a missing section
// (Absent) from an entry that could not be parsed (Skipped). Neither is an error: only a
// failing nlp.Toolkit produces one.
package extraction

import (
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/sections"
)

// Outcome describes what an extraction step found.
type Outcome int

const (
	// Found means the section or entry was present and parsed.
	Found Outcome = iota
	// Absent means the section does not exist in the resume.
	Absent
	// Skipped means an entry was present but could not be parsed.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Absent:
		return "absent"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Skip records an entry that was dropped during extraction.
type Skip struct {
	Entry  string
	Reason string
}

// Result is the output of one section extractor.
type Result[T any] struct {
	Items   []T
	Outcome Outcome
	Skipped []Skip
}

func absent[T any]() Result[T] {
	return Result[T]{Items: []T{}, Outcome: Absent}
}

type keywordPattern struct {
	name     string
	category string
	re       *regexp.Regexp
}

// Extractor holds the compiled patterns for one lexicon. It is immutable after New and safe
// for concurrent use as long as its Toolkit is.
type Extractor struct {
	lex       *lexicon.Lexicon
	toolkit   nlp.Toolkit
	segmenter *sections.Segmenter
	now       func() time.Time
	logger    *zap.Logger

	skills    []keywordPattern
	degrees   []keywordPattern
	dateRange *regexp.Regexp
	year      *regexp.Regexp
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the time source used for open-ended ("Present") durations.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLogger sets the logger for skipped entries and extraction counts.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New compiles an Extractor for lex. A malformed lexicon panics here rather than at
// analysis time.
func New(lex *lexicon.Lexicon, toolkit nlp.Toolkit, opts ...Option) *Extractor {
	e := &Extractor{
		lex:       lex,
		toolkit:   toolkit,
		segmenter: sections.Default(),
		now:       time.Now,
		logger:    zap.NewNop(),
		dateRange: regexp.MustCompile(dateRangePattern),
		year:      regexp.MustCompile(lex.DatePatterns.YearOnly),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, cat := range lex.SkillCategories {
		for _, kw := range cat.Keywords {
			e.skills = append(e.skills, keywordPattern{
				name:     kw,
				category: cat.Key,
				re:       regexp.MustCompile(wholeWord(kw)),
			})
		}
	}
	for _, degree := range lex.DegreeTypes {
		e.degrees = append(e.degrees, keywordPattern{
			name: degree,
			re:   regexp.MustCompile(`(?i)` + wholeWord(degree)),
		})
	}

	return e
}

// Segment splits text with the extractor's segmenter.
func (e *Extractor) Segment(text string) []sections.Span {
	return e.segmenter.Split(text)
}

// Toolkit returns the toolkit the extractor resolves organisations with.
func (e *Extractor) Toolkit() nlp.Toolkit {
	return e.toolkit
}
