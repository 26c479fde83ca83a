// Package analyzer runs the resume analysis: extraction, content metrics, scoring and
// suggestions, in that order, over one plain-text resume.
package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/metrics"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ProgressEvent reports that an analysis step finished
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called after each analysis step
type ProgressCallback func(event ProgressEvent)

// Engine analyzes resumes. It keeps no per-request state, so one Engine may serve any
// number of concurrent Analyze calls.
type Engine struct {
	lex        *lexicon.Lexicon
	toolkit    nlp.Toolkit
	generator  suggestions.Generator
	logger     *zap.Logger
	now        func() time.Time
	onProgress ProgressCallback

	extractor  *extraction.Extractor
	calculator *metrics.Calculator
}

// Option configures an Engine.
type Option func(*Engine)

// WithLexicon replaces the default reference tables.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(e *Engine) { e.lex = lex }
}

// WithToolkit replaces the default prose-backed toolkit.
func WithToolkit(tk nlp.Toolkit) Option {
	return func(e *Engine) { e.toolkit = tk }
}

// WithSuggestions sets the suggestion generator. Without one, results carry no suggestions.
func WithSuggestions(g suggestions.Generator) Option {
	return func(e *Engine) { e.generator = g }
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock sets the time used to close open-ended ("Present") date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithProgress registers a callback for step completion.
func WithProgress(cb ProgressCallback) Option {
	return func(e *Engine) { e.onProgress = cb }
}

// New creates an Engine. Patterns are compiled here, once.
func New(opts ...Option) *Engine {
	e := &Engine{
		lex:     lexicon.Default(),
		toolkit: nlp.NewProseToolkit(),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	e.extractor = extraction.New(e.lex, e.toolkit,
		extraction.WithClock(e.now),
		extraction.WithLogger(e.logger),
	)
	e.calculator = metrics.NewCalculator(e.lex, e.toolkit)
	return e
}

// Lexicon returns the tables the engine was built with.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Extractor returns the engine's compiled extractor.
func (e *Engine) Extractor() *extraction.Extractor {
	return e.extractor
}

// Analyze extracts, measures and scores one cleaned resume text.
//
// A missing section or an unparsable entry is not an error. Toolkit failures are returned
// as *ProcessingError. A failing suggestion generator only empties the suggestion list.
func (e *Engine) Analyze(ctx context.Context, text string) (*types.AnalysisResult, error) {
	start := time.Now()

	skills := e.extractor.ExtractSkills(text)
	e.emit("skills", "Extracted skills", len(skills))

	spans := e.extractor.Segment(text)
	experience, err := e.extractor.ExtractExperience(spans)
	if err != nil {
		return nil, &ProcessingError{Section: SectionExperience, Cause: err}
	}
	e.emit("experience", "Extracted work experience", len(experience.Items))

	education, err := e.extractor.ExtractEducation(spans)
	if err != nil {
		return nil, &ProcessingError{Section: SectionEducation, Cause: err}
	}
	e.emit("education", "Extracted education", len(education.Items))

	m, err := e.calculator.Compute(text)
	if err != nil {
		return nil, &ProcessingError{Section: SectionMetrics, Cause: err}
	}
	m.TotalExperienceYears = TotalYears(experience.Items)
	e.emit("metrics", "Computed content metrics", m)

	scores := scoring.Score(scoring.Input{
		Skills:     skills,
		Experience: experience.Items,
		Metrics:    m,
	})
	e.emit("scoring", "Computed scores", scores.Overall)

	suggested := e.suggest(ctx, suggestions.Request{
		Text:       text,
		Skills:     skills,
		Experience: experience.Items,
		Metrics:    m,
	})

	result := &types.AnalysisResult{
		OverallScore:    scores.Overall,
		ATSScore:        scores.ATS,
		Skills:          skills,
		Experience:      experience.Items,
		Education:       education.Items,
		Suggestions:     suggested,
		Metrics:         m,
		Breakdown:       scores.Breakdown,
		Recommendations: scores.Recommendations,
		ProcessingTime:  time.Since(start),
	}

	e.logger.Debug("analysis complete",
		zap.Float64("overall_score", result.OverallScore),
		zap.Float64("ats_score", result.ATSScore),
		zap.Int("skills", len(skills)),
		zap.Int("experience", len(experience.Items)),
		zap.Int("education", len(education.Items)),
		zap.Duration("elapsed", result.ProcessingTime),
	)
	return result, nil
}

// TotalYears sums the known durations of entries, in years. Entries without a duration
// contribute nothing.
func TotalYears(experience []types.WorkExperience) float64 {
	var months int
	for _, exp := range experience {
		if exp.DurationMonths != nil {
			months += *exp.DurationMonths
		}
	}
	return float64(months) / 12
}

func (e *Engine) suggest(ctx context.Context, req suggestions.Request) []types.Suggestion {
	if e.generator == nil {
		return []types.Suggestion{}
	}
	out, err := e.generator.Generate(ctx, req)
	if err != nil {
		e.logger.Warn("suggestion generation failed", zap.Error(err))
		return []types.Suggestion{}
	}
	if out == nil {
		out = []types.Suggestion{}
	}
	e.emit("suggestions", "Generated suggestions", len(out))
	return out
}

func (e *Engine) emit(step, message string, content any) {
	if e.onProgress != nil {
		e.onProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}
