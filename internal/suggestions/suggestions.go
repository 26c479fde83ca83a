// Package suggestions produces improvement suggestions for an analyzed resume.
//
// Generators are collaborators of the analysis engine: the engine asks for suggestions once
// scoring inputs are known and treats any failure as "no suggestions".
package suggestions

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Request carries what a generator may look at
type Request struct {
	Text       string
	Skills     []types.Skill
	Experience []types.WorkExperience
	Metrics    types.AnalysisMetrics
}

// Generator produces suggestions for one resume
type Generator interface {
	Generate(ctx context.Context, req Request) ([]types.Suggestion, error)
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, req Request) ([]types.Suggestion, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) ([]types.Suggestion, error) {
	return f(ctx, req)
}

// WithFallback returns a generator that answers with fallback whenever primary fails.
// A nil primary always uses fallback.
func WithFallback(primary, fallback Generator, logger *zap.Logger) Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return GeneratorFunc(func(ctx context.Context, req Request) ([]types.Suggestion, error) {
		if primary == nil {
			return fallback.Generate(ctx, req)
		}
		out, err := primary.Generate(ctx, req)
		if err == nil {
			return out, nil
		}
		logger.Warn("suggestion generator failed, using fallback", zap.Error(err))
		return fallback.Generate(ctx, req)
	})
}
