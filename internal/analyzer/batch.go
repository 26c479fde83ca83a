package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeWithTimeout runs Analyze under a deadline. When the deadline passes first the
// caller gets context.DeadlineExceeded; the abandoned analysis finishes in the background
// and its result is discarded.
func (e *Engine) AnalyzeWithTimeout(ctx context.Context, text string, timeout time.Duration) (*types.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		result *types.AnalysisResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := e.Analyze(ctx, text)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Document is one named resume text in a batch
type Document struct {
	Name string
	Text string
}

// BatchResult is the analysis of one Document. Err is set when that document failed.
type BatchResult struct {
	Name   string
	Result *types.AnalysisResult
	Err    error
}

// AnalyzeBatch analyzes docs with at most workers concurrent analyses. Results are in input
// order. A failing document does not stop the batch; only ctx cancellation does.
func (e *Engine) AnalyzeBatch(ctx context.Context, docs []Document, workers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := e.Analyze(gctx, doc.Text)
			if err != nil {
				e.logger.Warn("batch document failed", zap.String("document", doc.Name), zap.Error(err))
			}
			results[i] = BatchResult{Name: doc.Name, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
