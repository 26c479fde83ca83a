package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type analyzeOptions struct {
	out           string
	validate      bool
	save          bool
	verbose       bool
	quality       bool
	noSuggestions bool
}

// analysisReport is one entry of a multi-file analysis
type analysisReport struct {
	Source   string                  `json:"source"`
	ID       string                  `json:"id,omitempty"`
	Analysis *types.AnalysisResponse `json:"analysis,omitempty"`
	Error    string                  `json:"error,omitempty"`

	hash string // of the cleaned resume text
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze one or more resumes",
		Long: "Analyze resume files (.txt, .md or .html). A single file prints its analysis as JSON; " +
			"several files are analyzed concurrently and print one report per file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "", "write JSON to this file instead of stdout")
	flags.BoolVar(&opts.validate, "validate", false, "validate output against the analysis schema")
	flags.BoolVar(&opts.save, "save", false, "store the analysis in the history database")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a readable summary to stderr")
	flags.BoolVar(&opts.quality, "quality", false, "ask the model for a content quality assessment (with --verbose)")
	flags.BoolVar(&opts.noSuggestions, "no-suggestions", false, "skip improvement suggestions")
	flags.Int("timeout", config.DefaultMaxProcessingTime, "per-resume time limit in seconds")
	flags.Int("workers", config.DefaultWorkers, "concurrent analyses for multiple files")
	_ = a.v.BindPFlag(config.KeyMaxProcessingTime, flags.Lookup("timeout"))
	_ = a.v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	ctx := commandContext(cmd)

	docs := make([]analyzer.Document, 0, len(args))
	hashes := make([]string, 0, len(args))
	for _, path := range args {
		text, meta, err := ingestion.LoadResumeText(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		a.logger.Debug("loaded resume",
			zap.String("source", path),
			zap.Int("words", meta.WordCount),
			zap.String("hash", meta.Hash),
		)
		docs = append(docs, analyzer.Document{Name: path, Text: text})
		hashes = append(hashes, meta.Hash)
	}

	var gen suggestions.Generator
	if !opts.noSuggestions {
		var client llm.Client
		gen, client = a.suggestionGenerator(ctx)
		if client != nil {
			defer func() { _ = client.Close() }()
		}
	}

	engine := analyzer.New(
		analyzer.WithLogger(a.logger),
		analyzer.WithSuggestions(gen),
		analyzer.WithProgress(func(ev analyzer.ProgressEvent) {
			a.logger.Debug(ev.Message, zap.String("step", ev.Step))
		}),
	)

	reports := a.analyzeAll(ctx, engine, docs)
	for i := range reports {
		reports[i].hash = hashes[i]
	}

	if opts.validate {
		for _, r := range reports {
			if r.Analysis == nil {
				continue
			}
			if err := schemas.ValidateAnalysisResponse(r.Analysis); err != nil {
				return fmt.Errorf("analysis of %s does not validate against schema: %w", r.Source, err)
			}
		}
	}

	if opts.save {
		if err := a.saveReports(ctx, reports); err != nil {
			return err
		}
	}

	if opts.verbose {
		a.printReports(ctx, cmd.ErrOrStderr(), reports, docs, opts.quality)
	}

	var payload any = reports
	if len(reports) == 1 {
		if reports[0].Error != "" {
			return errors.New(reports[0].Error)
		}
		payload = reports[0].Analysis
	}
	if err := writeJSON(cmd.OutOrStdout(), opts.out, payload); err != nil {
		return err
	}

	for _, r := range reports {
		if r.Error != "" {
			return fmt.Errorf("one or more resumes failed to analyze")
		}
	}
	return nil
}

// analyzeAll analyzes a single document under the configured timeout, or several
// concurrently with the configured worker count.
func (a *app) analyzeAll(ctx context.Context, engine *analyzer.Engine, docs []analyzer.Document) []analysisReport {
	reports := make([]analysisReport, len(docs))

	if len(docs) == 1 {
		reports[0].Source = docs[0].Name
		result, err := engine.AnalyzeWithTimeout(ctx, docs[0].Text, a.cfg.Timeout())
		if err != nil {
			reports[0].Error = err.Error()
			return reports
		}
		resp := analyzer.ToResponse(result, engine.Lexicon())
		reports[0].Analysis = &resp
		return reports
	}

	// The batch shares one deadline sized for running every document back to back.
	bctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout()*time.Duration(len(docs)))
	defer cancel()

	results, err := engine.AnalyzeBatch(bctx, docs, a.cfg.Workers)
	for i, doc := range docs {
		reports[i].Source = doc.Name
		switch {
		case results[i].Result != nil:
			resp := analyzer.ToResponse(results[i].Result, engine.Lexicon())
			reports[i].Analysis = &resp
		case results[i].Err != nil:
			reports[i].Error = results[i].Err.Error()
		case err != nil:
			reports[i].Error = err.Error()
		}
	}
	return reports
}

func (a *app) saveReports(ctx context.Context, reports []analysisReport) error {
	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	for i := range reports {
		if reports[i].Analysis == nil {
			continue
		}
		id, err := saveAnalysis(ctx, database, a.logger, reports[i].Source, reports[i].hash, reports[i].Analysis)
		if err != nil {
			return err
		}
		reports[i].ID = id.String()
	}
	return nil
}

// analysisStore is the part of the history database used when saving analyses
type analysisStore interface {
	FindAnalysisByHash(ctx context.Context, contentHash string) (*db.AnalysisSummary, error)
	SaveAnalysis(ctx context.Context, source, contentHash string, resp *types.AnalysisResponse) (uuid.UUID, error)
}

// saveAnalysis stores resp, noting when the same resume text was analyzed before.
func saveAnalysis(ctx context.Context, store analysisStore, log *zap.Logger, source, contentHash string, resp *types.AnalysisResponse) (uuid.UUID, error) {
	prev, err := store.FindAnalysisByHash(ctx, contentHash)
	switch {
	case err == nil:
		log.Info("resume analyzed before",
			zap.String("previous_id", prev.ID.String()),
			zap.Float64("previous_score", prev.OverallScore),
			zap.String(logger.FieldSource, source),
		)
	case !errors.Is(err, db.ErrNotFound):
		return uuid.Nil, err
	}

	id, err := store.SaveAnalysis(ctx, source, contentHash, resp)
	if err != nil {
		return uuid.Nil, err
	}
	logger.WithFields(log, logger.AnalysisFields(id.String(), source)...).Info("analysis saved")
	return id, nil
}

func (a *app) printReports(ctx context.Context, w io.Writer, reports []analysisReport, docs []analyzer.Document, quality bool) {
	printer := observability.NewPrinter(w)
	for i, r := range reports {
		if r.Analysis == nil {
			continue
		}
		printer.PrintAnalysis(r.Source, r.Analysis)
		if quality {
			printer.PrintQuality(a.assessQuality(ctx, docs[i].Text))
		}
	}
}

func (a *app) assessQuality(ctx context.Context, text string) suggestions.Quality {
	if a.cfg.GeminiAPIKey == "" {
		return suggestions.Quality{OverallImpression: suggestions.QualityUnavailable}
	}
	client, err := a.newClient(ctx, a.cfg, a.logger)
	if err != nil {
		a.logger.Warn("LLM client unavailable", zap.Error(err))
		return suggestions.Quality{OverallImpression: suggestions.QualityUnavailable}
	}
	defer func() { _ = client.Close() }()

	q, err := suggestions.AssessQuality(ctx, client, text)
	if err != nil {
		a.logger.Warn("content quality assessment failed", zap.Error(err))
	}
	return q
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
