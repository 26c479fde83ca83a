package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type matchOptions struct {
	out      string
	useLLM   bool
	validate bool
	save     bool
	verbose  bool
}

func newMatchCmd(a *app) *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match RESUME JOB",
		Short: "Match a resume against a job posting",
		Long: "Analyze a resume and compare it with a job posting (.json record, saved .html page or plain text). " +
			"Prints skills, experience, keyword and education match scores with recommendations.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMatch(cmd, args[0], args[1], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "", "write JSON to this file instead of stdout")
	flags.BoolVar(&opts.useLLM, "llm", false, "extract the posting's title, skills and keywords with the model")
	flags.BoolVar(&opts.validate, "validate", false, "validate output against the match schema")
	flags.BoolVar(&opts.save, "save", false, "store the analysis and match in the history database")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a readable summary to stderr")

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, resumePath, jobPath string, opts *matchOptions) error {
	ctx := commandContext(cmd)

	text, meta, err := ingestion.LoadResumeText(resumePath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", resumePath, err)
	}

	job, err := ingestion.LoadJobPosting(jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}
	if opts.useLLM {
		if job, err = a.extractJob(ctx, job); err != nil {
			return err
		}
	}

	engine := analyzer.New(analyzer.WithLogger(a.logger))
	result, err := engine.AnalyzeWithTimeout(ctx, text, a.cfg.Timeout())
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", resumePath, err)
	}
	resp := analyzer.ToResponse(result, engine.Lexicon())

	match := matching.New(engine.Extractor()).Match(&resp, job)

	if opts.validate {
		if err := schemas.ValidateMatchResult(&match); err != nil {
			return fmt.Errorf("match result does not validate against schema: %w", err)
		}
	}

	if opts.save {
		if err := a.saveMatch(ctx, resumePath, meta.Hash, &resp, &match); err != nil {
			return err
		}
	}

	if opts.verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintMatch(&match)
	}

	return writeJSON(cmd.OutOrStdout(), opts.out, match)
}

// extractJob asks the model for the posting's structure, keeping the loaded company and URL
// when the model has none.
func (a *app) extractJob(ctx context.Context, loaded *types.JobPosting) (*types.JobPosting, error) {
	if a.cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("--llm requires an API key (set GEMINI_API_KEY)")
	}
	client, err := a.newClient(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	extracted, err := llm.ExtractJobPosting(ctx, client, loaded.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job posting: %w", err)
	}
	if extracted.Title == "" {
		extracted.Title = loaded.Title
	}
	if extracted.Company == "" {
		extracted.Company = loaded.Company
	}
	if extracted.URL == "" {
		extracted.URL = loaded.URL
	}
	if err := extracted.Validate(); err != nil {
		return nil, err
	}

	a.logger.Debug("extracted job posting",
		zap.String(logger.FieldJob, extracted.Title),
		zap.Int("required_skills", len(extracted.RequiredSkills)),
		zap.Int("keywords", len(extracted.Keywords)),
	)
	return extracted, nil
}

func (a *app) saveMatch(ctx context.Context, source, contentHash string, resp *types.AnalysisResponse, match *types.MatchResult) error {
	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	analysisID, err := saveAnalysis(ctx, database, a.logger, source, contentHash, resp)
	if err != nil {
		return err
	}
	matchID, err := database.SaveMatch(ctx, &analysisID, match)
	if err != nil {
		return err
	}

	logger.WithFields(a.logger, logger.AnalysisFields(analysisID.String(), source)...).
		Info("match saved", zap.String("match_id", matchID.String()), zap.String(logger.FieldJob, match.Job.Title))
	return nil
}
