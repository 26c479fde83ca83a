package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
)

// app holds what every subcommand shares once the root command has loaded config.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger

	// newClient creates the LLM client; tests replace it.
	newClient func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Client, error)
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{
		v: config.NewViper(),
		newClient: func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
			return llm.NewClient(ctx, cfg.LLMConfig(), cfg.GeminiAPIKey, logger)
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resume_analyzer",
		Short: "Resume information extraction and scoring",
		Long: "resume_analyzer extracts skills, work experience and education from resume text, " +
			"computes writing metrics and an ATS-compatibility score, and matches resumes against job postings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is resume_analyzer.yaml in current directory)")
	flags.BoolP("debug", "d", false, "verbose/debug logging")
	flags.BoolP("json-log", "j", false, "json format for logging")
	_ = a.v.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
	_ = a.v.BindPFlag(config.KeyLogJSON, flags.Lookup("json-log"))

	root.AddCommand(newAnalyzeCmd(a), newMatchCmd(a), newHistoryCmd(a), newCategoriesCmd(), newValidateCmd(), newVersionCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	a.logger = log
	return nil
}

// suggestionGenerator returns the generator for analyses and, when one was created, the
// LLM client to close afterwards. Without an API key suggestions come from the
// deterministic rules; with AI suggestions disabled there are none.
func (a *app) suggestionGenerator(ctx context.Context) (suggestions.Generator, llm.Client) {
	if !a.cfg.EnableAISuggestions {
		return nil, nil
	}
	if !a.cfg.SuggestionsEnabled() {
		return suggestions.Fallback{}, nil
	}

	client, err := a.newClient(ctx, a.cfg, a.logger)
	if err != nil {
		a.logger.Warn("LLM client unavailable, using rule-based suggestions", zap.Error(err))
		return suggestions.Fallback{}, nil
	}
	return suggestions.WithFallback(suggestions.NewLLM(client, a.logger), suggestions.Fallback{}, a.logger), client
}

// openDB connects to the configured database and creates the history tables.
func (a *app) openDB(ctx context.Context) (*db.DB, error) {
	database, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
