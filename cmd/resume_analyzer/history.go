package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// historyEntry is a stored analysis with the matches recorded against it
type historyEntry struct {
	ID          string                  `json:"id"`
	Source      string                  `json:"source"`
	ContentHash string                  `json:"content_hash"`
	CreatedAt   time.Time               `json:"created_at"`
	Analysis    *types.AnalysisResponse `json:"analysis"`
	Matches     []historyMatch          `json:"matches"`
}

type historyMatch struct {
	ID           string    `json:"id"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company,omitempty"`
	OverallMatch float64   `json:"overall_match"`
	CreatedAt    time.Time `json:"created_at"`
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHistory(cmd, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", db.DefaultListLimit, "number of analyses to list")

	var verbose bool
	show := &cobra.Command{
		Use:   "show ID",
		Short: "Print a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryShow(cmd, args[0], verbose)
		},
	}
	show.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a readable summary instead of JSON")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored analysis and its matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryDelete(cmd, args[0])
		},
	}

	cmd.AddCommand(show, del)

	return cmd
}

func (a *app) runHistory(cmd *cobra.Command, limit int) error {
	ctx := commandContext(cmd)
	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListAnalyses(ctx, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCREATED\tSCORE\tATS\tLABEL\tSOURCE")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.OverallScore, s.ATSScore, s.ScoreLabel, s.Source)
	}
	return w.Flush()
}

func (a *app) runHistoryShow(cmd *cobra.Command, rawID string, verbose bool) error {
	id, err := parseAnalysisID(rawID)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := database.GetAnalysis(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("analysis %s not found", id)
	}
	if err != nil {
		return err
	}
	resp, err := db.DecodeAnalysis(rec)
	if err != nil {
		return err
	}
	matches, err := database.ListMatches(ctx, id)
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintAnalysis(rec.Source, resp)
		for i := range matches {
			match, err := db.DecodeMatch(&matches[i])
			if err != nil {
				return err
			}
			printer.PrintMatch(match)
		}
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), "", newHistoryEntry(rec, resp, matches))
}

func (a *app) runHistoryDelete(cmd *cobra.Command, rawID string) error {
	id, err := parseAnalysisID(rawID)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteAnalysis(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("analysis %s not found", id)
		}
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted analysis %s\n", id)
	return err
}

func parseAnalysisID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid analysis ID %q: %w", raw, err)
	}
	return id, nil
}

func newHistoryEntry(rec *db.AnalysisRecord, resp *types.AnalysisResponse, matches []db.MatchRecord) historyEntry {
	entry := historyEntry{
		ID:          rec.ID.String(),
		Source:      rec.Source,
		ContentHash: rec.ContentHash,
		CreatedAt:   rec.CreatedAt,
		Analysis:    resp,
		Matches:     make([]historyMatch, 0, len(matches)),
	}
	for _, m := range matches {
		hm := historyMatch{
			ID:           m.ID.String(),
			JobTitle:     m.JobTitle,
			OverallMatch: m.OverallMatch,
			CreatedAt:    m.CreatedAt,
		}
		if m.Company != nil {
			hm.Company = *m.Company
		}
		entry.Matches = append(entry.Matches, hm)
	}
	return entry
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
