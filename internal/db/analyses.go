package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// -----------------------------------------------------------------------------
// Analysis Methods
// -----------------------------------------------------------------------------

// SaveAnalysis stores a serialized analysis and returns its ID. contentHash identifies the
// analyzed text, so repeated analyses of one resume share it.
func (db *DB) SaveAnalysis(ctx context.Context, source, contentHash string, resp *types.AnalysisResponse) (uuid.UUID, error) {
	rec, err := newAnalysisRecord(source, contentHash, resp)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, source, content_hash, overall_score, ats_score, score_label, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Source, rec.ContentHash, rec.OverallScore, rec.ATSScore, rec.ScoreLabel, []byte(rec.Result),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return rec.ID, nil
}

// GetAnalysis retrieves a stored analysis by ID
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var result []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, source, content_hash, overall_score, ats_score, score_label, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Source, &rec.ContentHash, &rec.OverallScore, &rec.ATSScore,
		&rec.ScoreLabel, &result, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	rec.Result = result
	return &rec, nil
}

// DecodeAnalysis unmarshals the stored response of rec.
func DecodeAnalysis(rec *AnalysisRecord) (*types.AnalysisResponse, error) {
	var resp types.AnalysisResponse
	if err := json.Unmarshal(rec.Result, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", rec.ID, err)
	}
	return &resp, nil
}

// FindAnalysisByHash returns the most recent analysis of the text with contentHash
func (db *DB) FindAnalysisByHash(ctx context.Context, contentHash string) (*AnalysisSummary, error) {
	var s AnalysisSummary
	err := db.pool.QueryRow(ctx,
		`SELECT id, source, overall_score, ats_score, score_label, created_at
		 FROM analyses WHERE content_hash = $1 ORDER BY created_at DESC LIMIT 1`,
		contentHash,
	).Scan(&s.ID, &s.Source, &s.OverallScore, &s.ATSScore, &s.ScoreLabel, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &s, nil
}

// ListAnalyses returns the most recent analyses, newest first
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, source, overall_score, ats_score, score_label, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	summaries := []AnalysisSummary{}
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.Source, &s.OverallScore, &s.ATSScore, &s.ScoreLabel, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return summaries, nil
}

// DeleteAnalysis removes an analysis and its matches
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------------------------
// Match Methods
// -----------------------------------------------------------------------------

// SaveMatch stores a match result, optionally linked to a stored analysis
func (db *DB) SaveMatch(ctx context.Context, analysisID *uuid.UUID, result *types.MatchResult) (uuid.UUID, error) {
	rec, err := newMatchRecord(analysisID, result)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO matches (id, analysis_id, job_title, company, overall_match, result)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.AnalysisID, rec.JobTitle, rec.Company, rec.OverallMatch, []byte(rec.Result),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return rec.ID, nil
}

// DecodeMatch unmarshals the stored result of rec.
func DecodeMatch(rec *MatchRecord) (*types.MatchResult, error) {
	var result types.MatchResult
	if err := json.Unmarshal(rec.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode match %s: %w", rec.ID, err)
	}
	return &result, nil
}

// ListMatches returns the matches recorded for an analysis, newest first
func (db *DB) ListMatches(ctx context.Context, analysisID uuid.UUID) ([]MatchRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, analysis_id, job_title, company, overall_match, result, created_at
		 FROM matches WHERE analysis_id = $1 ORDER BY created_at DESC`,
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := []MatchRecord{}
	for rows.Next() {
		var m MatchRecord
		var result []byte
		if err := rows.Scan(&m.ID, &m.AnalysisID, &m.JobTitle, &m.Company, &m.OverallMatch, &result, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Result = result
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}

func newAnalysisRecord(source, contentHash string, resp *types.AnalysisResponse) (*AnalysisRecord, error) {
	if resp == nil {
		return nil, errors.New("analysis response is nil")
	}
	if contentHash == "" {
		return nil, errors.New("content hash is required")
	}
	result, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return &AnalysisRecord{
		ID:           uuid.New(),
		Source:       source,
		ContentHash:  contentHash,
		OverallScore: resp.OverallScore,
		ATSScore:     resp.ATSScore,
		ScoreLabel:   resp.ScoreLabel,
		Result:       result,
	}, nil
}

func newMatchRecord(analysisID *uuid.UUID, result *types.MatchResult) (*MatchRecord, error) {
	if result == nil {
		return nil, errors.New("match result is nil")
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}
	rec := &MatchRecord{
		ID:           uuid.New(),
		AnalysisID:   analysisID,
		JobTitle:     result.Job.Title,
		OverallMatch: result.OverallMatch,
		Result:       raw,
	}
	if result.Job.Company != "" {
		company := result.Job.Company
		rec.Company = &company
	}
	return rec, nil
}
