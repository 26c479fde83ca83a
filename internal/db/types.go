package db

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// History listing bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 500
)

var (
	// ErrNoDatabaseURL is returned by Connect when no URL is configured
	ErrNoDatabaseURL = errors.New("database URL is required")
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")
)

// AnalysisRecord is a stored analysis
type AnalysisRecord struct {
	ID           uuid.UUID       `json:"id"`
	Source       string          `json:"source"`
	ContentHash  string          `json:"content_hash"`
	OverallScore float64         `json:"overall_score"`
	ATSScore     float64         `json:"ats_score"`
	ScoreLabel   string          `json:"score_label"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AnalysisSummary is one row of the history listing
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	Source       string    `json:"source"`
	OverallScore float64   `json:"overall_score"`
	ATSScore     float64   `json:"ats_score"`
	ScoreLabel   string    `json:"score_label"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchRecord is a stored resume/job comparison
type MatchRecord struct {
	ID           uuid.UUID       `json:"id"`
	AnalysisID   *uuid.UUID      `json:"analysis_id,omitempty"`
	JobTitle     string          `json:"job_title"`
	Company      *string         `json:"company,omitempty"`
	OverallMatch float64         `json:"overall_match"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// normalizeLimit maps non-positive limits to the default and caps large ones.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
