package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes an ingested document
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path the text came from
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		WordCount: len(strings.Fields(content)),
		CharCount: utf8.RuneCountInString(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
