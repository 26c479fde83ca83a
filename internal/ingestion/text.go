// Package ingestion turns resume and job posting files into the plain text the analyzer
// works on.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Extractability thresholds
const (
	MinTextChars    = 50
	MinLetterCount  = 20
	invalidUTF8Repl = "\uFFFD"
)

var (
	// ErrNoResumeSignal is returned when a document has too little text to analyze
	ErrNoResumeSignal = errors.New("document does not contain enough text to analyze")
	// ErrUnsupportedFormat is returned for file types that cannot be read as text
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

var typographyReplacer = strings.NewReplacer(
	"\u2019", "'",
	"\u2018", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2013", "-",
	"\u2014", "-",
	"\u2022", "*",
	"\u00a0", " ",
)

// CleanText normalizes extracted text: invalid UTF-8 is replaced, line endings become LF,
// every line is trimmed, blank lines are dropped, and typographic quotes, dashes, bullets
// and non-breaking spaces become their ASCII forms.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ToValidUTF8(content, invalidUTF8Repl)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}

	return strings.TrimSpace(typographyReplacer.Replace(strings.Join(kept, "\n")))
}

// IsExtractable reports whether text carries enough signal to be worth analyzing: at least
// 50 non-space characters overall and 20 letters.
func IsExtractable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < MinTextChars {
		return false
	}

	letters := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			letters++
			if letters >= MinLetterCount {
				return true
			}
		}
	}
	return false
}

// LoadResumeText reads a resume file and returns its cleaned text with metadata. Plain text
// and markdown are read as is; HTML is reduced to its visible text.
func LoadResumeText(path string) (string, *Metadata, error) {
	content, err := readFile(path)
	if err != nil {
		return "", nil, err
	}

	var text string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", ".text", "":
		text = content
	case ".html", ".htm":
		text, err = HTMLToText(content)
		if err != nil {
			return "", nil, err
		}
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	cleaned := CleanText(text)
	if !IsExtractable(cleaned) {
		return "", nil, fmt.Errorf("%s: %w", path, ErrNoResumeSignal)
	}
	return cleaned, NewMetadata(cleaned, path), nil
}

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(content), nil
}
