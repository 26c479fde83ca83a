package ingestion

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Job posting sources recorded in JobPosting.Source
const (
	SourceFile = "file"
	SourceHTML = "html"
	SourceText = "text"
)

// LoadJobPosting reads a job posting. A .json file holds a JobPosting record; an HTML page
// gives its first h1 as the title and its visible text as the description; any other file
// is plain text whose first line is the title. The posting is validated before returning.
func LoadJobPosting(path string) (*types.JobPosting, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var posting *types.JobPosting
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		posting, err = parseJobJSON(content)
	case ".html", ".htm":
		posting, err = ParseJobHTML(content)
	default:
		posting = ParseJobText(content)
	}
	if err != nil {
		return nil, err
	}

	if err := posting.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return posting, nil
}

func parseJobJSON(content string) (*types.JobPosting, error) {
	var posting types.JobPosting
	if err := json.Unmarshal([]byte(content), &posting); err != nil {
		return nil, fmt.Errorf("failed to parse job posting JSON: %w", err)
	}
	if posting.Source == "" {
		posting.Source = SourceFile
	}
	return &posting, nil
}

// ParseJobHTML extracts a posting from a saved job page. Application forms, EEO statements
// and other job board noise are dropped; the description is the text of the first element
// matching the board's content selectors, or of the whole page. The board is recognized
// from the page's canonical URL.
func ParseJobHTML(html string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	posting := &types.JobPosting{
		Title:  strings.TrimSpace(doc.Find("h1").First().Text()),
		Source: SourceHTML,
	}
	if company, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		posting.Company = strings.TrimSpace(company)
	}
	if url, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		posting.URL = strings.TrimSpace(url)
	}

	board := detectBoard(posting.URL)
	doc.Find("header, footer").Remove()
	doc.Find(strings.Join(noiseSelectorsFor(board), ", ")).Remove()

	content := doc.Selection
	for _, selector := range contentSelectors(board) {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	posting.Description = CleanText(selectionText(content))
	return posting, nil
}

// ParseJobText treats the first non-blank line as the title and the whole text as the
// description.
func ParseJobText(text string) *types.JobPosting {
	cleaned := CleanText(text)
	title, _, _ := strings.Cut(cleaned, "\n")
	return &types.JobPosting{
		Title:       title,
		Source:      SourceText,
		Description: cleaned,
	}
}
