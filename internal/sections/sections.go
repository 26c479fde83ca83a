// Package sections splits resume text into header-labelled spans.
package sections

import (
	"regexp"
	"strings"
)

// DefaultHeaders are the section header phrases recognised by Default.
var DefaultHeaders = []string{
	"experience", "work history", "employment", "professional experience",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies",
	"projects", "certifications", "awards", "summary", "objective",
}

// Labels used to locate the sections extraction cares about.
var (
	ExperienceLabels = []string{"experience", "work history", "employment", "professional experience"}
	EducationLabels  = []string{"education", "academic background", "qualifications"}
)

// Span is one segment of a resume. The first span holds the text before any header and
// has HasHeader set to false.
type Span struct {
	Header    string
	HasHeader bool
	Body      string
}

// Segmenter splits text on header lines. It is immutable and safe for concurrent use.
type Segmenter struct {
	pattern *regexp.Regexp
}

var defaultSegmenter = New(DefaultHeaders)

// Default returns the segmenter for DefaultHeaders.
func Default() *Segmenter {
	return defaultSegmenter
}

// New compiles a segmenter for the given header phrases. A header matches only when it is
// alone on its line, ignoring case, surrounding blanks and trailing colons.
func New(headers []string) *Segmenter {
	quoted := make([]string, len(headers))
	for i, h := range headers {
		quoted[i] = regexp.QuoteMeta(h)
	}
	expr := `(?im)^[ \t]*(` + strings.Join(quoted, "|") + `)[ \t:]*$`
	return &Segmenter{pattern: regexp.MustCompile(expr)}
}

// Split returns the ordered spans of text. Every character outside header lines lands in
// exactly one span body.
func (s *Segmenter) Split(text string) []Span {
	matches := s.pattern.FindAllStringSubmatchIndex(text, -1)

	spans := make([]Span, 0, len(matches)+1)
	bodyStart := 0
	var header string
	hasHeader := false

	for _, m := range matches {
		spans = append(spans, Span{Header: header, HasHeader: hasHeader, Body: text[bodyStart:m[0]]})
		header = text[m[2]:m[3]]
		hasHeader = true
		bodyStart = m[1]
		if bodyStart < len(text) && text[bodyStart] == '\n' {
			bodyStart++
		}
	}
	spans = append(spans, Span{Header: header, HasHeader: hasHeader, Body: text[bodyStart:]})

	return spans
}

// Find returns the body of the first span whose header contains any of labels.
// The boolean is false when no such section exists; that is not an error.
func Find(spans []Span, labels ...string) (string, bool) {
	for _, span := range spans {
		if !span.HasHeader {
			continue
		}
		header := strings.ToLower(strings.TrimSpace(span.Header))
		for _, label := range labels {
			if strings.Contains(header, label) {
				return span.Body, true
			}
		}
	}
	return "", false
}
