package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/metrics"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const maxLoggedEntry = 80

// titleSeparators ends a free-form title on the first line of an entry.
var titleSeparators = regexp.MustCompile(`[,|\-–—]`)

// ExtractExperience parses the experience section of spans into work experience entries.
// A missing section yields an Absent result with no items. Entries without any letter or
// digit, such as a rule line under the section header, are recorded as skipped; an entry
// whose dates cannot be parsed is kept with a nil duration.
func (e *Extractor) ExtractExperience(spans []sections.Span) (Result[types.WorkExperience], error) {
	section, ok := sections.Find(spans, sections.ExperienceLabels...)
	if !ok {
		e.logger.Debug("no experience section found")
		return absent[types.WorkExperience](), nil
	}

	result := Result[types.WorkExperience]{Items: []types.WorkExperience{}, Outcome: Found}
	for _, entry := range e.SplitJobEntries(section) {
		exp, outcome, err := e.ParseJobEntry(entry)
		if err != nil {
			return result, err
		}
		if outcome == Skipped {
			e.logger.Warn("skipping unparsable job entry", zap.String("entry", logger.TruncateForLog(entry, maxLoggedEntry)))
			result.Skipped = append(result.Skipped, Skip{Entry: entry, Reason: "entry has no text"})
			continue
		}
		result.Items = append(result.Items, exp)
	}

	e.logger.Debug("extracted experience entries",
		zap.Int("count", len(result.Items)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// SplitJobEntries splits an experience section into entries. A line containing a known job
// title or a year range starts a new entry; blank lines are dropped.
func (e *Extractor) SplitJobEntries(section string) []string {
	var entries []string
	var current []string

	for _, line := range strings.Split(strings.TrimSpace(section), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if e.isEntryStart(line) && len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}
	return entries
}

func (e *Extractor) isEntryStart(line string) bool {
	return e.matchTitle(line) != "" || e.looksLikeDateRange(line)
}

// matchTitle returns the first lexicon job title contained in line, ignoring case.
func (e *Extractor) matchTitle(line string) string {
	lower := strings.ToLower(line)
	for _, title := range e.lex.JobTitles {
		if strings.Contains(lower, strings.ToLower(title)) {
			return title
		}
	}
	return ""
}

// ParseJobEntry parses one entry. The first line carries title, company and usually the
// dates; bullet lines after it become responsibilities. An entry with no letter or digit
// is Skipped. Only a toolkit failure returns an error.
func (e *Extractor) ParseJobEntry(entry string) (types.WorkExperience, Outcome, error) {
	var lines []string
	for _, line := range strings.Split(entry, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if !strings.ContainsFunc(entry, isAlphanumeric) {
		return types.WorkExperience{}, Skipped, nil
	}

	title, company, err := e.titleAndCompany(lines[0])
	if err != nil {
		return types.WorkExperience{}, Found, fmt.Errorf("failed to resolve company: %w", err)
	}
	if title == "" {
		title = types.PlaceholderTitle
	}
	if company == "" {
		company = types.PlaceholderCompany
	}

	start, end := e.extractDates(entry)
	exp := types.WorkExperience{
		Title:            title,
		Company:          company,
		StartDate:        start,
		EndDate:          end,
		DurationMonths:   DurationMonths(start, end, e.now()),
		Responsibilities: metrics.ExtractBullets(strings.Join(lines[1:], "\n")),
		Achievements:     []string{},
	}
	return exp, Found, nil
}

func (e *Extractor) titleAndCompany(line string) (title, company string, err error) {
	title = e.matchTitle(line)

	company, _, err = nlp.FirstOrganization(e.toolkit, line)
	if err != nil {
		return "", "", err
	}

	if title == "" {
		title = strings.TrimSpace(titleSeparators.Split(line, 2)[0])
	}
	return title, company, nil
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
