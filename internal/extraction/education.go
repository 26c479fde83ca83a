package extraction

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// contextRunes is how far around a degree match the field, year and institution are searched.
const contextRunes = 100

// ExtractEducation finds degrees in the education section of spans. Entries come out in
// degree-lexicon order, then in order of appearance; identical entries are dropped.
func (e *Extractor) ExtractEducation(spans []sections.Span) (Result[types.Education], error) {
	section, ok := sections.Find(spans, sections.EducationLabels...)
	if !ok {
		e.logger.Debug("no education section found")
		return absent[types.Education](), nil
	}

	result := Result[types.Education]{Items: []types.Education{}, Outcome: Found}
	for _, degree := range e.degrees {
		for _, loc := range degree.re.FindAllStringIndex(section, -1) {
			context := window(section, loc[0], loc[1], contextRunes)

			institution, _, err := nlp.FirstOrganization(e.toolkit, context)
			if err != nil {
				return result, fmt.Errorf("failed to resolve institution: %w", err)
			}

			edu := types.Education{
				Degree:       section[loc[0]:loc[1]],
				FieldOfStudy: e.fieldOfStudy(context),
				Institution:  institution,
				Year:         e.latestYear(context),
				Honors:       []string{},
			}
			if containsEducation(result.Items, edu) {
				continue
			}
			result.Items = append(result.Items, edu)
		}
	}

	e.logger.Debug("extracted education entries", zap.Int("count", len(result.Items)))
	return result, nil
}

func (e *Extractor) fieldOfStudy(context string) *string {
	lower := strings.ToLower(context)
	for _, field := range e.lex.EducationFields {
		if strings.Contains(lower, strings.ToLower(field)) {
			f := field
			return &f
		}
	}
	return nil
}

// latestYear returns the largest year in context, taken as the graduation year.
func (e *Extractor) latestYear(context string) *int {
	var latest *int
	for _, s := range e.year.FindAllString(context, -1) {
		y, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		if latest == nil || y > *latest {
			latest = &y
		}
	}
	return latest
}

func containsEducation(list []types.Education, edu types.Education) bool {
	for _, existing := range list {
		if existing.SameEntry(edu) {
			return true
		}
	}
	return false
}

// window returns s[start:end] widened by up to n runes on each side.
func window(s string, start, end, n int) string {
	lo := start
	for i := 0; i < n && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < n && hi < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[hi:])
		hi += size
	}
	return s[lo:hi]
}
