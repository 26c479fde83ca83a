package extraction

import (
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// dateRangePattern matches "2019 - 2021", "2019–present" and similar.
const dateRangePattern = `(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`

// looksLikeDateRange reports whether line contains a year range.
func (e *Extractor) looksLikeDateRange(line string) bool {
	return e.dateRange.MatchString(line)
}

// extractDates returns the start and end date strings of an entry, verbatim.
// A year range wins; otherwise the first two years, or a lone year paired with "Present".
func (e *Extractor) extractDates(entry string) (start, end *string) {
	if m := e.dateRange.FindStringSubmatch(entry); m != nil {
		return &m[1], &m[2]
	}

	years := e.year.FindAllString(entry, -1)
	switch {
	case len(years) >= 2:
		return &years[0], &years[1]
	case len(years) == 1:
		present := types.PresentDate
		return &years[0], &present
	default:
		return nil, nil
	}
}

// DurationMonths computes the months between start and end, floored at one month.
// A nil end or "present"/"current" in any case is measured against now. It returns nil
// when start is missing or either date does not parse as YYYY-MM or YYYY.
func DurationMonths(start, end *string, now time.Time) *int {
	if start == nil || *start == "" {
		return nil
	}
	from, ok := parseDate(*start)
	if !ok {
		return nil
	}

	to := now
	if end != nil && !isOpenEnded(*end) {
		if to, ok = parseDate(*end); !ok {
			return nil
		}
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 1 {
		months = 1
	}
	return &months
}

func isOpenEnded(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "current":
		return true
	}
	return false
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
