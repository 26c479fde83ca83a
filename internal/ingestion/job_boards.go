package ingestion

import (
	"net/url"
	"strings"
)

// jobBoard identifies the applicant tracking system a saved posting page came from.
type jobBoard string

const (
	boardGreenhouse jobBoard = "greenhouse"
	boardLever      jobBoard = "lever"
	boardWorkday    jobBoard = "workday"
	boardUnknown    jobBoard = "unknown"
)

var boardHosts = []struct {
	suffix string
	board  jobBoard
}{
	{"greenhouse.io", boardGreenhouse},
	{"lever.co", boardLever},
	{"myworkdayjobs.com", boardWorkday},
	{"workday.com", boardWorkday},
}

// genericContentSelectors locate a posting body on an unrecognized page.
var genericContentSelectors = []string{
	".job-description",
	"#job-description",
	".job-content",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
}

var boardContentSelectors = map[jobBoard][]string{
	boardGreenhouse: {".job__description.body", ".job__description", ".job-description__content", "#content"},
	boardLever:      {".posting-page", ".posting-description", ".content"},
	boardWorkday:    {"[data-automation-id='jobDescription']", ".job-description"},
}

// commonNoiseSelectors are application forms, EEO statements and share widgets.
var commonNoiseSelectors = []string{
	"form",
	".application-form",
	"#application-form",
	".apply-button-container",
	".eeo-statement",
	".eeo-section",
	".voluntary-disclosure",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

var boardNoiseSelectors = map[jobBoard][]string{
	boardGreenhouse: {".application--wrapper", ".voluntary-self-id", "#usa_self_id_section"},
	boardLever:      {".apply-section", ".posting-apply"},
	boardWorkday:    {"[data-automation-id='applyButton']"},
}

// detectBoard identifies the job board from a posting's canonical URL.
func detectBoard(pageURL string) jobBoard {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return boardUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, b := range boardHosts {
		if host == b.suffix || strings.HasSuffix(host, "."+b.suffix) {
			return b.board
		}
	}
	return boardUnknown
}

// contentSelectors returns the selectors tried, in order, for a posting's body.
func contentSelectors(board jobBoard) []string {
	return append(append([]string{}, boardContentSelectors[board]...), genericContentSelectors...)
}

// noiseSelectorsFor returns elements to drop from a posting page before reading its text.
func noiseSelectorsFor(board jobBoard) []string {
	return append(append([]string{}, commonNoiseSelectors...), boardNoiseSelectors[board]...)
}
