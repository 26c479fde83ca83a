package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBoard(t *testing.T) {
	tests := []struct {
		url      string
		expected jobBoard
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", boardGreenhouse},
		{"https://job-boards.greenhouse.io/acme/jobs/123", boardGreenhouse},
		{"https://jobs.lever.co/acme/abc-123", boardLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", boardWorkday},
		{"https://careers.acme.com/jobs/123", boardUnknown},
		{"https://notgreenhouse.io.example.com/jobs", boardUnknown},
		{"", boardUnknown},
		{"://bad", boardUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectBoard(tt.url))
		})
	}
}

func TestContentSelectors(t *testing.T) {
	greenhouse := contentSelectors(boardGreenhouse)
	assert.Equal(t, ".job__description.body", greenhouse[0])
	assert.Contains(t, greenhouse, "main")

	generic := contentSelectors(boardUnknown)
	assert.Equal(t, ".job-description", generic[0])

	_ = append(generic, "extra")
	assert.NotContains(t, contentSelectors(boardUnknown), "extra")
}

func TestParseJobHTML_BoardNoise(t *testing.T) {
	html := `<html><head><meta property="og:site_name" content="Hooli"></head><body>
<nav>Careers</nav>
<h1>Data Platform Engineer</h1>
<div class="sidebar">Other openings</div>
<div class="job-description">
<p>Build streaming pipelines with Kafka and Spark.</p>
<ul><li>At least 4 years of experience with Python</li></ul>
</div>
<form class="application-form"><label>Resume</label></form>
<div class="eeo-statement">Hooli is an equal opportunity employer.</div>
</body></html>`

	posting, err := ParseJobHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Data Platform Engineer", posting.Title)
	assert.Equal(t, "Hooli", posting.Company)
	assert.Equal(t, "Build streaming pipelines with Kafka and Spark.\n* At least 4 years of experience with Python", posting.Description)
}

func TestParseJobHTML_LeverLayout(t *testing.T) {
	html := `<html><head><link rel="canonical" href="https://jobs.lever.co/acme/123"></head>
<body><h1>Backend Engineer</h1>
<div class="posting-page"><p>Own our billing services written in Go and PostgreSQL.</p>
<div class="posting-apply">Apply for this job</div></div>
</body></html>`

	posting, err := ParseJobHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Own our billing services written in Go and PostgreSQL.", posting.Description)
	assert.Equal(t, "https://jobs.lever.co/acme/123", posting.URL)
}
