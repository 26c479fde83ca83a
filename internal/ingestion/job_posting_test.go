package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobPosting_JSON(t *testing.T) {
	path := writeFile(t, "job.json", `{
		"title": "Backend Engineer",
		"company": "Initech",
		"url": "https://jobs.example.com/123",
		"description": "Build payment services in Go. 5+ years of experience required.",
		"required_skills": ["Go", "PostgreSQL"]
	}`)

	posting, err := LoadJobPosting(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", posting.Title)
	assert.Equal(t, "Initech", posting.Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, posting.RequiredSkills)
	assert.Equal(t, SourceFile, posting.Source)
}

func TestLoadJobPosting_HTML(t *testing.T) {
	path := writeFile(t, "job.html", `<html><head>
<meta property="og:site_name" content="Initech">
<link rel="canonical" href="https://jobs.example.com/123">
</head><body>
<header><nav>Jobs | About</nav><h1>Site Reliability Engineer</h1></header>
<main>
<p>Keep our Kubernetes platform healthy.</p>
<ul><li>3+ years of experience with Terraform</li></ul>
</main>
<footer>Copyright</footer>
</body></html>`)

	posting, err := LoadJobPosting(path)
	require.NoError(t, err)
	assert.Equal(t, "Site Reliability Engineer", posting.Title)
	assert.Equal(t, "Initech", posting.Company)
	assert.Equal(t, "https://jobs.example.com/123", posting.URL)
	assert.Equal(t, SourceHTML, posting.Source)
	assert.Equal(t, "Keep our Kubernetes platform healthy.\n* 3+ years of experience with Terraform", posting.Description)
}

func TestLoadJobPosting_Text(t *testing.T) {
	path := writeFile(t, "job.txt", "\nData Engineer\nWe need Python, Spark and at least 3 years building pipelines.\n")

	posting, err := LoadJobPosting(path)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", posting.Title)
	assert.Equal(t, SourceText, posting.Source)
	assert.Contains(t, posting.Description, "at least 3 years")
}

func TestLoadJobPosting_Invalid(t *testing.T) {
	_, err := LoadJobPosting(writeFile(t, "job.json", `{"title": "Engineer", "description": "too short"}`))
	assert.ErrorContains(t, err, "invalid job posting")

	_, err = LoadJobPosting(writeFile(t, "bad.json", `{not json`))
	assert.ErrorContains(t, err, "failed to parse job posting JSON")
}
