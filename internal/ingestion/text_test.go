package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeBody = `Jane Doe
Professional Experience
Senior Software Engineer, Acme Corporation 2019 - Present
- Led migration of 40 services to Kubernetes
`

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims lines and drops blanks",
			input:    "  Jane Doe  \n\n\n\tExperience\t\n",
			expected: "Jane Doe\nExperience",
		},
		{
			name:     "normalizes line endings",
			input:    "Line 1\r\nLine 2\rLine 3\nLine 4",
			expected: "Line 1\nLine 2\nLine 3\nLine 4",
		},
		{
			name:     "typography becomes ASCII",
			input:    "“Shipped” it – 2019—2020\n• Owner’s role here",
			expected: "\"Shipped\" it - 2019-2020\n* Owner's role here",
		},
		{
			name:     "invalid UTF-8 is replaced",
			input:    "Go\xff developer",
			expected: "Go� developer",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
	assert.Equal(t, CleanText(input), CleanText(CleanText(input)))
}

func TestIsExtractable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"too short", "Jane Doe, engineer", false},
		{"mostly digits", strings.Repeat("1234567890", 6) + " abc", false},
		{"enough text", strings.Repeat("resume ", 10), true},
		{"whitespace padded short", "   " + strings.Repeat("a", 49) + "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExtractable(tt.text))
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResumeText(t *testing.T) {
	path := writeFile(t, "jane.txt", "\r\n"+resumeBody+"\r\n\r\n")

	text, meta, err := LoadResumeText(path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(resumeBody), text)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, computeHash(text), meta.Hash)
}

func TestLoadResumeText_HTML(t *testing.T) {
	html := `<html><head><title>CV</title><style>p{color:red}</style></head><body>
<h1>Jane Doe</h1>
<h2>Professional Experience</h2>
<p>Senior Software Engineer, Acme Corporation 2019 - Present</p>
<ul><li>Led migration of <b>40</b> services to Kubernetes</li><li>Reduced latency by 35%</li></ul>
<script>track()</script>
</body></html>`
	path := writeFile(t, "jane.html", html)

	text, _, err := LoadResumeText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nProfessional Experience\nSenior Software Engineer, Acme Corporation 2019 - Present\n"+
		"* Led migration of 40 services to Kubernetes\n* Reduced latency by 35%", text)
}

func TestLoadResumeText_Errors(t *testing.T) {
	_, _, err := LoadResumeText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "file not found")

	_, _, err = LoadResumeText(writeFile(t, "cv.pdf", "%PDF-1.4"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = LoadResumeText(writeFile(t, "short.txt", "Jane Doe"))
	assert.ErrorIs(t, err, ErrNoResumeSignal)
}

func TestHTMLToText_ListBullets(t *testing.T) {
	raw, err := HTMLToText(`<ul><li>Built APIs</li><li>Cut costs by 20%</li></ul>`)
	require.NoError(t, err)
	assert.Contains(t, raw, "• Built APIs")

	assert.Equal(t, "* Built APIs\n* Cut costs by 20%", CleanText(raw))
}
