package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com

Summary
Backend engineer with a focus on reliability.

EXPERIENCE:
Software Engineer, Acme Corp 2019 - Present
- Built billing APIs
Education
BS Computer Science, Stanford University, 2018
Technical Skills
Go, Python`

func TestSplit_Headers(t *testing.T) {
	spans := Default().Split(sampleResume)
	require.Len(t, spans, 5)

	assert.False(t, spans[0].HasHeader)
	assert.Equal(t, "Jane Doe\njane@example.com\n\n", spans[0].Body)

	headers := make([]string, 0, len(spans))
	for _, s := range spans[1:] {
		assert.True(t, s.HasHeader)
		headers = append(headers, s.Header)
	}
	assert.Equal(t, []string{"Summary", "EXPERIENCE", "Education", "Technical Skills"}, headers)
	assert.Equal(t, "Go, Python", spans[4].Body)
}

func TestSplit_PreservesText(t *testing.T) {
	spans := Default().Split(sampleResume)

	var rebuilt strings.Builder
	for _, s := range spans {
		rebuilt.WriteString(s.Body)
	}
	for _, line := range strings.Split(sampleResume, "\n") {
		if Default().pattern.MatchString(line) {
			continue
		}
		assert.Contains(t, rebuilt.String(), line)
	}
}

func TestSplit_HeaderMustBeAlone(t *testing.T) {
	text := "I have experience with Go\nMy education was great\n"
	spans := Default().Split(text)
	require.Len(t, spans, 1)
	assert.Equal(t, text, spans[0].Body)
}

func TestSplit_ConsecutiveHeaders(t *testing.T) {
	spans := Default().Split("Skills\nExperience\nEngineer at Acme Corp\n")
	require.Len(t, spans, 3)
	assert.Equal(t, "", spans[1].Body)
	assert.Equal(t, "Engineer at Acme Corp\n", spans[2].Body)
}

func TestSplit_EmptyText(t *testing.T) {
	spans := Default().Split("")
	require.Len(t, spans, 1)
	assert.Equal(t, "", spans[0].Body)
}

func TestFind(t *testing.T) {
	spans := Default().Split(sampleResume)

	tests := []struct {
		name     string
		labels   []string
		wantBody string
		wantOK   bool
	}{
		{"experience labels", ExperienceLabels, "Software Engineer, Acme Corp 2019 - Present\n- Built billing APIs\n", true},
		{"education labels", EducationLabels, "BS Computer Science, Stanford University, 2018\n", true},
		{"partial header match", []string{"skills"}, "Go, Python", true},
		{"absent section", []string{"certifications"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := Find(spans, tt.labels...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestFind_IgnoresBodies(t *testing.T) {
	spans := Default().Split("Summary\n10 years of experience\nSkills\nGo\n")
	_, ok := Find(spans, ExperienceLabels...)
	assert.False(t, ok)
}
