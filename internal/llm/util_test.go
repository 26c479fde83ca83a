package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n[{\"suggestion\": \"Add metrics\"}]\n```",
			expected: `[{"suggestion": "Add metrics"}]`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"title\": \"SRE\"}\n```",
			expected: `{"title": "SRE"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"title": "SRE"}`,
			expected: `{"title": "SRE"}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are my suggestions:\n[{\"priority\": \"high\"}]",
			expected: `[{"priority": "high"}]`,
		},
		{
			name:     "trailing chatter",
			input:    "{\"title\": \"Data Engineer\"}\n\nLet me know if you need anything else!",
			expected: `{"title": "Data Engineer"}`,
		},
		{
			name:     "brackets inside strings",
			input:    `Result: {"suggestion": "Use [metrics] and {numbers}", "examples": ["a \"quoted\" ]"]}`,
			expected: `{"suggestion": "Use [metrics] and {numbers}", "examples": ["a \"quoted\" ]"]}`,
		},
		{
			name:     "no JSON at all",
			input:    "  1. Add metrics\n2. Use verbs  ",
			expected: "1. Add metrics\n2. Use verbs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, ok := ExtractJSON(`{"open": [1, 2`)
	assert.False(t, ok)

	_, ok = ExtractJSON("no brackets")
	assert.False(t, ok)
}
