package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ExtractionSchema describes the JSON object an extraction prompt asks for.
type ExtractionSchema struct {
	Name        string
	Description string // task preamble
	Fields      []SchemaField
}

// SchemaField is one field of the extraction output.
type SchemaField struct {
	Name        string
	Type        string // type hint shown to the model, e.g. `"string"` or `["string"]`
	Description string
	Required    bool
}

// BuildExtractionPrompt renders schema and the input text into a prompt.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		fmt.Fprintf(&sb, "  %q: %s", field.Name, typeHint)
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobPostingSchema asks for the fields of types.JobPosting.
func JobPostingSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobPosting",
		Description: `You are an expert job posting parser. Copy text verbatim, do not paraphrase.
Extract the role title, the hiring company, the skills the posting requires and the key
requirement phrases a resume should echo.
EXCLUDE: application form fields, EEO statements, legal disclaimers.`,
		Fields: []SchemaField{
			{Name: "title", Type: `"string"`, Description: "Role title", Required: true},
			{Name: "company", Type: `"string"`, Description: "Hiring company name"},
			{Name: "required_skills", Type: `["string"]`, Description: "Individual technologies and skills, one per entry", Required: true},
			{Name: "keywords", Type: `["string"]`, Description: "Short requirement phrases, at most 10"},
		},
	}
}

// ExtractJobPosting parses a raw posting into a JobPosting. The raw text becomes the
// description; the model supplies title, company, skills and keywords.
func ExtractJobPosting(ctx context.Context, client Client, text string) (*types.JobPosting, error) {
	resp, err := client.GenerateJSON(ctx, BuildExtractionPrompt(JobPostingSchema(), text), TierLite)
	if err != nil {
		return nil, err
	}

	var posting types.JobPosting
	if err := json.Unmarshal([]byte(CleanJSONBlock(resp)), &posting); err != nil {
		return nil, fmt.Errorf("failed to parse job posting response: %w", err)
	}
	posting.Description = text
	posting.Source = "llm"
	return &posting, nil
}
