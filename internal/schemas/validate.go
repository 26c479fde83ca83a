// Package schemas validates serialized analysis and match results against the JSON Schemas
// embedded in the binary.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Embedded schema names
const (
	AnalysisResultSchema = "analysis_result.schema.json"
	MatchResultSchema    = "match_result.schema.json"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAnalysisResponse checks a serialized analysis against the analysis schema.
func ValidateAnalysisResponse(resp *types.AnalysisResponse) error {
	return Validate(AnalysisResultSchema, resp)
}

// ValidateMatchResult checks a match result against the match schema.
func ValidateMatchResult(result *types.MatchResult) error {
	return Validate(MatchResultSchema, result)
}

// Validate marshals doc to JSON and checks it against the named embedded schema.
func Validate(schemaName string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return ValidateBytes(schemaName, data)
}

// ValidateBytes checks a JSON document against the named embedded schema.
func ValidateBytes(schemaName string, data []byte) error {
	schema, err := load(schemaName)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return toValidationError(result)
}

// ValidateFile checks a JSON file against the named embedded schema.
func ValidateFile(schemaName, jsonPath string) error {
	absPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", absPath)
		}
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	return ValidateBytes(schemaName, data)
}

func load(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	raw, err := schemaFiles.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not found", Cause: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	compiled[name] = schema
	return schema, nil
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
