package analyzer

import "fmt"

// Sections reported by ProcessingError
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionMetrics    = "metrics"
)

// ProcessingError is returned when a collaborator fails while a section is being analyzed
type ProcessingError struct {
	Section string
	Cause   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error in %s: %v", e.Section, e.Cause)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
