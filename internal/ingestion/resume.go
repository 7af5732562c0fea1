// Package ingestion reads and writes the YAML documents the pipeline works
// on: resume data and job profiles. Resume documents pass JSON Schema
// validation before they are decoded into typed structures, so malformed
// files fail with field-level messages instead of partial data.
package ingestion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/valyrian24052/resume-genie/internal/schemas"
	"github.com/valyrian24052/resume-genie/internal/types"
)

// LoadError represents a failure loading a document from disk.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// InvalidResumeError reports structural invariant violations found after
// schema validation passed.
type InvalidResumeError struct {
	Path     string
	Problems []string
}

func (e *InvalidResumeError) Error() string {
	return fmt.Sprintf("resume %s failed validation: %d problem(s)", e.Path, len(e.Problems))
}

// LoadResume reads a resume YAML file, validates it against the resume
// schema and the structural invariants, and returns the typed document.
func LoadResume(path string) (*types.ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "could not read file", Cause: err}
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid YAML", Cause: err}
	}
	if err := schemas.ValidateResumeDocument(doc); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var resume types.ResumeData
	if err := yaml.Unmarshal(raw, &resume); err != nil {
		return nil, &LoadError{Path: path, Message: "could not decode resume", Cause: err}
	}

	if problems := resume.Validate(); len(problems) > 0 {
		return nil, &InvalidResumeError{Path: path, Problems: problems}
	}

	return &resume, nil
}

// SaveResume writes the resume back to disk as YAML. Field order follows
// the struct definition and empty optional fields are omitted, so a
// load-save cycle preserves the document's shape.
func SaveResume(path string, resume *types.ResumeData) error {
	out, err := yaml.Marshal(resume)
	if err != nil {
		return &LoadError{Path: path, Message: "could not encode resume", Cause: err}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &LoadError{Path: path, Message: "could not write file", Cause: err}
	}
	return nil
}
