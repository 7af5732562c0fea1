package ingestion

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// InvalidJobError reports job profile invariant violations.
type InvalidJobError struct {
	Path     string
	Problems []string
}

func (e *InvalidJobError) Error() string {
	return "job profile " + e.Path + " failed validation: " + strings.Join(e.Problems, "; ")
}

// LoadJobProfile reads a job profile YAML file and validates its required
// fields.
func LoadJobProfile(path string) (*types.JobProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "could not read file", Cause: err}
	}

	var job types.JobProfile
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid YAML", Cause: err}
	}

	if problems := job.Validate(); len(problems) > 0 {
		return nil, &InvalidJobError{Path: path, Problems: problems}
	}

	return &job, nil
}

// LoadPostingText reads a raw job posting text file. The content is
// trimmed but otherwise returned as-is for profile extraction.
func LoadPostingText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &LoadError{Path: path, Message: "could not read file", Cause: err}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", &LoadError{Path: path, Message: "posting file is empty"}
	}
	return text, nil
}
