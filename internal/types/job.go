package types

import "strings"

// JobProfile describes the target job posting used as customization context.
// It is never persisted back; the resume is the only mutated artifact.
type JobProfile struct {
	Title           string   `yaml:"title" json:"title"`
	Company         string   `yaml:"company" json:"company"`
	Description     string   `yaml:"description" json:"description"`
	Requirements    []string `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	PreferredSkills []string `yaml:"preferred_skills,omitempty" json:"preferred_skills,omitempty"`
	Industry        string   `yaml:"industry,omitempty" json:"industry,omitempty"`
	ExperienceLevel string   `yaml:"experience_level,omitempty" json:"experience_level,omitempty"`
}

// Validate checks the job profile invariants and returns every violation.
func (j *JobProfile) Validate() []string {
	var errs []string
	if strings.TrimSpace(j.Title) == "" {
		errs = append(errs, "Job title is required")
	}
	if strings.TrimSpace(j.Company) == "" {
		errs = append(errs, "Company name is required")
	}
	if strings.TrimSpace(j.Description) == "" {
		errs = append(errs, "Job description is required")
	}
	return errs
}

// IsValid reports whether the job profile passes validation.
func (j *JobProfile) IsValid() bool {
	return len(j.Validate()) == 0
}
