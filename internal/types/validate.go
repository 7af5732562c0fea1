package types

import (
	"fmt"
	"strings"
)

// Validate checks the resume's structural invariants and returns every
// violation found, not just the first. An empty slice means the resume is
// valid.
func (r *ResumeData) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.Basic.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(r.Basic.Contact.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if strings.TrimSpace(r.Basic.Contact.Phone) == "" {
		errs = append(errs, "Phone is required")
	}
	if len(r.Basic.Address) == 0 {
		errs = append(errs, "Address is required")
	}

	for i, exp := range r.Experiences {
		if strings.TrimSpace(exp.Company) == "" {
			errs = append(errs, fmt.Sprintf("Experience %d: Company name is required", i+1))
		}
		if len(exp.Titles) == 0 {
			errs = append(errs, fmt.Sprintf("Experience %d: At least one job title is required", i+1))
		}
		for j, title := range exp.Titles {
			if strings.TrimSpace(title.Name) == "" {
				errs = append(errs, fmt.Sprintf("Experience %d, Title %d: Job title name is required", i+1, j+1))
			}
			if strings.TrimSpace(title.StartDate) == "" {
				errs = append(errs, fmt.Sprintf("Experience %d, Title %d: Start date is required", i+1, j+1))
			}
			if strings.TrimSpace(title.EndDate) == "" {
				errs = append(errs, fmt.Sprintf("Experience %d, Title %d: End date is required", i+1, j+1))
			}
		}
	}

	for i, edu := range r.Education {
		if strings.TrimSpace(edu.School) == "" {
			errs = append(errs, fmt.Sprintf("Education %d: School name is required", i+1))
		}
		if len(edu.Degrees) == 0 {
			errs = append(errs, fmt.Sprintf("Education %d: At least one degree is required", i+1))
		}
		for j, degree := range edu.Degrees {
			if len(degree.Names) == 0 {
				errs = append(errs, fmt.Sprintf("Education %d, Degree %d: Degree name is required", i+1, j+1))
			}
			if strings.TrimSpace(degree.StartDate) == "" {
				errs = append(errs, fmt.Sprintf("Education %d, Degree %d: Start date is required", i+1, j+1))
			}
			if strings.TrimSpace(degree.EndDate) == "" {
				errs = append(errs, fmt.Sprintf("Education %d, Degree %d: End date is required", i+1, j+1))
			}
		}
	}

	for i, cat := range r.Skills {
		if strings.TrimSpace(cat.Category) == "" {
			errs = append(errs, fmt.Sprintf("Skill category %d: Category name is required", i+1))
		}
		if len(cat.Skills) == 0 {
			errs = append(errs, fmt.Sprintf("Skill category %d: At least one skill is required", i+1))
		}
	}

	for i, project := range r.Projects {
		if strings.TrimSpace(project.Name) == "" {
			errs = append(errs, fmt.Sprintf("Project %d: Project name is required", i+1))
		}
		if strings.TrimSpace(project.Description) == "" {
			errs = append(errs, fmt.Sprintf("Project %d: Project description is required", i+1))
		}
	}

	for i, research := range r.Research {
		if strings.TrimSpace(research.Title) == "" {
			errs = append(errs, fmt.Sprintf("Research %d: Research title is required", i+1))
		}
		if strings.TrimSpace(research.Description) == "" {
			errs = append(errs, fmt.Sprintf("Research %d: Research description is required", i+1))
		}
	}

	return errs
}

// IsValid reports whether the resume passes all structural invariants.
func (r *ResumeData) IsValid() bool {
	return len(r.Validate()) == 0
}

// ValidationError aggregates itemized resume validation failures into a
// single error value for callers that want to fail a build.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:\n")
	for i, problem := range e.Problems {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, problem))
	}
	return sb.String()
}
