package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the target job.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.Title))
	if profile.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	}
	sb.WriteString("\n")

	if len(profile.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(profile.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Requirements[i]))
		}
		if len(profile.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Requirements)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.PreferredSkills) > 0 {
		sb.WriteString("Preferred:\n")
		count := min(len(profile.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.PreferredSkills[i]))
		}
		if len(profile.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.PreferredSkills)-3))
		}
	}

	p.printBox("TARGET JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCustomizationSummary outputs what changed between the original and
// customized resumes.
func (p *Printer) PrintCustomizationSummary(original, customized *types.ResumeData) {
	if original == nil || customized == nil {
		return
	}

	var sb strings.Builder

	if original.Summary != customized.Summary {
		sb.WriteString("Summary:      rewritten\n")
	} else {
		sb.WriteString("Summary:      unchanged\n")
	}

	changed := 0
	for i := range original.Experiences {
		if i < len(customized.Experiences) && !equalStrings(original.Experiences[i].Highlights, customized.Experiences[i].Highlights) {
			changed++
		}
	}
	sb.WriteString(fmt.Sprintf("Experiences:  %d of %d updated\n", changed, len(original.Experiences)))

	if equalSkills(original.Skills, customized.Skills) {
		sb.WriteString("Skills:       unchanged\n")
	} else {
		sb.WriteString("Skills:       reordered\n")
	}

	changed = 0
	for i := range original.Projects {
		if i < len(customized.Projects) && original.Projects[i].Description != customized.Projects[i].Description {
			changed++
		}
	}
	sb.WriteString(fmt.Sprintf("Projects:     %d of %d updated", changed, len(original.Projects)))

	p.printBox("CUSTOMIZATION SUMMARY", sb.String())
}

// PrintValidationProblems outputs structural validation problems.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationProblems(problems []string) {
	if len(problems) == 0 {
		fmt.Fprintln(p.out, "✓ No validation problems found")
		return
	}

	var sb strings.Builder
	for i, problem := range problems {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, problem))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("VALIDATION PROBLEMS (%d)", len(problems)), sb.String())
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalSkills(a, b []types.SkillCategory) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Category != b[i].Category || !equalStrings(a[i].Skills, b[i].Skills) {
			return false
		}
	}
	return true
}
