package parsing

import (
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// Section headings that introduce required qualifications in postings.
var requirementHeadings = []string{
	"requirements", "qualifications", "what you'll need", "what you need",
	"must have", "minimum qualifications",
}

// Section headings that introduce nice-to-have qualifications.
var preferredHeadings = []string{
	"preferred", "nice to have", "bonus", "plus", "preferred qualifications",
}

// HeuristicProfile builds a JobProfile from posting text without AI help.
// It scans for requirement section headings and collects the bulleted lines
// that follow them. Title and company stay empty; callers prompt for those.
func HeuristicProfile(postingText string) *types.JobProfile {
	profile := &types.JobProfile{
		Description: strings.TrimSpace(postingText),
	}

	var target *[]string
	for _, line := range strings.Split(postingText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if heading, ok := matchHeading(line); ok {
			switch heading {
			case "requirements":
				target = &profile.Requirements
			case "preferred":
				target = &profile.PreferredSkills
			default:
				// An unrelated heading closes the current section so its
				// bullets are not collected.
				target = nil
			}
			continue
		}

		item, ok := bulletText(line)
		if !ok {
			// Prose resets the section so unrelated bullets later in the
			// posting are not collected.
			if len(strings.Fields(line)) > 12 {
				target = nil
			}
			continue
		}
		if target != nil && item != "" {
			*target = append(*target, item)
		}
	}

	return profile
}

// matchHeading classifies a short line as a requirement heading, a
// preferred heading, or an unrelated heading. Long lines are prose, not
// headings.
func matchHeading(line string) (string, bool) {
	if len(line) > 60 {
		return "", false
	}
	hadColon := strings.HasSuffix(line, ":")
	lower := strings.ToLower(strings.TrimSuffix(line, ":"))
	for _, h := range preferredHeadings {
		if strings.Contains(lower, h) {
			return "preferred", true
		}
	}
	for _, h := range requirementHeadings {
		if strings.Contains(lower, h) {
			return "requirements", true
		}
	}
	if hadColon {
		return "", true
	}
	return "", false
}

// bulletText strips a leading bullet marker and reports whether the line
// was a bullet at all.
func bulletText(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
