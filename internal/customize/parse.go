package customize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// ParseHighlights extracts highlight lines from a free-form AI response.
// A line counts when it is non-blank and either carries a "- " bullet
// (prefix stripped) or no leading dash at all (kept verbatim). Blank
// lines and malformed dash lines are dropped.
func ParseHighlights(content string) []string {
	var highlights []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- "):
			highlights = append(highlights, line[2:])
		case line != "" && !strings.HasPrefix(line, "-"):
			highlights = append(highlights, line)
		}
	}
	return highlights
}

// FormatSkills renders skill categories into the bulleted text format the
// skills prompt sends and ParseSkills reads back.
func FormatSkills(skills []types.SkillCategory) string {
	var sb strings.Builder
	for _, cat := range skills {
		sb.WriteString(cat.Category)
		sb.WriteString(":\n")
		for _, skill := range cat.Skills {
			sb.WriteString("  - ")
			sb.WriteString(skill)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// ParseSkills reconstructs skill categories from a free-form AI response.
// A line ending in ":" that is not a bullet opens a new category and
// flushes the previous one; bullet lines ("- ", "• ", or indented "  - ")
// contribute skills to the open category; anything else is ignored. Zero
// parsed categories means the response was unusable.
func ParseSkills(content string) []types.SkillCategory {
	var skills []types.SkillCategory
	var category string
	var current []string

	flush := func() {
		if category != "" && len(current) > 0 {
			skills = append(skills, types.SkillCategory{Category: category, Skills: current})
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, "-"):
			flush()
			category = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			current = nil
		case strings.HasPrefix(line, "- "):
			if skill := strings.TrimSpace(strings.TrimPrefix(line, "- ")); skill != "" {
				current = append(current, skill)
			}
		case strings.HasPrefix(line, "• "):
			if skill := strings.TrimSpace(strings.TrimPrefix(line, "• ")); skill != "" {
				current = append(current, skill)
			}
		}
	}
	flush()
	return skills
}

// FormatProjects renders projects into the numbered text format the
// projects prompt sends and ParseProjects reads back.
func FormatProjects(projects []types.Project) string {
	var sb strings.Builder
	for i, project := range projects {
		fmt.Fprintf(&sb, "Project %d:\n", i+1)
		fmt.Fprintf(&sb, "Name: %s\n", project.Name)
		if project.Subtitle != "" {
			fmt.Fprintf(&sb, "Subtitle: %s\n", project.Subtitle)
		}
		if project.URL != "" {
			fmt.Fprintf(&sb, "URL: %s\n", project.URL)
		}
		fmt.Fprintf(&sb, "Description: %s\n", project.Description)
		if len(project.Technologies) > 0 {
			fmt.Fprintf(&sb, "Technologies: %s\n", strings.Join(project.Technologies, ", "))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// ParseProjects applies description rewrites from a free-form AI response
// onto copies of the original projects. "Project N:" lines select the
// active project (1-based in text); a "Description:" line overwrites only
// the description of the selected project. Out-of-range indices are
// ignored silently.
func ParseProjects(content string, originals []types.Project) []types.Project {
	projects := make([]types.Project, len(originals))
	for i, project := range originals {
		projects[i] = project.Clone()
	}

	index := -1
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Project ") && strings.Contains(line, ":"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			number, err := strconv.Atoi(strings.TrimSuffix(fields[1], ":"))
			if err != nil {
				continue
			}
			index = number - 1
		case strings.HasPrefix(line, "Description:") && index >= 0 && index < len(projects):
			if description := strings.TrimSpace(line[len("Description:"):]); description != "" {
				projects[index].Description = description
			}
		}
	}
	return projects
}
