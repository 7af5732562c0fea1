// Package promptctx builds rich prompt context strings from a user's full
// background for AI customization requests.
package promptctx

import (
	"fmt"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// Prompt types recognized by BuildContextVariables.
const (
	PromptSummary    = "summary"
	PromptExperience = "experience"
	PromptSkills     = "skills"
	PromptProjects   = "projects"
)

// Builder assembles prompt context variables from resume and job data.
// The zero value works; without resume data every summary degrades to a
// descriptive fallback string rather than erroring.
type Builder struct {
	resume *types.ResumeData
}

// NewBuilder creates a context builder for the given resume. The resume
// may be nil and set later.
func NewBuilder(resume *types.ResumeData) *Builder {
	return &Builder{resume: resume}
}

// SetResumeData replaces the resume the builder works from.
func (b *Builder) SetResumeData(resume *types.ResumeData) {
	b.resume = resume
}

// ExperiencesSummary formats every experience as one line: latest title,
// company, date range, and up to three highlights.
func (b *Builder) ExperiencesSummary() string {
	if b.resume == nil || len(b.resume.Experiences) == 0 {
		return "No professional experience listed"
	}

	parts := make([]string, 0, len(b.resume.Experiences))
	for _, exp := range b.resume.Experiences {
		var titleInfo string
		if len(exp.Titles) > 0 {
			// Titles are chronological; the last one is the current role.
			latest := exp.Titles[len(exp.Titles)-1]
			titleInfo = fmt.Sprintf("%s at %s", latest.Name, exp.Company)
			if latest.StartDate != "" && latest.EndDate != "" {
				titleInfo += fmt.Sprintf(" (%s - %s)", latest.StartDate, latest.EndDate)
			}
		} else {
			titleInfo = "Position at " + exp.Company
		}

		highlights := exp.Highlights
		if len(highlights) > 3 {
			highlights = highlights[:3]
		}
		if len(highlights) > 0 {
			parts = append(parts, titleInfo+": "+strings.Join(highlights, "; "))
		} else {
			parts = append(parts, titleInfo)
		}
	}
	return strings.Join(parts, " | ")
}

// ProjectsSummary formats every project as one line with subtitle, top
// technologies, and a truncated description.
func (b *Builder) ProjectsSummary() string {
	if b.resume == nil || len(b.resume.Projects) == 0 {
		return "No projects listed"
	}

	parts := make([]string, 0, len(b.resume.Projects))
	for _, project := range b.resume.Projects {
		info := project.Name
		if project.Subtitle != "" {
			info += fmt.Sprintf(" (%s)", project.Subtitle)
		}
		if len(project.Technologies) > 0 {
			techs := project.Technologies
			extra := 0
			if len(techs) > 3 {
				extra = len(techs) - 3
				techs = techs[:3]
			}
			techStr := strings.Join(techs, ", ")
			if extra > 0 {
				techStr += fmt.Sprintf(" and %d more", extra)
			}
			info += " - Technologies: " + techStr
		}
		if project.Description != "" {
			info += " - " + truncate(project.Description, 100)
		}
		parts = append(parts, info)
	}
	return strings.Join(parts, " | ")
}

// SkillsSummary formats every skill category with its top five skills.
func (b *Builder) SkillsSummary() string {
	if b.resume == nil || len(b.resume.Skills) == 0 {
		return "No skills listed"
	}

	parts := make([]string, 0, len(b.resume.Skills))
	for _, cat := range b.resume.Skills {
		skills := cat.Skills
		extra := 0
		if len(skills) > 5 {
			extra = len(skills) - 5
			skills = skills[:5]
		}
		skillsStr := strings.Join(skills, ", ")
		if extra > 0 {
			skillsStr += fmt.Sprintf(" and %d more", extra)
		}
		parts = append(parts, cat.Category+": "+skillsStr)
	}
	return strings.Join(parts, " | ")
}

// ResearchSummary formats every research entry with publication date, a
// truncated description, and up to three keywords.
func (b *Builder) ResearchSummary() string {
	if b.resume == nil || len(b.resume.Research) == 0 {
		return "No research experience listed"
	}

	parts := make([]string, 0, len(b.resume.Research))
	for _, research := range b.resume.Research {
		info := research.Title
		if research.PublicationDate != "" {
			info += fmt.Sprintf(" (%s)", research.PublicationDate)
		}
		if research.Description != "" {
			info += " - " + truncate(research.Description, 80)
		}
		if len(research.Keywords) > 0 {
			keywords := research.Keywords
			if len(keywords) > 3 {
				keywords = keywords[:3]
			}
			info += " - Keywords: " + strings.Join(keywords, ", ")
		}
		parts = append(parts, info)
	}
	return strings.Join(parts, " | ")
}

// EducationSummary formats every school with all of its degree names.
func (b *Builder) EducationSummary() string {
	if b.resume == nil || len(b.resume.Education) == 0 {
		return "No education listed"
	}

	parts := make([]string, 0, len(b.resume.Education))
	for _, edu := range b.resume.Education {
		info := edu.School
		var degreeNames []string
		for _, degree := range edu.Degrees {
			degreeNames = append(degreeNames, degree.Names...)
		}
		if len(degreeNames) > 0 {
			info += " - " + strings.Join(degreeNames, ", ")
		}
		parts = append(parts, info)
	}
	return strings.Join(parts, " | ")
}

// FullUserContext assembles the complete background block used by
// experience prompts: name, education, experiences, projects, skills,
// plus research and the current summary when present.
func (b *Builder) FullUserContext() string {
	if b.resume == nil {
		return "No resume data available"
	}

	parts := []string{
		"Name: " + b.resume.Basic.Name,
		"Education: " + b.EducationSummary(),
		"Experience: " + b.ExperiencesSummary(),
		"Projects: " + b.ProjectsSummary(),
		"Skills: " + b.SkillsSummary(),
	}
	if len(b.resume.Research) > 0 {
		parts = append(parts, "Research: "+b.ResearchSummary())
	}
	if b.resume.Summary != "" {
		parts = append(parts, "Current Summary: "+b.resume.Summary)
	}
	return strings.Join(parts, "\n")
}

// TargetSkills concatenates job requirements and preferred skills,
// de-duplicated case-insensitively with first spelling kept.
func (b *Builder) TargetSkills(job *types.JobProfile) string {
	var skills []string
	skills = append(skills, job.Requirements...)
	skills = append(skills, job.PreferredSkills...)

	seen := make(map[string]bool)
	var unique []string
	for _, skill := range skills {
		key := strings.ToLower(skill)
		if !seen[key] {
			unique = append(unique, skill)
			seen[key] = true
		}
	}
	if len(unique) == 0 {
		return "No specific skills mentioned in job posting"
	}
	return strings.Join(unique, ", ")
}

// JobContext formats the job profile as a labeled multi-line block.
// Optional fields are present only when non-empty.
func (b *Builder) JobContext(job *types.JobProfile) string {
	parts := []string{
		"Job Title: " + job.Title,
		"Company: " + job.Company,
		"Description: " + job.Description,
	}
	if len(job.Requirements) > 0 {
		parts = append(parts, "Requirements: "+strings.Join(job.Requirements, ", "))
	}
	if len(job.PreferredSkills) > 0 {
		parts = append(parts, "Preferred Skills: "+strings.Join(job.PreferredSkills, ", "))
	}
	if job.Industry != "" {
		parts = append(parts, "Industry: "+job.Industry)
	}
	if job.ExperienceLevel != "" {
		parts = append(parts, "Experience Level: "+job.ExperienceLevel)
	}
	return strings.Join(parts, "\n")
}

// BuildContextVariables assembles the substitution variables for one
// prompt invocation. Every prompt type gets job_context and content; the
// remaining variables depend on the prompt type. Extra variables merge in
// after the base pair and before type-specific ones.
func (b *Builder) BuildContextVariables(promptType, content string, job *types.JobProfile, extra map[string]string) map[string]string {
	vars := map[string]string{
		"job_context": b.JobContext(job),
		"content":     content,
	}
	for key, value := range extra {
		vars[key] = value
	}

	switch promptType {
	case PromptSummary:
		vars["experiences_summary"] = b.ExperiencesSummary()
		vars["projects_summary"] = b.ProjectsSummary()
		vars["skills_summary"] = b.SkillsSummary()
		vars["education_summary"] = b.EducationSummary()
		if b.resume != nil && len(b.resume.Research) > 0 {
			vars["research_summary"] = b.ResearchSummary()
		}
	case PromptExperience:
		vars["full_context"] = b.FullUserContext()
		vars["target_skills"] = b.TargetSkills(job)
	case PromptSkills:
		vars["target_skills"] = b.TargetSkills(job)
		vars["user_experience_level"] = b.InferExperienceLevel()
		vars["relevant_projects"] = b.relevantProjectsForSkills(job)
	case PromptProjects:
		vars["target_skills"] = b.TargetSkills(job)
		vars["technical_background"] = b.technicalBackground()
	}
	return vars
}

var seniorIndicators = []string{"senior", "lead", "principal", "architect", "manager", "director"}

// InferExperienceLevel estimates seniority from the volume of experience
// entries and highlights, plus seniority keywords in job titles.
func (b *Builder) InferExperienceLevel() string {
	if b.resume == nil || len(b.resume.Experiences) == 0 {
		return "Entry level"
	}

	totalExperiences := len(b.resume.Experiences)
	totalHighlights := 0
	hasSeniorTitle := false
	for _, exp := range b.resume.Experiences {
		totalHighlights += len(exp.Highlights)
		for _, title := range exp.Titles {
			lower := strings.ToLower(title.Name)
			for _, indicator := range seniorIndicators {
				if strings.Contains(lower, indicator) {
					hasSeniorTitle = true
				}
			}
		}
	}

	switch {
	case (totalExperiences >= 2 && totalHighlights >= 6) || hasSeniorTitle:
		return "Senior level"
	case totalExperiences >= 2 && totalHighlights >= 4:
		return "Mid level"
	default:
		return "Entry to mid level"
	}
}

// relevantProjectsForSkills matches projects against job keywords and
// falls back to the first three project names when nothing matches.
func (b *Builder) relevantProjectsForSkills(job *types.JobProfile) string {
	if b.resume == nil || len(b.resume.Projects) == 0 {
		return "No projects available"
	}

	keywords := make(map[string]bool)
	for _, req := range job.Requirements {
		for _, word := range strings.Fields(req) {
			keywords[strings.ToLower(word)] = true
		}
	}
	for _, skill := range job.PreferredSkills {
		for _, word := range strings.Fields(skill) {
			keywords[strings.ToLower(word)] = true
		}
	}

	var relevant []string
	for _, project := range b.resume.Projects {
		text := strings.ToLower(project.Name + " " + project.Description + " " + strings.Join(project.Technologies, " "))
		matched := false
		for keyword := range keywords {
			if strings.Contains(text, keyword) {
				matched = true
				break
			}
		}
		if matched {
			techs := project.Technologies
			if len(techs) > 3 {
				techs = techs[:3]
			}
			relevant = append(relevant, fmt.Sprintf("%s (%s)", project.Name, strings.Join(techs, ", ")))
		}
	}

	if len(relevant) > 0 {
		if len(relevant) > 3 {
			relevant = relevant[:3]
		}
		return "Relevant projects: " + strings.Join(relevant, ", ")
	}

	var names []string
	for _, project := range b.resume.Projects {
		names = append(names, project.Name)
		if len(names) == 3 {
			break
		}
	}
	return "Projects: " + strings.Join(names, ", ")
}

var techVerbs = []string{"developed", "built", "implemented", "designed", "programmed", "coded", "architected"}

var techCategoryHints = []string{"programming", "technical", "language", "framework", "tool"}

// technicalBackground summarizes technical skills, technically flavored
// experience highlights, and project technologies for project prompts.
func (b *Builder) technicalBackground() string {
	if b.resume == nil {
		return "No technical background available"
	}

	var parts []string

	var techSkills []string
	for _, cat := range b.resume.Skills {
		lower := strings.ToLower(cat.Category)
		relevant := false
		for _, hint := range techCategoryHints {
			if strings.Contains(lower, hint) {
				relevant = true
				break
			}
		}
		if relevant {
			skills := cat.Skills
			if len(skills) > 3 {
				skills = skills[:3]
			}
			techSkills = append(techSkills, skills...)
		}
	}
	if len(techSkills) > 0 {
		if len(techSkills) > 8 {
			techSkills = techSkills[:8]
		}
		parts = append(parts, "Technical Skills: "+strings.Join(techSkills, ", "))
	}

	var techExperience []string
	for _, exp := range b.resume.Experiences {
		for _, highlight := range exp.Highlights {
			lower := strings.ToLower(highlight)
			matched := false
			for _, verb := range techVerbs {
				if strings.Contains(lower, verb) {
					matched = true
					break
				}
			}
			if matched {
				techExperience = append(techExperience, exp.Company+": "+truncateHard(highlight, 50)+"...")
				break
			}
		}
	}
	if len(techExperience) > 0 {
		if len(techExperience) > 2 {
			techExperience = techExperience[:2]
		}
		parts = append(parts, "Technical Experience: "+strings.Join(techExperience, " | "))
	}

	var allTech []string
	seen := make(map[string]bool)
	for _, project := range b.resume.Projects {
		for _, tech := range project.Technologies {
			if !seen[tech] {
				allTech = append(allTech, tech)
				seen[tech] = true
			}
		}
	}
	if len(allTech) > 10 {
		allTech = allTech[:10]
	}
	if len(allTech) > 0 {
		parts = append(parts, "Project Technologies: "+strings.Join(allTech, ", "))
	}

	if len(parts) == 0 {
		return "General technical background"
	}
	return strings.Join(parts, " | ")
}

// truncate shortens text to limit characters, appending an ellipsis when
// anything was cut.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// truncateHard cuts without checking length first; the caller appends its
// own suffix unconditionally.
func truncateHard(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
