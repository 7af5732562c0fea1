// Package customize implements AI-powered resume customization. The
// engine walks one resume section at a time (summary, experience, skills,
// projects), issues one completion call per section, and parses the
// free-form response back into the structured record. Any failure keeps
// the original content for that section; the input resume is never
// mutated.
package customize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/llm"
	"github.com/valyrian24052/resume-genie/internal/promptctx"
	"github.com/valyrian24052/resume-genie/internal/prompts"
	"github.com/valyrian24052/resume-genie/internal/types"
)

// Engine customizes resumes against job profiles through an AI client.
type Engine struct {
	client   llm.Client
	config   *prompts.Config
	defaults *prompts.Config
	builder  *promptctx.Builder
}

// NewEngine creates a customization engine. config carries externally
// loaded prompt definitions and may be nil; defaults must be a complete
// configuration (normally prompts.DefaultConfig()) and covers every
// section config lacks.
func NewEngine(client llm.Client, config, defaults *prompts.Config) *Engine {
	if defaults == nil {
		defaults = prompts.DefaultConfig()
	}
	return &Engine{
		client:   client,
		config:   config,
		defaults: defaults,
		builder:  promptctx.NewBuilder(nil),
	}
}

// NewEngineFromPath creates an engine that loads prompt configuration
// from the given file, degrading to built-in defaults when the file is
// missing or invalid.
func NewEngineFromPath(client llm.Client, configPath string) *Engine {
	loader := prompts.NewLoader(configPath)
	var config *prompts.Config
	if err := loader.Load(); err != nil {
		slog.Warn("failed to load prompt configuration, using fallback prompts", "error", err)
	} else {
		config = loaderConfig(loader)
	}
	return NewEngine(client, config, prompts.DefaultConfig())
}

func loaderConfig(loader *prompts.Loader) *prompts.Config {
	config := &prompts.Config{Prompts: map[string]prompts.PromptConfig{}}
	for _, name := range loader.AvailablePrompts() {
		if prompt := loader.Prompt(name); prompt != nil {
			config.Prompts[name] = *prompt
		}
	}
	config.DefaultParams = loader.DefaultParams()
	return config
}

// CustomizeForJob customizes an entire resume for one job profile. The
// returned resume is a deep copy; the input is left untouched. When the
// AI endpoint is unreachable the copy comes back unmodified.
func (e *Engine) CustomizeForJob(ctx context.Context, resume *types.ResumeData, job *types.JobProfile) *types.ResumeData {
	slog.Info("starting resume customization", "job", job.Title, "company", job.Company)

	customized := resume.Clone()
	e.builder.SetResumeData(resume)

	if !e.client.IsAvailable(ctx) {
		slog.Warn("AI endpoint is not available, returning original resume without customization")
		return customized
	}

	if customized.Summary != "" {
		if summary, ok := e.EnhanceSummary(ctx, customized.Summary, job); ok {
			customized.Summary = summary
			slog.Info("successfully customized resume summary")
		}
	}

	customized.Experiences = e.OptimizeExperience(ctx, customized.Experiences, job)
	customized.Skills = e.AdjustSkills(ctx, customized.Skills, job)
	customized.Projects = e.OptimizeProjects(ctx, customized.Projects, job)

	slog.Info("resume customization completed")
	return customized
}

// EnhanceSummary rewrites the summary for the job. The second return
// value reports whether a usable replacement was produced.
func (e *Engine) EnhanceSummary(ctx context.Context, summary string, job *types.JobProfile) (string, bool) {
	if strings.TrimSpace(summary) == "" {
		return "", false
	}

	resp := e.callSection(ctx, promptctx.PromptSummary, summary, job)
	if !resp.Success {
		slog.Warn("failed to enhance summary", "error", resp.ErrorMessage)
		return "", false
	}
	return resp.Content, true
}

// OptimizeExperience rewrites each experience's highlights, one call per
// entry. The unedited highlight list is preferred as source material when
// present; a failed call or unparseable response keeps that entry's
// original highlights.
func (e *Engine) OptimizeExperience(ctx context.Context, experiences []types.Experience, job *types.JobProfile) []types.Experience {
	if len(experiences) == 0 {
		return experiences
	}

	optimized := make([]types.Experience, 0, len(experiences))
	for _, exp := range experiences {
		entry := exp.Clone()

		source := exp.Unedited
		if len(source) == 0 {
			source = exp.Highlights
		}
		if len(source) == 0 {
			optimized = append(optimized, entry)
			continue
		}

		lines := make([]string, len(source))
		for i, highlight := range source {
			lines[i] = "- " + highlight
		}

		resp := e.callSection(ctx, promptctx.PromptExperience, strings.Join(lines, "\n"), job)
		if resp.Success {
			if highlights := ParseHighlights(resp.Content); len(highlights) > 0 {
				entry.Highlights = highlights
				slog.Info("successfully optimized experience highlights", "company", exp.Company)
			} else {
				slog.Warn("AI returned empty highlights, keeping original", "company", exp.Company)
			}
		} else {
			slog.Warn("failed to optimize experience", "company", exp.Company, "error", resp.ErrorMessage)
		}

		optimized = append(optimized, entry)
	}
	return optimized
}

// AdjustSkills reorganizes skill categories for the job in one call over
// the whole skill set. An unparseable response keeps the original.
func (e *Engine) AdjustSkills(ctx context.Context, skills []types.SkillCategory, job *types.JobProfile) []types.SkillCategory {
	if len(skills) == 0 {
		return skills
	}

	resp := e.callSection(ctx, promptctx.PromptSkills, FormatSkills(skills), job)
	if !resp.Success {
		slog.Warn("failed to adjust skills", "error", resp.ErrorMessage)
		return skills
	}

	adjusted := ParseSkills(resp.Content)
	if len(adjusted) == 0 {
		slog.Warn("failed to parse AI skills response, keeping original")
		return skills
	}
	slog.Info("successfully adjusted skills organization")
	return adjusted
}

// OptimizeProjects rewrites project descriptions in one call over all
// projects. Only descriptions change; names, technologies, and URLs are
// never touched.
func (e *Engine) OptimizeProjects(ctx context.Context, projects []types.Project, job *types.JobProfile) []types.Project {
	if len(projects) == 0 {
		return projects
	}

	resp := e.callSection(ctx, promptctx.PromptProjects, FormatProjects(projects), job)
	if !resp.Success {
		slog.Warn("failed to optimize projects", "error", resp.ErrorMessage)
		return projects
	}

	optimized := ParseProjects(resp.Content, projects)
	slog.Info("successfully optimized project descriptions")
	return optimized
}

// callSection issues the single AI round trip for one section.
func (e *Engine) callSection(ctx context.Context, section, content string, job *types.JobProfile) llm.Response {
	slog.Debug("requesting AI customization", "section", section)
	return e.client.CustomizeContent(ctx,
		e.promptText(section),
		e.buildContext(section, content, job),
		e.modelParams(section),
	)
}

// promptConfig returns the externally configured prompt for a section, or
// nil when none applies.
func (e *Engine) promptConfig(section string) *prompts.PromptConfig {
	if e.config == nil {
		return nil
	}
	prompt, exists := e.config.Prompts[section]
	if !exists {
		return nil
	}
	return &prompt
}

func (e *Engine) promptText(section string) string {
	if config := e.promptConfig(section); config != nil {
		return config.SystemPrompt
	}
	if prompt, exists := e.defaults.Prompts[section]; exists {
		return prompt.SystemPrompt
	}
	return ""
}

// buildContext assembles the outbound user-context block. With an active
// configured prompt, its context template is formatted against the
// context builder's variables; any formatting failure falls back to the
// minimal two-field format.
func (e *Engine) buildContext(section, content string, job *types.JobProfile) string {
	fallback := func() string {
		return fmt.Sprintf("Job Context: %s\n\nOriginal Content: %s", e.builder.JobContext(job), content)
	}

	config := e.promptConfig(section)
	if config == nil {
		return fallback()
	}

	vars := e.builder.BuildContextVariables(section, content, job, nil)
	formatted, err := prompts.FormatTemplate(config.ContextTemplate, vars)
	if err != nil {
		slog.Warn("context template formatting failed, using fallback", "section", section, "error", err)
		return fallback()
	}
	return formatted
}

func (e *Engine) modelParams(section string) llm.ModelParams {
	if config := e.promptConfig(section); config != nil && config.ModelParams != nil {
		return llm.ModelParams(config.ModelParams)
	}
	if prompt, exists := e.defaults.Prompts[section]; exists && prompt.ModelParams != nil {
		return llm.ModelParams(prompt.ModelParams)
	}
	return llm.ModelParams(e.defaults.DefaultParams)
}
