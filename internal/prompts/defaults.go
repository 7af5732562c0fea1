package prompts

// DefaultModel is the generation model used when no configuration
// supplies one.
const DefaultModel = "gpt-4o-mini"

// DefaultConfig returns the built-in prompt set used when no external
// configuration file can be loaded. The customization engine receives
// this value explicitly at construction; nothing reads it as ambient
// state.
func DefaultConfig() *Config {
	params := func() map[string]any {
		return map[string]any{
			"model":       DefaultModel,
			"max_tokens":  1000,
			"temperature": 0.7,
		}
	}

	return &Config{
		RequiredSections:     []string{"summary", "experience", "skills", "projects"},
		RequiredPromptFields: []string{"system_prompt", "context_template", "model_params"},
		RequiredModelParams:  []string{"model", "max_tokens", "temperature"},
		Prompts: map[string]PromptConfig{
			"summary": {
				SystemPrompt: "You are a professional resume writer. Customize the given resume summary to better align with the job requirements. " +
					"Keep the same tone and style but emphasize relevant skills and experiences that match the job profile. " +
					"Return only the customized summary text, no additional formatting or explanations.",
				ContextTemplate: "Job Context: {job_context}\n\nOriginal Content: {content}",
				ModelParams:     params(),
			},
			"experience": {
				SystemPrompt: "You are a professional resume writer. Customize the given work experience highlights to better align with the job requirements. " +
					"Emphasize achievements and responsibilities that are most relevant to the target job. Keep the same factual content but adjust the emphasis and wording. " +
					"Return the customized highlights as a bullet-point list, one highlight per line starting with '- '.",
				ContextTemplate: "Job Context: {job_context}\n\nOriginal Content: {content}",
				ModelParams:     params(),
			},
			"skills": {
				SystemPrompt: "You are a professional resume writer. Given a list of skills and a job profile, reorder and emphasize the skills that are most relevant to the job. " +
					"You may also suggest grouping skills differently if it better matches the job requirements. Keep all original skills but prioritize the most relevant ones. " +
					"Return the skills in the same format as provided, maintaining the category structure.",
				ContextTemplate: "Job Context: {job_context}\n\nOriginal Content: {content}",
				ModelParams:     params(),
			},
			"projects": {
				SystemPrompt: "You are a professional resume writer. Customize the given project descriptions to better align with the job requirements. " +
					"Emphasize technologies and achievements that are most relevant to the target job. Keep project names and structure unchanged but optimize descriptions. " +
					"Return the projects in the same format as provided, maintaining all original fields but with enhanced descriptions.",
				ContextTemplate: "Job Context: {job_context}\n\nOriginal Content: {content}",
				ModelParams:     params(),
			},
		},
		DefaultParams: params(),
	}
}
