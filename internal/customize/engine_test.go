package customize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valyrian24052/resume-genie/internal/llm"
	"github.com/valyrian24052/resume-genie/internal/prompts"
	"github.com/valyrian24052/resume-genie/internal/types"
)

type capturedCall struct {
	systemPrompt string
	contextText  string
	params       llm.ModelParams
}

// fakeClient is a scriptable llm.Client for engine tests.
type fakeClient struct {
	available bool
	respond   func(call capturedCall) llm.Response
	calls     []capturedCall
}

func (f *fakeClient) CustomizeContent(_ context.Context, systemPrompt, contextText string, params llm.ModelParams) llm.Response {
	call := capturedCall{systemPrompt: systemPrompt, contextText: contextText, params: params}
	f.calls = append(f.calls, call)
	if f.respond == nil {
		return llm.Response{ErrorMessage: "no response scripted"}
	}
	return f.respond(call)
}

func (f *fakeClient) IsAvailable(context.Context) bool { return f.available }

func (f *fakeClient) Close() error { return nil }

func alwaysRespond(content string) func(capturedCall) llm.Response {
	return func(capturedCall) llm.Response {
		return llm.Response{Success: true, Content: content}
	}
}

func alwaysFail(message string) func(capturedCall) llm.Response {
	return func(capturedCall) llm.Response {
		return llm.Response{ErrorMessage: message}
	}
}

func acmeResume() *types.ResumeData {
	return &types.ResumeData{
		Basic: types.BasicInfo{Name: "Jane Doe"},
		Experiences: []types.Experience{
			{
				Company:    "Acme",
				Titles:     []types.JobTitle{{Name: "Engineer", StartDate: "2020", EndDate: "2023"}},
				Highlights: []string{"Did X"},
			},
		},
	}
}

func testJob() *types.JobProfile {
	return &types.JobProfile{Title: "Backend Engineer", Company: "Initech", Description: "Build services"}
}

func TestCustomizeForJob_FailingTransportKeepsOriginalContent(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysFail("boom")}
	engine := NewEngine(client, nil, nil)

	resume := acmeResume()
	result := engine.CustomizeForJob(context.Background(), resume, testJob())

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, []string{"Did X"}, result.Experiences[0].Highlights)
	assert.Equal(t, resume.Experiences, result.Experiences)
}

func TestCustomizeForJob_SuccessfulTransportRewritesHighlights(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("- Did X better")}
	engine := NewEngine(client, nil, nil)

	result := engine.CustomizeForJob(context.Background(), acmeResume(), testJob())

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, []string{"Did X better"}, result.Experiences[0].Highlights)
}

func TestCustomizeForJob_UnavailableEndpointSkipsAllCalls(t *testing.T) {
	client := &fakeClient{available: false}
	engine := NewEngine(client, nil, nil)

	resume := acmeResume()
	resume.Summary = "original summary"
	result := engine.CustomizeForJob(context.Background(), resume, testJob())

	assert.Equal(t, resume, result)
	assert.Empty(t, client.calls)
}

func TestCustomizeForJob_OriginalResumeNeverMutated(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("- Rewritten")}
	engine := NewEngine(client, nil, nil)

	resume := acmeResume()
	resume.Summary = "original summary"
	engine.CustomizeForJob(context.Background(), resume, testJob())

	assert.Equal(t, "original summary", resume.Summary)
	assert.Equal(t, []string{"Did X"}, resume.Experiences[0].Highlights)
}

func TestCustomizeForJob_SectionOrder(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysFail("down")}
	engine := NewEngine(client, nil, nil)

	resume := acmeResume()
	resume.Summary = "text"
	resume.Skills = []types.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}}
	resume.Projects = []types.Project{{Name: "ChatApp", Description: "chat"}}

	engine.CustomizeForJob(context.Background(), resume, testJob())

	require.Len(t, client.calls, 4)
	assert.Contains(t, client.calls[0].systemPrompt, "resume summary")
	assert.Contains(t, client.calls[1].systemPrompt, "work experience highlights")
	assert.Contains(t, client.calls[2].systemPrompt, "list of skills")
	assert.Contains(t, client.calls[3].systemPrompt, "project descriptions")
}

func TestCustomizeForJob_EmptySummaryNotSent(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysFail("down")}
	engine := NewEngine(client, nil, nil)

	engine.CustomizeForJob(context.Background(), acmeResume(), testJob())

	for _, call := range client.calls {
		assert.NotContains(t, call.systemPrompt, "resume summary")
	}
}

func TestEnhanceSummary_Success(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("sharper summary")}
	engine := NewEngine(client, nil, nil)

	summary, ok := engine.EnhanceSummary(context.Background(), "old summary", testJob())
	assert.True(t, ok)
	assert.Equal(t, "sharper summary", summary)
}

func TestEnhanceSummary_BlankInput(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("anything")}
	engine := NewEngine(client, nil, nil)

	_, ok := engine.EnhanceSummary(context.Background(), "   ", testJob())
	assert.False(t, ok)
	assert.Empty(t, client.calls)
}

func TestOptimizeExperience_PrefersUneditedHighlights(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("- Out")}
	engine := NewEngine(client, nil, nil)

	experiences := []types.Experience{
		{
			Company:    "Acme",
			Titles:     []types.JobTitle{{Name: "Engineer"}},
			Highlights: []string{"edited version"},
			Unedited:   []string{"pristine version"},
		},
	}
	engine.OptimizeExperience(context.Background(), experiences, testJob())

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].contextText, "- pristine version")
	assert.NotContains(t, client.calls[0].contextText, "edited version")
}

func TestOptimizeExperience_EmptyResponseKeepsOriginal(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("\n\n")}
	engine := NewEngine(client, nil, nil)

	result := engine.OptimizeExperience(context.Background(), acmeResume().Experiences, testJob())
	assert.Equal(t, []string{"Did X"}, result[0].Highlights)
}

func TestOptimizeExperience_NoSourceHighlightsSkipsCall(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("- Out")}
	engine := NewEngine(client, nil, nil)

	experiences := []types.Experience{{Company: "Acme", Titles: []types.JobTitle{{Name: "Engineer"}}}}
	result := engine.OptimizeExperience(context.Background(), experiences, testJob())

	assert.Empty(t, client.calls)
	assert.Empty(t, result[0].Highlights)
}

func TestAdjustSkills_ParseFailureKeepsOriginal(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("no categories here")}
	engine := NewEngine(client, nil, nil)

	skills := []types.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}}
	result := engine.AdjustSkills(context.Background(), skills, testJob())
	assert.Equal(t, skills, result)
}

func TestAdjustSkills_Reorganizes(t *testing.T) {
	response := "Backend:\n- Go\n- PostgreSQL\n\nTools:\n- Docker\n"
	client := &fakeClient{available: true, respond: alwaysRespond(response)}
	engine := NewEngine(client, nil, nil)

	skills := []types.SkillCategory{{Category: "Languages", Skills: []string{"Go", "PostgreSQL", "Docker"}}}
	result := engine.AdjustSkills(context.Background(), skills, testJob())

	require.Len(t, result, 2)
	assert.Equal(t, "Backend", result[0].Category)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, result[0].Skills)
	assert.Equal(t, "Tools", result[1].Category)
}

func TestOptimizeProjects_RewritesDescriptionsOnly(t *testing.T) {
	response := "Project 1:\nDescription: A better description\n"
	client := &fakeClient{available: true, respond: alwaysRespond(response)}
	engine := NewEngine(client, nil, nil)

	projects := []types.Project{
		{Name: "ChatApp", Description: "old", Technologies: []string{"Go"}},
	}
	result := engine.OptimizeProjects(context.Background(), projects, testJob())

	require.Len(t, result, 1)
	assert.Equal(t, "A better description", result[0].Description)
	assert.Equal(t, "ChatApp", result[0].Name)
	assert.Equal(t, []string{"Go"}, result[0].Technologies)
	assert.Equal(t, "old", projects[0].Description)
}

func TestBuildContext_FallbackFormat(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("out")}
	engine := NewEngine(client, nil, nil)

	engine.EnhanceSummary(context.Background(), "my summary", testJob())

	require.Len(t, client.calls, 1)
	ctx := client.calls[0].contextText
	assert.Contains(t, ctx, "Job Context: ")
	assert.Contains(t, ctx, "Job Title: Backend Engineer")
	assert.Contains(t, ctx, "Original Content: my summary")
}

func TestBuildContext_ConfiguredTemplate(t *testing.T) {
	config := &prompts.Config{
		Prompts: map[string]prompts.PromptConfig{
			"summary": {
				SystemPrompt:    "custom system prompt",
				ContextTemplate: "JOB={job_context} CONTENT={content} EXP={experiences_summary}",
				ModelParams:     map[string]any{"model": "custom-model", "max_tokens": 123, "temperature": 0.1},
			},
		},
	}
	client := &fakeClient{available: true, respond: alwaysRespond("out")}
	engine := NewEngine(client, config, nil)
	engine.CustomizeForJob(context.Background(), &types.ResumeData{
		Basic:   types.BasicInfo{Name: "Jane"},
		Summary: "my summary",
	}, testJob())

	// IsAvailable passed; one summary call with the configured prompt.
	summaryCall := client.calls[0]
	assert.Equal(t, "custom system prompt", summaryCall.systemPrompt)
	assert.Contains(t, summaryCall.contextText, "CONTENT=my summary")
	assert.Contains(t, summaryCall.contextText, "EXP=No professional experience listed")
	assert.Equal(t, "custom-model", summaryCall.params.Model())
	assert.Equal(t, 123, summaryCall.params.MaxTokens())
}

func TestBuildContext_TemplateWithUnknownVariableFallsBack(t *testing.T) {
	config := &prompts.Config{
		Prompts: map[string]prompts.PromptConfig{
			"summary": {
				SystemPrompt:    "custom",
				ContextTemplate: "{job_context} {content} {not_a_variable}",
				ModelParams:     map[string]any{"model": "m", "max_tokens": 100, "temperature": 0.5},
			},
		},
	}
	client := &fakeClient{available: true, respond: alwaysRespond("out")}
	engine := NewEngine(client, config, nil)

	engine.EnhanceSummary(context.Background(), "my summary", testJob())

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].contextText, "Original Content: my summary")
}

func TestModelParams_DefaultsWhenNoConfig(t *testing.T) {
	client := &fakeClient{available: true, respond: alwaysRespond("out")}
	engine := NewEngine(client, nil, nil)

	engine.EnhanceSummary(context.Background(), "text", testJob())

	require.Len(t, client.calls, 1)
	assert.Equal(t, "gpt-4o-mini", client.calls[0].params.Model())
	assert.Equal(t, 1000, client.calls[0].params.MaxTokens())
}
