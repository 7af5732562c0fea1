package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini. Model parameters from
// the prompt configuration map onto the Gemini generation settings; the
// OpenAI-style model identifier is replaced by the configured Gemini model
// when the parameter names an unknown model.
type GeminiClient struct {
	client *genai.Client
	config *Config
	model  string
}

// DefaultGeminiModel is used when model parameters do not name a Gemini
// model explicitly.
const DefaultGeminiModel = "gemini-2.5-flash"

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		model:  DefaultGeminiModel,
	}, nil
}

// CustomizeContent issues one generation call. The genai SDK carries its
// own transport retry; failures collapse into a Response like every other
// provider.
func (c *GeminiClient) CustomizeContent(ctx context.Context, systemPrompt, contextText string, params ModelParams) Response {
	timeout := params.TimeoutSeconds(c.config.Timeout)
	callCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	model := c.client.GenerativeModel(c.modelName(params))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.SetTemperature(float32(params.Temperature()))
	model.SetMaxOutputTokens(int32(params.MaxTokens()))

	resp, err := model.GenerateContent(callCtx, genai.Text(contextText))
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return Response{ErrorMessage: fmt.Sprintf("Request timeout after %d seconds", timeout)}
		}
		return Response{ErrorMessage: fmt.Sprintf("Request failed: %v", err)}
	}

	text, err := extractText(resp)
	if err != nil {
		return Response{ErrorMessage: "Invalid response format from AI endpoint"}
	}
	return Response{Success: true, Content: strings.TrimSpace(text)}
}

// modelName resolves which Gemini model to call. OpenAI-flavored model
// identifiers in shared prompt configurations are mapped to the default
// Gemini model instead of being sent verbatim.
func (c *GeminiClient) modelName(params ModelParams) string {
	name := params.Model()
	if strings.HasPrefix(name, "gemini") {
		return name
	}
	return c.model
}

// IsAvailable issues a minimal single-token generation with a short
// timeout and reports reachability only.
func (c *GeminiClient) IsAvailable(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetMaxOutputTokens(1)

	_, err := model.GenerateContent(probeCtx, genai.Text("test"))
	return err == nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractText flattens the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts in response")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}
