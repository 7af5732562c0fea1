package llm

// Defaults applied when model parameters omit a value.
const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Config holds transport-level client settings. Model parameters travel
// per call; this covers what stays fixed for a client's lifetime.
type Config struct {
	Provider   Provider
	BaseURL    string
	Timeout    int // default per-call timeout in seconds
	MaxRetries int
}

// DefaultConfig returns the default OpenAI-compatible configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:   ProviderOpenAI,
		BaseURL:    "https://api.openai.com/v1",
		Timeout:    30,
		MaxRetries: 3,
	}
}

// ModelParams carries per-call generation parameters as loaded from the
// prompt configuration. Accessors apply the built-in defaults for absent
// keys and tolerate the numeric type variety YAML decoding produces.
type ModelParams map[string]any

// Model returns the generation model identifier.
func (p ModelParams) Model() string {
	if model, ok := p["model"].(string); ok && model != "" {
		return model
	}
	return defaultModel
}

// MaxTokens returns the generation length bound.
func (p ModelParams) MaxTokens() int {
	if n, ok := asInt(p["max_tokens"]); ok {
		return n
	}
	return defaultMaxTokens
}

// Temperature returns the sampling temperature.
func (p ModelParams) Temperature() float64 {
	switch n := p["temperature"].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return defaultTemperature
}

// TimeoutSeconds returns the per-call timeout override, or fallback when
// the parameters carry none.
func (p ModelParams) TimeoutSeconds(fallback int) int {
	if n, ok := asInt(p["timeout"]); ok && n > 0 {
		return n
	}
	return fallback
}

func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
