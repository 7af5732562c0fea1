package prompts

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and validates a prompt configuration file. A Loader is
// inert until Load is called; callers treat a load failure as a signal to
// fall back to DefaultConfig.
type Loader struct {
	path   string
	config *Config
}

// NewLoader creates a loader for the given configuration path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, parses, and validates the configuration file. On any
// failure the loader stays unloaded and the error describes the problem.
func (l *Loader) Load() error {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return &ConfigError{
			Message: fmt.Sprintf("prompt configuration file not found: %s", l.path),
			Cause:   err,
		}
	}

	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return &ConfigError{Message: "failed to parse prompt configuration", Cause: err}
	}
	if config.Prompts == nil {
		return &ConfigError{Message: "prompt configuration file is empty or invalid"}
	}

	validator := NewValidator(&config)
	if !validator.Validate() {
		return &ConfigError{
			Message: fmt.Sprintf("prompt configuration validation failed: %d errors", len(validator.Errors())),
		}
	}

	l.config = &config
	slog.Info("loaded prompt configuration", "path", l.path, "prompts", len(config.Prompts))
	return nil
}

// IsLoaded reports whether a configuration has been loaded successfully.
func (l *Loader) IsLoaded() bool {
	return l.config != nil
}

// Prompt returns the configuration for one prompt section, or nil when
// unloaded or unknown.
func (l *Loader) Prompt(section string) *PromptConfig {
	if l.config == nil {
		return nil
	}
	prompt, exists := l.config.Prompts[section]
	if !exists {
		return nil
	}
	return &prompt
}

// AvailablePrompts returns the loaded prompt section names.
func (l *Loader) AvailablePrompts() []string {
	if l.config == nil {
		return nil
	}
	names := make([]string, 0, len(l.config.Prompts))
	for name := range l.config.Prompts {
		names = append(names, name)
	}
	return names
}

// DefaultParams returns a copy of the configured fallback model
// parameters.
func (l *Loader) DefaultParams() map[string]any {
	if l.config == nil || l.config.DefaultParams == nil {
		return map[string]any{}
	}
	params := make(map[string]any, len(l.config.DefaultParams))
	for key, value := range l.config.DefaultParams {
		params[key] = value
	}
	return params
}

// Reload discards any loaded configuration and loads again from disk.
func (l *Loader) Reload() error {
	l.config = nil
	return l.Load()
}
