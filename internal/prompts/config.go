// Package prompts loads, validates, and formats the externalized prompt
// configuration that drives AI resume customization. A configuration file
// declares one prompt per resume section plus shared default model
// parameters; built-in defaults cover the case where no file is usable.
package prompts

import (
	"fmt"
	"regexp"
	"strings"
)

// PromptConfig is the prompt definition for one resume section.
type PromptConfig struct {
	SystemPrompt    string         `yaml:"system_prompt"`
	ContextTemplate string         `yaml:"context_template"`
	ModelParams     map[string]any `yaml:"model_params"`
}

// Config mirrors the prompt configuration file layout.
type Config struct {
	RequiredSections     []string                `yaml:"required_sections"`
	RequiredPromptFields []string                `yaml:"required_prompt_fields"`
	RequiredModelParams  []string                `yaml:"required_model_params"`
	Prompts              map[string]PromptConfig `yaml:"prompts"`
	DefaultParams        map[string]any          `yaml:"default_params"`
}

// ConfigError describes a prompt configuration failure.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// FormatTemplate substitutes {name} placeholders in a context template.
// An unresolved placeholder is an error so callers can fall back to a
// minimal context format.
func FormatTemplate(template string, vars map[string]string) (string, error) {
	var missing []string
	result := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		value, exists := vars[name]
		if !exists {
			missing = append(missing, name)
			return token
		}
		return value
	})
	if len(missing) > 0 {
		return "", &ConfigError{
			Message: fmt.Sprintf("missing context variables: %s", strings.Join(missing, ", ")),
		}
	}
	return result, nil
}

// TemplateVariables returns the distinct placeholder names referenced by a
// context template, in order of first appearance.
func TemplateVariables(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			names = append(names, m[1])
			seen[m[1]] = true
		}
	}
	return names
}
