// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags after merging.
type Config struct {
	// Inputs
	Resume   string `json:"resume,omitempty"`                           // Path to resume YAML
	Job      string `json:"job,omitempty"`                              // Path to job profile YAML
	JobURL   string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch the job posting from
	Posting  string `json:"posting,omitempty"`                          // Path to raw job posting text
	Template string `json:"template,omitempty"`                         // Path to LaTeX template
	Prompts  string `json:"prompts,omitempty"`                          // Path to prompt configuration YAML

	// Outputs
	Output    string `json:"output,omitempty"`     // Rendered .tex output path
	OutputDir string `json:"output_dir,omitempty"` // Directory for compiled PDFs

	// AI endpoint
	Provider   string `json:"provider,omitempty" validate:"omitempty,oneof=openai gemini"`
	BaseURL    string `json:"base_url,omitempty" validate:"omitempty,url"`
	APIKey     string `json:"api_key,omitempty"`
	Timeout    int    `json:"timeout,omitempty" validate:"omitempty,min=1,max=300"`
	MaxRetries int    `json:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Compile     bool   `json:"compile,omitempty"`     // Compile the rendered LaTeX to PDF
	Verbose     bool   `json:"verbose,omitempty"`     // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints and cross-field rules. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	sources := 0
	for _, s := range []string{c.Job, c.JobURL, c.Posting} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'job', 'job_url', and 'posting' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config error: field '%s' failed '%s' validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	for _, path := range []struct{ name, value string }{
		{"template", c.Template},
		{"resume", c.Resume},
		{"job", c.Job},
		{"posting", c.Posting},
		{"prompts", c.Prompts},
	} {
		if path.value == "" {
			continue
		}
		if _, err := os.Stat(path.value); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", path.name, path.value)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	merge := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	merge(&result.Resume, defaults.Resume)
	merge(&result.Job, defaults.Job)
	merge(&result.JobURL, defaults.JobURL)
	merge(&result.Posting, defaults.Posting)
	merge(&result.Template, defaults.Template)
	merge(&result.Prompts, defaults.Prompts)
	merge(&result.Output, defaults.Output)
	merge(&result.OutputDir, defaults.OutputDir)
	merge(&result.Provider, defaults.Provider)
	merge(&result.BaseURL, defaults.BaseURL)
	merge(&result.APIKey, defaults.APIKey)
	merge(&result.DatabaseURL, defaults.DatabaseURL)

	if result.Timeout == 0 {
		result.Timeout = defaults.Timeout
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Compile {
		result.Compile = defaults.Compile
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
