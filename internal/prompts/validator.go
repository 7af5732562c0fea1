package prompts

import (
	"fmt"
	"log/slog"
	"strings"
)

// templateVariableAllowList names the legal context-template variables per
// prompt section. A template referencing anything outside its section's
// set fails validation.
var templateVariableAllowList = map[string]map[string]bool{
	"summary": {
		"job_context": true, "content": true, "experiences_summary": true,
		"projects_summary": true, "skills_summary": true,
		"education_summary": true, "research_summary": true,
	},
	"experience": {
		"job_context": true, "content": true, "full_context": true,
		"target_skills": true,
	},
	"skills": {
		"job_context": true, "content": true, "target_skills": true,
		"user_experience_level": true, "relevant_projects": true,
	},
	"projects": {
		"job_context": true, "content": true, "target_skills": true,
		"technical_background": true,
	},
}

type paramKind int

const (
	paramString paramKind = iota
	paramInt
	paramNumber
)

func (k paramKind) String() string {
	switch k {
	case paramString:
		return "string"
	case paramInt:
		return "integer"
	default:
		return "number"
	}
}

type paramSpec struct {
	kind     paramKind
	required bool
	hasRange bool
	min, max float64
}

// modelParamSpecs enumerates the recognized model parameters with their
// type and range constraints. Anything outside this table is a warning.
var modelParamSpecs = map[string]paramSpec{
	"model":             {kind: paramString, required: true},
	"max_tokens":        {kind: paramInt, required: true, hasRange: true, min: 1, max: 4000},
	"temperature":       {kind: paramNumber, required: true, hasRange: true, min: 0.0, max: 2.0},
	"timeout":           {kind: paramInt, hasRange: true, min: 1, max: 300},
	"top_p":             {kind: paramNumber, hasRange: true, min: 0.0, max: 1.0},
	"frequency_penalty": {kind: paramNumber, hasRange: true, min: -2.0, max: 2.0},
	"presence_penalty":  {kind: paramNumber, hasRange: true, min: -2.0, max: 2.0},
}

// Validator checks a prompt configuration against the section and
// parameter rules. Errors fail the load; warnings are logged only.
type Validator struct {
	config   *Config
	errors   []string
	warnings []string
}

// NewValidator creates a validator for the given configuration.
func NewValidator(config *Config) *Validator {
	return &Validator{config: config}
}

// Validate runs every check and reports whether the configuration is
// acceptable. Errors and warnings accumulate and are retrievable after
// the call; warnings alone do not fail validation.
func (v *Validator) Validate() bool {
	v.errors = nil
	v.warnings = nil

	v.checkRequiredSections()
	v.checkPromptStructure()
	v.checkTemplateVariables()
	v.checkDefaultParams()

	for _, err := range v.errors {
		slog.Error("prompt validation error", "detail", err)
	}
	for _, warning := range v.warnings {
		slog.Warn("prompt validation warning", "detail", warning)
	}
	return len(v.errors) == 0
}

// Errors returns the validation errors found by the last Validate call.
func (v *Validator) Errors() []string {
	return v.errors
}

// Warnings returns the validation warnings found by the last Validate call.
func (v *Validator) Warnings() []string {
	return v.warnings
}

func (v *Validator) checkRequiredSections() {
	for _, section := range v.config.RequiredSections {
		if _, exists := v.config.Prompts[section]; !exists {
			v.errors = append(v.errors, fmt.Sprintf("Required prompt section '%s' is missing", section))
		}
	}
}

func (v *Validator) checkPromptStructure() {
	for name, prompt := range v.config.Prompts {
		for _, field := range v.config.RequiredPromptFields {
			switch field {
			case "system_prompt":
				if strings.TrimSpace(prompt.SystemPrompt) == "" {
					v.errors = append(v.errors, fmt.Sprintf("Prompt '%s' has empty system_prompt", name))
				}
			case "context_template":
				if strings.TrimSpace(prompt.ContextTemplate) == "" {
					v.errors = append(v.errors, fmt.Sprintf("Prompt '%s' has empty context_template", name))
				}
			case "model_params":
				if prompt.ModelParams == nil {
					v.errors = append(v.errors, fmt.Sprintf("Prompt '%s' missing required field 'model_params'", name))
				}
			}
		}

		for _, param := range v.config.RequiredModelParams {
			if _, exists := prompt.ModelParams[param]; !exists {
				v.errors = append(v.errors, fmt.Sprintf("Prompt '%s' missing required model parameter '%s'", name, param))
			}
		}

		v.checkModelParams(name, prompt.ModelParams)
	}
}

func (v *Validator) checkTemplateVariables() {
	for name, prompt := range v.config.Prompts {
		if prompt.ContextTemplate == "" {
			continue
		}

		used := TemplateVariables(prompt.ContextTemplate)
		// Sections without an allow-list entry get the empty set, so every
		// variable they use is invalid.
		allowed := templateVariableAllowList[name]

		var invalid []string
		usedSet := make(map[string]bool, len(used))
		for _, variable := range used {
			usedSet[variable] = true
			if !allowed[variable] {
				invalid = append(invalid, variable)
			}
		}
		if len(invalid) > 0 {
			v.errors = append(v.errors, fmt.Sprintf(
				"Prompt '%s' context_template contains invalid variables: %s",
				name, strings.Join(invalid, ", ")))
		}

		if !usedSet["job_context"] {
			v.warnings = append(v.warnings, fmt.Sprintf("Prompt '%s' context_template missing 'job_context' variable", name))
		}
		if !usedSet["content"] {
			v.warnings = append(v.warnings, fmt.Sprintf("Prompt '%s' context_template missing 'content' variable", name))
		}
	}
}

// checkModelParams validates one parameter set against modelParamSpecs.
// Unknown parameter names warn; type and range violations error; missing
// required parameters error.
func (v *Validator) checkModelParams(name string, params map[string]any) {
	for paramName, value := range params {
		spec, known := modelParamSpecs[paramName]
		if !known {
			v.warnings = append(v.warnings, fmt.Sprintf("Prompt '%s' has unknown model parameter '%s'", name, paramName))
			continue
		}

		number, typeOK := checkParamType(spec.kind, value)
		if !typeOK {
			v.errors = append(v.errors, fmt.Sprintf(
				"Prompt '%s' parameter '%s' must be of type %s", name, paramName, spec.kind))
			continue
		}

		if spec.hasRange {
			if number < spec.min {
				v.errors = append(v.errors, fmt.Sprintf(
					"Prompt '%s' parameter '%s' (%v) must be >= %v", name, paramName, value, spec.min))
			}
			if number > spec.max {
				v.errors = append(v.errors, fmt.Sprintf(
					"Prompt '%s' parameter '%s' (%v) must be <= %v", name, paramName, value, spec.max))
			}
		}
	}

	for paramName, spec := range modelParamSpecs {
		if spec.required {
			if _, exists := params[paramName]; !exists {
				v.errors = append(v.errors, fmt.Sprintf("Prompt '%s' missing required model parameter '%s'", name, paramName))
			}
		}
	}
}

// checkDefaultParams applies the same parameter rules to the shared
// fallback parameter set.
func (v *Validator) checkDefaultParams() {
	if v.config.DefaultParams == nil {
		return
	}
	v.checkModelParams("default_params", v.config.DefaultParams)
}

// checkParamType verifies a value's type against the spec kind and
// returns its numeric form for range checks (zero for strings).
func checkParamType(kind paramKind, value any) (float64, bool) {
	switch kind {
	case paramString:
		_, ok := value.(string)
		return 0, ok
	case paramInt:
		switch n := value.(type) {
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		default:
			return 0, false
		}
	default:
		return asNumber(value)
	}
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
