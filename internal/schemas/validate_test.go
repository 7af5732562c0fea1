package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validResumeYAML = `
basic:
  name: Jane Doe
  address:
    - 123 Main St
  contact:
    email: jane@example.com
    phone: 555-0100
summary: Backend engineer.
experiences:
  - company: Acme
    titles:
      - name: Engineer
        startdate: "2020"
        enddate: Present
    highlights:
      - Built services
skills:
  - category: Programming Languages
    skills:
      - Go
`

func decodeYAML(t *testing.T, content string) any {
	t.Helper()
	var doc any
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc))
	return doc
}

func TestValidateResumeDocument_Valid(t *testing.T) {
	err := ValidateResumeDocument(decodeYAML(t, validResumeYAML))
	assert.NoError(t, err)
}

func TestValidateResumeDocument_MissingBasic(t *testing.T) {
	err := ValidateResumeDocument(decodeYAML(t, "summary: hi\n"))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "basic")
}

func TestValidateResumeDocument_MissingContactEmail(t *testing.T) {
	doc := decodeYAML(t, "basic:\n  name: Jane\n  contact:\n    phone: 555-0100\n")
	err := ValidateResumeDocument(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "email")
}

func TestValidateResumeDocument_ExperienceWithoutTitles(t *testing.T) {
	doc := decodeYAML(t, validResumeYAML)
	m := doc.(map[string]any)
	m["experiences"] = []any{map[string]any{"company": "Acme", "titles": []any{}}}

	err := ValidateResumeDocument(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "titles")
}

func TestValidateResumeDocument_WrongType(t *testing.T) {
	doc := decodeYAML(t, "basic:\n  name: 42\n  contact:\n    email: jane@example.com\n")
	err := ValidateResumeDocument(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["id"], "properties": {"id": {"type": "integer"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"id": 1}`))

	err := ValidateJSONString(schema, `{}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "basic.name", Message: "is required"},
		{Field: "(root)", Message: "invalid"},
	}}
	msg := ve.Error()
	assert.Contains(t, msg, "1. basic.name: is required")
	assert.Contains(t, msg, "2. (root): invalid")
}

func TestResumeSchemaEmbedded(t *testing.T) {
	assert.Contains(t, ResumeSchema(), "\"title\": \"Resume\"")
}
