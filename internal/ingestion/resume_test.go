package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valyrian24052/resume-genie/internal/schemas"
	"github.com/valyrian24052/resume-genie/internal/types"
)

const resumeYAML = `basic:
  name: Jane Doe
  address:
    - 123 Main St
    - Springfield
  contact:
    email: jane@example.com
    phone: 555-0100
  websites:
    - text: github.com/janedoe
      url: https://github.com/janedoe
summary: Backend engineer with a strong Go background.
experiences:
  - company: Acme
    titles:
      - name: Software Engineer
        startdate: Jan 2020
        enddate: Present
    highlights:
      - Built a payments pipeline
    unedited:
      - Built a payments pipeline handling 2M transactions per day
education:
  - school: State University
    degrees:
      - names:
          - B.S. Computer Science
        startdate: "2015"
        enddate: "2019"
        gpa: 3.9
projects:
  - name: resume-genie
    description: Resume customization tool
    technologies:
      - Go
skills:
  - category: Programming Languages
    skills:
      - Go
      - Python
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResume(t *testing.T) {
	resume, err := LoadResume(writeFile(t, "resume.yaml", resumeYAML))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.Basic.Name)
	assert.Equal(t, "jane@example.com", resume.Basic.Contact.Email)
	require.Len(t, resume.Experiences, 1)
	assert.Equal(t, "Acme", resume.Experiences[0].Company)
	assert.Equal(t, []string{"Built a payments pipeline handling 2M transactions per day"}, resume.Experiences[0].Unedited)
	require.Len(t, resume.Education, 1)
	require.NotNil(t, resume.Education[0].Degrees[0].GPA)
	assert.InDelta(t, 3.9, *resume.Education[0].Degrees[0].GPA, 0.001)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "could not read file")
}

func TestLoadResume_InvalidYAML(t *testing.T) {
	_, err := LoadResume(writeFile(t, "bad.yaml", "basic: [unclosed"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "invalid YAML")
}

func TestLoadResume_SchemaViolation(t *testing.T) {
	_, err := LoadResume(writeFile(t, "bad.yaml", "summary: no basic section\n"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadResume_StructuralViolation(t *testing.T) {
	// Passes the schema but misses the phone invariant.
	content := "basic:\n  name: Jane\n  address:\n    - somewhere\n  contact:\n    email: jane@example.com\n"
	_, err := LoadResume(writeFile(t, "resume.yaml", content))

	var invalidErr *InvalidResumeError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Problems, "Phone is required")
}

func TestSaveResume_RoundTrip(t *testing.T) {
	original, err := LoadResume(writeFile(t, "resume.yaml", resumeYAML))
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveResume(outPath, original))

	reloaded, err := LoadResume(outPath)
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}

func TestSaveResume_OmitsEmptyOptionalFields(t *testing.T) {
	resume := &types.ResumeData{
		Basic: types.BasicInfo{
			Name:    "Jane",
			Address: []string{"somewhere"},
			Contact: types.ContactInfo{Email: "jane@example.com", Phone: "555-0100"},
		},
	}

	outPath := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveResume(outPath, resume))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "experiences")
	assert.NotContains(t, string(raw), "unedited")
}
