package ingestion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobYAML = `title: Backend Engineer
company: Acme
description: Build payment services in Go.
requirements:
  - Go
  - PostgreSQL
preferred_skills:
  - Kubernetes
industry: Fintech
experience_level: senior
`

func TestLoadJobProfile(t *testing.T) {
	job, err := LoadJobProfile(writeFile(t, "job.yaml", jobYAML))
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.Requirements)
	assert.Equal(t, []string{"Kubernetes"}, job.PreferredSkills)
	assert.Equal(t, "senior", job.ExperienceLevel)
}

func TestLoadJobProfile_MissingFields(t *testing.T) {
	_, err := LoadJobProfile(writeFile(t, "job.yaml", "title: Engineer\n"))
	var invalidErr *InvalidJobError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Problems, "Company name is required")
	assert.Contains(t, invalidErr.Problems, "Job description is required")
}

func TestLoadJobProfile_MissingFile(t *testing.T) {
	_, err := LoadJobProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadPostingText(t *testing.T) {
	text, err := LoadPostingText(writeFile(t, "posting.txt", "  We are hiring.\n"))
	require.NoError(t, err)
	assert.Equal(t, "We are hiring.", text)
}

func TestLoadPostingText_Empty(t *testing.T) {
	_, err := LoadPostingText(writeFile(t, "posting.txt", "   \n "))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "posting file is empty")
}
