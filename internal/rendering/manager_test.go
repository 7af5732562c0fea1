package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalTemplate = `\documentclass{article}
\begin{document}
{{{NAME}}}
\end{document}
`

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestNewManager_MissingDirectory(t *testing.T) {
	_, err := NewManager("/nonexistent/template/dir")
	require.Error(t, err)

	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestManager_AvailableTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", minimalTemplate)
	writeTemplate(t, dir, "classic.tex", minimalTemplate)
	writeTemplate(t, dir, "notes.txt", "ignored")

	manager, err := NewManager(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"classic", "modern"}, manager.AvailableTemplates())
}

func TestManager_TemplatePath(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "modern.tex"), manager.TemplatePath("modern"))
	assert.Equal(t, filepath.Join(dir, "modern.tex"), manager.TemplatePath("modern.tex"))
}

func TestManager_TemplateExists(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", minimalTemplate)

	manager, err := NewManager(dir)
	require.NoError(t, err)

	assert.True(t, manager.TemplateExists("modern"))
	assert.False(t, manager.TemplateExists("missing"))
}

func TestManager_LoadTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", minimalTemplate)

	manager, err := NewManager(dir)
	require.NoError(t, err)

	content, err := manager.LoadTemplate("modern")
	require.NoError(t, err)
	assert.Equal(t, minimalTemplate, content)
}

func TestManager_LoadTemplateNotFoundListsAvailable(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", minimalTemplate)

	manager, err := NewManager(dir)
	require.NoError(t, err)

	_, err = manager.LoadTemplate("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modern")
}

func TestManager_RenderResume(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", minimalTemplate)

	manager, err := NewManager(dir)
	require.NoError(t, err)

	rendered, err := manager.RenderResume("modern", contextResume())
	require.NoError(t, err)
	assert.Contains(t, rendered, "Jane Doe")
	assert.NotContains(t, rendered, "{{{")
}

func TestManager_ValidateWithData(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "modern.tex", "\\documentclass{article}\n{{{UNKNOWN_FIELD}}}\n")

	manager, err := NewManager(dir)
	require.NoError(t, err)

	problems, err := manager.ValidateWithData("modern", contextResume())
	require.NoError(t, err)
	assert.Contains(t, problems, "Missing data for template variable: UNKNOWN_FIELD")
}

func TestValidateSyntax_Valid(t *testing.T) {
	assert.True(t, ValidateSyntax(minimalTemplate))
}

func TestValidateSyntax_MissingDocumentClass(t *testing.T) {
	assert.False(t, ValidateSyntax("\\begin{document}\\end{document}"))
}

func TestValidateSyntax_UnbalancedBraces(t *testing.T) {
	content := `\documentclass{article}
\begin{document}
\textbf{oops
\end{document}
`
	assert.False(t, ValidateSyntax(content))
}

func TestValidateSyntax_UnmatchedEnvironment(t *testing.T) {
	content := `\documentclass{article}
\begin{document}
\begin{itemize}
\item one
\end{document}
`
	assert.False(t, ValidateSyntax(content))
}
