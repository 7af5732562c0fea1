package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// Manager loads LaTeX templates from a directory and renders resumes
// through the dynamic engine.
type Manager struct {
	dir    string
	engine Engine
}

// NewManager creates a template manager rooted at dir. The directory must
// exist.
func NewManager(dir string) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &TemplateError{
			Message: fmt.Sprintf("template directory not found: %s", dir),
			Cause:   err,
		}
	}
	return &Manager{dir: dir}, nil
}

// AvailableTemplates returns the sorted names of all .tex templates,
// without the extension.
func (m *Manager) AvailableTemplates() []string {
	matches, _ := filepath.Glob(filepath.Join(m.dir, "*.tex"))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(match), ".tex"))
	}
	sort.Strings(names)
	return names
}

// TemplatePath returns the full path for a template name, appending the
// .tex extension when absent.
func (m *Manager) TemplatePath(name string) string {
	if !strings.HasSuffix(name, ".tex") {
		name += ".tex"
	}
	return filepath.Join(m.dir, name)
}

// TemplateExists reports whether the named template file exists.
func (m *Manager) TemplateExists(name string) bool {
	info, err := os.Stat(m.TemplatePath(name))
	return err == nil && !info.IsDir()
}

// LoadTemplate reads a template's content.
func (m *Manager) LoadTemplate(name string) (string, error) {
	path := m.TemplatePath(name)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template %q not found; available templates: %v", name, m.AvailableTemplates()),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template %q", name),
			Cause:   err,
		}
	}
	return string(content), nil
}

// RenderResume loads the named template and renders it against the resume.
func (m *Manager) RenderResume(name string, resume *types.ResumeData) (string, error) {
	content, err := m.LoadTemplate(name)
	if err != nil {
		return "", err
	}
	data, err := PrepareTemplateData(resume)
	if err != nil {
		return "", err
	}
	return m.engine.Render(content, data), nil
}

// ValidateWithData statically checks the named template against the
// resume's prepared data and returns every problem found.
func (m *Manager) ValidateWithData(name string, resume *types.ResumeData) ([]string, error) {
	content, err := m.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	data, err := PrepareTemplateData(resume)
	if err != nil {
		return nil, err
	}
	return m.engine.Validate(content, data), nil
}

var (
	beginEnvPattern = regexp.MustCompile(`\\begin\{([^}]+)\}`)
	endEnvPattern   = regexp.MustCompile(`\\end\{([^}]+)\}`)
)

// ValidateSyntax performs a basic structural sanity check of LaTeX template
// content: document skeleton present, braces balanced, and every
// \begin{env} matched by an \end{env}.
func ValidateSyntax(content string) bool {
	if !strings.Contains(content, `\documentclass`) ||
		!strings.Contains(content, `\begin{document}`) ||
		!strings.Contains(content, `\end{document}`) {
		return false
	}

	if strings.Count(content, "{") != strings.Count(content, "}") {
		return false
	}

	begins := map[string]int{}
	for _, m := range beginEnvPattern.FindAllStringSubmatch(content, -1) {
		begins[m[1]]++
	}
	ends := map[string]int{}
	for _, m := range endEnvPattern.FindAllStringSubmatch(content, -1) {
		ends[m[1]]++
	}
	if len(begins) != len(ends) {
		return false
	}
	for env, count := range begins {
		if ends[env] != count {
			return false
		}
	}
	return true
}
