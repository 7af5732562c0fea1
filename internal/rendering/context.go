package rendering

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/types"
)

// PrepareTemplateData projects a resume into the key space the template
// engine resolves against: lowercase entity collections for loop
// constructs, plus flattened uppercase scalars for direct substitution.
// Every user-sourced string is LaTeX-escaped exactly once here; templates
// receive markup-safe values and must not escape again.
func PrepareTemplateData(resume *types.ResumeData) (map[string]any, error) {
	data, err := toMap(resume)
	if err != nil {
		return nil, &RenderError{Message: "failed to project resume data", Cause: err}
	}

	data["NAME"] = resume.Basic.Name
	data["EMAIL"] = resume.Basic.Contact.Email
	data["PHONE"] = resume.Basic.Contact.Phone

	flattenWebsites(data, resume.Basic.Websites)
	flattenEducation(data, resume.Education)
	flattenSkills(data, resume.Skills)

	escapeStrings(data)
	return data, nil
}

// toMap converts the typed resume graph into the generic mapping shape the
// engine's dotted-path resolution expects, keyed by the document field
// names.
func toMap(resume *types.ResumeData) (map[string]any, error) {
	raw, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// flattenWebsites classifies links by their display text.
func flattenWebsites(data map[string]any, websites []types.Website) {
	for _, site := range websites {
		text := strings.ToLower(site.Text)
		switch {
		case strings.Contains(text, "portfolio"):
			data["PORTFOLIO_URL"] = site.URL
		case strings.Contains(text, "linkedin"):
			data["LINKEDIN_URL"] = site.URL
			data["LINKEDIN_TEXT"] = site.Text
		case strings.Contains(text, "github"):
			data["GITHUB_URL"] = site.URL
			data["GITHUB_TEXT"] = site.Text
		}
	}
}

// flattenEducation exposes the first education entry as scalar fields.
func flattenEducation(data map[string]any, education []types.Education) {
	if len(education) == 0 {
		return
	}
	edu := education[0]

	data["EDUCATION_SCHOOL"] = edu.School
	data["EDUCATION_LOCATION"] = ""
	data["EDUCATION_COURSEWORK"] = strings.Join(edu.Achievements, ", ")

	degree, gpa, dates := "", "", ""
	if len(edu.Degrees) > 0 {
		first := edu.Degrees[0]
		degree = strings.Join(first.Names, ", ")
		if first.GPA != nil {
			gpa = strconv.FormatFloat(*first.GPA, 'g', -1, 64)
		}
		dates = first.StartDate + " - " + first.EndDate
	}
	data["EDUCATION_DEGREE"] = degree
	data["EDUCATION_GPA"] = gpa
	data["EDUCATION_DATES"] = dates
}

// flattenSkills exposes each category as SKILLS_<CATEGORY> with spaces
// replaced by underscores.
func flattenSkills(data map[string]any, skills []types.SkillCategory) {
	for _, cat := range skills {
		key := "SKILLS_" + strings.ReplaceAll(strings.ToUpper(cat.Category), " ", "_")
		data[key] = strings.Join(cat.Skills, ", ")
	}
}

// escapeStrings walks the prepared data and escapes every string in place.
func escapeStrings(data map[string]any) {
	for key, value := range data {
		data[key] = escapeAny(value)
	}
}

func escapeAny(value any) any {
	switch v := value.(type) {
	case string:
		return EscapeLaTeX(v)
	case map[string]any:
		for key, item := range v {
			v[key] = escapeAny(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = escapeAny(item)
		}
		return v
	default:
		return value
	}
}
