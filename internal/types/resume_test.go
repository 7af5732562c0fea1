package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResume() *ResumeData {
	return &ResumeData{
		Basic: BasicInfo{
			Name:    "Jane Doe",
			Address: []string{"123 Main St", "Springfield"},
			Contact: ContactInfo{Email: "jane@example.com", Phone: "555-0100"},
			Websites: []Website{
				{Text: "GitHub", URL: "https://github.com/janedoe"},
			},
		},
		Summary: "Backend engineer with distributed systems focus",
		Experiences: []Experience{
			{
				Company: "Acme",
				Titles: []JobTitle{
					{Name: "Software Engineer", StartDate: "2019-06", EndDate: "2021-08"},
					{Name: "Senior Software Engineer", StartDate: "2021-09", EndDate: "present"},
				},
				Highlights: []string{"Did X", "Did Y"},
				Unedited:   []string{"Did X originally"},
			},
		},
		Education: []Education{
			{
				School: "State University",
				Degrees: []Degree{
					{Names: []string{"B.S. Computer Science"}, StartDate: "2015", EndDate: "2019"},
				},
				Achievements: []string{"Dean's List"},
			},
		},
		Projects: []Project{
			{Name: "ChatApp", Description: "Realtime chat server", Technologies: []string{"Go", "Redis"}},
		},
		Research: []Research{
			{Title: "Consensus Study", Description: "Raft variants", Keywords: []string{"raft"}},
		},
		Skills: []SkillCategory{
			{Category: "Programming Languages", Skills: []string{"Go", "Python"}},
		},
	}
}

func TestResumeValidate_ValidResume(t *testing.T) {
	r := validResume()
	assert.Empty(t, r.Validate())
	assert.True(t, r.IsValid())
}

func TestResumeValidate_CollectsAllViolations(t *testing.T) {
	r := validResume()
	r.Basic.Name = ""
	r.Basic.Contact.Email = "  "
	r.Skills[0].Skills = nil

	errs := r.Validate()
	require.GreaterOrEqual(t, len(errs), 3)
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Email is required")
	assert.Contains(t, errs, "Skill category 1: At least one skill is required")
}

func TestResumeValidate_ExperienceWithoutTitles(t *testing.T) {
	r := validResume()
	r.Experiences[0].Titles = nil

	errs := r.Validate()
	assert.Contains(t, errs, "Experience 1: At least one job title is required")
}

func TestResumeValidate_EducationWithoutDegrees(t *testing.T) {
	r := validResume()
	r.Education[0].Degrees = nil

	errs := r.Validate()
	assert.Contains(t, errs, "Education 1: At least one degree is required")
}

func TestResumeValidate_IndexedMessages(t *testing.T) {
	r := validResume()
	r.Experiences = append(r.Experiences, Experience{
		Company: "Globex",
		Titles:  []JobTitle{{Name: "", StartDate: "2022-01", EndDate: "2023-01"}},
	})

	errs := r.Validate()
	assert.Contains(t, errs, "Experience 2, Title 1: Job title name is required")
}

func TestResumeValidate_ProjectAndResearch(t *testing.T) {
	r := validResume()
	r.Projects[0].Description = ""
	r.Research[0].Title = ""

	errs := r.Validate()
	assert.Contains(t, errs, "Project 1: Project description is required")
	assert.Contains(t, errs, "Research 1: Research title is required")
}

func TestResumeClone_DeepIndependence(t *testing.T) {
	original := validResume()
	cloned := original.Clone()

	require.Equal(t, original, cloned)

	cloned.Basic.Name = "Someone Else"
	cloned.Experiences[0].Highlights[0] = "mutated"
	cloned.Experiences[0].Titles[0].Name = "mutated title"
	cloned.Skills[0].Skills[0] = "mutated skill"
	cloned.Projects[0].Technologies[0] = "mutated tech"
	cloned.Education[0].Degrees[0].Names[0] = "mutated degree"

	assert.Equal(t, "Jane Doe", original.Basic.Name)
	assert.Equal(t, "Did X", original.Experiences[0].Highlights[0])
	assert.Equal(t, "Software Engineer", original.Experiences[0].Titles[0].Name)
	assert.Equal(t, "Go", original.Skills[0].Skills[0])
	assert.Equal(t, "Go", original.Projects[0].Technologies[0])
	assert.Equal(t, "B.S. Computer Science", original.Education[0].Degrees[0].Names[0])
}

func TestResumeClone_GPAPointerNotShared(t *testing.T) {
	original := validResume()
	gpa := 3.8
	original.Education[0].Degrees[0].GPA = &gpa

	cloned := original.Clone()
	*cloned.Education[0].Degrees[0].GPA = 2.0

	assert.Equal(t, 3.8, *original.Education[0].Degrees[0].GPA)
}

func TestResumeClone_Nil(t *testing.T) {
	var r *ResumeData
	assert.Nil(t, r.Clone())
}

func TestJobProfileValidate(t *testing.T) {
	profile := &JobProfile{Title: "Backend Engineer", Company: "Acme", Description: "Build services"}
	assert.Empty(t, profile.Validate())
	assert.True(t, profile.IsValid())
}

func TestJobProfileValidate_AllMissing(t *testing.T) {
	profile := &JobProfile{}
	errs := profile.Validate()
	require.Len(t, errs, 3)
	assert.Contains(t, errs, "Job title is required")
	assert.Contains(t, errs, "Company name is required")
	assert.Contains(t, errs, "Job description is required")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Problems: []string{"Name is required", "Email is required"}}
	msg := err.Error()
	assert.Contains(t, msg, "1. Name is required")
	assert.Contains(t, msg, "2. Email is required")
}
