// Package types provides type definitions for structured data used throughout the resume-genie system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds contact details for the resume owner.
type ContactInfo struct {
	Email string `yaml:"email" json:"email"`
	Phone string `yaml:"phone" json:"phone"`
}

// Website represents a personal link with display text and optional icon.
type Website struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// BasicInfo is the identity block of a resume.
type BasicInfo struct {
	Name     string      `yaml:"name" json:"name"`
	Address  []string    `yaml:"address" json:"address"`
	Contact  ContactInfo `yaml:"contact" json:"contact"`
	Websites []Website   `yaml:"websites,omitempty" json:"websites,omitempty"`
}

// Degree represents one degree earned at a school.
type Degree struct {
	Names     []string `yaml:"names" json:"names"`
	StartDate string   `yaml:"startdate" json:"startdate"`
	EndDate   string   `yaml:"enddate" json:"enddate"`
	GPA       *float64 `yaml:"gpa,omitempty" json:"gpa,omitempty"`
}

// Education represents one school with its degrees and achievements.
type Education struct {
	School       string   `yaml:"school" json:"school"`
	Degrees      []Degree `yaml:"degrees" json:"degrees"`
	Achievements []string `yaml:"achievements,omitempty" json:"achievements,omitempty"`
}

// JobTitle is a single title held at a company with its date range.
type JobTitle struct {
	Name      string `yaml:"name" json:"name"`
	StartDate string `yaml:"startdate" json:"startdate"`
	EndDate   string `yaml:"enddate" json:"enddate"`
}

// Experience represents one company engagement. Titles are ordered
// chronologically, oldest first. Highlights is the committed, possibly
// AI-customized list; Unedited is the pristine source material that the
// customization pipeline prefers as input when present.
type Experience struct {
	Company    string     `yaml:"company" json:"company"`
	Titles     []JobTitle `yaml:"titles" json:"titles"`
	Highlights []string   `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Unedited   []string   `yaml:"unedited,omitempty" json:"unedited,omitempty"`
}

// SkillCategory groups skills under a category label. Skill order is
// meaningful: customization may reorder for relevance.
type SkillCategory struct {
	Category string   `yaml:"category" json:"category"`
	Skills   []string `yaml:"skills" json:"skills"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Subtitle     string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	URL          string   `yaml:"url,omitempty" json:"url,omitempty"`
	Technologies []string `yaml:"technologies,omitempty" json:"technologies,omitempty"`
	Highlights   []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// Research represents a research or publication entry.
type Research struct {
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	PublicationDate string   `yaml:"publication_date,omitempty" json:"publication_date,omitempty"`
	Collaborators   []string `yaml:"collaborators,omitempty" json:"collaborators,omitempty"`
	Keywords        []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// ResumeData is the root aggregate of the resume document.
type ResumeData struct {
	Basic       BasicInfo       `yaml:"basic" json:"basic"`
	Summary     string          `yaml:"summary,omitempty" json:"summary,omitempty"`
	Experiences []Experience    `yaml:"experiences,omitempty" json:"experiences,omitempty"`
	Education   []Education     `yaml:"education,omitempty" json:"education,omitempty"`
	Projects    []Project       `yaml:"projects,omitempty" json:"projects,omitempty"`
	Research    []Research      `yaml:"research,omitempty" json:"research,omitempty"`
	Skills      []SkillCategory `yaml:"skills,omitempty" json:"skills,omitempty"`
}
