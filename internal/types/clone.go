package types

// Clone returns a deep copy of the resume. The customization pipeline
// mutates only the copy, so the original record survives any downstream
// failure untouched.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}

	out := &ResumeData{
		Basic:   r.Basic.clone(),
		Summary: r.Summary,
	}

	if r.Experiences != nil {
		out.Experiences = make([]Experience, len(r.Experiences))
		for i, exp := range r.Experiences {
			out.Experiences[i] = exp.Clone()
		}
	}
	if r.Education != nil {
		out.Education = make([]Education, len(r.Education))
		for i, edu := range r.Education {
			out.Education[i] = edu.clone()
		}
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			out.Projects[i] = p.Clone()
		}
	}
	if r.Research != nil {
		out.Research = make([]Research, len(r.Research))
		for i, res := range r.Research {
			out.Research[i] = res.clone()
		}
	}
	if r.Skills != nil {
		out.Skills = make([]SkillCategory, len(r.Skills))
		for i, cat := range r.Skills {
			out.Skills[i] = cat.Clone()
		}
	}

	return out
}

func (b BasicInfo) clone() BasicInfo {
	out := BasicInfo{
		Name:    b.Name,
		Contact: b.Contact,
	}
	out.Address = copyStrings(b.Address)
	if b.Websites != nil {
		out.Websites = make([]Website, len(b.Websites))
		copy(out.Websites, b.Websites)
	}
	return out
}

// Clone returns a deep copy of the experience entry.
func (e Experience) Clone() Experience {
	out := Experience{Company: e.Company}
	if e.Titles != nil {
		out.Titles = make([]JobTitle, len(e.Titles))
		copy(out.Titles, e.Titles)
	}
	out.Highlights = copyStrings(e.Highlights)
	out.Unedited = copyStrings(e.Unedited)
	return out
}

func (e Education) clone() Education {
	out := Education{School: e.School}
	if e.Degrees != nil {
		out.Degrees = make([]Degree, len(e.Degrees))
		for i, d := range e.Degrees {
			out.Degrees[i] = Degree{
				Names:     copyStrings(d.Names),
				StartDate: d.StartDate,
				EndDate:   d.EndDate,
			}
			if d.GPA != nil {
				gpa := *d.GPA
				out.Degrees[i].GPA = &gpa
			}
		}
	}
	out.Achievements = copyStrings(e.Achievements)
	return out
}

// Clone returns a deep copy of the project entry.
func (p Project) Clone() Project {
	out := p
	out.Technologies = copyStrings(p.Technologies)
	out.Highlights = copyStrings(p.Highlights)
	return out
}

func (r Research) clone() Research {
	out := r
	out.Collaborators = copyStrings(r.Collaborators)
	out.Keywords = copyStrings(r.Keywords)
	return out
}

// Clone returns a deep copy of the skill category.
func (c SkillCategory) Clone() SkillCategory {
	return SkillCategory{
		Category: c.Category,
		Skills:   copyStrings(c.Skills),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
