// Package parsing turns raw job posting text into a structured JobProfile,
// using AI extraction when a client is available and a keyword heuristic
// otherwise.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/valyrian24052/resume-genie/internal/llm"
	"github.com/valyrian24052/resume-genie/internal/types"
)

const extractionSystemPrompt = `You extract structured data from job postings. Given the text of a job posting, respond with a single JSON object and nothing else, using exactly these keys:
{
  "title": "the job title",
  "company": "the hiring company",
  "description": "a concise description of the role",
  "requirements": ["each required skill or qualification"],
  "preferred_skills": ["each nice-to-have skill"],
  "industry": "the industry, or empty string if unclear",
  "experience_level": "entry, mid, or senior, or empty string if unclear"
}
Do not invent information that is not in the posting.`

var extractionParams = llm.ModelParams{
	"model":       "gpt-4o-mini",
	"max_tokens":  1500,
	"temperature": 0.2,
}

// ParseJobProfile extracts a structured JobProfile from job posting text
// through the AI client. The response must be a JSON object matching the
// JobProfile shape, optionally wrapped in a markdown code block.
func ParseJobProfile(ctx context.Context, client llm.Client, postingText string) (*types.JobProfile, error) {
	if strings.TrimSpace(postingText) == "" {
		return nil, &ExtractionError{Message: "posting text is empty"}
	}

	resp := client.CustomizeContent(ctx, extractionSystemPrompt, postingText, extractionParams)
	if !resp.Success {
		return nil, &ExtractionError{Message: resp.ErrorMessage}
	}

	profile, err := parseJSONResponse(cleanJSONBlock(resp.Content))
	if err != nil {
		return nil, err
	}

	postProcessProfile(profile)
	return profile, nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

func parseJSONResponse(jsonText string) (*types.JobProfile, error) {
	var profile types.JobProfile
	if err := json.Unmarshal([]byte(jsonText), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}
	return &profile, nil
}

// postProcessProfile normalizes skill names and deduplicates the skill lists.
func postProcessProfile(profile *types.JobProfile) {
	profile.Title = strings.TrimSpace(profile.Title)
	profile.Company = strings.TrimSpace(profile.Company)
	profile.Description = strings.TrimSpace(profile.Description)
	profile.Requirements = NormalizeSkills(profile.Requirements)
	profile.PreferredSkills = NormalizeSkills(profile.PreferredSkills)
	profile.ExperienceLevel = normalizeExperienceLevel(profile.ExperienceLevel)
}

func normalizeExperienceLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	switch {
	case strings.Contains(level, "senior") || strings.Contains(level, "staff") || strings.Contains(level, "principal"):
		return "senior"
	case strings.Contains(level, "mid"):
		return "mid"
	case strings.Contains(level, "entry") || strings.Contains(level, "junior"):
		return "entry"
	default:
		return level
	}
}
