package db

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact step names. One artifact per step per run.
const (
	StepJobProfile       = "job_profile"
	StepOriginalResume   = "original_resume"
	StepCustomizedResume = "customized_resume"
	StepResumeTex        = "resume_tex"
	StepCompileLog       = "compile_log"
)

// Run represents one customization run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	JobTitle    string     `json:"job_title"`
	JobURL      string     `json:"job_url,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Artifact represents one persisted artifact of a run.
type Artifact struct {
	ID          uuid.UUID `json:"id"`
	RunID       uuid.UUID `json:"run_id"`
	Step        string    `json:"step"`
	Content     any       `json:"content,omitempty"`
	TextContent string    `json:"text_content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
