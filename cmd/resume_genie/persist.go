package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/valyrian24052/resume-genie/internal/db"
	"github.com/valyrian24052/resume-genie/internal/types"
)

var noRun = uuid.Nil

func databaseURL(cfg *buildRunConfig) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}

// startRun connects to the database and records the beginning of a
// customization run.
func startRun(ctx context.Context, url string, job *types.JobProfile, jobURL string) (*db.DB, uuid.UUID, error) {
	database, err := db.Connect(ctx, url)
	if err != nil {
		return nil, noRun, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, noRun, err
	}

	runID, err := database.CreateRun(ctx, job.Company, job.Title, jobURL)
	if err != nil {
		database.Close()
		return nil, noRun, err
	}
	slog.Debug("started customization run", "run_id", runID)
	return database, runID, nil
}

// persistRun stores the run artifacts and marks the run completed.
// Persistence failures are logged, not fatal: the rendered resume already
// exists on disk.
func persistRun(ctx context.Context, database *db.DB, runID uuid.UUID, original, customized *types.ResumeData, job *types.JobProfile, tex, compileLog string) {
	saveArtifacts(ctx, database, runID, original, customized, job, tex, compileLog)
	if err := database.CompleteRun(ctx, runID, db.StatusCompleted); err != nil {
		slog.Warn("failed to mark run completed", "run_id", runID, "error", err)
	}
}

func failRun(ctx context.Context, database *db.DB, runID uuid.UUID) {
	if database == nil {
		return
	}
	if err := database.CompleteRun(ctx, runID, db.StatusFailed); err != nil {
		slog.Warn("failed to mark run failed", "run_id", runID, "error", err)
	}
}

func failRunArtifacts(ctx context.Context, database *db.DB, runID uuid.UUID, original, customized *types.ResumeData, job *types.JobProfile, tex, compileLog string) {
	if database == nil {
		return
	}
	saveArtifacts(ctx, database, runID, original, customized, job, tex, compileLog)
	failRun(ctx, database, runID)
}

func saveArtifacts(ctx context.Context, database *db.DB, runID uuid.UUID, original, customized *types.ResumeData, job *types.JobProfile, tex, compileLog string) {
	warn := func(step string, err error) {
		if err != nil {
			slog.Warn("failed to save artifact", "step", step, "run_id", runID, "error", err)
		}
	}
	warn(db.StepJobProfile, database.SaveArtifact(ctx, runID, db.StepJobProfile, job))
	warn(db.StepOriginalResume, database.SaveArtifact(ctx, runID, db.StepOriginalResume, original))
	warn(db.StepCustomizedResume, database.SaveArtifact(ctx, runID, db.StepCustomizedResume, customized))
	warn(db.StepResumeTex, database.SaveTextArtifact(ctx, runID, db.StepResumeTex, tex))
	if compileLog != "" {
		warn(db.StepCompileLog, database.SaveTextArtifact(ctx, runID, db.StepCompileLog, compileLog))
	}
}
