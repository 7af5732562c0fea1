package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valyrian24052/resume-genie/internal/compile"
	"github.com/valyrian24052/resume-genie/internal/config"
	"github.com/valyrian24052/resume-genie/internal/customize"
	"github.com/valyrian24052/resume-genie/internal/db"
	"github.com/valyrian24052/resume-genie/internal/fetch"
	"github.com/valyrian24052/resume-genie/internal/ingestion"
	"github.com/valyrian24052/resume-genie/internal/llm"
	"github.com/valyrian24052/resume-genie/internal/observability"
	"github.com/valyrian24052/resume-genie/internal/parsing"
	"github.com/valyrian24052/resume-genie/internal/rendering"
	"github.com/valyrian24052/resume-genie/internal/types"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Render a resume, optionally customized for a job posting",
	Long: `Loads resume YAML, optionally customizes it for a target job through an AI endpoint, and renders it through a LaTeX template.

The target job can come from a job profile YAML (--job), a raw posting text file (--posting), or a posting URL (--job-url). Without any job source the resume is rendered as-is.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath     string
	buildResume         string
	buildJob            string
	buildJobURL         string
	buildPosting        string
	buildTemplate       string
	buildPrompts        string
	buildOutput         string
	buildOutputDir      string
	buildProvider       string
	buildBaseURL        string
	buildAPIKey         string
	buildTimeout        int
	buildMaxRetries     int
	buildUseBrowser     bool
	buildCompile        bool
	buildVerbose        bool
	buildDatabaseURL    string
	buildSaveCustomized string
)

func init() {
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildResume, "resume", "r", "", "Path to resume YAML file")
	buildCommand.Flags().StringVarP(&buildJob, "job", "j", "", "Path to job profile YAML (mutually exclusive with --job-url and --posting)")
	buildCommand.Flags().StringVar(&buildJobURL, "job-url", "", "URL to fetch the job posting from")
	buildCommand.Flags().StringVar(&buildPosting, "posting", "", "Path to raw job posting text file")
	buildCommand.Flags().StringVarP(&buildTemplate, "template", "t", "", "Path to LaTeX template")
	buildCommand.Flags().StringVar(&buildPrompts, "prompts", "", "Path to prompt configuration YAML (optional, built-in prompts used otherwise)")
	buildCommand.Flags().StringVarP(&buildOutput, "output", "o", "", "Rendered .tex output path")
	buildCommand.Flags().StringVar(&buildOutputDir, "output-dir", "", "Directory for compiled PDFs")
	buildCommand.Flags().StringVar(&buildProvider, "provider", "", "AI provider: openai or gemini")
	buildCommand.Flags().StringVar(&buildBaseURL, "base-url", "", "OpenAI-compatible endpoint base URL")
	buildCommand.Flags().StringVar(&buildAPIKey, "api-key", "", "API key (optional, defaults to OPENAI_API_KEY or GEMINI_API_KEY env var)")
	buildCommand.Flags().IntVar(&buildTimeout, "timeout", 0, "AI request timeout in seconds")
	buildCommand.Flags().IntVar(&buildMaxRetries, "max-retries", 0, "AI request retry limit")
	buildCommand.Flags().BoolVar(&buildUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	buildCommand.Flags().BoolVar(&buildCompile, "compile", false, "Compile the rendered LaTeX to PDF (requires pdflatex)")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed progress information")
	buildCommand.Flags().StringVar(&buildDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	buildCommand.Flags().StringVar(&buildSaveCustomized, "save-customized", "", "Write the customized resume YAML to this path")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadBuildConfig(cmd)
	if err != nil {
		return err
	}

	observability.SetupLogger(cfg.Verbose)
	printer := observability.NewPrinter(os.Stdout)

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	resume, err := ingestion.LoadResume(cfg.Resume)
	if err != nil {
		return err
	}
	slog.Info("loaded resume", "path", cfg.Resume, "experiences", len(resume.Experiences))

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	job, err := resolveJobProfile(ctx, cfg, client)
	if err != nil {
		return err
	}

	var database *db.DB
	var runID = noRun
	if url := databaseURL(cfg); url != "" && job != nil {
		database, runID, err = startRun(ctx, url, job, cfg.JobURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	final := resume
	if job != nil {
		if cfg.Verbose {
			printer.PrintJobProfile(job)
		}
		if client == nil {
			slog.Warn("no API key configured, skipping customization")
		} else {
			engine := customize.NewEngine(client, nil, nil)
			if cfg.Prompts != "" {
				engine = customize.NewEngineFromPath(client, cfg.Prompts)
			}
			final = engine.CustomizeForJob(ctx, resume, job)
			if cfg.Verbose {
				printer.PrintCustomizationSummary(resume, final)
			}
		}
	}

	tex, err := renderResume(cfg.Template, final)
	if err != nil {
		failRun(ctx, database, runID)
		return err
	}

	if err := writeOutput(cfg.Output, tex); err != nil {
		failRun(ctx, database, runID)
		return err
	}
	fmt.Fprintf(os.Stdout, "Rendered resume written to %s\n", cfg.Output)

	if cfg.SaveCustomized != "" {
		if err := ingestion.SaveResume(cfg.SaveCustomized, final); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Customized resume written to %s\n", cfg.SaveCustomized)
	}

	compileLog := ""
	if cfg.Compile {
		result, err := compile.PDF(ctx, cfg.Output, cfg.OutputDir)
		if result != nil {
			compileLog = result.Log
		}
		if err != nil {
			failRunArtifacts(ctx, database, runID, resume, final, job, tex, compileLog)
			return err
		}
		fmt.Fprintf(os.Stdout, "PDF written to %s\n", result.OutputPath)
	}

	if database != nil {
		persistRun(ctx, database, runID, resume, final, job, tex, compileLog)
	}

	return nil
}

// buildRunConfig holds the merged build settings.
type buildRunConfig struct {
	config.Config
	SaveCustomized string
}

func loadBuildConfig(cmd *cobra.Command) (*buildRunConfig, error) {
	var cfg config.Config
	if buildConfigPath != "" {
		loaded, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	// Command-line args take priority over config file values, but only
	// when the flag was explicitly set.
	overrideString := func(name string, dst *string, value string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	overrideString("resume", &cfg.Resume, buildResume)
	overrideString("job", &cfg.Job, buildJob)
	overrideString("job-url", &cfg.JobURL, buildJobURL)
	overrideString("posting", &cfg.Posting, buildPosting)
	overrideString("template", &cfg.Template, buildTemplate)
	overrideString("prompts", &cfg.Prompts, buildPrompts)
	overrideString("output", &cfg.Output, buildOutput)
	overrideString("output-dir", &cfg.OutputDir, buildOutputDir)
	overrideString("provider", &cfg.Provider, buildProvider)
	overrideString("base-url", &cfg.BaseURL, buildBaseURL)
	overrideString("api-key", &cfg.APIKey, buildAPIKey)
	overrideString("db-url", &cfg.DatabaseURL, buildDatabaseURL)
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = buildTimeout
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries = buildMaxRetries
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = buildUseBrowser
	}
	if cmd.Flags().Changed("compile") {
		cfg.Compile = buildCompile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Template:   "templates/resume.tex",
		Output:     "output/resume.tex",
		OutputDir:  "output",
		Provider:   "openai",
		Timeout:    30,
		MaxRetries: 3,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &buildRunConfig{Config: cfg, SaveCustomized: buildSaveCustomized}, nil
}

// buildClient constructs the AI client, or returns nil when no API key is
// available.
func buildClient(ctx context.Context, cfg *buildRunConfig) (llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		switch cfg.Provider {
		case "gemini":
			apiKey = os.Getenv("GEMINI_API_KEY")
		default:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, nil
	}

	clientCfg := llm.DefaultConfig()
	clientCfg.Provider = llm.Provider(cfg.Provider)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.Timeout = cfg.Timeout
	}
	if cfg.MaxRetries > 0 {
		clientCfg.MaxRetries = cfg.MaxRetries
	}

	return llm.NewClient(ctx, clientCfg, apiKey)
}

// resolveJobProfile obtains the target job from whichever source was
// configured. Returns nil when no job source is set.
func resolveJobProfile(ctx context.Context, cfg *buildRunConfig, client llm.Client) (*types.JobProfile, error) {
	switch {
	case cfg.Job != "":
		return ingestion.LoadJobProfile(cfg.Job)

	case cfg.Posting != "":
		text, err := ingestion.LoadPostingText(cfg.Posting)
		if err != nil {
			return nil, err
		}
		return profileFromText(ctx, client, text), nil

	case cfg.JobURL != "":
		text, err := fetchPostingText(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return profileFromText(ctx, client, text), nil
	}
	return nil, nil
}

func fetchPostingText(ctx context.Context, cfg *buildRunConfig) (string, error) {
	if cfg.UseBrowser {
		return fetch.PostingText(ctx, cfg.JobURL, nil)
	}
	result, err := fetch.Posting(ctx, cfg.JobURL, nil)
	if err != nil {
		return "", err
	}
	return fetch.ExtractPostingText(result.HTML)
}

// profileFromText prefers AI extraction and falls back to the keyword
// heuristic when no client is available or extraction fails.
func profileFromText(ctx context.Context, client llm.Client, text string) *types.JobProfile {
	if client != nil {
		profile, err := parsing.ParseJobProfile(ctx, client, text)
		if err == nil {
			return profile
		}
		slog.Warn("AI job profile extraction failed, using heuristic", "error", err)
	}
	return parsing.HeuristicProfile(text)
}

func renderResume(templatePath string, resume *types.ResumeData) (string, error) {
	manager, err := rendering.NewManager(filepath.Dir(templatePath))
	if err != nil {
		return "", err
	}
	return manager.RenderResume(filepath.Base(templatePath), resume)
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
