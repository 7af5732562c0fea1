package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/valyrian24052/resume-genie/internal/fetch"
	"github.com/valyrian24052/resume-genie/internal/observability"
)

var fetchCommand = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a job posting and extract a job profile",
	Long: `Fetches a job posting URL, extracts the description text, and builds a job profile from it. With an API key configured the profile is extracted by the AI endpoint; otherwise a keyword heuristic collects the requirement sections.

The profile is written as YAML, ready for use with 'build --job'.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetchCmd,
}

var (
	fetchOutput     string
	fetchUseBrowser bool
	fetchProvider   string
	fetchBaseURL    string
	fetchAPIKey     string
	fetchVerbose    bool
)

func init() {
	fetchCommand.Flags().StringVarP(&fetchOutput, "output", "o", "", "Write the job profile YAML to this path (default: stdout)")
	fetchCommand.Flags().BoolVar(&fetchUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	fetchCommand.Flags().StringVar(&fetchProvider, "provider", "openai", "AI provider: openai or gemini")
	fetchCommand.Flags().StringVar(&fetchBaseURL, "base-url", "", "OpenAI-compatible endpoint base URL")
	fetchCommand.Flags().StringVar(&fetchAPIKey, "api-key", "", "API key (optional, defaults to OPENAI_API_KEY or GEMINI_API_KEY env var)")
	fetchCommand.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(fetchCommand)
}

func runFetchCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	observability.SetupLogger(fetchVerbose)

	cfg := &buildRunConfig{}
	cfg.JobURL = args[0]
	cfg.Provider = fetchProvider
	cfg.BaseURL = fetchBaseURL
	cfg.APIKey = fetchAPIKey
	cfg.UseBrowser = fetchUseBrowser

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	text, err := fetchPostingText(ctx, cfg)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no posting content extracted from %s", args[0])
	}
	if !fetchUseBrowser && fetch.ShouldUseBrowser(text) {
		fmt.Fprintln(os.Stderr, "Warning: extracted content is short; the posting may be JavaScript-rendered, try --use-browser")
	}

	profile := profileFromText(ctx, client, text)

	out, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode job profile: %w", err)
	}

	if fetchOutput == "" {
		fmt.Fprint(os.Stdout, string(out))
		return nil
	}
	if err := os.WriteFile(fetchOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write job profile: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Job profile written to %s\n", fetchOutput)
	return nil
}
