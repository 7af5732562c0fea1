// Package main provides the resume-genie command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_genie",
	Short: "AI-assisted resume customization",
	Long:  "resume-genie renders YAML resume data through LaTeX templates, optionally customizing the content for a specific job posting with an AI endpoint.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
