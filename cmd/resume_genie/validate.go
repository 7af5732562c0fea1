package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valyrian24052/resume-genie/internal/ingestion"
	"github.com/valyrian24052/resume-genie/internal/observability"
	"github.com/valyrian24052/resume-genie/internal/rendering"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Check resume data and template compatibility without rendering",
	Long: `Validates the resume YAML against the schema and structural invariants, and when a template is given, statically checks that the template's variables, loops, and conditionals can all be satisfied by the resume data.`,
	RunE: runValidateCmd,
}

var (
	validateResume   string
	validateTemplate string
)

func init() {
	validateCommand.Flags().StringVarP(&validateResume, "resume", "r", "", "Path to resume YAML file")
	validateCommand.Flags().StringVarP(&validateTemplate, "template", "t", "", "Path to LaTeX template (optional)")
	_ = validateCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)

	resume, err := ingestion.LoadResume(validateResume)
	if err != nil {
		var invalidErr *ingestion.InvalidResumeError
		if errors.As(err, &invalidErr) {
			printer.PrintValidationProblems(invalidErr.Problems)
			return fmt.Errorf("resume has %d validation problem(s)", len(invalidErr.Problems))
		}
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ %s is valid\n", validateResume)

	if validateTemplate == "" {
		return nil
	}

	manager, err := rendering.NewManager(filepath.Dir(validateTemplate))
	if err != nil {
		return err
	}
	name := filepath.Base(validateTemplate)

	content, err := manager.LoadTemplate(name)
	if err != nil {
		return err
	}
	if !rendering.ValidateSyntax(content) {
		return fmt.Errorf("template %s has LaTeX syntax problems", validateTemplate)
	}

	problems, err := manager.ValidateWithData(name, resume)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		printer.PrintValidationProblems(problems)
		return fmt.Errorf("template has %d unsatisfied placeholder(s)", len(problems))
	}
	fmt.Fprintf(os.Stdout, "✓ %s satisfies all template placeholders\n", validateResume)

	return nil
}
