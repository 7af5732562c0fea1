// Package compile turns rendered LaTeX into a PDF by shelling out to
// pdflatex. The tool is treated as opaque: success means a PDF exists on
// disk afterwards, and the full compiler log is kept for diagnosis.
package compile

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout is the maximum time to wait for a pdflatex run.
const DefaultTimeout = 30 * time.Second

// Error represents a compilation failure.
type Error struct {
	Message string
	Log     string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result describes a compilation attempt.
type Result struct {
	Success    bool
	OutputPath string
	Log        string
}

// Available reports whether pdflatex can be found on the PATH.
func Available() bool {
	_, err := exec.LookPath("pdflatex")
	return err == nil
}

// PDF compiles a LaTeX file with pdflatex and returns the path of the
// generated PDF. When outputDir is empty a temporary directory is used.
// LaTeX can emit a usable PDF while still exiting nonzero, so a Result is
// returned alongside the error whenever a PDF exists.
func PDF(ctx context.Context, texPath string, outputDir string) (*Result, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &Error{
			Message: "pdflatex not found in PATH, install a LaTeX distribution (TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	if outputDir == "" {
		dir, err := os.MkdirTemp("", "resume-genie-compile-*")
		if err != nil {
			return nil, &Error{Message: "failed to create temporary output directory", Cause: err}
		}
		outputDir = dir
	} else if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to create output directory %s", outputDir), Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	// nonstopmode keeps pdflatex from blocking on interactive prompts.
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", outputDir, texPath)
	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()
	log := output.String()

	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	pdfPath := filepath.Join(outputDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return &Result{Log: log}, &Error{
			Message: "PDF was not generated",
			Log:     log,
			Cause:   runErr,
		}
	}

	result := &Result{Success: true, OutputPath: pdfPath, Log: log}
	if runErr != nil {
		// The PDF exists but may be incomplete.
		return result, &Error{
			Message: "compilation completed with errors",
			Log:     log,
			Cause:   runErr,
		}
	}
	return result, nil
}

// Cleanup removes the auxiliary files pdflatex leaves next to the PDF.
func Cleanup(outputDir, texName string) {
	base := strings.TrimSuffix(filepath.Base(texName), ".tex")
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(filepath.Join(outputDir, base+ext))
	}
}
