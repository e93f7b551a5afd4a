package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/eykd/mdvet-go/internal/checker"
	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/linkprobe"
)

// stdinName labels validation results for content read from standard input.
const stdinName = "<stdin>"

// CheckOptions carries the per-run validation settings.
type CheckOptions struct {
	// ConfigPath is an explicit config file; empty means discover .mdvet.yml
	// by walking up from the working directory.
	ConfigPath string
	// ProbeLinks enables filesystem and network probes of link targets.
	ProbeLinks bool
	// Timeout bounds each external link probe.
	Timeout time.Duration
}

// CheckRunner validates documents with the given settings.
type CheckRunner interface {
	CheckPaths(ctx context.Context, paths []string, opts CheckOptions) ([]checker.DocumentReport, error)
	CheckContent(ctx context.Context, name string, raw []byte, opts CheckOptions) (*checker.DocumentReport, error)
}

// IssuesDetectedError is returned when check finds errors or warnings.
type IssuesDetectedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *IssuesDetectedError) Error() string {
	return fmt.Sprintf("found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for detected issues (always 2).
func (e *IssuesDetectedError) ExitCode() int {
	return 2
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	Files   []checker.DocumentReport `json:"files"`
	Summary domain.Summary           `json:"summary"`
}

// sumSummaries totals the per-file summaries of a check run.
func sumSummaries(reports []checker.DocumentReport) domain.Summary {
	var total domain.Summary
	for _, rep := range reports {
		total.Total += rep.Summary.Total
		total.Errors += rep.Summary.Errors
		total.Warnings += rep.Summary.Warnings
		total.Info += rep.Summary.Info
	}
	return total
}

// formatCheckJSON writes the reports as JSON to w.
func formatCheckJSON(w io.Writer, reports []checker.DocumentReport, totals domain.Summary) {
	if reports == nil {
		reports = []checker.DocumentReport{}
	}
	writeJSON(w, checkJSONResponse{Files: reports, Summary: totals})
}

// formatCheckHuman writes the reports as human-readable text to w. Issues
// without a line number are document-level.
func formatCheckHuman(w io.Writer, reports []checker.DocumentReport, totals domain.Summary) {
	for _, rep := range reports {
		for _, issue := range rep.Issues {
			if issue.Line > 0 {
				fmt.Fprintf(w, "%s:%d: [%s] %s: %s\n", rep.Path, issue.Line, issue.Severity, issue.RuleID, issue.Message)
			} else {
				fmt.Fprintf(w, "%s: [%s] %s: %s\n", rep.Path, issue.Severity, issue.RuleID, issue.Message)
			}
		}
	}
	if totals.Total > 0 {
		fmt.Fprintf(w, "\n%d error(s), %d warning(s), %d info\n", totals.Errors, totals.Warnings, totals.Info)
	}
}

// runCheckAndReport validates the documents and formats the results as JSON
// or human-readable text. It returns an IssuesDetectedError when errors or
// warnings are present; info-level issues alone do not fail the run.
func runCheckAndReport(cmd *cobra.Command, runner CheckRunner, args []string, opts CheckOptions, jsonOutput bool) error {
	var reports []checker.DocumentReport

	if readsStdin(args) {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return &ContextError{Op: "reading stdin", Err: err}
		}
		report, err := runner.CheckContent(cmd.Context(), stdinName, raw, opts)
		if err != nil {
			return err
		}
		reports = []checker.DocumentReport{*report}
	} else {
		var err error
		reports, err = runner.CheckPaths(cmd.Context(), args, opts)
		if err != nil {
			return err
		}
	}

	totals := sumSummaries(reports)

	if jsonOutput {
		formatCheckJSON(cmd.OutOrStdout(), reports, totals)
	} else {
		formatCheckHuman(cmd.OutOrStdout(), reports, totals)
	}

	if totals.Errors > 0 || totals.Warnings > 0 {
		return &IssuesDetectedError{Errors: totals.Errors, Warnings: totals.Warnings}
	}
	return nil
}

// readsStdin reports whether the argument list selects standard input.
func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// NewCheckCmd creates the check command with the given runner.
func NewCheckCmd(runner CheckRunner) *cobra.Command {
	var jsonOutput bool
	var configPath string
	var probeLinks bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:          "check [files...]",
		Short:        "Validate Markdown documents",
		Long:         "Validate Markdown documents against the built-in rules. Reads standard input when no files are given or a single - is passed.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := CheckOptions{
				ConfigPath: configPath,
				ProbeLinks: probeLinks,
				Timeout:    timeout,
			}
			return runCheckAndReport(cmd, runner, args, opts, jsonOutput || GetJSON())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: nearest .mdvet.yml)")
	cmd.Flags().BoolVar(&probeLinks, "probe-links", false, "Probe link and image targets on disk and over HTTP")
	cmd.Flags().DurationVar(&timeout, "timeout", linkprobe.DefaultTimeout, "Timeout per external link probe")

	return cmd
}
