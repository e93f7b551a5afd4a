package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/mdvet-go/internal/checker"
)

// FixRunner plans and applies mechanical fixes to files.
type FixRunner interface {
	Fix(ctx context.Context, paths []string, apply bool) (*checker.FixResult, error)
}

// formatLineList renders issue line numbers for human output.
func formatLineList(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	if len(lines) == 1 {
		return "line " + parts[0]
	}
	return "lines " + strings.Join(parts, ", ")
}

// formatFixHuman writes a fix plan or outcome as human-readable text to w.
func formatFixHuman(w io.Writer, result *checker.FixResult) {
	verb := "would fix"
	if result.Applied {
		verb = "fixed"
	}

	changed := 0
	for _, file := range result.Files {
		if !file.Changed {
			fmt.Fprintf(w, "%s: clean\n", file.Path)
			continue
		}
		changed++
		for _, fix := range file.Fixes {
			fmt.Fprintf(w, "%s: %s %s (%s)\n", file.Path, verb, fix.RuleID, formatLineList(fix.Lines))
		}
	}

	if result.Applied {
		fmt.Fprintf(w, "\n%d file(s) fixed\n", changed)
	} else {
		fmt.Fprintf(w, "\n%d file(s) would change\n", changed)
	}
}

// NewFixCmd creates the fix command with the given runner.
func NewFixCmd(runner FixRunner) *cobra.Command {
	var applyFlag bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "fix <files...>",
		Short:        "Apply mechanical fixes to Markdown documents",
		Long:         "Fix heading spacing, trailing hashes, hard tabs, trailing whitespace, and runs of blank lines. Reports the plan by default; --apply rewrites the files in place.",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Fix(cmd.Context(), args, applyFlag)
			if err != nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else {
				formatFixHuman(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyFlag, "apply", false, "Write the fixes (default is report only)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
