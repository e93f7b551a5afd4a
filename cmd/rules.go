package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eykd/mdvet-go/internal/validator"
)

// RuleLister reports the rules a check run would use.
type RuleLister interface {
	Rules(ctx context.Context, configPath string) ([]validator.RuleInfo, error)
}

// rulesJSONResponse is the JSON output structure for the rules command.
type rulesJSONResponse struct {
	Rules []validator.RuleInfo `json:"rules"`
}

// formatRulesHuman writes the rule table as human-readable text to w.
func formatRulesHuman(w io.Writer, infos []validator.RuleInfo) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEVERITY\tFIXABLE\tENABLED\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Severity, yesNo(info.Fixable), yesNo(info.Enabled), info.Description)
	}
	tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// NewRulesCmd creates the rules command with the given lister.
func NewRulesCmd(lister RuleLister) *cobra.Command {
	var jsonOutput bool
	var configPath string

	cmd := &cobra.Command{
		Use:          "rules",
		Short:        "List the built-in validation rules",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := lister.Rules(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), rulesJSONResponse{Rules: infos})
			} else {
				formatRulesHuman(cmd.OutOrStdout(), infos)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: nearest .mdvet.yml)")

	return cmd
}
