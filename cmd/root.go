// Package cmd contains the CLI commands for the mdvet application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// Version is the release version, set at build time via ldflags.
var Version = "dev"

// verbose holds the global --verbose flag state.
var verbose bool

// jsonGlobal holds the global --json flag state.
var jsonGlobal bool

func init() {
	rootCmd = BuildCommandTree(nil, nil, nil)
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON reports whether JSON output was requested globally.
func GetJSON() bool {
	return jsonGlobal
}

// NewRootCmd creates a new root command instance without subcommands.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mdvet",
		Short:         "Validate and fix Markdown documents",
		Long:          "mdvet checks Markdown documents for structural and formatting problems, applies mechanical fixes, and can serve the validator over HTTP.",
		Version:       Version,
		SilenceErrors: true,
	}

	// Persistent flags are available to all subcommands.
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output to stderr")
	cmd.PersistentFlags().BoolVar(&jsonGlobal, "json", false, "Output results as JSON")

	return cmd
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
