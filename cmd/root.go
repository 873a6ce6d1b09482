package cmd

import (
	"context"
	"os"

	"qa-preview/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "qa-preview",
	Short: "Local preview server for pre-built single-page apps",
	Long: `qa-preview serves a production build of a single-page application for manual QA.
It falls back to index.html for client-side routes, can add CORS and no-cache
headers, picks the first free port and prints test instructions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		// Console logger at debug level for ISO8601 timestamps, the reader is a human
		l := logger.NewConsole()
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

// profileArg returns the optional profile positional argument at index i.
func profileArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
