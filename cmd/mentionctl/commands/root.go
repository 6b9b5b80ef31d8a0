// Package commands implements the mentionctl command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xyz-asif/mentionlookup/internal/pkg/export"
	"github.com/xyz-asif/mentionlookup/internal/pkg/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// clipboard is swapped out in tests.
var clipboard = export.SystemClipboard

// NewRootCmd builds the mentionctl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mentionctl",
		Short: "Find and resolve @-mentions in text",
		Long: `mentionctl extracts @-mentions from text and resolves them against the
Jira user directory configured through JIRA_BASE_URL, JIRA_EMAIL and
JIRA_API_TOKEN (a .env file in the working directory is read too).

Text is taken from the first argument, or from stdin when none is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args. Ctrl+C cancels in-flight
// lookups.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// commandLogger writes to the command's stderr so stdout stays pipeable.
func commandLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	return logger.NewWithWriter(cmd.ErrOrStderr(), logger.ParseLevel(level), format)
}

// inputText returns args[0] or, without arguments, all of stdin.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
