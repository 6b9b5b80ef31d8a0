package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyz-asif/mentionlookup/internal/config"
	"github.com/xyz-asif/mentionlookup/internal/features/mentions"
	"github.com/xyz-asif/mentionlookup/internal/pkg/export"
	"github.com/xyz-asif/mentionlookup/internal/routes"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

func newResolveCmd() *cobra.Command {
	var (
		tab         string
		copyKind    string
		timeout     time.Duration
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "resolve [text]",
		Short: "Resolve the @-mentions in text to directory users",
		Example: `  mentionctl resolve "cc @John Smith and @jane"
  mentionctl resolve --tab emails --copy emails < notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := mentions.ParseTab(tab)
			if err != nil {
				return err
			}
			if copyKind != "" {
				if _, err := mentions.ParseExportKind(copyKind); err != nil {
					return err
				}
			}

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			cfg := config.Load()
			if cmd.Flags().Changed("timeout") {
				cfg.LookupTimeout = timeout
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.LookupConcurrency = concurrency
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := commandLogger(cmd)
			svc := routes.NewMentionService(cfg, log, nil)

			result, err := svc.Run(cmd.Context(), mentions.StaticText(text))
			if err != nil {
				return err
			}

			if err := printResult(cmd, result, view); err != nil {
				return err
			}

			if copyKind != "" {
				body, err := result.Export(mentions.ExportKind(copyKind))
				if err != nil {
					return err
				}
				if err := export.Copy(clipboard(), body); err != nil {
					if errors.Is(err, apperrors.ErrClipboardFailed) {
						log.Warn("copy failed", "kind", copyKind, "error", err.Error())
						fmt.Fprintf(cmd.ErrOrStderr(), "Could not copy %s to the clipboard.\n", copyKind)
						return nil
					}
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to the clipboard.\n", copyKind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(mentions.TabUsers), "Result view (users|emails|names|accounts)")
	cmd.Flags().StringVar(&copyKind, "copy", "", "Copy a list to the clipboard (emails|names|accounts|mentions)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Per-lookup timeout (overrides LOOKUP_TIMEOUT)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "Concurrent lookups (overrides LOOKUP_CONCURRENCY)")
	return cmd
}

func printResult(cmd *cobra.Command, result *mentions.Result, tab mentions.Tab) error {
	out := cmd.OutOrStdout()

	switch {
	case len(result.Mentions) == 0:
		fmt.Fprintln(out, "No mentions found.")
	case result.Resolutions.Len() == 0:
		fmt.Fprintln(out, "No users resolved.")
	default:
		headers, rows, err := result.View(tab)
		if err != nil {
			return err
		}
		printTable(out, headers, rows)
	}

	if unresolved := result.Unresolved(); len(unresolved) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unresolved: %d\n", len(unresolved))
		for _, m := range unresolved {
			fmt.Fprintf(cmd.ErrOrStderr(), "  @%s\n", m)
		}
	}
	return nil
}
