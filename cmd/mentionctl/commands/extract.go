package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xyz-asif/mentionlookup/internal/features/mentions"
)

func newExtractCmd() *cobra.Command {
	var unique, plain bool

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "List the @-mentions in text without looking them up",
		Example: `  mentionctl extract "Meeting with @john and @jane tomorrow"
  pbpaste | mentionctl extract --unique --plain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			found := mentions.ExtractMentions(text)
			if unique {
				found = mentions.UniqueMentions(found)
			}

			out := cmd.OutOrStdout()
			if plain {
				for _, m := range found {
					fmt.Fprintln(out, m)
				}
				return nil
			}

			if len(found) == 0 {
				fmt.Fprintln(out, "No mentions found.")
				return nil
			}
			rows := make([][]string, len(found))
			for i, m := range found {
				rows[i] = []string{strconv.Itoa(i + 1), m}
			}
			printTable(out, []string{"#", "Mention"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unique, "unique", false, "Drop repeated mentions")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print one mention per line")
	return cmd
}
