package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/navyranks/internal/ranks"
)

var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "List the rank catalog",
	Long:  "List the ranks the quiz draws from. With --ranks, the given file is loaded and validated instead of the built-in list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("ranks")
		entries, err := ranks.Load(path)
		if err != nil {
			return err
		}
		if err := ranks.Validate(entries); err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		for i, e := range entries {
			fmt.Fprintf(out, "%2d. %-32s %s\n", i+1, e.Name, e.Insignia)
		}
		if len(entries) < 4 {
			fmt.Fprintf(out, "note: only %d ranks, questions will show fewer than four choices\n", len(entries))
		}
		return nil
	},
}
