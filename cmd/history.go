package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/store"
)

var errNoHistory = errors.New("run history requires the sqlite backend")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		be, err := openBackend(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer be.Close()

		if be.Runs == nil {
			return errNoHistory
		}

		runs, err := be.Runs.QueryRuns(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tWHEN\tSCORE\tACCURACY\tTIME\t")
		for _, r := range runs {
			mark := ""
			if r.NewBest {
				mark = "★"
			}
			fmt.Fprintf(w, "%d\t%s\t%d/%d\t%d%%\t%s\t%s\n",
				r.Sequence, r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Score, r.Total, r.Accuracy, quiz.FormatMillis(r.ElapsedMs), mark)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show (0 = all)")
}
