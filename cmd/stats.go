package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/navyranks/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the high score and best run",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		be, err := openBackend(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer be.Close()

		ctx := cmd.Context()
		high, err := be.Records.HighScore(ctx)
		if err != nil {
			return fmt.Errorf("read high score: %w", err)
		}
		best, err := be.Records.BestRun(ctx)
		if err != nil {
			return fmt.Errorf("read best run: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "High score: %d\n", high)
		if best == nil {
			fmt.Fprintln(out, "Best run:   none yet")
			return nil
		}
		fmt.Fprintf(out, "Best run:   %d correct, %d%% accuracy, %s\n",
			best.Score, best.Accuracy, quiz.FormatBestTime(best.ElapsedMs))
		return nil
	},
}
