package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errResetNotConfirmed = errors.New("refusing to reset records without --yes")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored high score and best run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errResetNotConfirmed
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		be, err := openBackend(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer be.Close()

		if err := be.Records.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset records: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Records cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
