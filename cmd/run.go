package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/navyranks/internal/app"
	"github.com/abhisek/navyranks/internal/logger"
	"github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/ranks"
)

// runApp opens the store, builds the quiz controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	entries, err := ranks.Load(cfg.Ranks.File)
	if err != nil {
		return fmt.Errorf("load ranks: %w", err)
	}

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.Close()

	ctrl, err := quiz.New(ctx, entries, quiz.Options{
		Records: be.Records,
		Runs:    be.Runs,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("build quiz: %w", err)
	}

	log.Info("starting",
		zap.String("version", version),
		zap.String("backend", cfg.Store.Backend),
		zap.Int("ranks", len(entries)))

	return app.Run(app.Options{
		Controller:   ctrl,
		Runs:         be.Runs,
		TickInterval: cfg.Quiz.TickInterval,
		Logger:       log,
	})
}
