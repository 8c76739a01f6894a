package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/navyranks/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "navyranks",
	Short: "Flashcard quiz for Royal Canadian Navy ranks",
	Long:  "Navy Ranks shows a rank insignia and asks you to pick its name from four choices.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NAVYRANKS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a dotenv file")
	rootCmd.PersistentFlags().String("ranks", "", "Path to a YAML or JSON rank catalog")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep records in memory only")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(ranksCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration and applies the persistent flags on top.
// Flags win over the config file and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{ConfigFile: cfgFile, EnvFile: envFile})
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Store.Backend = config.BackendSQLite
		cfg.Store.Path = p
	}
	if p, _ := cmd.Flags().GetString("ranks"); p != "" {
		cfg.Ranks.File = p
	}
	if eph, _ := cmd.Flags().GetBool("ephemeral"); eph {
		cfg.Store.Backend = config.BackendMemory
	}
	return cfg, nil
}
