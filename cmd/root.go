package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerwise/internal/config"
	"github.com/abhisek/careerwise/internal/logging"
	"github.com/abhisek/careerwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "careerwise",
	Short: "Career guidance wizard for students and graduates",
	Long: "CareerWise builds your education and skills profile in the terminal and asks an AI " +
		"provider for career recommendations with learning paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("db", "", "Path to SQLite database file (overrides CAREERWISE_DB env var)")
	f.String("data-dir", "", "Directory with educationFields.json and formStructureByField.json")
	f.String("data-url", "", "Base URL to fetch boot data from instead of a directory")
	f.String("log-file", "", "Log file path (overrides CAREERWISE_LOG_FILE env var)")
	f.String("env-file", "", "Load environment variables from this file instead of ./.env")
	f.Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(llmCmd)
}

// loadConfig resolves the configuration from the persistent flags, the
// environment and the .env file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	var f config.Flags
	f.EnvFile, _ = flags.GetString("env-file")
	f.DataURL, _ = flags.GetString("data-url")
	f.DataDir, _ = flags.GetString("data-dir")
	f.DBPath, _ = flags.GetString("db")
	f.LogFile, _ = flags.GetString("log-file")
	f.Debug, _ = flags.GetBool("debug")
	return config.Load(f)
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return logger, nil
}
