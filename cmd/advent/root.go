package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/pkg/config"
	"advent/pkg/logging"
	"advent/pkg/registry"
	"advent/pkg/y2022"
)

var (
	flagConfig  string
	flagData    string
	flagLog     string
	flagVerbose bool
	flagJSON    bool

	cfg    *config.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Run Advent of Code solutions",
	Long: `advent runs Advent of Code solutions against their inputs.

Every solution is checked against the sample input first; puzzle
answers are printed when a puzzle input file exists under the
data directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(".env"); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}

		// Flags win over file and environment.
		if flagData != "" {
			cfg.DataDir = flagData
		}
		if flagLog != "" {
			cfg.LogFile = flagLog
		}
		if flagVerbose {
			cfg.Verbose = true
		}

		logger, err = buildLogger(cfg)
		if err != nil {
			return err
		}
		return registerProblems()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&flagConfig, "config", "advent.yaml",
		"path to the configuration file",
	)
	rootCmd.PersistentFlags().StringVar(
		&flagData, "data", "",
		"override the input data directory",
	)
	rootCmd.PersistentFlags().StringVar(
		&flagLog, "log", "",
		"append structured JSON logs to this file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false,
		"enable debug logging",
	)
	rootCmd.PersistentFlags().BoolVar(
		&flagJSON, "json", false,
		"emit reports as JSON instead of tables",
	)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

// buildLogger returns the console logger, fanned out to a JSON
// file log when one is configured.
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	console := logging.NewConsoleLogger(cfg.Verbose)
	if cfg.LogFile == "" {
		return console, nil
	}

	jsonLogger, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath: cfg.LogFile,
		Level:      logging.LevelInfo,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}
	return logging.NewMultiLogger(console, jsonLogger), nil
}

func registerProblems() error {
	if err := y2022.Register(registry.Default); err != nil {
		return fmt.Errorf("failed to register problems: %w", err)
	}
	return nil
}
