// Package main provides the entry point for the chvotes CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chvotes/chvotes/internal/config"
	"github.com/chvotes/chvotes/internal/dataset"
	"github.com/chvotes/chvotes/internal/log"
	"github.com/chvotes/chvotes/internal/model"
)

// NewRootCmd creates the root command for chvotes.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chvotes",
		Short: "Aggregate Swiss referendum results per canton",
		Long: `chvotes loads the Federal Statistical Office referendum dataset and
produces one YES/NO/TOTAL record per canton per referendum.

Canton names are matched across German, French, Italian, and Romansh
spellings. Cantons the dataset only reports at district or municipality
level are reconstructed by summing their sub-area rows.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .chvotes in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewTitlesCmd())
	cmd.AddCommand(NewAggregateCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger configures the default logger from the verbose flag.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose = false
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}

// loadConfig builds the runtime config: defaults, then the optional
// configuration file. Flag values are merged by the individual
// commands because each command owns a different flag subset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		explicit = ""
	}
	path := config.FindConfigFile(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("configuration file %s: %w", explicit, config.ErrConfigNotFound)
		}
		return cfg, nil
	}

	cf, err := config.LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return cfg, nil
		}
		return nil, err
	}
	if err := cf.Apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	slog.Debug("loaded configuration file", "path", path)
	return cfg, nil
}

// loadDataset parses the vote table configured in cfg.
func loadDataset(cfg *config.Config) (*model.Dataset, error) {
	path := cfg.DatasetFile()
	ds, err := dataset.LoadFile(path, cfg.Language)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded dataset", "path", path, "referendums", ds.Len())
	return ds, nil
}
