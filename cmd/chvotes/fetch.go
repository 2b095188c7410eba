package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chvotes/chvotes/internal/config"
	"github.com/chvotes/chvotes/internal/fetch"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the vote dataset and canton boundaries",
		Long: `Fetch downloads the referendum vote table (.px) from the Federal
Statistical Office and the canton boundaries GeoJSON into the data
directory. Files that are already present are skipped unless --force
is given.

Examples:
  # Download missing assets
  chvotes fetch

  # Re-download everything
  chvotes fetch --force`,
		Args: cobra.NoArgs,
		RunE: runFetchCmd,
	}

	cmd.Flags().Bool("force", false, "Re-download assets even if present")
	cmd.Flags().Duration("timeout", config.DefaultFetchTimeout, "Timeout per download request")
	cmd.Flags().String("data-dir", "", "Target directory (default: XDG data directory)")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if t, _ := cmd.Flags().GetDuration("timeout"); t > 0 {
		cfg.FetchTimeout = t
	}

	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = config.XDGDataDir()
	}

	assets := []fetch.Asset{
		{
			Name:   "votes",
			URL:    cfg.VotesURL,
			Target: filepath.Join(dataDir, config.VotesFileName),
		},
		{
			Name:   "boundaries",
			URL:    cfg.BoundariesURL,
			Target: filepath.Join(dataDir, config.BoundariesFileName),
			Unzip:  filepath.Ext(cfg.BoundariesURL) == ".zip",
		},
	}

	// Cancel in-flight downloads on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fetch.New(cfg.FetchTimeout, logger)
	f.Force, _ = cmd.Flags().GetBool("force")
	if err := f.FetchAll(ctx, assets); err != nil {
		return err
	}

	logger.Info("data ready", "dir", dataDir)
	return nil
}
