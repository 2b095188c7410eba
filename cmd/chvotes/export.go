package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/export"
	"github.com/chvotes/chvotes/internal/geometry"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export per-canton results as GeoJSON",
		Long: `Export aggregates a referendum and writes a GeoJSON FeatureCollection
with one feature per canton. Properties are NAME, YES, NO, TOTAL, and
YES_PCT; YES_PCT is omitted for cantons without data and geometry is
omitted for cantons absent from the boundaries file.

Examples:
  # Export the first referendum with boundaries
  chvotes export --out kantone_votes.geojson

  # Select by title substring, custom boundaries file
  chvotes export --filter "Energiegesetz" --boundaries kantone.geojson`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	addSelectionFlags(cmd)
	cmd.Flags().StringP("out", "o", "kantone_votes.geojson", "Output GeoJSON file path")
	cmd.Flags().StringP("boundaries", "b", "",
		"Canton boundaries GeoJSON (default: downloaded copy; \"none\" skips geometry)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applySelectionFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	boundariesFlag, _ := cmd.Flags().GetString("boundaries")
	if boundariesFlag != "" && boundariesFlag != "none" {
		cfg.BoundariesPath = boundariesFlag
	}
	outPath, _ := cmd.Flags().GetString("out")

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	ref, err := selectReferendum(aggregate.NewIndex(ds), cfg)
	if err != nil {
		return err
	}
	logger.Info("selected referendum", "title", ref.Title, "rows", len(ref.Rows))

	var boundaries geometry.Source
	if boundariesFlag != "none" {
		boundaries, err = geometry.Load(cfg.BoundariesFile())
		if err != nil {
			return err
		}
		logger.Debug("loaded boundaries", "cantons", len(boundaries))
	}

	result := aggregate.Build(ref.Rows, aggregate.Options{RecoverMissing: cfg.RecoverMissing})
	for _, warn := range result.Warnings {
		logger.Warn("data quality", "finding", warn.String())
	}

	f, err := os.Create(outPath) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close() //nolint:errcheck // Close error surfaces via Sync below

	if err := export.WriteGeoJSON(f, result, boundaries); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", outPath, err)
	}

	logger.Info("GeoJSON exported", "path", outPath, "features", len(result.Records))
	return nil
}
