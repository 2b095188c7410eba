package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/cache"
	"github.com/chvotes/chvotes/internal/config"
	"github.com/chvotes/chvotes/internal/model"
	"github.com/chvotes/chvotes/internal/report"
)

// NewAggregateCmd creates the aggregate command.
func NewAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate one referendum into per-canton records",
		Long: `Aggregate selects a referendum and produces one YES/NO/TOTAL record
per canton. Cantons without a canton-level row are reconstructed from
their district/municipality rows unless --recover=false.

Examples:
  # First referendum in the dataset
  chvotes aggregate

  # Select by title substring, markdown report to a file
  chvotes aggregate --filter "Energiegesetz" --markdown -o report.md

  # Select by index, without sub-area recovery
  chvotes aggregate --index 42 --recover=false

  # Cache results between runs
  chvotes aggregate --filter "Energiegesetz" --cache-dir ~/.cache/chvotes`,
		Args: cobra.NoArgs,
		RunE: runAggregateCmd,
	}

	addSelectionFlags(cmd)

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Cache flags
	cmd.Flags().String("cache-dir", "",
		"Directory for the SQLite result cache (empty disables caching)")
	cmd.Flags().Bool("refresh", false,
		"Invalidate the cached result for the selection before aggregating")

	return cmd
}

// addSelectionFlags registers the flags shared by every command that
// selects a referendum.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("filter", "f", "",
		"Select the first title containing this substring (case-insensitive)")
	cmd.Flags().IntP("index", "i", -1,
		"Select the referendum at this position in the title list")
	cmd.Flags().BoolP("recover", "r", true,
		"Reconstruct missing canton totals from sub-area rows")
	cmd.Flags().StringP("dataset", "d", "", "Path to the .px vote table (default: downloaded copy)")
	cmd.Flags().String("lang", "", "PX keyword language (default from config, then \"de\")")
}

// applySelectionFlags merges the shared selection flags into cfg.
func applySelectionFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("filter"); v != "" {
		cfg.Filter = v
	}
	if v, _ := cmd.Flags().GetInt("index"); v >= 0 {
		cfg.Index = v
	}
	if cmd.Flags().Changed("recover") {
		cfg.RecoverMissing, _ = cmd.Flags().GetBool("recover")
	}
	if v, _ := cmd.Flags().GetString("dataset"); v != "" {
		cfg.DatasetPath = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Language = v
	}
}

// selectReferendum resolves the configured filter or index against the
// dataset. No selection at all means the first referendum.
func selectReferendum(idx *aggregate.Index, cfg *config.Config) (model.Referendum, error) {
	if cfg.Filter != "" {
		return idx.Select(cfg.Filter)
	}
	if cfg.Index >= 0 {
		return idx.SelectAt(cfg.Index)
	}
	return idx.SelectAt(0)
}

// runAggregateCmd executes the aggregate command.
func runAggregateCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applySelectionFlags(cmd, cfg)
	cfg.JSONReport, _ = cmd.Flags().GetBool("json")
	cfg.MarkdownReport, _ = cmd.Flags().GetBool("markdown")
	cfg.ReportFile, _ = cmd.Flags().GetString("output")
	cfg.CacheDir, _ = cmd.Flags().GetString("cache-dir")
	cfg.Refresh, _ = cmd.Flags().GetBool("refresh")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	ref, err := selectReferendum(aggregate.NewIndex(ds), cfg)
	if err != nil {
		return err
	}
	logger.Info("selected referendum", "title", ref.Title, "rows", len(ref.Rows))

	result, err := aggregateWithCache(cmd.Context(), cfg, ref, logger)
	if err != nil {
		return err
	}
	for _, warn := range result.Warnings {
		logger.Warn("data quality", "finding", warn.String())
	}

	w, closeFn, err := reportWriter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := w.Write(ref.Title, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// aggregateWithCache runs aggregation, consulting the SQLite cache
// when configured. Only the default recovery mode is cached; a
// --recover=false run always recomputes so the two modes can't
// contaminate each other under one title key.
func aggregateWithCache(ctx context.Context, cfg *config.Config, ref model.Referendum, logger *slog.Logger) (*aggregate.Result, error) {
	opts := aggregate.Options{RecoverMissing: cfg.RecoverMissing}

	if cfg.CacheDir == "" || !cfg.RecoverMissing {
		return aggregate.Build(ref.Rows, opts), nil
	}

	c, err := cache.Open(cfg.CacheDir, cache.DefaultOptions())
	if err != nil {
		return nil, err
	}
	defer c.Close() //nolint:errcheck // Best-effort close on read path

	if cfg.Refresh {
		if err := c.Invalidate(ctx, ref.Title); err != nil {
			return nil, err
		}
	} else if cached, hit, err := c.Get(ctx, ref.Title); err != nil {
		return nil, err
	} else if hit {
		logger.Debug("cache hit", "title", ref.Title)
		return cached, nil
	}

	result := aggregate.Build(ref.Rows, opts)
	if err := c.Put(ctx, ref.Title, result); err != nil {
		return nil, err
	}
	return result, nil
}

// reportWriter builds the report writer chain from the config: format
// selection plus optional file output alongside the terminal.
func reportWriter(stdout io.Writer, cfg *config.Config) (report.Writer, func(), error) {
	newWriter := func(out io.Writer) report.Writer {
		switch {
		case cfg.JSONReport:
			return report.NewJSONWriter(out, report.WithPrettyPrint())
		case cfg.MarkdownReport:
			return report.NewMarkdownWriter(out)
		default:
			return report.NewSimpleWriter(out)
		}
	}

	if cfg.ReportFile == "" {
		return newWriter(stdout), func() {}, nil
	}

	if dir := filepath.Dir(cfg.ReportFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return report.NewMultiWriter(newWriter(stdout), newWriter(f)),
		func() { _ = f.Close() }, nil
}
