package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chvotes/chvotes/internal/aggregate"
)

// NewTitlesCmd creates the titles command.
func NewTitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List referendum titles in the dataset",
		Long: `Titles lists the referendum titles of the loaded dataset in source
order, optionally filtered by a case-insensitive substring. The printed
index can be passed to aggregate/export via --index.

Examples:
  # List every referendum
  chvotes titles

  # Only titles mentioning a topic
  chvotes titles --filter "Energiegesetz"`,
		Args: cobra.NoArgs,
		RunE: runTitlesCmd,
	}

	cmd.Flags().StringP("filter", "f", "", "Case-insensitive substring filter")
	cmd.Flags().StringP("dataset", "d", "", "Path to the .px vote table (default: downloaded copy)")

	return cmd
}

// runTitlesCmd executes the titles command.
func runTitlesCmd(cmd *cobra.Command, _ []string) error {
	setupLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("dataset"); path != "" {
		cfg.DatasetPath = path
	}
	filter, _ := cmd.Flags().GetString("filter")

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	idx := aggregate.NewIndex(ds)
	matches := idx.Titles(filter)
	if len(matches) == 0 {
		return fmt.Errorf("no title matches %q: %w", filter, aggregate.ErrSelectionNotFound)
	}

	// Indices refer to the unfiltered list so they stay valid for
	// --index regardless of the filter used here.
	position := make(map[string]int, ds.Len())
	for i, t := range ds.Titles() {
		if _, seen := position[t]; !seen {
			position[t] = i
		}
	}
	for _, t := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", position[t], t)
	}
	return nil
}
