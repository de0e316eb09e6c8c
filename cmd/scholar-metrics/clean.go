// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-metrics/internal/cleanse"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize the raw researcher CSV into the canonical dataset",
	Long: `Clean reads the raw researcher CSV, trims and renames headers to
canonical snake_case names, coerces numeric cells (stripping % symbols,
turning unparsable values into nulls), drops rows missing document_count
or total_citations, and writes the cleaned dataset atomically.

Runs argument-free against the configured paths; --input and --output
override them.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig().Clean
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputPath = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputPath = v
	}

	_, err := cleanse.Run(cfg, os.Stdout)
	return err
}

func init() {
	cleanCmd.Flags().String("input", "", "raw researcher CSV (overrides config)")
	cleanCmd.Flags().String("output", "", "cleaned CSV destination (overrides config)")

	rootCmd.AddCommand(cleanCmd)
}
