// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-metrics/internal/plotviz"
	"github.com/pdiddy/scholar-metrics/internal/regress"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the citations model and write plots and a summary report",
	Long: `Fit loads the cleaned dataset, fits total_citations against
document_count by ordinary least squares, and writes three artifacts: a
scatter plot with the top-cited researchers emphasized, the same plot with
the fitted line overlaid, and a plain-text summary reporting intercept,
slope, and R-squared at six decimal places.

The stage fails before writing anything if a required column is missing,
the dataset is empty, or either variable has zero variance.`,
	RunE: runFit,
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig().Fit
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputPath = v
	}
	if v, _ := cmd.Flags().GetString("scatter"); v != "" {
		cfg.ScatterPath = v
	}
	if v, _ := cmd.Flags().GetString("regression"); v != "" {
		cfg.RegressionPath = v
	}
	if v, _ := cmd.Flags().GetString("report"); v != "" {
		cfg.ReportPath = v
	}
	if v, _ := cmd.Flags().GetInt("samples"); v > 0 {
		cfg.CurveSamples = v
	}
	if v, _ := cmd.Flags().GetInt("top"); v > 0 {
		cfg.TopK = v
	}

	_, err := regress.Run(cfg, plotviz.New(), os.Stdout)
	return err
}

func init() {
	fitCmd.Flags().String("input", "", "cleaned CSV (overrides config)")
	fitCmd.Flags().String("scatter", "", "scatter plot destination (overrides config)")
	fitCmd.Flags().String("regression", "", "regression plot destination (overrides config)")
	fitCmd.Flags().String("report", "", "summary report destination (overrides config)")
	fitCmd.Flags().Int("samples", 0, "prediction curve sample count (0 = default 100)")
	fitCmd.Flags().Int("top", 0, "highlighted researcher count (0 = default 3)")

	rootCmd.AddCommand(fitCmd)
}
