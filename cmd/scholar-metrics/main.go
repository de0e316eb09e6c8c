// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-metrics CLI: a two-stage
// batch pipeline that cleans a raw researcher bibliometrics CSV and fits a
// linear model of total citations against document count, plus an optional
// queryable index of the cleaned dataset.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-metrics/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholar-metrics CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-metrics",
	Short: "Clean researcher bibliometrics and fit a citations model",
	Long: `scholar-metrics processes a researcher bibliometrics dataset in two
independent stages. The clean stage normalizes a raw CSV into a canonical
typed dataset; the fit stage computes an ordinary least squares model of
total citations against document count and writes plots and a summary
report. The stages couple only through the cleaned dataset file, so each
can be rerun on its own.

The store subcommands maintain an optional SQLite index of the cleaned
dataset for ad-hoc queries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-metrics.yaml or ~/.config/scholar-metrics/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-metrics")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-metrics"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_METRICS")
	viper.AutomaticEnv()

	defaults := types.DefaultPipelineConfig()
	viper.SetDefault("clean.input_path", defaults.Clean.InputPath)
	viper.SetDefault("clean.output_path", defaults.Clean.OutputPath)
	viper.SetDefault("fit.input_path", defaults.Fit.InputPath)
	viper.SetDefault("fit.scatter_path", defaults.Fit.ScatterPath)
	viper.SetDefault("fit.regression_path", defaults.Fit.RegressionPath)
	viper.SetDefault("fit.report_path", defaults.Fit.ReportPath)
	viper.SetDefault("fit.curve_samples", defaults.Fit.CurveSamples)
	viper.SetDefault("fit.top_k", defaults.Fit.TopK)
	viper.SetDefault("store.dataset_path", defaults.Store.DatasetPath)
	viper.SetDefault("store.index_dir", defaults.Store.IndexDir)
	viper.SetDefault("store.max_results", defaults.Store.MaxResults)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the full configuration from viper (defaults,
// config file, environment).
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Clean: types.CleanConfig{
			InputPath:  viper.GetString("clean.input_path"),
			OutputPath: viper.GetString("clean.output_path"),
		},
		Fit: types.FitConfig{
			InputPath:      viper.GetString("fit.input_path"),
			ScatterPath:    viper.GetString("fit.scatter_path"),
			RegressionPath: viper.GetString("fit.regression_path"),
			ReportPath:     viper.GetString("fit.report_path"),
			CurveSamples:   viper.GetInt("fit.curve_samples"),
			TopK:           viper.GetInt("fit.top_k"),
		},
		Store: types.StoreConfig{
			DatasetPath: viper.GetString("store.dataset_path"),
			IndexDir:    viper.GetString("store.index_dir"),
			MaxResults:  viper.GetInt("store.max_results"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
