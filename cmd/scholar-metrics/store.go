// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-metrics/internal/store"
	"github.com/pdiddy/scholar-metrics/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Maintain and query the SQLite index of the cleaned dataset",
	Long: `Store indexes the cleaned researcher dataset in a local SQLite
database for ad-hoc queries. The index is a convenience layer downstream
of the clean stage; the fit stage never reads it.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the cleaned dataset into the index",
	Long: `Ingest reads the cleaned CSV and replaces the index contents with it
in a single transaction, preserving dataset order for tie-breaking.`,
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	cfg := storeConfig(cmd)
	s, err := store.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Ingest(context.Background(), cfg.DatasetPath, os.Stdout)
	return err
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "List researchers ranked by total citations",
	RunE:  runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	cfg := storeConfig(cmd)
	s, err := store.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	name, _ := cmd.Flags().GetString("name")
	limit, _ := cmd.Flags().GetInt("limit")
	results, err := s.Query(context.Background(), store.QueryOptions{
		NameSubstring: name,
		Limit:         limit,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []types.Researcher, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %10s  %10s\n", "Rank", "Name", "Documents", "Citations")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for i, r := range results {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %10.0f  %10.0f\n",
			i+1, name, r.DocumentCount, r.TotalCitations)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the indexed dataset to YAML",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	cfg := storeConfig(cmd)
	s, err := store.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	path, err := s.ExportYAML(context.Background())
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// storeConfig merges the resolved configuration with flag overrides.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	cfg := pipelineConfig().Store
	if v, _ := cmd.Flags().GetString("dataset"); v != "" {
		cfg.DatasetPath = v
	}
	if v, _ := cmd.Flags().GetString("index-dir"); v != "" {
		cfg.IndexDir = v
	}
	return cfg
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("dataset", "", "cleaned CSV to index (overrides config)")
	storeCmd.PersistentFlags().String("index-dir", "", "index database directory (overrides config)")

	storeQueryCmd.Flags().String("name", "", "filter by name substring")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
