// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CleanConfig holds settings for the cleaning stage.
type CleanConfig struct {
	// InputPath is the raw researcher CSV to clean.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where the cleaned CSV is written. Its parent directory
	// is created if absent.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// FitConfig holds settings for the fitting and reporting stage.
type FitConfig struct {
	// InputPath is the cleaned CSV produced by the cleaning stage.
	InputPath string `json:"input_path" yaml:"input_path"`

	// ScatterPath is where the scatter plot image is written.
	ScatterPath string `json:"scatter_path" yaml:"scatter_path"`

	// RegressionPath is where the regression plot image is written.
	RegressionPath string `json:"regression_path" yaml:"regression_path"`

	// ReportPath is where the plain-text model summary is written.
	ReportPath string `json:"report_path" yaml:"report_path"`

	// CurveSamples is the number of evenly spaced predictor samples in the
	// prediction curve (default 100).
	CurveSamples int `json:"curve_samples" yaml:"curve_samples"`

	// TopK is the number of most-cited researchers to highlight (default 3).
	TopK int `json:"top_k" yaml:"top_k"`
}

// StoreConfig holds settings for the dataset index.
type StoreConfig struct {
	// DatasetPath is the cleaned CSV to ingest.
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`

	// IndexDir is the directory holding the SQLite database and exports.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Clean CleanConfig `json:"clean" yaml:"clean"`
	Fit   FitConfig   `json:"fit" yaml:"fit"`
	Store StoreConfig `json:"store" yaml:"store"`
}

// Default paths for the pipeline. The stages run argument-free against
// these unless overridden by config file, environment, or flags.
const (
	DefaultRawInputPath    = "data/raw/researchers.csv"
	DefaultCleanOutputPath = "data/processed/researchers_clean.csv"
	DefaultScatterPlotPath = "outputs/plots/scatter_documents_vs_citations.png"
	DefaultRegressionPath  = "outputs/plots/regression_line.png"
	DefaultSummaryPath     = "outputs/reports/regression_summary.txt"
	DefaultIndexDir        = "data/index"
	DefaultCurveSamples    = 100
	DefaultTopK            = 3
	DefaultStoreMaxResults = 20
)

// DefaultPipelineConfig returns a PipelineConfig populated with the
// default paths and parameters.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Clean: CleanConfig{
			InputPath:  DefaultRawInputPath,
			OutputPath: DefaultCleanOutputPath,
		},
		Fit: FitConfig{
			InputPath:      DefaultCleanOutputPath,
			ScatterPath:    DefaultScatterPlotPath,
			RegressionPath: DefaultRegressionPath,
			ReportPath:     DefaultSummaryPath,
			CurveSamples:   DefaultCurveSamples,
			TopK:           DefaultTopK,
		},
		Store: StoreConfig{
			DatasetPath: DefaultCleanOutputPath,
			IndexDir:    DefaultIndexDir,
			MaxResults:  DefaultStoreMaxResults,
		},
	}
}
