// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package regress

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-metrics/pkg/types"
)

// fakeRenderer implements Renderer for testing. It records the data and
// paths it was handed and touches the target files.
type fakeRenderer struct {
	scatterData    PlotData
	scatterPath    string
	regressionData PlotData
	regressionPath string
	err            error
}

func (f *fakeRenderer) RenderScatter(data PlotData, path string) error {
	if f.err != nil {
		return f.err
	}
	f.scatterData = data
	f.scatterPath = path
	return os.WriteFile(path, []byte("png"), 0o644)
}

func (f *fakeRenderer) RenderRegression(data PlotData, path string) error {
	if f.err != nil {
		return f.err
	}
	f.regressionData = data
	f.regressionPath = path
	return os.WriteFile(path, []byte("png"), 0o644)
}

func TestReport_Format(t *testing.T) {
	m := Model{Intercept: 1.5, Slope: 2.25, RSquared: 0.987654321}

	want := "Linear Regression: total_citations ~ document_count\n" +
		"Intercept (β0): 1.500000\n" +
		"Coefficient (β1): 2.250000\n" +
		"R-squared: 0.987654\n" +
		"\n" +
		"Model equation:\n" +
		"total_citations = 1.500000 + 2.250000 × document_count\n"

	assert.Equal(t, want, Report(m))
}

func TestReport_Deterministic(t *testing.T) {
	m := Model{Intercept: -0.333333333, Slope: 7.1, RSquared: 0.5}
	assert.Equal(t, Report(m), Report(m))
}

func TestBuildPlotData(t *testing.T) {
	recs := []types.Researcher{
		{Name: "Ada", DocumentCount: 5, TotalCitations: 120},
		{Name: "Grace", DocumentCount: 3, TotalCitations: 80},
	}
	top := recs[:1]
	curve := []Point{{X: 3, Y: 80}, {X: 5, Y: 120}}

	data := BuildPlotData(recs, top, curve)

	require.Len(t, data.Points, 2)
	assert.Equal(t, Point{X: 5, Y: 120}, data.Points[0])
	require.Len(t, data.Highlights, 1)
	assert.Equal(t, "Ada", data.Highlights[0].Label)
	assert.Equal(t, curve, data.Curve)
	assert.Equal(t, "Number of Documents", data.XLabel)
	assert.Equal(t, "Total Citations", data.YLabel)
}

func writeCleanDataset(t *testing.T, dir string, rows string) string {
	t.Helper()
	path := filepath.Join(dir, "clean.csv")
	content := "researcher_name,document_count,total_citations\n" + rows
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fitConfig(dir, input string) types.FitConfig {
	return types.FitConfig{
		InputPath:      input,
		ScatterPath:    filepath.Join(dir, "scatter.png"),
		RegressionPath: filepath.Join(dir, "regression.png"),
		ReportPath:     filepath.Join(dir, "reports", "summary.txt"),
		CurveSamples:   100,
		TopK:           3,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeCleanDataset(t, dir,
		"Ada,1,2\nGrace,2,4\nAlan,3,6\nEdsger,4,8\nBarbara,5,10\n")
	cfg := fitConfig(dir, input)

	var log bytes.Buffer
	r := &fakeRenderer{}
	m, err := Run(cfg, r, &log)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, m.Slope, tolerance)
	assert.InDelta(t, 1.0, m.RSquared, tolerance)

	// Renderer received the full point set, top 3, and a curve only on the
	// regression plot.
	assert.Len(t, r.scatterData.Points, 5)
	assert.Len(t, r.scatterData.Highlights, 3)
	assert.Empty(t, r.scatterData.Curve)
	assert.Len(t, r.regressionData.Curve, 100)
	assert.Equal(t, "Barbara", r.scatterData.Highlights[0].Label)

	report, err := os.ReadFile(cfg.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "R-squared: 1.000000")
	assert.Contains(t, string(report), "Model equation:")

	out := log.String()
	assert.Contains(t, out, "Regression complete.")
	assert.Contains(t, out, cfg.ScatterPath)
	assert.Contains(t, out, cfg.RegressionPath)
	assert.Contains(t, out, cfg.ReportPath)
}

func TestRun_EmptyDataset(t *testing.T) {
	dir := t.TempDir()
	input := writeCleanDataset(t, dir, "")
	cfg := fitConfig(dir, input)

	var log bytes.Buffer
	_, err := Run(cfg, &fakeRenderer{}, &log)
	require.ErrorIs(t, err, ErrEmptyDataset)

	// A fatal stage writes nothing.
	_, statErr := os.Stat(cfg.ReportPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_DegenerateFitWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeCleanDataset(t, dir, "Ada,1,7\nGrace,2,7\nAlan,3,7\n")
	cfg := fitConfig(dir, input)

	var log bytes.Buffer
	_, err := Run(cfg, &fakeRenderer{}, &log)
	require.ErrorIs(t, err, ErrDegenerateFit)

	_, statErr := os.Stat(cfg.ScatterPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(cfg.ReportPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_RendererFailure(t *testing.T) {
	dir := t.TempDir()
	input := writeCleanDataset(t, dir, "Ada,1,2\nGrace,2,4\nAlan,3,6\n")
	cfg := fitConfig(dir, input)

	var log bytes.Buffer
	_, err := Run(cfg, &fakeRenderer{err: errors.New("no canvas")}, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering scatter plot")

	_, statErr := os.Stat(cfg.ReportPath)
	assert.True(t, os.IsNotExist(statErr), "report must not be written after a render failure")
}

func TestRun_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.csv")
	require.NoError(t, os.WriteFile(path, []byte("researcher_name,document_count\nAda,5\n"), 0o644))
	cfg := fitConfig(dir, path)

	var log bytes.Buffer
	_, err := Run(cfg, &fakeRenderer{}, &log)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}
