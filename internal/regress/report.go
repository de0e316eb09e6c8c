// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package regress

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/scholar-metrics/internal/table"
	"github.com/pdiddy/scholar-metrics/pkg/types"
)

// modelLabel is the descriptive line opening the summary report.
const modelLabel = "Linear Regression: total_citations ~ document_count"

// Point is one (predictor, response) pair handed to the Renderer.
type Point struct {
	X float64
	Y float64
}

// LabeledPoint is a highlighted point with an optional display name.
type LabeledPoint struct {
	Point
	Label string
}

// PlotData carries everything a Renderer needs as plain values: the full
// point set, the highlight subset, and the fitted curve. The core never
// sees rendering concerns; renderers never recompute selections.
type PlotData struct {
	Points     []Point
	Highlights []LabeledPoint
	Curve      []Point
	XLabel     string
	YLabel     string
	Title      string
}

// Renderer turns PlotData into image files. The production implementation
// lives in internal/plotviz; tests substitute a fake.
type Renderer interface {
	// RenderScatter writes the scatter image (points plus highlights).
	RenderScatter(data PlotData, path string) error

	// RenderRegression writes the scatter image with the fitted curve
	// overlaid.
	RenderRegression(data PlotData, path string) error
}

// Report renders the model summary in its fixed textual form, every value
// at six fractional digits.
func Report(m Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", modelLabel)
	fmt.Fprintf(&b, "Intercept (β0): %.6f\n", m.Intercept)
	fmt.Fprintf(&b, "Coefficient (β1): %.6f\n", m.Slope)
	fmt.Fprintf(&b, "R-squared: %.6f\n", m.RSquared)
	b.WriteString("\nModel equation:\n")
	fmt.Fprintf(&b, "total_citations = %.6f + %.6f × document_count\n", m.Intercept, m.Slope)
	return b.String()
}

// BuildPlotData assembles the renderer input from the records, highlight
// subset, and curve.
func BuildPlotData(records, top []types.Researcher, curve []Point) PlotData {
	data := PlotData{
		Curve:  curve,
		XLabel: "Number of Documents",
		YLabel: "Total Citations",
	}
	for _, r := range records {
		data.Points = append(data.Points, Point{X: r.DocumentCount, Y: r.TotalCitations})
	}
	for _, r := range top {
		data.Highlights = append(data.Highlights, LabeledPoint{
			Point: Point{X: r.DocumentCount, Y: r.TotalCitations},
			Label: r.Name,
		})
	}
	return data
}

// Run executes the fitting stage end to end: load records, fit the model,
// select the top-cited subset, build the prediction curve, render both
// plots, and write the summary report. Completion lines naming each
// artifact go to w. Any taxonomy error aborts before artifacts are
// written, leaving prior outputs untouched.
func Run(cfg types.FitConfig, r Renderer, w io.Writer) (Model, error) {
	records, err := Load(cfg.InputPath)
	if err != nil {
		return Model{}, err
	}
	if len(records) == 0 {
		return Model{}, fmt.Errorf("%w: %s has no usable records", ErrEmptyDataset, cfg.InputPath)
	}

	model, err := Fit(records)
	if err != nil {
		return Model{}, err
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = types.DefaultTopK
	}
	samples := cfg.CurveSamples
	if samples <= 0 {
		samples = types.DefaultCurveSamples
	}

	top := TopCited(records, topK)
	curve := Curve(records, model, samples)
	data := BuildPlotData(records, top, curve)

	scatterData := data
	scatterData.Curve = nil
	scatterData.Title = "Scatter Plot: Documents vs Total Citations"
	if err := r.RenderScatter(scatterData, cfg.ScatterPath); err != nil {
		return model, fmt.Errorf("rendering scatter plot: %w", err)
	}

	data.Title = "Regression Line: Documents vs Total Citations"
	if err := r.RenderRegression(data, cfg.RegressionPath); err != nil {
		return model, fmt.Errorf("rendering regression plot: %w", err)
	}

	if err := table.WriteFileAtomic(cfg.ReportPath, []byte(Report(model))); err != nil {
		return model, fmt.Errorf("writing summary report: %w", err)
	}

	fmt.Fprintln(w, "Regression complete.")
	fmt.Fprintf(w, "Scatter saved:    %s\n", cfg.ScatterPath)
	fmt.Fprintf(w, "Regression saved: %s\n", cfg.RegressionPath)
	fmt.Fprintf(w, "Report saved:     %s\n", cfg.ReportPath)
	return model, nil
}
