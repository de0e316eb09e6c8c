// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package regress fits the one-predictor linear model of total citations
// against document count and derives the presentation artifacts: the
// top-cited highlight subset, the prediction curve, and the summary
// report. Rendering is delegated to a Renderer so the numeric core has no
// image dependency.
package regress

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/scholar-metrics/internal/cleanse"
	"github.com/pdiddy/scholar-metrics/internal/table"
	"github.com/pdiddy/scholar-metrics/pkg/types"
)

// ErrSchemaMismatch reports that a required canonical column is absent
// from the loaded dataset.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrEmptyDataset reports that zero usable records were loaded. A
// zero-point fit has no defined slope, so this is fatal.
var ErrEmptyDataset = errors.New("empty dataset")

// ErrDegenerateFit reports that the fit is ill-defined: the response has
// zero variance (R² denominator is zero) or the predictor has zero
// variance (slope denominator is zero). The stage aborts rather than
// reporting a misleading statistic.
var ErrDegenerateFit = errors.New("degenerate fit")

// Model is the fitted line for total_citations ~ document_count.
type Model struct {
	Intercept float64
	Slope     float64
	RSquared  float64
}

// Predict returns the fitted response for a predictor value.
func (m Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Load reads the cleaned dataset into typed records. It fails with
// ErrSchemaMismatch before any row is examined if either core column is
// missing. Rows whose core cells do not parse are skipped, mirroring the
// cleaner's filtering invariant.
func Load(path string) ([]types.Researcher, error) {
	t, err := table.Load(path)
	if err != nil {
		return nil, err
	}

	for _, col := range []string{types.ColDocumentCount, types.ColTotalCitations} {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: column %q absent from %s", ErrSchemaMismatch, col, path)
		}
	}

	var records []types.Researcher
	for i := range t.Rows {
		docs, okDocs := cleanse.CoerceNumeric(t.Cell(i, types.ColDocumentCount))
		cits, okCits := cleanse.CoerceNumeric(t.Cell(i, types.ColTotalCitations))
		if !okDocs || !okCits {
			continue
		}
		r := types.Researcher{
			Name:           t.Cell(i, types.ColResearcherName),
			DocumentCount:  docs,
			TotalCitations: cits,
		}
		if v, ok := cleanse.CoerceNumeric(t.Cell(i, types.ColCNCI)); ok {
			r.CNCI = &v
		}
		if v, ok := cleanse.CoerceNumeric(t.Cell(i, types.ColHIndex)); ok {
			r.HIndex = &v
		}
		if v, ok := cleanse.CoerceNumeric(t.Cell(i, types.ColPctOpenAccess)); ok {
			r.PctOpenAccess = &v
		}
		records = append(records, r)
	}
	return records, nil
}

// Fit computes the ordinary least squares line over all records and R² on
// the same records. Zero variance in either variable is fatal: the fit
// aborts with ErrDegenerateFit instead of dividing by zero.
func Fit(records []types.Researcher) (Model, error) {
	if len(records) == 0 {
		return Model{}, fmt.Errorf("%w: no records to fit", ErrEmptyDataset)
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.DocumentCount
		ys[i] = r.TotalCitations
	}

	xMean := stat.Mean(xs, nil)
	yMean := stat.Mean(ys, nil)
	var sxx, tss float64
	for i := range xs {
		dx := xs[i] - xMean
		dy := ys[i] - yMean
		sxx += dx * dx
		tss += dy * dy
	}
	if sxx == 0 {
		return Model{}, fmt.Errorf("%w: document_count has zero variance", ErrDegenerateFit)
	}
	if tss == 0 {
		return Model{}, fmt.Errorf("%w: total_citations has zero variance", ErrDegenerateFit)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Model{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  stat.RSquared(xs, ys, nil, alpha, beta),
	}, nil
}

// TopCited returns the k records with the largest TotalCitations, ordered
// descending. Ties keep their original relative order, so repeated runs
// select and order identically.
func TopCited(records []types.Researcher, k int) []types.Researcher {
	if k > len(records) {
		k = len(records)
	}
	if k <= 0 {
		return nil
	}
	sorted := make([]types.Researcher, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCitations > sorted[j].TotalCitations
	})
	return sorted[:k]
}

// Curve generates n evenly spaced predictor samples spanning the observed
// document_count range (inclusive) with fitted responses. n below 2
// cannot span a range and yields nil.
func Curve(records []types.Researcher, m Model, n int) []Point {
	if len(records) == 0 || n < 2 {
		return nil
	}
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.DocumentCount
	}
	grid := make([]float64, n)
	floats.Span(grid, floats.Min(xs), floats.Max(xs))

	curve := make([]Point, n)
	for i, x := range grid {
		curve[i] = Point{X: x, Y: m.Predict(x)}
	}
	return curve
}
