// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plotviz renders the fitting stage's plot images with gonum/plot.
// It is a pure consumer of regress.PlotData: all selections and fitted
// values arrive precomputed, and nothing here feeds back into the model.
package plotviz

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pdiddy/scholar-metrics/internal/regress"
)

// Renderer draws scatter and regression images. It implements
// regress.Renderer.
type Renderer struct{}

// New returns a gonum/plot backed Renderer.
func New() *Renderer {
	return &Renderer{}
}

var (
	pointColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	highlightColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	lineColor      = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	gridColor      = color.RGBA{R: 0, G: 0, B: 0, A: 64}
)

// RenderScatter writes the scatter image: all points with the highlight
// subset emphasized and labeled.
func (r *Renderer) RenderScatter(data regress.PlotData, path string) error {
	p, err := basePlot(data)
	if err != nil {
		return err
	}
	return save(p, path)
}

// RenderRegression writes the scatter image with the fitted line overlaid
// as a dashed curve.
func (r *Renderer) RenderRegression(data regress.PlotData, path string) error {
	p, err := basePlot(data)
	if err != nil {
		return err
	}

	line, err := plotter.NewLine(toXYs(data.Curve))
	if err != nil {
		return fmt.Errorf("building regression line: %w", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(line)
	p.Legend.Add("Linear regression", line)

	return save(p, path)
}

// basePlot builds the shared plot content: titled axes, dotted grid,
// integer x ticks, the full point set, and the emphasized highlight
// subset with name labels.
func basePlot(data regress.PlotData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.X.Tick.Marker = integerTicks{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(grid)

	points, err := plotter.NewScatter(toXYs(data.Points))
	if err != nil {
		return nil, fmt.Errorf("building scatter points: %w", err)
	}
	points.GlyphStyle.Color = pointColor
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)
	p.Legend.Add("Other researchers", points)

	if len(data.Highlights) > 0 {
		if err := addHighlights(p, data.Highlights); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// addHighlights draws the highlight subset as larger red markers with a
// black outline, plus name labels offset from each point where a name
// exists.
func addHighlights(p *plot.Plot, highlights []regress.LabeledPoint) error {
	xys := make(plotter.XYs, len(highlights))
	for i, h := range highlights {
		xys[i] = plotter.XY{X: h.X, Y: h.Y}
	}

	fill, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building highlight points: %w", err)
	}
	fill.GlyphStyle.Color = highlightColor
	fill.GlyphStyle.Radius = vg.Points(5)
	fill.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(fill)

	outline, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building highlight outline: %w", err)
	}
	outline.GlyphStyle.Color = color.Black
	outline.GlyphStyle.Radius = vg.Points(5)
	outline.GlyphStyle.Shape = draw.RingGlyph{}
	p.Add(outline)
	p.Legend.Add(fmt.Sprintf("Top %d by citations", len(highlights)), fill)

	labels := plotter.XYLabels{}
	for _, h := range highlights {
		if h.Label == "" {
			continue
		}
		// Nudge labels right and up so they clear the marker.
		labels.XYs = append(labels.XYs, plotter.XY{X: h.X + 0.05, Y: h.Y + 1.0})
		labels.Labels = append(labels.Labels, h.Label)
	}
	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return fmt.Errorf("building highlight labels: %w", err)
		}
		p.Add(l)
	}
	return nil
}

// save writes the plot as a PNG, creating parent directories if absent.
func save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4.5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}

func toXYs(points []regress.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

// integerTicks restricts axis ticks to whole numbers across the observed
// range. Document counts are whole numbers, so fractional ticks read
// wrong.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))

	// Thin labels when the range is wide so they stay legible.
	step := 1
	if span := hi - lo; span > 20 {
		step = (span + 19) / 20
	}
	for v := lo; v <= hi; v++ {
		t := plot.Tick{Value: float64(v)}
		if (v-lo)%step == 0 {
			t.Label = fmt.Sprintf("%d", v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
