// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plotviz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/scholar-metrics/internal/regress"
)

func sampleData() regress.PlotData {
	return regress.PlotData{
		Points: []regress.Point{
			{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}, {X: 4, Y: 9},
		},
		Highlights: []regress.LabeledPoint{
			{Point: regress.Point{X: 4, Y: 9}, Label: "Ada"},
			{Point: regress.Point{X: 3, Y: 6}, Label: ""},
		},
		Curve: []regress.Point{
			{X: 1, Y: 2.1}, {X: 2.5, Y: 5.2}, {X: 4, Y: 8.3},
		},
		XLabel: "Number of Documents",
		YLabel: "Total Citations",
		Title:  "Scatter Plot: Documents vs Total Citations",
	}
}

func TestRenderScatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plots", "scatter.png")

	if err := New().RenderScatter(sampleData(), path); err != nil {
		t.Fatalf("RenderScatter: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected image at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("image file is empty")
	}
}

func TestRenderRegression(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regression.png")

	if err := New().RenderRegression(sampleData(), path); err != nil {
		t.Fatalf("RenderRegression: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected image at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("image file is empty")
	}
}

func TestRender_NoHighlights(t *testing.T) {
	data := sampleData()
	data.Highlights = nil

	path := filepath.Join(t.TempDir(), "scatter.png")
	if err := New().RenderScatter(data, path); err != nil {
		t.Fatalf("RenderScatter without highlights: %v", err)
	}
}

func TestIntegerTicks(t *testing.T) {
	ticks := integerTicks{}.Ticks(0.4, 5.6)

	if len(ticks) != 5 {
		t.Fatalf("got %d ticks, want 5 (1..5)", len(ticks))
	}
	if ticks[0].Value != 1 || ticks[len(ticks)-1].Value != 5 {
		t.Errorf("tick range = [%v, %v], want [1, 5]", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
	for _, tk := range ticks {
		if tk.Value != float64(int(tk.Value)) {
			t.Errorf("non-integer tick %v", tk.Value)
		}
		if tk.Label == "" {
			t.Errorf("tick %v unlabeled in a narrow range", tk.Value)
		}
	}
}

func TestIntegerTicks_WideRangeThinsLabels(t *testing.T) {
	ticks := integerTicks{}.Ticks(0, 100)

	labeled := 0
	for _, tk := range ticks {
		if tk.Label != "" {
			labeled++
		}
	}
	if labeled == 0 {
		t.Fatal("no labeled ticks")
	}
	if labeled > 25 {
		t.Errorf("%d labeled ticks on a 100-wide range, want thinning", labeled)
	}
}
