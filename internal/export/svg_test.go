package export

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/viewport"
	"github.com/san-kum/graphcalc/internal/viz"
)

func TestSceneToSVG(t *testing.T) {
	curves := []plot.Curve{
		{Text: "x", X: []float64{-10, 10}, Y: []float64{-10, 10}, Color: "#ff0000"},
		{Text: "a<b", X: []float64{0, 1, 2}, Y: []float64{1, math.NaN(), 1}, Color: "#00ff00"},
	}
	svg := SceneToSVG(curves, viewport.Default(), 200, 100, viz.ThemeClassic)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if strings.Count(svg, "<path") != 1 {
		t.Errorf("expected one path (second curve has no connected segment), got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, `d="M0.0,100.0 L200.0,0.0"`) {
		t.Errorf("diagonal path missing:\n%s", svg)
	}
	if !strings.Contains(svg, "y = a&lt;b") {
		t.Error("legend label not escaped")
	}
	if strings.Count(svg, "stroke-dasharray") != 2 {
		t.Error("expected both axes")
	}
}

func TestSceneToSVG_ClipsAndBreaks(t *testing.T) {
	c := plot.Curve{
		X:     []float64{-20, 0, 5, 6, 7},
		Y:     []float64{0, 0, math.Inf(1), 0, 0},
		Color: "#ffffff",
	}
	d := curvePath(c, func(x, y float64) (float64, float64) { return x, y }, 10, 10)
	if strings.Count(d, "M") != 2 {
		t.Errorf("expected two subpaths, got %q", d)
	}
	if !strings.HasPrefix(d, "M0.0,0.0") {
		t.Errorf("first segment should be clipped at x=0, got %q", d)
	}
}

func TestSceneToSVG_Invalid(t *testing.T) {
	if SceneToSVG(nil, viewport.Viewport{}, 100, 100, viz.ThemeClassic) != "" {
		t.Error("invalid viewport should produce nothing")
	}
	if SceneToSVG(nil, viewport.Default(), 0, 100, viz.ThemeClassic) != "" {
		t.Error("zero width should produce nothing")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Pen = "#123456"
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2, viz.ThemeClassic)
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 dots, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, `fill="#123456"`) {
		t.Error("dot color missing")
	}
	if CanvasToSVG(nil, 1, viz.ThemeClassic) != "" {
		t.Error("nil canvas should produce nothing")
	}
}

func TestRasterToSVG(t *testing.T) {
	f := viz.Frame{Cols: 10, Rows: 5, View: viewport.Default()}
	curves := []plot.Curve{{Text: "x", X: []float64{-10, 10}, Y: []float64{-10, 10}, Color: "#ff0000"}}

	svg := RasterToSVG(curves, f, 3, viz.ThemeClassic)
	n := 0
	viz.Plot(curves, f, viz.ThemeClassic).Dots(func(int, int, lipgloss.Color) { n++ })
	if got := strings.Count(svg, "<circle"); got != n || n == 0 {
		t.Errorf("svg has %d dots, canvas %d", got, n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("curve color missing")
	}
	if !strings.Contains(svg, `width="60" height="60"`) {
		t.Error("image size should be sub-pixels times scale")
	}

	if RasterToSVG(curves, viz.Frame{Cols: 0, Rows: 5, View: viewport.Default()}, 3, viz.ThemeClassic) != "" {
		t.Error("empty frame should produce nothing")
	}
	if RasterToSVG(curves, f, 0, viz.ThemeClassic) != "" {
		t.Error("zero scale should produce nothing")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := WriteFile(path, "<svg/>"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("read back %q, %v", data, err)
	}
}
