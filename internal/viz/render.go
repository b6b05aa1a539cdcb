package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/viewport"
)

// Frame maps between data space and a Cols x Rows cell area showing View.
type Frame struct {
	Cols, Rows int
	View       viewport.Viewport
}

func (f Frame) subW() float64 { return float64(f.Cols*2 - 1) }
func (f Frame) subH() float64 { return float64(f.Rows*4 - 1) }

// ToSub maps a data point to sub-pixel coordinates. Points outside View
// map outside [0, SubWidth) x [0, SubHeight).
func (f Frame) ToSub(x, y float64) (float64, float64) {
	px := (x - f.View.XMin) / f.View.Width() * f.subW()
	py := (f.View.YMax - y) / f.View.Height() * f.subH()
	return px, py
}

// Contains reports whether the cell lies in the frame.
func (f Frame) Contains(col, row int) bool {
	return col >= 0 && col < f.Cols && row >= 0 && row < f.Rows
}

// CellToData returns the data coordinates of the center of a cell. ok is
// false when the cell is outside the frame.
func (f Frame) CellToData(col, row int) (x, y float64, ok bool) {
	if !f.Contains(col, row) {
		return 0, 0, false
	}
	px := float64(col*2) + 0.5
	py := float64(row*4) + 1.5
	x = f.View.XMin + px/f.subW()*f.View.Width()
	y = f.View.YMax - py/f.subH()*f.View.Height()
	return x, y, true
}

// Pos resolves a cell to a pointer position for the viewport controller.
func (f Frame) Pos(col, row int) viewport.Pos {
	x, y, ok := f.CellToData(col, row)
	if !ok {
		return viewport.Outside
	}
	return viewport.At(x, y)
}

// Plot draws the axes and curves onto a new canvas and returns it. The
// output depends only on its inputs.
func Plot(curves []plot.Curve, f Frame, th Theme) *Canvas {
	c := NewCanvas(f.Cols, f.Rows)
	if f.Cols <= 0 || f.Rows <= 0 || !f.View.Valid() {
		return c
	}
	drawAxes(c, f, th.Axis)
	for _, curve := range curves {
		c.Pen = curve.Color
		drawCurve(c, f, curve)
	}
	return c
}

// Render is Plot followed by Canvas.Render.
func Render(curves []plot.Curve, f Frame, th Theme) string {
	return Plot(curves, f, th).Render()
}

const dash = 3

// drawAxes draws dashed lines through the origin where visible.
func drawAxes(c *Canvas, f Frame, color lipgloss.Color) {
	c.Pen = color
	px, py := f.ToSub(0, 0)
	if col := int(math.Round(px)); px >= 0 && px <= f.subW() {
		for y := 0; y < c.SubHeight(); y++ {
			if (y/dash)%2 == 0 {
				c.Set(col, y)
			}
		}
	}
	if row := int(math.Round(py)); py >= 0 && py <= f.subH() {
		for x := 0; x < c.SubWidth(); x++ {
			if (x/dash)%2 == 0 {
				c.Set(x, row)
			}
		}
	}
}

// drawCurve connects consecutive finite samples. A non-finite sample ends
// the current run so the gap is left open.
func drawCurve(c *Canvas, f Frame, curve plot.Curve) {
	n := len(curve.X)
	if len(curve.Y) < n {
		n = len(curve.Y)
	}
	havePrev := false
	var prevX, prevY float64
	for i := 0; i < n; i++ {
		px, py := f.ToSub(curve.X[i], curve.Y[i])
		if !finite(px) || !finite(py) {
			havePrev = false
			continue
		}
		if havePrev {
			drawClipped(c, f, prevX, prevY, px, py)
		} else if i == n-1 || !nextFinite(f, curve, i) {
			// isolated point
			drawClipped(c, f, px, py, px, py)
		}
		prevX, prevY, havePrev = px, py, true
	}
}

func nextFinite(f Frame, curve plot.Curve, i int) bool {
	px, py := f.ToSub(curve.X[i+1], curve.Y[i+1])
	return finite(px) && finite(py)
}

func drawClipped(c *Canvas, f Frame, x0, y0, x1, y1 float64) {
	x0, y0, x1, y1, ok := Clip(x0, y0, x1, y1, 0, 0, f.subW(), f.subH())
	if !ok || !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	c.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}

// Clip is Liang-Barsky clipping of a segment to [xmin, xmax] x [ymin, ymax].
func Clip(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Legend lists each curve label with a swatch in its color.
func Legend(curves []plot.Curve, th Theme) string {
	if len(curves) == 0 {
		return lipgloss.NewStyle().Foreground(th.Muted).Render("no curves")
	}
	lines := make([]string, len(curves))
	for i, c := range curves {
		swatch := lipgloss.NewStyle().Foreground(c.Color).Render("━━")
		lines[i] = swatch + " " + lipgloss.NewStyle().Foreground(th.Text).Render(c.Label())
	}
	return strings.Join(lines, "\n")
}

// Ticks describes the visible ranges in one line.
func Ticks(v viewport.Viewport, th Theme) string {
	return lipgloss.NewStyle().Foreground(th.Muted).Render(
		fmt.Sprintf("x %.4g … %.4g   y %.4g … %.4g", v.XMin, v.XMax, v.YMin, v.YMax))
}
