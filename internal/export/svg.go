package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/viewport"
	"github.com/san-kum/graphcalc/internal/viz"
)

// CanvasToSVG draws one dot per set sub-pixel of canvas, scale pixels
// apart, in the color of its cell. Uncolored cells use the theme text color.
func CanvasToSVG(canvas *viz.Canvas, scale float64, th viz.Theme) string {
	if canvas == nil || scale <= 0 {
		return ""
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	r := scale * 0.4
	canvas.Dots(func(x, y int, color lipgloss.Color) {
		if color == "" {
			color = th.Text
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, (float64(x)+0.5)*scale, (float64(y)+0.5)*scale, r, color))
	})

	sb.WriteString("</svg>")
	return sb.String()
}

// RasterToSVG renders the curves onto a Braille canvas the size of f and
// converts the dots, so the image matches what the terminal shows.
func RasterToSVG(curves []plot.Curve, f viz.Frame, scale float64, th viz.Theme) string {
	if f.Cols <= 0 || f.Rows <= 0 || !f.View.Valid() {
		return ""
	}
	return CanvasToSVG(viz.Plot(curves, f, th), scale, th)
}

const background = "#0a0a0a"

// SceneToSVG draws the curves as vector paths inside the viewport, with
// dashed axes and a legend. Non-finite samples break a path.
func SceneToSVG(curves []plot.Curve, v viewport.Viewport, width, height int, th viz.Theme) string {
	if width <= 0 || height <= 0 || !v.Valid() {
		return ""
	}
	w, h := float64(width), float64(height)
	toPx := func(x, y float64) (float64, float64) {
		return (x - v.XMin) / v.Width() * w, h - (y-v.YMin)/v.Height()*h
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	ox, oy := toPx(0, 0)
	if ox >= 0 && ox <= w {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="%s" stroke-dasharray="4 4"/>
`, ox, ox, height, th.Axis))
	}
	if oy >= 0 && oy <= h {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>
`, oy, width, oy, th.Axis))
	}

	for _, c := range curves {
		d := curvePath(c, toPx, w, h)
		if d == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="%s"/>
`, c.Color, d))
	}

	for i, c := range curves {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="12" text-anchor="end">%s</text>
`, width-10, 20+16*i, c.Color, html.EscapeString(c.Label())))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// curvePath builds the path data, starting a new subpath after each gap
// or wherever clipping cut the line.
func curvePath(c plot.Curve, toPx func(x, y float64) (float64, float64), w, h float64) string {
	n := len(c.X)
	if len(c.Y) < n {
		n = len(c.Y)
	}
	var sb strings.Builder
	down := false
	var lastX, lastY float64
	var prevX, prevY float64
	havePrev := false
	for i := 0; i < n; i++ {
		px, py := toPx(c.X[i], c.Y[i])
		if !finite(px) || !finite(py) {
			havePrev, down = false, false
			continue
		}
		if havePrev {
			x0, y0, x1, y1, ok := viz.Clip(prevX, prevY, px, py, 0, 0, w, h)
			if ok && finite(x0) && finite(y0) && finite(x1) && finite(y1) {
				if !down || x0 != lastX || y0 != lastY {
					sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x0, y0))
				}
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f ", x1, y1))
				lastX, lastY, down = x1, y1, true
			} else {
				down = false
			}
		}
		prevX, prevY, havePrev = px, py, true
	}
	return strings.TrimSpace(sb.String())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WriteFile writes svg to path.
func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
