package viewport

import (
	"fmt"
	"math"
)

// Viewport is the visible rectangle in data coordinates.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Default returns the startup rectangle (-10, 10) x (-10, 10).
func Default() Viewport {
	return Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

// Valid reports whether all bounds and spans are finite and both ranges
// are non-empty.
func (v Viewport) Valid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax, v.Width(), v.Height()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMin < v.XMax && v.YMin < v.YMax
}

// Scale multiplies both ends of both ranges by f. The result is centered on
// zero, not on the rectangle's midpoint.
func (v Viewport) Scale(f float64) Viewport {
	return Viewport{XMin: v.XMin * f, XMax: v.XMax * f, YMin: v.YMin * f, YMax: v.YMax * f}
}

// Shift moves the rectangle by (dx, dy).
func (v Viewport) Shift(dx, dy float64) Viewport {
	return Viewport{XMin: v.XMin + dx, XMax: v.XMax + dx, YMin: v.YMin + dy, YMax: v.YMax + dy}
}

// Width and Height are the range spans.
func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// Contains reports whether (x, y) lies inside the closed rectangle.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

func (v Viewport) String() string {
	return fmt.Sprintf("x [%.4g, %.4g]  y [%.4g, %.4g]", v.XMin, v.XMax, v.YMin, v.YMax)
}
