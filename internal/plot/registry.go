package plot

import "github.com/charmbracelet/lipgloss"

// Registry holds plotted curves in insertion order. Colors come from the
// palette by insertion index and wrap around once it is exhausted.
type Registry struct {
	palette []lipgloss.Color
	curves  []Curve
}

// NewRegistry returns an empty registry. A nil or empty palette selects
// DefaultPalette.
func NewRegistry(palette []lipgloss.Color) *Registry {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Registry{palette: append([]lipgloss.Color(nil), palette...)}
}

// ColorAt returns the color assigned to the curve at index i.
func (r *Registry) ColorAt(i int) lipgloss.Color {
	return r.palette[i%len(r.palette)]
}

// Add stores c, overwriting its Index and Color, and returns the stored copy.
// X and Y are truncated to the shorter of the two.
func (r *Registry) Add(c Curve) Curve {
	n := min(len(c.X), len(c.Y))
	c.X, c.Y = c.X[:n:n], c.Y[:n:n]
	c.Index = len(r.curves)
	c.Color = r.ColorAt(c.Index)
	r.curves = append(r.curves, c)
	return c
}

// Clear removes all curves.
func (r *Registry) Clear() {
	r.curves = nil
}

// All returns the curves in insertion order.
func (r *Registry) All() []Curve {
	return append([]Curve(nil), r.curves...)
}

// Len returns the number of curves.
func (r *Registry) Len() int {
	return len(r.curves)
}

// Palette returns the colors in assignment order.
func (r *Registry) Palette() []lipgloss.Color {
	return append([]lipgloss.Color(nil), r.palette...)
}
