package plot

import "github.com/charmbracelet/lipgloss"

// DefaultPalette cycles through eight colors.
var DefaultPalette = []lipgloss.Color{
	"#1f77b4", // blue
	"#2ca02c", // green
	"#d62728", // red
	"#17becf", // cyan
	"#e377c2", // magenta
	"#bcbd22", // olive
	"#ff7f0e", // orange
	"#9a9a9a", // gray
}

// Curve is one sampled function trace.
type Curve struct {
	Text  string
	X, Y  []float64
	Color lipgloss.Color
	Index int
}

// Label is the legend text for the curve.
func (c Curve) Label() string {
	return "y = " + c.Text
}

// Points returns the number of samples.
func (c Curve) Points() int {
	return len(c.X)
}
