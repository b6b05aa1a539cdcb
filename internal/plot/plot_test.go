package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/graphcalc/internal/expr"
)

func TestSelectDomain(t *testing.T) {
	tests := []struct {
		in   string
		want Domain
	}{
		{"x**2", Domain{-10, 10}},
		{"sin(x) + 1", Domain{-10, 10}},
		{"log(x)", Domain{0.1, 10}},
		{"log(x, 2)", Domain{0.1, 10}},
		{"x + ln(x**2 + 1)", Domain{0.1, 10}},
		{"log10(x)", Domain{0.1, 10}},
		{"sqrt(x)", Domain{-10, 10}},
	}
	for _, tt := range tests {
		if got := SelectDomain(expr.MustParse(tt.in)); got != tt.want {
			t.Errorf("SelectDomain(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLinspace(t *testing.T) {
	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5)); diff != "" {
		t.Errorf("Linspace mismatch (-want +got):\n%s", diff)
	}
	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("Linspace(3, 4, 1) = %v", got)
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("Linspace(0, 1, 0) = %v, want nil", got)
	}
}

func TestSample_Grid(t *testing.T) {
	inputs := []string{"x**2", "log(x, 2)", "sin(x)/x", "1/x"}
	for _, in := range inputs {
		e := expr.MustParse(in)
		d := SelectDomain(e)
		for _, n := range []int{2, 7, DefaultSamples} {
			xs, ys, err := Sample(e, d, n)
			if err != nil {
				t.Fatalf("Sample(%q, %d): %v", in, n, err)
			}
			if len(xs) != n || len(ys) != n {
				t.Fatalf("Sample(%q, %d): got %d/%d points", in, n, len(xs), len(ys))
			}
			if xs[0] != d.Min || xs[n-1] != d.Max {
				t.Errorf("Sample(%q, %d): endpoints %v..%v, want %v", in, n, xs[0], xs[n-1], d)
			}
			for i := 1; i < n; i++ {
				if xs[i] <= xs[i-1] {
					t.Fatalf("Sample(%q, %d): x not increasing at %d", in, n, i)
				}
			}
		}
	}
}

func TestSample_LogBaseTwo(t *testing.T) {
	for _, in := range []string{"log(x, 2)", "ln(x)/ln(2)"} {
		xs, ys, err := Sample(expr.MustParse(in), Domain{Min: 2, Max: 8}, 7)
		if err != nil {
			t.Fatal(err)
		}
		if xs[6] != 8 || math.Abs(ys[6]-3.0) > 1e-9 {
			t.Errorf("%s at %v = %v, want 3", in, xs[6], ys[6])
		}
	}
}

func TestSample_NaNPropagates(t *testing.T) {
	_, ys, err := Sample(expr.MustParse("log(x)"), Domain{Min: -1, Max: 1}, 3)
	if err != nil {
		t.Fatalf("pointwise failures should not error: %v", err)
	}
	if !math.IsNaN(ys[0]) || !math.IsInf(ys[1], -1) || ys[2] != 0 {
		t.Errorf("got %v, want [NaN -Inf 0]", ys)
	}
}

func TestSample_Errors(t *testing.T) {
	e := expr.MustParse("x")
	tests := []struct {
		name string
		e    *expr.Expr
		d    Domain
		n    int
		want error
	}{
		{"zero samples", e, DefaultDomain, 0, ErrInvalidGrid},
		{"reversed", e, Domain{Min: 1, Max: -1}, 10, ErrInvalidGrid},
		{"nan bound", e, Domain{Min: math.NaN(), Max: 1}, 10, ErrInvalidGrid},
		{"inf bound", e, Domain{Min: 0, Max: math.Inf(1)}, 10, ErrInvalidGrid},
		{"malformed", expr.Negate(nil), DefaultDomain, 10, expr.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Sample(tt.e, tt.d, tt.n)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var ee *EvaluationError
			if !errors.As(err, &ee) {
				t.Errorf("error is %T, want *EvaluationError", err)
			}
		})
	}
}

func TestRegistry_ColorsCycle(t *testing.T) {
	r := NewRegistry(nil)
	if len(r.Palette()) != 8 {
		t.Fatalf("default palette has %d colors, want 8", len(r.Palette()))
	}
	var added []Curve
	for i := 0; i < 9; i++ {
		added = append(added, r.Add(Curve{Text: "x"}))
	}
	if added[8].Color != added[0].Color {
		t.Errorf("9th color %s, want %s", added[8].Color, added[0].Color)
	}
	for i, c := range r.All() {
		if c.Index != i {
			t.Errorf("curve %d has index %d", i, c.Index)
		}
		if c.Color != DefaultPalette[i%8] {
			t.Errorf("curve %d has color %s", i, c.Color)
		}
	}
}

func TestRegistry_CustomPalette(t *testing.T) {
	r := NewRegistry([]lipgloss.Color{"#ff0000", "#00ff00"})
	a, b, c := r.Add(Curve{Text: "1"}), r.Add(Curve{Text: "2"}), r.Add(Curve{Text: "3"})
	if a.Color != "#ff0000" || b.Color != "#00ff00" || c.Color != "#ff0000" {
		t.Errorf("colors %s %s %s", a.Color, b.Color, c.Color)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry(nil)
	r.Add(Curve{Text: "x"})
	r.Add(Curve{Text: "x**2"})

	r.Clear()
	if r.Len() != 0 || len(r.All()) != 0 {
		t.Fatalf("after Clear: %d curves", r.Len())
	}
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("after second Clear: %d curves", r.Len())
	}

	if c := r.Add(Curve{Text: "x"}); c.Index != 0 || c.Color != DefaultPalette[0] {
		t.Errorf("first curve after Clear: index %d color %s", c.Index, c.Color)
	}
}

func TestRegistry_AddEqualizesLengths(t *testing.T) {
	r := NewRegistry(nil)
	c := r.Add(Curve{Text: "x", X: []float64{1, 2, 3}, Y: []float64{1, 2}})
	if len(c.X) != 2 || len(c.Y) != 2 {
		t.Fatalf("stored %d x and %d y samples", len(c.X), len(c.Y))
	}
	if diff := cmp.Diff([]float64{1, 2}, r.All()[0].X); diff != "" {
		t.Errorf("X mismatch (-want +got):\n%s", diff)
	}

	empty := r.Add(Curve{Text: "1", X: []float64{1}})
	if empty.Points() != 0 || len(empty.Y) != 0 {
		t.Errorf("curve without Y kept %d points", empty.Points())
	}
}

func TestRegistry_AllIsCopy(t *testing.T) {
	r := NewRegistry(nil)
	r.Add(Curve{Text: "x"})
	all := r.All()
	all[0].Text = "mutated"
	if r.All()[0].Text != "x" {
		t.Error("All() exposed internal storage")
	}
}

func TestCurve_Label(t *testing.T) {
	c := Curve{Text: "log(x, 2)", X: []float64{1, 2}, Y: []float64{0, 1}}
	if c.Label() != "y = log(x, 2)" {
		t.Errorf("Label() = %q", c.Label())
	}
	if c.Points() != 2 {
		t.Errorf("Points() = %d", c.Points())
	}
}

func TestSample_LargeGridMatchesSerial(t *testing.T) {
	e := expr.MustParse("sin(x)*x - 1/x")
	f, err := e.Compile()
	if err != nil {
		t.Fatal(err)
	}
	n := 5*parallelChunk + 17
	xs, ys, err := Sample(e, DefaultDomain, n)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range xs {
		if want := f(x); ys[i] != want && !(math.IsNaN(ys[i]) && math.IsNaN(want)) {
			t.Fatalf("ys[%d] = %v, want %v", i, ys[i], want)
		}
	}
}

func TestParallelFor_CoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 10, 100, 1001} {
		seen := make([]int, n)
		parallelFor(n, 7, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}
