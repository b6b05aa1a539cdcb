package session

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/graphcalc/internal/config"
	"github.com/san-kum/graphcalc/internal/expr"
	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/viewport"
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Curves   []plot.Curve
	Viewport viewport.Viewport
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Samples  int
	Palette  []lipgloss.Color
	Viewport viewport.Viewport
	ZoomIn   float64
	ZoomOut  float64
	Logger   hclog.Logger
}

// Session owns the curve registry and the viewport controller for one
// interactive run. It is driven from a single event loop and is not safe
// for concurrent use.
type Session struct {
	registry *plot.Registry
	view     *viewport.Controller
	samples  int
	logger   hclog.Logger
}

func New(opts Options) *Session {
	if opts.Samples <= 0 {
		opts.Samples = plot.DefaultSamples
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Session{
		registry: plot.NewRegistry(opts.Palette),
		view:     viewport.NewController(opts.Viewport, viewport.WithZoom(opts.ZoomOut, opts.ZoomIn)),
		samples:  opts.Samples,
		logger:   opts.Logger,
	}
}

// FromConfig builds a Session from a loaded config.
func FromConfig(cfg *config.Config, logger hclog.Logger) *Session {
	return New(Options{
		Samples:  cfg.Samples,
		Palette:  cfg.Colors(),
		Viewport: cfg.Viewport.Viewport(),
		ZoomIn:   cfg.Zoom.In,
		ZoomOut:  cfg.Zoom.Out,
		Logger:   logger,
	})
}

// Add parses text, samples it over its domain and registers the curve.
// On failure the registry is left untouched and the returned error is an
// *expr.ParseError or *plot.EvaluationError naming text and the cause.
func (s *Session) Add(text string) (plot.Curve, error) {
	e, err := expr.Parse(text)
	if err != nil {
		s.logger.Warn("parse failed", "expr", text, "err", err)
		return plot.Curve{}, err
	}
	d := plot.SelectDomain(e)
	xs, ys, err := plot.Sample(e, d, s.samples)
	if err != nil {
		var ee *plot.EvaluationError
		if errors.As(err, &ee) {
			ee.Text = text
		}
		s.logger.Warn("evaluation failed", "expr", text, "err", err)
		return plot.Curve{}, err
	}
	c := s.registry.Add(plot.Curve{Text: text, X: xs, Y: ys})
	s.logger.Debug("curve added", "expr", text, "parsed", e.String(), "domain", d.String(),
		"samples", len(xs), "index", c.Index, "color", string(c.Color))
	return c, nil
}

// Clear removes every curve. The viewport is kept.
func (s *Session) Clear() {
	n := s.registry.Len()
	s.registry.Clear()
	s.logger.Debug("curves cleared", "curves", n)
}

func (s *Session) Curves() []plot.Curve { return s.registry.All() }

// View returns the viewport controller for pointer and wheel events.
func (s *Session) View() *viewport.Controller { return s.view }

func (s *Session) Scene() Scene {
	return Scene{Curves: s.registry.All(), Viewport: s.view.Viewport()}
}

func (s *Session) Samples() int { return s.samples }
