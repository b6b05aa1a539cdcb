package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/viewport"
	"github.com/san-kum/graphcalc/internal/viz"
)

const (
	DefaultSamples  = plot.DefaultSamples
	DefaultZoomIn   = viewport.DefaultZoomIn
	DefaultZoomOut  = viewport.DefaultZoomOut
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"
	DefaultExport   = "graphcalc.svg"
)

type Config struct {
	Samples    int            `yaml:"samples" validate:"gte=2,lte=100000"`
	Palette    []string       `yaml:"palette" validate:"min=1,dive,hexcolor"`
	Viewport   ViewportConfig `yaml:"viewport"`
	Zoom       ZoomConfig     `yaml:"zoom"`
	Theme      string         `yaml:"theme" validate:"required"`
	LogFile    string         `yaml:"log_file"`
	LogLevel   string         `yaml:"log_level" validate:"oneof=trace debug info warn error off"`
	ExportPath string         `yaml:"export_path" validate:"required"`
}

type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type ZoomConfig struct {
	In  float64 `yaml:"in" validate:"gt=0,lt=1"`
	Out float64 `yaml:"out" validate:"gt=1"`
}

func DefaultConfig() *Config {
	palette := make([]string, len(plot.DefaultPalette))
	for i, c := range plot.DefaultPalette {
		palette[i] = string(c)
	}
	return &Config{
		Samples:    DefaultSamples,
		Palette:    palette,
		Viewport:   FromViewport(viewport.Default()),
		Zoom:       ZoomConfig{In: DefaultZoomIn, Out: DefaultZoomOut},
		Theme:      DefaultTheme,
		LogLevel:   DefaultLogLevel,
		ExportPath: DefaultExport,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				result = multierror.Append(result, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}
	if !c.Viewport.Viewport().Valid() {
		result = multierror.Append(result, fmt.Errorf("viewport: need finite x_min < x_max and y_min < y_max, got %s", c.Viewport.Viewport()))
	}
	if _, ok := viz.GetTheme(c.Theme); c.Theme != "" && !ok {
		result = multierror.Append(result, fmt.Errorf("theme: unknown %q, want one of %v", c.Theme, viz.ThemeNames()))
	}
	return result.ErrorOrNil()
}

// Viewport converts to the controller's rectangle type.
func (v ViewportConfig) Viewport() viewport.Viewport {
	return viewport.Viewport{XMin: v.XMin, XMax: v.XMax, YMin: v.YMin, YMax: v.YMax}
}

func FromViewport(v viewport.Viewport) ViewportConfig {
	return ViewportConfig{XMin: v.XMin, XMax: v.XMax, YMin: v.YMin, YMax: v.YMax}
}

// Colors returns the palette as lipgloss colors.
func (c *Config) Colors() []lipgloss.Color {
	out := make([]lipgloss.Color, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = lipgloss.Color(p)
	}
	return out
}
