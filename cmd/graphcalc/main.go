package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/san-kum/graphcalc/internal/config"
	"github.com/san-kum/graphcalc/internal/export"
	"github.com/san-kum/graphcalc/internal/expr"
	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/session"
	"github.com/san-kum/graphcalc/internal/tui"
	"github.com/san-kum/graphcalc/internal/viz"
)

var (
	configFile string
	samples    int
	theme      string
	view       string
	logFile    string
	logLevel   string

	// plot
	height int
	width  int

	// sample
	format string

	// inspect
	at []float64

	// export
	output    string
	svgWidth  int
	svgHeight int
	raster    bool
	cols      int
	rows      int
	dotScale  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "graphcalc",
		Short:        "terminal function plotter",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", 0, "samples per curve (default from config)")
	rootCmd.PersistentFlags().StringVar(&view, "view", "", "starting view preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to file")

	plotCmd := &cobra.Command{
		Use:   "plot EXPR...",
		Short: "print ascii charts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  plotExprs,
	}
	plotCmd.Flags().IntVar(&height, "height", 10, "chart height")
	plotCmd.Flags().IntVar(&width, "width", 80, "chart width")

	sampleCmd := &cobra.Command{
		Use:   "sample EXPR",
		Short: "print sampled points",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleExpr,
	}
	sampleCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	sampleCmd.Flags().IntVarP(&samples, "n", "n", 0, "number of samples")

	inspectCmd := &cobra.Command{
		Use:   "inspect EXPR",
		Short: "show how an expression is understood",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectExpr,
	}
	inspectCmd.Flags().Float64SliceVar(&at, "at", nil, "x values to evaluate at (default: domain ends and middle)")

	exportCmd := &cobra.Command{
		Use:   "export EXPR...",
		Short: "write curves to svg",
		Args:  cobra.MinimumNArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default from config)")
	exportCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportCmd.Flags().BoolVar(&raster, "raster", false, "export the braille dots instead of vector paths")
	exportCmd.Flags().IntVar(&cols, "cols", 100, "raster width in cells")
	exportCmd.Flags().IntVar(&rows, "rows", 30, "raster height in cells")
	exportCmd.Flags().Float64Var(&dotScale, "scale", 4, "raster dot spacing in pixels")
	exportCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "list view presets",
		Run:   listViews,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(plotCmd, sampleCmd, inspectCmd, exportCmd, viewsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when given and applies the command-line
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if samples > 0 {
		cfg.Samples = samples
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if view != "" && !cfg.ApplyPreset(view) {
		return nil, fmt.Errorf("unknown view %q, want one of %s", view, strings.Join(config.ListPresets(), ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cliLogger(cfg *config.Config) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "graphcalc",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: os.Stderr,
	})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := hclog.NewNullLogger()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "graphcalc",
			Level:  hclog.LevelFromString(cfg.LogLevel),
			Output: f,
		})
	}
	return tui.Run(cfg, logger)
}

// addAll plots every argument. Failures are collected so one bad
// expression does not hide the others.
func addAll(s *session.Session, args []string) ([]plot.Curve, error) {
	var curves []plot.Curve
	var failed []string
	for _, a := range args {
		c, err := s.Add(a)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = append(failed, a)
			continue
		}
		curves = append(curves, c)
	}
	if len(curves) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}
	if len(failed) > 0 {
		return curves, fmt.Errorf("%d of %d expressions failed", len(failed), len(args))
	}
	return curves, nil
}

func plotExprs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := session.FromConfig(cfg, cliLogger(cfg))
	curves, addErr := addAll(s, args)

	for _, c := range curves {
		data, ok := chartData(c.Y)
		if !ok {
			fmt.Printf("%s: no finite values\n\n", c.Label())
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("%s  x in [%.4g, %.4g]", c.Label(), c.X[0], c.X[len(c.X)-1])),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return addErr
}

// chartData replaces infinities with NaN, which asciigraph leaves as
// gaps. ok is false when nothing finite remains.
func chartData(ys []float64) ([]float64, bool) {
	out := make([]float64, len(ys))
	ok := false
	for i, y := range ys {
		if math.IsInf(y, 0) {
			y = math.NaN()
		}
		if !math.IsNaN(y) {
			ok = true
		}
		out[i] = y
	}
	return out, ok
}

type point struct {
	X float64  `json:"x"`
	Y *float64 `json:"y"`
}

func sampleExpr(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := session.FromConfig(cfg, cliLogger(cfg))
	c, err := s.Add(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "x\ty")
		for i := range c.X {
			fmt.Fprintf(w, "%.6g\t%.6g\n", c.X[i], c.Y[i])
		}
		return w.Flush()
	case "csv":
		w := csv.NewWriter(os.Stdout)
		w.Write([]string{"x", "y"})
		for i := range c.X {
			w.Write([]string{
				strconv.FormatFloat(c.X[i], 'g', -1, 64),
				strconv.FormatFloat(c.Y[i], 'g', -1, 64),
			})
		}
		w.Flush()
		return w.Error()
	case "json":
		// JSON has no NaN or Inf; those become null
		pts := make([]point, len(c.X))
		for i := range c.X {
			pts[i].X = c.X[i]
			if y := c.Y[i]; !math.IsNaN(y) && !math.IsInf(y, 0) {
				pts[i].Y = &y
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"expr": c.Text, "points": pts})
	}
	return fmt.Errorf("unknown format %q, want table, csv or json", format)
}

func inspectExpr(cmd *cobra.Command, args []string) error {
	e, err := expr.Parse(args[0])
	if err != nil {
		return err
	}
	funcs := e.Funcs()
	names := make([]string, len(funcs))
	for i, f := range funcs {
		names[i] = f.String()
	}
	if len(names) == 0 {
		names = []string{"none"}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "input:\t%s\n", args[0])
	fmt.Fprintf(w, "parsed:\t%s\n", e)
	fmt.Fprintf(w, "functions:\t%s\n", strings.Join(names, ", "))
	d := plot.SelectDomain(e)
	fmt.Fprintf(w, "domain:\t%s\n", d)

	xs := at
	if len(xs) == 0 {
		xs = []float64{d.Min, (d.Min + d.Max) / 2, d.Max}
	}
	for _, x := range xs {
		fmt.Fprintf(w, "y(%g):\t%g\n", x, e.Eval(x))
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cliLogger(cfg)
	s := session.FromConfig(cfg, logger)
	curves, addErr := addAll(s, args)
	if curves == nil {
		return addErr
	}

	path := output
	if path == "" {
		path = cfg.ExportPath
	}
	th, _ := viz.GetTheme(cfg.Theme)
	var svg string
	if raster {
		f := viz.Frame{Cols: cols, Rows: rows, View: s.View().Viewport()}
		svg = export.RasterToSVG(curves, f, dotScale, th)
		if svg == "" {
			return fmt.Errorf("invalid raster size %dx%d cells at scale %g", cols, rows, dotScale)
		}
	} else {
		svg = export.SceneToSVG(curves, s.View().Viewport(), svgWidth, svgHeight, th)
		if svg == "" {
			return fmt.Errorf("invalid image size %dx%d", svgWidth, svgHeight)
		}
	}
	if err := export.WriteFile(path, svg); err != nil {
		return err
	}
	logger.Info("exported", "path", path, "curves", len(curves))
	fmt.Printf("wrote %s (%d curves)\n", path, len(curves))
	return addErr
}

func listViews(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "name\tx\ty")
	for _, name := range config.ListPresets() {
		v, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, span(v.XMin, v.XMax), span(v.YMin, v.YMax))
	}
	w.Flush()
}

func span(lo, hi float64) string {
	return fmt.Sprintf("[%g, %g]", lo, hi)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "graphcalc.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
