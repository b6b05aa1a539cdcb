package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/graphcalc/internal/config"
	"github.com/san-kum/graphcalc/internal/export"
	"github.com/san-kum/graphcalc/internal/session"
	"github.com/san-kum/graphcalc/internal/viewport"
	"github.com/san-kum/graphcalc/internal/viz"
)

// Screen layout, top to bottom: title, bordered plot panel, ticks, legend,
// input, status, help.
const (
	titleLines  = 1
	borderLines = 2
	fixedFooter = 4 // ticks, input, status, help
	maxLegend   = 4

	plotOriginX = 1
	plotOriginY = titleLines + 1

	minCols = 10
	minRows = 4

	exportWidth  = 800
	exportHeight = 600
)

type model struct {
	session *session.Session
	input   textinput.Model
	theme   viz.Theme
	styles  viz.Styles
	logger  hclog.Logger

	exportPath string

	width  int
	height int

	status string
	err    error
	cursor viewport.Pos
}

func newModel(s *session.Session, th viz.Theme, exportPath string, logger hclog.Logger) model {
	ti := textinput.New()
	ti.Prompt = "y = "
	ti.Placeholder = "x**2 - 3*x, log(x, 2), sin(x)/x"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return model{
		session:    s,
		input:      ti,
		theme:      th,
		styles:     th.Styles(),
		logger:     logger,
		exportPath: exportPath,
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-2)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	view := m.session.View()
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.submit()
		return m, nil
	case "ctrl+l":
		m.session.Clear()
		m.setStatus("cleared", nil)
		return m, nil
	case "pgup":
		view.Scroll(viewport.ScrollUp)
		return m, nil
	case "pgdown":
		view.Scroll(viewport.ScrollDown)
		return m, nil
	case "ctrl+r":
		view.Reset()
		m.setStatus("view reset", nil)
		return m, nil
	case "ctrl+t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		m.setStatus("theme "+m.theme.Name, nil)
		return m, nil
	case "ctrl+e":
		m.exportSVG()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submit() {
	text := m.input.Value()
	c, err := m.session.Add(text)
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.input.SetValue("")
	m.setStatus(fmt.Sprintf("added %s (%d samples)", c.Label(), c.Points()), nil)
}

func (m *model) exportSVG() {
	scene := m.session.Scene()
	svg := export.SceneToSVG(scene.Curves, scene.Viewport, exportWidth, exportHeight, m.theme)
	if err := export.WriteFile(m.exportPath, svg); err != nil {
		m.logger.Error("export failed", "path", m.exportPath, "err", err)
		m.setStatus("", fmt.Errorf("export %s: %w", m.exportPath, err))
		return
	}
	m.logger.Info("exported", "path", m.exportPath, "curves", len(scene.Curves))
	m.setStatus("exported "+m.exportPath, nil)
}

func (m *model) setStatus(s string, err error) {
	m.status = s
	m.err = err
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	view := m.session.View()
	ev := tea.MouseEvent(msg)
	f := m.frame()
	f.View = view.Reference()
	p := f.Pos(ev.X-plotOriginX, ev.Y-plotOriginY)

	switch {
	case ev.Button == tea.MouseButtonWheelUp && ev.Action == tea.MouseActionPress:
		view.Scroll(viewport.ScrollUp)
	case ev.Button == tea.MouseButtonWheelDown && ev.Action == tea.MouseActionPress:
		view.Scroll(viewport.ScrollDown)
	case ev.Action == tea.MouseActionPress:
		view.Press(button(ev.Button), p)
	case ev.Action == tea.MouseActionMotion:
		view.Move(p)
	case ev.Action == tea.MouseActionRelease:
		view.Release()
	}

	// hover readout uses the post-update viewport
	f.View = view.Viewport()
	m.cursor = f.Pos(ev.X-plotOriginX, ev.Y-plotOriginY)
	return m
}

func button(b tea.MouseButton) viewport.Button {
	switch b {
	case tea.MouseButtonLeft:
		return viewport.ButtonPrimary
	case tea.MouseButtonRight:
		return viewport.ButtonSecondary
	case tea.MouseButtonMiddle:
		return viewport.ButtonMiddle
	}
	return viewport.ButtonNone
}

func (m model) legendLines() int {
	n := len(m.session.Curves())
	if n == 0 {
		return 1
	}
	return min(n, maxLegend)
}

// frame is the plot area for the current window size and viewport.
func (m model) frame() viz.Frame {
	cols := max(minCols, m.width-borderLines)
	rows := max(minRows, m.height-titleLines-borderLines-fixedFooter-m.legendLines())
	return viz.Frame{Cols: cols, Rows: rows, View: m.session.View().Viewport()}
}

func (m model) View() string {
	s := m.styles
	scene := m.session.Scene()
	f := m.frame()
	f.View = scene.Viewport

	curves := scene.Curves
	if len(curves) > maxLegend {
		curves = curves[len(curves)-maxLegend:]
	}

	title := s.Title.Render("graphcalc") + s.Status.Render(
		fmt.Sprintf("  %d curves  %s  %s", len(scene.Curves), m.session.View().State(), m.theme.Name))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.Panel.Render(viz.Render(scene.Curves, f, m.theme)),
		viz.Ticks(scene.Viewport, m.theme),
		viz.Legend(curves, m.theme),
		m.input.View(),
		m.statusLine(),
		s.HelpLine("enter", "plot", "^l", "clear", "pgup/pgdn", "zoom", "^r", "reset", "^t", "theme", "^e", "svg", "esc", "quit"),
	)
}

func (m model) statusLine() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render(m.err.Error())
	case m.cursor.Inside:
		return m.styles.Status.Render(fmt.Sprintf("x = %.4g  y = %.4g", m.cursor.X, m.cursor.Y))
	case m.status != "":
		return m.styles.Status.Render(m.status)
	}
	return m.styles.Status.Render("scroll to zoom, drag to pan")
}

// Run starts the interactive plotter and blocks until the user quits.
func Run(cfg *config.Config, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	th, _ := viz.GetTheme(cfg.Theme)
	s := session.FromConfig(cfg, logger)
	m := newModel(s, th, cfg.ExportPath, logger)

	logger.Info("starting", "theme", th.Name, "samples", s.Samples(), "view", s.View().Viewport().String())
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
