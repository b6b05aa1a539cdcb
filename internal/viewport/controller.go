package viewport

// State is the drag state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Direction is a scroll direction. Up zooms out, Down zooms in.
type Direction int

const (
	ScrollUp Direction = iota
	ScrollDown
)

// Pos is a pointer position in data space. Inside is false when the
// pointer is outside the plot area and X, Y carry no meaning.
type Pos struct {
	X, Y   float64
	Inside bool
}

// At returns a valid position.
func At(x, y float64) Pos { return Pos{X: x, Y: y, Inside: true} }

// Outside is a position off the plot area.
var Outside = Pos{}

// Default zoom factors applied to both ends of each range.
const (
	DefaultZoomOut = 1.1
	DefaultZoomIn  = 0.9
)

type drag struct {
	anchor   Pos
	snapshot Viewport
}

// Controller owns the viewport and updates it from pan and zoom gestures.
// It is not safe for concurrent use.
type Controller struct {
	initial Viewport
	view    Viewport
	zoomOut float64
	zoomIn  float64
	drag    *drag
}

// Option configures a Controller.
type Option func(*Controller)

// WithZoom sets the zoom-out and zoom-in factors. Non-positive values are ignored.
func WithZoom(out, in float64) Option {
	return func(c *Controller) {
		if out > 0 {
			c.zoomOut = out
		}
		if in > 0 {
			c.zoomIn = in
		}
	}
}

// NewController starts Idle at v, or at Default if v is not valid.
func NewController(v Viewport, opts ...Option) *Controller {
	if !v.Valid() {
		v = Default()
	}
	c := &Controller{initial: v, view: v, zoomOut: DefaultZoomOut, zoomIn: DefaultZoomIn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Viewport returns the current rectangle.
func (c *Controller) Viewport() Viewport { return c.view }

// State returns Idle or Dragging.
func (c *Controller) State() State {
	if c.drag != nil {
		return Dragging
	}
	return Idle
}

// Reference is the rectangle pointer positions should be resolved against:
// the press-time snapshot while dragging, the current one otherwise.
func (c *Controller) Reference() Viewport {
	if c.drag != nil {
		return c.drag.snapshot
	}
	return c.view
}

// Press starts a drag when b is the primary button and p is inside the
// plot. Anything else is ignored.
func (c *Controller) Press(b Button, p Pos) bool {
	if b != ButtonPrimary || !p.Inside {
		return false
	}
	c.drag = &drag{anchor: p, snapshot: c.view}
	return true
}

// Move pans so the anchor point stays under the cursor. It reports
// whether the viewport changed; moves while Idle or outside the plot are
// ignored.
func (c *Controller) Move(p Pos) bool {
	if c.drag == nil || !p.Inside {
		return false
	}
	dx := c.drag.anchor.X - p.X
	dy := c.drag.anchor.Y - p.Y
	return c.set(c.drag.snapshot.Shift(dx, dy))
}

// Release ends a drag.
func (c *Controller) Release() {
	c.drag = nil
}

// Scroll zooms out on ScrollUp and in on ScrollDown. A drag in progress
// keeps going from its press-time snapshot.
func (c *Controller) Scroll(d Direction) bool {
	f := c.zoomIn
	if d == ScrollUp {
		f = c.zoomOut
	}
	return c.set(c.view.Scale(f))
}

// Reset returns to the startup rectangle and drops any drag.
func (c *Controller) Reset() {
	c.view = c.initial
	c.drag = nil
}

// set applies v unless it would break the non-empty, finite invariant.
func (c *Controller) set(v Viewport) bool {
	if !v.Valid() {
		return false
	}
	changed := v != c.view
	c.view = v
	return changed
}
