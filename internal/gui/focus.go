package gui

import "image"

type selectedKind uint8

const (
	selectedNone selectedKind = iota
	selectedUnavailable
	selectedWidget
)

// SelectedItem is who holds hot or active: nobody yet, a non-widget region
// that blocks further claims, or a specific widget.
type SelectedItem struct {
	kind selectedKind
	id   Id
}

var (
	NoItem          = SelectedItem{}
	UnavailableItem = SelectedItem{kind: selectedUnavailable}
)

// Item returns the selection held by widget id.
func Item(id Id) SelectedItem {
	return SelectedItem{kind: selectedWidget, id: id}
}

func (s SelectedItem) IsNone() bool        { return s.kind == selectedNone }
func (s SelectedItem) IsUnavailable() bool { return s.kind == selectedUnavailable }

// Is reports whether widget id holds the selection.
func (s SelectedItem) Is(id Id) bool {
	return s.kind == selectedWidget && s.id == id
}

// Id returns the holding widget, if the selection is held by one.
func (s SelectedItem) Id() (Id, bool) {
	return s.id, s.kind == selectedWidget
}

// claim assigns id when nothing holds the selection and cond is true. It
// returns whether id holds the selection afterwards.
func (s *SelectedItem) claim(id Id, cond bool) bool {
	if s.kind == selectedNone && cond {
		*s = Item(id)
	}
	return s.Is(id)
}

// Context is the per-frame focus state shared by every widget. Widgets must
// be visited front to back: the first widget to claim hot wins, so the order
// of calls is what makes a front surface occlude the ones behind it.
type Context struct {
	Hot    SelectedItem
	Active SelectedItem
	Input  InputSnapshot

	screen image.Point
}

// BeginFrame starts a frame. Hot is recomputed from scratch every frame;
// Active carries over.
func (c *Context) BeginFrame(in InputSnapshot, screen image.Point) {
	c.Input = in
	c.screen = screen
	c.Hot = NoItem
}

// EndFrame finishes a frame. Once every button is up the active widget has
// seen its release, so the capture ends here.
func (c *Context) EndFrame() {
	if !c.Input.AnyDown() {
		c.Active = NoItem
	}
}

// Screen is the logical screen size passed to BeginFrame.
func (c *Context) Screen() image.Point {
	return c.screen
}

// ClaimHot makes id hot if no one is hot yet and the pointer is over it.
// It returns whether id is hot.
func (c *Context) ClaimHot(id Id, hovered bool) bool {
	return c.Hot.claim(id, hovered)
}

// ClaimActive makes id active if no one is active yet and activate holds.
// It returns whether id is active.
func (c *Context) ClaimActive(id Id, activate bool) bool {
	return c.Active.claim(id, activate)
}

// Capture makes id active whoever held it before.
func (c *Context) Capture(id Id) {
	c.Active = Item(id)
}

// BlockHot marks hot as taken for the rest of the frame so nothing beneath
// the caller can become hot.
func (c *Context) BlockHot() {
	c.Hot = UnavailableItem
}

// AbsorbHover swallows hover over r for containers that are not widgets
// themselves, so clicks do not reach whatever lies underneath.
func (c *Context) AbsorbHover(r image.Rectangle) {
	if c.Hot.IsNone() && c.Input.PointerIn(r) {
		c.Hot = UnavailableItem
	}
}

// Release drops id's capture, if it holds it.
func (c *Context) Release(id Id) {
	if c.Active.Is(id) {
		c.Active = NoItem
	}
}

// IsHot and IsActive are shorthands for c.Hot.Is and c.Active.Is.
func (c *Context) IsHot(id Id) bool    { return c.Hot.Is(id) }
func (c *Context) IsActive(id Id) bool { return c.Active.Is(id) }

// ButtonState is the per-frame outcome of Context.Button.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonClicked  // pressed this frame
	ButtonHeld     // still captured, pressed on an earlier frame
	ButtonReleased // released while hovered: the click counts
	ButtonDisabled
)

// Button runs the stateless button protocol for id over the left button.
func (c *Context) Button(id Id, hovered, disabled bool) ButtonState {
	if disabled {
		return ButtonDisabled
	}
	hot := c.ClaimHot(id, hovered)
	if c.ClaimActive(id, hot && c.Input.Pressed(MouseLeft)) {
		switch {
		case c.Input.Pressed(MouseLeft):
			return ButtonClicked
		case c.Input.Released(MouseLeft):
			c.Release(id)
			if hot {
				return ButtonReleased
			}
			return ButtonIdle
		default:
			return ButtonHeld
		}
	}
	if hot {
		return ButtonHovered
	}
	return ButtonIdle
}
