package gui

import "image"

// WidgetState is the visual state of a PushButton.
type WidgetState int

const (
	StateIdle WidgetState = iota
	StateHovered
	StateDepressed
	StateDisabled
)

func (s WidgetState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StateDepressed:
		return "depressed"
	case StateDisabled:
		return "disabled"
	}
	return "unknown"
}

// PressMode selects whether a PushButton fires on press or on release.
type PressMode int

const (
	PressImmediate PressMode = iota
	PressRelease
)

// Edge is the left-button edge seen by a PushButton this frame.
type Edge int

const (
	EdgeNone Edge = iota
	EdgePressed
	EdgeReleased
)

// PushButton is a retained button with a latched, read-and-clear click.
type PushButton struct {
	Id    Id
	Rect  image.Rectangle
	Label string

	state WidgetState
	mode  PressMode
	fired bool
}

func NewPushButton(id Id, rect image.Rectangle, label string, mode PressMode, disabled bool) *PushButton {
	b := &PushButton{Id: id, Rect: rect, Label: label, mode: mode}
	if disabled {
		b.state = StateDisabled
	}
	return b
}

func (b *PushButton) State() WidgetState { return b.state }

// Step advances the state machine by one frame.
func (b *PushButton) Step(edge Edge, over bool) {
	if b.state == StateDisabled {
		return
	}
	switch {
	case !over:
		b.state = StateIdle
	case edge == EdgePressed:
		if b.mode == PressImmediate {
			b.fired = true
		}
		b.state = StateDepressed
	case edge == EdgeReleased:
		if b.mode == PressRelease {
			b.fired = true
		}
		b.state = StateHovered
	case b.state == StateDepressed:
	default:
		b.state = StateHovered
	}
}

// Update feeds one frame of ctx into the button. The pointer only counts as
// over the button when the button wins hot, so a button covered by another
// surface stays idle. A press makes the button active, and only the release
// of a press it owns reaches the state machine.
func (b *PushButton) Update(ctx *Context) {
	if b.state == StateDisabled {
		return
	}
	over := ctx.ClaimHot(b.Id, ctx.Input.PointerIn(b.Rect))
	edge := EdgeNone
	switch {
	case ctx.Input.Pressed(MouseLeft):
		if ctx.ClaimActive(b.Id, over) {
			edge = EdgePressed
		}
	case ctx.Input.Released(MouseLeft):
		if ctx.IsActive(b.Id) {
			edge = EdgeReleased
		}
	}
	// Another widget's drag passing over does not light the button.
	if !ctx.Active.IsNone() && !ctx.IsActive(b.Id) {
		over = false
	}
	b.Step(edge, over)
}

// Consume reports a pending click and clears it.
func (b *PushButton) Consume() bool {
	fired := b.fired
	b.fired = false
	return fired
}
