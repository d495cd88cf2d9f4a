package gui

import "image"

// MouseButton is one of the pointer buttons tracked by an InputSnapshot.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight

	mouseButtonCount
)

// ButtonEdges holds the three independent per-frame facts about a button.
type ButtonEdges struct {
	Pressed  bool // went down this frame
	Down     bool // held this frame
	Released bool // went up this frame
}

// InputSnapshot is the pointer state captured once per frame, before any
// widget runs.
type InputSnapshot struct {
	Pointer image.Point
	Buttons [mouseButtonCount]ButtonEdges
}

func (s InputSnapshot) edges(b MouseButton) ButtonEdges {
	if b < 0 || b >= mouseButtonCount {
		return ButtonEdges{}
	}
	return s.Buttons[b]
}

func (s InputSnapshot) Pressed(b MouseButton) bool  { return s.edges(b).Pressed }
func (s InputSnapshot) Down(b MouseButton) bool     { return s.edges(b).Down }
func (s InputSnapshot) Released(b MouseButton) bool { return s.edges(b).Released }

// AnyDown reports whether any tracked button is held.
func (s InputSnapshot) AnyDown() bool {
	for _, e := range s.Buttons {
		if e.Down {
			return true
		}
	}
	return false
}

// AnyReleased reports whether any tracked button went up this frame.
func (s InputSnapshot) AnyReleased() bool {
	for _, e := range s.Buttons {
		if e.Released {
			return true
		}
	}
	return false
}

// PointerIn reports whether the pointer lies inside r.
func (s InputSnapshot) PointerIn(r image.Rectangle) bool {
	return s.Pointer.In(r)
}

// Press returns a copy of s with button b pressed (and held) this frame.
func (s InputSnapshot) Press(b MouseButton) InputSnapshot {
	s.Buttons[b] = ButtonEdges{Pressed: true, Down: true}
	return s
}

// Hold returns a copy of s with button b held and no edge.
func (s InputSnapshot) Hold(b MouseButton) InputSnapshot {
	s.Buttons[b] = ButtonEdges{Down: true}
	return s
}

// Release returns a copy of s with button b released this frame.
func (s InputSnapshot) Release(b MouseButton) InputSnapshot {
	s.Buttons[b] = ButtonEdges{Released: true}
	return s
}

// At returns a copy of s with the pointer moved to p.
func (s InputSnapshot) At(p image.Point) InputSnapshot {
	s.Pointer = p
	return s
}
