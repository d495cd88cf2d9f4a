package ui

import (
	"image"

	"github.com/04pril/imsweeper/internal/gui"
)

const (
	TileSize     = 24
	Padding      = 12
	HeaderHeight = 40
)

// MinScreen keeps room for the menubar and the popups on small boards.
var MinScreen = image.Pt(240, 240)

// ScreenSize is the logical screen needed for a cols x rows board below a
// menubar of the given height.
func ScreenSize(cols, rows, menubarHeight int) image.Point {
	w := cols*TileSize + Padding*2
	h := menubarHeight + HeaderHeight + rows*TileSize + Padding*2
	return image.Pt(max(w, MinScreen.X), max(h, MinScreen.Y))
}

// centred returns a rect of size sz centred on the point c.
func centred(c, sz image.Point) image.Rectangle {
	tl := c.Sub(sz.Div(2))
	return image.Rectangle{Min: tl, Max: tl.Add(sz)}
}

// textButton draws a framed label and runs the button protocol for it.
// It reports a click.
func textButton(ctx *gui.Context, id gui.Id, label string, rect image.Rectangle, m gui.Measurer, r gui.Renderer) bool {
	state := ctx.Button(id, ctx.Input.PointerIn(rect), false)
	frame, paint := gui.FrameRaised, gui.PaintButtonText
	switch state {
	case gui.ButtonClicked, gui.ButtonHeld:
		frame = gui.FramePressed
	case gui.ButtonHovered:
		paint = gui.PaintAccent
	}
	sz := m.Measure(label)
	pos := rect.Min.Add(rect.Size().Sub(sz).Div(2))
	r.Draw(gui.TextShape{Pos: pos, Text: label, Paint: paint})
	r.Draw(gui.NineSliceShape{Rect: rect, Frame: frame})
	return state == gui.ButtonReleased
}
