package backend

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/imsweeper/internal/gui"
)

// painter draws one frame's shapes onto dst with a theme.
type painter struct {
	dst  *ebiten.Image
	th   theme
	face font.Face
	tile int
}

func newPainter(dst *ebiten.Image, th theme, tile int) *painter {
	return &painter{dst: dst, th: th, face: basicfont.Face7x13, tile: tile}
}

func (p *painter) paint(s gui.Shape) {
	switch s := s.(type) {
	case gui.RectShape:
		fillRect(p.dst, s.Rect, p.th.paint(s.Paint))
	case gui.TextShape:
		p.text(s.Pos, s.Text, p.th.paint(s.Paint))
	case gui.ImageShape:
		p.sprite(s.Pos, p.tile, s.Sprite, s.Tint)
	case gui.NineSliceShape:
		p.frame(s.Rect, s.Frame)
	case gui.FieldShape:
		p.field(s)
	}
}

// text draws s with its top-left corner at pos, one line per '\n'.
func (p *painter) text(pos image.Point, s string, clr color.Color) {
	m := p.face.Metrics()
	y := pos.Y + m.Ascent.Ceil()
	for _, ln := range strings.Split(s, "\n") {
		text.Draw(p.dst, ln, p.face, pos.X, y, clr)
		y += m.Height.Ceil()
	}
}

func (p *painter) field(f gui.FieldShape) {
	if f.Cols <= 0 {
		return
	}
	for i, t := range f.Tiles {
		at := f.Rect.Min.Add(image.Pt(i%f.Cols, i/f.Cols).Mul(f.TileSize))
		p.sprite(at, f.TileSize, t.Background, gui.PaintNone)
		p.sprite(at, f.TileSize, t.Icon, gui.PaintNone)
	}
}

func (p *painter) frame(r image.Rectangle, f gui.Frame) {
	th := p.th
	switch f {
	case gui.FrameRaised:
		bevel(p.dst, r, th.CellHidden, th.Light, th.Dark)
	case gui.FrameSunken, gui.FramePressed:
		bevel(p.dst, r, th.Panel, th.Dark, th.Light)
	case gui.FramePopupTitle:
		fillRect(p.dst, r, th.Accent)
	case gui.FramePopupBody, gui.FrameDropdown:
		bevel(p.dst, r, th.Panel, th.Light, th.Dark)
	case gui.FrameCounter:
		bevel(p.dst, r, th.DigitBG, th.Dark, th.Light)
	case gui.FrameMinefield:
		bevel(p.dst, r, th.Panel, th.Dark, th.Light)
	}
}

// sprite draws one tile-sheet image with its top-left corner at pos. size
// is the edge of a square tile.
func (p *painter) sprite(pos image.Point, size int, s gui.Sprite, tint gui.Paint) {
	th := p.th
	x, y := float32(pos.X), float32(pos.Y)
	n := float32(size)
	tinted := func(def color.Color) color.Color {
		if tint != gui.PaintNone {
			return th.paint(tint)
		}
		return def
	}

	if d, ok := s.Digit(); ok {
		drawSevenSegDigit(p.dst, pos.X, pos.Y, d, th.Digit, th.DigitOff)
		return
	}
	if c := s.Number(); c > 0 {
		p.textCentered(strconv.Itoa(c), pos.X, pos.Y+(size-13)/2, size, th.number(c))
		return
	}

	switch s {
	case gui.SpriteTileUnopened:
		bevel(p.dst, image.Rect(pos.X, pos.Y, pos.X+size, pos.Y+size), th.CellHidden, th.Light, th.Dark)
	case gui.SpriteTileDug, gui.SpriteTileLosing:
		fill := th.CellRevealed
		if s == gui.SpriteTileLosing {
			fill = th.Losing
		}
		vector.DrawFilledRect(p.dst, x, y, n, n, fill, false)
		vector.StrokeRect(p.dst, x, y, n, n, 1, th.CellGrid, false)
	case gui.SpriteBomb:
		vector.DrawFilledCircle(p.dst, x+n/2, y+n/2, 6, th.Mine, false)
	case gui.SpriteBombExploded:
		vector.DrawFilledCircle(p.dst, x+n/2, y+n/2, 9, th.Flag, false)
		vector.DrawFilledCircle(p.dst, x+n/2, y+n/2, 6, color.Black, false)
	case gui.SpriteFlag:
		drawFlag(p.dst, x, y, th)
	case gui.SpriteFlagWrong:
		drawFlag(p.dst, x, y, th)
		vector.StrokeLine(p.dst, x+4, y+4, x+n-4, y+n-4, 2, th.WrongFlag, false)
		vector.StrokeLine(p.dst, x+n-4, y+4, x+4, y+n-4, 2, th.WrongFlag, false)
	case gui.SpriteFlagExploded:
		vector.DrawFilledCircle(p.dst, x+n/2, y+n/2, 10, th.Losing, false)
		drawFlag(p.dst, x, y, th)
	case gui.SpriteSelector:
		vector.StrokeRect(p.dst, x+2, y+2, n-4, n-4, 2, th.Accent, false)
	case gui.SpriteClose:
		clr := tinted(th.Dark)
		vector.StrokeLine(p.dst, x+1, y+1, x+6, y+6, 1.5, clr, false)
		vector.StrokeLine(p.dst, x+6, y+1, x+1, y+6, 1.5, clr, false)
	case gui.SpriteRadio:
		vector.DrawFilledCircle(p.dst, x+2.5, y+2.5, 2.5, tinted(th.HeaderText), false)
	case gui.SpriteFaceHappy, gui.SpriteFaceWorried, gui.SpriteFaceWon, gui.SpriteFaceLost:
		p.textCentered(faceText(s), pos.X, pos.Y+4, 24, th.HeaderText)
	case gui.SpriteCounterDash:
		drawSevenSegDigit(p.dst, pos.X, pos.Y, -1, th.Digit, th.DigitOff)
	case gui.SpriteCounterBlank:
		drawSevenSegDigit(p.dst, pos.X, pos.Y, -2, th.Digit, th.DigitOff)
	case gui.SpriteTimerColon, gui.SpriteTimerColonOff:
		clr := th.DigitOff
		if s == gui.SpriteTimerColon {
			clr = th.Digit
		}
		vector.DrawFilledRect(p.dst, x+3, y+7, 2, 2, clr, false)
		vector.DrawFilledRect(p.dst, x+3, y+15, 2, 2, clr, false)
	}
}

func faceText(s gui.Sprite) string {
	switch s {
	case gui.SpriteFaceWorried:
		return ":O"
	case gui.SpriteFaceWon:
		return "B)"
	case gui.SpriteFaceLost:
		return "X("
	}
	return ":)"
}

func (p *painter) textCentered(s string, x, y, w int, clr color.Color) {
	b := text.BoundString(p.face, s)
	text.Draw(p.dst, s, p.face, x+(w-b.Dx())/2, y+13, clr)
}

func drawFlag(dst *ebiten.Image, x, y float32, th theme) {
	vector.DrawFilledRect(dst, x+11, y+6, 2, 12, th.CellText, false)
	vector.StrokeLine(dst, x+11, y+6, x+5, y+10, 1.5, th.Flag, false)
	vector.StrokeLine(dst, x+5, y+10, x+11, y+14, 1.5, th.Flag, false)
	vector.StrokeLine(dst, x+11, y+6, x+11, y+14, 1.5, th.Flag, false)
	vector.DrawFilledRect(dst, x+8, y+8, 3, 4, th.Flag, false)
	vector.DrawFilledRect(dst, x+7, y+17, 9, 2, th.CellText, false)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// bevel fills r and draws a 3D edge: hi on the top and left, lo on the
// bottom and right. Swapping hi and lo sinks the rectangle.
func bevel(dst *ebiten.Image, r image.Rectangle, fill, hi, lo color.Color) {
	fillRect(dst, r, fill)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	vector.StrokeLine(dst, x, y, x1, y, 2, hi, false)
	vector.StrokeLine(dst, x, y, x, y1, 2, hi, false)
	vector.StrokeLine(dst, x1, y, x1, y1, 2, lo, false)
	vector.StrokeLine(dst, x, y1, x1, y1, 2, lo, false)
}

// Segment bits a b c d e f g, from bit 6 down to bit 0.
var segmentMasks = [10]uint8{
	0b1111110,
	0b0110000,
	0b1101101,
	0b1111001,
	0b0110011,
	0b1011011,
	0b1011111,
	0b1110000,
	0b1111111,
	0b1111011,
}

// segmentMask returns the lit segments for d. -1 is a minus sign, any
// other value outside 0..9 is blank.
func segmentMask(d int) uint8 {
	switch {
	case d >= 0 && d <= 9:
		return segmentMasks[d]
	case d == -1:
		return 0b0000001
	}
	return 0
}

var segmentRects = [7][4]float32{
	{3, 0, 10, 2},  // a
	{13, 2, 2, 9},  // b
	{13, 13, 2, 9}, // c
	{3, 22, 10, 2}, // d
	{1, 13, 2, 9},  // e
	{1, 2, 2, 9},   // f
	{3, 11, 10, 2}, // g
}

func drawSevenSegDigit(dst *ebiten.Image, x, y, d int, on, off color.Color) {
	mask := segmentMask(d)
	for i, sr := range segmentRects {
		clr := off
		if mask&(1<<(6-i)) != 0 {
			clr = on
		}
		vector.DrawFilledRect(dst, float32(x)+sr[0], float32(y)+sr[1], sr[2], sr[3], clr, false)
	}
}
