package gui

import "image"

// Paint is a palette role; the backend maps it to a color from its theme.
type Paint int

const (
	PaintNone Paint = iota
	PaintBackground
	PaintMenubar
	PaintMenubarHot
	PaintMenuText
	PaintMenuTextHot
	PaintShadow
	PaintPopupTitleText
	PaintPopupBodyText
	PaintClose
	PaintCloseHot
	PaintButtonText
	PaintDisabledText
	PaintAccent
)

// Frame is a bordered-rectangle style drawn by the backend as a nine-slice.
type Frame int

const (
	FrameRaised Frame = iota
	FrameSunken
	FramePressed
	FramePopupTitle
	FramePopupBody
	FrameDropdown
	FrameCounter
	FrameMinefield
)

// Sprite names an image region of the tile sheet.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteTileUnopened
	SpriteTileDug
	SpriteTileLosing
	SpriteBomb
	SpriteBombExploded
	SpriteFlag
	SpriteFlagWrong
	SpriteFlagExploded
	SpriteSelector
	SpriteClose
	SpriteRadio
	SpriteFaceHappy
	SpriteFaceWorried
	SpriteFaceWon
	SpriteFaceLost
	SpriteCounterDash
	SpriteCounterBlank
	SpriteTimerColon
	SpriteTimerColonOff

	// SpriteNumber(1) is spriteNumberBase+1.
	spriteNumberBase
	spriteDigitBase = spriteNumberBase + 9
	spriteDigitsEnd = spriteDigitBase + 10
)

// SpriteNumber is the icon for a revealed tile with n neighbouring bombs.
func SpriteNumber(n int) Sprite {
	if n <= 0 || n > 8 {
		return SpriteNone
	}
	return spriteNumberBase + Sprite(n)
}

// SpriteDigit is a seven-segment counter digit.
func SpriteDigit(d int) Sprite {
	if d < 0 || d > 9 {
		return SpriteCounterBlank
	}
	return spriteDigitBase + Sprite(d)
}

// Number returns n for SpriteNumber(n), or 0.
func (s Sprite) Number() int {
	if s > spriteNumberBase && s < spriteDigitBase {
		return int(s - spriteNumberBase)
	}
	return 0
}

// Digit returns d for SpriteDigit(d).
func (s Sprite) Digit() (int, bool) {
	if s >= spriteDigitBase && s < spriteDigitsEnd {
		return int(s - spriteDigitBase), true
	}
	return 0, false
}

// Shape is one draw command.
type Shape interface {
	shape()
}

type RectShape struct {
	Rect  image.Rectangle
	Paint Paint
}

type TextShape struct {
	Pos   image.Point
	Text  string
	Paint Paint
}

type ImageShape struct {
	Pos    image.Point
	Sprite Sprite
	Tint   Paint
}

type NineSliceShape struct {
	Rect  image.Rectangle
	Frame Frame
}

// TileLayers is what a single minefield tile shows: a background and an
// optional icon drawn over it.
type TileLayers struct {
	Background Sprite
	Icon       Sprite
}

// FieldShape blits the whole minefield in one command.
type FieldShape struct {
	Rect     image.Rectangle
	Cols     int
	TileSize int
	Tiles    []TileLayers
}

func (RectShape) shape()      {}
func (TextShape) shape()      {}
func (ImageShape) shape()     {}
func (NineSliceShape) shape() {}
func (FieldShape) shape()     {}

// Renderer consumes draw commands. Widgets emit them front to back, in the
// same order they are visited, so a backend paints them in reverse.
type Renderer interface {
	Draw(s Shape)
}

// DrawList records the commands of one frame.
type DrawList struct {
	shapes []Shape
}

func (l *DrawList) Draw(s Shape) {
	l.shapes = append(l.shapes, s)
}

// Shapes returns the recorded commands, front first.
func (l *DrawList) Shapes() []Shape {
	return l.shapes
}

// Reset empties the list, keeping its storage.
func (l *DrawList) Reset() {
	clear(l.shapes)
	l.shapes = l.shapes[:0]
}

// BackToFront calls fn for every command in painting order.
func (l *DrawList) BackToFront(fn func(Shape)) {
	for i := len(l.shapes) - 1; i >= 0; i-- {
		fn(l.shapes[i])
	}
}
