package ui

import (
	"image"
	"strconv"
	"time"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

const (
	digitWidth  = 16
	digitHeight = 24
	digitGap    = 2
	faceSize    = 28
	timerWidth  = 84
	timerHeight = digitHeight + 4
	maxTimer    = 100*time.Minute - time.Second
)

// DefaultCustom seeds the custom popup before any custom game was played.
var DefaultCustom = minesweeper.Values{Width: 24, Height: 20, Bombs: 99}

// Element is a game of minesweeper on screen: the face button, the bomb
// counter and the timer along the top, and the minefield below.
type Element struct {
	game       *minesweeper.Engine
	difficulty minesweeper.Difficulty
	custom     minesweeper.Values
	hasCustom  bool
	opts       []minesweeper.Option

	field *Minefield
	face  *gui.PushButton

	requestingNewGame bool
}

func NewElement(d minesweeper.Difficulty, field *Minefield, opts ...minesweeper.Option) *Element {
	e := &Element{
		field: field,
		face:  gui.NewPushButton(field.Id().Child(1), image.Rectangle{}, "", gui.PressRelease, false),
		opts:  opts,
	}
	e.NewGame(d)
	return e
}

func (e *Element) Game() *minesweeper.Engine          { return e.game }
func (e *Element) Difficulty() minesweeper.Difficulty { return e.difficulty }
func (e *Element) Field() *Minefield                  { return e.field }

// CustomValues are the values of the last custom game, if there was one.
func (e *Element) CustomValues() (minesweeper.Values, bool) {
	return e.custom, e.hasCustom
}

// GameInProgress reports whether starting over would throw away progress.
func (e *Element) GameInProgress() bool {
	return e.game.State() == minesweeper.Playing && e.game.Turns() != 0
}

// RequestingNewGame reports a click on the face button and clears it; the
// caller deals with the request.
func (e *Element) RequestingNewGame() bool {
	r := e.requestingNewGame
	e.requestingNewGame = false
	return r
}

// NewGame replaces the engine wholesale.
func (e *Element) NewGame(d minesweeper.Difficulty) {
	e.difficulty = d
	e.game = minesweeper.NewGame(d, e.opts...)
	if d.Level == minesweeper.LevelCustom {
		e.custom, e.hasCustom = d.Custom, true
	}
	e.field.Reset()
}

// Update draws the header into the top of area and the board below it.
func (e *Element) Update(ctx *gui.Context, area image.Rectangle, r gui.Renderer) FieldEvent {
	header := image.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Min.Y+HeaderHeight)
	mid := (header.Min.X + header.Max.X) / 2

	e.face.Rect = image.Rect(mid-faceSize/2, header.Min.Y+4, mid+faceSize/2, header.Min.Y+4+faceSize)
	e.face.Update(ctx)
	if e.face.Consume() {
		e.requestingNewGame = true
	}

	fieldArea := image.Rect(area.Min.X, header.Max.Y, area.Max.X, area.Max.Y)
	event := e.field.Update(ctx, fieldArea, e.game, r)

	e.drawFace(ctx, r)
	lowerX := area.Min.X + area.Dx()/6
	upperX := area.Min.X + area.Dx()*5/6
	e.drawCounter(image.Pt(lowerX, header.Min.Y+4), r)
	e.drawTimer(image.Pt(upperX, header.Min.Y+4), r)
	return event
}

func (e *Element) drawFace(ctx *gui.Context, r gui.Renderer) {
	sprite := gui.SpriteFaceHappy
	switch {
	case e.game.State() == minesweeper.Lose:
		sprite = gui.SpriteFaceLost
	case e.game.State() == minesweeper.Win:
		sprite = gui.SpriteFaceWon
	case ctx.IsActive(e.field.Id()) && ctx.Input.AnyDown():
		sprite = gui.SpriteFaceWorried
	}
	frame := gui.FrameRaised
	if e.face.State() == gui.StateDepressed {
		frame = gui.FramePressed
	}
	r.Draw(gui.ImageShape{Pos: e.face.Rect.Min.Add(image.Pt(2, 2)), Sprite: sprite})
	r.Draw(gui.NineSliceShape{Rect: e.face.Rect, Frame: frame})
}

// counterDigits is how many digits the bomb counter shows: enough for the
// bomb count, and never fewer than two.
func counterDigits(bombs int) int {
	return max(2, len(strconv.Itoa(bombs)))
}

// CounterSprites lays out value over digits places, units first. Leading
// zeros are blank except for the units digit; !ok shows dashes.
func CounterSprites(value int, ok bool, digits int) []gui.Sprite {
	out := make([]gui.Sprite, digits)
	place := 1
	for i := range out {
		switch {
		case !ok:
			out[i] = gui.SpriteCounterDash
		case place <= value || i == 0:
			out[i] = gui.SpriteDigit(value / place % 10)
		default:
			out[i] = gui.SpriteCounterBlank
		}
		place *= 10
	}
	return out
}

func (e *Element) drawCounter(centre image.Point, r gui.Renderer) {
	value, ok := e.game.FlagsLeft()
	digits := counterDigits(e.game.BombCount())
	size := image.Pt(digits*(digitWidth+digitGap)+4, timerHeight)
	rect := centred(centre.Add(image.Pt(0, size.Y/2)), size)

	for i, s := range CounterSprites(value, ok, digits) {
		x := rect.Min.X + 3 + (digitWidth+digitGap)*(digits-i-1)
		r.Draw(gui.ImageShape{Pos: image.Pt(x, rect.Min.Y+2), Sprite: s})
	}
	r.Draw(gui.NineSliceShape{Rect: rect, Frame: gui.FrameCounter})
}

// TimerSprites is the mm:ss readout. Tens of minutes stay blank under ten
// minutes; before the first turn everything is blank and the colon unlit.
func TimerSprites(elapsed time.Duration, started bool) (digits [4]gui.Sprite, colon gui.Sprite) {
	if !started {
		for i := range digits {
			digits[i] = gui.SpriteCounterBlank
		}
		return digits, gui.SpriteTimerColonOff
	}
	secs := int(min(max(elapsed, 0), maxTimer) / time.Second)
	digits[0] = gui.SpriteCounterBlank
	if secs >= 10*60 {
		digits[0] = gui.SpriteDigit(secs / 60 / 10)
	}
	digits[1] = gui.SpriteDigit(secs / 60 % 10)
	digits[2] = gui.SpriteDigit(secs % 60 / 10)
	digits[3] = gui.SpriteDigit(secs % 10)
	return digits, gui.SpriteTimerColon
}

func (e *Element) drawTimer(centre image.Point, r gui.Renderer) {
	rect := centred(centre.Add(image.Pt(0, timerHeight/2)), image.Pt(timerWidth, timerHeight))
	digits, colon := TimerSprites(e.game.Elapsed(), e.game.Turns() != 0)
	for i, along := range [4]int{3, 21, 47, 65} {
		r.Draw(gui.ImageShape{Pos: image.Pt(rect.Min.X+along, rect.Min.Y+2), Sprite: digits[i]})
	}
	r.Draw(gui.ImageShape{Pos: image.Pt(rect.Min.X+39, rect.Min.Y+2), Sprite: colon})
	r.Draw(gui.NineSliceShape{Rect: rect, Frame: gui.FrameCounter})
}
