package ui

import (
	"image"

	"github.com/rs/zerolog/log"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

// ChordState tracks the chording gesture of one minefield.
type ChordState int

const (
	ChordIdle ChordState = iota
	Chording
	Chorded // chord applied, waiting for every button to come up
)

func (s ChordState) String() string {
	switch s {
	case ChordIdle:
		return "idle"
	case Chording:
		return "chording"
	case Chorded:
		return "chorded"
	}
	return "unknown"
}

// FieldEvent is a game-ending transition caused by the minefield this frame.
type FieldEvent int

const (
	FieldNone FieldEvent = iota
	FieldWon
	FieldLost
)

// Minefield binds pointer input to an engine.
type Minefield struct {
	id       gui.Id
	exploder Exploder
	audio    Audio

	chord      ChordState
	flagging   bool
	flagMode   minesweeper.FlagMode
	losingTile int

	tiles []gui.TileLayers
}

func NewMinefield(id gui.Id, exploder Exploder, audio Audio) *Minefield {
	return &Minefield{id: id, exploder: exploder, audio: audio, losingTile: -1}
}

func (m *Minefield) Id() gui.Id             { return m.id }
func (m *Minefield) ChordState() ChordState { return m.chord }

// LosingTile is where the explosion started.
func (m *Minefield) LosingTile() (int, bool) {
	return m.losingTile, m.losingTile >= 0
}

// Reset forgets everything about the previous game.
func (m *Minefield) Reset() {
	m.chord = ChordIdle
	m.flagging = false
	m.losingTile = -1
	m.exploder.Reset()
}

// FieldRect centres the board in area without letting it rise above the
// top of area.
func FieldRect(area image.Rectangle, game *minesweeper.Engine) image.Rectangle {
	size := image.Pt(game.Width()*TileSize, game.Height()*TileSize)
	r := centred(area.Min.Add(area.Max).Div(2), size)
	if top := area.Min.Y + 2; r.Min.Y < top {
		r = r.Add(image.Pt(0, top-r.Min.Y))
	}
	return r
}

// Update runs one frame of interaction over the board inside area and emits
// its draw commands.
func (m *Minefield) Update(ctx *gui.Context, area image.Rectangle, game *minesweeper.Engine, r gui.Renderer) FieldEvent {
	rect := FieldRect(area, game)
	in := ctx.Input

	hovered, over := -1, false
	if ctx.ClaimHot(m.id, in.PointerIn(rect)) {
		p := in.Pointer.Sub(rect.Min).Div(TileSize)
		hovered, over = p.Y*game.Width()+p.X, true
	}
	active := ctx.ClaimActive(m.id, over && in.AnyDown())

	prev := game.State()
	chordMine, chordHit := -1, false
	digHint := false

	if active || m.chord != ChordIdle {
		combo := in.Down(gui.MouseMiddle) || (in.Down(gui.MouseLeft) && in.Down(gui.MouseRight))
		switch m.chord {
		case ChordIdle:
			if combo && game.State() == minesweeper.Playing {
				m.chord = Chording
				m.flagging = false
			}
		case Chording:
			if in.AnyReleased() {
				m.chord = Chorded
				if over {
					chordMine, chordHit = game.Chord(hovered)
				}
			}
		}
	}

	if active && m.chord == ChordIdle && over {
		if in.Released(gui.MouseLeft) {
			game.Dig(hovered)
		}
		digHint = in.Down(gui.MouseLeft) && game.Diggable(hovered)

		if in.Pressed(gui.MouseRight) && game.State().Accepting() {
			m.flagging = true
			m.flagMode = minesweeper.ModeFlag
			if t, _ := game.Tile(hovered); t.Kind == minesweeper.Flagged {
				m.flagMode = minesweeper.ModeRemove
			}
		}
		if m.flagging && game.SetFlag(m.flagMode, hovered) {
			m.audio.Play(SoundFlag)
		}
	}
	// A placed flag applies once; removal sweeps until the button is up.
	if m.flagging && (m.flagMode == minesweeper.ModeFlag || !in.Down(gui.MouseRight)) {
		m.flagging = false
	}
	if m.chord == Chorded && !in.AnyDown() {
		m.chord = ChordIdle
	}

	event := FieldNone
	switch now := game.State(); {
	case prev == minesweeper.Playing && now == minesweeper.Lose:
		origin := hovered
		if chordHit {
			origin = chordMine
		} else if lt, ok := game.LosingTile(); ok {
			origin = lt
		}
		m.losingTile = origin
		m.exploder.Initialise(origin, game)
		// The first ring goes off now, under this one sound.
		m.exploder.Update()
		m.audio.Play(SoundExplosion)
		log.Debug().Int("origin", origin).Msg("explosion started")
		event = FieldLost
	case prev != minesweeper.Win && now == minesweeper.Win:
		m.audio.Play(SoundWin)
		event = FieldWon
	}
	if event != FieldLost && game.State() == minesweeper.Lose && m.exploder.Update() > 0 {
		m.audio.Play(SoundExplosion)
	}

	if over {
		sel := rect.Min.Add(image.Pt(hovered%game.Width(), hovered/game.Width()).Mul(TileSize))
		r.Draw(gui.ImageShape{Pos: sel, Sprite: gui.SpriteSelector})
	}
	pressed := m.pressedTiles(game, hovered, over, digHint)
	r.Draw(gui.FieldShape{Rect: rect, Cols: game.Width(), TileSize: TileSize, Tiles: m.layers(game, pressed)})
	r.Draw(gui.NineSliceShape{Rect: rect.Inset(-2), Frame: gui.FrameMinefield})
	return event
}

// pressedTiles are the unopened tiles drawn sunken: the chord preview or the
// tile about to be dug.
func (m *Minefield) pressedTiles(game *minesweeper.Engine, hovered int, over, digHint bool) []int {
	switch {
	case !over:
		return nil
	case m.chord == Chording:
		return append(game.Neighbours(hovered), hovered)
	case digHint:
		return []int{hovered}
	}
	return nil
}

func (m *Minefield) layers(game *minesweeper.Engine, pressed []int) []gui.TileLayers {
	if cap(m.tiles) < game.Size() {
		m.tiles = make([]gui.TileLayers, game.Size())
	}
	m.tiles = m.tiles[:game.Size()]
	for i := range m.tiles {
		m.tiles[i] = m.tileLayers(game, i)
	}
	for _, i := range pressed {
		if t, _ := game.Tile(i); t.Kind == minesweeper.Unopened {
			m.tiles[i].Background = gui.SpriteTileDug
		}
	}
	return m.tiles
}

func (m *Minefield) tileLayers(game *minesweeper.Engine, i int) gui.TileLayers {
	t, _ := game.Tile(i)
	exploded, inSequence := m.exploder.IndexExploded(i)
	state := game.State()

	var l gui.TileLayers
	switch {
	case i == m.losingTile:
		l.Background = gui.SpriteTileLosing
	case t.Kind == minesweeper.Flagged && !(inSequence && exploded):
		l.Background = gui.SpriteTileUnopened
	case t.Kind == minesweeper.Revealed, m.exploder.Contains(i):
		l.Background = gui.SpriteTileDug
	default:
		l.Background = gui.SpriteTileUnopened
	}

	switch {
	case t.Kind == minesweeper.Flagged && !inSequence && state == minesweeper.Lose:
		l.Icon = gui.SpriteFlagWrong
	case t.Kind == minesweeper.Flagged && inSequence && exploded:
		l.Icon = gui.SpriteFlagExploded
	case t.Kind == minesweeper.Flagged:
		l.Icon = gui.SpriteFlag
	case inSequence && !exploded:
		l.Icon = gui.SpriteBomb
	case inSequence && exploded:
		l.Icon = gui.SpriteBombExploded
	case state == minesweeper.Win && game.IsBomb(i):
		l.Icon = gui.SpriteFlag
	case t.Kind == minesweeper.Revealed && game.IsBomb(i):
		l.Icon = gui.SpriteBomb
	case t.Kind == minesweeper.Revealed:
		l.Icon = gui.SpriteNumber(int(t.Count))
	}
	return l
}
