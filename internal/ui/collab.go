// Package ui is the minesweeper screen: menubar, popups, the counters above
// the board and the minefield itself, all driven once per frame through a
// shared gui.Context.
package ui

import "github.com/04pril/imsweeper/internal/minesweeper"

// Sound is an event the audio collaborator is asked to play.
type Sound int

const (
	SoundFlag Sound = iota
	SoundExplosion
	SoundWin
)

func (s Sound) String() string {
	switch s {
	case SoundFlag:
		return "flag"
	case SoundExplosion:
		return "explosion"
	case SoundWin:
		return "win"
	}
	return "unknown"
}

// Audio plays sounds, fire and forget.
type Audio interface {
	Play(s Sound)
}

// Exploder animates the mines going off after a loss.
type Exploder interface {
	// Initialise starts a sequence from origin over the mines of game.
	Initialise(origin int, game *minesweeper.Engine)
	// Update advances one frame and returns how many mines went off.
	Update() int
	// IndexExploded reports whether i is part of the sequence (ok) and
	// whether it has gone off yet.
	IndexExploded(i int) (exploded, ok bool)
	Contains(i int) bool
	Reset()
}

// Translator looks up user-facing strings. *gotext.Po satisfies it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

type switchedAudio struct {
	audio Audio
	on    *bool
}

func (a switchedAudio) Play(s Sound) {
	if *a.on {
		a.audio.Play(s)
	}
}
