package ui

import (
	"image"
	"math/rand"
	"strings"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

// identity returns every key untranslated.
type identity struct{}

func (identity) Get(s string, _ ...interface{}) string { return s }

// fixedMeasurer gives every glyph 6x10 pixels so layouts are easy to work
// out by hand.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(text string) image.Point {
	lines := strings.Split(text, "\n")
	w := 0
	for _, ln := range lines {
		w = max(w, len(ln)*6)
	}
	return image.Pt(w, len(lines)*10)
}

type soundLog []Sound

func (l *soundLog) Play(s Sound) { *l = append(*l, s) }

func (l soundLog) count(s Sound) int {
	n := 0
	for _, got := range l {
		if got == s {
			n++
		}
	}
	return n
}

type fakeExploder struct {
	origin      int
	initialised int
	resets      int
	pending     int // returned by the next Update
}

func (f *fakeExploder) Initialise(origin int, _ *minesweeper.Engine) {
	f.origin = origin
	f.initialised++
}

func (f *fakeExploder) Update() int {
	n := f.pending
	f.pending = 0
	return n
}

func (f *fakeExploder) IndexExploded(int) (bool, bool) { return false, false }
func (f *fakeExploder) Contains(int) bool              { return false }
func (f *fakeExploder) Reset()                         { f.resets++ }

func seeded(seed int64) minesweeper.Option {
	return minesweeper.WithRand(rand.New(rand.NewSource(seed)))
}

func fieldShape(l *gui.DrawList) (gui.FieldShape, bool) {
	for _, s := range l.Shapes() {
		if f, ok := s.(gui.FieldShape); ok {
			return f, true
		}
	}
	return gui.FieldShape{}, false
}

func imageSprites(l *gui.DrawList) []gui.Sprite {
	var out []gui.Sprite
	for _, s := range l.Shapes() {
		if im, ok := s.(gui.ImageShape); ok {
			out = append(out, im.Sprite)
		}
	}
	return out
}

func hasSprite(l *gui.DrawList, want gui.Sprite) bool {
	for _, s := range imageSprites(l) {
		if s == want {
			return true
		}
	}
	return false
}

func pointer(p image.Point) gui.InputSnapshot {
	return gui.InputSnapshot{}.At(p)
}
