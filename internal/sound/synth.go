// Package sound plays the game's sound effects. The effects are synthesised
// at start-up, so there are no audio assets to ship.
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/04pril/imsweeper/internal/ui"
)

const SampleRate = 44100

// Synth plays pre-rendered effects through ebiten's audio context.
type Synth struct {
	players map[ui.Sound]*audio.Player
}

// NewSynth renders every effect into a player on ctx.
func NewSynth(ctx *audio.Context) *Synth {
	s := &Synth{players: map[ui.Sound]*audio.Player{}}
	for _, snd := range []ui.Sound{ui.SoundFlag, ui.SoundExplosion, ui.SoundWin} {
		s.players[snd] = ctx.NewPlayerFromBytes(Encode(Samples(snd)))
	}
	return s
}

// New returns a Synth on the shared audio context. It returns Silent when
// sound is off, or when a context already runs at another sample rate: the
// effects are rendered at SampleRate and would play at the wrong pitch.
func New(enabled bool) ui.Audio {
	if !enabled {
		return Silent{}
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	if rate := ctx.SampleRate(); rate != SampleRate {
		log.Warn().Int("rate", rate).Int("want", SampleRate).Msg("audio context sample rate differs, sound disabled")
		return Silent{}
	}
	return NewSynth(ctx)
}

func (s *Synth) Play(snd ui.Sound) {
	p, ok := s.players[snd]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Debug().Err(err).Stringer("sound", snd).Msg("rewind failed")
		return
	}
	p.Play()
}

// Silent drops every sound.
type Silent struct{}

func (Silent) Play(ui.Sound) {}

// Samples renders a mono effect in [-1, 1].
func Samples(snd ui.Sound) []float64 {
	switch snd {
	case ui.SoundFlag:
		return tone(nil, 880, 60*time.Millisecond, 0.4)
	case ui.SoundExplosion:
		return noise(250*time.Millisecond, 0.8)
	case ui.SoundWin:
		var out []float64
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			out = tone(out, f, 90*time.Millisecond, 0.35)
		}
		return out
	}
	return nil
}

func sampleCount(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// tone appends a sine at freq that decays to silence over d.
func tone(out []float64, freq float64, d time.Duration, gain float64) []float64 {
	n := sampleCount(d)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := 1 - float64(i)/float64(n)
		out = append(out, gain*env*math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// noise is a low-passed burst with an exponential tail.
func noise(d time.Duration, gain float64) []float64 {
	rng := rand.New(rand.NewSource(1))
	n := sampleCount(d)
	out := make([]float64, n)
	prev := 0.0
	for i := range out {
		prev += (rng.Float64()*2 - 1 - prev) * 0.2
		out[i] = gain * prev * math.Exp(-5*float64(i)/float64(n))
	}
	return out
}

// Encode converts mono samples to the 16-bit little-endian stereo PCM ebiten
// players expect.
func Encode(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Round(max(-1, min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
