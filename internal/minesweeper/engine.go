// Package minesweeper holds the puzzle rules: deferred mine placement, flood
// fill reveal, flagging, chording and win/lose detection. Every operation is
// total; a request that makes no sense is a no-op reported through the
// return value.
package minesweeper

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"
)

// safeZone is the number of cells kept clear around the first dig.
const safeZone = 9

type GameState int

const (
	Prelude GameState = iota
	Playing
	Win
	Lose
)

func (s GameState) String() string {
	switch s {
	case Prelude:
		return "prelude"
	case Playing:
		return "playing"
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "unknown"
}

// Accepting reports whether dig and chord may still change the board.
func (s GameState) Accepting() bool {
	return s == Prelude || s == Playing
}

type TileKind int

const (
	Unopened TileKind = iota
	Flagged
	Revealed
)

// Tile is what the player knows about a cell. Count is only meaningful for
// Revealed tiles.
type Tile struct {
	Kind  TileKind
	Count uint8
}

// FlagMode picks between placing and removing a flag.
type FlagMode int

const (
	ModeFlag FlagMode = iota
	ModeRemove
)

// Option customises an Engine at construction.
type Option func(*Engine)

// WithRand makes mine placement draw from r.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces time.Now for the game timer.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

type Engine struct {
	width     int
	height    int
	bombCount int
	requested int

	board          []Tile
	bombs          mapset.Set[int]
	neighbourCount []uint8
	revealedSafe   int

	state      GameState
	turns      int
	losingTile int

	startTime time.Time
	endTime   time.Time

	rng *rand.Rand
	now func() time.Time
}

// New creates a board of width x height, all unopened. bombCount is clamped
// so a 3x3 safe zone always fits; degenerate dimensions are raised to 1.
func New(width, height, bombCount int, opts ...Option) *Engine {
	if width < 1 || height < 1 {
		log.Warn().Int("width", width).Int("height", height).Msg("degenerate board dimensions, raised to 1")
		width, height = max(width, 1), max(height, 1)
	}
	used := min(max(bombCount, 0), MaxBombs(width, height))
	if used != bombCount {
		log.Warn().Int("requested", bombCount).Int("used", used).Msg("bomb count does not fit the board, clamped")
	}

	e := &Engine{
		width:          width,
		height:         height,
		bombCount:      used,
		requested:      bombCount,
		board:          make([]Tile, width*height),
		bombs:          mapset.New[int](),
		neighbourCount: make([]uint8, width*height),
		state:          Prelude,
		losingTile:     -1,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func (e *Engine) Width() int       { return e.width }
func (e *Engine) Height() int      { return e.height }
func (e *Engine) Size() int        { return len(e.board) }
func (e *Engine) BombCount() int   { return e.bombCount }
func (e *Engine) State() GameState { return e.state }

// Turns counts successful digs and chords.
func (e *Engine) Turns() int { return e.turns }

// RequestedBombs is the bomb count passed to New, before clamping.
func (e *Engine) RequestedBombs() int { return e.requested }

// BombsClamped reports whether New had to lower the requested bomb count.
func (e *Engine) BombsClamped() bool { return e.requested != e.bombCount }

func (e *Engine) inRange(i int) bool {
	return i >= 0 && i < len(e.board)
}

// Tile returns the tile at i.
func (e *Engine) Tile(i int) (Tile, bool) {
	if !e.inRange(i) {
		return Tile{}, false
	}
	return e.board[i], true
}

// IsBomb reports whether a mine lies at i. Before the first dig nothing is
// mined.
func (e *Engine) IsBomb(i int) bool {
	return e.bombs.Has(i)
}

// Bombs lists the mined cells in index order.
func (e *Engine) Bombs() []int {
	out := make([]int, 0, e.bombs.Size())
	e.bombs.Each(func(i int) { out = append(out, i) })
	sort.Ints(out)
	return out
}

// NeighbourCount is the number of mines around i, valid once Playing.
func (e *Engine) NeighbourCount(i int) (int, bool) {
	if !e.inRange(i) || e.state == Prelude {
		return 0, false
	}
	return int(e.neighbourCount[i]), true
}

// LosingTile is the mine that ended the game.
func (e *Engine) LosingTile() (int, bool) {
	return e.losingTile, e.losingTile >= 0
}

// Elapsed is the game time: zero before the first dig, running while
// Playing, frozen once the game ends.
func (e *Engine) Elapsed() time.Duration {
	switch e.state {
	case Prelude:
		return 0
	case Playing:
		return e.now().Sub(e.startTime)
	}
	return e.endTime.Sub(e.startTime)
}

// Diggable reports whether Dig(i) would do anything.
func (e *Engine) Diggable(i int) bool {
	return e.inRange(i) && e.board[i].Kind == Unopened && e.state.Accepting()
}

// Dig opens tile i. The first dig of a game places the mines around it.
func (e *Engine) Dig(i int) bool {
	if !e.Diggable(i) {
		return false
	}
	if e.state == Prelude {
		e.placeMines(i)
		e.state = Playing
		e.startTime = e.now()
	}
	e.turns++
	if e.reveal(i) {
		e.lose(i)
		return true
	}
	e.checkWin()
	return true
}

// SetFlag places or removes a flag on tile i.
func (e *Engine) SetFlag(mode FlagMode, i int) bool {
	if !e.inRange(i) {
		return false
	}
	t := &e.board[i]
	switch {
	case mode == ModeFlag && t.Kind == Unopened:
		t.Kind = Flagged
	case mode == ModeRemove && t.Kind == Flagged:
		t.Kind = Unopened
	default:
		return false
	}
	return true
}

// Chord opens every unopened neighbour of a numbered tile whose flag count
// matches its number. It returns the first mine it hit, if any.
func (e *Engine) Chord(i int) (mine int, hit bool) {
	if !e.inRange(i) || e.state != Playing {
		return 0, false
	}
	t := e.board[i]
	if t.Kind != Revealed || t.Count == 0 {
		return 0, false
	}
	neighbours := e.Neighbours(i)
	flags := 0
	for _, n := range neighbours {
		if e.board[n].Kind == Flagged {
			flags++
		}
	}
	if flags != int(t.Count) {
		return 0, false
	}

	e.turns++
	for _, n := range neighbours {
		if e.board[n].Kind != Unopened {
			continue
		}
		if e.reveal(n) && !hit {
			mine, hit = n, true
		}
	}
	if hit {
		e.lose(mine)
		return mine, true
	}
	e.checkWin()
	return 0, false
}

// FlagsLeft is the bomb count minus the flags placed. ok is false when the
// player has placed more flags than there are bombs.
func (e *Engine) FlagsLeft() (left int, ok bool) {
	flags := 0
	for _, t := range e.board {
		if t.Kind == Flagged {
			flags++
		}
	}
	left = e.bombCount - flags
	if left < 0 {
		return 0, false
	}
	return left, true
}

func (e *Engine) placeMines(first int) {
	safe := mapset.New[int]()
	safe.Put(first)
	for _, n := range e.Neighbours(first) {
		safe.Put(n)
	}

	candidates := make([]int, 0, len(e.board))
	for i := range e.board {
		if !safe.Has(i) {
			candidates = append(candidates, i)
		}
	}
	e.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	e.layBombs(candidates[:min(e.bombCount, len(candidates))])
	log.Debug().Int("first", first).Int("bombs", e.bombs.Size()).Msg("mines placed")
}

func (e *Engine) layBombs(indices []int) {
	for _, i := range indices {
		e.bombs.Put(i)
	}
	for i := range e.board {
		count := uint8(0)
		for _, n := range e.Neighbours(i) {
			if e.bombs.Has(n) {
				count++
			}
		}
		e.neighbourCount[i] = count
	}
}

// reveal opens i, flooding out from zero tiles, and reports whether i was a
// mine. It does not look at the game state.
func (e *Engine) reveal(i int) bool {
	e.board[i] = Tile{Kind: Revealed, Count: e.neighbourCount[i]}
	if e.bombs.Has(i) {
		return true
	}
	e.revealedSafe++
	if e.neighbourCount[i] == 0 {
		e.flood(i)
	}
	return false
}

func (e *Engine) lose(i int) {
	e.state = Lose
	e.losingTile = i
	e.endTime = e.now()
	e.bombs.Each(func(b int) {
		if e.board[b].Kind == Unopened {
			e.board[b] = Tile{Kind: Revealed, Count: e.neighbourCount[b]}
		}
	})
}

func (e *Engine) checkWin() {
	if e.state == Playing && e.revealedSafe == len(e.board)-e.bombs.Size() {
		e.state = Win
		e.endTime = e.now()
	}
}
