// Package fx holds the visual effects played over the board.
package fx

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/04pril/imsweeper/internal/minesweeper"
)

// DefaultFramesPerRing paces the explosion at 60 frames per second.
const DefaultFramesPerRing = 6

// Ripple sets the mines off in rings of growing distance from the mine that
// was hit.
type Ripple struct {
	FramesPerRing int

	members  mapset.Set[int]
	exploded mapset.Set[int]
	rings    *queue.Queue[[]int]
	wait     int
}

func NewRipple() *Ripple {
	r := &Ripple{FramesPerRing: DefaultFramesPerRing}
	r.Reset()
	return r
}

// Reset drops any sequence in progress.
func (r *Ripple) Reset() {
	r.members = mapset.New[int]()
	r.exploded = mapset.New[int]()
	r.rings = queue.New[[]int]()
	r.wait = 0
}

// Initialise queues every mine of game, grouped by Chebyshev distance from
// origin.
func (r *Ripple) Initialise(origin int, game *minesweeper.Engine) {
	r.Reset()
	w := game.Width()
	ox, oy := origin%w, origin/w

	byDist := map[int][]int{}
	for _, b := range game.Bombs() {
		d := max(abs(b%w-ox), abs(b/w-oy))
		byDist[d] = append(byDist[d], b)
		r.members.Put(b)
	}
	dists := make([]int, 0, len(byDist))
	for d := range byDist {
		dists = append(dists, d)
	}
	sort.Ints(dists)
	for _, d := range dists {
		r.rings.Enqueue(byDist[d])
	}
}

// Update sets off the next ring when it is due and returns how many mines
// went off.
func (r *Ripple) Update() int {
	if r.rings.Empty() {
		return 0
	}
	if r.wait > 0 {
		r.wait--
		return 0
	}
	ring := r.rings.Dequeue()
	for _, i := range ring {
		r.exploded.Put(i)
	}
	r.wait = r.FramesPerRing - 1
	return len(ring)
}

// Done reports whether every queued mine has gone off.
func (r *Ripple) Done() bool { return r.rings.Empty() }

func (r *Ripple) IndexExploded(i int) (exploded, ok bool) {
	if !r.members.Has(i) {
		return false, false
	}
	return r.exploded.Has(i), true
}

func (r *Ripple) Contains(i int) bool { return r.members.Has(i) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
