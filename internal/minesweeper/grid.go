package minesweeper

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// IndexFromOffset steps (dx, dy) from tile i. Both axes are bounds-checked so
// a step never wraps onto the neighbouring row.
func (e *Engine) IndexFromOffset(i, dx, dy int) (int, bool) {
	if !e.inRange(i) {
		return 0, false
	}
	x, y := i%e.width+dx, i/e.width+dy
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return 0, false
	}
	return y*e.width + x, true
}

// Neighbours lists the up to eight tiles around i.
func (e *Engine) Neighbours(i int) []int {
	out := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n, ok := e.IndexFromOffset(i, dx, dy); ok {
				out = append(out, n)
			}
		}
	}
	return out
}

// flood opens the zero region connected to start plus the numbered ring
// around it. Breadth first over an explicit frontier, so stack depth does
// not grow with the board.
func (e *Engine) flood(start int) {
	visited := mapset.New[int]()
	visited.Put(start)
	frontier := queue.New[int]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, n := range e.Neighbours(cur) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			if e.board[n].Kind != Unopened || e.bombs.Has(n) {
				continue
			}
			e.board[n] = Tile{Kind: Revealed, Count: e.neighbourCount[n]}
			e.revealedSafe++
			if e.neighbourCount[n] == 0 {
				frontier.Enqueue(n)
			}
		}
	}
}
