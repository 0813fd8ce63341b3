package life

import (
	"torus-life/internal/core"
)

// Engine owns the authoritative board for a session and applies Conway's
// transition rule with toroidal adjacency. Dimensions are fixed at
// construction; the contents are replaced wholesale by Seed, Randomize and
// Step.
type Engine struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
	gen        int
}

// New returns an engine with an all-dead board of the given dimensions.
// Zero in either axis yields an empty board on which every operation is a
// no-op. Negative dimensions are a caller defect and panic.
func New(rows, cols int) *Engine {
	if rows < 0 || cols < 0 {
		panic("life: negative board dimensions")
	}
	cells := make([]uint8, rows*cols)
	return &Engine{rows: rows, cols: cols, cur: cells, nxt: make([]uint8, len(cells))}
}

// Rows returns the board height.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.cols }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return core.Size{Rows: e.rows, Cols: e.cols} }

// Cells exposes the current generation in row-major order.
func (e *Engine) Cells() []uint8 { return e.cur }

// Alive reports whether the cell at (row, col) is alive.
func (e *Engine) Alive(row, col int) bool {
	return e.cur[core.Index(row, col, e.cols)] == 1
}

// Generation returns the number of steps taken since the last seeding.
func (e *Engine) Generation() int { return e.gen }

// Population returns the number of alive cells in the current generation.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.cur {
		n += int(c)
	}
	return n
}

// Grid returns a copy of the current board as a 2-D slice, suitable for
// persisting or reloading as a pattern.
func (e *Engine) Grid() [][]uint8 {
	grid := make([][]uint8, e.rows)
	for r := range grid {
		row := make([]uint8, e.cols)
		copy(row, e.cur[r*e.cols:(r+1)*e.cols])
		grid[r] = row
	}
	return grid
}

// Seed resets the board to all-dead and copies the pattern template in at
// the top-left corner. A template larger than the board is truncated to the
// board in each axis; the cut cells are dropped silently.
func (e *Engine) Seed(p Pattern) {
	e.clear()
	rows := min(len(p.Cells), e.rows)
	for r := 0; r < rows; r++ {
		cols := min(len(p.Cells[r]), e.cols)
		for c := 0; c < cols; c++ {
			if p.Cells[r][c] != 0 {
				e.cur[core.Index(r, c, e.cols)] = 1
			}
		}
	}
	e.gen = 0
}

// Randomize fills every cell independently alive or dead with probability
// 1/2, using the provided seed.
func (e *Engine) Randomize(seed int64) {
	core.NewRNG(seed).FillBinary(e.cur)
	e.gen = 0
}

// CountAliveNeighbors returns how many of the 8 toroidal neighbors of
// (row, col) are alive. Coordinates one step outside the board wrap around,
// so callers may pass row-1 or col+1 at the edges unchecked.
func (e *Engine) CountAliveNeighbors(row, col int) int {
	if e.Size().Empty() {
		return 0
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r := core.Wrap(row+dr, e.rows)
			c := core.Wrap(col+dc, e.cols)
			count += int(e.cur[core.Index(r, c, e.cols)])
		}
	}
	self := core.Index(core.Wrap(row, e.rows), core.Wrap(col, e.cols), e.cols)
	return count - int(e.cur[self])
}

// Step advances the board exactly one generation. Next states are computed
// entirely against the current generation into a scratch buffer, then the
// buffers are swapped.
func (e *Engine) Step() {
	if e.Size().Empty() {
		return
	}
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			n := e.CountAliveNeighbors(r, c)
			idx := core.Index(r, c, e.cols)
			alive := e.cur[idx] == 1
			e.nxt[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				e.nxt[idx] = 1
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
}

func (e *Engine) clear() {
	for i := range e.cur {
		e.cur[i] = 0
	}
}
