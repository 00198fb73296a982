package world

import (
	"gridlife/src/grid"
)

// World drives a Conway's Game of Life simulation over two equally
// sized grid buffers. The current buffer holds the settled generation;
// the next buffer is scratch space that is fully overwritten by each
// step before the two are swapped in constant time.
type World struct {
	curr *grid.Grid
	next *grid.Grid
}

// New creates a world of the given dimensions with every cell dead.
func New(width, height int) *World {
	return &World{curr: grid.New(width, height), next: grid.New(width, height)}
}

// NewSquare creates a size x size world.
func NewSquare(size int) *World { return New(size, size) }

// FromGrid creates a world seeded from the given grid. The seed's
// values are copied into both internal buffers; the seed itself is not
// retained.
func FromGrid(seed *grid.Grid) *World {
	w := New(seed.Width(), seed.Height())
	copy(w.curr.Cells(), seed.Cells())
	copy(w.next.Cells(), seed.Cells())
	return w
}

// State returns the current generation without copying. The returned
// grid is a read-only view: it must not be mutated and is invalidated
// by the next Step or Resize.
func (w *World) State() *grid.Grid { return w.curr }

// Width returns the number of columns.
func (w *World) Width() int { return w.curr.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.curr.Height() }

// TotalCells returns width*height.
func (w *World) TotalCells() int { return w.curr.TotalCells() }

// AliveCells counts the alive cells of the current generation.
func (w *World) AliveCells() int { return w.curr.AliveCells() }

// DeadCells counts the dead cells of the current generation.
func (w *World) DeadCells() int { return w.curr.DeadCells() }

// SetCell writes a cell of the current generation in place, for
// editing a world between steps. The scratch buffer is untouched; it
// is fully overwritten by the next step anyway.
func (w *World) SetCell(x, y int, c grid.Cell) error {
	return w.curr.Set(x, y, c)
}

// Resize resizes the current generation in place, preserving the
// overlapping rectangle. The scratch buffer is reallocated fresh; its
// contents never survive a step, so nothing is lost.
func (w *World) Resize(width, height int) {
	w.curr.Resize(width, height)
	w.next = grid.New(width, height)
}

// ResizeSquare resizes the world to size x size.
func (w *World) ResizeSquare(size int) { w.Resize(size, size) }

// countNeighbours counts the alive cells in the 3x3 neighbourhood
// centred on (x, y), ignoring the centre. Without toroidal wrapping
// out-of-range coordinates are treated as dead and skipped, so edge
// and corner cells see fewer than 8 candidates. With wrapping every
// coordinate is folded to the opposite edge and all cells see 8.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	width, height := w.curr.Width(), w.curr.Height()
	cells := w.curr.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx + width) % width
				ny = (ny + height) % height
			} else if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if cells[ny*width+nx] == grid.Alive {
				count++
			}
		}
	}
	return count
}

// Step advances the world by one generation:
//   - an alive cell with fewer than 2 or more than 3 alive neighbours dies
//   - an alive cell with 2 or 3 alive neighbours survives
//   - a dead cell with exactly 3 alive neighbours becomes alive
//
// The whole next generation is computed before the buffers are
// swapped, so intermediate results are never observable.
func (w *World) Step(toroidal bool) {
	width, height := w.curr.Width(), w.curr.Height()
	curr, next := w.curr.Cells(), w.next.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := w.countNeighbours(x, y, toroidal)
			idx := y*width + x
			if n == 3 || (n == 2 && curr[idx] == grid.Alive) {
				next[idx] = grid.Alive
			} else {
				next[idx] = grid.Dead
			}
		}
	}
	w.curr, w.next = w.next, w.curr
}

// Advance runs Step the given number of times. Zero steps is a no-op.
func (w *World) Advance(steps int, toroidal bool) {
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
