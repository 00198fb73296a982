package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Char returns the ascii representation of the cell: '#' alive, ' ' dead.
func (c Cell) Char() byte {
	if c == Alive {
		return '#'
	}
	return ' '
}

// ErrOutOfRange reports coordinates or a window outside the grid bounds.
var ErrOutOfRange = errors.New("grid: out of range")

// Grid stores a 2d field of cells in row-major order.
// The zero value is an empty 0x0 grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New allocates a width x height grid with every cell dead.
// Negative dimensions are clamped to zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// NewSquare allocates a size x size grid.
func NewSquare(size int) *Grid { return New(size, size) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.width * g.height }

// AliveCells counts the alive cells with a full scan.
func (g *Grid) AliveCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// DeadCells counts the dead cells.
func (g *Grid) DeadCells() int { return g.TotalCells() - g.AliveCells() }

// Cells exposes the backing slice in row-major order so callers can
// read or write values directly without per-cell bounds checks.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Dead, fmt.Errorf("%w: get (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, g.width, g.height)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores a cell value at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: set (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, g.width, g.height)
	}
	g.cells[g.Index(x, y)] = c
	return nil
}

// At returns an aliasable handle to the cell at (x, y) so callers can
// mutate and re-read one cell without recomputing its index. The cell
// stays owned by the grid; the handle is invalidated by Resize.
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, fmt.Errorf("%w: at (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, g.width, g.height)
	}
	return &g.cells[g.Index(x, y)], nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Resize reallocates the grid to the new dimensions, preserving the
// overlapping top-left rectangle. Cells outside the overlap are dead.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	minW, minH := g.width, g.height
	if width < minW {
		minW = width
	}
	if height < minH {
		minH = height
	}
	for y := 0; y < minH; y++ {
		copy(cells[y*width:y*width+minW], g.cells[y*g.width:y*g.width+minW])
	}
	g.width, g.height, g.cells = width, height, cells
}

// ResizeSquare resizes the grid to size x size.
func (g *Grid) ResizeSquare(size int) { g.Resize(size, size) }

// Crop returns a new grid holding the sub-rectangle [x0,x1) x [y0,y1).
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x0 > x1 || y0 > y1 || x1 > g.width || y1 > g.height {
		return nil, fmt.Errorf("%w: crop window (%d,%d)-(%d,%d) on %dx%d grid",
			ErrOutOfRange, x0, y0, x1, y1, g.width, g.height)
	}
	out := New(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		copy(out.cells[(y-y0)*out.width:(y-y0+1)*out.width], g.cells[y*g.width+x0:y*g.width+x1])
	}
	return out, nil
}

// Merge overlays other onto this grid with its top-left corner at
// (x0, y0). Other must fit entirely within bounds. When aliveOnly is
// false every covered cell takes other's value; when true alive cells
// are sticky: a covered alive cell is never killed and a covered dead
// cell turns alive only if the source cell is alive.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return fmt.Errorf("%w: merge %dx%d grid at (%d,%d) on %dx%d grid",
			ErrOutOfRange, other.width, other.height, x0, y0, g.width, g.height)
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			src := other.cells[y*other.width+x]
			if aliveOnly {
				if src == Alive {
					g.cells[(y0+y)*g.width+x0+x] = Alive
				}
				continue
			}
			g.cells[(y0+y)*g.width+x0+x] = src
		}
	}
	return nil
}

// Rotate returns a new grid rotated by rotation*90 degrees clockwise.
// Any integer is accepted; only rotation mod 4 matters.
func (g *Grid) Rotate(rotation int) *Grid {
	switch ((rotation % 4) + 4) % 4 {
	case 1:
		// 90 cw: (x,y) -> (height-1-y, x)
		out := New(g.height, g.width)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[x*out.width+(g.height-1-y)] = g.cells[y*g.width+x]
			}
		}
		return out
	case 2:
		// 180: (x,y) -> (width-1-x, height-1-y)
		out := New(g.width, g.height)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[(g.height-1-y)*g.width+(g.width-1-x)] = g.cells[y*g.width+x]
			}
		}
		return out
	case 3:
		// 270 cw: (x,y) -> (y, width-1-x)
		out := New(g.height, g.width)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[(g.width-1-x)*out.width+y] = g.cells[y*g.width+x]
			}
		}
		return out
	default:
		out := New(g.width, g.height)
		copy(out.cells, g.cells)
		return out
	}
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as bordered ascii art:
//
//	+---+
//	| # |
//	|  #|
//	+---+
func (g *Grid) String() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.Grow((g.width + 3) * (g.height + 2))
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.cells[y*g.width+x].Char())
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
