// Package zoo constructs well-known Game of Life creatures and saves
// and loads grids in the .gol ascii and .bgol binary file formats.
package zoo

import (
	"gridlife/src/grid"
)

func settle(g *grid.Grid, coords [][2]int) *grid.Grid {
	for _, c := range coords {
		_ = g.Set(c[0], c[1], grid.Alive)
	}
	return g
}

// Glider returns a 3x3 grid holding a glider:
//
//	+---+
//	| # |
//	|  #|
//	|###|
//	+---+
func Glider() *grid.Grid {
	return settle(grid.NewSquare(3), [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
}

// RPentomino returns a 3x3 grid holding an r-pentomino:
//
//	+---+
//	| ##|
//	|## |
//	| # |
//	+---+
func RPentomino() *grid.Grid {
	return settle(grid.NewSquare(3), [][2]int{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	})
}

// LightWeightSpaceship returns a 5x4 grid holding a lightweight
// spaceship:
//
//	+-----+
//	| #  #|
//	|#    |
//	|#   #|
//	|#### |
//	+-----+
func LightWeightSpaceship() *grid.Grid {
	return settle(grid.New(5, 4), [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}
