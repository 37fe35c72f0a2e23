package grid

import (
	"fmt"
)

// New constructs a Grid from a square 2D slice.
// It deep-copies the input so later changes to rows are not observed.
// Returns ErrEmptyGrid if rows is empty, ErrMalformedInput if any row
// length differs from len(rows).
// Complexity: O(n²) time and memory.
func New(rows [][]int) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([]int, n*n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformedInput, r, len(row), n)
		}
		copy(values[r*n:(r+1)*n], row)
	}

	return &Grid{n: n, values: values}, nil
}

// Size returns n, the number of rows (and columns).
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// ValueAt returns the resource claimed when a path visits (row, col).
// Returns ErrOutOfBounds for coordinates outside [0, n).
func (g *Grid) ValueAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) in %d×%d grid", ErrOutOfBounds, row, col, g.n, g.n)
	}

	return g.values[row*g.n+col], nil
}

// ValidMoves lists the moves available from (row, col), always in the
// order DownLeft, DownRight. Cells on the bottom row have no moves.
// Returns ErrOutOfBounds for coordinates outside [0, n).
func (g *Grid) ValidMoves(row, col int) ([]Move, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d) in %d×%d grid", ErrOutOfBounds, row, col, g.n, g.n)
	}
	moves := make([]Move, 0, 2)
	if row < g.n-1 && col > 0 {
		moves = append(moves, DownLeft)
	}
	if row < g.n-1 && col < g.n-1 {
		moves = append(moves, DownRight)
	}

	return moves, nil
}

// Apply returns the cell reached from c by m. It does not check bounds;
// pair it with ValidMoves.
func Apply(c Cell, m Move) Cell {
	if m == Start {
		return c
	}

	return Cell{Row: c.Row + 1, Col: c.Col + m.colDelta()}
}

// Rows returns a deep copy of the grid as a 2D slice.
// Complexity: O(n²).
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for r := 0; r < g.n; r++ {
		rows[r] = make([]int, g.n)
		copy(rows[r], g.values[r*g.n:(r+1)*g.n])
	}

	return rows
}
