// Package grid defines core types, moves, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/driller.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction, loading and lookups.
var (
	// ErrEmptyGrid indicates the input has no rows at all.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row")
	// ErrMalformedInput indicates a non-square grid, a bad token or an unreadable source.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrOutOfBounds indicates a (row, col) lookup outside [0, n).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Move is a transition from one row to the next.
type Move int

const (
	// Start marks the first cell of a path; no move was taken to reach it.
	Start Move = iota
	// DownLeft goes to (row+1, col-1).
	DownLeft
	// DownRight goes to (row+1, col+1).
	DownRight
)

// String returns the lower-case, hyphenated move name.
func (m Move) String() string {
	switch m {
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// MarshalText encodes m by its String name.
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// colDelta is the column offset applied by m.
func (m Move) colDelta() int {
	switch m {
	case DownLeft:
		return -1
	case DownRight:
		return 1
	default:
		return 0
	}
}

// Cell is a (Row, Col) coordinate into a Grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is an immutable n×n matrix of resource values.
// values is stored row-major: values[row*n+col].
type Grid struct {
	n      int
	values []int
}
