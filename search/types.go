// Package search defines options, results and error definitions
// for the exhaustive descent search over a grid.Grid.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/driller/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when Solve is invoked.
type Option func(*Options)

// Options holds hooks and limits that customize a search.
type Options struct {
	// OnGoal is called each time a bottom-row node is recorded, with its
	// start column and accumulated total. Returning an error aborts the search.
	OnGoal func(col, total int) error

	// OnExpand is called for each popped node that is expanded into children.
	OnExpand func(c grid.Cell, total int)

	// StartColumns restricts the top-row cells searched. Nil means all columns.
	StartColumns []int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no-op hooks (OnGoal, OnExpand)
//   - every top-row column searched (StartColumns == nil)
func DefaultOptions() Options {
	return Options{
		OnGoal:       func(int, int) error { return nil },
		OnExpand:     func(grid.Cell, int) {},
		StartColumns: nil,
		err:          nil,
	}
}

// WithOnGoal registers a callback run for every recorded goal node.
func WithOnGoal(fn func(col, total int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(c grid.Cell, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithStartColumns limits the search to the given top-row columns.
// Columns are always processed in ascending order; duplicates collapse.
//
//	len(cols) == 0: invalid option → ErrOptionViolation
//	col outside [0, n): reported by Solve as ErrOptionViolation
func WithStartColumns(cols ...int) Option {
	return func(o *Options) {
		if len(cols) == 0 {
			o.err = fmt.Errorf("%w: StartColumns must not be empty", ErrOptionViolation)
			return
		}
		o.StartColumns = append([]int(nil), cols...)
	}
}

// Step is one cell of a Path together with the move that reached it.
// The first step of every path carries grid.Start.
type Step struct {
	Cell  grid.Cell `json:"cell"`
	Move  grid.Move `json:"move"`
	Value int       `json:"value"`
}

// Path is an ordered start-to-bottom sequence of steps and its total resource.
type Path struct {
	Steps []Step `json:"steps"`
	Total int    `json:"total"`
}

// Len returns the number of cells on the path.
func (p Path) Len() int {
	return len(p.Steps)
}

// StepAt returns the step on cell c, if the path visits it.
func (p Path) StepAt(c grid.Cell) (Step, bool) {
	for _, s := range p.Steps {
		if s.Cell == c {
			return s, true
		}
	}

	return Step{}, false
}

// Result holds the outcome of Solve:
//   - Path: the winning path.
//   - StartColumn: top-row column the winning path starts from.
//   - Candidates: number of goal paths recorded across all columns.
//   - GoalsPerColumn: goal paths recorded per start column (len n).
//   - Expanded: number of nodes popped and expanded into children.
type Result struct {
	Path           Path  `json:"path"`
	StartColumn    int   `json:"startColumn"`
	Candidates     int   `json:"candidates"`
	GoalsPerColumn []int `json:"goalsPerColumn"`
	Expanded       int   `json:"expanded"`
}

// node is an arena entry: a path prefix ending at cell.
// parent indexes the arena; roots use noParent.
type node struct {
	cell   grid.Cell
	move   grid.Move
	total  int
	parent int
}

// noParent marks a root node.
const noParent = -1

// goal tags a recorded bottom-row node with its discovery position.
type goal struct {
	handle int // arena index
	col    int // start column
	seq    int // global discovery sequence
}
