// Package search finds the maximum-resource descent through a grid.Grid by
// exhaustive depth-first enumeration of every top-to-bottom path.
//
// Key features:
//   - Solve(g, opts...): best path over all start columns, deterministic ties
//   - Ranked(g, k, opts...): the k best goal paths in selection order
//   - SolveRanked(g, k, opts...): both of the above from one search
//   - Enumerate(g, col): every goal path from one start column, in discovery order
//   - Hooks: OnGoal (may abort) & OnExpand for diagnostics
//
// Traversal:
//
//	For each start column ascending, a root is pushed on an explicit LIFO
//	stack. A popped node on the bottom row is recorded as a goal; any other
//	node pushes its DownLeft child, then its DownRight child. DownRight
//	branches are therefore explored first at every choice point.
//
// Selection:
//
//	Greatest total wins; ties go to the goal recorded first.
//
// Complexity:
//
//   - Time:   O(n·2^n) nodes in the worst case (n start columns, depth n).
//   - Memory: O(n·2^n) arena entries; stack depth O(n) per branch.
//
// Errors:
//
//   - ErrGridNil          if g is nil.
//   - grid.ErrEmptyGrid   if g has size 0.
//   - ErrOptionViolation  for empty or out-of-range StartColumns.
//   - any error returned by OnGoal.
package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/driller/grid"
)

// walker encapsulates state during a search.
type walker struct {
	g        *grid.Grid
	opts     Options
	arena    []node   // every node created, indexed by handle
	stack    frontier // nodes awaiting expansion
	goals    []goal   // bottom-row nodes in discovery order
	perCol   []int    // goals recorded per start column
	expanded int
}

// Solve runs the full search and returns the best path with statistics.
// Ties on total are broken by discovery order: lower start column first,
// then pop order within a column.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	w, err := run(g, opts)
	if err != nil {
		return nil, err
	}

	return w.result(), nil
}

// Ranked returns the k best goal paths, ordered by descending total and
// then by discovery order. k <= 0 returns every goal path.
func Ranked(g *grid.Grid, k int, opts ...Option) ([]Path, error) {
	w, err := run(g, opts)
	if err != nil {
		return nil, err
	}

	return w.ranked(k), nil
}

// SolveRanked returns what Solve and Ranked would, from a single search.
// The first ranked path is always res.Path.
func SolveRanked(g *grid.Grid, k int, opts ...Option) (*Result, []Path, error) {
	w, err := run(g, opts)
	if err != nil {
		return nil, nil, err
	}

	return w.result(), w.ranked(k), nil
}

// result selects the best goal and reports search statistics.
func (w *walker) result() *Result {
	// strict > keeps the earliest recorded goal among equal totals
	best := w.goals[0]
	for _, gl := range w.goals[1:] {
		if w.arena[gl.handle].total > w.arena[best.handle].total {
			best = gl
		}
	}

	return &Result{
		Path:           w.pathTo(best.handle),
		StartColumn:    best.col,
		Candidates:     len(w.goals),
		GoalsPerColumn: w.perCol,
		Expanded:       w.expanded,
	}
}

// ranked orders goals by descending total, then discovery order, and
// rebuilds the first k paths.
func (w *walker) ranked(k int) []Path {
	ordered := make([]goal, len(w.goals))
	copy(ordered, w.goals)
	sort.Slice(ordered, func(i, j int) bool {
		ti, tj := w.arena[ordered[i].handle].total, w.arena[ordered[j].handle].total
		if ti != tj {
			return ti > tj
		}

		return ordered[i].seq < ordered[j].seq
	})
	if k > 0 && k < len(ordered) {
		ordered = ordered[:k]
	}

	paths := make([]Path, len(ordered))
	for i, gl := range ordered {
		paths[i] = w.pathTo(gl.handle)
	}

	return paths
}

// Enumerate returns every goal path starting at (0, col), in the order the
// depth-first traversal records them.
func Enumerate(g *grid.Grid, col int) ([]Path, error) {
	w, err := run(g, []Option{WithStartColumns(col)})
	if err != nil {
		return nil, err
	}

	paths := make([]Path, len(w.goals))
	for i, gl := range w.goals {
		paths[i] = w.pathTo(gl.handle)
	}

	return paths, nil
}

// run validates input, applies options and walks every selected column.
func run(g *grid.Grid, opts []Option) (*walker, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}
	n := g.Size()
	if n == 0 {
		return nil, grid.ErrEmptyGrid
	}

	// 2. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if sopts.err != nil {
		return nil, sopts.err
	}
	cols, err := startColumns(sopts.StartColumns, n)
	if err != nil {
		return nil, err
	}

	// 3. Walk columns in ascending order
	w := &walker{
		g:      g,
		opts:   sopts,
		arena:  make([]node, 0, n*n),
		perCol: make([]int, n),
	}
	for _, c := range cols {
		if err = w.walkColumn(c); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// startColumns returns the sorted, de-duplicated columns to search.
func startColumns(requested []int, n int) ([]int, error) {
	if requested == nil {
		cols := make([]int, n)
		for i := range cols {
			cols[i] = i
		}

		return cols, nil
	}

	seen := make(map[int]bool, len(requested))
	cols := make([]int, 0, len(requested))
	for _, c := range requested {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: start column %d outside [0, %d)", ErrOptionViolation, c, n)
		}
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	sort.Ints(cols)

	return cols, nil
}

// walkColumn runs one depth-first traversal rooted at (0, col).
func (w *walker) walkColumn(col int) error {
	last := w.g.Size() - 1

	// 1. Push the root
	v, err := w.g.ValueAt(0, col)
	if err != nil {
		return fmt.Errorf("search: root (0, %d): %w", col, err)
	}
	w.stack.reset()
	w.stack.push(w.add(node{cell: grid.Cell{Row: 0, Col: col}, move: grid.Start, total: v, parent: noParent}))

	for !w.stack.empty() {
		h := w.stack.pop()
		cur := w.arena[h]

		// 2. Bottom row: record and stop
		if cur.cell.Row == last {
			w.goals = append(w.goals, goal{handle: h, col: col, seq: len(w.goals)})
			w.perCol[col]++
			if err = w.opts.OnGoal(col, cur.total); err != nil {
				return fmt.Errorf("search: OnGoal hook at column %d: %w", col, err)
			}
			continue
		}

		// 3. Expand in DownLeft, DownRight order
		moves, err := w.g.ValidMoves(cur.cell.Row, cur.cell.Col)
		if err != nil {
			return fmt.Errorf("search: ValidMoves(%d, %d): %w", cur.cell.Row, cur.cell.Col, err)
		}
		w.expanded++
		w.opts.OnExpand(cur.cell, cur.total)
		for _, m := range moves {
			next := grid.Apply(cur.cell, m)
			v, err = w.g.ValueAt(next.Row, next.Col)
			if err != nil {
				return fmt.Errorf("search: ValueAt(%d, %d): %w", next.Row, next.Col, err)
			}
			w.stack.push(w.add(node{cell: next, move: m, total: cur.total + v, parent: h}))
		}
	}

	return nil
}

// add appends nd to the arena and returns its handle.
func (w *walker) add(nd node) int {
	w.arena = append(w.arena, nd)

	return len(w.arena) - 1
}

// pathTo rebuilds the start-to-goal path ending at handle h.
func (w *walker) pathTo(h int) Path {
	// build reversed path
	var steps []Step
	for cur := h; cur != noParent; cur = w.arena[cur].parent {
		nd := w.arena[cur]
		value := nd.total
		if nd.parent != noParent {
			value -= w.arena[nd.parent].total
		}
		steps = append(steps, Step{Cell: nd.cell, Move: nd.move, Value: value})
	}
	// reverse to get start → goal
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return Path{Steps: steps, Total: w.arena[h].total}
}
