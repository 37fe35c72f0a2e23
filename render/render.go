// Package render writes grids and search results as the human-readable
// report printed by the driller CLI: a grid dump, a step-by-step narrative
// with the total expression, and a visual map of the winning path.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/driller/grid"
	"github.com/katalvlaran/driller/search"
)

// Options selects the report sections written by Report.
type Options struct {
	ShowGrid  bool // dump the input grid first
	Narrative bool // step-by-step narrative and total
	Map       bool // visual map of the path
}

// DefaultOptions enables every section.
func DefaultOptions() Options {
	return Options{ShowGrid: true, Narrative: true, Map: true}
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Report writes the sections enabled in opts, in grid, narrative, map order.
func Report(w io.Writer, g *grid.Grid, res *search.Result, opts Options) error {
	if opts.ShowGrid {
		if err := Grid(w, g); err != nil {
			return err
		}
	}
	if opts.Narrative {
		if err := Narrative(w, res.Path); err != nil {
			return err
		}
	}
	if opts.Map {
		if err := Map(w, g.Size(), res.Path); err != nil {
			return err
		}
	}

	return nil
}

// Grid writes every row as tab-terminated values, framed by blank lines.
func Grid(w io.Writer, g *grid.Grid) error {
	p := &printer{w: w}
	p.printf("\n")
	for _, row := range g.Rows() {
		for _, v := range row {
			p.printf("%d\t", v)
		}
		p.printf("\n")
	}
	p.printf("\n")

	return p.err
}

// Narrative tells the descent step by step and closes with the sum, e.g.
//
//	The driller starts at (0, 0) and claims 3.
//	Driller goes down-right and claims 5.
//	Driller retracts.
//
//	Total resources: 3 + 5 = 8.
func Narrative(w io.Writer, path search.Path) error {
	if path.Len() == 0 {
		return nil
	}
	p := &printer{w: w}
	terms := make([]string, 0, path.Len())

	first := path.Steps[0]
	p.printf("The driller starts at (%d, %d) and claims %d.\n", first.Cell.Row, first.Cell.Col, first.Value)
	terms = append(terms, fmt.Sprint(first.Value))
	for _, s := range path.Steps[1:] {
		p.printf("Driller goes %s and claims %d.\n", s.Move, s.Value)
		terms = append(terms, fmt.Sprint(s.Value))
	}
	p.printf("Driller retracts.\n\nTotal resources: %s = %d.\n\n", strings.Join(terms, " + "), path.Total)

	return p.err
}

// Map draws an n-line picture of the path: each path cell's value at its
// column, with one tab per preceding column; other cells stay blank.
func Map(w io.Writer, n int, path search.Path) error {
	p := &printer{w: w}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s, ok := path.StepAt(grid.Cell{Row: r, Col: c}); ok {
				p.printf("%d", s.Value)
				break
			}
			p.printf("\t")
		}
		p.printf("\n")
	}

	return p.err
}

// Ranking lists paths one per line as "rank. total: (r, c) move (r, c) ...".
func Ranking(w io.Writer, paths []search.Path) error {
	p := &printer{w: w}
	for i, path := range paths {
		p.printf("%d. %d:", i+1, path.Total)
		for _, s := range path.Steps {
			if s.Move != grid.Start {
				p.printf(" %s", s.Move)
			}
			p.printf(" (%d, %d)", s.Cell.Row, s.Cell.Col)
		}
		p.printf("\n")
	}

	return p.err
}
