package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOption configures Parse and Load.
type LoadOption func(*LoadOptions)

// LoadOptions holds parameters for reading a grid from text.
type LoadOptions struct {
	// Size fixes n. Zero infers it: from the first row's value count, or
	// from the row count when Padding is set.
	Size int

	// Padding, if true, right-pads rows shorter than n with zeros.
	Padding bool
}

// DefaultLoadOptions returns LoadOptions with:
//   - Size inferred from the input (Size = 0)
//   - strict row lengths (Padding = false)
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Size:    0,
		Padding: false,
	}
}

// WithSize fixes the grid size to n. Non-positive values keep inference.
func WithSize(n int) LoadOption {
	return func(o *LoadOptions) {
		if n > 0 {
			o.Size = n
		}
	}
}

// WithPadding accepts rows shorter than n and fills them with zeros.
func WithPadding() LoadOption {
	return func(o *LoadOptions) {
		o.Padding = true
	}
}

// Load opens path and parses it with Parse.
// A missing or unreadable file is reported as ErrMalformedInput.
func Load(path string, opts ...LoadOption) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads a grid from r: one row per line, integers separated by
// whitespace. Blank lines are skipped.
//
// Without WithSize, n is the value count of the first row, or the number of
// rows when WithPadding is set, so a triangular file needs no explicit size.
//
// Returns ErrEmptyGrid if r holds no rows, ErrMalformedInput if a token is
// not an integer or the rows do not form an n×n square.
func Parse(r io.Reader, opts ...LoadOption) (*Grid, error) {
	lo := DefaultLoadOptions()
	for _, fn := range opts {
		fn(&lo)
	}

	// 1. Collect non-blank lines with their line numbers
	type textRow struct {
		line   int
		fields []string
	}
	var text []textRow
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if fields := strings.Fields(sc.Text()); len(fields) > 0 {
			text = append(text, textRow{line: line, fields: fields})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(text) == 0 {
		return nil, ErrEmptyGrid
	}

	// 2. Resolve n
	n := lo.Size
	if n == 0 {
		n = len(text[0].fields)
		if lo.Padding {
			n = len(text)
		}
	}

	// 3. Convert rows
	rows := make([][]int, 0, n)
	for _, tr := range text {
		if len(rows) == n {
			return nil, fmt.Errorf("%w: line %d: more than %d rows", ErrMalformedInput, tr.line, n)
		}
		if len(tr.fields) > n || (len(tr.fields) < n && !lo.Padding) {
			return nil, fmt.Errorf("%w: line %d: %d values, want %d", ErrMalformedInput, tr.line, len(tr.fields), n)
		}

		row := make([]int, n)
		for j, tok := range tr.fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedInput, tr.line, tok)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) < n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformedInput, len(rows), n)
	}

	return New(rows)
}
