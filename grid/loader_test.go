package grid_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/driller/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Valid reads a square grid with irregular whitespace and blank lines.
func TestParse_Valid(t *testing.T) {
	src := "3 0 0\n\n1\t5  0\n 2 6 8 \n\n"
	g, err := grid.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, [][]int{{3, 0, 0}, {1, 5, 0}, {2, 6, 8}}, g.Rows())
}

// TestParse_Negative accepts signed integers.
func TestParse_Negative(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("-1 2\n3 -4\n"), grid.WithSize(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-1, 2}, {3, -4}}, g.Rows())
}

// TestParse_Padding right-pads a triangular input with zeros.
func TestParse_Padding(t *testing.T) {
	src := "3\n1 5\n2 6 8\n"
	g, err := grid.Parse(strings.NewReader(src), grid.WithSize(3), grid.WithPadding())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 0, 0}, {1, 5, 0}, {2, 6, 8}}, g.Rows())
}

// TestParse_PaddingInfersSize takes n from the row count of a triangular
// file when no size is given.
func TestParse_PaddingInfersSize(t *testing.T) {
	src := "7\n3 8\n8 1 0\n2 7 4 4\n4 5 2 6 5\n1 0 9 3 1 6\n4 2 9 8 7 0 3\n"
	g, err := grid.Parse(strings.NewReader(src), grid.WithPadding())
	require.NoError(t, err)
	assert.Equal(t, 7, g.Size())
	v, err := g.ValueAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	v, err = g.ValueAt(0, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// a square file keeps its size under padding
	g, err = grid.Parse(strings.NewReader("1 2\n3 4\n"), grid.WithPadding())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Rows())
}

// TestParse_Errors verifies every malformed shape is rejected before a grid exists.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []grid.LoadOption
		err  error
	}{
		{"Empty", "", nil, grid.ErrEmptyGrid},
		{"OnlyBlank", "\n  \n\t\n", nil, grid.ErrEmptyGrid},
		{"ShortRow", "1 2 3\n4 5\n6 7 8\n", nil, grid.ErrMalformedInput},
		{"LongRow", "1 2\n3 4 5\n", nil, grid.ErrMalformedInput},
		{"TooFewRows", "1 2 3\n4 5 6\n", nil, grid.ErrMalformedInput},
		{"TooManyRows", "1 2\n3 4\n5 6\n", nil, grid.ErrMalformedInput},
		{"BadToken", "1 x\n3 4\n", nil, grid.ErrMalformedInput},
		{"Float", "1 2.5\n3 4\n", nil, grid.ErrMalformedInput},
		{"SizeMismatch", "1 2\n3 4\n", []grid.LoadOption{grid.WithSize(3)}, grid.ErrMalformedInput},
		{"TriangularWithoutPadding", "3\n1 5\n2 6 8\n", []grid.LoadOption{grid.WithSize(3)}, grid.ErrMalformedInput},
		{"PaddingStillBoundsRows", "1\n2 3\n4 5 6\n", []grid.LoadOption{grid.WithSize(2), grid.WithPadding()}, grid.ErrMalformedInput},
		{"PaddingInferredLongRow", "1 2 3\n4 5 6\n", []grid.LoadOption{grid.WithPadding()}, grid.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(strings.NewReader(tc.src), tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestLoad reads from disk and reports missing files as malformed input.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600))

	g, err := grid.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())

	_, err = grid.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, grid.ErrMalformedInput)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n3\n"), 0o600))
	_, err = grid.Load(bad)
	assert.ErrorIs(t, err, grid.ErrMalformedInput)
	assert.Contains(t, err.Error(), bad)
}
