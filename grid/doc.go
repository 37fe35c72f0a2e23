// Package grid models the square descent grid that a driller searches,
// and loads it from whitespace-separated text.
//
// What:
//
//   - Grid wraps an n×n []int matrix of resource values; immutable once built.
//   - ValueAt and ValidMoves answer the only two questions a search asks.
//   - Parse and Load read one row per line, tokens split on whitespace.
//
// Moves:
//
//   - DownLeft  (row+1, col-1), valid iff row < n-1 and col > 0.
//   - DownRight (row+1, col+1), valid iff row < n-1 and col < n-1.
//
// Interpretation:
//
//	The grid is always a full square. Triangular inputs (row i carrying
//	i+1 values) are accepted only with WithPadding, which right-pads short
//	rows with zeros; padded cells are ordinary zero-valued cells.
//
// Complexity:
//
//   - New, Rows, Parse: O(n²) time and memory.
//   - ValueAt, ValidMoves, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows were supplied.
//   - ErrMalformedInput: non-square input, bad token, missing file.
//   - ErrOutOfBounds: lookup outside [0, n).
package grid
