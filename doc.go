// Package driller finds the richest way down a square mine.
//
// A driller enters on any cell of the top row and descends one row at a
// time, always diagonally (down-left or down-right), claiming the resource
// value of every cell it passes until it reaches the bottom row. driller
// enumerates every such descent and reports the one with the largest total.
//
// What is inside:
//
//	grid/   : immutable n×n Grid, valid-move lookup, text loader
//	search/ : exhaustive explicit-stack DFS, deterministic tie-break, ranking
//	render/ : grid dump, step-by-step narrative, visual path map
//	config/ : HCL configuration (input, output, log, server blocks)
//	server/ : gin HTTP API: POST /api/solve
//	cmd/driller: the command-line tool
//
// Quick ASCII example:
//
//	3 . .        3
//	. 5 .   →      5
//	. . 8            8     total 16
//
// The search is exponential (O(n·2^n)) by construction: every descent is
// visited, so it is meant for small mines such as the 7×7 reference map.
//
//	go install github.com/katalvlaran/driller/cmd/driller@latest
package driller
