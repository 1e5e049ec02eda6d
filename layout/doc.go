// SPDX-License-Identifier: MIT

// Package layout generates corridor segment lists for mazes.
//
// Every generator is deterministic: fixed shapes depend only on their size
// arguments, and Random depends only on its RNG seed. The output feeds
// maze.New directly.
//
//	Cross(r)          – a single crossing with four arms of length r.
//	Window(r)         – a cross inside a square: a 3×3 lattice of size 2r.
//	Lattice(n, m, s)  – n horizontal and m vertical full-length lines.
//	Random(n, m, ...) – a perfect maze (spanning tree) over an n×m cell grid,
//	                    with collinear corridor pieces merged into runs.
//
// Errors:
//
//   - ErrTooSmall: a dimension is below the generator's minimum.
package layout
