// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/mazechase/geom"
)

// Random carves a perfect maze over a rows×cols grid of cells with a
// randomized depth-first search, then merges collinear corridor pieces into
// maximal runs. Cell (r, c) sits at (c·spacing, r·spacing).
//
// Every cell is reachable from every other, so the resulting maze is
// connected. The same seed always yields the same segments in the same order.
func Random(rows, cols int, opts ...Option) ([]geom.Segment, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("Random: rows=%d, cols=%d (need at least 2 cells): %w", rows, cols, ErrTooSmall)
	}
	cfg := newConfig(opts)

	// east[r][c]: corridor (r,c)–(r,c+1); north[r][c]: corridor (r,c)–(r+1,c).
	east := grid(rows, cols)
	north := grid(rows, cols)
	visited := grid(rows, cols)

	type cell struct{ r, c int }
	stack := []cell{{0, 0}}
	visited[0][0] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []cell
		for _, d := range [4]cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := cell{cur.r + d.r, cur.c + d.c}
			if n.r < 0 || n.r >= rows || n.c < 0 || n.c >= cols || visited[n.r][n.c] {
				continue
			}
			options = append(options, n)
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := options[cfg.rng.Intn(len(options))]
		switch {
		case n.c > cur.c:
			east[cur.r][cur.c] = true
		case n.c < cur.c:
			east[n.r][n.c] = true
		case n.r > cur.r:
			north[cur.r][cur.c] = true
		default:
			north[n.r][n.c] = true
		}
		visited[n.r][n.c] = true
		stack = append(stack, n)
	}

	s := cfg.spacing
	var out []geom.Segment
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; {
			if !east[r][c] {
				c++
				continue
			}
			start := c
			for c < cols && east[r][c] {
				c++
			}
			out = append(out, geom.Seg(float64(start)*s, float64(r)*s, float64(c)*s, float64(r)*s))
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; {
			if !north[r][c] {
				r++
				continue
			}
			start := r
			for r < rows && north[r][c] {
				r++
			}
			out = append(out, geom.Seg(float64(c)*s, float64(start)*s, float64(c)*s, float64(r)*s))
		}
	}

	return out, nil
}

func grid(rows, cols int) [][]bool {
	g := make([][]bool, rows)
	for r := range g {
		g[r] = make([]bool, cols)
	}
	return g
}
