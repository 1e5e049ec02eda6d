// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/mazechase/geom"
)

// Cross is a horizontal and a vertical corridor crossing at the origin, each
// arm r long.
func Cross(r float64) []geom.Segment {
	return []geom.Segment{
		geom.Seg(r, 0, -r, 0),
		geom.Seg(0, r, 0, -r),
	}
}

// Window is Cross(r) framed by a square with corners at (±r, ±r).
func Window(r float64) []geom.Segment {
	return []geom.Segment{
		geom.Seg(r, 0, -r, 0),
		geom.Seg(0, r, 0, -r),
		geom.Seg(r, r, r, -r),
		geom.Seg(r, r, -r, r),
		geom.Seg(-r, r, -r, -r),
		geom.Seg(-r, -r, r, -r),
	}
}

// Lattice is rows horizontal and cols vertical lines, spacing apart, each
// spanning the whole grid. Horizontal lines come first, bottom to top.
func Lattice(rows, cols int, spacing float64) ([]geom.Segment, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("Lattice: rows=%d, cols=%d (each must be ≥ 2): %w", rows, cols, ErrTooSmall)
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("Lattice: spacing=%g must be positive: %w", spacing, ErrTooSmall)
	}

	width := float64(cols-1) * spacing
	height := float64(rows-1) * spacing
	out := make([]geom.Segment, 0, rows+cols)
	for r := 0; r < rows; r++ {
		y := float64(r) * spacing
		out = append(out, geom.Seg(0, y, width, y))
	}
	for c := 0; c < cols; c++ {
		x := float64(c) * spacing
		out = append(out, geom.Seg(x, 0, x, height))
	}

	return out, nil
}
