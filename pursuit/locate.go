// SPDX-License-Identifier: MIT

package pursuit

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/maze"
)

// Locate finds the corridor p lies on.
//
// Snapping onto an intersection takes priority over lying on a corridor: the
// first pass returns Location{i, i} for the lowest-index intersection within
// the half path width of p on both axes. The second pass returns
// Location{i, end} for the first intersection i, in index order, with a path
// that runs past p, checking forward/backward before right/left.
//
// Only the intersections the maze's spatial index reports near p are tested;
// the result equals a full scan in index order.
func Locate(m *maze.Maze, p orb.Point) (Location, error) {
	if m == nil {
		return Location{}, ErrNilMaze
	}

	hw := m.HalfPathWidth()
	within := func(a, b float64) bool { return math.Abs(a-b) < hw }

	candidates := m.Candidates(p)

	for _, i := range candidates {
		c := m.Coordinates(i)
		if within(c.X(), p.X()) && within(c.Y(), p.Y()) {
			return Location{A: i, B: i}, nil
		}
	}

	for _, i := range candidates {
		in := m.Intersection(i)
		c := in.Coordinates

		// Not an else-if: a position off the vertical corridor may still be
		// on the horizontal one.
		if within(c.X(), p.X()) {
			if c.Y() < p.Y() {
				if fp, ok := in.Path(maze.Forward); ok && p.Y()-c.Y() < fp.Length {
					return Location{A: i, B: fp.EndIndex}, nil
				}
			} else if c.Y() > p.Y() {
				if bp, ok := in.Path(maze.Backward); ok && c.Y()-p.Y() < bp.Length {
					return Location{A: i, B: bp.EndIndex}, nil
				}
			}
		}
		if within(c.Y(), p.Y()) {
			if c.X() < p.X() {
				if rp, ok := in.Path(maze.Right); ok && p.X()-c.X() < rp.Length {
					return Location{A: i, B: rp.EndIndex}, nil
				}
			} else if c.X() > p.X() {
				if lp, ok := in.Path(maze.Left); ok && c.X()-p.X() < lp.Length {
					return Location{A: i, B: lp.EndIndex}, nil
				}
			}
		}
	}

	return Location{}, fmt.Errorf("%w: (%g, %g)", ErrOffPath, p.X(), p.Y())
}
