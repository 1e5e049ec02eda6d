// SPDX-License-Identifier: MIT

package pursuit

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/geom"
	"github.com/katalvlaran/mazechase/maze"
)

// Heading is the unit direction a chaser at chaser should move in this tick:
// toward the first waypoint of route, or straight at target when route is
// empty. It is the zero vector when the chaser already stands on that point.
func Heading(m *maze.Maze, route Route, chaser, target orb.Point) orb.Point {
	goal := target
	if len(route) > 0 {
		goal = m.Coordinates(route[0])
	}

	d := geom.Distance(chaser, goal)
	if d == 0 {
		return orb.Point{0, 0}
	}
	return orb.Point{(goal.X() - chaser.X()) / d, (goal.Y() - chaser.Y()) / d}
}
