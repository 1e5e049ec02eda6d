// SPDX-License-Identifier: MIT

// Package mazechase finds the way through corridor mazes for actors that
// chase a moving target.
//
// What is mazechase?
//
//	A small library plus a headless demo:
//		• geom     – axis-aligned corridor segments on orb points
//		• maze     – builds an immutable graph of intersections from segments
//		• pursuit  – locates positions on corridors and plans shortest routes
//		• chase    – turns routes into per-tick velocities for 3D actors
//		• layout   – deterministic segment generators (cross, window, lattice, random)
//		• level    – YAML level files and hot reload
//
// Under the hood:
//
//	A maze is a slice of intersections, each with up to four paths
//	(forward +y, backward −y, left −x, right +x) pointing at other
//	intersections by index. An R-tree over intersection boxes narrows the
//	candidates when a position is located. Planning is a round-based
//	best-first search from the chaser's corridor ends to the target's.
//
// Quick start:
//
//	m := maze.MustNew(layout.Window(1))
//	res, err := pursuit.Plan(m, target, chaser)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dir := pursuit.Heading(m, res.Route, chaser, target)
//
// Run the simulation:
//
//	go run ./cmd/mazechase -level levels/window.yaml
package mazechase
