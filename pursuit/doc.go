// SPDX-License-Identifier: MIT

// Package pursuit plans the route a chaser walks through a maze to reach a
// moving target.
//
// Overview:
//
//   - Plan is a pure function of (maze, target position, chaser position). It
//     keeps no state between calls, so callers re-plan from scratch every
//     simulation tick. Two calls with the same inputs return the same Result.
//   - A Route is the list of intersection indices still ahead of the chaser,
//     nearest first. An empty Route means "head straight for the target".
//
// Steps:
//
//  1. Locate both positions. A position within the maze's half path width of
//     an intersection on both axes snaps to that intersection (Location{i, i}).
//     Otherwise it belongs to the first corridor, scanning intersections in
//     index order and their paths forward, backward, left, right, that runs
//     past it within tolerance.
//  2. Shortcuts. Same corridor: empty route. Corridors sharing one endpoint:
//     route to that endpoint only.
//  3. Search. A round-based best-first search seeded with the chaser's
//     corridor endpoints, weighted by straight-line distance from the chaser.
//     Each round expands every frontier route whose terminal intersection has
//     no cheaper-or-equal recorded distance; routes reaching an endpoint of
//     the target's corridor are completed with the straight-line hop to the
//     target. The cheapest completed route wins; equal costs go to the
//     lexicographically smaller index sequence.
//  4. Trim. A chaser standing on an intersection drops that intersection from
//     the front of the route.
//
// Errors (sentinel):
//
//   - ErrNilMaze:     the maze pointer is nil.
//   - ErrOffPath:     a position is on no corridor; the caller's position
//     tracking has drifted off the maze.
//   - ErrNoRoute:     chaser and target are in disconnected parts of the maze.
//   - ErrInvalidCost: a route cost is NaN.
//
// Complexity:
//
//   - Locate: O(log N + k) using the maze's R-tree.
//   - Plan:   O(R·(V + E)) worst case for R rounds; every intersection is
//     re-expanded only when a strictly cheaper route to it appears.
//
// Thread safety:
//
//   - Plan only reads the maze. Any number of goroutines may plan against the
//     same *maze.Maze concurrently.
package pursuit
