// SPDX-License-Identifier: MIT

// Package geom holds the planar primitives shared by the maze builder and the
// pursuit planner: corridor segments and the orientation rules that decide
// whether a segment is usable as a maze corridor.
//
// What:
//
//   - Points are orb.Point values (x, y). The host engine projects its 3D
//     transforms onto this plane before calling into the core.
//   - A Segment is a straight corridor between two endpoints. Only purely
//     horizontal or purely vertical segments are valid corridors.
//   - Normalize orders endpoints so that the "earlier" one (smaller x, then
//     smaller y) comes first. Every consumer works on normalized segments,
//     which makes graph construction independent of authoring direction.
//
// Complexity:
//
//   - Every operation is O(1).
package geom
