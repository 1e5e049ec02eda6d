// SPDX-License-Identifier: MIT

// Package maze turns a list of axis-aligned corridor segments into a planar
// graph of intersections joined by cardinal, length-weighted paths.
//
// What:
//
//   - Maze is an immutable arena of Intersections addressed by index. Indices
//     are stable for the life of the Maze and are the only handles the pursuit
//     planner uses; there are no pointers between intersections, so corridor
//     cycles need no special ownership handling.
//   - Every Intersection has up to four outgoing paths: Forward (+y),
//     Backward (−y), Right (+x) and Left (−x).
//   - Every corridor is stored as a matched pair of directed paths with the
//     same length, so the graph is logically undirected.
//
// Construction (New):
//
//  1. Node discovery. Every horizontal/vertical pair of segments contributes
//     the crossing point of their infinite lines, in pair order (i<j). Then
//     every segment contributes its two endpoints, earlier endpoint first.
//     Coordinates that already exist are not added again.
//  2. Edge assignment. For every segment, the intersections lying on it are
//     sorted along the segment and consecutive ones are linked in both
//     directions.
//
// Crossings are registered even when they fall outside both segments. Such
// phantom intersections have no paths. WithClippedCrossings turns that off.
//
// Errors:
//
//   - ErrNoSegments: the segment list is empty.
//   - ErrNotAxisAligned: a segment is diagonal or has zero length.
//   - ErrNonFinite: a segment has a NaN or infinite coordinate.
//   - ErrDuplicateSegment: two segments describe the same corridor.
//
// Complexity:
//
//   - New: O(S² + S·N + N log N) time, O(N) memory, for S segments and N
//     intersections.
//   - Candidates: O(log N + k) with the R-tree index.
//
// Thread safety:
//
//   - A built Maze is never mutated and may be read from any number of
//     goroutines.
package maze
