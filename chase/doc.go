// SPDX-License-Identifier: MIT

// Package chase turns planner output into motion for actors living in a 3D
// world whose floor is the maze plane.
//
// What:
//
//   - Actor is a plain position/velocity record (mgl64.Vec3). The maze plane
//     is the world's (x, z) plane; y is height and is never steered.
//   - Chaser is a named Actor with a speed. Steer plans from scratch with
//     pursuit.Plan and sets the velocity toward the next waypoint, or straight
//     at the target when chaser and target share a corridor.
//   - Pack steers several chasers at once. Tick plans every chaser
//     concurrently (the maze is immutable, so planning needs no locking) and
//     Advance integrates positions.
//   - Patrol walks a target around a closed list of waypoints.
//
// Nothing is remembered between ticks: every Tick replans every chaser.
//
// Errors:
//
//   - ErrNoChasers    NewPack was given no chasers.
//   - pursuit errors  Steer and Tick wrap them with the chaser name.
//
// Thread safety:
//
//   - A Pack must not be ticked or advanced concurrently with itself.
//   - Observers are called from several goroutines during a Tick.
package chase
