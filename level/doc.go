// SPDX-License-Identifier: MIT

// Package level reads maze levels from YAML and watches level directories
// for edits.
//
// A level file:
//
//	name: window
//	half_path_width: 0.25   # optional, maze.DefaultHalfPathWidth when 0
//	clip_crossings: false   # optional, see maze.WithClippedCrossings
//	segments:
//	  - [[1, 0], [-1, 0]]
//	  - [[0, 1], [0, -1]]
//	player:
//	  at: [0, 0]
//	  speed: 3              # optional, chase.DefaultPlayerSpeed when 0
//	  patrol: [[1, 0], [0, 0]]
//	ghosts:
//	  - name: blinky        # optional, "ghost-<n>" when empty
//	    at: [-1, 0]
//	    speed: 2.5          # optional, chase.DefaultGhostSpeed when 0
//
// Unknown keys are rejected. Build turns a Level into a maze and checks that
// every actor and patrol waypoint lies on a corridor.
//
// Watcher reports .yaml and .yml files that were written, created, renamed
// or removed, at most once per file per 100 ms.
package level
