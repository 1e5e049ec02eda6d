// SPDX-License-Identifier: MIT

package pursuit

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors returned by Locate and Plan.
var (
	// ErrNilMaze indicates a nil *maze.Maze.
	ErrNilMaze = errors.New("pursuit: maze is nil")

	// ErrOffPath indicates a position that lies on no corridor of the maze.
	ErrOffPath = errors.New("pursuit: position is not on a path")

	// ErrNoRoute indicates chaser and target are not connected.
	ErrNoRoute = errors.New("pursuit: no route to target")

	// ErrInvalidCost indicates a NaN route cost.
	ErrInvalidCost = errors.New("pursuit: route cost is not a number")
)

// Location is the corridor a position occupies, given by the indices of its
// two end intersections. A == B means the position is on intersection A.
type Location struct {
	A, B int
}

// AtIntersection reports whether the position snapped onto an intersection.
func (l Location) AtIntersection() bool { return l.A == l.B }

// Has reports whether i is one of the location's end intersections.
func (l Location) Has(i int) bool { return l.A == i || l.B == i }

// SameCorridor reports whether l and o name the same corridor or the same
// intersection, in either order.
func (l Location) SameCorridor(o Location) bool {
	return (l.A == o.A && l.B == o.B) || (l.A == o.B && l.B == o.A)
}

// Shared returns the end intersection l has in common with o, checking l.A
// before l.B.
func (l Location) Shared(o Location) (int, bool) {
	if o.Has(l.A) {
		return l.A, true
	}
	if o.Has(l.B) {
		return l.B, true
	}
	return 0, false
}

// String renders "(a, b)".
func (l Location) String() string { return fmt.Sprintf("(%d, %d)", l.A, l.B) }

// Route is an ordered list of intersection indices, nearest first.
type Route []int

// Outcome says which branch of the planner produced a Result.
type Outcome int

const (
	// SameEdge: chaser and target share a corridor; chase directly.
	SameEdge Outcome = iota
	// SharedNode: the corridors meet at one intersection; go there first.
	SharedNode
	// Searched: the route came from the best-first search.
	Searched
)

// String returns a snake_case outcome name, suitable as a metrics label.
func (o Outcome) String() string {
	switch o {
	case SameEdge:
		return "same_edge"
	case SharedNode:
		return "shared_node"
	case Searched:
		return "searched"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Plan call.
type Result struct {
	Route   Route    // upcoming waypoints, nearest first; may be empty
	Cost    float64  // total walking distance from chaser to target
	Outcome Outcome  // which planner branch produced Route
	Target  Location // where the target was located
	Chaser  Location // where the chaser was located
}

// Options configures Plan.
//
// Logger – receives debug records for located positions and chosen routes.
type Options struct {
	Logger *slog.Logger
}

// Option is a functional option for Plan.
type Option func(*Options)

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pursuit: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options Plan starts from: a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}
