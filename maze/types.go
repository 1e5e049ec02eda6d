// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"log/slog"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by New.
var (
	// ErrNoSegments indicates an empty segment list.
	ErrNoSegments = errors.New("maze: no segments")

	// ErrNotAxisAligned indicates a segment that is not purely horizontal or
	// purely vertical.
	ErrNotAxisAligned = errors.New("maze: segment is not axis-aligned")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("maze: segment has a non-finite coordinate")

	// ErrDuplicateSegment indicates two segments with the same endpoints.
	ErrDuplicateSegment = errors.New("maze: duplicate segment")
)

// DefaultHalfPathWidth is half the width of a corridor. Positions closer than
// this to a corridor's centre line are considered to be on it.
const DefaultHalfPathWidth = 0.25

// Direction names one of the four outgoing path slots of an Intersection.
type Direction int

const (
	// Forward leads toward larger y.
	Forward Direction = iota
	// Backward leads toward smaller y.
	Backward
	// Left leads toward smaller x.
	Left
	// Right leads toward larger x.
	Right

	numDirections = 4
)

// Directions lists every direction in scan order.
var Directions = [numDirections]Direction{Forward, Backward, Left, Right}

// Opposite returns the direction pointing back along the same corridor.
func (d Direction) Opposite() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Path is a directed corridor leaving an Intersection.
type Path struct {
	EndIndex int     // index of the intersection at the far end
	Length   float64 // coordinate distance to that intersection
}

// Intersection is a node of the maze at a unique coordinate.
type Intersection struct {
	Coordinates orb.Point
	paths       [numDirections]*Path
}

// Path returns the path leaving in direction d, if any.
func (in Intersection) Path(d Direction) (Path, bool) {
	if d < 0 || d >= numDirections || in.paths[d] == nil {
		return Path{}, false
	}
	return *in.paths[d], true
}

// Paths returns the existing paths in the order forward, backward, left, right.
func (in Intersection) Paths() []Path {
	out := make([]Path, 0, numDirections)
	for _, p := range in.paths {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Degree is the number of existing paths.
func (in Intersection) Degree() int {
	n := 0
	for _, p := range in.paths {
		if p != nil {
			n++
		}
	}
	return n
}

// Edge is a flattened view of one directed path.
type Edge struct {
	From   int
	Dir    Direction
	To     int
	Length float64
}

// Options configures New.
//
// HalfPathWidth   – corridor half width used by the spatial index; > 0.
// ClipCrossings   – only register crossings that lie on both segments.
// Logger          – receives a debug record per build; discards by default.
type Options struct {
	HalfPathWidth float64
	ClipCrossings bool
	Logger        *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithHalfPathWidth sets the corridor half width. Panics if w <= 0.
func WithHalfPathWidth(w float64) Option {
	if !(w > 0) {
		panic("maze: WithHalfPathWidth must be positive")
	}
	return func(o *Options) {
		o.HalfPathWidth = w
	}
}

// WithClippedCrossings registers a horizontal/vertical crossing only when it
// lies within both segments' extents. Without it every crossing of the
// extended lines becomes an intersection.
func WithClippedCrossings() Option {
	return func(o *Options) {
		o.ClipCrossings = true
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return Options{
		HalfPathWidth: DefaultHalfPathWidth,
		Logger:        slog.New(slog.DiscardHandler),
	}
}
