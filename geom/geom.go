// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Orientation classifies a Segment by the axes its endpoints differ in.
type Orientation int

const (
	// Degenerate segments have identical endpoints (they differ in no axis).
	Degenerate Orientation = iota
	// Horizontal segments differ only in x; y is fixed.
	Horizontal
	// Vertical segments differ only in y; x is fixed.
	Vertical
	// Diagonal segments differ in both axes.
	Diagonal
)

// String returns a lower-case name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "degenerate"
	}
}

// Segment is a straight corridor between two points.
type Segment struct {
	From orb.Point
	To   orb.Point
}

// Seg is shorthand for Segment{From: {x1, y1}, To: {x2, y2}}.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{From: orb.Point{x1, y1}, To: orb.Point{x2, y2}}
}

// String renders the segment as "(x1, y1)->(x2, y2)".
func (s Segment) String() string {
	return fmt.Sprintf("(%g, %g)->(%g, %g)", s.From.X(), s.From.Y(), s.To.X(), s.To.Y())
}

// Orientation reports which axes the endpoints differ in.
func (s Segment) Orientation() Orientation {
	dx := s.From.X() != s.To.X()
	dy := s.From.Y() != s.To.Y()
	switch {
	case dx && dy:
		return Diagonal
	case dx:
		return Horizontal
	case dy:
		return Vertical
	default:
		return Degenerate
	}
}

// AxisAligned reports whether s is a usable corridor: horizontal or vertical.
func (s Segment) AxisAligned() bool {
	o := s.Orientation()
	return o == Horizontal || o == Vertical
}

// Normalize returns s with the earlier endpoint first (see Before).
func (s Segment) Normalize() Segment {
	if Before(s.To, s.From) {
		return Segment{From: s.To, To: s.From}
	}
	return s
}

// Reverse swaps the endpoints.
func (s Segment) Reverse() Segment {
	return Segment{From: s.To, To: s.From}
}

// Length is the distance between the endpoints.
func (s Segment) Length() float64 {
	return planar.Distance(s.From, s.To)
}

// Bound is the axis-aligned box spanned by the endpoints.
func (s Segment) Bound() orb.Bound {
	return s.From.Bound().Extend(s.To)
}

// Contains reports whether p lies on s: exactly on the fixed axis and between
// the endpoints, inclusive. It is only meaningful for axis-aligned segments.
func (s Segment) Contains(p orb.Point) bool {
	b := s.Bound()
	switch s.Orientation() {
	case Horizontal:
		return p.Y() == s.From.Y() && p.X() >= b.Min.X() && p.X() <= b.Max.X()
	case Vertical:
		return p.X() == s.From.X() && p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
	case Degenerate:
		return p.Equal(s.From)
	default:
		return false
	}
}

// Equal reports whether a and b describe the same corridor, regardless of the
// order their endpoints were authored in.
func Equal(a, b Segment) bool {
	na, nb := a.Normalize(), b.Normalize()
	return na.From.Equal(nb.From) && na.To.Equal(nb.To)
}

// Before orders points by x, then by y.
func Before(a, b orb.Point) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// Crossing is the point where the infinite lines through a horizontal segment
// h and a vertical segment v meet: x from v, y from h. The point need not lie
// within either segment.
func Crossing(h, v Segment) orb.Point {
	return orb.Point{v.From.X(), h.From.Y()}
}

// Distance is the straight-line distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
