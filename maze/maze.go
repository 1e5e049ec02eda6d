// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/geom"
)

// Maze is the immutable intersection graph built from corridor segments.
type Maze struct {
	intersections []Intersection
	segments      []geom.Segment // normalized, in input order
	lookup        map[orb.Point]int
	halfPathWidth float64
	index         *spatialIndex
}

// New builds a Maze from corridor segments.
//
// Preconditions (checked in order):
//  1. At least one segment (ErrNoSegments).
//  2. Every coordinate finite (ErrNonFinite).
//  3. Every segment horizontal or vertical (ErrNotAxisAligned).
//  4. No two segments equal once normalized (ErrDuplicateSegment).
//
// Reversing the endpoints of any subset of segments yields an identical Maze.
func New(segments []geom.Segment, opts ...Option) (*Maze, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(segments) == 0 {
		return nil, ErrNoSegments
	}

	norm := make([]geom.Segment, len(segments))
	for i, s := range segments {
		if !finite(s.From) || !finite(s.To) {
			return nil, fmt.Errorf("%w: segment %d %s", ErrNonFinite, i, s)
		}
		if !s.AxisAligned() {
			return nil, fmt.Errorf("%w: segment %d %s is %s", ErrNotAxisAligned, i, s, s.Orientation())
		}
		norm[i] = s.Normalize()
	}
	for i := 0; i < len(norm); i++ {
		for j := i + 1; j < len(norm); j++ {
			if norm[i] == norm[j] {
				return nil, fmt.Errorf("%w: segments %d and %d are both %s", ErrDuplicateSegment, i, j, norm[i])
			}
		}
	}

	b := &builder{
		segments: norm,
		clip:     cfg.ClipCrossings,
		lookup:   make(map[orb.Point]int, 2*len(norm)),
	}
	b.discover()
	b.assign()

	m := &Maze{
		intersections: b.nodes,
		segments:      norm,
		lookup:        b.lookup,
		halfPathWidth: cfg.HalfPathWidth,
	}
	idx, err := newSpatialIndex(m.intersections, cfg.HalfPathWidth)
	if err != nil {
		return nil, err
	}
	m.index = idx

	cfg.Logger.Debug("maze built",
		"segments", len(norm),
		"intersections", len(m.intersections),
		"clip_crossings", cfg.ClipCrossings,
	)

	return m, nil
}

// MustNew is New that panics on error. Intended for fixed, known-good layouts.
func MustNew(segments []geom.Segment, opts ...Option) *Maze {
	m, err := New(segments, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// builder holds the mutable state of a single New call.
type builder struct {
	segments []geom.Segment
	clip     bool
	nodes    []Intersection
	lookup   map[orb.Point]int
}

// add registers p unless an intersection already sits there.
func (b *builder) add(p orb.Point) {
	if _, ok := b.lookup[p]; ok {
		return
	}
	b.lookup[p] = len(b.nodes)
	b.nodes = append(b.nodes, Intersection{Coordinates: p})
}

// discover performs the node discovery pass: crossings first, then endpoints.
func (b *builder) discover() {
	for i := 0; i < len(b.segments); i++ {
		for j := i + 1; j < len(b.segments); j++ {
			h, v, ok := crossingPair(b.segments[i], b.segments[j])
			if !ok {
				continue
			}
			p := geom.Crossing(h, v)
			if b.clip && !(h.Contains(p) && v.Contains(p)) {
				continue
			}
			b.add(p)
		}
	}
	// Segments are normalized, so From is always the earlier endpoint.
	for _, s := range b.segments {
		b.add(s.From)
		b.add(s.To)
	}
}

// assign links consecutive intersections along every segment.
func (b *builder) assign() {
	for _, s := range b.segments {
		on := make([]int, 0, 2)
		for i := range b.nodes {
			if s.Contains(b.nodes[i].Coordinates) {
				on = append(on, i)
			}
		}
		sort.SliceStable(on, func(x, y int) bool {
			return geom.Distance(s.From, b.nodes[on[x]].Coordinates) <
				geom.Distance(s.From, b.nodes[on[y]].Coordinates)
		})

		ahead, back := Right, Left
		if s.Orientation() == geom.Vertical {
			ahead, back = Forward, Backward
		}
		for k := 0; k+1 < len(on); k++ {
			near, far := on[k], on[k+1]
			length := geom.Distance(b.nodes[near].Coordinates, b.nodes[far].Coordinates)
			b.nodes[near].paths[ahead] = &Path{EndIndex: far, Length: length}
			b.nodes[far].paths[back] = &Path{EndIndex: near, Length: length}
		}
	}
}

// crossingPair returns (horizontal, vertical) when a and b are one of each.
func crossingPair(a, b geom.Segment) (h, v geom.Segment, ok bool) {
	switch {
	case a.Orientation() == geom.Horizontal && b.Orientation() == geom.Vertical:
		return a, b, true
	case a.Orientation() == geom.Vertical && b.Orientation() == geom.Horizontal:
		return b, a, true
	default:
		return geom.Segment{}, geom.Segment{}, false
	}
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p.X()) && !math.IsInf(p.X(), 0) && !math.IsNaN(p.Y()) && !math.IsInf(p.Y(), 0)
}

// Len is the number of intersections.
func (m *Maze) Len() int { return len(m.intersections) }

// Intersection returns the intersection at index i. Panics if i is out of range.
func (m *Maze) Intersection(i int) Intersection { return m.intersections[i] }

// Coordinates returns the coordinates of intersection i.
func (m *Maze) Coordinates(i int) orb.Point { return m.intersections[i].Coordinates }

// Intersections returns a copy of the intersection list in index order.
func (m *Maze) Intersections() []Intersection {
	out := make([]Intersection, len(m.intersections))
	copy(out, m.intersections)
	return out
}

// Segments returns the normalized input segments in input order.
func (m *Maze) Segments() []geom.Segment {
	out := make([]geom.Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Edges lists every directed path, ordered by source index then direction.
func (m *Maze) Edges() []Edge {
	var out []Edge
	for i, in := range m.intersections {
		for _, d := range Directions {
			if p, ok := in.Path(d); ok {
				out = append(out, Edge{From: i, Dir: d, To: p.EndIndex, Length: p.Length})
			}
		}
	}
	return out
}

// IndexOf returns the index of the intersection exactly at p.
func (m *Maze) IndexOf(p orb.Point) (int, bool) {
	i, ok := m.lookup[p]
	return i, ok
}

// HalfPathWidth is the corridor half width the Maze was built with.
func (m *Maze) HalfPathWidth() float64 { return m.halfPathWidth }

// Bound is the box covering every intersection.
func (m *Maze) Bound() orb.Bound {
	b := m.intersections[0].Coordinates.Bound()
	for _, in := range m.intersections[1:] {
		b = b.Extend(in.Coordinates)
	}
	return b
}

// Candidates returns, in ascending order, the indices of intersections whose
// snap box or outgoing corridor boxes contain p. It is a superset of the
// intersections an exact localisation test can match.
func (m *Maze) Candidates(p orb.Point) []int {
	return m.index.candidates(p)
}
