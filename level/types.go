// SPDX-License-Identifier: MIT

package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazechase/geom"
)

// Sentinel errors returned by Parse, Load and Build.
var (
	// ErrNoSegments indicates a level without segments.
	ErrNoSegments = errors.New("level: no segments")

	// ErrBadPoint indicates a point that is not a pair of finite numbers.
	ErrBadPoint = errors.New("level: point must be [x, y]")

	// ErrBadSegment indicates a segment that is not a pair of points.
	ErrBadSegment = errors.New("level: segment must be [[x, y], [x, y]]")

	// ErrBadHalfPathWidth indicates a negative or non-finite half path width.
	ErrBadHalfPathWidth = errors.New("level: half_path_width must be a positive number")
)

// Point is a maze point written as [x, y].
type Point orb.Point

// UnmarshalYAML decodes a two-element sequence of finite numbers.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return fmt.Errorf("%w: line %d", ErrBadPoint, n.Line)
	}
	var xy [2]float64
	for i, c := range n.Content {
		if err := c.Decode(&xy[i]); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadPoint, c.Line, err)
		}
		if math.IsNaN(xy[i]) || math.IsInf(xy[i], 0) {
			return fmt.Errorf("%w: line %d: %g is not finite", ErrBadPoint, c.Line, xy[i])
		}
	}
	*p = Point(xy)
	return nil
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point(p) }

// Segment is a corridor written as [[x, y], [x, y]].
type Segment [2]Point

// UnmarshalYAML decodes a two-element sequence of points.
func (s *Segment) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return fmt.Errorf("%w: line %d", ErrBadSegment, n.Line)
	}
	for i, c := range n.Content {
		if err := c.Decode(&s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Geom converts s to a geom.Segment.
func (s Segment) Geom() geom.Segment {
	return geom.Segment{From: s[0].Orb(), To: s[1].Orb()}
}

// PlayerSpec is the chased actor.
type PlayerSpec struct {
	At     Point   `yaml:"at"`
	Speed  float64 `yaml:"speed"`
	Patrol []Point `yaml:"patrol"`
}

// GhostSpec is one chaser.
type GhostSpec struct {
	Name  string  `yaml:"name"`
	At    Point   `yaml:"at"`
	Speed float64 `yaml:"speed"`
}

// Level is a parsed level file.
type Level struct {
	Name          string      `yaml:"name"`
	HalfPathWidth float64     `yaml:"half_path_width"`
	ClipCrossings bool        `yaml:"clip_crossings"`
	Segments      []Segment   `yaml:"segments"`
	Player        PlayerSpec  `yaml:"player"`
	Ghosts        []GhostSpec `yaml:"ghosts"`
}
