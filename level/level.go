// SPDX-License-Identifier: MIT

package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazechase/chase"
	"github.com/katalvlaran/mazechase/geom"
	"github.com/katalvlaran/mazechase/maze"
	"github.com/katalvlaran/mazechase/pursuit"
)

// Parse decodes a level and fills in defaulted speeds and ghost names.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSegments
		}
		return nil, err
	}

	if len(lvl.Segments) == 0 {
		return nil, ErrNoSegments
	}
	if lvl.HalfPathWidth < 0 || math.IsNaN(lvl.HalfPathWidth) || math.IsInf(lvl.HalfPathWidth, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadHalfPathWidth, lvl.HalfPathWidth)
	}

	if lvl.Player.Speed == 0 {
		lvl.Player.Speed = chase.DefaultPlayerSpeed
	}
	for i := range lvl.Ghosts {
		g := &lvl.Ghosts[i]
		if g.Name == "" {
			g.Name = fmt.Sprintf("ghost-%d", i)
		}
		if g.Speed == 0 {
			g.Speed = chase.DefaultGhostSpeed
		}
	}

	return &lvl, nil
}

// Load reads and parses the level file at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return lvl, nil
}

// FromSegments wraps segments in a Level with no actors.
func FromSegments(name string, segments []geom.Segment) *Level {
	lvl := &Level{Name: name, Player: PlayerSpec{Speed: chase.DefaultPlayerSpeed}}
	for _, s := range segments {
		lvl.Segments = append(lvl.Segments, Segment{Point(s.From), Point(s.To)})
	}
	return lvl
}

// GeomSegments converts the level's segments.
func (l *Level) GeomSegments() []geom.Segment {
	out := make([]geom.Segment, len(l.Segments))
	for i, s := range l.Segments {
		out[i] = s.Geom()
	}
	return out
}

// Build constructs the level's maze and checks that the player, its patrol
// waypoints and every ghost lie on a corridor. opts are applied after the
// level's own half path width and crossing settings.
func (l *Level) Build(opts ...maze.Option) (*maze.Maze, error) {
	var mopts []maze.Option
	if l.HalfPathWidth > 0 {
		mopts = append(mopts, maze.WithHalfPathWidth(l.HalfPathWidth))
	}
	if l.ClipCrossings {
		mopts = append(mopts, maze.WithClippedCrossings())
	}
	mopts = append(mopts, opts...)

	m, err := maze.New(l.GeomSegments(), mopts...)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}

	check := func(what string, p Point) error {
		if _, err := pursuit.Locate(m, p.Orb()); err != nil {
			return fmt.Errorf("level %q: %s: %w", l.Name, what, err)
		}
		return nil
	}
	if err := check("player", l.Player.At); err != nil {
		return nil, err
	}
	for i, p := range l.Player.Patrol {
		if err := check(fmt.Sprintf("patrol[%d]", i), p); err != nil {
			return nil, err
		}
	}
	for _, g := range l.Ghosts {
		if err := check("ghost "+g.Name, g.At); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Chasers creates one chaser per ghost.
func (l *Level) Chasers() []*chase.Chaser {
	out := make([]*chase.Chaser, len(l.Ghosts))
	for i, g := range l.Ghosts {
		out[i] = chase.NewChaser(g.Name, g.Speed, g.At.Orb())
	}
	return out
}

// Patrol creates the player.
func (l *Level) Patrol() *chase.Patrol {
	waypoints := make([]orb.Point, len(l.Player.Patrol))
	for i, p := range l.Player.Patrol {
		waypoints[i] = p.Orb()
	}
	return chase.NewPatrol(l.Player.At.Orb(), l.Player.Speed, waypoints)
}
