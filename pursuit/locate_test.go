// SPDX-License-Identifier: MIT

package pursuit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazechase/layout"
	"github.com/katalvlaran/mazechase/maze"
	"github.com/katalvlaran/mazechase/pursuit"
)

func TestLocate_Arms(t *testing.T) {
	m := maze.MustNew(layout.Cross(1))

	cases := []struct {
		at   orb.Point
		want pursuit.Location
	}{
		{orb.Point{-0.5, 0}, pursuit.Location{A: 0, B: 1}},
		{orb.Point{0.5, 0}, pursuit.Location{A: 0, B: 2}},
		{orb.Point{0, 0.5}, pursuit.Location{A: 0, B: 4}},
		{orb.Point{0, -0.5}, pursuit.Location{A: 0, B: 3}},
	}
	for _, tc := range cases {
		got, err := pursuit.Locate(m, tc.at)
		require.NoError(t, err, "%v", tc.at)
		assert.Equal(t, tc.want, got, "%v", tc.at)
	}
}

func TestLocate_SnapsOntoIntersections(t *testing.T) {
	m := maze.MustNew(layout.Window(1))

	for i, in := range m.Intersections() {
		got, err := pursuit.Locate(m, in.Coordinates)
		require.NoError(t, err)
		assert.Equal(t, pursuit.Location{A: i, B: i}, got)
		assert.True(t, got.AtIntersection())
	}

	// Within the half path width on both axes still snaps.
	got, err := pursuit.Locate(m, orb.Point{0.2, -0.2})
	require.NoError(t, err)
	c, _ := m.IndexOf(orb.Point{0, 0})
	assert.Equal(t, pursuit.Location{A: c, B: c}, got)
}

func TestLocate_SlightlyOffCorridor(t *testing.T) {
	m := maze.MustNew(layout.Cross(1))

	got, err := pursuit.Locate(m, orb.Point{0.6, 0.2})
	require.NoError(t, err)
	assert.Equal(t, pursuit.Location{A: 0, B: 2}, got)
}

func TestLocate_Errors(t *testing.T) {
	_, err := pursuit.Locate(nil, orb.Point{})
	assert.ErrorIs(t, err, pursuit.ErrNilMaze)

	m := maze.MustNew(layout.Window(1))
	for _, p := range []orb.Point{{0.5, 0.5}, {3, 0}, {0, -1.5}} {
		_, err := pursuit.Locate(m, p)
		assert.ErrorIs(t, err, pursuit.ErrOffPath, "%v", p)
	}

	// Past the end of a dead-end arm.
	_, err = pursuit.Locate(maze.MustNew(layout.Cross(1)), orb.Point{1.4, 0})
	assert.ErrorIs(t, err, pursuit.ErrOffPath)
}

// TestLocate_MatchesFullScan checks the R-tree pruning never changes the answer.
func TestLocate_MatchesFullScan(t *testing.T) {
	segs, err := layout.Random(8, 8, layout.WithSeed(7))
	require.NoError(t, err)
	m := maze.MustNew(segs)
	rng := rand.New(rand.NewSource(3))

	for n := 0; n < 2000; n++ {
		p := orb.Point{rng.Float64()*8.5 - 0.25, rng.Float64()*8.5 - 0.25}
		want, wantOK := scanLocate(m, p)
		got, err := pursuit.Locate(m, p)
		if !wantOK {
			assert.ErrorIs(t, err, pursuit.ErrOffPath, "%v", p)
			continue
		}
		require.NoError(t, err, "%v", p)
		assert.Equal(t, want, got, "%v", p)
	}
}

// scanLocate is the unindexed two-pass localisation over every intersection.
func scanLocate(m *maze.Maze, p orb.Point) (pursuit.Location, bool) {
	hw := m.HalfPathWidth()
	near := func(a, b float64) bool { return math.Abs(a-b) < hw }
	for i := 0; i < m.Len(); i++ {
		c := m.Coordinates(i)
		if near(c.X(), p.X()) && near(c.Y(), p.Y()) {
			return pursuit.Location{A: i, B: i}, true
		}
	}
	for i := 0; i < m.Len(); i++ {
		in := m.Intersection(i)
		c := in.Coordinates
		if near(c.X(), p.X()) {
			if fp, ok := in.Path(maze.Forward); ok && c.Y() < p.Y() && p.Y()-c.Y() < fp.Length {
				return pursuit.Location{A: i, B: fp.EndIndex}, true
			}
			if bp, ok := in.Path(maze.Backward); ok && c.Y() > p.Y() && c.Y()-p.Y() < bp.Length {
				return pursuit.Location{A: i, B: bp.EndIndex}, true
			}
		}
		if near(c.Y(), p.Y()) {
			if rp, ok := in.Path(maze.Right); ok && c.X() < p.X() && p.X()-c.X() < rp.Length {
				return pursuit.Location{A: i, B: rp.EndIndex}, true
			}
			if lp, ok := in.Path(maze.Left); ok && c.X() > p.X() && c.X()-p.X() < lp.Length {
				return pursuit.Location{A: i, B: lp.EndIndex}, true
			}
		}
	}
	return pursuit.Location{}, false
}

func TestLocation_Helpers(t *testing.T) {
	l := pursuit.Location{A: 2, B: 5}
	assert.False(t, l.AtIntersection())
	assert.True(t, l.Has(5))
	assert.False(t, l.Has(3))
	assert.True(t, l.SameCorridor(pursuit.Location{A: 5, B: 2}))
	assert.False(t, l.SameCorridor(pursuit.Location{A: 5, B: 6}))

	n, ok := l.Shared(pursuit.Location{A: 5, B: 6})
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	_, ok = l.Shared(pursuit.Location{A: 7, B: 6})
	assert.False(t, ok)

	assert.Equal(t, "(2, 5)", l.String())
}
