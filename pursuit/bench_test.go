// SPDX-License-Identifier: MIT

package pursuit_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/layout"
	"github.com/katalvlaran/mazechase/maze"
	"github.com/katalvlaran/mazechase/pursuit"
)

func benchMaze(b *testing.B) *maze.Maze {
	b.Helper()
	segs, err := layout.Random(24, 24, layout.WithSeed(3))
	if err != nil {
		b.Fatal(err)
	}
	return maze.MustNew(segs)
}

// BenchmarkLocate measures localisation of a mid-corridor point.
func BenchmarkLocate(b *testing.B) {
	m := benchMaze(b)
	e := m.Edges()[len(m.Edges())/2]
	from, to := m.Coordinates(e.From), m.Coordinates(e.To)
	p := orb.Point{(from.X() + to.X()) / 2, (from.Y() + to.Y()) / 2}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pursuit.Locate(m, p)
	}
}

// BenchmarkPlan_Corners plans across a 24×24 random maze, corner to corner.
func BenchmarkPlan_Corners(b *testing.B) {
	m := benchMaze(b)
	bound := m.Bound()
	target, chaser := bound.Max, bound.Min
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pursuit.Plan(m, target, chaser)
	}
}
