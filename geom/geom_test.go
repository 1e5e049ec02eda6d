// SPDX-License-Identifier: MIT

package geom_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazechase/geom"
)

func TestSegment_Orientation(t *testing.T) {
	cases := []struct {
		name string
		seg  geom.Segment
		want geom.Orientation
	}{
		{"horizontal", geom.Seg(1, 0, -1, 0), geom.Horizontal},
		{"vertical", geom.Seg(0, 1, 0, -1), geom.Vertical},
		{"diagonal", geom.Seg(0, 0, 1, 1), geom.Diagonal},
		{"degenerate", geom.Seg(2, 2, 2, 2), geom.Degenerate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.seg.Orientation())
			assert.Equal(t, tc.want == geom.Horizontal || tc.want == geom.Vertical, tc.seg.AxisAligned())
			assert.Equal(t, tc.name, tc.want.String())
		})
	}
}

func TestSegment_NormalizeIsOrderIndependent(t *testing.T) {
	s := geom.Seg(1, 0, -1, 0)
	n := s.Normalize()
	require.Equal(t, orb.Point{-1, 0}, n.From)
	require.Equal(t, orb.Point{1, 0}, n.To)
	assert.Equal(t, n, s.Reverse().Normalize())

	v := geom.Seg(0, 3, 0, -2).Normalize()
	assert.Equal(t, orb.Point{0, -2}, v.From)
	assert.True(t, geom.Equal(geom.Seg(0, 3, 0, -2), geom.Seg(0, -2, 0, 3)))
	assert.False(t, geom.Equal(geom.Seg(0, 3, 0, -2), geom.Seg(0, 3, 0, -1)))
}

func TestSegment_Contains(t *testing.T) {
	h := geom.Seg(2, 1, -2, 1)
	assert.True(t, h.Contains(orb.Point{0, 1}))
	assert.True(t, h.Contains(orb.Point{-2, 1}), "endpoints are inclusive")
	assert.False(t, h.Contains(orb.Point{3, 1}))
	assert.False(t, h.Contains(orb.Point{0, 1.0001}))

	v := geom.Seg(4, 0, 4, 5)
	assert.True(t, v.Contains(orb.Point{4, 5}))
	assert.False(t, v.Contains(orb.Point{4, -0.5}))

	assert.False(t, geom.Seg(0, 0, 1, 1).Contains(orb.Point{0.5, 0.5}))
}

func TestCrossingAndDistance(t *testing.T) {
	h := geom.Seg(-1, 3, 1, 3)
	v := geom.Seg(7, -1, 7, 1)
	// The lines cross outside both segments; Crossing does not care.
	assert.Equal(t, orb.Point{7, 3}, geom.Crossing(h, v))

	assert.InDelta(t, 5.0, geom.Distance(orb.Point{0, 0}, orb.Point{3, 4}), 1e-12)
	assert.InDelta(t, 4.0, geom.Seg(0, 3, 0, -1).Length(), 1e-12)
	assert.Equal(t, orb.Bound{Min: orb.Point{-1, 3}, Max: orb.Point{1, 3}}, h.Bound())
}

func TestBefore(t *testing.T) {
	assert.True(t, geom.Before(orb.Point{-1, 5}, orb.Point{0, 0}))
	assert.True(t, geom.Before(orb.Point{0, -1}, orb.Point{0, 0}))
	assert.False(t, geom.Before(orb.Point{0, 0}, orb.Point{0, 0}))
}
