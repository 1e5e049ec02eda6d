// SPDX-License-Identifier: MIT

package chase_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazechase/chase"
)

func TestPatrol_Step(t *testing.T) {
	loop := []orb.Point{{1, 0}, {1, 1}, {0, 1}, {0, 0}}
	p := chase.NewPatrol(orb.Point{0, 0}, 1, loop)

	next, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, orb.Point{1, 0}, next)

	p.Step(0.5)
	assert.Equal(t, orb.Point{0.5, 0}, p.Planar())
	assertVec(t, mgl64.Vec3{1, 0, 0}, p.Velocity)

	p.Step(1)
	assert.Equal(t, orb.Point{1, 0.5}, p.Planar())
	assertVec(t, mgl64.Vec3{0, 0, 1}, p.Velocity)

	// Three legs in one step, ending on the start.
	p.Step(2.5)
	assert.Equal(t, orb.Point{0, 0}, p.Planar())
	assertVec(t, mgl64.Vec3{0, 0, -1}, p.Velocity)
	next, _ = p.Next()
	assert.Equal(t, orb.Point{1, 0}, next)
}

func TestPatrol_Degenerate(t *testing.T) {
	p := chase.NewPatrol(orb.Point{2, 2}, 1, nil)
	p.Step(1)
	assert.Equal(t, orb.Point{2, 2}, p.Planar())
	_, ok := p.Next()
	assert.False(t, ok)

	// Every waypoint on the start: Step must return.
	p = chase.NewPatrol(orb.Point{2, 2}, 1, []orb.Point{{2, 2}, {2, 2}})
	p.Step(1)
	assert.Equal(t, orb.Point{2, 2}, p.Planar())
}
