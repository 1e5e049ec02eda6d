// SPDX-License-Identifier: MIT

package chase

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/geom"
)

// Patrol moves an Actor at constant speed through a closed loop of
// waypoints, straight from one to the next. Waypoints are expected to be
// joined by corridors; Patrol does not check.
type Patrol struct {
	Actor
	Speed     float64
	Waypoints []orb.Point

	next int
}

// NewPatrol starts at start and heads for waypoints[0].
func NewPatrol(start orb.Point, speed float64, waypoints []orb.Point) *Patrol {
	return &Patrol{Actor: At(start), Speed: speed, Waypoints: waypoints}
}

// Next is the waypoint currently headed for.
func (p *Patrol) Next() (orb.Point, bool) {
	if len(p.Waypoints) == 0 {
		return orb.Point{}, false
	}
	return p.Waypoints[p.next], true
}

// Step walks Speed*dt along the loop, turning at waypoints as often as the
// distance allows. Velocity is left pointing along the last leg walked.
func (p *Patrol) Step(dt float64) {
	if len(p.Waypoints) == 0 || p.Speed <= 0 || dt <= 0 {
		p.Velocity = mgl64.Vec3{}
		return
	}

	budget := p.Speed * dt
	// turns counts consecutive zero-length legs; a loop of coincident
	// waypoints stops after one lap.
	for turns := 0; budget > 0 && turns <= len(p.Waypoints); {
		here, goal := p.Planar(), p.Waypoints[p.next]
		d := geom.Distance(here, goal)
		if d > 0 {
			p.Velocity = mgl64.Vec3{(goal.X() - here.X()) / d * p.Speed, 0, (goal.Y() - here.Y()) / d * p.Speed}
		}
		if d > budget {
			p.Position = p.Position.Add(p.Velocity.Mul(budget / p.Speed))
			return
		}

		p.Position = mgl64.Vec3{goal.X(), p.Position.Y(), goal.Y()}
		budget -= d
		p.next = (p.next + 1) % len(p.Waypoints)
		if d == 0 {
			turns++
		} else {
			turns = 0
		}
	}
}
