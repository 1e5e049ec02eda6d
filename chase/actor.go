// SPDX-License-Identifier: MIT

package chase

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/geom"
	"github.com/katalvlaran/mazechase/maze"
	"github.com/katalvlaran/mazechase/pursuit"
)

// Actor is a moving body. Maze point (x, y) is world position (x, 0, y).
type Actor struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// At places a resting Actor on maze point p.
func At(p orb.Point) Actor {
	return Actor{Position: mgl64.Vec3{p.X(), 0, p.Y()}}
}

// Planar projects the position onto the maze plane.
func (a Actor) Planar() orb.Point {
	return orb.Point{a.Position.X(), a.Position.Z()}
}

// Advance moves the actor by Velocity*dt.
func (a *Actor) Advance(dt float64) {
	a.Position = a.Position.Add(a.Velocity.Mul(dt))
}

// Chaser is an Actor that steers toward a target through a maze.
type Chaser struct {
	Name  string
	Speed float64
	Actor

	goal     orb.Point // point the current velocity aims at
	steering bool
}

// NewChaser places a resting chaser on maze point p.
func NewChaser(name string, speed float64, p orb.Point) *Chaser {
	return &Chaser{Name: name, Speed: speed, Actor: At(p)}
}

// Steer plans a route to target and points Velocity at its first waypoint,
// or at the target itself when the route is empty. The y component of
// Velocity is always 0.
//
// On error the chaser stops and the error is wrapped with its name.
func (c *Chaser) Steer(m *maze.Maze, target Actor, opts ...pursuit.Option) (pursuit.Result, error) {
	here, there := c.Planar(), target.Planar()

	res, err := pursuit.Plan(m, there, here, opts...)
	if err != nil {
		c.stop()
		return res, fmt.Errorf("chase: %s: %w", c.Name, err)
	}

	h := pursuit.Heading(m, res.Route, here, there)
	c.Velocity = mgl64.Vec3{h.X() * c.Speed, 0, h.Y() * c.Speed}
	c.goal = there
	if len(res.Route) > 0 {
		c.goal = m.Coordinates(res.Route[0])
	}
	c.steering = true

	return res, nil
}

// Advance moves the chaser by Velocity*dt without carrying it past the point
// it is steering to.
func (c *Chaser) Advance(dt float64) {
	step := c.Velocity.Mul(dt)
	if c.steering && step.Len() >= geom.Distance(c.Planar(), c.goal) {
		c.Position = mgl64.Vec3{c.goal.X(), c.Position.Y(), c.goal.Y()}
		return
	}
	c.Position = c.Position.Add(step)
}

func (c *Chaser) stop() {
	c.Velocity = mgl64.Vec3{}
	c.steering = false
}
