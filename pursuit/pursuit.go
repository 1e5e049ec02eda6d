// SPDX-License-Identifier: MIT

package pursuit

import (
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/geom"
	"github.com/katalvlaran/mazechase/maze"
)

// Plan computes the route a chaser at chaser should walk to reach a target at
// target.
//
// Returns:
//
//   - Result.Route: upcoming intersections, nearest first. Empty when chaser
//     and target share a corridor, or when the chaser already stands on the
//     single shared intersection.
//   - Result.Cost: walking distance along Route plus the straight-line hops
//     from the chaser onto it and from its end to the target.
//   - err: ErrNilMaze, ErrOffPath (wrapped with "target" or "chaser"),
//     ErrNoRoute or ErrInvalidCost.
func Plan(m *maze.Maze, target, chaser orb.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return Result{}, ErrNilMaze
	}

	tl, err := Locate(m, target)
	if err != nil {
		return Result{}, fmt.Errorf("target: %w", err)
	}
	cl, err := Locate(m, chaser)
	if err != nil {
		return Result{}, fmt.Errorf("chaser: %w", err)
	}
	cfg.Logger.Debug("positions located",
		"target", target, "target_location", tl.String(),
		"chaser", chaser, "chaser_location", cl.String(),
	)

	res := Result{Target: tl, Chaser: cl, Route: Route{}}

	// 1) Same corridor: nothing to route around.
	if cl.SameCorridor(tl) {
		res.Outcome = SameEdge
		res.Cost = geom.Distance(chaser, target)
		return res, nil
	}

	// 2) Corridors meeting at one intersection: commit to it.
	if n, ok := cl.Shared(tl); ok {
		node := m.Coordinates(n)
		res.Outcome = SharedNode
		res.Cost = geom.Distance(chaser, node) + geom.Distance(node, target)
		if !cl.AtIntersection() {
			res.Route = Route{n}
		}
		cfg.Logger.Debug("route planned", "outcome", res.Outcome.String(), "route", waypoints(m, res.Route))
		return res, nil
	}

	// 3) Full search.
	r := newRunner(m, tl, target)
	r.init(cl, chaser)
	r.process()
	best, err := r.best()
	if err != nil {
		return Result{}, err
	}

	// 4) A chaser on an intersection only wants what lies beyond it.
	route := best.route
	if cl.AtIntersection() {
		route = route[1:]
	}

	res.Outcome = Searched
	res.Route = route
	res.Cost = best.cost
	cfg.Logger.Debug("route planned",
		"outcome", res.Outcome.String(),
		"cost", res.Cost,
		"completed", len(r.completed),
		"route", waypoints(m, res.Route),
	)

	return res, nil
}

// ShortestRoute is Plan returning only the route.
func ShortestRoute(m *maze.Maze, target, chaser orb.Point, opts ...Option) (Route, error) {
	res, err := Plan(m, target, chaser, opts...)
	if err != nil {
		return nil, err
	}
	return res.Route, nil
}

// candidate is a route under construction, or a completed one.
type candidate struct {
	cost  float64 // accumulated distance; completed routes include the final hop
	route Route
}

// runner holds the mutable state of one search.
type runner struct {
	m         *maze.Maze
	goal      Location    // target's corridor; reaching either end completes a route
	target    orb.Point   // target's exact position
	recorded  map[int]float64
	frontier  []candidate
	completed []candidate
}

func newRunner(m *maze.Maze, goal Location, target orb.Point) *runner {
	return &runner{
		m:        m,
		goal:     goal,
		target:   target,
		recorded: make(map[int]float64, m.Len()),
	}
}

// init seeds the frontier with the chaser's corridor ends.
func (r *runner) init(chaser Location, at orb.Point) {
	if chaser.AtIntersection() {
		r.frontier = []candidate{{cost: 0, route: Route{chaser.A}}}
		return
	}
	r.frontier = []candidate{
		{cost: geom.Distance(r.m.Coordinates(chaser.A), at), route: Route{chaser.A}},
		{cost: geom.Distance(r.m.Coordinates(chaser.B), at), route: Route{chaser.B}},
	}
}

// process expands the frontier round by round until it is empty.
func (r *runner) process() {
	for len(r.frontier) > 0 {
		var next []candidate
		for _, c := range r.frontier {
			current := c.route[len(c.route)-1]

			// Another route already expanded this intersection at no greater cost.
			if d, ok := r.recorded[current]; ok && c.cost >= d {
				continue
			}
			r.recorded[current] = c.cost

			next = r.relax(c, current, next)
		}
		r.frontier = next
	}
}

// relax extends c along every path leaving current. Extensions reaching the
// goal are completed; the rest are appended to next.
func (r *runner) relax(c candidate, current int, next []candidate) []candidate {
	for _, p := range r.m.Intersection(current).Paths() {
		cost := c.cost + p.Length
		if d, ok := r.recorded[p.EndIndex]; ok && d <= cost {
			continue
		}

		route := make(Route, len(c.route), len(c.route)+1)
		copy(route, c.route)
		route = append(route, p.EndIndex)

		if r.goal.Has(p.EndIndex) {
			hop := geom.Distance(r.m.Coordinates(p.EndIndex), r.target)
			r.completed = append(r.completed, candidate{cost: cost + hop, route: route})
			continue
		}
		next = append(next, candidate{cost: cost, route: route})
	}

	return next
}

// best picks the cheapest completed route; ties go to the lexicographically
// smaller index sequence.
func (r *runner) best() (candidate, error) {
	if len(r.completed) == 0 {
		return candidate{}, ErrNoRoute
	}

	win := r.completed[0]
	for _, c := range r.completed {
		if math.IsNaN(c.cost) {
			return candidate{}, fmt.Errorf("%w: route %v", ErrInvalidCost, c.route)
		}
		if c.cost < win.cost || (c.cost == win.cost && slices.Compare(c.route, win.route) < 0) {
			win = c
		}
	}

	return win, nil
}

// waypoints maps a route to coordinates for logging.
func waypoints(m *maze.Maze, route Route) []orb.Point {
	out := make([]orb.Point, len(route))
	for i, idx := range route {
		out[i] = m.Coordinates(idx)
	}
	return out
}
