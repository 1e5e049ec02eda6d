// SPDX-License-Identifier: MIT

package chase

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazechase/geom"
	"github.com/katalvlaran/mazechase/maze"
	"github.com/katalvlaran/mazechase/pursuit"
)

// Pack is a group of chasers sharing one target.
type Pack struct {
	chasers []*Chaser
	opts    Options
}

// NewPack groups chasers. The pack steers the given pointers in place.
func NewPack(chasers []*Chaser, opts ...Option) (*Pack, error) {
	if len(chasers) == 0 {
		return nil, ErrNoChasers
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pack{chasers: chasers, opts: cfg}, nil
}

// Chasers returns the pack's chasers in the order they were given.
func (p *Pack) Chasers() []*Chaser { return p.chasers }

// Tick steers every chaser toward target. Results are indexed like Chasers.
//
// Chasers are planned concurrently. The first error cancels planning of the
// chasers not yet started, which keep their previous velocity, and is
// returned. Tick also stops early when ctx is done.
func (p *Pack) Tick(ctx context.Context, m *maze.Maze, target Actor) ([]pursuit.Result, error) {
	results := make([]pursuit.Result, len(p.chasers))
	planOpts := []pursuit.Option{pursuit.WithLogger(p.opts.Logger)}

	g, ctx := errgroup.WithContext(ctx)
	if p.opts.Limit > 0 {
		g.SetLimit(p.opts.Limit)
	}
	for i, c := range p.chasers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			res, err := c.Steer(m, target, planOpts...)
			elapsed := time.Since(start)
			p.opts.Observer.ObservePlan(c.Name, res, elapsed, err)
			if err != nil {
				return err
			}

			p.opts.Logger.Debug("chaser steered",
				"chaser", c.Name,
				"outcome", res.Outcome.String(),
				"route_len", len(res.Route),
				"cost", res.Cost,
				"elapsed", elapsed,
			)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Advance moves every chaser by dt seconds.
func (p *Pack) Advance(dt float64) {
	for _, c := range p.chasers {
		c.Advance(dt)
	}
}

// Nearest returns the chaser closest to target on the maze plane and its
// distance. Ties go to the earlier chaser.
func (p *Pack) Nearest(target Actor) (*Chaser, float64) {
	var (
		best *Chaser
		dist = math.Inf(1)
	)
	at := target.Planar()
	for _, c := range p.chasers {
		if d := geom.Distance(c.Planar(), at); d < dist {
			best, dist = c, d
		}
	}
	return best, dist
}

// Caught reports the nearest chaser if it is within radius of target.
func (p *Pack) Caught(target Actor, radius float64) (*Chaser, bool) {
	c, d := p.Nearest(target)
	if d > radius {
		return nil, false
	}
	return c, true
}
