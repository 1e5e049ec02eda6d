// SPDX-License-Identifier: MIT
// Package: mazechase/layout
//
// options.go: functional options for the generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Randomness is explicit: WithSeed or WithRand. The default seed is fixed.

package layout

import (
	"errors"
	"math/rand"
)

// ErrTooSmall indicates a dimension below a generator's minimum.
var ErrTooSmall = errors.New("layout: dimensions too small")

const (
	defaultSpacing = 1.0
	defaultSeed    = 1
)

type config struct {
	spacing float64
	rng     *rand.Rand
}

func newConfig(opts []Option) config {
	c := config{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

// Option customizes a generator.
type Option func(*config)

// WithSpacing sets the distance between neighbouring cells. Panics if s <= 0.
func WithSpacing(s float64) Option {
	if !(s > 0) {
		panic("layout: WithSpacing must be positive")
	}
	return func(c *config) {
		c.spacing = s
	}
}

// WithSeed seeds a fresh RNG for Random.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
