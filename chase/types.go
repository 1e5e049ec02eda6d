// SPDX-License-Identifier: MIT

package chase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazechase/pursuit"
)

// ErrNoChasers indicates an empty pack.
var ErrNoChasers = errors.New("chase: pack has no chasers")

const (
	// DefaultGhostSpeed is the speed of a chaser, in maze units per second.
	DefaultGhostSpeed = 2.5

	// DefaultPlayerSpeed is the speed of the chased player.
	DefaultPlayerSpeed = 3.0
)

// Observer receives one call per planned chaser per Tick. Implementations
// must be safe for concurrent use.
type Observer interface {
	ObservePlan(chaser string, res pursuit.Result, elapsed time.Duration, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(chaser string, res pursuit.Result, elapsed time.Duration, err error)

// ObservePlan calls f.
func (f ObserverFunc) ObservePlan(chaser string, res pursuit.Result, elapsed time.Duration, err error) {
	f(chaser, res, elapsed, err)
}

type nopObserver struct{}

func (nopObserver) ObservePlan(string, pursuit.Result, time.Duration, error) {}

// Options configures a Pack.
//
//	Observer – notified after every plan (default: no-op).
//	Logger   – debug records per plan; also handed to pursuit.Plan.
//	Limit    – maximum chasers planned at once; 0 means one goroutine each.
type Options struct {
	Observer Observer
	Logger   *slog.Logger
	Limit    int
}

// Option is a functional option for NewPack.
type Option func(*Options)

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("chase: WithObserver(nil)")
	}
	return func(opts *Options) {
		opts.Observer = o
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chase: WithLogger(nil)")
	}
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithLimit caps concurrent planning at n goroutines. Panics if n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic("chase: WithLimit requires n >= 1")
	}
	return func(opts *Options) {
		opts.Limit = n
	}
}

// DefaultOptions returns a no-op observer, a discarding logger and no limit.
func DefaultOptions() Options {
	return Options{
		Observer: nopObserver{},
		Logger:   slog.New(slog.DiscardHandler),
	}
}
