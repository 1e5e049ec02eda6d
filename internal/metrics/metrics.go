// SPDX-License-Identifier: MIT

// Package metrics exposes planner and simulation counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mazechase/pursuit"
)

// Metrics holds the collectors of one process. It implements chase.Observer.
type Metrics struct {
	registry *prometheus.Registry

	plans       *prometheus.CounterVec
	planErrors  *prometheus.CounterVec
	planLatency prometheus.Histogram
	routeLength prometheus.Histogram
	routeCost   prometheus.Histogram
	catches     prometheus.Counter
	reloads     *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		plans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mazechase_plans_total",
			Help: "Total successful plans by planner outcome",
		}, []string{"outcome"}),
		planErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mazechase_plan_errors_total",
			Help: "Total failed plans by reason",
		}, []string{"reason"}),
		planLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazechase_plan_duration_seconds",
			Help:    "Plan duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
		}),
		routeLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazechase_route_waypoints",
			Help:    "Number of waypoints per planned route",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
		}),
		routeCost: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazechase_route_cost",
			Help:    "Walking distance of planned routes in maze units",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		catches: factory.NewCounter(prometheus.CounterOpts{
			Name: "mazechase_catches_total",
			Help: "Total rounds ended by a ghost catching the player",
		}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mazechase_level_reloads_total",
			Help: "Total level reloads by result",
		}, []string{"result"}),
	}
}

// ObservePlan records one chaser plan.
func (m *Metrics) ObservePlan(_ string, res pursuit.Result, elapsed time.Duration, err error) {
	m.planLatency.Observe(elapsed.Seconds())
	if err != nil {
		m.planErrors.WithLabelValues(Reason(err)).Inc()
		return
	}
	m.plans.WithLabelValues(res.Outcome.String()).Inc()
	m.routeLength.Observe(float64(len(res.Route)))
	m.routeCost.Observe(res.Cost)
}

// ObserveCatch records the end of a round.
func (m *Metrics) ObserveCatch() { m.catches.Inc() }

// ObserveReload records a level reload attempt.
func (m *Metrics) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Reason maps a plan error to a low-cardinality label.
func Reason(err error) string {
	switch {
	case errors.Is(err, pursuit.ErrOffPath):
		return "off_path"
	case errors.Is(err, pursuit.ErrNoRoute):
		return "no_route"
	case errors.Is(err, pursuit.ErrInvalidCost):
		return "invalid_cost"
	case errors.Is(err, pursuit.ErrNilMaze):
		return "nil_maze"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
