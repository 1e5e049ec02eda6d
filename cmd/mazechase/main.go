// SPDX-License-Identifier: MIT

// Command mazechase runs a headless ghost chase: ghosts replan a route to a
// patrolling player every tick until one of them catches it.
//
// Configuration comes from the environment (see internal/config); -level
// overrides MAZECHASE_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/mazechase/chase"
	"github.com/katalvlaran/mazechase/internal/config"
	"github.com/katalvlaran/mazechase/internal/logging"
	"github.com/katalvlaran/mazechase/internal/metrics"
	"github.com/katalvlaran/mazechase/layout"
	"github.com/katalvlaran/mazechase/level"
	"github.com/katalvlaran/mazechase/maze"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	levelPath := flag.String("level", cfg.Sim.LevelPath, "level file to run (default: built-in window level)")
	flag.Parse()
	cfg.Sim.LevelPath = *levelPath

	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// round is everything rebuilt when a level is (re)loaded.
type round struct {
	maze   *maze.Maze
	pack   *chase.Pack
	player *chase.Patrol
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	var (
		mt       *metrics.Metrics
		packOpts = []chase.Option{chase.WithLogger(logger)}
	)
	if cfg.Metrics.Addr != "" {
		mt = metrics.New()
		packOpts = append(packOpts, chase.WithObserver(mt))
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mt.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics shutdown failed", "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	r, err := load(cfg.Sim.LevelPath, logger, packOpts)
	if err != nil {
		return err
	}

	var reload <-chan string
	if cfg.Sim.Watch && cfg.Sim.LevelPath != "" {
		w, err := level.NewWatcher(filepath.Dir(cfg.Sim.LevelPath))
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Sim.LevelPath, err)
		}
		defer w.Close()
		reload = w.Events
		logger.Info("watching level", "path", cfg.Sim.LevelPath)
	}

	dt := cfg.Sim.TickSeconds
	for tick := 0; tick < cfg.Sim.Ticks; tick++ {
		select {
		case <-ctx.Done():
			logger.Info("simulation interrupted", "tick", tick)
			return nil
		case path := <-reload:
			if filepath.Clean(path) == filepath.Clean(cfg.Sim.LevelPath) {
				next, err := load(cfg.Sim.LevelPath, logger, packOpts)
				if mt != nil {
					mt.ObserveReload(err)
				}
				if err != nil {
					logger.Warn("level reload failed, keeping the current level", "error", err)
				} else {
					r = next
					logger.Info("level reloaded", "tick", tick)
				}
			}
		default:
		}

		r.player.Step(dt)
		if _, err := r.pack.Tick(ctx, r.maze, r.player.Actor); err != nil {
			if ctx.Err() != nil {
				logger.Info("simulation interrupted", "tick", tick)
				return nil
			}
			return fmt.Errorf("tick %d: %w", tick, err)
		}
		r.pack.Advance(dt)

		if c, ok := r.pack.Caught(r.player.Actor, cfg.Sim.CatchRadius); ok {
			if mt != nil {
				mt.ObserveCatch()
			}
			logger.Info("player caught",
				"ghost", c.Name,
				"tick", tick,
				"elapsed_seconds", float64(tick+1)*dt,
				"at", c.Planar(),
			)
			return nil
		}
	}

	logger.Info("player escaped", "ticks", cfg.Sim.Ticks)
	return nil
}

func load(path string, logger *slog.Logger, packOpts []chase.Option) (*round, error) {
	lvl := builtin()
	if path != "" {
		var err error
		if lvl, err = level.Load(path); err != nil {
			return nil, err
		}
	}

	m, err := lvl.Build(maze.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	pack, err := chase.NewPack(lvl.Chasers(), packOpts...)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	logger.Info("level loaded",
		"name", lvl.Name,
		"intersections", m.Len(),
		"paths", len(m.Edges()),
		"ghosts", len(lvl.Ghosts),
	)
	return &round{maze: m, pack: pack, player: lvl.Patrol()}, nil
}

// builtin is the window maze with a ghost in every corner and the player
// circling the centre.
func builtin() *level.Level {
	lvl := level.FromSegments("window", layout.Window(2))
	lvl.Player.At = level.Point{0, 0}
	lvl.Player.Patrol = []level.Point{{2, 0}, {2, 2}, {0, 2}, {0, 0}, {-2, 0}, {-2, -2}, {0, -2}, {0, 0}}
	for i, corner := range []orb.Point{{2, 2}, {-2, 2}, {2, -2}, {-2, -2}} {
		lvl.Ghosts = append(lvl.Ghosts, level.GhostSpec{
			Name:  []string{"blinky", "pinky", "inky", "clyde"}[i],
			At:    level.Point(corner),
			Speed: chase.DefaultGhostSpeed,
		})
	}
	return lvl
}
