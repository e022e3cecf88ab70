// Package generator builds dungeon layouts: it partitions the bounds into
// rooms, connects neighbouring rooms with doors, prunes small rooms without
// disconnecting the layout, optionally reduces the door graph to a spanning
// tree and finally flood fills the rooms into a tile grid.
//
// A Generator runs as a sequence of phases, each broken into small units of
// work, so a caller can either animate the run one Step at a time or finish
// it in one go.
package generator

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"dungeongen/pkg/engine/rng"
)

// phase is one stage of a generation run. step performs one unit of work and
// reports whether the phase is complete.
type phase interface {
	name() string
	step() bool
}

// run is the context shared by the phases of one Generator
type run struct {
	state *State
	cfg   Config
	rng   *rng.Source
	log   *slog.Logger
	hooks hooks
}

type hooks struct {
	onGenerated   func(*State)
	onFloorFilled func(*State)
	onFloorPlaced func(FloorEvent)
}

// signal is a zero-cost phase that fires a hook once
type signal struct {
	label string
	fire  func()
}

func (s signal) name() string {
	return s.label
}

func (s signal) step() bool {
	if s.fire != nil {
		s.fire()
	}
	return true
}

// Pacer waits between units of work in stepped mode. It returns ctx.Err()
// when the context ends first.
type Pacer func(ctx context.Context) error

// Interval returns a Pacer that waits d between units
func Interval(d time.Duration) Pacer {
	return func(ctx context.Context) error {
		if d <= 0 {
			return ctx.Err()
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger phases report progress to
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPacer sets the wait Run performs between units in stepped mode
func WithPacer(p Pacer) Option {
	return func(g *Generator) {
		g.pacer = p
	}
}

// WithOnGenerated registers a callback fired once the rooms, doors and graph
// are final
func WithOnGenerated(fn func(*State)) Option {
	return func(g *Generator) {
		g.hooks.onGenerated = fn
	}
}

// WithOnFloorFilled registers a callback fired once flood fill completes
func WithOnFloorFilled(fn func(*State)) Option {
	return func(g *Generator) {
		g.hooks.onFloorFilled = fn
	}
}

// WithOnFloorPlaced registers a callback fired for every floor tile
func WithOnFloorPlaced(fn func(FloorEvent)) Option {
	return func(g *Generator) {
		g.hooks.onFloorPlaced = fn
	}
}

// Generator drives one generation run
type Generator struct {
	cfg    Config
	state  *State
	log    *slog.Logger
	hooks  hooks
	pacer  Pacer
	phases []phase
	next   int
	steps  int
	skip   atomic.Bool
}

// New prepares a generation run for cfg. The configuration is normalized and
// the seed resolved here, so State().Seed() and State().Config() are
// available before the first Step.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(g)
	}

	cfg = cfg.Normalize()
	src := rng.FromEntropy()
	if cfg.UseSeed {
		src = rng.FromString(cfg.Seed)
	}
	if cfg.RandomizeDimensions {
		cfg = cfg.randomized(src).Normalize()
	}
	g.cfg = cfg
	g.state = newState(cfg, src.Seed())

	r := &run{state: g.state, cfg: cfg, rng: src, log: g.log, hooks: g.hooks}
	g.phases = []phase{
		newPartitioner(r),
		newDoorSynthesizer(r),
		newPruner(r),
	}
	if cfg.GraphTree {
		g.phases = append(g.phases, &treeReducer{run: r})
	}
	g.phases = append(g.phases,
		signal{label: "generated", fire: g.fire(g.hooks.onGenerated)},
		&rasterizer{run: r},
		newFloodFiller(r),
		signal{label: "floor filled", fire: g.fire(g.hooks.onFloorFilled)},
	)

	g.log.Info("generation prepared",
		"size", cfg.Size,
		"min_width", cfg.MinWidth,
		"min_height", cfg.MinHeight,
		"intersect_length", cfg.IntersectLength,
		"seed", g.state.seed,
		"mode", cfg.Mode.String(),
	)
	return g
}

func (g *Generator) fire(fn func(*State)) func() {
	if fn == nil {
		return nil
	}
	return func() { fn(g.state) }
}

// State returns the state being generated. It is complete once Done reports
// true and must not be read concurrently with Step.
func (g *Generator) State() *State {
	return g.state
}

// Config returns the resolved configuration of the run
func (g *Generator) Config() Config {
	return g.cfg
}

// Done reports whether every phase has completed
func (g *Generator) Done() bool {
	return g.next >= len(g.phases)
}

// Phase returns the name of the phase the next unit of work belongs to, or
// "done"
func (g *Generator) Phase() string {
	if g.Done() {
		return "done"
	}
	return g.phases[g.next].name()
}

// Steps returns the number of units of work performed so far
func (g *Generator) Steps() int {
	return g.steps
}

// Skip switches the rest of the run to immediate execution. It is safe to call
// from another goroutine; the next Step finishes the run.
func (g *Generator) Skip() {
	g.skip.Store(true)
}

func (g *Generator) immediate() bool {
	return g.cfg.Mode == ModeImmediate || g.skip.Load()
}

// Step performs one unit of work, or all remaining work in immediate mode or
// after Skip. It reports whether work remains.
func (g *Generator) Step() bool {
	if g.immediate() {
		for g.advance() {
		}
		return false
	}
	return g.advance()
}

func (g *Generator) advance() bool {
	if g.Done() {
		return false
	}
	p := g.phases[g.next]
	g.steps++
	if p.step() {
		g.log.Debug("phase complete", "phase", p.name(), "steps", g.steps)
		g.next++
	}
	return !g.Done()
}

// Run drives the generator to completion. In stepped mode it waits on the
// pacer between units and returns ctx.Err() if the context ends first;
// the state is then left partially generated.
func (g *Generator) Run(ctx context.Context) error {
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !g.Step() {
			break
		}
		if g.pacer != nil && !g.immediate() {
			if err := g.pacer(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate runs a complete generation in immediate mode and returns its state
func Generate(cfg Config, opts ...Option) *State {
	cfg.Mode = ModeImmediate
	g := New(cfg, opts...)
	g.Step()
	return g.State()
}
