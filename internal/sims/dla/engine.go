package dla

import (
	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

// GrowthEvent records one successful deposition.
type GrowthEvent struct {
	Coord lattice.Point
	// WalkerIndex is the zero-based release index of the walker that stuck.
	WalkerIndex int
	// Steps is the number of random-walk steps the walker took before
	// adhering.
	Steps int
}

// Stats counts walker outcomes for the current run.
type Stats struct {
	Released         int
	Deposited        int
	DiscardedOOB     int
	DiscardedBudget  int
	DiscardedRelease int
	TotalSteps       int
}

// Discarded returns the total number of abandoned walkers.
func (s Stats) Discarded() int {
	return s.DiscardedOOB + s.DiscardedBudget + s.DiscardedRelease
}

// Engine runs the aggregation: it owns the lattice and the seeded RNG,
// releases walkers one at a time, and applies the stick rule after every
// move. Exactly one walker is ever active; each is processed to a terminal
// state before the next release, so every walker sees the latest occupancy.
type Engine struct {
	cfg  Config
	mode GrowthMode

	lat *lattice.Lattice
	rng *core.RNG

	terminated int
	stats      Stats
	events     []GrowthEvent
	onGrowth   func(GrowthEvent)

	display []uint8
	trail   []lattice.Point
}

// New validates the configuration and returns a ready engine. The lattice is
// seeded per the growth mode; call Step (or Run) to release walkers.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lat, err := lattice.New(cfg.Size)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		mode:    growthModeFor(cfg.Mode),
		lat:     lat,
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, cfg.Size*cfg.Size),
	}
	e.Reset(cfg.Seed)
	return e, nil
}

// MustNew is New for callers with pre-sanitized configs (registry factories).
func MustNew(cfg Config) *Engine {
	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "dla-" + e.mode.Name() }

// Size reports the lattice dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Size, H: e.cfg.Size} }

// Lattice exposes the occupancy grid for renderers and analysis.
func (e *Engine) Lattice() *lattice.Lattice { return e.lat }

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Stats returns the walker outcome counters for the current run.
func (e *Engine) Stats() Stats { return e.stats }

// Events returns the recorded growth-event sequence. Empty unless the config
// sets RecordEvents.
func (e *Engine) Events() []GrowthEvent { return e.events }

// SetOnGrowth installs a callback invoked on every deposition, independent of
// RecordEvents.
func (e *Engine) SetOnGrowth(fn func(GrowthEvent)) { e.onGrowth = fn }

// Reset rebuilds the lattice and seeds per the growth mode, reseeds the RNG,
// and clears all counters. A zero seed falls back to the configured seed.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.rng.Reseed(seed)
	e.lat.Clear()
	e.mode.Seed(e.lat)
	e.terminated = 0
	e.stats = Stats{}
	e.events = nil
	e.trail = nil
	e.resetDisplay()
}

// Done reports whether the run is complete: N walkers terminated, or with
// RetryDiscarded set, N walkers deposited.
func (e *Engine) Done() bool {
	if e.cfg.RetryDiscarded {
		return e.stats.Deposited >= e.cfg.Walkers
	}
	return e.terminated >= e.cfg.Walkers
}

// Step releases one walker and processes it to a terminal state. It is a
// no-op once the run is done.
func (e *Engine) Step() {
	if e.Done() {
		return
	}
	e.runWalker(e.stats.Released)
}

// Run processes walkers until the run is done.
func (e *Engine) Run() {
	for !e.Done() {
		e.Step()
	}
}

// walkerOutcome is the terminal state of a single release.
type walkerOutcome int

const (
	outcomeStuck walkerOutcome = iota
	outcomeOutOfBounds
	outcomeBudgetExhausted
	outcomeBlockedRelease
)

func (e *Engine) runWalker(index int) {
	e.stats.Released++

	release := e.mode.ReleasePoint(e.lat, e.rng)
	if e.lat.IsOccupied(release) {
		// The aggregate has reached the release edge here; nothing to walk.
		e.finish(nil, index, outcomeBlockedRelease)
		return
	}

	w := newWalker(release, e.cfg.RecordTrail)
	for {
		if e.cfg.MaxSteps > 0 && w.steps >= e.cfg.MaxSteps {
			e.finish(w, index, outcomeBudgetExhausted)
			return
		}
		next := w.propose(e.rng, e.cfg.Connectivity)
		w.steps++
		if !e.lat.InBounds(next) {
			e.finish(w, index, outcomeOutOfBounds)
			return
		}
		if e.lat.IsOccupied(next) {
			// Walkers never overlap the aggregate: the move is blocked
			// and the walker holds its position for this step.
			continue
		}
		w.moveTo(next)
		if shouldStick(e.lat, w.pos, e.cfg.Connectivity, e.cfg.StickyFactor, e.rng) {
			e.finish(w, index, outcomeStuck)
			return
		}
	}
}

func (e *Engine) finish(w *walker, index int, outcome walkerOutcome) {
	if w != nil {
		e.stats.TotalSteps += w.steps
		if e.cfg.RecordTrail {
			e.trail = w.trail
		}
	}

	switch outcome {
	case outcomeStuck:
		e.lat.Occupy(w.pos)
		e.markDeposit(w.pos)
		ev := GrowthEvent{Coord: w.pos, WalkerIndex: index, Steps: w.steps}
		e.stats.Deposited++
		if e.cfg.RecordEvents {
			e.events = append(e.events, ev)
		}
		if e.onGrowth != nil {
			e.onGrowth(ev)
		}
	case outcomeOutOfBounds:
		e.stats.DiscardedOOB++
	case outcomeBudgetExhausted:
		e.stats.DiscardedBudget++
	case outcomeBlockedRelease:
		e.stats.DiscardedRelease++
	}

	if outcome == outcomeStuck || !e.cfg.RetryDiscarded {
		e.terminated++
	}
}

func init() {
	core.Register("dla-central", func(m map[string]string) core.Sim {
		cfg := FromMap(m)
		cfg.Mode = ModeCentral
		return MustNew(cfg)
	})
	core.Register("dla-surface", func(m map[string]string) core.Sim {
		cfg := FromMap(m)
		cfg.Mode = ModeSurface
		return MustNew(cfg)
	})
}
