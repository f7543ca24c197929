package dla

import (
	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

// trailCap bounds the recorded trajectory so an unbounded wander cannot grow
// the trail without limit.
const trailCap = 4096

// walker is a transient random-walk particle. It proposes one step at a time
// to the engine's loop and never terminates itself; the engine owns the
// bounds, stick, and budget checks.
type walker struct {
	pos   lattice.Point
	steps int
	trail []lattice.Point
}

func newWalker(release lattice.Point, recordTrail bool) *walker {
	w := &walker{pos: release}
	if recordTrail {
		w.trail = append(make([]lattice.Point, 0, 64), release)
	}
	return w
}

// propose returns the coordinate one uniformly random step away from the
// current position. It does not move the walker.
func (w *walker) propose(rng *core.RNG, c lattice.Connectivity) lattice.Point {
	offs := c.Offsets()
	return w.pos.Add(offs[rng.IntN(len(offs))])
}

// moveTo commits the walker to p and records it on the trail. Once the trail
// is full the tail entry tracks the current position so the trail always ends
// where the walker is.
func (w *walker) moveTo(p lattice.Point) {
	w.pos = p
	if w.trail == nil {
		return
	}
	if len(w.trail) < trailCap {
		w.trail = append(w.trail, p)
		return
	}
	w.trail[len(w.trail)-1] = p
}
