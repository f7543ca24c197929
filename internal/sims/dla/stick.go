package dla

import (
	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

// shouldStick decides whether a walker at p adheres to the aggregate. It is
// evaluated once per step, after the move: the walker must be in contact with
// an occupied neighbor, and a Bernoulli draw with the sticky factor as
// success probability must succeed. The draw is taken on every qualifying
// contact so RNG consumption stays uniform across factors and runs replay
// identically.
func shouldStick(l *lattice.Lattice, p lattice.Point, c lattice.Connectivity, factor float64, rng *core.RNG) bool {
	if !l.HasOccupiedNeighbor(p, c) {
		return false
	}
	return rng.Float64() < factor
}
