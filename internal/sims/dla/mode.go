package dla

import (
	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

// GrowthMode abstracts the two growth geometries: it places the initial seed
// cells and samples the release point for each walker.
type GrowthMode interface {
	Name() string
	Seed(l *lattice.Lattice)
	ReleasePoint(l *lattice.Lattice, rng *core.RNG) lattice.Point
}

// centralMode seeds the lattice center and releases walkers uniformly over
// the outer edge ring.
type centralMode struct{}

func (centralMode) Name() string { return "central" }

func (centralMode) Seed(l *lattice.Lattice) {
	mid := l.Side() / 2
	l.PlaceSeed(lattice.Point{X: mid, Y: mid})
}

func (centralMode) ReleasePoint(l *lattice.Lattice, rng *core.RNG) lattice.Point {
	side := l.Side()
	// The edge ring has 4*side-4 cells; index them top row, bottom row,
	// then the remaining left and right column cells.
	n := rng.IntN(4*side - 4)
	switch {
	case n < side:
		return lattice.Point{X: n, Y: 0}
	case n < 2*side:
		return lattice.Point{X: n - side, Y: side - 1}
	default:
		n -= 2 * side
		y := 1 + n/2
		if n%2 == 0 {
			return lattice.Point{X: 0, Y: y}
		}
		return lattice.Point{X: side - 1, Y: y}
	}
}

// surfaceMode seeds the entire bottom row and releases walkers at a uniform
// random column on the top edge.
type surfaceMode struct{}

func (surfaceMode) Name() string { return "surface" }

func (surfaceMode) Seed(l *lattice.Lattice) {
	y := l.Side() - 1
	for x := 0; x < l.Side(); x++ {
		l.PlaceSeed(lattice.Point{X: x, Y: y})
	}
}

func (surfaceMode) ReleasePoint(l *lattice.Lattice, rng *core.RNG) lattice.Point {
	return lattice.Point{X: rng.IntN(l.Side()), Y: 0}
}

func growthModeFor(m Mode) GrowthMode {
	if m == ModeSurface {
		return surfaceMode{}
	}
	return centralMode{}
}
