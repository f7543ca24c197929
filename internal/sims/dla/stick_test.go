package dla

import (
	"math"
	"testing"

	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

func contactLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(5)
	if err != nil {
		t.Fatal(err)
	}
	l.Occupy(lattice.Point{X: 2, Y: 2})
	return l
}

func TestShouldStickDeterministicOnContact(t *testing.T) {
	l := contactLattice(t)
	rng := core.NewRNG(1)
	adjacent := lattice.Point{X: 2, Y: 1}

	for i := 0; i < 100; i++ {
		if !shouldStick(l, adjacent, lattice.VonNeumann, 1.0, rng) {
			t.Fatalf("factor 1.0 failed to stick on contact (trial %d)", i)
		}
	}
}

func TestShouldStickRequiresContact(t *testing.T) {
	l := contactLattice(t)
	rng := core.NewRNG(1)

	if shouldStick(l, lattice.Point{X: 0, Y: 0}, lattice.VonNeumann, 1.0, rng) {
		t.Fatal("stuck with no occupied neighbor")
	}
	// Diagonal contact only counts under Moore adjacency.
	diag := lattice.Point{X: 1, Y: 1}
	if shouldStick(l, diag, lattice.VonNeumann, 1.0, rng) {
		t.Fatal("diagonal contact stuck under von Neumann adjacency")
	}
	if !shouldStick(l, diag, lattice.Moore, 1.0, rng) {
		t.Fatal("diagonal contact did not stick under Moore adjacency")
	}
}

func TestStickProbabilityTracksFactor(t *testing.T) {
	l := contactLattice(t)
	adjacent := lattice.Point{X: 2, Y: 1}

	const trials = 10000
	for _, factor := range []float64{0.1, 0.5} {
		rng := core.NewRNG(17)
		hits := 0
		for i := 0; i < trials; i++ {
			if shouldStick(l, adjacent, lattice.VonNeumann, factor, rng) {
				hits++
			}
		}
		got := float64(hits) / trials
		// 0.02 is well over five binomial standard deviations at n=10000.
		if math.Abs(got-factor) > 0.02 {
			t.Fatalf("factor %g: observed stick rate %g", factor, got)
		}
	}
}
