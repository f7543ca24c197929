package dla

import (
	"testing"

	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/lattice"
)

func TestCentralReleasePointsOnEdgeRing(t *testing.T) {
	l, err := lattice.New(9)
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(3)
	mode := centralMode{}

	seen := map[lattice.Point]bool{}
	for i := 0; i < 2000; i++ {
		p := mode.ReleasePoint(l, rng)
		if !l.InBounds(p) {
			t.Fatalf("release (%d,%d) out of bounds", p.X, p.Y)
		}
		if p.X != 0 && p.X != 8 && p.Y != 0 && p.Y != 8 {
			t.Fatalf("release (%d,%d) not on the edge ring", p.X, p.Y)
		}
		seen[p] = true
	}
	// 2000 draws over 32 ring cells should hit every one of them.
	if len(seen) != 4*9-4 {
		t.Fatalf("sampled %d distinct ring cells, expected %d", len(seen), 4*9-4)
	}
}

func TestSurfaceReleasePointsOnTopEdge(t *testing.T) {
	l, err := lattice.New(7)
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(3)
	mode := surfaceMode{}

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		p := mode.ReleasePoint(l, rng)
		if p.Y != 0 {
			t.Fatalf("release (%d,%d) not on the top edge", p.X, p.Y)
		}
		if p.X < 0 || p.X >= 7 {
			t.Fatalf("release column %d out of range", p.X)
		}
		seen[p.X] = true
	}
	if len(seen) != 7 {
		t.Fatalf("sampled %d distinct columns, expected 7", len(seen))
	}
}

func TestGrowthModeRegistry(t *testing.T) {
	for _, name := range []string{"dla-central", "dla-surface"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		sim := factory(map[string]string{"size": "11", "walkers": "5"})
		if sim.Name() != name {
			t.Fatalf("factory for %s built sim %q", name, sim.Name())
		}
		if sim.Size() != (core.Size{W: 11, H: 11}) {
			t.Fatalf("%s size = %+v", name, sim.Size())
		}
	}
}
