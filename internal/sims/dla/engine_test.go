package dla

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hlappal/dla/internal/lattice"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 21
	cfg.Walkers = 40
	cfg.Seed = 99
	cfg.RecordEvents = true
	return cfg
}

func TestNewValidates(t *testing.T) {
	cfg := testConfig()
	cfg.Walkers = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected validation error for zero walkers")
	}
}

func TestCentralSeedPlacement(t *testing.T) {
	cfg := testConfig()
	e := MustNew(cfg)

	mid := cfg.Size / 2
	if !e.Lattice().IsOccupied(lattice.Point{X: mid, Y: mid}) {
		t.Fatalf("center (%d,%d) not seeded", mid, mid)
	}
	if got := e.Lattice().OccupiedCount(); got != 1 {
		t.Fatalf("central mode seeded %d cells, expected 1", got)
	}
}

func TestSurfaceSeedPlacement(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeSurface
	e := MustNew(cfg)

	bottom := cfg.Size - 1
	for x := 0; x < cfg.Size; x++ {
		if !e.Lattice().IsOccupied(lattice.Point{X: x, Y: bottom}) {
			t.Fatalf("bottom row cell (%d,%d) not seeded", x, bottom)
		}
	}
	if got := e.Lattice().OccupiedCount(); got != cfg.Size {
		t.Fatalf("surface mode seeded %d cells, expected %d", got, cfg.Size)
	}
}

func TestRunAccountsEveryWalker(t *testing.T) {
	cfg := testConfig()
	e := MustNew(cfg)
	e.Run()

	st := e.Stats()
	if st.Released != cfg.Walkers {
		t.Fatalf("released %d walkers, expected %d", st.Released, cfg.Walkers)
	}
	if st.Deposited+st.Discarded() != st.Released {
		t.Fatalf("outcomes do not sum: %d deposited + %d discarded != %d released",
			st.Deposited, st.Discarded(), st.Released)
	}
	// Discards never mutate the lattice.
	if got := e.Lattice().OccupiedCount(); got != 1+st.Deposited {
		t.Fatalf("occupancy %d != seed + %d deposits", got, st.Deposited)
	}
	if len(e.Events()) != st.Deposited {
		t.Fatalf("recorded %d events for %d deposits", len(e.Events()), st.Deposited)
	}
	if !e.Done() {
		t.Fatal("engine not done after Run")
	}
}

func TestEveryDepositTouchesAggregate(t *testing.T) {
	cfg := testConfig()
	e := MustNew(cfg)
	e.Run()

	// Each event coordinate must have had an occupied neighbor when it
	// stuck; since occupancy is monotonic it still has one.
	for _, ev := range e.Events() {
		if !e.Lattice().HasOccupiedNeighbor(ev.Coord, cfg.Connectivity) {
			t.Fatalf("deposit at (%d,%d) has no occupied neighbor", ev.Coord.X, ev.Coord.Y)
		}
	}
}

func TestStepBudgetDiscards(t *testing.T) {
	cfg := testConfig()
	// One step from the edge ring can never reach contact with the center
	// seed on a 21-cell lattice, so every walker must be discarded.
	cfg.MaxSteps = 1
	e := MustNew(cfg)
	e.Run()

	st := e.Stats()
	if st.Deposited != 0 {
		t.Fatalf("deposited %d walkers despite a 1-step budget far from the seed", st.Deposited)
	}
	if st.Discarded() != cfg.Walkers {
		t.Fatalf("discarded %d, expected all %d", st.Discarded(), cfg.Walkers)
	}
	if got := e.Lattice().OccupiedCount(); got != 1 {
		t.Fatalf("discards mutated the lattice: %d occupied", got)
	}
}

func TestRetryDiscardedDepositsExactly(t *testing.T) {
	cfg := testConfig()
	cfg.Walkers = 10
	cfg.RetryDiscarded = true
	e := MustNew(cfg)
	e.Run()

	st := e.Stats()
	if st.Deposited != cfg.Walkers {
		t.Fatalf("deposited %d, expected exactly %d", st.Deposited, cfg.Walkers)
	}
	if st.Released < st.Deposited {
		t.Fatalf("released %d < deposited %d", st.Released, st.Deposited)
	}
	if got := e.Lattice().OccupiedCount(); got != 1+cfg.Walkers {
		t.Fatalf("occupancy %d, expected seed + %d deposits", got, cfg.Walkers)
	}
}

func TestSingleWalkerDepositsAdjacentToSeed(t *testing.T) {
	// With one retried walker on a 5-cell lattice the run must end with the
	// seed plus exactly one deposit touching it.
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Walkers = 1
	cfg.Seed = 7
	cfg.RetryDiscarded = true
	cfg.RecordEvents = true
	e := MustNew(cfg)
	e.Run()

	if got := e.Lattice().OccupiedCount(); got != 2 {
		t.Fatalf("expected 2 occupied cells, got %d", got)
	}
	events := e.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 growth event, got %d", len(events))
	}
	ev := events[0]
	dx := ev.Coord.X - 2
	dy := ev.Coord.Y - 2
	if dx*dx+dy*dy != 1 {
		t.Fatalf("deposit (%d,%d) not 4-adjacent to seed (2,2)", ev.Coord.X, ev.Coord.Y)
	}
}

func TestRunDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	a := MustNew(cfg)
	b := MustNew(cfg)
	a.Run()
	b.Run()

	if diff := cmp.Diff(a.Lattice().Cells(), b.Lattice().Cells()); diff != "" {
		t.Fatalf("lattices differ for identical seeds (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Events(), b.Events()); diff != "" {
		t.Fatalf("event sequences differ for identical seeds (-a +b):\n%s", diff)
	}

	// A different seed must diverge.
	c := MustNew(cfg)
	c.Reset(cfg.Seed + 1)
	c.Run()
	if slices.Equal(a.Lattice().Cells(), c.Lattice().Cells()) {
		t.Fatal("different seeds produced identical lattices")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	cfg := testConfig()
	e := MustNew(cfg)
	initial := slices.Clone(e.Cells())

	e.Run()
	if slices.Equal(initial, e.Cells()) {
		t.Fatal("run did not change the display buffer")
	}

	e.Reset(0)
	if !slices.Equal(initial, e.Cells()) {
		t.Fatal("Reset did not restore the seeded display buffer")
	}
	if e.Stats() != (Stats{}) {
		t.Fatalf("Reset left counters: %+v", e.Stats())
	}
	if e.Done() {
		t.Fatal("engine reports done immediately after Reset")
	}
}

func TestOnGrowthStreamsEveryDeposit(t *testing.T) {
	cfg := testConfig()
	cfg.RecordEvents = false
	e := MustNew(cfg)

	var streamed int
	e.SetOnGrowth(func(GrowthEvent) { streamed++ })
	e.Run()

	if streamed != e.Stats().Deposited {
		t.Fatalf("callback saw %d events for %d deposits", streamed, e.Stats().Deposited)
	}
	if len(e.Events()) != 0 {
		t.Fatal("events retained despite RecordEvents=false")
	}
}

func TestTrailRecordedWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.RecordTrail = true
	cfg.RetryDiscarded = true
	cfg.Walkers = 1
	e := MustNew(cfg)
	e.Run()

	trail := e.Trail()
	if len(trail) == 0 {
		t.Fatal("no trail recorded for deposited walker")
	}
	last := trail[len(trail)-1]
	if !e.Lattice().IsOccupied(last) {
		t.Fatalf("trail end (%d,%d) is not the deposit", last.X, last.Y)
	}
}
