package lattice

import (
	"errors"
	"testing"
)

func TestNewRejectsSmallSides(t *testing.T) {
	for _, side := range []int{-1, 0, 1, 2} {
		if _, err := New(side); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("side %d: expected ErrInvalidSize, got %v", side, err)
		}
	}
}

func TestNewStartsEmpty(t *testing.T) {
	for _, side := range []int{3, 5, 17} {
		l, err := New(side)
		if err != nil {
			t.Fatalf("side %d: %v", side, err)
		}
		if l.Side() != side {
			t.Fatalf("side %d: Side() reported %d", side, l.Side())
		}
		if got := len(l.Cells()); got != side*side {
			t.Fatalf("side %d: expected %d cells, got %d", side, side*side, got)
		}
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if l.IsOccupied(Point{X: x, Y: y}) {
					t.Fatalf("side %d: cell (%d,%d) occupied in fresh lattice", side, x, y)
				}
			}
		}
		if l.OccupiedCount() != 0 {
			t.Fatalf("side %d: fresh lattice reports %d occupied", side, l.OccupiedCount())
		}
	}
}

func TestOccupyIsMonotonicAndIdempotent(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	p := Point{X: 2, Y: 3}
	l.Occupy(p)
	if !l.IsOccupied(p) {
		t.Fatalf("cell (%d,%d) not occupied after Occupy", p.X, p.Y)
	}
	l.Occupy(p)
	if l.OccupiedCount() != 1 {
		t.Fatalf("double Occupy changed count to %d", l.OccupiedCount())
	}
	// No operation besides Clear may empty the cell again.
	l.Occupy(Point{X: 0, Y: 0})
	l.PlaceSeed(Point{X: 4, Y: 4})
	if !l.IsOccupied(p) {
		t.Fatalf("cell (%d,%d) reverted to empty", p.X, p.Y)
	}
	if l.OccupiedCount() != 3 {
		t.Fatalf("expected 3 occupied cells, got %d", l.OccupiedCount())
	}
}

func TestOccupyIgnoresOutOfBounds(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}} {
		l.Occupy(p)
		if l.IsOccupied(p) {
			t.Fatalf("out-of-bounds (%d,%d) reported occupied", p.X, p.Y)
		}
	}
	if l.OccupiedCount() != 0 {
		t.Fatalf("out-of-bounds Occupy mutated count: %d", l.OccupiedCount())
	}
}

func TestNeighborsFilterBounds(t *testing.T) {
	l, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	corner := l.Neighbors(nil, Point{X: 0, Y: 0}, VonNeumann)
	if len(corner) != 2 {
		t.Fatalf("corner has %d von Neumann neighbors, expected 2: %v", len(corner), corner)
	}
	corner8 := l.Neighbors(nil, Point{X: 0, Y: 0}, Moore)
	if len(corner8) != 3 {
		t.Fatalf("corner has %d Moore neighbors, expected 3: %v", len(corner8), corner8)
	}

	interior := l.Neighbors(nil, Point{X: 1, Y: 2}, Moore)
	if len(interior) != 8 {
		t.Fatalf("interior cell has %d Moore neighbors, expected 8", len(interior))
	}
	for _, n := range interior {
		if !l.InBounds(n) {
			t.Fatalf("neighbor (%d,%d) out of bounds", n.X, n.Y)
		}
	}
}

func TestHasOccupiedNeighbor(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	l.Occupy(Point{X: 2, Y: 2})

	if !l.HasOccupiedNeighbor(Point{X: 2, Y: 1}, VonNeumann) {
		t.Fatal("orthogonal neighbor of seed not detected")
	}
	if l.HasOccupiedNeighbor(Point{X: 1, Y: 1}, VonNeumann) {
		t.Fatal("diagonal contact detected under von Neumann adjacency")
	}
	if !l.HasOccupiedNeighbor(Point{X: 1, Y: 1}, Moore) {
		t.Fatal("diagonal contact not detected under Moore adjacency")
	}
	if l.HasOccupiedNeighbor(Point{X: 0, Y: 4}, Moore) {
		t.Fatal("far cell reported contact")
	}
}

func TestClearEmptiesEveryCell(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	l.Occupy(Point{X: 1, Y: 1})
	l.Occupy(Point{X: 2, Y: 0})
	l.Clear()
	if l.OccupiedCount() != 0 {
		t.Fatalf("Clear left %d occupied cells", l.OccupiedCount())
	}
	for i, c := range l.Cells() {
		if c != 0 {
			t.Fatalf("cell index %d nonzero after Clear", i)
		}
	}
}
