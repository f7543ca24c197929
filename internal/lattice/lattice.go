package lattice

import "errors"

// ErrInvalidSize reports a lattice side too small to host a seed and a
// release edge.
var ErrInvalidSize = errors.New("lattice side must be at least 3")

// Point is an integer coordinate on the lattice.
type Point struct {
	X int
	Y int
}

// Add returns the point translated by the offset.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Connectivity selects the neighborhood used for stepping and adjacency.
type Connectivity int

const (
	// VonNeumann is the 4-connected neighborhood (orthogonal moves only).
	VonNeumann Connectivity = 4
	// Moore is the 8-connected neighborhood (diagonals included).
	Moore Connectivity = 8
)

var vonNeumannOffsets = []Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

var mooreOffsets = []Point{
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Valid reports whether the connectivity is one of the supported kinds.
func (c Connectivity) Valid() bool {
	return c == VonNeumann || c == Moore
}

// Offsets returns the step offsets of the neighborhood. The returned slice is
// shared and must not be mutated.
func (c Connectivity) Offsets() []Point {
	if c == Moore {
		return mooreOffsets
	}
	return vonNeumannOffsets
}

// Lattice is a square occupancy grid backed by a row-major byte buffer so
// renderers can consume cells directly. Occupancy is monotonic for the
// duration of a run: cells transition Empty to Occupied and never back except
// through Clear. Not safe for concurrent use.
type Lattice struct {
	side     int
	cells    []uint8
	occupied int
}

// New allocates an empty lattice with the given side length.
func New(side int) (*Lattice, error) {
	if side < 3 {
		return nil, ErrInvalidSize
	}
	return &Lattice{side: side, cells: make([]uint8, side*side)}, nil
}

// Side returns the side length of the lattice.
func (l *Lattice) Side() int { return l.side }

// Cells exposes the backing occupancy buffer (0 empty, 1 occupied).
func (l *Lattice) Cells() []uint8 { return l.cells }

// Index returns the linear slice index for the point.
func (l *Lattice) Index(p Point) int { return p.Y*l.side + p.X }

// InBounds reports whether the point lies on the lattice.
func (l *Lattice) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.side && p.Y >= 0 && p.Y < l.side
}

// IsOccupied reports whether the cell at p belongs to the aggregate.
// Out-of-bounds coordinates report false.
func (l *Lattice) IsOccupied(p Point) bool {
	if !l.InBounds(p) {
		return false
	}
	return l.cells[l.Index(p)] != 0
}

// Occupy marks the cell at p as part of the aggregate. It is idempotent and
// ignores out-of-bounds coordinates.
func (l *Lattice) Occupy(p Point) {
	if !l.InBounds(p) {
		return
	}
	idx := l.Index(p)
	if l.cells[idx] != 0 {
		return
	}
	l.cells[idx] = 1
	l.occupied++
}

// PlaceSeed marks an initial aggregate cell before any walker is released.
func (l *Lattice) PlaceSeed(p Point) {
	l.Occupy(p)
}

// Neighbors appends the in-bounds neighbors of p to dst and returns it.
func (l *Lattice) Neighbors(dst []Point, p Point, c Connectivity) []Point {
	for _, off := range c.Offsets() {
		n := p.Add(off)
		if l.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// HasOccupiedNeighbor reports whether any in-bounds neighbor of p belongs to
// the aggregate.
func (l *Lattice) HasOccupiedNeighbor(p Point, c Connectivity) bool {
	for _, off := range c.Offsets() {
		if l.IsOccupied(p.Add(off)) {
			return true
		}
	}
	return false
}

// OccupiedCount returns the number of occupied cells.
func (l *Lattice) OccupiedCount() int { return l.occupied }

// Clear empties every cell. Used only on the reset path between runs.
func (l *Lattice) Clear() {
	for i := range l.cells {
		l.cells[i] = 0
	}
	l.occupied = 0
}
