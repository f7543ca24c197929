// Package analysis computes geometric and growth statistics over a finished
// aggregation run: cluster extent, mass-radius fractal dimension, and
// surface-mode interface roughness.
package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/hlappal/dla/internal/lattice"
)

// ErrTooFewPoints reports a lattice too sparse to fit a dimension estimate.
var ErrTooFewPoints = errors.New("too few occupied cells for a regression fit")

// ClusterStats summarizes the geometry of the occupied cells.
type ClusterStats struct {
	Occupied int

	CentroidX float64
	CentroidY float64

	// MaxRadius is the largest centroid-to-cell distance.
	MaxRadius float64
	// GyrationRadius is the root mean square centroid-to-cell distance.
	GyrationRadius float64

	MinX, MinY int
	MaxX, MaxY int

	// Density is occupied cells over the bounding-box area.
	Density float64
}

// Cluster computes summary statistics for the aggregate on l.
func Cluster(l *lattice.Lattice) ClusterStats {
	side := l.Side()
	cells := l.Cells()

	st := ClusterStats{MinX: side, MinY: side, MaxX: -1, MaxY: -1}
	var sumX, sumY float64
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if cells[y*side+x] == 0 {
				continue
			}
			st.Occupied++
			sumX += float64(x)
			sumY += float64(y)
			if x < st.MinX {
				st.MinX = x
			}
			if y < st.MinY {
				st.MinY = y
			}
			if x > st.MaxX {
				st.MaxX = x
			}
			if y > st.MaxY {
				st.MaxY = y
			}
		}
	}
	if st.Occupied == 0 {
		return ClusterStats{}
	}

	st.CentroidX = sumX / float64(st.Occupied)
	st.CentroidY = sumY / float64(st.Occupied)

	var sumSq float64
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if cells[y*side+x] == 0 {
				continue
			}
			d2 := sq(float64(x)-st.CentroidX) + sq(float64(y)-st.CentroidY)
			sumSq += d2
			if d := math.Sqrt(d2); d > st.MaxRadius {
				st.MaxRadius = d
			}
		}
	}
	st.GyrationRadius = math.Sqrt(sumSq / float64(st.Occupied))

	area := float64(st.MaxX-st.MinX+1) * float64(st.MaxY-st.MinY+1)
	st.Density = float64(st.Occupied) / area
	return st
}

// MassRadius tabulates N(r), the number of occupied cells within distance r
// of center, for integer radii that fit entirely on the lattice.
func MassRadius(l *lattice.Lattice, center lattice.Point) (radii, counts []float64) {
	side := l.Side()
	cells := l.Cells()

	rmax := center.X
	for _, edge := range []int{side - 1 - center.X, center.Y, side - 1 - center.Y} {
		if edge < rmax {
			rmax = edge
		}
	}

	for r := 2; r <= rmax; r++ {
		count := 0
		r2 := float64(r * r)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if cells[y*side+x] == 0 {
					continue
				}
				if sq(float64(x-center.X))+sq(float64(y-center.Y)) <= r2 {
					count++
				}
			}
		}
		if count == 0 {
			continue
		}
		radii = append(radii, float64(r))
		counts = append(counts, float64(count))
	}
	return radii, counts
}

// MassRadiusDimension estimates the cluster's fractal dimension as the slope
// of log N(r) against log r, with the fit's R-squared as a quality signal.
// For DLA in the plane the expected value is about 1.71.
func MassRadiusDimension(l *lattice.Lattice, center lattice.Point) (dim, rsq float64, err error) {
	radii, counts := MassRadius(l, center)
	if len(radii) < 3 {
		return 0, 0, ErrTooFewPoints
	}

	logR := make([]float64, len(radii))
	logN := make([]float64, len(counts))
	for i := range radii {
		logR[i] = math.Log(radii[i])
		logN[i] = math.Log(counts[i])
	}

	alpha, beta := stat.LinearRegression(logR, logN, nil, false)
	return beta, stat.RSquared(logR, logN, nil, alpha, beta), nil
}

// SurfaceProfile returns the deposit height of each column, measured upward
// from the seeded bottom row. Columns with no deposit above the seed report
// zero.
func SurfaceProfile(l *lattice.Lattice) []float64 {
	side := l.Side()
	heights := make([]float64, side)
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			if l.IsOccupied(lattice.Point{X: x, Y: y}) {
				heights[x] = float64(side - 1 - y)
				break
			}
		}
	}
	return heights
}

// InterfaceWidth is the standard deviation of the surface profile, the usual
// roughness measure for deposition fronts.
func InterfaceWidth(heights []float64) float64 {
	if len(heights) < 2 {
		return 0
	}
	return stat.StdDev(heights, nil)
}

// MeanHeight is the average of the surface profile.
func MeanHeight(heights []float64) float64 {
	if len(heights) == 0 {
		return 0
	}
	return stat.Mean(heights, nil)
}

func sq(v float64) float64 { return v * v }
