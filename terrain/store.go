package terrain

import "math"

// Store holds the immutable dense heightfield produced by Build and
// answers height queries. Min/max are cached at construction and
// never recomputed.
type Store struct {
	dims Dims
	grid [][]float64 // [z][x], row-major
	minH float64
	maxH float64
}

// View is the read-only surface of Store that other components (water,
// mesh, external mouse-raycast callers) depend on, so the water solver
// can reference terrain without terrain needing to reference water
// back.
type View interface {
	Height(u, v int) float64
	NearHeight(xf, zf float64) (float64, bool)
	MinHeight() float64
	MaxHeight() float64
	Dims() Dims
}

// NewStore builds a Store from an augmented control point set.
func NewStore(d Dims, points []ControlPoint, numClosest int) *Store {
	grid := Build(d, points, numClosest)
	minH, maxH := grid[0][0], grid[0][0]
	for z := range grid {
		for x := range grid[z] {
			h := grid[z][x]
			if h < minH {
				minH = h
			}
			if h > maxH {
				maxH = h
			}
		}
	}
	return &Store{dims: d, grid: grid, minH: minH, maxH: maxH}
}

// Height returns the exact grid height at (u, v) = (x, z). Out-of-range
// coordinates are clamped to the nearest valid index rather than
// panicking.
func (s *Store) Height(u, v int) float64 {
	u = clampInt(u, 0, s.dims.W-1)
	v = clampInt(v, 0, s.dims.D-1)
	return s.grid[v][u]
}

// NearHeight rounds (xf, zf) to the nearest grid cell and returns its
// height, or false if the rounded cell falls outside the grid.
func (s *Store) NearHeight(xf, zf float64) (float64, bool) {
	x := int(math.Round(xf))
	z := int(math.Round(zf))
	if x < 0 || x >= s.dims.W || z < 0 || z >= s.dims.D {
		return 0, false
	}
	return s.grid[z][x], true
}

func (s *Store) MinHeight() float64 { return s.minH }
func (s *Store) MaxHeight() float64 { return s.maxH }
func (s *Store) Dims() Dims         { return s.dims }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
