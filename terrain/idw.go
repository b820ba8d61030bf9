package terrain

import (
	"math"
	"sort"
)

// neighbor is a control point annotated with its squared planar distance
// to the query cell, used while selecting the k nearest points.
type neighbor struct {
	p      ControlPoint
	distSq float64
}

// Build synthesizes a dense W×D heightfield from the augmented point
// set using inverse distance weighting. k is the neighbor count
// (default 16); if fewer points are available, all of them are used.
//
// Grid cells that coincide exactly with a control point return that
// point's height directly. Rim rows/columns are forced to zero
// regardless of interpolation.
func Build(d Dims, points []ControlPoint, k int) [][]float64 {
	exact := make(map[[2]int]float64, len(points))
	for _, p := range points {
		exact[[2]int{p.X, p.Z}] = float64(p.Y)
	}

	grid := make([][]float64, d.D)
	for z := 0; z < d.D; z++ {
		grid[z] = make([]float64, d.W)
		for x := 0; x < d.W; x++ {
			if x == 0 || x == d.W-1 || z == 0 || z == d.D-1 {
				grid[z][x] = 0
				continue
			}
			if h, ok := exact[[2]int{x, z}]; ok {
				grid[z][x] = h
				continue
			}
			grid[z][x] = interpolate(points, x, z, k)
		}
	}
	return grid
}

// interpolate computes the IDW height at grid cell (x, z) using the k
// nearest control points by planar (x, z) Euclidean distance. The
// weighting exponent is 4 — i.e. weight = 1/d⁴ — a deliberate aesthetic
// choice that produces steep, quickly-decaying hills.
func interpolate(points []ControlPoint, x, z, k int) float64 {
	if k > len(points) {
		k = len(points)
	}

	neighbors := make([]neighbor, len(points))
	for i, p := range points {
		dx := float64(p.X - x)
		dz := float64(p.Z - z)
		neighbors[i] = neighbor{p: p, distSq: dx*dx + dz*dz}
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].distSq < neighbors[j].distSq })

	var top, bottom float64
	for _, n := range neighbors[:k] {
		d2 := n.distSq
		if d2 == 0 {
			// Build sends every cell that has a control point at its
			// (x, z) through the exact-match path, so a coincident point
			// does not reach here; this guard only keeps the division
			// finite.
			d2 = math.SmallestNonzeroFloat64
		}
		d4 := d2 * d2
		top += float64(n.p.Y) / d4
		bottom += 1.0 / d4
	}
	return top / bottom
}
