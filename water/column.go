// Package water implements the column-based finite-volume pipe-flow
// solver that evolves depth and edge-flow fields over the terrain grid
// each tick.
package water

import (
	"fmt"
	"log"

	"github.com/mod1sim/mod1/terrain"
)

// Column is a single cell of the water grid. lFlow/tFlow are signed
// volumetric rates through the left/top edges,
// positive meaning inflow into this column. The right/bottom edges are
// owned by the neighboring columns.
type Column struct {
	Depth    float64
	LFlow    float64
	TFlow    float64
	TerrainH float64 // precomputed once: average of the 4 surrounding terrain heights
}

// Grid is the Wc×Dc array of columns, Wc = W-1, Dc = D-1.
type Grid struct {
	terrain terrain.View
	wc, dc  int
	cols    [][]Column // [v][u]
}

// NewGrid allocates a column grid sized to the terrain and precomputes
// each column's terrainH. NewSolver allocates its grid once; SetScenario
// reuses it through Reset.
func NewGrid(t terrain.View) *Grid {
	d := t.Dims()
	wc, dc := d.W-1, d.D-1
	cols := make([][]Column, dc)
	for v := 0; v < dc; v++ {
		cols[v] = make([]Column, wc)
		for u := 0; u < wc; u++ {
			th := t.Height(u, v) + t.Height(u+1, v) + t.Height(u, v+1) + t.Height(u+1, v+1)
			cols[v][u] = Column{TerrainH: th / 4}
		}
	}
	return &Grid{terrain: t, wc: wc, dc: dc, cols: cols}
}

// Reset zeroes depth and flow on every column while preserving terrainH
// in place, rather than reallocating the grid.
func (g *Grid) Reset() {
	for v := range g.cols {
		for u := range g.cols[v] {
			g.cols[v][u].Depth = 0
			g.cols[v][u].LFlow = 0
			g.cols[v][u].TFlow = 0
		}
	}
}

// At returns the column at (u, v). Exported for the mesh package, the
// interactive CLI view, and tests; the hot tick path indexes g.cols
// directly and never goes through here. An (u, v) outside the grid
// indicates a bug in the caller's index computation (§7
// GridOutOfRange): logged and reporting a zero Column in release,
// panicking when terrain.Debug is set.
func (g *Grid) At(u, v int) Column {
	if u < 0 || u >= g.wc || v < 0 || v >= g.dc {
		err := fmt.Errorf("%w: u=%d v=%d (wc=%d dc=%d)", terrain.ErrGridOutOfRange, u, v, g.wc, g.dc)
		if terrain.Debug {
			panic(err)
		}
		log.Printf("water: %v", err)
		return Column{}
	}
	return g.cols[v][u]
}

func (g *Grid) Wc() int { return g.wc }
func (g *Grid) Dc() int { return g.dc }

// TotalVolume sums depth*gridArea across all columns — used by tests
// checking mass conservation.
func (g *Grid) TotalVolume(gridArea float64) float64 {
	var total float64
	for v := range g.cols {
		for u := range g.cols[v] {
			total += g.cols[v][u].Depth * gridArea
		}
	}
	return total
}
