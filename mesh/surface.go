// Package mesh turns the live water grid and the static terrain store
// into the vertex/index buffers an external renderer uploads. Nothing
// here touches a graphics API; it only produces data.
package mesh

import (
	"github.com/mod1sim/mod1/render"
	"github.com/mod1sim/mod1/vmath"
	"github.com/mod1sim/mod1/water"
)

// waterMinDisplayH is the depth below which a surface vertex starts
// fading out rather than rendering a full-opacity puddle skin: below
// 1 cm of water the vertex fades to transparent.
const waterMinDisplayH = 0.01

// Surface owns the water surface strip mesh: one vertex per grid
// corner, refreshed every tick once the solver has advanced.
type Surface struct {
	grid       *water.Grid
	gridSpaceX float64
	gridSpaceZ float64
	wc, dc     int // column counts; vertex grid is (wc+1) x (dc+1)

	buf render.SurfaceBuffer
}

// NewSurface builds the surface mesh once: vertex positions, normals,
// visibility, and the triangle-strip index list. The index layout
// duplicates the first/last vertex of each row to splice rows
// together with degenerate triangles.
func NewSurface(g *water.Grid, gridSpaceX, gridSpaceZ float64) *Surface {
	s := &Surface{grid: g, gridSpaceX: gridSpaceX, gridSpaceZ: gridSpaceZ, wc: g.Wc(), dc: g.Dc()}
	vw, vd := s.wc+1, s.dc+1

	s.buf.Vertices = make([]render.SurfaceVertex, vw*vd)
	for z := 0; z < vd; z++ {
		for x := 0; x < vw; x++ {
			waterDepth, terrainH := s.cornerHeight(x, z)
			idx := z*vw + x
			s.buf.Vertices[idx].Pos = render.Vec3{
				X: gridSpaceX * float64(x),
				Y: waterDepth + terrainH,
				Z: gridSpaceZ * float64(z),
			}
			s.buf.Vertices[idx].Visible = visibility(waterDepth)
		}
	}
	for z := 0; z < vd; z++ {
		for x := 0; x < vw; x++ {
			s.buf.Vertices[z*vw+x].Norm = s.cornerNormal(x, z)
		}
	}

	s.buf.Indices = stripIndices(vw, vd)
	return s
}

// Refresh recomputes vertex positions, visibility, and normals to
// match the grid's current state. Index topology never changes after
// NewSurface.
func (s *Surface) Refresh() {
	vw, vd := s.wc+1, s.dc+1
	for z := 0; z < vd; z++ {
		for x := 0; x < vw; x++ {
			waterDepth, terrainH := s.cornerHeight(x, z)
			idx := z*vw + x
			s.buf.Vertices[idx].Pos.Y = waterDepth + terrainH
			s.buf.Vertices[idx].Visible = visibility(waterDepth)
		}
	}
	for z := 0; z < vd; z++ {
		for x := 0; x < vw; x++ {
			s.buf.Vertices[z*vw+x].Norm = s.cornerNormal(x, z)
		}
	}
}

// Buffer returns the current vertex/index pair for upload.
func (s *Surface) Buffer() render.SurfaceBuffer { return s.buf }

func visibility(waterDepth float64) float64 {
	if waterDepth < waterMinDisplayH {
		return waterDepth / waterMinDisplayH
	}
	return 1.0
}

// cornerHeight averages the depth and terrain height of the up-to-four
// columns touching grid corner (x, z), clamping at the domain edges so
// border corners average only their in-range neighbors.
func (s *Surface) cornerHeight(x, z int) (waterDepth, terrainH float64) {
	top := clampIdx(z-1, s.dc)
	bottom := clampIdx(z, s.dc)
	left := clampIdx(x-1, s.wc)
	right := clampIdx(x, s.wc)

	cols := [4]water.Column{
		s.grid.At(left, top),
		s.grid.At(right, top),
		s.grid.At(left, bottom),
		s.grid.At(right, bottom),
	}
	for _, c := range cols {
		waterDepth += c.Depth
		terrainH += c.TerrainH
	}
	return waterDepth / 4, terrainH / 4
}

func clampIdx(i, maxInclusive int) int {
	if i < 0 {
		return 0
	}
	if i > maxInclusive-1 {
		return maxInclusive - 1
	}
	return i
}

// cornerNormal is a finite-difference normal over vertex heights,
// doubling the gradient at domain edges where only one neighbor exists.
func (s *Surface) cornerNormal(x, z int) render.Vec3 {
	vw := s.wc + 1
	h := func(cx, cz int) float64 { return s.buf.Vertices[cz*vw+cx].Pos.Y }

	hL, hR, hT, hB := h(x, z), h(x, z), h(x, z), h(x, z)
	if x != 0 {
		hL = h(x-1, z)
	}
	if x < s.wc {
		hR = h(x+1, z)
	}
	if z < s.dc {
		hT = h(x, z+1)
	}
	if z != 0 {
		hB = h(x, z-1)
	}

	sx := hR - hL
	if x == 0 || x == s.wc {
		sx *= 2
	}
	sy := hB - hT
	if z == 0 || z == s.dc {
		sy *= 2
	}

	// Cross two surface tangent vectors (along x and along z) rather
	// than hand-normalizing the gradient directly.
	tx := vmath.Vec3F{X: 2, Y: sx, Z: 0}
	tz := vmath.Vec3F{X: 0, Y: sy, Z: -2}
	n := vmath.V3FNormalize(vmath.V3FCross(tx, tz))
	if n == (vmath.Vec3F{}) {
		return render.Vec3{Y: 1}
	}
	return render.Vec3{X: n.X, Y: n.Y, Z: n.Z}
}

// stripIndices builds a single triangle-strip index list covering a
// vw x vd vertex grid, stitching rows together with degenerate
// triangles via first/last-vertex duplication.
func stripIndices(vw, vd int) []uint32 {
	indices := make([]uint32, 0, (vd-1)*(2*vw+2))
	for y := 0; y < vd-1; y++ {
		if y > 0 {
			indices = append(indices, uint32(y*vw))
		}
		var a, b uint32
		for x := 0; x < vw; x++ {
			a = uint32(x + y*vw)
			b = a + uint32(vw)
			indices = append(indices, a, b)
		}
		if y != vd-2 {
			indices = append(indices, b)
		}
	}
	return indices
}
