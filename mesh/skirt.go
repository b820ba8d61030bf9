package mesh

import (
	"github.com/mod1sim/mod1/render"
	"github.com/mod1sim/mod1/water"
)

// Skirt is the ring of vertical quads that hides the box walls below
// the water surface's outer edge. It walks the perimeter of the
// surface vertex grid once clockwise, pairing each surface-height
// vertex with a y=0 vertex directly below it.
type Skirt struct {
	grid       *water.Grid
	gridSpaceX float64
	gridSpaceZ float64
	wc, dc     int

	buf        render.SkirtBuffer
	perimeterN int // vertex count of one lap of the perimeter
}

// NewSkirt builds the skirt mesh once: perimeter vertex positions and
// the triangle-strip index list joining the top (surface height) ring
// to the bottom (y=0) ring.
func NewSkirt(g *water.Grid, gridSpaceX, gridSpaceZ float64) *Skirt {
	sk := &Skirt{grid: g, gridSpaceX: gridSpaceX, gridSpaceZ: gridSpaceZ, wc: g.Wc(), dc: g.Dc()}
	vw, vd := sk.wc+1, sk.dc+1
	sk.perimeterN = vw*2 + vd*2

	sk.buf.Vertices = make([]render.SkirtVertex, sk.perimeterN*2)
	sk.refreshVertices()

	indices := make([]uint32, 0, sk.perimeterN*2+1)
	indices = append(indices, 0)
	for x := 0; x < sk.perimeterN; x++ {
		a := uint32(x)
		b := a + uint32(sk.perimeterN)
		indices = append(indices, a, b)
	}
	sk.buf.Indices = indices
	return sk
}

// Refresh recomputes the top ring's height/normal/visibility to track
// the grid's current state; the bottom ring stays pinned at y=0 and
// takes the same visibility as the top vertex above it.
func (sk *Skirt) Refresh() {
	sk.refreshVertices()
}

// Buffer returns the current vertex/index pair for upload.
func (sk *Skirt) Buffer() render.SkirtBuffer { return sk.buf }

func (sk *Skirt) refreshVertices() {
	vw, vd := sk.wc+1, sk.dc+1
	i := 0

	place := func(x, z int, norm render.Vec3) {
		waterDepth, terrainH := cornerHeightFor(sk.grid, sk.wc, sk.dc, x, z)
		pos := render.Vec3{X: float64(x) * sk.gridSpaceX, Y: waterDepth + terrainH, Z: float64(z) * sk.gridSpaceZ}
		vis := visibility(waterDepth)
		sk.buf.Vertices[i] = render.SkirtVertex{Pos: pos, Norm: norm, Visible: vis}
		sk.buf.Vertices[i+sk.perimeterN] = render.SkirtVertex{Pos: render.Vec3{X: pos.X, Y: 0, Z: pos.Z}, Norm: norm, Visible: vis}
		i++
	}

	for x := 0; x < vw; x++ {
		place(x, 0, render.Vec3{Z: -1})
	}
	for z := 0; z < vd; z++ {
		place(sk.wc, z, render.Vec3{X: 1})
	}
	for x := sk.wc; x >= 0; x-- {
		place(x, sk.dc, render.Vec3{Z: 1})
	}
	for z := sk.dc; z >= 0; z-- {
		place(0, z, render.Vec3{X: -1})
	}
}

// cornerHeightFor duplicates Surface.cornerHeight's averaging rule for
// callers, like Skirt, that don't hold a *Surface.
func cornerHeightFor(g *water.Grid, wc, dc, x, z int) (waterDepth, terrainH float64) {
	top := clampIdx(z-1, dc)
	bottom := clampIdx(z, dc)
	left := clampIdx(x-1, wc)
	right := clampIdx(x, wc)

	cols := [4]water.Column{
		g.At(left, top),
		g.At(right, top),
		g.At(left, bottom),
		g.At(right, bottom),
	}
	for _, c := range cols {
		waterDepth += c.Depth
		terrainH += c.TerrainH
	}
	return waterDepth / 4, terrainH / 4
}
