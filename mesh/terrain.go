package mesh

import (
	"github.com/mod1sim/mod1/render"
	"github.com/mod1sim/mod1/terrain"
	"github.com/mod1sim/mod1/vmath"
)

// terrainColorBands is the height-to-color gradient used to shade the
// static terrain mesh: sand at the low end, grass in the middle, stone
// at the high end.
var terrainColorBands = [3]render.Vec3{
	{X: 0.92, Y: 0.85, Z: 0.69}, // sand
	{X: 0.61, Y: 0.76, Z: 0.20}, // grass
	{X: 0.54, Y: 0.50, Z: 0.56}, // stone
}

// BuildTerrain produces the static terrain vertex/index buffer once
// per map load. It is never refreshed — terrain is immutable once a
// map is loaded.
func BuildTerrain(t terrain.View) render.TerrainBuffer {
	d := t.Dims()
	w, depth := d.W, d.D

	buf := render.TerrainBuffer{Vertices: make([]render.TerrainVertex, w*depth)}
	for z := 0; z < depth; z++ {
		for x := 0; x < w; x++ {
			idx := z*w + x
			var y float64
			if x != 0 && x != w-1 && z != 0 && z != depth-1 {
				y = t.Height(x, z)
			}
			buf.Vertices[idx].Pos = render.Vec3{X: float64(x), Y: y, Z: float64(z)}
		}
	}

	colorTerrainVertices(buf.Vertices)

	for z := 0; z < depth; z++ {
		for x := 0; x < w; x++ {
			buf.Vertices[z*w+x].Norm = terrainNormal(buf.Vertices, w, depth, x, z)
		}
	}

	buf.Indices = stripIndices(w, depth)
	return buf
}

// colorTerrainVertices assigns each vertex a color by lerping across
// terrainColorBands according to where its height falls between the
// mesh's observed min and max.
func colorTerrainVertices(verts []render.TerrainVertex) {
	if len(verts) == 0 {
		return
	}
	minH, maxH := verts[0].Pos.Y, verts[0].Pos.Y
	for _, v := range verts {
		if v.Pos.Y < minH {
			minH = v.Pos.Y
		}
		if v.Pos.Y > maxH {
			maxH = v.Pos.Y
		}
	}
	diffH := maxH - minH
	if diffH == 0 {
		diffH = 1
	}
	step := 1.0 / float64(len(terrainColorBands)-1)

	for i := range verts {
		ratio := (verts[i].Pos.Y - minH) / diffH
		for band := 0; band < len(terrainColorBands)-1; band++ {
			if ratio <= step*float64(band+1) || band == len(terrainColorBands)-2 {
				minR := step * float64(band)
				maxR := step * float64(band+1)
				localRatio := (ratio - minR) / (maxR - minR)
				verts[i].Color = lerpVec3(terrainColorBands[band], terrainColorBands[band+1], localRatio)
				break
			}
		}
	}
}

func lerpVec3(a, b render.Vec3, t float64) render.Vec3 {
	return render.Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

func terrainNormal(verts []render.TerrainVertex, w, depth, x, z int) render.Vec3 {
	h := func(cx, cz int) float64 { return verts[cz*w+cx].Pos.Y }

	hL, hR, hT, hB := h(x, z), h(x, z), h(x, z), h(x, z)
	if x != 0 {
		hL = h(x-1, z)
	}
	if x < w-1 {
		hR = h(x+1, z)
	}
	if z < depth-1 {
		hT = h(x, z+1)
	}
	if z != 0 {
		hB = h(x, z-1)
	}

	sx := hR - hL
	if x == 0 || x == w-1 {
		sx *= 2
	}
	sy := hB - hT
	if z == 0 || z == depth-1 {
		sy *= 2
	}

	tx := vmath.Vec3F{X: 2, Y: sx, Z: 0}
	tz := vmath.Vec3F{X: 0, Y: sy, Z: -2}
	n := vmath.V3FNormalize(vmath.V3FCross(tx, tz))
	if n == (vmath.Vec3F{}) {
		return render.Vec3{Y: 1}
	}
	return render.Vec3{X: n.X, Y: n.Y, Z: n.Z}
}
