package terrain

import "testing"

// S6: IDW exact control — control points {(10,20,10),(30,40,30)}, grid
// 64x64. T[10][10]=20, T[30][30]=40, rim is 0.
func TestBuildExactControlAndRim(t *testing.T) {
	d := Dims{W: 64, H: 64, D: 64, Ground: 24}
	user := []ControlPoint{{X: 10, Y: 20, Z: 10}, {X: 30, Y: 40, Z: 30}}
	pts := Augment(d, user, DefaultRimStride)

	grid := Build(d, pts, DefaultNumClosest)

	if grid[10][10] != 20 {
		t.Errorf("T[10][10] = %v, want 20", grid[10][10])
	}
	if grid[30][30] != 40 {
		t.Errorf("T[30][30] = %v, want 40", grid[30][30])
	}

	for x := 0; x < d.W; x++ {
		if grid[0][x] != 0 || grid[d.D-1][x] != 0 {
			t.Fatalf("rim row not zero at x=%d", x)
		}
	}
	for z := 0; z < d.D; z++ {
		if grid[z][0] != 0 || grid[z][d.W-1] != 0 {
			t.Fatalf("rim col not zero at z=%d", z)
		}
	}
}

// Property 3: every control point's own cell returns its exact height.
func TestBuildExactAtEveryControlPoint(t *testing.T) {
	d := DefaultDims()
	user := []ControlPoint{
		{X: 5, Y: 3, Z: 5},
		{X: 20, Y: -4, Z: 40},
		{X: 50, Y: 12, Z: 10},
	}
	pts := Augment(d, user, DefaultRimStride)
	grid := Build(d, pts, DefaultNumClosest)

	for _, p := range user {
		if grid[p.Z][p.X] != float64(p.Y) {
			t.Errorf("T[%d][%d] = %v, want %v", p.Z, p.X, grid[p.Z][p.X], p.Y)
		}
	}
}

// Property 7: building the same terrain twice yields bitwise-identical output.
func TestBuildDeterministic(t *testing.T) {
	d := DefaultDims()
	user := []ControlPoint{{X: 12, Y: 7, Z: 40}, {X: 48, Y: -2, Z: 12}}
	pts := Augment(d, user, DefaultRimStride)

	g1 := Build(d, pts, DefaultNumClosest)
	g2 := Build(d, pts, DefaultNumClosest)

	for z := range g1 {
		for x := range g1[z] {
			if g1[z][x] != g2[z][x] {
				t.Fatalf("non-deterministic build at (%d,%d): %v != %v", x, z, g1[z][x], g2[z][x])
			}
		}
	}
}

func TestBuildFewerPointsThanK(t *testing.T) {
	d := Dims{W: 16, H: 16, D: 16, Ground: 4}
	pts := []ControlPoint{{X: 8, Y: 5, Z: 8}}
	pts = Augment(d, pts, 4)
	// Should not panic even though len(pts) < DefaultNumClosest.
	grid := Build(d, pts, DefaultNumClosest)
	if grid[8][8] != 5 {
		t.Errorf("T[8][8] = %v, want 5", grid[8][8])
	}
}
