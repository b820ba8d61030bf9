package terrain

import (
	"errors"
	"testing"
)

func TestValidatePointsEmpty(t *testing.T) {
	_, _, err := ValidatePoints(DefaultDims(), nil)
	if !errors.Is(err, ErrMapPointsMissing) {
		t.Fatalf("expected ErrMapPointsMissing, got %v", err)
	}
}

func TestValidatePointsOverflow(t *testing.T) {
	d := DefaultDims()
	pts := make([]ControlPoint, MaxUserPoints+1)
	for i := range pts {
		pts[i] = ControlPoint{X: 1 + i%60, Y: 0, Z: 1}
	}
	_, _, err := ValidatePoints(d, pts)
	if !errors.Is(err, ErrMapPointsOverflow) {
		t.Fatalf("expected ErrMapPointsOverflow, got %v", err)
	}
}

func TestValidatePointsDuplicatesReported(t *testing.T) {
	d := DefaultDims()
	pts := []ControlPoint{
		{X: 5, Y: 1, Z: 5},
		{X: 5, Y: 1, Z: 5},
		{X: 10, Y: 2, Z: 10},
	}
	unique, dup, err := ValidatePoints(d, pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup != 1 {
		t.Errorf("expected 1 duplicate, got %d", dup)
	}
	if len(unique) != 2 {
		t.Errorf("expected 2 unique points, got %d", len(unique))
	}
}

func TestValidatePointsOutOfRange(t *testing.T) {
	d := DefaultDims()
	cases := []ControlPoint{
		{X: 0, Y: 0, Z: 5},       // x too small
		{X: d.W, Y: 0, Z: 5},     // x too large
		{X: 5, Y: 0, Z: 0},       // z too small
		{X: 5, Y: 0, Z: d.D},     // z too large
		{X: 5, Y: -d.Ground - 1, Z: 5},
		{X: 5, Y: d.H - d.Ground + 1, Z: 5},
	}
	for _, p := range cases {
		if _, _, err := ValidatePoints(d, []ControlPoint{p}); err == nil {
			t.Errorf("expected error for point %+v", p)
		}
	}
}

func TestAugmentPinsRim(t *testing.T) {
	d := Dims{W: 32, H: 32, D: 32, Ground: 8}
	pts := Augment(d, []ControlPoint{{X: 16, Y: 5, Z: 16}}, 8)

	foundCorner := false
	for _, p := range pts {
		if p.X == 0 && p.Z == 0 {
			foundCorner = true
			if p.Y != 0 {
				t.Errorf("rim point has non-zero height: %+v", p)
			}
		}
	}
	if !foundCorner {
		t.Fatal("expected a rim point at (0,0)")
	}
}
