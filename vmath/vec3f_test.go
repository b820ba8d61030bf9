package vmath

import (
	"math"
	"testing"
)

func TestV3FNormalizeZero(t *testing.T) {
	v := V3FNormalize(Vec3F{})
	if v != (Vec3F{}) {
		t.Errorf("expected zero vector, got %+v", v)
	}
}

func TestV3FNormalizeUnit(t *testing.T) {
	v := V3FNormalize(Vec3F{X: 3, Y: 0, Z: 4})
	if math.Abs(V3FMag(v)-1.0) > 1e-9 {
		t.Errorf("expected unit magnitude, got %v", V3FMag(v))
	}
}

func TestV3FCrossOrthogonal(t *testing.T) {
	x := Vec3F{X: 1}
	y := Vec3F{Y: 1}
	z := V3FCross(x, y)
	if z != (Vec3F{Z: 1}) {
		t.Errorf("expected (0,0,1), got %+v", z)
	}
}

func TestV3FAddSub(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}
	sum := V3FAdd(a, b)
	if sum != (Vec3F{5, 7, 9}) {
		t.Errorf("unexpected sum %+v", sum)
	}
	if V3FSub(sum, b) != a {
		t.Errorf("sub did not invert add")
	}
}
