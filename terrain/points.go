// Package terrain builds and stores the dense heightfield synthesized
// from a small set of user control points via inverse distance weighting.
package terrain

import "fmt"

// Default box and sampling parameters.
const (
	DefaultWidth  = 64 // W
	DefaultHeight = 64 // H
	DefaultDepth  = 64 // D
	DefaultGround = 24 // G, ground slab depth below altitude zero

	DefaultRimStride  = 8  // S, stride between synthetic rim points
	DefaultNumClosest = 16 // k, IDW neighbor count
	MaxUserPoints     = 50
)

// ControlPoint is a single elevation sample at an integer (x, z) grid
// location. Points carry no identity; two points with the same (x, z)
// and y are considered duplicates.
type ControlPoint struct {
	X, Y, Z int
}

// Dims describes the fixed simulation box.
type Dims struct {
	W, H, D int
	Ground  int
}

// DefaultDims returns the standard box dimensions.
func DefaultDims() Dims {
	return Dims{W: DefaultWidth, H: DefaultHeight, D: DefaultDepth, Ground: DefaultGround}
}

// ValidateUserPoint checks a single user-supplied control point against
// the box's range invariants. It does not check for duplicates or the
// 50-point cap; callers validate the whole set with ValidatePoints.
func (d Dims) ValidateUserPoint(p ControlPoint) error {
	if p.X < 1 || p.X > d.W-1 {
		return fmt.Errorf("%w: x=%d out of [1,%d]", ErrMapParse, p.X, d.W-1)
	}
	if p.Z < 1 || p.Z > d.D-1 {
		return fmt.Errorf("%w: z=%d out of [1,%d]", ErrMapParse, p.Z, d.D-1)
	}
	if p.Y < -d.Ground || p.Y > d.H-d.Ground {
		return fmt.Errorf("%w: y=%d out of [%d,%d]", ErrMapParse, p.Y, -d.Ground, d.H-d.Ground)
	}
	return nil
}

// dedupe returns pts with exact duplicates removed, preserving order of
// first occurrence, along with the number of duplicates dropped.
func dedupe(pts []ControlPoint) ([]ControlPoint, int) {
	seen := make(map[ControlPoint]struct{}, len(pts))
	out := make([]ControlPoint, 0, len(pts))
	dropped := 0
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			dropped++
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, dropped
}

// ValidatePoints checks a parsed user point set: non-empty, at most
// MaxUserPoints, each within range. Duplicates are tolerated (dropped)
// but reported via the returned count.
func ValidatePoints(d Dims, pts []ControlPoint) (unique []ControlPoint, duplicates int, err error) {
	if len(pts) == 0 {
		return nil, 0, ErrMapPointsMissing
	}
	unique, duplicates = dedupe(pts)
	if len(unique) > MaxUserPoints {
		return nil, duplicates, fmt.Errorf("%w: %d points, max %d", ErrMapPointsOverflow, len(unique), MaxUserPoints)
	}
	for _, p := range unique {
		if err := d.ValidateUserPoint(p); err != nil {
			return nil, duplicates, err
		}
	}
	return unique, duplicates, nil
}

// rimPoints returns the synthetic perimeter points that pin the
// boundary altitude to zero: (kS, 0, 0), (kS, 0, D-1), (0, 0, kS),
// (W-1, 0, kS) for k = 0, 1, ... with stride S.
func rimPoints(d Dims, stride int) []ControlPoint {
	var pts []ControlPoint
	for x := 0; x < d.W; x += stride {
		pts = append(pts, ControlPoint{X: x, Y: 0, Z: 0})
		pts = append(pts, ControlPoint{X: x, Y: 0, Z: d.D - 1})
	}
	for z := 0; z < d.D; z += stride {
		pts = append(pts, ControlPoint{X: 0, Y: 0, Z: z})
		pts = append(pts, ControlPoint{X: d.W - 1, Y: 0, Z: z})
	}
	return pts
}

// Augment returns the user point set augmented with synthetic rim
// points at the given stride, deduplicated.
func Augment(d Dims, userPts []ControlPoint, stride int) []ControlPoint {
	all := make([]ControlPoint, 0, len(userPts)+4*(d.W/stride+1))
	all = append(all, userPts...)
	all = append(all, rimPoints(d, stride)...)
	unique, _ := dedupe(all)
	return unique
}
