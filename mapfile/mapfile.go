// Package mapfile decodes the JSON ".mod1" map format into validated
// terrain control points.
package mapfile

import (
	"encoding/json"
	"fmt"

	"github.com/mod1sim/mod1/terrain"
)

// coord is the on-disk shape of one control point: {"x":.., "y":.., "z":..}.
type coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// document is the on-disk shape of a whole .mod1 file: a single "map"
// key holding the point list.
type document struct {
	Map []coord `json:"map"`
}

// Load decodes raw into a validated, rim-augmented control point list
// ready for terrain.Build. duplicates reports how many exact-duplicate
// points were dropped and skipped rather than treated as a hard
// failure.
func Load(raw []byte, d terrain.Dims, rimStride int) (points []terrain.ControlPoint, duplicates int, err error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", terrain.ErrMapParse, err)
	}

	userPts := make([]terrain.ControlPoint, len(doc.Map))
	for i, c := range doc.Map {
		userPts[i] = terrain.ControlPoint{X: c.X, Y: c.Y, Z: c.Z}
	}

	unique, dup, err := terrain.ValidatePoints(d, userPts)
	if err != nil {
		return nil, 0, fmt.Errorf("validate map points: %w", err)
	}

	return terrain.Augment(d, unique, rimStride), dup, nil
}
