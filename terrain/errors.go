package terrain

import "errors"

// Map loading and grid-indexing error kinds. ErrMapParse,
// ErrMapPointsOverflow and ErrMapPointsMissing are fatal for the map
// being loaded; ErrGridOutOfRange indicates a bug in index computation
// and is shared by any package indexing into a terrain-shaped grid
// (currently water.Grid's bounds-checked At accessor).
var (
	ErrMapParse          = errors.New("map parse error")
	ErrMapPointsOverflow = errors.New("map points overflow")
	ErrMapPointsMissing  = errors.New("map points missing")
	ErrGridOutOfRange    = errors.New("grid index out of range")
)

// Debug toggles strict internal bounds checking (§7): when true,
// GridOutOfRange conditions panic instead of being logged and ignored.
// Set from cmd/mod1's -debug flag; false (release behavior) by default.
var Debug = false
