// Package input defines the semantic actions the core accepts from an
// external input layer and a tcell-backed adapter that produces them
// from real terminal key/mouse events.
package input

// Action discriminates the semantic commands the core reacts to each
// frame, independent of whatever physical key or button produced them.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionIncrementMap
	ActionDecrementMap
	ActionCycleScenario
	ActionToggleWireframe
)

// String returns a human-readable action name, used in debug logging.
func (a Action) String() string {
	switch a {
	case ActionTogglePause:
		return "TogglePause"
	case ActionIncrementMap:
		return "IncrementMap"
	case ActionDecrementMap:
		return "DecrementMap"
	case ActionCycleScenario:
		return "CycleScenario"
	case ActionToggleWireframe:
		return "ToggleWireframe"
	default:
		return "None"
	}
}

// ClickEvent is a resolved world-space terrain hit, produced by
// binary-searching a camera ray against terrain height outside the
// core. The core only ever receives the already-resolved (X, Z); it
// never performs the raycast itself.
type ClickEvent struct {
	X, Z float64
}
