package input

import "github.com/gdamore/tcell/v2"

// Translate converts a raw tcell event into an Action, or ActionNone if
// the event carries no semantic meaning for this program. It never
// touches the core packages directly — the caller wires the returned
// Action into water.Solver / the scenario index / the map index itself.
func Translate(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}

	switch key.Key() {
	case tcell.KeyCtrlP:
		return ActionTogglePause
	case tcell.KeyRight, tcell.KeyCtrlN:
		return ActionIncrementMap
	case tcell.KeyLeft, tcell.KeyCtrlB:
		return ActionDecrementMap
	case tcell.KeyTab:
		return ActionCycleScenario
	}

	if key.Key() == tcell.KeyRune {
		switch key.Rune() {
		case '1':
			return ActionToggleWireframe
		case 'p':
			return ActionTogglePause
		}
	}
	return ActionNone
}

// TranslateClick extracts a sandbox drop click from a raw tcell mouse
// event, reporting ok=false for anything but a primary-button press.
// gridX/gridZ are the already-resolved world-space hit coordinates;
// this adapter does not perform the camera-ray/terrain intersection
// itself — the core declares the interface but leaves the raycast to
// whatever owns the camera and terrain mesh.
func TranslateClick(ev tcell.Event, gridX, gridZ float64) (ClickEvent, bool) {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return ClickEvent{}, false
	}
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		return ClickEvent{}, false
	}
	return ClickEvent{X: gridX, Z: gridZ}, true
}
