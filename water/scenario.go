package water

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Scenario selects the source/sink regime applied before the flow step
// each tick.
type Scenario uint8

const (
	EvenRise Scenario = iota
	Wave
	Raining
	Drain
	Sandbox

	numScenarios
)

// ErrUnknownScenario is returned by SetScenario for an out-of-range id;
// the solver falls back to EvenRise and continues.
var ErrUnknownScenario = errors.New("unknown scenario")

// ScenarioCount returns the number of valid scenario ids, for callers
// that cycle through scenarios (e.g. the GOTO_MENU input action).
func ScenarioCount() int { return int(numScenarios) }

// String returns the human-readable scenario name.
func (s Scenario) String() string {
	switch s {
	case EvenRise:
		return "even rise"
	case Wave:
		return "wave"
	case Raining:
		return "raining"
	case Drain:
		return "drain"
	case Sandbox:
		return "sandbox"
	default:
		return fmt.Sprintf("scenario(%d)", uint8(s))
	}
}

// ScenarioByID converts a raw id into a Scenario, returning
// ErrUnknownScenario if out of range.
func ScenarioByID(id uint16) (Scenario, error) {
	if id >= uint16(numScenarios) {
		return EvenRise, fmt.Errorf("%w: id=%d", ErrUnknownScenario, id)
	}
	return Scenario(id), nil
}

const (
	evenRiseSpeed     = 1.5
	evenRisePorousCap = 5.0
	rainAmount        = 1.8
	rainInterval      = 80 * time.Millisecond
	rainProbability   = 0.08
	drainSpeed        = 1.5
	drainPorousH      = 5.0
	sandboxDropVolume = 10.0
)

// scenarioState holds per-scenario mutable state that must survive
// across ticks but gets reset on SetScenario (the rising water-table
// altitude, the rain timer).
type scenarioState struct {
	currentRiseH float64
	lastRain     time.Time
	rng          *rand.Rand
}

// resetFor applies scenario-specific initial conditions to a freshly
// allocated/reset grid.
func (st *scenarioState) resetFor(s Scenario, g *Grid, minH, maxH float64, now time.Time) {
	switch s {
	case Wave:
		// One-shot: the two rightmost columns are filled to depths 25/26.
		for v := 0; v < g.dc; v++ {
			g.cols[v][g.wc-1].Depth = 26.0
			g.cols[v][g.wc-2].Depth = 25.0
		}
	case EvenRise:
		st.currentRiseH = minH
	case Drain:
		for v := 0; v < g.dc; v++ {
			for u := 0; u < g.wc; u++ {
				g.cols[v][u].Depth = maxH + 2 - g.cols[v][u].TerrainH
			}
		}
	case Raining, Sandbox:
		// start empty
	}
	st.lastRain = now
}

// ClickEvent is a resolved world-space terrain hit used by the sandbox
// scenario. X and Z are world coordinates; the solver rounds them to
// the nearest column.
type ClickEvent struct {
	X, Z float64
}

// apply injects the scenario's source/sink term for this tick. now is
// wall-clock time, used by Raining's 80ms gate; click, if non-nil, is
// a pending sandbox left-click to apply this tick.
func (st *scenarioState) apply(s Scenario, g *Grid, dt float64, minH, maxH float64, now time.Time, gridSpaceX, gridSpaceZ float64, click *ClickEvent) {
	switch s {
	case EvenRise:
		maxPorousH := minFloat(st.currentRiseH, evenRisePorousCap)
		for v := 0; v < g.dc; v++ {
			for u := 0; u < g.wc; u++ {
				if g.cols[v][u].TerrainH <= maxPorousH {
					g.cols[v][u].Depth += evenRiseSpeed * dt
				}
			}
		}
		// The water table stops rising at twice the terrain's height
		// range; cells at or below it keep gaining depth every tick.
		maxRiseH := (maxH - minH) * 2.0
		if st.currentRiseH < maxRiseH {
			st.currentRiseH = minFloat(st.currentRiseH+evenRiseSpeed*dt, maxRiseH)
		}

	case Raining:
		if now.Sub(st.lastRain) > rainInterval {
			st.lastRain = now
			for v := 0; v < g.dc; v++ {
				for u := 0; u < g.wc; u++ {
					if st.rng.Float64() < rainProbability {
						g.cols[v][u].Depth += rainAmount * dt
					}
				}
			}
		}

	case Drain:
		for v := 0; v < g.dc; v++ {
			for u := 0; u < g.wc; u++ {
				if g.cols[v][u].TerrainH <= drainPorousH && g.cols[v][u].Depth > 0 {
					g.cols[v][u].Depth -= drainSpeed * dt
					if g.cols[v][u].Depth < 0 {
						g.cols[v][u].Depth = 0
					}
				}
			}
		}

	case Sandbox:
		if click != nil {
			u := int(math.Round(click.X / gridSpaceX))
			v := int(math.Round(click.Z / gridSpaceZ))
			if u >= 0 && u < g.wc && v >= 0 && v < g.dc {
				g.cols[v][u].Depth += sandboxDropVolume
			}
		}

	case Wave:
		// no continuous source after the one-shot reset
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
