package water

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mod1sim/mod1/terrain"
)

// gravity is the pipe-flow acceleration constant. gridSpaceX/Z give
// the world distance between adjacent column centers; pipeLenX/Z are
// the corresponding pipe lengths used in the flow-rate denominator.
// All four default to 1 unit per cell, matching a terrain grid with
// unit spacing.
const gravity = 9.81

// Solver owns one water grid and advances it scenario-by-scenario,
// tick-by-tick. It is single-threaded and non-reentrant: Tick must not
// be called concurrently with itself or with SetScenario.
type Solver struct {
	grid     *Grid
	terrain  terrain.View
	scenario Scenario
	state    scenarioState

	gridSpaceX, gridSpaceZ float64
	pipeLenX, pipeLenZ     float64
	gridArea               float64

	pendingClick *ClickEvent
}

// NewSolver builds a solver over the given terrain, defaulting to unit
// grid spacing (one world unit per column edge) and seeding the rain
// RNG from seed so scenario replay is deterministic in tests.
func NewSolver(t terrain.View, seed int64) *Solver {
	g := NewGrid(t)
	const gridSpace = 1.0
	s := &Solver{
		grid:       g,
		terrain:    t,
		gridSpaceX: gridSpace,
		gridSpaceZ: gridSpace,
		// Pipe length equals the center-to-center spacing.
		pipeLenX: gridSpace,
		pipeLenZ: gridSpace,
		gridArea: gridSpace * gridSpace,
		state:    scenarioState{rng: rand.New(rand.NewSource(seed))},
	}
	s.state.resetFor(EvenRise, g, t.MinHeight(), t.MaxHeight(), time.Time{})
	return s
}

// Grid exposes the underlying column grid for mesh refresh and tests.
func (s *Solver) Grid() *Grid { return s.grid }

// Scenario returns the currently active scenario.
func (s *Solver) Scenario() Scenario { return s.scenario }

// SetScenario resets the grid and applies the chosen scenario's initial
// conditions. An unknown id falls back to EvenRise and returns
// ErrUnknownScenario; the grid is still reset in that case so the
// caller's state is never left half-applied.
func (s *Solver) SetScenario(id uint16, now time.Time) error {
	sc, err := ScenarioByID(id)
	s.grid.Reset()
	s.scenario = sc
	s.state.resetFor(sc, s.grid, s.terrain.MinHeight(), s.terrain.MaxHeight(), now)
	if err != nil {
		return fmt.Errorf("set scenario: %w", err)
	}
	return nil
}

// Click queues a sandbox water-drop click to be applied on the next
// Tick. Only meaningful while Scenario() == Sandbox; ignored otherwise.
func (s *Solver) Click(ev ClickEvent) {
	s.pendingClick = &ev
}

// Tick advances the simulation by dt seconds, running the scenario
// source/sink pass, flow update, negative-depth correction, and depth
// update in that fixed order. Mesh refresh is the caller's
// responsibility once Tick returns.
func (s *Solver) Tick(dt time.Duration) {
	dtf := dt.Seconds()
	now := time.Now()

	var click *ClickEvent
	if s.scenario == Sandbox {
		click = s.pendingClick
	}
	s.pendingClick = nil

	s.state.apply(s.scenario, s.grid, dtf, s.terrain.MinHeight(), s.terrain.MaxHeight(), now, s.gridSpaceX, s.gridSpaceZ, click)
	s.updateFlow(dtf)
	s.correctNegativeDepth(dtf)
	s.updateDepth(dtf)
}
