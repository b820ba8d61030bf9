package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mod1sim/mod1/config"
	"github.com/mod1sim/mod1/input"
	"github.com/mod1sim/mod1/mesh"
	"github.com/mod1sim/mod1/terrain"
	"github.com/mod1sim/mod1/water"
)

// session holds the live state driven by the interactive terminal view:
// the currently loaded map, the core's terrain/water/mesh stack, and the
// scene-level knobs (pause, scenario id, wireframe toggle) that §9
// says get passed into the tick rather than reached for through a
// back-pointer.
type session struct {
	screen tcell.Screen
	cfg    *config.Config

	mapPaths []string
	mapIdx   int

	store   *terrain.Store
	solver  *water.Solver
	surface *mesh.Surface
	skirt   *mesh.Skirt

	scenarioIdx uint16
	paused      bool
	wireframe   bool
}

// runInteractive opens a tcell screen and drives the given maps live,
// translating input events through the input package into pause,
// map-switch, scenario-cycle, and sandbox-click actions until the user
// quits.
func runInteractive(cfg *config.Config, mapPaths []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	s := &session{screen: screen, cfg: cfg, mapPaths: mapPaths}
	if err := s.loadMap(0); err != nil {
		return err
	}
	s.run()
	return nil
}

// loadMap (re)builds the terrain store and water/mesh stack for
// mapPaths[idx], preserving the current scenario selection across the
// switch the way §3's "lifecycle" describes: terrain is immutable per
// map, water columns are rebuilt on map and scenario change.
func (s *session) loadMap(idx int) error {
	store, _, err := loadTerrain(s.cfg, s.mapPaths[idx])
	if err != nil {
		return fmt.Errorf("%s: %w", s.mapPaths[idx], err)
	}

	s.store = store
	s.solver = water.NewSolver(store, time.Now().UnixNano())
	if err := s.solver.SetScenario(s.scenarioIdx, time.Now()); err != nil {
		log.Printf("%s: %v", s.mapPaths[idx], err)
	}
	s.surface = mesh.NewSurface(s.solver.Grid(), 1, 1)
	s.skirt = mesh.NewSkirt(s.solver.Grid(), 1, 1)
	s.mapIdx = idx
	return nil
}

// run is the frame/event loop: a ticker drives tick+mesh refresh at the
// configured rate while a goroutine-fed event channel delivers input in
// parallel, matching the teacher's own select-based game loop.
func (s *session) run() {
	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !s.paused {
				s.solver.Tick(s.cfg.TickInterval())
				s.surface.Refresh()
				s.skirt.Refresh()
			}
			s.draw()
		}
	}
}

// handleEvent applies one tcell event and reports whether the session
// should quit.
func (s *session) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		s.applyAction(input.Translate(ev))

	case *tcell.EventMouse:
		if s.solver.Scenario() == water.Sandbox {
			x, y := ev.Position()
			gx, gz := s.screenToGrid(x, y)
			if click, ok := input.TranslateClick(ev, gx, gz); ok {
				s.solver.Click(water.ClickEvent{X: click.X, Z: click.Z})
			}
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *session) applyAction(a input.Action) {
	switch a {
	case input.ActionTogglePause:
		s.paused = !s.paused
	case input.ActionIncrementMap:
		next := (s.mapIdx + 1) % len(s.mapPaths)
		if err := s.loadMap(next); err != nil {
			log.Printf("switch map: %v", err)
		}
	case input.ActionDecrementMap:
		next := (s.mapIdx - 1 + len(s.mapPaths)) % len(s.mapPaths)
		if err := s.loadMap(next); err != nil {
			log.Printf("switch map: %v", err)
		}
	case input.ActionCycleScenario:
		s.scenarioIdx = uint16((int(s.scenarioIdx) + 1) % water.ScenarioCount())
		if err := s.solver.SetScenario(s.scenarioIdx, time.Now()); err != nil {
			log.Printf("set scenario: %v", err)
		}
	case input.ActionToggleWireframe:
		s.wireframe = !s.wireframe
	}
}

// screenToGrid maps a terminal cell coordinate to the same world-space
// (x, z) the mouse-raycast external collaborator would resolve in a
// real 3D frontend, scaled from screen size to the terrain box. The
// core never performs the raycast itself (§6); this is the terminal
// view's own stand-in for it.
func (s *session) screenToGrid(sx, sy int) (float64, float64) {
	screenW, screenH := s.screen.Size()
	rows := screenH - 1 // last row reserved for the status line
	if rows < 1 {
		rows = 1
	}
	d := s.store.Dims()
	gx := float64(sx) / float64(screenW) * float64(d.W)
	gz := float64(sy) / float64(rows) * float64(d.D)
	return gx, gz
}

// draw renders a top-down ASCII depth view of the current water grid
// plus a status line. This is not the renderer spec §6 describes
// (that's an external OpenGL collaborator consuming mesh's vertex
// buffers) — it's the terminal program's own minimal stand-in so the
// interactive mode is watchable without one.
func (s *session) draw() {
	screenW, screenH := s.screen.Size()
	rows := screenH - 1
	if rows < 1 {
		rows = 1
	}

	g := s.solver.Grid()
	wc, dc := g.Wc(), g.Dc()

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < screenW; sx++ {
			u := sx * wc / screenW
			v := sy * dc / rows
			if u >= wc {
				u = wc - 1
			}
			if v >= dc {
				v = dc - 1
			}
			ch, style := cellGlyph(g.At(u, v), s.wireframe)
			s.screen.SetContent(sx, sy, ch, nil, style)
		}
	}

	status := fmt.Sprintf(
		"map %d/%d  scenario:%s  %s  [tab]scenario [<-/->]map [p]pause [1]wireframe [esc]quit",
		s.mapIdx+1, len(s.mapPaths), s.solver.Scenario(), pauseLabel(s.paused))
	for i, r := range status {
		if i >= screenW {
			break
		}
		s.screen.SetContent(i, rows, r, nil, tcell.StyleDefault)
	}
	s.screen.Show()
}

func pauseLabel(paused bool) string {
	if paused {
		return "[paused]"
	}
	return "[running]"
}

// cellGlyph picks a depth-banded glyph for one water column, matching
// the fade-by-depth intent of the mesh package's visibility rule
// without reproducing its exact threshold.
func cellGlyph(col water.Column, wireframe bool) (rune, tcell.Style) {
	if wireframe {
		return '+', tcell.StyleDefault
	}
	switch {
	case col.Depth <= 0:
		return ' ', tcell.StyleDefault
	case col.Depth < 0.5:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case col.Depth < 2:
		return '~', tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case col.Depth < 5:
		return '≈', tcell.StyleDefault.Foreground(tcell.ColorNavy)
	default:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	}
}
