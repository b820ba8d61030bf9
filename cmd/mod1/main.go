// Command mod1 loads one or more .mod1 map files and synthesizes their
// terrain. By default it runs a fixed-length demo tick sequence per map
// and prints a summary. With -i/--interactive it instead opens a tcell
// terminal screen and drives the simulation live: a frame ticker calls
// solver.Tick/mesh.Refresh each period, and a polled event channel feeds
// key/mouse events through the input package into pause, map-index,
// scenario, and sandbox-click actions. mod1 has no 3D graphical renderer
// of its own — the vertex buffers mesh produces are what an OpenGL
// frontend would upload; the interactive mode's own terminal drawing is
// a plain top-down ASCII depth view, not that renderer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mod1sim/mod1/config"
	"github.com/mod1sim/mod1/mapfile"
	"github.com/mod1sim/mod1/mesh"
	"github.com/mod1sim/mod1/terrain"
	"github.com/mod1sim/mod1/water"
)

const (
	logDir      = "logs"
	logFileName = "mod1.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB

	demoTicks = 200
	demoDt    = 16 * time.Millisecond
)

const usageText = `usage: mod1 [-u] [-i] <map1.mod1> [map2.mod1 ...]

Each map argument is a JSON .mod1 file describing terrain control
points. By default, for every map mod1 synthesizes the heightfield,
runs the water solver through a short demo sequence, and prints a
summary.

With -i/--interactive, mod1 instead opens a terminal screen and runs
the maps live: ctrl-p/p pauses, left/right (or ctrl-b/ctrl-n) cycles
the loaded map, tab cycles the scenario, '1' toggles wireframe, and in
the sandbox scenario a left click drops water at the clicked cell.
Escape or ctrl-c quits.

  -u, --usage         print this message and exit
  -i, --interactive   run the interactive terminal view instead of the demo
`

// setupLogging configures log output based on the debug flag; logging
// is disabled entirely unless -debug is set, matching the pattern of
// keeping stdout free for the CLI's own summary output. -debug also
// flips terrain.Debug, turning internal GridOutOfRange bugs from a
// logged-and-ignored condition into a panic (§7).
func setupLogging(debug bool) *os.File {
	terrain.Debug = debug
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		timestamp := time.Now().Format("2006-01-02-15-04-05")
		rotated := filepath.Join(logDir, fmt.Sprintf("mod1-%s.log", timestamp))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== mod1 started ===")
	return logFile
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mod1", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we print our own usage text
	usage := fs.Bool("u", false, "print usage and exit")
	fs.BoolVar(usage, "usage", false, "print usage and exit")
	interactive := fs.Bool("i", false, "run the interactive terminal view")
	fs.BoolVar(interactive, "interactive", false, "run the interactive terminal view")
	debug := fs.Bool("debug", false, "enable debug logging to file")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, usageText)
		return 1
	}
	if *usage {
		fmt.Fprint(os.Stdout, usageText)
		return 1
	}

	maps := fs.Args()
	if len(maps) == 0 {
		fmt.Fprintln(os.Stderr, "mod1: at least one .mod1 map is required")
		fmt.Fprint(os.Stderr, usageText)
		return 1
	}

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()

	if *interactive {
		if err := runInteractive(cfg, maps); err != nil {
			fmt.Fprintf(os.Stderr, "mod1: %v\n", err)
			log.Printf("interactive session failed: %v", err)
			return 1
		}
		return 0
	}

	for _, mapPath := range maps {
		if err := runMap(cfg, mapPath); err != nil {
			fmt.Fprintf(os.Stderr, "mod1: %s: %v\n", mapPath, err)
			log.Printf("map %s failed: %v", mapPath, err)
			return 1
		}
	}
	return 0
}

// loadTerrain reads and validates one .mod1 map file into a terrain
// store, shared by both the demo loop and the interactive session.
func loadTerrain(cfg *config.Config, mapPath string) (*terrain.Store, []terrain.ControlPoint, error) {
	raw, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read map: %w", err)
	}

	d := terrain.Dims{W: cfg.GridWidth, H: cfg.GridHeight, D: cfg.GridDepth, Ground: cfg.Ground}
	points, duplicates, err := mapfile.Load(raw, d, cfg.RimStride)
	if err != nil {
		return nil, nil, err
	}
	if duplicates > 0 {
		log.Printf("%s: skipped %d duplicate point(s)", mapPath, duplicates)
	}

	store := terrain.NewStore(d, points, cfg.NumClosest)
	return store, points, nil
}

func runMap(cfg *config.Config, mapPath string) error {
	store, points, err := loadTerrain(cfg, mapPath)
	if err != nil {
		return err
	}
	terrainBuf := mesh.BuildTerrain(store)

	solver := water.NewSolver(store, time.Now().UnixNano())
	if err := solver.SetScenario(uint16(water.EvenRise), time.Now()); err != nil {
		log.Printf("%s: %v", mapPath, err)
	}

	surface := mesh.NewSurface(solver.Grid(), 1, 1)
	skirt := mesh.NewSkirt(solver.Grid(), 1, 1)

	startVolume := solver.Grid().TotalVolume(1)
	for i := 0; i < demoTicks; i++ {
		solver.Tick(demoDt)
		surface.Refresh()
		skirt.Refresh()
	}
	endVolume := solver.Grid().TotalVolume(1)

	fmt.Printf("%s: %s\n", mapPath, filepath.Base(mapPath))
	fmt.Printf("  control points: %d (user+rim)\n", len(points))
	fmt.Printf("  terrain height: min=%.2f max=%.2f\n", store.MinHeight(), store.MaxHeight())
	fmt.Printf("  scenario: %s\n", solver.Scenario())
	fmt.Printf("  water volume: start=%.2f end=%.2f (%d ticks)\n", startVolume, endVolume, demoTicks)
	fmt.Printf("  surface vertices: %d  skirt vertices: %d  terrain vertices: %d\n",
		len(surface.Buffer().Vertices), len(skirt.Buffer().Vertices), len(terrainBuf.Vertices))
	return nil
}
