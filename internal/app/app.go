// Package app ties the simulation to the frame loop: it owns the world, the random source and
// the pause state, and exposes them to the terminal as commands.
package app

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"sphere-sim/internal/logger"
	"sphere-sim/internal/physics"
	"sphere-sim/internal/simconfig"
)

// Display is the part of the renderer the commands can toggle.
type Display interface {
	SetShowFPS(show bool)
	SetShowStats(show bool)
	SetBoxVisible(visible bool)
}

// CaptureFunc grabs the current frame. It runs on the render goroutine.
type CaptureFunc func() image.Image

// App is driven once per frame by the render loop. Not safe for concurrent use.
type App struct {
	prefs      simconfig.Prefs
	configPath string
	log        *logger.Logger
	slog       *slog.Logger
	world      *physics.World
	rng        *rand.Rand
	paused     bool
	display    Display
	capture    CaptureFunc
	now        func() time.Time
}

// New builds an App from normalized prefs and spawns the initial spheres.
// display and capture may be nil (headless runs and tests).
func New(prefs simconfig.Prefs, configPath string, log *logger.Logger, display Display, capture CaptureFunc) *App {
	prefs = prefs.Normalize()
	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a := &App{
		prefs:      prefs,
		configPath: configPath,
		log:        log,
		slog:       log.Slog(),
		world:      physics.NewWorld(prefs.ParallelThreshold),
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		display:    display,
		capture:    capture,
		now:        time.Now,
	}
	a.slog.Info("simulator started", "seed", seed, "spheres", prefs.SphereCount)
	a.Spawn(prefs.SphereCount)
	a.applyDisplay()
	return a
}

func (a *App) applyDisplay() {
	if a.display == nil {
		return
	}
	a.display.SetShowFPS(a.prefs.ShowFPS)
	a.display.SetShowStats(a.prefs.ShowStats)
	a.display.SetBoxVisible(a.prefs.BoxVisible)
}

// World returns the simulated world.
func (a *App) World() *physics.World {
	return a.world
}

// Prefs returns the current preferences, including toggles changed at runtime.
func (a *App) Prefs() simconfig.Prefs {
	return a.prefs
}

// Paused reports whether Frame is currently skipping simulation steps.
func (a *App) Paused() bool {
	return a.paused
}

// TogglePause flips the pause state.
func (a *App) TogglePause() {
	a.paused = !a.paused
	a.slog.Info("pause", "paused", a.paused)
}

// Elapsed converts a frame duration in seconds into simulation time (ms with the default scale).
func (a *App) Elapsed(frameSeconds float32) float64 {
	return float64(frameSeconds) * a.prefs.TimeScale
}

// Frame advances the world by one rendered frame unless paused.
func (a *App) Frame(frameSeconds float32) {
	if a.paused || frameSeconds <= 0 {
		return
	}
	a.world.Step(a.Elapsed(frameSeconds))
}

// Spawn adds up to n random spheres without exceeding MaxBodies and returns how many were added.
func (a *App) Spawn(n int) int {
	room := a.prefs.MaxBodies - a.world.Len()
	if n > room {
		a.slog.Warn("spawn capped", "requested", n, "max_bodies", a.prefs.MaxBodies)
		n = room
	}
	if n <= 0 {
		return 0
	}
	a.world.Spawn(a.rng, n)
	a.slog.Info("spawned", "count", n, "bodies", a.world.Len())
	return n
}

// Clear removes every sphere.
func (a *App) Clear() {
	a.world.Clear()
	a.slog.Info("cleared")
}

// StatusLines formats world counters for the stats overlay.
func (a *App) StatusLines() []string {
	s := a.world.Stats()
	state := "running"
	if a.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Bodies: %d (%s)", a.world.Len(), state),
		fmt.Sprintf("Contacts: %d/frame, %d total", s.LastContacts, s.Contacts),
		fmt.Sprintf("Steps: %d", s.Steps),
	}
}
