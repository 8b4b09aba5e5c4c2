package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"sphere-sim/internal/commands"
	"sphere-sim/internal/physics"
	"sphere-sim/internal/screenshot"
	"sphere-sim/internal/simconfig"
)

// DefaultStatePath is used by save/load when -file is not given.
const DefaultStatePath = "states/last.yaml"

var errNoCapture = errors.New("screenshots are not available")

// RegisterCommands adds the simulator's terminal commands to reg.
func (a *App) RegisterCommands(reg *commands.Registry) {
	reg.Register("help", "list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, line := range reg.Help() {
				a.log.Log("  " + line)
			}
			return nil
		}
	})

	reg.Register("spawn", "spawn -n N: add N random spheres", func(fs *flag.FlagSet) func() error {
		n := fs.Int("n", 1, "number of spheres")
		return func() error {
			if *n < 1 {
				return fmt.Errorf("spawn: -n must be >= 1, got %d", *n)
			}
			added := a.Spawn(*n)
			a.log.Log(fmt.Sprintf("spawned %d, %d bodies", added, a.world.Len()))
			return nil
		}
	})

	reg.Register("clear", "remove every sphere", func(fs *flag.FlagSet) func() error {
		return func() error {
			a.Clear()
			return nil
		}
	})

	reg.Register("pause", "toggle the simulation clock", func(fs *flag.FlagSet) func() error {
		return func() error {
			a.TogglePause()
			return nil
		}
	})

	a.registerToggle(reg, "fps", "fps -on=BOOL: FPS and heap overlay", func() *bool { return &a.prefs.ShowFPS }, func(on bool) {
		if a.display != nil {
			a.display.SetShowFPS(on)
		}
	})
	a.registerToggle(reg, "stats", "stats -on=BOOL: body and contact counters", func() *bool { return &a.prefs.ShowStats }, func(on bool) {
		if a.display != nil {
			a.display.SetShowStats(on)
		}
	})
	a.registerToggle(reg, "box", "box -on=BOOL: box wireframe", func() *bool { return &a.prefs.BoxVisible }, func(on bool) {
		if a.display != nil {
			a.display.SetBoxVisible(on)
		}
	})

	reg.Register("save", "save -file PATH: write sphere state as YAML", func(fs *flag.FlagSet) func() error {
		path := fs.String("file", DefaultStatePath, "state file")
		return func() error {
			snap, err := a.world.Snapshot()
			if err != nil {
				return err
			}
			if err := physics.SaveState(*path, snap); err != nil {
				return err
			}
			a.log.Log(fmt.Sprintf("saved %d bodies to %s", len(snap), *path))
			return nil
		}
	})

	reg.Register("load", "load -file PATH: replace spheres with saved state", func(fs *flag.FlagSet) func() error {
		path := fs.String("file", DefaultStatePath, "state file")
		return func() error {
			bodies, err := physics.LoadState(*path)
			if err != nil {
				return err
			}
			if len(bodies) > a.prefs.MaxBodies {
				return fmt.Errorf("load: %d bodies exceeds max_bodies %d", len(bodies), a.prefs.MaxBodies)
			}
			if err := a.world.Restore(bodies); err != nil {
				return fmt.Errorf("load: %w", err)
			}
			a.log.Log(fmt.Sprintf("loaded %d bodies from %s", len(bodies), *path))
			return nil
		}
	})

	reg.Register("screenshot", "screenshot -dir DIR -scale S: save the frame as PNG", func(fs *flag.FlagSet) func() error {
		dir := fs.String("dir", screenshot.DefaultDir, "output directory")
		scale := fs.Float64("scale", 1, "downscale factor in (0, 1]")
		return func() error {
			if a.capture == nil {
				return errNoCapture
			}
			img := a.capture()
			if img == nil {
				return errNoCapture
			}
			path, err := screenshot.Save(*dir, img, *scale, a.now())
			if err != nil {
				return err
			}
			a.log.Log("wrote " + path)
			return nil
		}
	})

	reg.Register("config-save", "config-save: persist current settings", func(fs *flag.FlagSet) func() error {
		return func() error {
			p := a.prefs
			p.SphereCount = min(a.world.Len(), p.MaxBodies)
			if err := simconfig.Save(a.configPath, p); err != nil {
				return fmt.Errorf("config-save: %w", err)
			}
			a.log.Log("saved settings to " + a.configPath)
			return nil
		}
	})
}

// registerToggle adds a command with a single -on flag. Without -on the value is flipped.
func (a *App) registerToggle(reg *commands.Registry, name, usage string, field func() *bool, apply func(bool)) {
	reg.Register(name, usage, func(fs *flag.FlagSet) func() error {
		on := fs.String("on", "", "true or false; empty flips the current value")
		return func() error {
			v := field()
			switch strings.ToLower(*on) {
			case "":
				*v = !*v
			case "true", "1", "yes":
				*v = true
			case "false", "0", "no":
				*v = false
			default:
				return fmt.Errorf("%s: -on must be true or false, got %q", name, *on)
			}
			apply(*v)
			a.log.Log(fmt.Sprintf("%s: %t", name, *v))
			return nil
		}
	})
}
