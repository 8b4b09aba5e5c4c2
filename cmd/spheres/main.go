package main

import (
	"image"

	"sphere-sim/internal/app"
	"sphere-sim/internal/commands"
	"sphere-sim/internal/debug"
	"sphere-sim/internal/env"
	"sphere-sim/internal/graphics"
	"sphere-sim/internal/logger"
	"sphere-sim/internal/scene"
	"sphere-sim/internal/simconfig"
	"sphere-sim/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// display routes overlay toggles to the debug overlay and the scene.
type display struct {
	dbg *debug.Debug
	scn *scene.Scene
}

func (d display) SetShowFPS(show bool)       { d.dbg.SetShowFPS(show) }
func (d display) SetShowStats(show bool)     { d.dbg.SetShowStats(show) }
func (d display) SetBoxVisible(visible bool) { d.scn.SetBoxVisible(visible) }

func captureScreen() image.Image {
	img := rl.LoadImageFromScreen()
	if img == nil {
		return nil
	}
	defer rl.UnloadImage(img)
	return img.ToImage()
}

func main() {
	log := logger.New(logger.DefaultPath)
	if err := env.Load(".env"); err != nil {
		log.Log("env: " + err.Error())
	}
	configPath := simconfig.PathFromEnv()
	prefs, err := simconfig.Load(configPath)
	if err != nil {
		log.Log(err.Error())
	}
	if prefs, err = simconfig.ApplyEnv(prefs); err != nil {
		log.Log(err.Error())
	}

	scn := scene.New()
	dbg := debug.New()
	sim := app.New(prefs, configPath, log, display{dbg: dbg, scn: scn}, captureScreen)
	reg := commands.NewRegistry()
	sim.RegisterCommands(reg)
	term := terminal.New(log, reg)

	update := func(frameSeconds float32) {
		term.Update()
		if !term.IsOpen() {
			handleKeys(sim)
			scn.Update(frameSeconds)
		}
		sim.Frame(frameSeconds)
	}
	draw := func() {
		scn.Draw(sim.World().Bodies())
		dbg.Draw(sim.StatusLines)
		term.Draw()
	}

	p := sim.Prefs()
	graphics.Run(graphics.Options{
		Title:     p.WindowTitle,
		TargetFPS: int32(p.TargetFPS),
		OnClose:   scn.Unload,
	}, update, draw)
	stats := sim.World().Stats()
	log.Slog().Info("simulator stopped", "steps", stats.Steps, "contacts", stats.Contacts)
}

// handleKeys maps the single-key controls: N spawns a sphere, R removes all, P pauses.
func handleKeys(sim *app.App) {
	if rl.IsKeyPressed(rl.KeyN) {
		sim.Spawn(1)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		sim.Clear()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		sim.TogglePause()
	}
}
