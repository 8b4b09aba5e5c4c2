package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window opened by Run.
type Options struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
	// OnClose runs while the GL context still exists, before the window closes.
	OnClose func()
}

// Run opens the window and drives the main loop. Each frame it calls update with the time in
// seconds since the previous frame, then clears the screen and calls draw.
// ESC is left to the terminal; the window closes via its close button.
func Run(opts Options, update func(frameSeconds float32), draw func()) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(opts.TargetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
