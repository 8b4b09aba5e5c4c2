package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS    bool
	ShowStats  bool
	frameCount uint32
	fpsText    string
	statsText  []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS and heap counters are drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowStats sets whether simulation counters (bodies, wall contacts, steps) are drawn.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// Draw renders enabled overlays. stats is called for the simulation lines, and like the FPS
// text it is only re-read every updateInterval frames. Call after the scene and before the terminal.
func (d *Debug) Draw(stats func() []string) {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.fpsText == "" || d.ShowStats && d.statsText == nil {
		refresh = true
	}
	if refresh {
		if d.ShowFPS {
			runtime.ReadMemStats(&d.memStats)
			mb := float64(d.memStats.Alloc) / (1024 * 1024)
			d.fpsText = fmt.Sprintf("FPS: %d  Mem: %.2f MiB", rl.GetFPS(), mb)
		}
		if d.ShowStats {
			d.statsText = stats()
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	drawRight := func(text string) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowFPS && d.fpsText != "" {
		drawRight(d.fpsText)
	}
	if d.ShowStats {
		for _, line := range d.statsText {
			drawRight(line)
		}
	}
}
