package app

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sphere-sim/internal/commands"
	"sphere-sim/internal/logger"
	"sphere-sim/internal/simconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDisplay struct {
	fps, stats, box bool
}

func (d *fakeDisplay) SetShowFPS(show bool)       { d.fps = show }
func (d *fakeDisplay) SetShowStats(show bool)     { d.stats = show }
func (d *fakeDisplay) SetBoxVisible(visible bool) { d.box = visible }

func newTestApp(t *testing.T, capture CaptureFunc) (*App, *fakeDisplay, *commands.Registry) {
	t.Helper()
	prefs := simconfig.Default()
	prefs.Seed = 17
	prefs.SphereCount = 5
	prefs.MaxBodies = 8
	d := &fakeDisplay{}
	a := New(prefs, filepath.Join(t.TempDir(), "config", "sim.yaml"), logger.New(""), d, capture)
	reg := commands.NewRegistry()
	a.RegisterCommands(reg)
	return a, d, reg
}

func TestNewSpawnsAndAppliesDisplay(t *testing.T) {
	a, d, _ := newTestApp(t, nil)
	assert.Equal(t, 5, a.World().Len())
	assert.True(t, d.box)
	assert.False(t, d.fps)
	assert.False(t, d.stats)
}

func TestSpawnCapped(t *testing.T) {
	a, _, _ := newTestApp(t, nil)
	assert.Equal(t, 3, a.Spawn(10))
	assert.Equal(t, 8, a.World().Len())
	assert.Zero(t, a.Spawn(1))
}

func TestFrameRespectsPauseAndScale(t *testing.T) {
	a, _, _ := newTestApp(t, nil)
	assert.InDelta(t, 16.0, a.Elapsed(0.016), 1e-4)

	a.Frame(0.016)
	assert.Equal(t, uint64(1), a.World().Stats().Steps)

	a.TogglePause()
	a.Frame(0.016)
	assert.Equal(t, uint64(1), a.World().Stats().Steps)

	a.TogglePause()
	a.Frame(0)
	assert.Equal(t, uint64(1), a.World().Stats().Steps)
}

func TestSpawnAndClearCommands(t *testing.T) {
	a, _, reg := newTestApp(t, nil)

	require.NoError(t, reg.Execute([]string{"spawn", "-n", "2"}))
	assert.Equal(t, 7, a.World().Len())
	assert.Error(t, reg.Execute([]string{"spawn", "-n", "0"}))

	require.NoError(t, reg.Execute([]string{"clear"}))
	assert.Zero(t, a.World().Len())

	require.NoError(t, reg.Execute([]string{"pause"}))
	assert.True(t, a.Paused())
}

func TestToggleCommands(t *testing.T) {
	a, d, reg := newTestApp(t, nil)

	require.NoError(t, reg.Execute([]string{"fps"}))
	assert.True(t, d.fps)
	assert.True(t, a.Prefs().ShowFPS)

	require.NoError(t, reg.Execute([]string{"fps", "-on", "false"}))
	assert.False(t, d.fps)

	require.NoError(t, reg.Execute([]string{"stats", "-on=true"}))
	assert.True(t, d.stats)

	require.NoError(t, reg.Execute([]string{"box"}))
	assert.False(t, d.box)

	assert.Error(t, reg.Execute([]string{"box", "-on", "maybe"}))
}

func TestSaveLoadCommands(t *testing.T) {
	a, _, reg := newTestApp(t, nil)
	path := filepath.Join(t.TempDir(), "state.yaml")
	before, err := a.World().Snapshot()
	require.NoError(t, err)

	require.NoError(t, reg.Execute([]string{"save", "-file", path}))
	require.NoError(t, reg.Execute([]string{"clear"}))
	require.NoError(t, reg.Execute([]string{"load", "-file", path}))

	after, err := a.World().Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Error(t, reg.Execute([]string{"load", "-file", filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestScreenshotCommand(t *testing.T) {
	_, _, reg := newTestApp(t, nil)
	assert.ErrorIs(t, reg.Execute([]string{"screenshot"}), errNoCapture)

	a, _, reg := newTestApp(t, func() image.Image {
		return image.NewRGBA(image.Rect(0, 0, 8, 8))
	})
	a.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	dir := t.TempDir()

	require.NoError(t, reg.Execute([]string{"screenshot", "-dir", dir}))
	_, err := os.Stat(filepath.Join(dir, "spheres-20240102-030405.000.png"))
	assert.NoError(t, err)
}

func TestConfigSaveCommand(t *testing.T) {
	a, _, reg := newTestApp(t, nil)
	require.NoError(t, reg.Execute([]string{"spawn", "-n", "1"}))
	require.NoError(t, reg.Execute([]string{"stats"}))

	require.NoError(t, reg.Execute([]string{"config-save"}))

	p, err := simconfig.Load(a.configPath)
	require.NoError(t, err)
	assert.Equal(t, 6, p.SphereCount)
	assert.True(t, p.ShowStats)
	assert.Equal(t, uint64(17), p.Seed)
}

func TestHelpCommandLogs(t *testing.T) {
	a, _, reg := newTestApp(t, nil)
	before := len(a.log.Lines())
	require.NoError(t, reg.Execute([]string{"help"}))
	assert.Greater(t, len(a.log.Lines()), before+5)
}

func TestStatusLines(t *testing.T) {
	a, _, _ := newTestApp(t, nil)
	a.Frame(0.016)
	a.TogglePause()

	lines := a.StatusLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Bodies: 5 (paused)", lines[0])
	assert.Equal(t, "Steps: 1", lines[2])
}
