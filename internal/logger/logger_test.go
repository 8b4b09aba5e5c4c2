package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sim.txt")
	l := New(path)

	l.Log("spawned 3 bodies")
	l.Slog().Info("step", "bodies", 3, "contacts", 1)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] spawned 3 bodies"))
	assert.Contains(t, lines[1], "level=INFO msg=step bodies=3 contacts=1")
	assert.NotContains(t, lines[1], "time=")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))
}

func TestLinesAreBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+20; i++ {
		l.Log("x")
	}
	assert.Len(t, l.Lines(), maxLines)
}

func TestConcurrentLog(t *testing.T) {
	l := New("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				l.Log("line")
			}
		}()
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 160)
}
