// Package screenshot writes captured frames to disk as PNG files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultDir is where screenshots go unless a directory is given.
const DefaultDir = "screenshots"

// ErrBadScale is returned when the scale is not in (0, 1].
var ErrBadScale = errors.New("screenshot: scale must be in (0, 1]")

// Name returns the file name used for a capture taken at t.
func Name(t time.Time) string {
	return "spheres-" + t.Format("20060102-150405.000") + ".png"
}

// Save writes img under dir, scaled by scale (1 keeps the original size), and returns the file path.
func Save(dir string, img image.Image, scale float64, at time.Time) (string, error) {
	if !(scale > 0 && scale <= 1) {
		return "", ErrBadScale
	}
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if scale < 1 {
		b := img.Bounds()
		w := max(int(float64(b.Dx())*scale), 1)
		h := max(int(float64(b.Dy())*scale), 1)
		img = transform.Resize(img, w, h, transform.Linear)
	}
	path := filepath.Join(dir, Name(at))
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
