package physics

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// stateFile is the on-disk layout written by SaveState.
type stateFile struct {
	Bodies []Body `yaml:"bodies"`
}

// SaveState writes bodies to path as YAML, creating the parent directory if needed.
func SaveState(path string, bodies []Body) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}
	data, err := yaml.Marshal(stateFile{Bodies: bodies})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadState reads bodies written by SaveState. A body with a radius that is not finite and
// positive fails the whole load with ErrNonPositiveRadius.
func LoadState(path string) ([]Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	var f stateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load state %s: %w", path, err)
	}
	for i, b := range f.Bodies {
		if _, err := NewBody(b.Radius, b.Position, b.Velocity, b.Color); err != nil {
			return nil, fmt.Errorf("load state %s: body %d: %w", path, i, err)
		}
	}
	return f.Bodies, nil
}
