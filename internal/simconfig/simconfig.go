package simconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/sim.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvConfigPath = "SPHERES_CONFIG"
	EnvSeed       = "SPHERES_SEED"
)

// Prefs holds simulator and display preferences. Persisted across runs with Save.
type Prefs struct {
	SphereCount       int     `yaml:"sphere_count"`
	MaxBodies         int     `yaml:"max_bodies"`
	Seed              uint64  `yaml:"seed"`
	TimeScale         float64 `yaml:"time_scale"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
	TargetFPS         int     `yaml:"target_fps"`
	ShowFPS           bool    `yaml:"show_fps"`
	ShowStats         bool    `yaml:"show_stats"`
	BoxVisible        bool    `yaml:"box_visible"`
	WindowTitle       string  `yaml:"window_title,omitempty"`
}

// Default returns default preferences: ten spheres, frame time converted to milliseconds,
// overlays off, box on.
func Default() Prefs {
	return Prefs{
		SphereCount:       10,
		MaxBodies:         1000,
		Seed:              0,
		TimeScale:         1000,
		ParallelThreshold: 256,
		TargetFPS:         60,
		ShowFPS:           false,
		ShowStats:         false,
		BoxVisible:        true,
		WindowTitle:       "spheres",
	}
}

// Normalize replaces out-of-range values with their defaults and caps SphereCount at MaxBodies.
func (p Prefs) Normalize() Prefs {
	d := Default()
	if p.MaxBodies <= 0 {
		p.MaxBodies = d.MaxBodies
	}
	if p.SphereCount < 0 {
		p.SphereCount = 0
	}
	if p.SphereCount > p.MaxBodies {
		p.SphereCount = p.MaxBodies
	}
	if !(p.TimeScale > 0) {
		p.TimeScale = d.TimeScale
	}
	if p.ParallelThreshold <= 0 {
		p.ParallelThreshold = d.ParallelThreshold
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.WindowTitle == "" {
		p.WindowTitle = d.WindowTitle
	}
	return p
}

// Load reads preferences from path. A missing file returns Default() and no error.
// Invalid YAML returns Default() with the parse error so the caller can report it.
// Keys absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return p.Normalize(), nil
}

// Save writes preferences to path, creating the config directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PathFromEnv returns the config path from SPHERES_CONFIG, or DefaultPath when unset.
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides fields set through the environment. Currently only SPHERES_SEED.
func ApplyEnv(p Prefs) (Prefs, error) {
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}
	return p, nil
}
