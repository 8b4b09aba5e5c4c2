package physics

import (
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the body count at which Step starts splitting work across goroutines.
const DefaultParallelThreshold = 256

// Stats counts work done by a World since creation (or the last Clear).
type Stats struct {
	Steps         uint64
	Contacts      uint64
	LastContacts  int
	LastBodyCount int
}

// World owns the simulated bodies. It is driven from the render loop goroutine and takes no
// locks; Step may fan out internally but returns only after every body is updated.
type World struct {
	bodies            []*Body
	parallelThreshold int
	workers           int
	stats             Stats
}

// NewWorld returns an empty world. Step updates bodies in parallel once there are at least
// parallelThreshold of them; a threshold <= 0 selects DefaultParallelThreshold.
func NewWorld(parallelThreshold int) *World {
	if parallelThreshold <= 0 {
		parallelThreshold = DefaultParallelThreshold
	}
	return &World{
		parallelThreshold: parallelThreshold,
		workers:           runtime.GOMAXPROCS(0),
	}
}

// Add appends a body to the world.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Spawn appends n random bodies drawn from rng.
func (w *World) Spawn(rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		w.bodies = append(w.bodies, NewRandomBody(rng))
	}
}

// Clear removes every body and resets the stats.
func (w *World) Clear() {
	w.bodies = nil
	w.stats = Stats{}
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns the live body slice for drawing. Callers must not keep it across a Step.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Stats returns counters for the steps run so far.
func (w *World) Stats() Stats {
	return w.stats
}

// Snapshot returns a deep copy of every body, safe to hold or serialize while the world keeps stepping.
func (w *World) Snapshot() ([]Body, error) {
	out := make([]Body, 0, len(w.bodies))
	if len(w.bodies) == 0 {
		return out, nil
	}
	if err := copier.CopyWithOption(&out, &w.bodies, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("snapshot bodies: %w", err)
	}
	return out, nil
}

// Restore replaces the world's bodies with copies of snapshot. Every body is validated first;
// on error the world is left unchanged.
func (w *World) Restore(snapshot []Body) error {
	bodies := make([]*Body, 0, len(snapshot))
	for i, s := range snapshot {
		b, err := NewBody(s.Radius, s.Position, s.Velocity, s.Color)
		if err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	w.bodies = bodies
	w.stats = Stats{}
	return nil
}

// Step runs Update on every body with the same elapsed time (ms) and returns the number of
// wall reflections on this step. Bodies are independent, so large worlds are split into
// contiguous chunks with one goroutine per chunk.
func (w *World) Step(elapsed float64) int {
	n := len(w.bodies)
	var contacts int
	if n < w.parallelThreshold || w.workers < 2 {
		for _, b := range w.bodies {
			contacts += Update(b, elapsed)
		}
	} else {
		contacts = w.stepParallel(elapsed)
	}
	w.stats.Steps++
	w.stats.Contacts += uint64(contacts)
	w.stats.LastContacts = contacts
	w.stats.LastBodyCount = n
	return contacts
}

// stepParallel gives each worker its own chunk and its own contact counter, so no body or
// counter is written by more than one goroutine.
func (w *World) stepParallel(elapsed float64) int {
	n := len(w.bodies)
	workers := min(w.workers, n)
	chunk := (n + workers - 1) / workers
	counts := make([]int, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		g.Go(func() error {
			for _, b := range w.bodies[start:end] {
				counts[i] += Update(b, elapsed)
			}
			return nil
		})
	}
	_ = g.Wait()

	var contacts int
	for _, c := range counts {
		contacts += c
	}
	return contacts
}
