package world

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/gen"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
	"github.com/OCharnyshevich/isometric-world/pkg/world/visibility"
)

// World owns the current voxel field and serializes every mutation to it.
// Regeneration builds a new field outside the lock and swaps it in, so a
// field handed out earlier is never modified by a regeneration.
type World struct {
	mu     sync.RWMutex
	params gen.Params
	field  *field.Field
	log    *slog.Logger
}

// New generates the initial field for params.
func New(params gen.Params, log *slog.Logger) (*World, error) {
	w := &World{log: log}
	if err := w.Regenerate(params); err != nil {
		return nil, err
	}
	return w, nil
}

// Regenerate replaces the field with a fresh one built from params. On error
// the current field and parameters are kept.
func (w *World) Regenerate(params gen.Params) error {
	start := time.Now()
	f, err := gen.Generate(params)
	if err != nil {
		return fmt.Errorf("generate world: %w", err)
	}

	w.mu.Lock()
	w.params = params
	w.field = f
	w.mu.Unlock()

	stats := f.Stats()
	w.log.Info("world generated",
		"width", params.Width,
		"height", params.Height,
		"height_seed", params.HeightSeed,
		"mountain_seed", params.MountainSeed,
		"voxels", stats.Voxels,
		"visible", stats.Visible,
		"elapsed", time.Since(start),
	)
	return nil
}

// Reseed draws new seeds and regenerates with otherwise unchanged parameters.
func (w *World) Reseed() (heightSeed, mountainSeed int64, err error) {
	params := w.Params()
	params.HeightSeed, params.MountainSeed = gen.Reseed()
	if err := w.Regenerate(params); err != nil {
		return 0, 0, err
	}
	return params.HeightSeed, params.MountainSeed, nil
}

// Params returns the parameters of the current field.
func (w *World) Params() gen.Params {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.params
}

// Field returns the current field. Callers must treat it as read-only and go
// through World for mutations. The pointer is shared: RemoveVoxel, AddVoxel,
// Dig and Drop change it in place under World's lock, so reading it while
// those run is a data race, and a later Regenerate leaves it stale. Use View
// or Stats for reads that may overlap with mutations.
func (w *World) Field() *field.Field {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.field
}

// View calls fn with the current field while holding the read lock. fn must
// not keep the field or call back into World.
func (w *World) View(fn func(f *field.Field)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn(w.field)
}

// Stats summarizes the current field.
func (w *World) Stats() field.Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.field.Stats()
}

// ColumnAt returns a copy of the voxels at (x, y), unsorted.
func (w *World) ColumnAt(x, y int) []field.Voxel {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.field.Column(x, y)
}

// Properties returns the static properties of a voxel type.
func (w *World) Properties(t tile.Type) tile.Property {
	return tile.Properties(t)
}

// RemoveVoxel deletes the voxel at (x, y, z), if any, and reveals the voxels
// it was hiding.
func (w *World) RemoveVoxel(x, y, z int) (field.Voxel, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.removeLocked(x, y, z)
}

func (w *World) removeLocked(x, y, z int) (field.Voxel, bool) {
	v, ok := w.field.Remove(x, y, z)
	if !ok {
		return field.Voxel{}, false
	}
	visibility.RevealNeighbors(w.field, x, y, z)
	return v, true
}

// AddVoxel places a voxel of type t at (x, y, z). The caller guarantees the
// elevation is free. Only the new voxel's own visibility is computed.
func (w *World) AddVoxel(x, y, z int, t tile.Type) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addLocked(x, y, z, t)
}

func (w *World) addLocked(x, y, z int, t tile.Type) bool {
	v := field.Voxel{Type: t, Z: z}
	v.Visible = visibility.Visible(w.field, x, y, v)
	return w.field.Append(x, y, v)
}
