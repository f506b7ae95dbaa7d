package world

import (
	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

// Dig removes a diggable voxel from column (x, y) at elevation z, or from the
// ground just below it when z is empty. It returns the removed type.
func (w *World) Dig(x, y, z int) (tile.Type, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	target, ok := w.field.At(x, y, z)
	if !ok {
		target, ok = w.field.At(x, y, z-1)
	}
	if !ok || !tile.Properties(target.Type).Diggable {
		return 0, false
	}
	removed, ok := w.removeLocked(x, y, target.Z)
	if !ok {
		return 0, false
	}
	w.log.Debug("voxel dug", "x", x, "y", y, "z", removed.Z, "type", removed.Type)
	return removed.Type, true
}

// Drop places a voxel of type t on column (x, y), resting on the highest voxel
// at or below reach. Nothing is placed when that voxel already sits at reach
// or the column is empty. It returns the elevation used.
func (w *World) Drop(x, y, reach int, t tile.Type) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	support, ok := w.highestAtOrBelow(x, y, reach)
	if !ok || support == reach {
		return 0, false
	}
	z := support + 1
	if !w.addLocked(x, y, z, t) {
		return 0, false
	}
	w.log.Debug("voxel dropped", "x", x, "y", y, "z", z, "type", t)
	return z, true
}

func (w *World) highestAtOrBelow(x, y, reach int) (int, bool) {
	found := false
	best := 0
	for _, v := range w.field.Column(x, y) {
		if v.Z > reach {
			continue
		}
		if !found || v.Z > best {
			best, found = v.Z, true
		}
	}
	return best, found
}

// SpawnHeight returns the elevation a character stands at on column (x, y):
// one above its highest non-water voxel.
func (w *World) SpawnHeight(x, y int) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	found := false
	top := 0
	for _, v := range w.field.Column(x, y) {
		if v.Type == tile.Water {
			continue
		}
		if !found || v.Z > top {
			top, found = v.Z, true
		}
	}
	if !found {
		return 0, false
	}
	return top + 1, true
}

// Surface returns the topmost voxel of column (x, y) by elevation.
func (w *World) Surface(x, y int) (field.Voxel, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	top, ok := w.field.Top(x, y)
	if !ok {
		return field.Voxel{}, false
	}
	return w.field.At(x, y, top)
}
