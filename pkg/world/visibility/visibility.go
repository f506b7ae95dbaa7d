// Package visibility decides which voxels of a field can be seen from outside
// the terrain mass.
//
// A voxel is hidden when every in-bounds horizontal neighbour at its elevation
// and the voxel directly above it are opaque and blocking. Sides that fall off
// the map count as covered, so edge voxels hide more readily than a physical
// model would. Voxels that are themselves see-through are always visible.
package visibility

import (
	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

var horizontal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func occludes(v field.Voxel) bool {
	return tile.Properties(v.Type).Occludes()
}

// IsFullyEnclosed reports whether the position (x, y, z) is covered on all
// in-bounds horizontal sides and from above by opaque blocking voxels.
func IsFullyEnclosed(f *field.Field, x, y, z int) bool {
	for _, d := range horizontal {
		nx, ny := x+d[0], y+d[1]
		if !f.InBounds(nx, ny) {
			continue
		}
		if !f.AnyAt(nx, ny, z, occludes) {
			return false
		}
	}
	return f.AnyAt(x, y, z+1, occludes)
}

// Visible reports whether voxel v at column (x, y) should be drawn.
func Visible(f *field.Field, x, y int, v field.Voxel) bool {
	if !tile.Properties(v.Type).Opaque() {
		return true
	}
	return !IsFullyEnclosed(f, x, y, v.Z)
}

// ResolveAll recomputes the visibility flag of every voxel in the field.
func ResolveAll(f *field.Field) {
	f.Refresh(func(x, y int, v field.Voxel) bool {
		return Visible(f, x, y, v)
	})
}

// RevealNeighbors marks the voxels around a freshly emptied position as
// visible. Neighbours are not re-checked against their other sides.
func RevealNeighbors(f *field.Field, x, y, z int) {
	for _, d := range horizontal {
		f.SetVisible(x+d[0], y+d[1], z, true)
	}
	f.SetVisible(x, y, z+1, true)
	f.SetVisible(x, y, z-1, true)
}
