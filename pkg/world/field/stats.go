package field

import "github.com/OCharnyshevich/isometric-world/pkg/world/tile"

// Stats summarizes the contents of a field.
type Stats struct {
	Voxels  int
	Visible int
	MaxZ    int
	ByType  map[tile.Type]int
}

// Stats counts the voxels of the field.
func (f *Field) Stats() Stats {
	s := Stats{ByType: make(map[tile.Type]int)}
	f.Each(func(_, _ int, v Voxel) {
		s.Voxels++
		if v.Visible {
			s.Visible++
		}
		if s.Voxels == 1 || v.Z > s.MaxZ {
			s.MaxZ = v.Z
		}
		s.ByType[v.Type]++
	})
	return s
}
