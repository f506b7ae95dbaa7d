package gen

import (
	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

const (
	minTrunkHeight = 3
	maxTrunkHeight = 9 // exclusive
)

// canopy lists leaf offsets relative to the voxel above the trunk top:
// a plus at the base, a wide ring one level up, a plus above that and a
// single apex three levels up.
var canopy = [24][3]int{
	{0, 0, 0}, {0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {-1, 0, 0},

	{1, 1, 1}, {1, 0, 1}, {1, -1, 1}, {0, 1, 1}, {0, 0, 1}, {0, -1, 1},
	{-1, 1, 1}, {-1, 0, 1}, {-1, -1, 1}, {0, 2, 1}, {0, -2, 1}, {2, 0, 1}, {-2, 0, 1},

	{0, 0, 2}, {0, 1, 2}, {0, -1, 2}, {1, 0, 2}, {-1, 0, 2},

	{0, 0, 3},
}

// placeTrees rolls once for every column topped with grass.
func (g *Generator) placeTrees(f *field.Field, rng *decorRNG) {
	for x := 0; x < g.params.Width; x++ {
		for y := 0; y < g.params.Height; y++ {
			top, ok := f.Last(x, y)
			if !ok || top.Type != tile.Grass {
				continue
			}
			if rng.nextN(g.params.TreeProbability) != 0 {
				continue
			}
			g.placeTree(f, rng, x, y, top.Z)
		}
	}
}

// placeTree grows a trunk above ground level z and crowns it with leaves.
// Leaves are appended without an occupancy check and clipped at the map edge.
func (g *Generator) placeTree(f *field.Field, rng *decorRNG, x, y, z int) {
	trunkHeight := rng.between(minTrunkHeight, maxTrunkHeight)

	for i := 1; i <= trunkHeight; i++ {
		f.Append(x, y, field.Voxel{Type: tile.Tree, Z: z + i})
	}

	base := z + trunkHeight + 1
	for _, off := range canopy {
		f.Append(x+off[0], y+off[1], field.Voxel{Type: tile.Leaves, Z: base + off[2]})
	}
}

// placePlants puts at most one piece of vegetation on each column's surface,
// looking through any canopy that covers it.
func (g *Generator) placePlants(f *field.Field, rng *decorRNG) {
	for x := 0; x < g.params.Width; x++ {
		for y := 0; y < g.params.Height; y++ {
			surface, ok := f.LastMatching(x, y, notLeaves)
			if !ok {
				continue
			}

			var variants tile.Range
			switch surface.Type {
			case tile.Grass:
				variants = tile.PlantVariants
			case tile.Water:
				variants = tile.LilypadVariants
			case tile.Sand:
				variants = tile.DesertVariants
			default:
				continue
			}

			if rng.nextN(g.params.PlantProbability) != 0 {
				continue
			}
			plant := variants.Pick(rng.nextN(variants.Len()))
			f.Append(x, y, field.Voxel{Type: plant, Z: surface.Z + 1})
		}
	}
}

func notLeaves(v field.Voxel) bool {
	return v.Type != tile.Leaves
}
