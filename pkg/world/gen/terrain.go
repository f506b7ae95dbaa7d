package gen

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

// scaleHeight shifts noise centered on 0 to mostly positive and scales it,
// rounding half away from zero.
func scaleHeight(n float64, maxHeight int) int {
	return int(math.Round((n + 0.5) * float64(maxHeight)))
}

// mustInsert stores v or panics: the terrain passes never write an elevation twice.
func mustInsert(f *field.Field, x, y int, v field.Voxel) {
	if !f.Insert(x, y, v) {
		panic(fmt.Sprintf("gen: duplicate elevation %d in column (%d,%d) placing %s", v.Z, x, y, v.Type))
	}
}

func (g *Generator) placeMountains(f *field.Field) {
	for x := 0; x < g.params.Width; x++ {
		for y := 0; y < g.params.Height; y++ {
			height := g.MountainHeight(x, y)
			for z := 0; z <= height; z++ {
				mustInsert(f, x, y, field.Voxel{Type: tile.Mountain, Z: z})
			}
		}
	}
}

func (g *Generator) placeTerrain(f *field.Field) {
	for x := 0; x < g.params.Width; x++ {
		for y := 0; y < g.params.Height; y++ {
			height := g.TerrainHeight(x, y)
			for z := 0; z <= height; z++ {
				if f.Occupied(x, y, z) {
					continue
				}
				mustInsert(f, x, y, field.Voxel{Type: g.terrainType(z, height), Z: z})
			}
		}
	}
}

// terrainType picks the layer material at elevation z of a column whose
// terrain reaches height.
func (g *Generator) terrainType(z, height int) tile.Type {
	switch {
	case z <= g.params.WaterLevel:
		return tile.Sand
	case z == height:
		return tile.Grass
	default:
		return tile.Dirt
	}
}

func (g *Generator) fillWater(f *field.Field) {
	for x := 0; x < g.params.Width; x++ {
		for y := 0; y < g.params.Height; y++ {
			top, ok := f.Top(x, y)
			if !ok {
				top = -1
			}
			for top < g.params.WaterLevel {
				top++
				mustInsert(f, x, y, field.Voxel{Type: tile.Water, Z: top})
			}
		}
	}
}
