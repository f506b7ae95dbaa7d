package gen

import (
	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/noise"
	"github.com/OCharnyshevich/isometric-world/pkg/world/visibility"
)

const decorSalt = 600

// Generator builds a voxel field from a parameter set. The same parameters
// always produce the same field.
type Generator struct {
	params   Params
	terrain  *noise.Field
	mountain *noise.Field
}

// New creates a Generator after validating p.
func New(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		params:   p,
		terrain:  noise.New(p.HeightSeed),
		mountain: noise.New(p.MountainSeed),
	}, nil
}

// Generate builds a fresh field for p with visibility already resolved.
func Generate(p Params) (*field.Field, error) {
	g, err := New(p)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generate runs every pass over a new field. Each pass observes the output of
// the ones before it. Every call restarts the decoration stream, so repeated
// calls return equal fields.
func (g *Generator) Generate() *field.Field {
	f := field.New(g.params.Width, g.params.Height)
	rng := g.decorations()

	// Pass 1: mountains claim their elevations first.
	g.placeMountains(f)

	// Pass 2: base terrain fills the slots mountains left free.
	g.placeTerrain(f)

	// Pass 3: flood low columns up to the water level.
	g.fillWater(f)

	// Pass 4: trees on grass.
	g.placeTrees(f, rng)

	// Pass 5: undergrowth, lilypads and desert plants.
	g.placePlants(f, rng)

	visibility.ResolveAll(f)
	return f
}

// decorations starts the random stream that places trees and plants.
func (g *Generator) decorations() *decorRNG {
	return newDecorRNG(g.params.HeightSeed, g.params.MountainSeed, decorSalt)
}

// MountainHeight returns the mountain elevation of column (x, y). A negative
// value means the column has no mountain. A zero MountainMaxHeight disables
// mountains; a negative one inverts the noise.
func (g *Generator) MountainHeight(x, y int) int {
	if g.params.MountainMaxHeight == 0 {
		return -1
	}
	n := g.mountain.Sample(
		g.params.MountainNoisiness*float64(x)/float64(g.params.Width),
		g.params.MountainNoisiness*float64(y)/float64(g.params.Height),
		0,
	)
	return scaleHeight(n, g.params.MountainMaxHeight)
}

// TerrainHeight returns the base terrain elevation of column (x, y).
func (g *Generator) TerrainHeight(x, y int) int {
	n := g.terrain.Sample(
		g.params.TerrainNoisiness*float64(x)/float64(g.params.Width),
		g.params.TerrainNoisiness*float64(y)/float64(g.params.Height),
		0,
	)
	return g.params.BaseLevel + scaleHeight(n, g.params.TerrainMaxHeight)
}
