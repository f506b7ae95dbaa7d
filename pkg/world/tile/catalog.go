package tile

// Property describes how a voxel type behaves physically.
type Property struct {
	IsBlocking   bool    // occupies space for occlusion
	Passable     bool    // characters can walk through it
	Transparency float64 // 1.0 is fully opaque
	Diggable     bool
}

// Opaque reports whether nothing can be seen through the voxel.
func (p Property) Opaque() bool {
	return p.Transparency == 1.0
}

// Occludes reports whether the voxel hides whatever lies behind it.
func (p Property) Occludes() bool {
	return p.IsBlocking && p.Opaque()
}

var (
	passableTypes = []Type{
		Water, Plant1, Plant2, Plant3, Plant4, Plant5, Plant6, Plant7,
		Stump, Log, Mushroom1, Mushroom2, Mushroom3,
		Lilypad1, Lilypad2, DesertPlant1, DesertPlant2,
	}
	diggableTypes = []Type{Dirt, Sand, Grass}
	blockingTypes = []Type{Sand, Dirt, Grass, Water, Mountain}

	transparencies = map[Type]float64{
		Water: 0.2,
	}
)

var catalog = buildCatalog()

func buildCatalog() [typeCount]Property {
	var c [typeCount]Property
	for i := range c {
		c[i].Transparency = 1.0
	}
	for _, t := range passableTypes {
		c[t].Passable = true
	}
	for _, t := range diggableTypes {
		c[t].Diggable = true
	}
	for _, t := range blockingTypes {
		c[t].IsBlocking = true
	}
	for t, v := range transparencies {
		c[t].Transparency = v
	}
	return c
}

// Properties returns the static properties of t. Unknown types get an opaque,
// non-blocking, impassable, undiggable default.
func Properties(t Type) Property {
	if !t.Valid() {
		return Property{Transparency: 1.0}
	}
	return catalog[t]
}
