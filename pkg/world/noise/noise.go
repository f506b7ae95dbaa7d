package noise

// Value noise over a seeded lattice, blended with a quintic fade curve.
// Produces values in the range [-1, 1].

const (
	tableSize = 256
	tableMask = tableSize - 1
)

// Field produces deterministic, smooth 3D value noise from a seed.
type Field struct {
	perm   [tableSize * 2]int
	values [tableSize]float64
}

// New creates a noise field with a seeded permutation and lattice value table.
func New(seed int64) *Field {
	f := &Field{}
	s := seed

	// Lattice values in [-1, 1].
	for i := range f.values {
		s = lcg(s)
		f.values[i] = float64((s>>33)&0xFFFFFF)/float64(0xFFFFFF)*2 - 1
	}

	// Initialize with identity permutation.
	var p [tableSize]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle with seed-derived random.
	for i := tableSize - 1; i > 0; i-- {
		s = lcg(s)
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	// Double the permutation table for wrapping.
	for i := range f.perm {
		f.perm[i] = p[i&tableMask]
	}
	return f
}

// Sample returns the noise value at the given coordinates.
// Output is in the range [-1, 1]; integer coordinates hit lattice values exactly.
func (f *Field) Sample(x, y, z float64) float64 {
	xi, yi, zi := fastFloor(x), fastFloor(y), fastFloor(z)
	tx, ty, tz := x-float64(xi), y-float64(yi), z-float64(zi)

	u, v, w := fade(tx), fade(ty), fade(tz)

	x0, y0, z0 := xi&tableMask, yi&tableMask, zi&tableMask
	x1, y1, z1 := (x0+1)&tableMask, (y0+1)&tableMask, (z0+1)&tableMask

	c000 := f.lattice(x0, y0, z0)
	c100 := f.lattice(x1, y0, z0)
	c010 := f.lattice(x0, y1, z0)
	c110 := f.lattice(x1, y1, z0)
	c001 := f.lattice(x0, y0, z1)
	c101 := f.lattice(x1, y0, z1)
	c011 := f.lattice(x0, y1, z1)
	c111 := f.lattice(x1, y1, z1)

	return lerp(w,
		lerp(v, lerp(u, c000, c100), lerp(u, c010, c110)),
		lerp(v, lerp(u, c001, c101), lerp(u, c011, c111)),
	)
}

func (f *Field) lattice(x, y, z int) float64 {
	return f.values[f.perm[x+f.perm[y+f.perm[z]]]]
}

func lcg(s int64) int64 {
	return s*6364136223846793005 + 1442695040888963407
}

// fade is 6t^5 - 15t^4 + 10t^3, flat in both first and second derivative at 0 and 1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
