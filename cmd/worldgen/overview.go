package main

import (
	"bufio"
	"io"

	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

// renderOverview writes one glyph per column, chosen by the topmost voxel.
// Rows run along y, characters along x.
func renderOverview(w io.Writer, f *field.Field) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			bw.WriteByte(columnGlyph(f, x, y))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func columnGlyph(f *field.Field, x, y int) byte {
	z, ok := f.Top(x, y)
	if !ok {
		return ' '
	}
	v, _ := f.At(x, y, z)
	return glyph(v.Type)
}

func glyph(t tile.Type) byte {
	switch {
	case t == tile.Water:
		return '~'
	case t == tile.Sand:
		return '.'
	case t == tile.Dirt:
		return ':'
	case t == tile.Grass:
		return ','
	case t == tile.Mountain, t == tile.Stone1, t == tile.Stone2:
		return '^'
	case t == tile.Leaves:
		return '*'
	case t == tile.Tree, t == tile.Log, t == tile.Stump:
		return '|'
	case tile.LilypadVariants.Contains(t):
		return 'o'
	case tile.DesertVariants.Contains(t):
		return '!'
	default:
		return '"'
	}
}
