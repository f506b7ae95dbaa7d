package field

import (
	"slices"

	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

// Voxel is one occupied unit cube within a column.
type Voxel struct {
	Type    tile.Type
	Z       int
	Visible bool
}

// Field is a width×height grid of voxel columns. Columns keep their voxels in
// insertion order, which is not necessarily elevation order.
//
// A Field is not safe for concurrent mutation; one writer at a time.
type Field struct {
	width, height int
	columns       [][]Voxel // index = y*width + x
}

// New creates an empty field. Non-positive dimensions yield an empty grid.
func New(width, height int) *Field {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Field{
		width:   width,
		height:  height,
		columns: make([][]Voxel, width*height),
	}
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// InBounds reports whether (x, y) names a column of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

func (f *Field) column(x, y int) []Voxel {
	if !f.InBounds(x, y) {
		return nil
	}
	return f.columns[y*f.width+x]
}

// Column returns a copy of the voxels at (x, y) in insertion order.
// Out-of-bounds columns are empty.
func (f *Field) Column(x, y int) []Voxel {
	return slices.Clone(f.column(x, y))
}

// At returns the first voxel inserted at elevation z of column (x, y).
func (f *Field) At(x, y, z int) (Voxel, bool) {
	for _, v := range f.column(x, y) {
		if v.Z == z {
			return v, true
		}
	}
	return Voxel{}, false
}

// Occupied reports whether any voxel sits at (x, y, z).
func (f *Field) Occupied(x, y, z int) bool {
	_, ok := f.At(x, y, z)
	return ok
}

// AnyAt reports whether some voxel at (x, y, z) satisfies pred.
func (f *Field) AnyAt(x, y, z int, pred func(Voxel) bool) bool {
	for _, v := range f.column(x, y) {
		if v.Z == z && pred(v) {
			return true
		}
	}
	return false
}

// Last returns the most recently inserted voxel of column (x, y).
func (f *Field) Last(x, y int) (Voxel, bool) {
	col := f.column(x, y)
	if len(col) == 0 {
		return Voxel{}, false
	}
	return col[len(col)-1], true
}

// LastMatching returns the most recently inserted voxel of column (x, y) that
// satisfies pred.
func (f *Field) LastMatching(x, y int, pred func(Voxel) bool) (Voxel, bool) {
	col := f.column(x, y)
	for i := len(col) - 1; i >= 0; i-- {
		if pred(col[i]) {
			return col[i], true
		}
	}
	return Voxel{}, false
}

// Top returns the highest elevation occupied in column (x, y).
func (f *Field) Top(x, y int) (int, bool) {
	col := f.column(x, y)
	if len(col) == 0 {
		return 0, false
	}
	top := col[0].Z
	for _, v := range col[1:] {
		top = max(top, v.Z)
	}
	return top, true
}

// Insert adds v to column (x, y) unless its elevation is already taken.
// It reports whether the voxel was stored.
func (f *Field) Insert(x, y int, v Voxel) bool {
	if !f.InBounds(x, y) || f.Occupied(x, y, v.Z) {
		return false
	}
	i := y*f.width + x
	f.columns[i] = append(f.columns[i], v)
	return true
}

// Append adds v to column (x, y) without checking for an existing voxel at
// the same elevation. Out-of-bounds appends are dropped.
func (f *Field) Append(x, y int, v Voxel) bool {
	if !f.InBounds(x, y) {
		return false
	}
	i := y*f.width + x
	f.columns[i] = append(f.columns[i], v)
	return true
}

// Remove deletes the first voxel at (x, y, z) and returns it.
func (f *Field) Remove(x, y, z int) (Voxel, bool) {
	if !f.InBounds(x, y) {
		return Voxel{}, false
	}
	i := y*f.width + x
	col := f.columns[i]
	for j, v := range col {
		if v.Z == z {
			f.columns[i] = slices.Delete(col, j, j+1)
			return v, true
		}
	}
	return Voxel{}, false
}

// SetVisible sets the visibility of every voxel at (x, y, z) and returns how
// many voxels it touched.
func (f *Field) SetVisible(x, y, z int, visible bool) int {
	if !f.InBounds(x, y) {
		return 0
	}
	col := f.columns[y*f.width+x]
	n := 0
	for j := range col {
		if col[j].Z == z {
			col[j].Visible = visible
			n++
		}
	}
	return n
}

// Refresh recomputes the visibility of every voxel. fn is called once per
// voxel, column by column, and its result becomes the voxel's Visible flag.
// fn may read the field but must not insert or remove voxels.
func (f *Field) Refresh(fn func(x, y int, v Voxel) bool) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			col := f.columns[y*f.width+x]
			for j := range col {
				col[j].Visible = fn(x, y, col[j])
			}
		}
	}
}

// Each calls fn for every voxel, column by column in row-major order.
func (f *Field) Each(fn func(x, y int, v Voxel)) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			for _, v := range f.columns[y*f.width+x] {
				fn(x, y, v)
			}
		}
	}
}

// Len returns the total number of voxels in the field.
func (f *Field) Len() int {
	n := 0
	for _, col := range f.columns {
		n += len(col)
	}
	return n
}

// Equal reports whether both fields have the same dimensions and identical
// columns, including insertion order and visibility. A nil field equals
// nothing.
func (f *Field) Equal(other *Field) bool {
	if other == nil {
		return false
	}
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.columns {
		if !slices.Equal(f.columns[i], other.columns[i]) {
			return false
		}
	}
	return true
}
