package field

import (
	"testing"

	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

func TestInsertRejectsDuplicateElevation(t *testing.T) {
	f := New(4, 4)

	if !f.Insert(1, 2, Voxel{Type: tile.Mountain, Z: 0}) {
		t.Fatal("first Insert at z=0 should succeed")
	}
	if f.Insert(1, 2, Voxel{Type: tile.Sand, Z: 0}) {
		t.Fatal("second Insert at z=0 should be rejected")
	}
	if v, _ := f.At(1, 2, 0); v.Type != tile.Mountain {
		t.Errorf("At(1,2,0).Type = %s, want mountain", v.Type)
	}
	if got := len(f.Column(1, 2)); got != 1 {
		t.Errorf("len(Column(1,2)) = %d, want 1", got)
	}
}

func TestAppendAllowsDuplicateElevation(t *testing.T) {
	f := New(2, 2)
	f.Append(0, 0, Voxel{Type: tile.Grass, Z: 3})
	f.Append(0, 0, Voxel{Type: tile.Leaves, Z: 3})

	if got := len(f.Column(0, 0)); got != 2 {
		t.Fatalf("len(Column(0,0)) = %d, want 2", got)
	}
	if !f.AnyAt(0, 0, 3, func(v Voxel) bool { return v.Type == tile.Leaves }) {
		t.Error("AnyAt should find the appended leaves")
	}
}

func TestOutOfBounds(t *testing.T) {
	f := New(3, 3)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if f.InBounds(p[0], p[1]) {
			t.Errorf("InBounds(%d,%d) = true, want false", p[0], p[1])
		}
		if col := f.Column(p[0], p[1]); len(col) != 0 {
			t.Errorf("Column(%d,%d) = %v, want empty", p[0], p[1], col)
		}
		if _, ok := f.At(p[0], p[1], 0); ok {
			t.Errorf("At(%d,%d,0) found a voxel out of bounds", p[0], p[1])
		}
		if f.Insert(p[0], p[1], Voxel{Z: 0}) || f.Append(p[0], p[1], Voxel{Z: 0}) {
			t.Errorf("write at (%d,%d) should be dropped", p[0], p[1])
		}
		if _, ok := f.Remove(p[0], p[1], 0); ok {
			t.Errorf("Remove(%d,%d,0) should report nothing removed", p[0], p[1])
		}
	}
}

func TestLastFollowsInsertionOrder(t *testing.T) {
	f := New(1, 1)
	f.Insert(0, 0, Voxel{Type: tile.Dirt, Z: 5})
	f.Insert(0, 0, Voxel{Type: tile.Sand, Z: 2})

	last, ok := f.Last(0, 0)
	if !ok || last.Type != tile.Sand {
		t.Errorf("Last(0,0) = %+v, want the sand inserted last", last)
	}
	top, ok := f.Top(0, 0)
	if !ok || top != 5 {
		t.Errorf("Top(0,0) = %d, want 5", top)
	}

	f.Append(0, 0, Voxel{Type: tile.Leaves, Z: 9})
	surface, ok := f.LastMatching(0, 0, func(v Voxel) bool { return v.Type != tile.Leaves })
	if !ok || surface.Type != tile.Sand {
		t.Errorf("LastMatching(non-leaves) = %+v, want sand", surface)
	}
}

func TestTopEmptyColumn(t *testing.T) {
	f := New(1, 1)
	if _, ok := f.Top(0, 0); ok {
		t.Error("Top of empty column should report false")
	}
	if _, ok := f.Last(0, 0); ok {
		t.Error("Last of empty column should report false")
	}
}

func TestRemove(t *testing.T) {
	f := New(2, 1)
	for z := 0; z < 3; z++ {
		f.Insert(1, 0, Voxel{Type: tile.Dirt, Z: z})
	}

	v, ok := f.Remove(1, 0, 1)
	if !ok || v.Z != 1 {
		t.Fatalf("Remove(1,0,1) = %+v, %v", v, ok)
	}
	if f.Occupied(1, 0, 1) {
		t.Error("z=1 should be empty after Remove")
	}
	if _, ok := f.Remove(1, 0, 1); ok {
		t.Error("second Remove at z=1 should find nothing")
	}
	if got := f.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestColumnIsACopy(t *testing.T) {
	f := New(1, 1)
	f.Insert(0, 0, Voxel{Type: tile.Grass, Z: 0})

	col := f.Column(0, 0)
	col[0].Type = tile.Water
	col[0].Visible = true

	if v, _ := f.At(0, 0, 0); v.Type != tile.Grass || v.Visible {
		t.Errorf("field mutated through Column copy: %+v", v)
	}
}

func TestSetVisibleAndRefresh(t *testing.T) {
	f := New(2, 2)
	f.Insert(0, 0, Voxel{Type: tile.Sand, Z: 0})
	f.Insert(1, 1, Voxel{Type: tile.Sand, Z: 0})
	f.Insert(1, 1, Voxel{Type: tile.Sand, Z: 1})

	if n := f.SetVisible(0, 0, 0, true); n != 1 {
		t.Errorf("SetVisible touched %d voxels, want 1", n)
	}
	if n := f.SetVisible(0, 0, 7, true); n != 0 {
		t.Errorf("SetVisible on empty slot touched %d voxels, want 0", n)
	}

	f.Refresh(func(_, _ int, v Voxel) bool { return v.Z == 1 })
	s := f.Stats()
	if s.Voxels != 3 || s.Visible != 1 || s.MaxZ != 1 {
		t.Errorf("Stats() = %+v, want 3 voxels, 1 visible, max z 1", s)
	}
	if s.ByType[tile.Sand] != 3 {
		t.Errorf("ByType[sand] = %d, want 3", s.ByType[tile.Sand])
	}
}

func TestEqual(t *testing.T) {
	a, b := New(2, 2), New(2, 2)
	a.Insert(1, 0, Voxel{Type: tile.Grass, Z: 4})
	b.Insert(1, 0, Voxel{Type: tile.Grass, Z: 4})
	if !a.Equal(b) {
		t.Fatal("identical fields should be equal")
	}

	b.SetVisible(1, 0, 4, true)
	if a.Equal(b) {
		t.Error("fields differing in visibility should not be equal")
	}
	if a.Equal(New(2, 3)) {
		t.Error("fields of different size should not be equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
}
