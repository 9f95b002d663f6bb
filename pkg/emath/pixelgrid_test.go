package emath

import(
	"os"
	"path/filepath"
	"testing"
)

func TestPixelGrid_Dimensions(t *testing.T) {
	g := NewPixelGrid(3, 5)
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("got %dx%d, want 3x5", g.Rows(), g.Cols())
	}
	if g.Empty() {
		t.Error("3x5 grid reported empty")
	}

	e := NewPixelGrid(0, 4)
	if !e.Empty() || e.Rows() != 0 {
		t.Errorf("0x4 grid: empty=%v rows=%d", e.Empty(), e.Rows())
	}
}

func TestPixelGrid_RowMajor(t *testing.T) {
	g := NewPixelGrid(2, 3)
	g.Set(1, 0, Vec3{1, 2, 3})
	if g.values[3] != (Vec3{1, 2, 3}) {
		t.Errorf("(1,0) not stored at offset 3: %v", g.values)
	}
}

func TestPixelGrid_OutOfBoundsPanics(t *testing.T) {
	g := NewPixelGrid(2, 3)
	for _, pos := range [][2]int{{0, 3}, {2, 0}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get%v did not panic", pos)
				}
			}()
			g.Get(pos[0], pos[1])
		}()
	}
}

func TestPixelGrid_CopyIsIndependent(t *testing.T) {
	g := NewPixelGrid(2, 2)
	g.Set(0, 0, Vec3{1, 1, 1})
	g2 := g.Copy()
	g2.Set(0, 0, Vec3{9, 9, 9})
	if g.Get(0, 0) != (Vec3{1, 1, 1}) {
		t.Errorf("copy shares storage")
	}
}

func TestPixelGrid_Mean(t *testing.T) {
	g := NewPixelGrid(1, 2)
	g.Set(0, 0, Vec3{1, 2, 3})
	g.Set(0, 1, Vec3{3, 4, 5})
	if got := g.Mean(); got != (Vec3{2, 3, 4}) {
		t.Errorf("mean: got %v", got)
	}
}

func TestPixelGrid_ToImg(t *testing.T) {
	g := gridFrom(20, 30)
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := g.ToImg("test grid", path); err != nil {
		t.Fatalf("ToImg: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}
}

func TestVec3_Helpers(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.Swap02() != (Vec3{3, 2, 1}) {
		t.Errorf("Swap02: %v", v.Swap02())
	}
	v.CeilingAt(2)
	if v != (Vec3{1, 2, 2}) {
		t.Errorf("CeilingAt: %v", v)
	}
	v.FloorAt(1.5)
	if v != (Vec3{1.5, 2, 2}) {
		t.Errorf("FloorAt: %v", v)
	}
	if RoundToInt(-0.5) != -1 || RoundToInt(0.49) != 0 || RoundToInt(2.5) != 3 {
		t.Errorf("RoundToInt rounding wrong")
	}
}
