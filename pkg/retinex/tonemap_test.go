package retinex

import(
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/abworrall/rsprays/pkg/ecolor"
	"github.com/abworrall/rsprays/pkg/emath"
)

func TestSetupTonemapper(t *testing.T) {
	im := &Image{Depth: ecolor.DepthFloat, Grid: flatGrid(2, 2, emath.Vec3{1, 1, 1})}

	for _, name := range Tonemappers {
		if op, err := SetupTonemapper(name, im); err != nil || op == nil {
			t.Errorf("%s: got %v, %v", name, op, err)
		}
	}
	if _, err := SetupTonemapper("nosuch", im); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown name: got %v, want ErrInvalidArgument", err)
	}
}

func TestWritePreviews(t *testing.T) {
	g := emath.NewPixelGrid(6, 8)
	for r:=0; r<6; r++ {
		for c:=0; c<8; c++ {
			g.Set(r, c, emath.Vec3{0.1 * float64(c+1), 0.2 * float64(r+1), 0.5})
		}
	}
	im := &Image{Depth: ecolor.DepthFloat, Grid: g}

	cfg := NewConfig()
	cfg.Tonemapper = "linear"
	cfg.PreviewWidth = 4

	prefix := filepath.Join(t.TempDir(), "out")
	files, err := im.WritePreviews(cfg, prefix)
	if err != nil {
		t.Fatalf("WritePreviews: %v", err)
	}
	if len(files) != 1 || files[0] != prefix + "-tmo-linear.png" {
		t.Fatalf("files: got %v", files)
	}

	back, err := LoadImage(files[0])
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if back.Grid.Cols() != 4 || back.Grid.Rows() != 3 {
		t.Errorf("preview is %dx%d, want 4x3", back.Grid.Cols(), back.Grid.Rows())
	}

	cfg.Tonemapper = ""
	if files, err := im.WritePreviews(cfg, prefix + "2"); err != nil || len(files) != 0 {
		t.Errorf("no tonemapper: got %v, %v", files, err)
	}
	if _, err := os.Stat(prefix + "2-tmo-linear.png"); !os.IsNotExist(err) {
		t.Errorf("preview written with no tonemapper")
	}
}

func TestScaleToWidth(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 40))

	if got := scaleToWidth(src, 25).Bounds(); got.Dx() != 25 || got.Dy() != 10 {
		t.Errorf("got %v, want 25x10", got)
	}
	if got := scaleToWidth(src, 0); got != image.Image(src) {
		t.Errorf("width 0 should be a no-op")
	}
	if got := scaleToWidth(src, 200); got != image.Image(src) {
		t.Errorf("upscale should be a no-op")
	}
}

func TestWritePreviews_AllOperators(t *testing.T) {
	g := emath.NewPixelGrid(40, 60)
	for r:=0; r<40; r++ {
		for c:=0; c<60; c++ {
			g.Set(r, c, emath.Vec3{0.05 + 0.1*float64(c), 0.02 + 0.05*float64(r), 0.8})
		}
	}
	im := &Image{Depth: ecolor.DepthFloat, Grid: g}

	cfg := NewConfig()
	cfg.Tonemapper = "all"
	cfg.PreviewWidth = 30

	files, err := im.WritePreviews(cfg, filepath.Join(t.TempDir(), "all"))
	if err != nil {
		t.Fatalf("WritePreviews: %v", err)
	}
	if len(files) != len(Tonemappers) {
		t.Fatalf("wrote %d files, want %d", len(files), len(Tonemappers))
	}
	for _, f := range files {
		back, err := LoadImage(f)
		if err != nil {
			t.Fatalf("LoadImage: %v", err)
		}
		if back.Grid.Cols() != 30 || back.Grid.Rows() != 20 {
			t.Errorf("%s is %dx%d, want 30x20", f, back.Grid.Cols(), back.Grid.Rows())
		}
	}
}
