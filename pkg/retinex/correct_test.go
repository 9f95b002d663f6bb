package retinex

import(
	"errors"
	"math"
	"testing"

	"github.com/abworrall/rsprays/pkg/emath"
)

func TestCorrect_NeutralIsIdentity(t *testing.T) {
	src := texturedGrid(8, 9, 1.4)
	out, err := Correct(&src, Neutral)
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	for r:=0; r<8; r++ {
		for c:=0; c<9; c++ {
			if out.Get(r, c) != src.Get(r, c) {
				t.Fatalf("(%d,%d): got %v, want %v", r, c, out.Get(r, c), src.Get(r, c))
			}
		}
	}
}

func TestCorrect_UndoesChannelSwap(t *testing.T) {
	src := flatGrid(2, 2, emath.Vec3{8, 8, 8})
	// Stored reversed: the image's first channel is divided by il[2]
	out, err := Correct(&src, Illumination{1, 2, 4})
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if got := out.Get(1, 1); got != (emath.Vec3{2, 4, 8}) {
		t.Errorf("got %v, want [2 4 8]", got)
	}
}

func TestCorrect_RejectsBadIllumination(t *testing.T) {
	src := flatGrid(2, 2, emath.Vec3{1, 1, 1})
	for _, il := range []Illumination{
		{0, 1, 1},
		{1, -1, 1},
		{1, 1, math.NaN()},
		{1, math.Inf(1), 1},
	} {
		if _, err := Correct(&src, il); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v: got %v, want ErrInvalidArgument", il, err)
		}
	}
}

func TestMeasureCast(t *testing.T) {
	g := emath.NewPixelGrid(1, 3)
	g.Set(0, 0, emath.Vec3{2, 1, 1})
	g.Set(0, 1, emath.Vec3{4, 2, 1})
	g.Set(0, 2, emath.Vec3{5, 0, 5}) // no green, skipped

	cr := MeasureCast(&g)
	if cr.Pixels != 2 {
		t.Fatalf("pixels: got %d, want 2", cr.Pixels)
	}
	if cr.RedGreen != 2.0 || cr.BlueGreen != 0.75 {
		t.Errorf("got %s", cr)
	}
}

func TestNormalizeRMS(t *testing.T) {
	il, ok := normalizeRMS(emath.Vec3{3, 4, 0})
	if !ok {
		t.Fatal("normalizeRMS reported no magnitude")
	}
	if math.Abs(rms(il) - 1.0) > 1e-12 {
		t.Errorf("rms: got %f", rms(il))
	}
	if math.Abs(il[0]/il[1] - 0.75) > 1e-12 {
		t.Errorf("direction changed: %v", il)
	}

	if il, ok := normalizeRMS(emath.Vec3{}); ok || il != Neutral {
		t.Errorf("zero vector: got %v, %v", il, ok)
	}
}

func TestIllumination_Report(t *testing.T) {
	il := Illumination{0.5, 1, 2}
	if il.Channel(0) != 2 || il.Channel(2) != 0.5 {
		t.Errorf("Channel: got %f, %f", il.Channel(0), il.Channel(2))
	}
	if hex := il.Color().Hex(); hex[:3] != "#ff" {
		t.Errorf("reddish illuminant gave %s", hex)
	}
	if Neutral.Color().Hex() != "#ffffff" {
		t.Errorf("neutral gave %s", Neutral.Color().Hex())
	}
}
