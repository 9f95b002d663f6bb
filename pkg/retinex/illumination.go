package retinex

import(
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/abworrall/rsprays/pkg/emath"
)

// An Illumination is the estimated scene illuminant, normalized to unit
// RMS. Its channels are stored in the reverse of the image's order
// (index 0 holds the image's last channel); use Channel() to read it in
// image order.
type Illumination emath.Vec3

var Neutral = Illumination{1, 1, 1}

func (il Illumination)Channel(k int) float64 { return il[2-k] }
func (il Illumination)InImageOrder() emath.Vec3 { return emath.Vec3(il).Swap02() }

// normalizeRMS scales v so that sqrt(mean(v[k]^2)) == 1. The bool is
// false if v has no magnitude to normalize (e.g. every grid cell was
// degenerate), in which case Neutral comes back.
func normalizeRMS(v emath.Vec3) (Illumination, bool) {
	s := v[:]
	rms := floats.Norm(s, 2) / math.Sqrt(3)
	if rms == 0 || math.IsNaN(rms) || math.IsInf(rms, 0) {
		return Neutral, false
	}
	floats.Scale(1.0/rms, s)
	return Illumination(v), true
}

func (il Illumination)Validate() error {
	for k:=0; k<3; k++ {
		if !(il[k] > 0) || math.IsInf(il[k], 0) {
			return fmt.Errorf("illumination %s, component %d not positive: %w", emath.Vec3(il), k, ErrInvalidArgument)
		}
	}
	return nil
}

// Color treats the illumination as a linear RGB color (in image order),
// scaled so the brightest channel is 1.
func (il Illumination)Color() colorful.Color {
	v := il.InImageOrder()
	max := floats.Max(v[:])
	if max > 0 {
		v = v.Scale(1.0 / max)
	}
	return colorful.LinearRgb(v[0], v[1], v[2])
}

func (il Illumination)String() string {
	v := il.InImageOrder()
	c := il.Color()
	x, y, _ := c.Xyy()
	return fmt.Sprintf("Illum[%.4f, %.4f, %.4f] (%s, xy=%.4f,%.4f)", v[0], v[1], v[2], c.Hex(), x, y)
}
