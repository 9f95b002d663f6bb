package retinex

import(
	"fmt"

	"github.com/abworrall/rsprays/pkg/emath"
)

// CastRatios measures a color cast as the average per-pixel ratio of
// red and blue to green. A neutral image sits near 1.0 for both.
type CastRatios struct {
	RedGreen     float64
	BlueGreen    float64
	Pixels       int     // how many pixels were comparable
}

func (cr CastRatios)String() string {
	return fmt.Sprintf("Cast[R/G %.4f, B/G %.4f, over %d pix]", cr.RedGreen, cr.BlueGreen, cr.Pixels)
}

// MeasureCast averages the channel ratios over every pixel that isn't
// black in the green channel. Pixels with any negative channel are
// ignored, as the ratio means nothing there.
func MeasureCast(g *emath.PixelGrid) CastRatios {
	cr := CastRatios{}

	for r:=0; r<g.Rows(); r++ {
		for c:=0; c<g.Cols(); c++ {
			v := g.Get(r, c)
			if v[1] <= 0 || v[0] < 0 || v[2] < 0 {
				continue
			}
			cr.RedGreen  += v[0] / v[1]
			cr.BlueGreen += v[2] / v[1]
			cr.Pixels++
		}
	}

	if cr.Pixels > 0 {
		cr.RedGreen  /= float64(cr.Pixels)
		cr.BlueGreen /= float64(cr.Pixels)
	}

	return cr
}
