package retinex

import "github.com/abworrall/rsprays/pkg/emath"

// Correct removes the color cast by dividing each channel by the matching
// illumination channel (von Kries style). Output is a new grid in the
// same (unclamped) range as the input.
func Correct(src *emath.PixelGrid, il Illumination) (emath.PixelGrid, error) {
	if err := il.Validate(); err != nil {
		return emath.PixelGrid{}, err
	}

	div := il.InImageOrder()
	return src.Apply(func(v emath.Vec3) emath.Vec3 { return v.Div(div) }), nil
}
