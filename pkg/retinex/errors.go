package retinex

import "github.com/abworrall/rsprays/pkg/emath"

var(
	ErrInvalidArgument = emath.ErrInvalidArgument // bad parameter, or a bad illumination vector
	ErrEmptyInput      = emath.ErrEmptyInput      // zero-area image, or an image smaller than one grid step
)
