package ecolor

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/rsprays/pkg/emath"
)

// A Depth is the storage representation of each color channel in a
// decoded image. Pixels always get processed as float64; the Depth
// decides how they get read in, and how they get written back out.
type Depth int

const(
	Depth8     Depth = 8
	Depth16    Depth = 16
	DepthFloat Depth = 64
)

func (d Depth)String() string {
	switch d {
	case Depth8:     return "8-bit"
	case Depth16:    return "16-bit"
	case DepthFloat: return "float"
	}
	return fmt.Sprintf("Depth(%d)", int(d))
}

// DefaultUpperBound is the maximal channel value assumed when the user
// doesn't give one. Float images get the 8-bit bound; the estimate is
// normalized at the end so the choice only moves its raw scale.
func (d Depth)DefaultUpperBound() float64 {
	if d == Depth16 {
		return 65535.0
	}
	return 255.0
}

func DetectDepth(img image.Image) Depth {
	if _, ok := img.(hdr.Image); ok {
		return DepthFloat
	}

	switch img.ColorModel() {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
		return Depth16
	}
	return Depth8
}

// Channels reads a color as three floats, in the native range of the
// given depth: [0,255], [0,65535], or unscaled for floats. Alpha is
// dropped; non-opaque colors are un-premultiplied first.
func Channels(c color.Color, d Depth) emath.Vec3 {
	if d == DepthFloat {
		if hc, ok := c.(hdrcolor.Color); ok {
			r, g, b, _ := hc.HDRRGBA()
			return emath.Vec3{r, g, b}
		}
		// Not really HDR; fall through and read it as 16-bit, scaled to [0,1]
		return Channels(c, Depth16).Scale(1.0 / 65535.0)
	}

	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	if d == Depth8 {
		return emath.Vec3{float64(n.R >> 8), float64(n.G >> 8), float64(n.B >> 8)}
	}
	return emath.Vec3{float64(n.R), float64(n.G), float64(n.B)}
}

// Saturate rounds to the nearest integer and clips into [0, max], so
// out-of-range values pin at the ends instead of wrapping. NaN maps to 0.
func Saturate(v, max float64) uint16 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	v = math.Round(v)
	if v >= max {
		return uint16(max)
	}
	return uint16(v)
}

func Saturate8(v float64) uint8   { return uint8(Saturate(v, 255.0)) }
func Saturate16(v float64) uint16 { return Saturate(v, 65535.0) }

func ToHDRColor(v emath.Vec3) hdrcolor.RGB {
	return hdrcolor.RGB{R: v[0], G: v[1], B: v[2]}
}
