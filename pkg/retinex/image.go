package retinex

import(
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/rsprays/pkg/ecolor"
	"github.com/abworrall/rsprays/pkg/emath"
)

// Image is a decoded photo, held as a grid of float pixels in the
// native range of its Depth. Implements image.Image and hdr.Image (with
// integer depths scaled into [0,1]), so it can be fed straight to the
// RGBE encoder and the tone mappers.
type Image struct {
	LoadFilename string
	Depth        ecolor.Depth
	Grid         emath.PixelGrid
	Exif         ExifSummary
}

// Implement image.Image
func (im *Image)ColorModel() color.Model { return hdrcolor.RGBModel }
func (im *Image)Bounds() image.Rectangle { return image.Rect(0, 0, im.Grid.Cols(), im.Grid.Rows()) }
func (im *Image)At(x, y int) color.Color { return im.HDRAt(x, y) }

// Implement hdr.Image
func (im *Image)Size() int               { return im.Grid.Rows() * im.Grid.Cols() }
func (im *Image)HDRAt(x, y int) hdrcolor.Color {
	v := im.Grid.Get(y, x)
	if im.Depth != ecolor.DepthFloat {
		v = v.Scale(1.0 / im.Depth.DefaultUpperBound())
	}
	return ecolor.ToHDRColor(v)
}

func (im *Image)String() string {
	return fmt.Sprintf("Image[%s, %dx%d, %s]", im.LoadFilename, im.Grid.Cols(), im.Grid.Rows(), im.Depth)
}

// NewImage copies a decoded image into a float grid. Alpha is dropped.
func NewImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image bounds %s: %w", bounds, ErrEmptyInput)
	}

	im := &Image{
		Depth: ecolor.DetectDepth(img),
		Grid:  emath.NewPixelGrid(bounds.Dy(), bounds.Dx()),
	}

	hdrImg, isHDR := img.(hdr.Image)

	for y:=bounds.Min.Y; y<bounds.Max.Y; y++ {
		for x:=bounds.Min.X; x<bounds.Max.X; x++ {
			var v emath.Vec3
			if isHDR {
				r, g, b, _ := hdrImg.HDRAt(x, y).HDRRGBA()
				v = emath.Vec3{r, g, b}
			} else {
				v = ecolor.Channels(img.At(x, y), im.Depth)
			}
			im.Grid.Set(y-bounds.Min.Y, x-bounds.Min.X, v)
		}
	}

	return im, nil
}

// Corrected returns a new Image with the color cast removed, in the
// same depth as this one. Integer depths are rounded and clipped into
// their range; float images are left unclamped.
func (im *Image)Corrected(il Illumination) (*Image, error) {
	g, err := Correct(&im.Grid, il)
	if err != nil {
		return nil, err
	}

	switch im.Depth {
	case ecolor.Depth8:
		g = g.Apply(func(v emath.Vec3) emath.Vec3 {
			return emath.Vec3{float64(ecolor.Saturate8(v[0])), float64(ecolor.Saturate8(v[1])), float64(ecolor.Saturate8(v[2]))}
		})
	case ecolor.Depth16:
		g = g.Apply(func(v emath.Vec3) emath.Vec3 {
			return emath.Vec3{float64(ecolor.Saturate16(v[0])), float64(ecolor.Saturate16(v[1])), float64(ecolor.Saturate16(v[2]))}
		})
	}

	return &Image{
		LoadFilename: im.LoadFilename,
		Depth:        im.Depth,
		Grid:         g,
		Exif:         im.Exif,
	}, nil
}

// ToImage converts back to a stock image type for the depth: RGBA for
// 8-bit, RGBA64 for 16-bit. Float images come back as themselves.
func (im *Image)ToImage() image.Image {
	rows, cols := im.Grid.Rows(), im.Grid.Cols()

	switch im.Depth {
	case ecolor.Depth8:
		out := image.NewRGBA(image.Rect(0, 0, cols, rows))
		for y:=0; y<rows; y++ {
			for x:=0; x<cols; x++ {
				v := im.Grid.Get(y, x)
				out.SetRGBA(x, y, color.RGBA{ecolor.Saturate8(v[0]), ecolor.Saturate8(v[1]), ecolor.Saturate8(v[2]), 0xff})
			}
		}
		return out

	case ecolor.Depth16:
		out := image.NewRGBA64(image.Rect(0, 0, cols, rows))
		for y:=0; y<rows; y++ {
			for x:=0; x<cols; x++ {
				v := im.Grid.Get(y, x)
				out.SetRGBA64(x, y, color.RGBA64{ecolor.Saturate16(v[0]), ecolor.Saturate16(v[1]), ecolor.Saturate16(v[2]), 0xffff})
			}
		}
		return out
	}

	return im
}
