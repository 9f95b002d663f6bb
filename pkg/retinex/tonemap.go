package retinex

import(
	"fmt"
	"image"
	"log"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
	"golang.org/x/image/draw"
)

var(
	Tonemappers = []string{"drago03", "durand", "icam06", "linear", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

func isTonemapper(name string) bool {
	for _, n := range Tonemappers {
		if n == name {
			return true
		}
	}
	return false
}

// WritePreviews tonemaps the image down to LDR and writes a PNG per
// operator named by cfg.Tonemapper, as "<prefix>-tmo-<name>.png". Useful
// for eyeballing a corrected float image. Returns the files written.
func (im *Image)WritePreviews(cfg Config, prefix string) ([]string, error) {
	names := []string{}
	switch cfg.Tonemapper {
	case "":
		return nil, nil
	case "all":
		names = Tonemappers
	default:
		names = []string{cfg.Tonemapper}
	}

	written := []string{}
	for _, name := range names {
		op, err := SetupTonemapper(name, im)
		if err != nil {
			return written, err
		}

		if cfg.Verbosity > 0 {
			log.Printf("Tonemapping: %s", name)
		}
		ldr := scaleToWidth(op.Perform(), cfg.PreviewWidth)

		filename := fmt.Sprintf("%s-tmo-%s.png", prefix, name)
		if err := WritePNG(ldr, filename); err != nil {
			return written, err
		}
		written = append(written, filename)
	}

	return written, nil
}

// SetupTonemapper tweaks the tmo parameters a little; the defaults tend
// to blow out the highlights, which are exactly the pixels that show a
// cast most clearly.
func SetupTonemapper(name string, img hdr.Image) (tmo.ToneMappingOperator, error) {
	switch name {
	case "drago03":
		op := tmo.NewDefaultDrago03(img)
		op.Bias = 0.85
		return op, nil

	case "durand":
		return tmo.NewDefaultDurand(img), nil

	case "icam06":
		op := tmo.NewDefaultICam06(img)
		op.MaxClipping = 0.999
		return op, nil

	case "linear":
		return tmo.NewLinear(img), nil

	case "reinhard05":
		op := tmo.NewDefaultReinhard05(img)
		op.Chromatic = 0.0 // keep the cast correction; don't let the operator re-tint
		return op, nil
	}

	return nil, fmt.Errorf("ToneMapper %q not recognized, wanted %s: %w", name, ListTonemappers(), ErrInvalidArgument)
}

// scaleToWidth downsamples with Catmull-Rom, keeping the aspect ratio.
// A zero width, or one at least as big as the image, is a no-op.
func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if width <= 0 || width >= b.Dx() {
		return src
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 { height = 1 }

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
