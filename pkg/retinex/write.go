package retinex

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/tiff"
)

// Write encodes the image, picking the format from the extension.
// .hdr writes floats via RGBE; the others go through ToImage, so 16-bit
// survives in PNG and TIFF, and JPEG gets 8 bits.
func (im *Image)Write(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".hdr":
	default:
		return fmt.Errorf("write '%s': unsupported extension '%s'", filename, ext)
	}

	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	}
	defer writer.Close()

	switch ext {
	case ".png":
		err = png.Encode(writer, im.ToImage())
	case ".jpg", ".jpeg":
		err = jpeg.Encode(writer, im.ToImage(), &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		err = tiff.Encode(writer, im.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	case ".hdr":
		err = rgbe.Encode(writer, im)
	}

	if err != nil {
		return fmt.Errorf("encoding '%s': %w", filename, err)
	}
	return writer.Close()
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
