package retinex

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// LoadConfig reads a YAML config file over the top of the defaults.
func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", filename, err)
	}

	return newConfigFromYaml(contents)
}

// LoadImage decodes an image file, picking the decoder from the
// extension: TIFF and Radiance HDR explicitly, anything else through
// image.Decode (PNG, JPEG, BMP). EXIF data is picked up if present.
func LoadImage(filename string) (*Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %w", filename, err)
	}
	defer reader.Close()

	var img image.Image

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		if img, err = tiff.Decode(reader); err != nil {
			return nil, fmt.Errorf("tiff loading '%s': %w", filename, err)
		}
	case ".hdr":
		if img, err = rgbe.Decode(reader); err != nil {
			return nil, fmt.Errorf("rgbe loading '%s': %w", filename, err)
		}
	default:
		if img, _, err = image.Decode(reader); err != nil {
			return nil, fmt.Errorf("image loading '%s': %w", filename, err)
		}
	}

	im, err := NewImage(img)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	im.LoadFilename = filename
	im.Exif = readExifSummary(filename)

	return im, nil
}
