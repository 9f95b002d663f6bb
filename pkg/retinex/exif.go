package retinex

import(
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// ExifSummary is the bit of EXIF that matters when looking at a color
// cast: which camera, and what it thought the white balance was.
type ExifSummary struct {
	Model          string
	WhiteBalance   string  // "auto", "manual", or "" if not recorded
}

func (es ExifSummary)String() string {
	if es.Model == "" && es.WhiteBalance == "" {
		return "no exif"
	}
	return fmt.Sprintf("%s, wb=%s", es.Model, es.WhiteBalance)
}

// readExifSummary never fails; most inputs (PNGs, HDRs, stripped JPEGs)
// have no EXIF at all, so missing data is just left blank.
func readExifSummary(filename string) ExifSummary {
	es := ExifSummary{}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return es
	}

	reader, err := os.Open(filename)
	if err != nil {
		return es
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return es
	}

	if tag, err := ex.Get(exif.Model); err == nil {
		if val, err := tag.StringVal(); err == nil {
			es.Model = strings.TrimSpace(val)
		}
	}

	if tag, err := ex.Get(exif.WhiteBalance); err == nil {
		if val, err := tag.Int(0); err == nil {
			switch val {
			case 0:  es.WhiteBalance = "auto"
			case 1:  es.WhiteBalance = "manual"
			default: es.WhiteBalance = fmt.Sprintf("%d", val)
			}
		}
	}

	return es
}
