package emath

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
)

// A PixelGrid is a row-major grid of 3-channel float pixels, held in a
// single contiguous slice. Accessors take (row, col), and panic if the
// position is outside the grid rather than silently wrapping into the
// next row.
type PixelGrid struct {
	cols   int
	values []Vec3
}

func NewPixelGrid(rows, cols int) PixelGrid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("emath.NewPixelGrid: bad dimensions %dx%d", rows, cols))
	}
	return PixelGrid{
		cols:   cols,
		values: make([]Vec3, rows*cols),
	}
}

func (g *PixelGrid)NewFromThis() PixelGrid { return NewPixelGrid(g.Rows(), g.Cols()) }
func (g *PixelGrid)Cols() int              { return g.cols }
func (g *PixelGrid)Empty() bool            { return len(g.values) == 0 }
func (g *PixelGrid)In(row, col int) bool   { return row >= 0 && row < g.Rows() && col >= 0 && col < g.cols }

func (g *PixelGrid)Rows() int {
	if g.cols == 0 { return 0 }
	return len(g.values) / g.cols
}

func (g *PixelGrid)Get(row, col int) Vec3 {
	g.mustBeIn(row, col)
	return g.values[g.cols*row + col]
}

func (g *PixelGrid)Set(row, col int, v Vec3) {
	g.mustBeIn(row, col)
	g.values[g.cols*row + col] = v
}

func (g *PixelGrid)mustBeIn(row, col int) {
	if !g.In(row, col) {
		panic(fmt.Sprintf("emath.PixelGrid: (%d,%d) outside %dx%d", row, col, g.Rows(), g.cols))
	}
}

func (g *PixelGrid)Copy() PixelGrid {
	g2 := PixelGrid{cols: g.cols, values: make([]Vec3, len(g.values))}
	copy(g2.values, g.values)
	return g2
}

// Apply maps every pixel through f, into a new grid.
func (g *PixelGrid)Apply(f func(Vec3) Vec3) PixelGrid {
	g2 := g.NewFromThis()
	for i, v := range g.values {
		g2.values[i] = f(v)
	}
	return g2
}

// Mean is the per-channel arithmetic mean over every pixel.
func (g *PixelGrid)Mean() Vec3 {
	sum := Vec3{}
	for _, v := range g.values {
		sum = sum.Add(v)
	}
	if len(g.values) == 0 {
		return sum
	}
	return sum.Scale(1.0 / float64(len(g.values)))
}

func (g *PixelGrid)Stats() string {
	min := math.MaxFloat64
	max := -1.0 * min

	for _, v := range g.values {
		for k:=0; k<3; k++ {
			if v[k] > max { max = v[k] }
			if v[k] < min { min = v[k] }
		}
	}
	return fmt.Sprintf("pg[%dx%d, vals{%f,%f}]", g.Rows(), g.Cols(), min, max)
}

// ToImg saves the grid as a PNG with a caption. Values are scaled by the
// largest channel value in the grid (so relative color survives), then
// gamma expanded to look normal for human vision.
func (g *PixelGrid)ToImg(title, filename string) error {
	max := 0.0
	for _, v := range g.values {
		for k:=0; k<3; k++ {
			if v[k] > max { max = v[k] }
		}
	}
	if max == 0.0 { max = 1.0 }

	img := image.NewRGBA64(image.Rect(0, 0, g.Cols(), g.Rows()))
	for row:=0; row<g.Rows(); row++ {
		for col:=0; col<g.Cols(); col++ {
			v := g.Get(row, col).Scale(1.0 / max)
			v.FloorAt(0.0)
			img.Set(col, row, color.RGBA64{
				uint16(GammaExpand_F64(v[0]) * 65535.0),
				uint16(GammaExpand_F64(v[1]) * 65535.0),
				uint16(GammaExpand_F64(v[2]) * 65535.0),
				0xFFFF,
			})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,1,1)
	dc.DrawString(title, 10, 20)
	return dc.SavePNG(filename)
}
