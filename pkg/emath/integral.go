package emath

import "fmt"

// An IntegralTable (summed-area table) holds per-channel prefix sums
// over a PixelGrid, padded with a zero row and column; entry (r,c) is
// the sum of all pixels above and to the left of (r,c) in the grid.
type IntegralTable struct {
	stride int      // cols+1
	sums   []Vec3
}

func NewIntegralTable(g *PixelGrid) IntegralTable {
	rows, cols := g.Rows(), g.Cols()
	t := IntegralTable{
		stride: cols+1,
		sums:   make([]Vec3, (rows+1)*(cols+1)),
	}

	for r:=0; r<rows; r++ {
		for c:=0; c<cols; c++ {
			p := g.Get(r, c)
			up, left, diag := t.at(r, c+1), t.at(r+1, c), t.at(r, c)
			var s Vec3
			for k:=0; k<3; k++ {
				s[k] = p[k] - diag[k] + up[k] + left[k]
			}
			t.sums[(r+1)*t.stride + c+1] = s
		}
	}

	return t
}

func (t *IntegralTable)at(r, c int) Vec3 { return t.sums[r*t.stride + c] }

// WindowSum returns the sum over grid rows [r0,r1) and cols [c0,c1).
// The bounds must already be clamped to the grid.
func (t *IntegralTable)WindowSum(r0, c0, r1, c1 int) Vec3 {
	a, b, c, d := t.at(r1, c1), t.at(r1, c0), t.at(r0, c1), t.at(r0, c0)
	return Vec3{
		a[0] - b[0] - c[0] + d[0],
		a[1] - b[1] - c[1] + d[1],
		a[2] - b[2] - c[2] + d[2],
	}
}

// BoxFilter returns a new grid where each pixel is the mean of the
// kernelSize x kernelSize window around it. The window spans
// [-(k-1)/2, +k/2], so even sizes lean towards higher indices. Near the
// borders the window is clipped to the grid, and the divisor shrinks
// to the area actually covered.
func (g *PixelGrid)BoxFilter(kernelSize int) (PixelGrid, error) {
	if kernelSize <= 0 {
		return PixelGrid{}, fmt.Errorf("box filter kernel size %d: %w", kernelSize, ErrInvalidArgument)
	}

	// A 1x1 window is the pixel itself; skip the table and its rounding
	if kernelSize == 1 {
		return g.Copy(), nil
	}

	rows, cols := g.Rows(), g.Cols()
	out := g.NewFromThis()
	t := NewIntegralTable(g)

	before, after := (kernelSize-1)/2, kernelSize/2

	for r:=0; r<rows; r++ {
		r0, r1 := clampInt(r-before, 0, rows), clampInt(r+after+1, 0, rows)

		for c:=0; c<cols; c++ {
			c0, c1 := clampInt(c-before, 0, cols), clampInt(c+after+1, 0, cols)

			area := float64((r1-r0) * (c1-c0))
			out.Set(r, c, t.WindowSum(r0, c0, r1, c1).Scale(1.0 / area))
		}
	}

	return out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo { return lo }
	if v > hi { return hi }
	return v
}
