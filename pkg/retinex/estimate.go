package retinex

import(
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/abworrall/rsprays/pkg/emath"
	"github.com/abworrall/rsprays/pkg/sprays"
)

// sprayPoolFactor sets how many sprays get generated per spray sampled
// at each grid pixel.
const sprayPoolFactor = 1000

// An Estimation is the output of Estimate: the illumination, plus some
// stats about how it was arrived at.
type Estimation struct {
	Illumination
	Report
}

// Estimate runs random sprays Retinex over a subsampled grid of `src`
// and reduces it to one global illumination vector. The grid picks every
// RowsStep'th row and ColsStep'th col, but the sprays sample the full
// resolution image. cfg.UpperBound must already be resolved (> 0).
//
// All randomness comes from `rng`, so a seeded source gives repeatable
// results.
func Estimate(src *emath.PixelGrid, cfg Config, rng *rand.Rand) (Estimation, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return Estimation{}, err
	}
	if !(cfg.UpperBound > 0) {
		return Estimation{}, fmt.Errorf("upperbound=%f, need > 0: %w", cfg.UpperBound, ErrInvalidArgument)
	}
	if rng == nil {
		return Estimation{}, fmt.Errorf("nil random source: %w", ErrInvalidArgument)
	}

	rows, cols := src.Rows(), src.Cols()
	if rows == 0 || cols == 0 {
		return Estimation{}, fmt.Errorf("source is %dx%d: %w", rows, cols, ErrEmptyInput)
	}
	outRows, outCols := rows / cfg.RowsStep, cols / cfg.ColsStep
	if outRows == 0 || outCols == 0 {
		return Estimation{}, fmt.Errorf("source %dx%d smaller than one (%d,%d) step: %w",
			rows, cols, cfg.RowsStep, cfg.ColsStep, ErrEmptyInput)
	}

	// Spray offsets live in the unit disk; the image diagonal scales them up
	radius := math.Round(math.Hypot(float64(rows), float64(cols)))

	pool, err := sprays.Generate(rng, sprayPoolFactor * cfg.Sprays, cfg.SpraySize)
	if err != nil {
		return Estimation{}, err
	}

	log.Printf("Estimating illumination over %dx%d grid, %s, radius %.0f", outRows, outCols, pool, radius)

	resized := emath.NewPixelGrid(outRows, outCols)
	dest    := emath.NewPixelGrid(outRows, outCols)
	rep     := newReport(outRows, outCols, radius)

	for outRow:=0; outRow<outRows; outRow++ {
		for outCol:=0; outCol<outCols; outCol++ {
			row, col := outRow * cfg.RowsStep, outCol * cfg.ColsStep

			resized.Set(outRow, outCol, src.Get(row, col))

			est := sampleSprays(src, pool, rng, row, col, radius, cfg.Sprays)
			est.CeilingAt(1.0)

			// A zero channel would blow up the division below; neutralize
			// the cell, and zero its source so it adds nothing to the mean.
			if est[0] == 0.0 || est[1] == 0.0 || est[2] == 0.0 {
				est = emath.Vec3{1, 1, 1}
				resized.Set(outRow, outCol, emath.Vec3{})
				rep.Degenerate++
			} else {
				rep.record(est)
			}

			dest.Set(outRow, outCol, est)
		}
	}

	if cfg.KernelSize > 1 {
		if resized, err = resized.BoxFilter(cfg.KernelSize); err != nil {
			return Estimation{}, err
		}
		if dest, err = dest.BoxFilter(cfg.KernelSize); err != nil {
			return Estimation{}, err
		}
	}

	if cfg.DumpGrids || cfg.Verbosity > 1 {
		dumpGrids(&resized, &dest)
	}

	// Per-cell illumination is source / (upperBound * estimate); average it
	sum := emath.Vec3{}
	for r:=0; r<outRows; r++ {
		for c:=0; c<outCols; c++ {
			sum = sum.Add(resized.Get(r, c).Div(dest.Get(r, c).Scale(cfg.UpperBound)))
		}
	}
	mean := sum.Scale(1.0 / float64(outRows*outCols))

	il, ok := normalizeRMS(mean.Swap02())
	if !ok {
		log.Printf("Illumination estimate has no magnitude (%d/%d cells degenerate), using neutral",
			rep.Degenerate, outRows*outCols)
	}

	rep.Elapsed = time.Since(start)
	return Estimation{Illumination: il, Report: rep}, nil
}

// sampleSprays averages, over N randomly picked sprays, the ratio of the
// center pixel to the brightest value seen (per channel) along the spray.
func sampleSprays(src *emath.PixelGrid, pool *sprays.Set, rng *rand.Rand, row, col int, radius float64, N int) emath.Vec3 {
	center := src.Get(row, col)
	acc := emath.Vec3{}

	for i:=0; i<N; i++ {
		max := emath.Vec3{}

		for _, off := range pool.Pick(rng) {
			r := row + emath.RoundToInt(radius * off[1])
			c := col + emath.RoundToInt(radius * off[0])
			if !src.In(r, c) {
				continue
			}

			p := src.Get(r, c)
			for k:=0; k<3; k++ {
				if p[k] > max[k] { max[k] = p[k] }
			}
		}

		for k:=0; k<3; k++ {
			if max[k] == 0.0 { max[k] = 1.0 }
			acc[k] += center[k] / max[k]
		}
	}

	return acc.Scale(1.0 / float64(N))
}

func dumpGrids(resized, dest *emath.PixelGrid) {
	for _, g := range []struct{
		name string
		grid *emath.PixelGrid
	}{
		{"resized-source", resized},
		{"estimate", dest},
	}{
		filename := fmt.Sprintf("grid-%s.png", g.name)
		if err := g.grid.ToImg(fmt.Sprintf("%s %s", g.name, g.grid.Stats()), filename); err != nil {
			log.Printf("dump grid %s: %v", filename, err)
		}
	}
}

// EstimateImage resolves the image-dependent parts of the config (the
// upper bound, the random source) and runs Estimate on the image.
func EstimateImage(im *Image, cfg Config) (Estimation, error) {
	cfg = cfg.ResolveUpperBound(im.Depth)
	return Estimate(&im.Grid, cfg, cfg.NewRand())
}
