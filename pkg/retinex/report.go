package retinex

import(
	"fmt"
	"log"
	"time"

	"github.com/codahale/hdrhistogram"

	"github.com/abworrall/rsprays/pkg/emath"
)

// Raw cell estimates are in (0,1]; the histograms hold them as integers
// in units of 1/histScale.
const histScale = 10000

// A Report has diagnostics from a run of Estimate.
type Report struct {
	GridRows     int
	GridCols     int
	Degenerate   int             // cells forced to neutral because a channel came out as zero
	Radius       float64         // spray radius in pixels (the image diagonal)
	Elapsed      time.Duration

	hists      [3]*hdrhistogram.Histogram
}

func newReport(rows, cols int, radius float64) Report {
	r := Report{GridRows: rows, GridCols: cols, Radius: radius}
	for k:=0; k<3; k++ {
		r.hists[k] = hdrhistogram.New(1, histScale, 3)
	}
	return r
}

func (r *Report)record(est emath.Vec3) {
	for k:=0; k<3; k++ {
		v := int64(est[k] * histScale + 0.5)
		if v < 1 { v = 1 }
		if v > histScale { v = histScale }
		if err := r.hists[k].RecordValue(v); err != nil {
			log.Printf("report: dropped estimate %f for channel %d: %v", est[k], k, err)
		}
	}
}

func (r Report)Cells() int { return r.GridRows * r.GridCols }

// EstimateQuantile returns the q'th percentile (0-100) of the raw cell
// estimates for image channel k, skipping degenerate cells.
func (r Report)EstimateQuantile(k int, q float64) float64 {
	if r.hists[k] == nil || r.hists[k].TotalCount() == 0 {
		return 0.0
	}
	return float64(r.hists[k].ValueAtQuantile(q)) / histScale
}

func (r Report)String() string {
	str := fmt.Sprintf("Report[grid %dx%d, %d degenerate, radius %.0f, %s]\n",
		r.GridRows, r.GridCols, r.Degenerate, r.Radius, r.Elapsed.Round(time.Millisecond))
	for k, name := range []string{"R", "G", "B"} {
		str += fmt.Sprintf("  estimate %s: p10 %.4f, p50 %.4f, p90 %.4f\n", name,
			r.EstimateQuantile(k, 10), r.EstimateQuantile(k, 50), r.EstimateQuantile(k, 90))
	}
	return str
}
