package retinex

import(
	"fmt"
	"log"
	"math/rand"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/rsprays/pkg/ecolor"
)

/* Example config file ...

sprays: 1
spraysize: 225
kernelsize: 5
rowsstep: 10
colsstep: 10
upperbound: 0
seed: 1234
tonemapper: reinhard05
previewwidth: 1024

*/

type Config struct {
	Verbosity    int

	Sprays       int      // N, how many sprays to sample per grid pixel
	SpraySize    int      // n, how many points in each spray
	KernelSize   int      // box filter size for smoothing the grids; 1 turns it off
	RowsStep     int      // grid stride, in source rows
	ColsStep     int      // grid stride, in source cols
	UpperBound   float64  // maximal channel value; 0 means pick one from the image depth
	Seed         int64    // seeds the random source; 0 means seed from the clock

	DumpGrids    bool     // write PNGs of the estimation grids
	Tonemapper   string   // for float outputs: write LDR previews via this operator ("all" for every one)
	PreviewWidth int      // downscale previews to this width; 0 keeps full size
}

func NewConfig() Config {
	return Config{
		Sprays:     1,
		SpraySize:  225,
		KernelSize: 5,
		RowsStep:   10,
		ColsStep:   10,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Validate checks the parameters that don't depend on the image.
func (c Config)Validate() error {
	if c.Sprays < 1 {
		return fmt.Errorf("sprays=%d, need >= 1: %w", c.Sprays, ErrInvalidArgument)
	}
	if c.SpraySize < 1 {
		return fmt.Errorf("spraysize=%d, need >= 1: %w", c.SpraySize, ErrInvalidArgument)
	}
	if c.KernelSize < 1 {
		return fmt.Errorf("kernelsize=%d, need >= 1: %w", c.KernelSize, ErrInvalidArgument)
	}
	if c.RowsStep < 1 || c.ColsStep < 1 {
		return fmt.Errorf("steps=(%d,%d), need >= 1: %w", c.RowsStep, c.ColsStep, ErrInvalidArgument)
	}
	if c.UpperBound < 0 {
		return fmt.Errorf("upperbound=%f, need > 0 (or 0 for auto): %w", c.UpperBound, ErrInvalidArgument)
	}
	if c.Tonemapper != "" && c.Tonemapper != "all" && !isTonemapper(c.Tonemapper) {
		return fmt.Errorf("no Tonemapper named '%s', wanted %s: %w", c.Tonemapper, ListTonemappers(), ErrInvalidArgument)
	}
	return nil
}

// ResolveUpperBound fills in the upper bound from the image depth,
// unless one was given explicitly.
func (c Config)ResolveUpperBound(d ecolor.Depth) Config {
	if c.UpperBound == 0 {
		c.UpperBound = d.DefaultUpperBound()
	}
	return c
}

func (c Config)NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if c.Verbosity > 0 {
		log.Printf("Random seed: %d", seed)
	}
	return rand.New(rand.NewSource(seed))
}
