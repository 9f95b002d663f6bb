package sprays

// Random sprays: sets of 2D offsets inside the unit disk, used to pick
// a random neighborhood around a pixel. Scale them by the image
// diagonal to get pixel offsets.

import(
	"fmt"
	"math"
	"math/rand"

	"github.com/abworrall/rsprays/pkg/emath"
)

// A Set is a fixed pool of sprays, all of the same size, held in one
// contiguous slice. Spray i is offsets[i*size : (i+1)*size].
type Set struct {
	size    int
	offsets []emath.Vec2
}

// Generate builds `count` sprays of `size` offsets each. Angles are
// uniform in [0, 2pi) and radii uniform in [0, 1); note this is not
// uniform by area, samples bunch up towards the center of the spray.
func Generate(rng *rand.Rand, count, size int) (*Set, error) {
	if count <= 0 || size <= 0 {
		return nil, fmt.Errorf("sprays.Generate(count=%d, size=%d): %w", count, size, emath.ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("sprays.Generate: nil random source: %w", emath.ErrInvalidArgument)
	}

	s := &Set{
		size:    size,
		offsets: make([]emath.Vec2, count*size),
	}

	for i := range s.offsets {
		angle := 2 * math.Pi * rng.Float64()
		r     := rng.Float64()
		s.offsets[i] = emath.Vec2{r * math.Cos(angle), r * math.Sin(angle)}
	}

	return s, nil
}

// FromOffsets builds a Set from fixed offsets, to be split into sprays
// of `size` each. The offsets are copied. Handy for fixed patterns where
// the sampling needs to be predictable.
func FromOffsets(size int, offsets []emath.Vec2) (*Set, error) {
	if size <= 0 || len(offsets) == 0 || len(offsets) % size != 0 {
		return nil, fmt.Errorf("sprays.FromOffsets(size=%d, %d offsets): %w", size, len(offsets), emath.ErrInvalidArgument)
	}
	s := &Set{size: size, offsets: make([]emath.Vec2, len(offsets))}
	copy(s.offsets, offsets)
	return s, nil
}

func (s *Set)Len() int  { return len(s.offsets) / s.size }
func (s *Set)Size() int { return s.size }

// Spray returns the i'th spray. The slice aliases the pool; don't write to it.
func (s *Set)Spray(i int) []emath.Vec2 {
	return s.offsets[i*s.size : (i+1)*s.size : (i+1)*s.size]
}

// Pick returns a uniformly chosen spray. The same spray can come back
// any number of times.
func (s *Set)Pick(rng *rand.Rand) []emath.Vec2 {
	return s.Spray(rng.Intn(s.Len()))
}

func (s *Set)String() string {
	return fmt.Sprintf("Sprays[%d x %d offsets]", s.Len(), s.size)
}
