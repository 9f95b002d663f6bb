package emath

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point
)

// Use local types so we can hang methods off them
type Vec2 f64.Vec2
type Vec3 f64.Vec3

func (v Vec2)Norm() float64 { return math.Hypot(v[0], v[1]) }

func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

// Swap02 exchanges the first and third channels (RGB <-> BGR)
func (v Vec3)Swap02() Vec3 { return Vec3{v[2], v[1], v[0]} }

func (v Vec3)Scale(f float64) Vec3 { return Vec3{v[0]*f, v[1]*f, v[2]*f} }

func (v Vec3)Add(w Vec3) Vec3 { return Vec3{v[0]+w[0], v[1]+w[1], v[2]+w[2]} }

// Div divides per channel. No checks for zero, callers own that.
func (v Vec3)Div(w Vec3) Vec3 { return Vec3{v[0]/w[0], v[1]/w[1], v[2]/w[2]} }

func (v *Vec3)FloorAt(min float64) {
	if v[0] < min { v[0] = min }
	if v[1] < min { v[1] = min }
	if v[2] < min { v[2] = min }
}

func (v *Vec3)CeilingAt(max float64) {
	if v[0] > max { v[0] = max }
	if v[1] > max { v[1] = max }
	if v[2] > max { v[2] = max }
}
