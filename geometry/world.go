package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Sub returns a - b.
func Sub(a, b orb.Point) orb.Point {
	return orb.Point{a[0] - b[0], a[1] - b[1]}
}

// Add returns a + b.
func Add(a, b orb.Point) orb.Point {
	return orb.Point{a[0] + b[0], a[1] + b[1]}
}

// Scale returns p scaled by s.
func Scale(p orb.Point, s float64) orb.Point {
	return orb.Point{p[0] * s, p[1] * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b orb.Point) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// MagnitudeSq returns the squared length of p.
func MagnitudeSq(p orb.Point) float64 {
	return p[0]*p[0] + p[1]*p[1]
}

// Magnitude returns the length of p.
func Magnitude(p orb.Point) float64 {
	return math.Sqrt(MagnitudeSq(p))
}

// ManhattanLength returns |x| + |y| of p.
func ManhattanLength(p orb.Point) float64 {
	return math.Abs(p[0]) + math.Abs(p[1])
}

// DistanceToSegment returns the distance from p to the segment a-b.
// A degenerate segment is treated as the single point a.
func DistanceToSegment(p, a, b orb.Point) float64 {
	ab := Sub(b, a)
	lenSq := MagnitudeSq(ab)
	if lenSq == 0 {
		return Magnitude(Sub(p, a))
	}
	t := Dot(Sub(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Add(a, Scale(ab, t))
	return Magnitude(Sub(p, closest))
}

// PadBound grows a bound by pad world units on every side.
func PadBound(b orb.Bound, pad float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.Min[0] - pad, b.Min[1] - pad},
		Max: orb.Point{b.Max[0] + pad, b.Max[1] + pad},
	}
}
