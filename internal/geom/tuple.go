// Package geom provides the 2D point/vector algebra and the 3x3 affine
// transform shared by the view and selection code.
package geom

import "math"

// Point is an affine position. Its homogeneous coordinate is 1 so
// transforms apply their translation to it.
type Point struct {
	X, Y float64
}

// Vector is a displacement or extent. Its homogeneous coordinate is 0 so
// transforms ignore their translation.
type Vector struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Z returns the homogeneous coordinate of a point.
func (Point) Z() float64 { return 1 }

// Add translates p by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }

// SubVec translates p by -v.
func (p Point) SubVec(v Vector) Point { return Point{p.X - v.X, p.Y - v.Y} }

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Round rounds both components half away from zero.
func (p Point) Round() Point { return Point{math.Round(p.X), math.Round(p.Y)} }

// Clamp limits each component to the matching components of min and max,
// both measured from the origin.
func (p Point) Clamp(min, max Vector) Point {
	return Point{clamp(p.X, min.X, max.X), clamp(p.Y, min.Y, max.Y)}
}

// ClampScalar limits both components to [min, max].
func (p Point) ClampScalar(min, max float64) Point {
	return Point{clamp(p.X, min, max), clamp(p.Y, min, max)}
}

// DistanceSquared returns the squared euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	return q.Sub(p).LengthSquared()
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point { return Point{math.Min(p.X, q.X), math.Min(p.Y, q.Y)} }

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point { return Point{math.Max(p.X, q.X), math.Max(p.Y, q.Y)} }

// Vector returns the displacement of p from the origin.
func (p Point) Vector() Vector { return Vector(p) }

// Z returns the homogeneous coordinate of a vector.
func (Vector) Z() float64 { return 0 }

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y} }

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector { return Vector{s * v.X, s * v.Y} }

// Abs returns v with both components made non-negative.
func (v Vector) Abs() Vector { return Vector{math.Abs(v.X), math.Abs(v.Y)} }

// Round rounds both components half away from zero.
func (v Vector) Round() Vector { return Vector{math.Round(v.X), math.Round(v.Y)} }

// Clamp limits each component to the matching components of min and max.
func (v Vector) Clamp(min, max Vector) Vector {
	return Vector{clamp(v.X, min.X, max.X), clamp(v.Y, min.Y, max.Y)}
}

// ClampScalar limits both components to [min, max].
func (v Vector) ClampScalar(min, max float64) Vector {
	return Vector{clamp(v.X, min, max), clamp(v.Y, min, max)}
}

// LengthSquared returns the squared euclidean length of v.
func (v Vector) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Point returns the position reached by displacing the origin by v.
func (v Vector) Point() Point { return Point(v) }

// clamp applies the lower bound first and the upper bound second, so an
// inverted range resolves to max.
func clamp(x, min, max float64) float64 {
	return math.Min(math.Max(x, min), max)
}
