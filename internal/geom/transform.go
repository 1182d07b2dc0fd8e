package geom

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Transform is a 3x3 matrix acting on column vectors [x y z]ᵀ. Only affine
// maps are produced by this package, so the last row is normally [0 0 1],
// but all nine entries take part in every operation.
//
// The zero value is the zero matrix.
type Transform struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// NewTransform builds a transform from its entries in row-major order.
func NewTransform(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) Transform {
	return Transform{
		M11: m11, M12: m12, M13: m13,
		M21: m21, M22: m22, M23: m23,
		M31: m31, M32: m32, M33: m33,
	}
}

// Identity returns the multiplicative identity.
func Identity() Transform {
	return NewTransform(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Transform {
	return NewTransform(1, 0, x, 0, 1, y, 0, 0, 1)
}

// Scale returns a uniform scale about the origin.
func Scale(s float64) Transform {
	return NewTransform(s, 0, 0, 0, s, 0, 0, 0, 1)
}

// Det returns the determinant.
func (a Transform) Det() float64 {
	return a.M11*(a.M22*a.M33-a.M23*a.M32) +
		a.M12*(a.M23*a.M31-a.M21*a.M33) +
		a.M13*(a.M21*a.M32-a.M22*a.M31)
}

// Invert returns the inverse of a. The boolean is false, and the returned
// transform is the zero matrix, when the determinant is exactly zero.
func (a Transform) Invert() (Transform, bool) {
	c11 := a.M22*a.M33 - a.M23*a.M32
	c21 := a.M23*a.M31 - a.M21*a.M33
	c31 := a.M21*a.M32 - a.M22*a.M31
	d := a.M11*c11 + a.M12*c21 + a.M13*c31
	if d == 0 {
		return Transform{}, false
	}
	s := 1 / d
	return NewTransform(
		c11*s, (a.M13*a.M32-a.M12*a.M33)*s, (a.M12*a.M23-a.M13*a.M22)*s,
		c21*s, (a.M11*a.M33-a.M13*a.M31)*s, (a.M13*a.M21-a.M11*a.M23)*s,
		c31*s, (a.M12*a.M31-a.M11*a.M32)*s, (a.M11*a.M22-a.M12*a.M21)*s,
	), true
}

// Mul returns the matrix product a·b. Applying the result is the same as
// applying b first and a second.
func (a Transform) Mul(b Transform) Transform {
	return NewTransform(
		a.M11*b.M11+a.M12*b.M21+a.M13*b.M31,
		a.M11*b.M12+a.M12*b.M22+a.M13*b.M32,
		a.M11*b.M13+a.M12*b.M23+a.M13*b.M33,
		a.M21*b.M11+a.M22*b.M21+a.M23*b.M31,
		a.M21*b.M12+a.M22*b.M22+a.M23*b.M32,
		a.M21*b.M13+a.M22*b.M23+a.M23*b.M33,
		a.M31*b.M11+a.M32*b.M21+a.M33*b.M31,
		a.M31*b.M12+a.M32*b.M22+a.M33*b.M32,
		a.M31*b.M13+a.M32*b.M23+a.M33*b.M33,
	)
}

// Apply multiplies a by the column vector [x y z]ᵀ and returns the first two
// components of the result.
func (a Transform) Apply(x, y, z float64) (float64, float64) {
	return a.M11*x + a.M12*y + a.M13*z,
		a.M21*x + a.M22*y + a.M23*z
}

// Point maps a position, including the translation.
func (a Transform) Point(p Point) Point {
	x, y := a.Apply(p.X, p.Y, p.Z())
	return Point{x, y}
}

// Vector maps a displacement, ignoring the translation.
func (a Transform) Vector(v Vector) Vector {
	x, y := a.Apply(v.X, v.Y, v.Z())
	return Vector{x, y}
}

// Aff3 returns the top two rows in the layout used by golang.org/x/image/draw.
func (a Transform) Aff3() f64.Aff3 {
	return f64.Aff3{a.M11, a.M12, a.M13, a.M21, a.M22, a.M23}
}

func (a Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		a.M11, a.M12, a.M13, a.M21, a.M22, a.M23, a.M31, a.M32, a.M33)
}
