// Package selection holds the rectangular selection model: the rectangle
// itself, its resize handles, and the drag state machine that edits it.
package selection

import (
	"fmt"
	"image"
	"math"

	"github.com/example/cropview/internal/geom"
)

// Rect is an axis-aligned rectangle in image coordinates. Size is
// non-negative once normalized; a live drag may leave it negative until the
// edit ends.
type Rect struct {
	Origin geom.Point
	Size   geom.Vector
}

// Span returns the normalized rectangle with corners a and b.
func Span(a, b geom.Point) Rect {
	return Rect{Origin: a.Min(b), Size: b.Sub(a).Abs()}
}

// Max returns the corner opposite the origin.
func (r Rect) Max() geom.Point { return r.Origin.Add(r.Size) }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() geom.Point { return r.Origin.Add(r.Size.Scale(0.5)) }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.Size.X == 0 || r.Size.Y == 0 }

// Normalize flips any negative span so the size is non-negative.
func (r Rect) Normalize() Rect { return Span(r.Origin, r.Max()) }

// Clamp limits both corners to [0, bounds] and normalizes the result.
// Clamping is idempotent.
func (r Rect) Clamp(bounds geom.Vector) Rect {
	lo := r.Origin.Clamp(geom.Vector{}, bounds)
	hi := r.Max().Clamp(geom.Vector{}, bounds)
	return Span(lo, hi)
}

// Corner returns the position of the given handle on the rectangle: a
// corner, an edge midpoint, or the centre for HandleMove.
func (r Rect) Corner(h Handle) geom.Point {
	p, q, c := r.Origin, r.Max(), r.Center()
	switch h {
	case HandleTopLeft:
		return p
	case HandleTopRight:
		return geom.Pt(q.X, p.Y)
	case HandleBottomRight:
		return q
	case HandleBottomLeft:
		return geom.Pt(p.X, q.Y)
	case HandleTop:
		return geom.Pt(c.X, p.Y)
	case HandleBottom:
		return geom.Pt(c.X, q.Y)
	case HandleLeft:
		return geom.Pt(p.X, c.Y)
	case HandleRight:
		return geom.Pt(q.X, c.Y)
	default:
		return c
	}
}

// Image converts the rectangle to integer pixel bounds, rounding each
// corner to the nearest pixel.
func (r Rect) Image() image.Rectangle {
	n := r.Normalize()
	p, q := n.Origin.Round(), n.Max().Round()
	return image.Rect(int(p.X), int(p.Y), int(q.X), int(q.Y))
}

// FromImage converts integer pixel bounds to a Rect.
func FromImage(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return Rect{
		Origin: geom.Pt(float64(ir.Min.X), float64(ir.Min.Y)),
		Size:   geom.Vec(float64(ir.Dx()), float64(ir.Dy())),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s,%s %sx%s", num(r.Origin.X), num(r.Origin.Y), num(r.Size.X), num(r.Size.Y))
}

func num(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
