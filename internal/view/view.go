// Package view maintains the image-to-canvas transform and updates it from
// fit, pan and zoom gestures.
package view

import (
	"github.com/example/cropview/internal/geom"
)

// ZoomRate converts a wheel delta into a scale change: a delta of d scales
// by 1 - d*ZoomRate.
const ZoomRate = 0.01

// Limits bounds the horizontal scale (M11) that Zoom may produce. A zero
// field means that side is unbounded; the zero value applies the raw wheel
// formula with no guard at all.
type Limits struct {
	MinScale float64
	MaxScale float64
}

func (l Limits) active() bool { return l.MinScale > 0 || l.MaxScale > 0 }

// Controller owns the current image-to-canvas transform.
type Controller struct {
	t      geom.Transform
	limits Limits
}

// New returns a controller holding the identity transform.
func New(limits Limits) *Controller {
	return &Controller{t: geom.Identity(), limits: limits}
}

// Transform returns the current image-to-canvas transform.
func (c *Controller) Transform() geom.Transform { return c.t }

// Limits returns the configured scale limits.
func (c *Controller) Limits() Limits { return c.limits }

// SetLimits replaces the scale limits. The current transform is left as is.
func (c *Controller) SetLimits(l Limits) { c.limits = l }

// Fit scales img to fit inside canvas without upscaling beyond 1:1 and
// centres it. Degenerate image sizes reset to identity.
func (c *Controller) Fit(canvas, img geom.Vector) {
	if img.X <= 0 || img.Y <= 0 {
		c.t = geom.Identity()
		return
	}
	s := min(canvas.X/img.X, canvas.Y/img.Y, 1)
	u := canvas.Scale(0.5).Sub(img.Scale(0.5 * s))
	c.t = geom.NewTransform(s, 0, u.X, 0, s, u.Y, 0, 0, 1)
}

// Pan post-translates the transform by a canvas-space delta.
func (c *Controller) Pan(delta geom.Vector) {
	c.t.M13 += delta.X
	c.t.M23 += delta.Y
}

// Zoom scales about the canvas point at so that point stays fixed. It
// reports whether the transform changed; with limits configured, a step
// that would collapse or flip the image, or push M11 outside the limits,
// is clipped or refused.
func (c *Controller) Zoom(at geom.Point, delta float64) bool {
	return c.ZoomBy(at, 1-delta*ZoomRate)
}

// ZoomBy scales about at by an explicit factor, subject to the same limits
// as Zoom.
func (c *Controller) ZoomBy(at geom.Point, s float64) bool {
	if c.limits.active() {
		var ok bool
		if s, ok = c.limitFactor(s); !ok {
			return false
		}
	}
	step := geom.Translate(at.X, at.Y).Mul(geom.Scale(s)).Mul(geom.Translate(-at.X, -at.Y))
	c.t = step.Mul(c.t)
	return true
}

func (c *Controller) limitFactor(s float64) (float64, bool) {
	cur := c.t.M11
	if s <= 0 || cur <= 0 {
		return 0, false
	}
	next := cur * s
	if c.limits.MinScale > 0 && next < c.limits.MinScale {
		next = c.limits.MinScale
	}
	if c.limits.MaxScale > 0 && next > c.limits.MaxScale {
		next = c.limits.MaxScale
	}
	if next == cur {
		return 0, false
	}
	return next / cur, true
}

// CanvasToImage maps a canvas position into image space. It reports false
// when the transform is not invertible.
func (c *Controller) CanvasToImage(p geom.Point) (geom.Point, bool) {
	inv, ok := c.t.Invert()
	if !ok {
		return geom.Point{}, false
	}
	return inv.Point(p), true
}

// ImageToCanvas maps an image position onto the canvas.
func (c *Controller) ImageToCanvas(p geom.Point) geom.Point {
	return c.t.Point(p)
}
