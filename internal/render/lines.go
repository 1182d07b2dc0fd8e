package render

import (
	"image"
	"image/color"
	"math"

	"github.com/example/cropview/internal/geom"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	b := img.Bounds()
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if p := image.Pt(x+dx, y+dy); p.In(b) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

// Line draws a Bresenham line from p0 to p1 inclusive.
func Line(img *image.RGBA, p0, p1 image.Point, col color.Color, thick int) {
	dx, dy := abs(p1.X-p0.X), abs(p1.Y-p0.Y)
	sx, sy := -1, -1
	if p0.X < p1.X {
		sx = 1
	}
	if p0.Y < p1.Y {
		sy = 1
	}
	err := dx - dy
	x, y := p0.X, p0.Y
	for {
		setThickPixel(img, x, y, thick, col)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect outlines r, drawing the border on its inner pixels.
func Rect(img *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	if r.Empty() {
		return
	}
	tl, br := r.Min, r.Max.Sub(image.Pt(1, 1))
	tr, bl := image.Pt(br.X, tl.Y), image.Pt(tl.X, br.Y)
	Line(img, tl, tr, col, thick)
	Line(img, tr, br, col, thick)
	Line(img, br, bl, col, thick)
	Line(img, bl, tl, col, thick)
}

// Segment draws the part of the line from a to b that falls inside img.
// The endpoints are in canvas space and may lie far outside the image.
func Segment(img *image.RGBA, a, b geom.Point, col color.Color, thick int) {
	a, b, ok := clipSegment(a, b, img.Bounds())
	if !ok {
		return
	}
	a, b = a.Round(), b.Round()
	Line(img, image.Pt(int(a.X), int(a.Y)), image.Pt(int(b.X), int(b.Y)), col, thick)
}

// clipSegment clips a..b to the pixel centres of r (Liang-Barsky).
func clipSegment(a, b geom.Point, r image.Rectangle) (geom.Point, geom.Point, bool) {
	if r.Empty() || !finite(a) || !finite(b) {
		return a, b, false
	}
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X-1), float64(r.Max.Y-1)
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - minX},
		{d.X, maxX - a.X},
		{-d.Y, a.Y - minY},
		{d.Y, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	c0 := a.Add(d.Scale(t0)).Clamp(geom.Vec(minX, minY), geom.Vec(maxX, maxY))
	c1 := a.Add(d.Scale(t1)).Clamp(geom.Vec(minX, minY), geom.Vec(maxX, maxY))
	return c0, c1, true
}

func finite(p geom.Point) bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
