package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/selection"
)

// Style controls how the selection overlay is drawn.
type Style struct {
	Stroke       color.Color
	HandleFill   color.Color
	HandleBorder color.Color
	// HandleSize is the side of a handle square in canvas pixels.
	HandleSize int
}

// DefaultStyle matches the stock theme: a red outline with white handles.
func DefaultStyle() Style {
	return Style{
		Stroke:       color.RGBA{0xff, 0, 0, 0xff},
		HandleFill:   color.White,
		HandleBorder: color.Black,
		HandleSize:   8,
	}
}

// near reports whether canvas point c lies within margin pixels of b.
func near(c geom.Point, b image.Rectangle, margin int) bool {
	if !finite(c) {
		return false
	}
	return c.X >= float64(b.Min.X-margin) && c.X <= float64(b.Max.X+margin) &&
		c.Y >= float64(b.Min.Y-margin) && c.Y <= float64(b.Max.Y+margin)
}

// Selection draws the outline of r and both of its diagonals through t.
// With handles set it also marks the eight resize handles and the centre
// move handle. An empty selection draws nothing.
func Selection(dst *image.RGBA, r selection.Rect, t geom.Transform, st Style, handles bool) {
	if r.Empty() || t.Det() == 0 {
		return
	}
	r = r.Normalize()
	corner := func(h selection.Handle) geom.Point { return t.Point(r.Corner(h)) }
	tl := corner(selection.HandleTopLeft)
	tr := corner(selection.HandleTopRight)
	br := corner(selection.HandleBottomRight)
	bl := corner(selection.HandleBottomLeft)

	Segment(dst, tl, tr, st.Stroke, 1)
	Segment(dst, tr, br, st.Stroke, 1)
	Segment(dst, br, bl, st.Stroke, 1)
	Segment(dst, bl, tl, st.Stroke, 1)
	Segment(dst, tl, br, st.Stroke, 1)
	Segment(dst, bl, tr, st.Stroke, 1)

	if !handles {
		return
	}
	all := append(append([]selection.Handle{selection.HandleMove}, selection.Corners...), selection.Edges...)
	for _, h := range all {
		c := corner(h)
		if !near(c, dst.Bounds(), st.HandleSize) {
			continue
		}
		c = c.Round()
		Handle(dst, image.Pt(int(c.X), int(c.Y)), st)
	}
}

// Handle draws one handle square centred on c.
func Handle(dst *image.RGBA, c image.Point, st Style) {
	hs := st.HandleSize / 2
	if hs < 1 {
		hs = 1
	}
	r := image.Rect(c.X-hs, c.Y-hs, c.X+hs, c.Y+hs)
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(st.HandleFill), image.Point{}, draw.Src)
	Rect(dst, r, st.HandleBorder, 1)
}
