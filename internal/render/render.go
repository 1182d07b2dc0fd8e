// Package render paints the cropview canvas: the checkerboard backdrop,
// the image under the view transform and the selection overlay.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/example/cropview/internal/geom"
)

// Checkerboard fills r of dst with size×size squares alternating between
// light and dark.
func Checkerboard(dst *image.RGBA, r image.Rectangle, size int, light, dark color.Color) {
	if size < 1 {
		size = 1
	}
	r = r.Intersect(dst.Bounds())
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	for y := r.Min.Y - r.Min.Y%size; y < r.Max.Y; y += size {
		for x := r.Min.X - r.Min.X%size; x < r.Max.X; x += size {
			src := lu
			if ((x/size)+(y/size))%2 != 0 {
				src = du
			}
			draw.Draw(dst, image.Rect(x, y, x+size, y+size).Intersect(r), src, image.Point{}, draw.Src)
		}
	}
}

// Backdrop caches a checkerboard sized to the last destination it painted.
type Backdrop struct {
	Size        int
	Light, Dark color.Color
	cache       *image.RGBA
}

// Draw copies the cached checkerboard into dst, rebuilding it when the
// bounds change.
func (b *Backdrop) Draw(dst *image.RGBA) {
	bounds := dst.Bounds()
	if b.cache == nil || b.cache.Bounds() != bounds {
		b.cache = image.NewRGBA(bounds)
		Checkerboard(b.cache, bounds, b.Size, b.Light, b.Dark)
	}
	draw.Draw(dst, bounds, b.cache, bounds.Min, draw.Src)
}

// ImageRect returns the canvas pixels covered by an image of the given
// size under t. t is assumed to have no rotation or shear.
func ImageRect(size geom.Vector, t geom.Transform) image.Rectangle {
	a := t.Point(geom.Pt(0, 0))
	b := t.Point(geom.Pt(size.X, size.Y))
	lo, hi := a.Min(b), a.Max(b)
	return image.Rect(int(math.Floor(lo.X)), int(math.Floor(lo.Y)), int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)))
}

// View paints img onto dst through the image-to-canvas transform t using
// nearest-neighbour sampling. When fill is set, the image area is filled
// with it first so transparent pixels show the fill instead of the
// backdrop. A singular transform paints nothing.
func View(dst *image.RGBA, img image.Image, t geom.Transform, fill color.Color) {
	if img == nil || t.Det() == 0 {
		return
	}
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	if fill != nil {
		size := geom.Vec(float64(sb.Dx()), float64(sb.Dy()))
		r := ImageRect(size, t).Intersect(dst.Bounds())
		draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Over)
	}
	// Image coordinates are relative to the bounds origin.
	m := t.Mul(geom.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	xdraw.NearestNeighbor.Transform(dst, m.Aff3(), img, sb, xdraw.Over, nil)
}
