package render

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/selection"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestCheckerboardAlternates(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	Checkerboard(dst, dst.Bounds(), 4, red, blue)
	cases := map[image.Point]color.RGBA{
		{0, 0}:   red,
		{3, 3}:   red,
		{4, 0}:   blue,
		{0, 4}:   blue,
		{4, 4}:   red,
		{15, 8}:  blue,
	}
	for p, want := range cases {
		if got := dst.RGBAAt(p.X, p.Y); got != want {
			t.Fatalf("pixel %v: got %v want %v", p, got, want)
		}
	}
}

func TestBackdropRebuildsOnResize(t *testing.T) {
	b := &Backdrop{Size: 2, Light: red, Dark: blue}
	small := image.NewRGBA(image.Rect(0, 0, 4, 4))
	b.Draw(small)
	big := image.NewRGBA(image.Rect(0, 0, 8, 6))
	b.Draw(big)
	if got := big.RGBAAt(7, 5); got != blue {
		t.Fatalf("bottom right: got %v want %v", got, blue)
	}
	if b.cache.Bounds() != big.Bounds() {
		t.Fatalf("cache bounds %v, want %v", b.cache.Bounds(), big.Bounds())
	}
}

func TestViewScalesWithNearestNeighbour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, red)
	src.Set(1, 0, green)
	src.Set(0, 1, blue)
	src.Set(1, 1, red)

	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	View(dst, src, geom.NewTransform(4, 0, 5, 0, 4, 3, 0, 0, 1), nil)

	cases := map[image.Point]color.RGBA{
		{5, 3}:   red,
		{8, 6}:   red,
		{9, 3}:   green,
		{12, 6}:  green,
		{5, 7}:   blue,
		{12, 10}: red,
		{4, 3}:   {},
		{13, 3}:  {},
		{5, 11}:  {},
	}
	for p, want := range cases {
		if got := dst.RGBAAt(p.X, p.Y); got != want {
			t.Fatalf("pixel %v: got %v want %v", p, got, want)
		}
	}
}

func TestViewHonoursSourceOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, red)
	src.Set(11, 10, green)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	View(dst, src, geom.Identity(), nil)
	if got := dst.RGBAAt(0, 0); got != red {
		t.Fatalf("origin pixel: got %v want %v", got, red)
	}
	if got := dst.RGBAAt(1, 0); got != green {
		t.Fatalf("second pixel: got %v want %v", got, green)
	}
}

func TestViewFillsBehindTransparentPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, red)
	dst := image.NewRGBA(image.Rect(0, 0, 6, 6))
	View(dst, src, geom.Translate(1, 1), blue)
	if got := dst.RGBAAt(1, 1); got != red {
		t.Fatalf("opaque pixel: got %v", got)
	}
	if got := dst.RGBAAt(2, 2); got != blue {
		t.Fatalf("transparent pixel should show fill, got %v", got)
	}
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Fatalf("outside image should be untouched, got %v", got)
	}
}

func TestViewSingularTransformPaintsNothing(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, red)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	View(dst, src, geom.Scale(0), blue)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("byte %d written: %d", i, v)
		}
	}
}

func TestSelectionOverlay(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	st := DefaultStyle()
	r := selection.Rect{Origin: geom.Pt(5, 5), Size: geom.Vec(20, 20)}
	Selection(dst, r, geom.Scale(2), st, false)

	for _, p := range []image.Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}, {30, 10}, {30, 30}, {20, 40}} {
		if got := dst.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("expected stroke at %v, got %v", p, got)
		}
	}
	if got := dst.RGBAAt(30, 20); got != (color.RGBA{}) {
		t.Fatalf("interior off the diagonals should be empty, got %v", got)
	}

	Selection(dst, r, geom.Scale(2), st, true)
	white := color.RGBA{255, 255, 255, 255}
	if got := dst.RGBAAt(51, 31); got != white {
		t.Fatalf("expected right handle fill, got %v", got)
	}
	if got := dst.RGBAAt(26, 26); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("expected centre handle border, got %v", got)
	}
}

func TestSelectionEmptyDrawsNothing(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Selection(dst, selection.Rect{Origin: geom.Pt(2, 2)}, geom.Identity(), DefaultStyle(), true)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("byte %d written: %d", i, v)
		}
	}
}

func zoomedAbout(centre geom.Point, s float64) geom.Transform {
	return geom.Translate(512, 384).Mul(geom.Scale(s)).Mul(geom.Translate(-centre.X, -centre.Y))
}

func TestSelectionOverlayAtHighZoomStaysFast(t *testing.T) {
	r := selection.Rect{Size: geom.Vec(100, 80)}
	for _, s := range []float64{1e6, 1e12, 1e300} {
		dst := image.NewRGBA(image.Rect(0, 0, 1024, 768))
		start := time.Now()
		Selection(dst, r, zoomedAbout(r.Center(), s), DefaultStyle(), true)
		if d := time.Since(start); d > 250*time.Millisecond {
			t.Fatalf("scale %g: overlay took %v", s, d)
		}
	}
}

func TestSelectionOverlayClipsDiagonalsToCanvas(t *testing.T) {
	r := selection.Rect{Size: geom.Vec(100, 80)}
	dst := image.NewRGBA(image.Rect(0, 0, 1024, 768))
	Selection(dst, r, zoomedAbout(r.Center(), 1e6), DefaultStyle(), false)
	found := false
	for y := 382; y <= 386 && !found; y++ {
		for x := 510; x <= 514; x++ {
			if dst.RGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("diagonals should cross the canvas centre")
	}
	for _, p := range []image.Point{{0, 384}, {1023, 384}, {512, 0}} {
		if got := dst.RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Fatalf("pixel %v off the diagonals should be empty, got %v", p, got)
		}
	}
}

func TestSegmentClipsPartiallyVisibleLine(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Segment(dst, geom.Pt(-1e9, 5), geom.Pt(1e9, 5), red, 1)
	for x := 0; x < 10; x++ {
		if got := dst.RGBAAt(x, 5); got != red {
			t.Fatalf("pixel (%d,5): got %v want %v", x, got, red)
		}
	}
	if got := dst.RGBAAt(5, 4); got != (color.RGBA{}) {
		t.Fatalf("row above the line should be empty, got %v", got)
	}

	other := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Segment(other, geom.Pt(-5, -5), geom.Pt(-1, 20), red, 1)
	for i, v := range other.Pix {
		if v != 0 {
			t.Fatalf("segment outside the image wrote byte %d", i)
		}
	}
}

func TestImageRect(t *testing.T) {
	got := ImageRect(geom.Vec(10, 5), geom.NewTransform(0.5, 0, 2.25, 0, 0.5, 1, 0, 0, 1))
	want := image.Rect(2, 1, 8, 4)
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
