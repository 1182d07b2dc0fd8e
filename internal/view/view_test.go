package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cropview/internal/geom"
)

func (c *Controller) setTransform(t geom.Transform) { c.t = t }

func TestFitDownscalesAndCentres(t *testing.T) {
	c := New(Limits{})
	c.Fit(geom.Vec(400, 300), geom.Vec(800, 600))
	assert.Equal(t, geom.NewTransform(0.5, 0, 0, 0, 0.5, 0, 0, 0, 1), c.Transform())
}

func TestFitNeverUpscales(t *testing.T) {
	c := New(Limits{})
	c.Fit(geom.Vec(1000, 800), geom.Vec(200, 100))
	assert.Equal(t, geom.NewTransform(1, 0, 400, 0, 1, 350, 0, 0, 1), c.Transform())
}

func TestFitLimitedByHeight(t *testing.T) {
	c := New(Limits{})
	c.Fit(geom.Vec(400, 100), geom.Vec(400, 400))
	tr := c.Transform()
	assert.Equal(t, 0.25, tr.M11)
	assert.Equal(t, 0.25, tr.M22)
	assert.Equal(t, 150.0, tr.M13)
	assert.Equal(t, 0.0, tr.M23)
}

func TestFitDegenerateImage(t *testing.T) {
	c := New(Limits{})
	c.Pan(geom.Vec(5, 5))
	c.Fit(geom.Vec(400, 300), geom.Vec(0, 10))
	assert.Equal(t, geom.Identity(), c.Transform())
}

func TestPanIsCanvasTranslation(t *testing.T) {
	c := New(Limits{})
	c.setTransform(geom.NewTransform(2, 0, 10, 0, 2, 20, 0, 0, 1))
	c.Pan(geom.Vec(3, -4))
	assert.Equal(t, geom.NewTransform(2, 0, 13, 0, 2, 16, 0, 0, 1), c.Transform())
}

func TestZoomKeepsCursorFixed(t *testing.T) {
	starts := []geom.Transform{
		geom.Identity(),
		geom.NewTransform(0.5, 0, 12, 0, 0.5, -7, 0, 0, 1),
		geom.NewTransform(3, 0, -200, 0, 3, 40, 0, 0, 1),
	}
	deltas := []float64{-300, -100, -3, 0.5, 10, 60, 99, 150, 250}
	cursors := []geom.Point{geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(317.5, 12.25)}
	for _, start := range starts {
		for _, d := range deltas {
			for _, at := range cursors {
				c := New(Limits{})
				c.setTransform(start)
				imgPt, ok := c.CanvasToImage(at)
				require.True(t, ok)

				require.True(t, c.Zoom(at, d))
				got := c.ImageToCanvas(imgPt)
				assert.InDelta(t, at.X, got.X, 1e-9, "start %v delta %v at %v", start, d, at)
				assert.InDelta(t, at.Y, got.Y, 1e-9, "start %v delta %v at %v", start, d, at)

				// The cursor point itself is the fixed point of the step.
				step := geom.Translate(at.X, at.Y).Mul(geom.Scale(1 - d*ZoomRate)).Mul(geom.Translate(-at.X, -at.Y))
				fixed := step.Point(at)
				assert.InDelta(t, at.X, fixed.X, 1e-9)
				assert.InDelta(t, at.Y, fixed.Y, 1e-9)
			}
		}
	}
}

func TestZoomScalesTransform(t *testing.T) {
	c := New(Limits{})
	c.Zoom(geom.Pt(0, 0), -100)
	assert.Equal(t, geom.NewTransform(2, 0, 0, 0, 2, 0, 0, 0, 1), c.Transform())
}

func TestZoomToSingularWithoutLimits(t *testing.T) {
	c := New(Limits{})
	require.True(t, c.Zoom(geom.Pt(50, 50), 100))
	assert.Equal(t, 0.0, c.Transform().Det())
	_, ok := c.Transform().Invert()
	assert.False(t, ok)
	_, ok = c.CanvasToImage(geom.Pt(10, 10))
	assert.False(t, ok)
}

func TestZoomLimits(t *testing.T) {
	c := New(Limits{MinScale: 0.1, MaxScale: 8})

	assert.False(t, c.Zoom(geom.Pt(50, 50), 100), "collapsing step is refused")
	assert.Equal(t, geom.Identity(), c.Transform())

	assert.False(t, c.Zoom(geom.Pt(50, 50), 150), "flipping step is refused")

	require.True(t, c.Zoom(geom.Pt(0, 0), 95))
	assert.InDelta(t, 0.1, c.Transform().M11, 1e-12)

	assert.False(t, c.Zoom(geom.Pt(0, 0), 10), "already at the minimum")

	for i := 0; i < 10; i++ {
		c.Zoom(geom.Pt(20, 20), -100)
	}
	assert.InDelta(t, 8, c.Transform().M11, 1e-12)
	_, ok := c.Transform().Invert()
	assert.True(t, ok)
}

func TestZoomByFactor(t *testing.T) {
	c := New(Limits{})
	c.ZoomBy(geom.Pt(10, 10), 2)
	assert.Equal(t, geom.NewTransform(2, 0, -10, 0, 2, -10, 0, 0, 1), c.Transform())
}
