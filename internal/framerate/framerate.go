// Package framerate estimates display frame rate from per-frame timestamps.
package framerate

import (
	"math"
	"time"
)

// Estimator accumulates frames and emits one frame-rate sample per second
// of elapsed time, keeping the most recent size samples.
type Estimator struct {
	size    int
	frames  int
	samples []float64
	prev    time.Time
}

// New returns an estimator that remembers the last size samples.
func New(size int) *Estimator {
	if size < 1 {
		size = 1
	}
	return &Estimator{size: size}
}

// Update records a frame painted at ts. It reports true when a new sample
// was taken, which happens once at least a second has passed since the
// previous one. The first call only establishes the starting time.
func (e *Estimator) Update(ts time.Time) bool {
	if e.prev.IsZero() {
		e.prev = ts
		return false
	}
	e.frames++
	d := ts.Sub(e.prev)
	if d < time.Second {
		return false
	}
	e.samples = append(e.samples, float64(e.frames)/d.Seconds())
	e.frames = 0
	e.prev = ts
	if n := len(e.samples) - e.size; n > 0 {
		e.samples = append(e.samples[:0], e.samples[n:]...)
	}
	return true
}

// FPS returns the latest sample, or 0 before the first one.
func (e *Estimator) FPS() float64 {
	if len(e.samples) == 0 {
		return 0
	}
	return e.samples[len(e.samples)-1]
}

// Min returns the smallest retained sample, or 0 when there are none.
func (e *Estimator) Min() float64 {
	if len(e.samples) == 0 {
		return 0
	}
	m := math.Inf(1)
	for _, v := range e.samples {
		m = math.Min(m, v)
	}
	return m
}

// Max returns the largest retained sample, or 0 when there are none.
func (e *Estimator) Max() float64 {
	m := 0.0
	for _, v := range e.samples {
		m = math.Max(m, v)
	}
	return m
}

// Samples returns the number of retained samples.
func (e *Estimator) Samples() int { return len(e.samples) }
