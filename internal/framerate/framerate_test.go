package framerate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(e *Estimator, start time.Time, fps int, seconds int) time.Time {
	ts := start
	for i := 1; i <= fps*seconds; i++ {
		ts = start.Add(time.Duration(i) * time.Second / time.Duration(fps))
		e.Update(ts)
	}
	return ts
}

func TestFirstUpdateOnlyStarts(t *testing.T) {
	e := New(3)
	assert.False(t, e.Update(time.Unix(100, 0)))
	assert.Equal(t, 0.0, e.FPS())
	assert.Equal(t, 0.0, e.Min())
	assert.Equal(t, 0.0, e.Max())
}

func TestSampleAfterOneSecond(t *testing.T) {
	e := New(3)
	start := time.Unix(100, 0)
	e.Update(start)
	for i := 1; i < 60; i++ {
		require.False(t, e.Update(start.Add(time.Duration(i)*time.Second/60)))
	}
	require.True(t, e.Update(start.Add(time.Second)))
	assert.InDelta(t, 60, e.FPS(), 1e-9)
}

func TestWindowKeepsLatestSamples(t *testing.T) {
	e := New(2)
	start := time.Unix(0, 0)
	e.Update(start)
	ts := feed(e, start, 30, 1)
	ts = feed(e, ts, 50, 1)
	feed(e, ts, 40, 1)

	assert.Equal(t, 2, e.Samples())
	assert.InDelta(t, 40, e.FPS(), 1e-6)
	assert.InDelta(t, 40, e.Min(), 1e-6)
	assert.InDelta(t, 50, e.Max(), 1e-6)
}
