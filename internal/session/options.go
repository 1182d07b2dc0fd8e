package session

import (
	"image/color"
	"log/slog"

	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/view"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Events are logged with the session ID
// attached.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCanvasSize sets the initial canvas size in pixels.
func WithCanvasSize(w, h float64) Option {
	return func(s *Session) { s.canvas = geom.Vec(w, h) }
}

// WithFill sets the colour used by the rectangle export mode.
func WithFill(c color.Color) Option {
	return func(s *Session) {
		if c != nil {
			s.fill = c
		}
	}
}

// WithZoomLimits bounds the view scale. Zero values leave a side unbounded.
func WithZoomLimits(minScale, maxScale float64) Option {
	return func(s *Session) { s.limits = view.Limits{MinScale: minScale, MaxScale: maxScale} }
}

// WithTool sets the starting tool.
func WithTool(t Tool) Option {
	return func(s *Session) { s.tool = t }
}
