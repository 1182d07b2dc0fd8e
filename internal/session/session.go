// Package session owns the state of one viewing session: the current
// image, the view transform and the selection, and routes pointer, wheel
// and keyboard input to them.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/cropview/internal/export"
	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/selection"
	"github.com/example/cropview/internal/view"
)

// HandleRadius is the hit radius of selection handles in canvas pixels.
const HandleRadius = 8

// ErrNoImage is returned by operations that need an image before one is
// loaded.
var ErrNoImage = errors.New("session: no image loaded")

// DefaultFill is the rectangle export colour when none is configured.
var DefaultFill = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

// Decoder loads the image stored at path.
type Decoder func(path string) (image.Image, error)

// Result is a composed export ready to be encoded.
type Result struct {
	Image *image.RGBA
	Name  string
	Mode  export.Mode
}

// Session is not safe for concurrent use; callers confine it to one
// goroutine, normally the UI event loop.
type Session struct {
	id  uuid.UUID
	log *slog.Logger

	canvas geom.Vector
	limits view.Limits
	view   *view.Controller
	editor *selection.Editor

	image image.Image
	name  string
	fill  color.Color

	tool   Tool
	mode   Mode
	last   geom.Point
	cursor string
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		log:    slog.Default(),
		fill:   DefaultFill,
		cursor: selection.HandleNone.Cursor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id.String())
	s.view = view.New(s.limits)
	s.editor = selection.NewEditor(geom.Vector{})
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Tool() Tool { return s.tool }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Image() image.Image { return s.image }
func (s *Session) Name() string { return s.name }
func (s *Session) Canvas() geom.Vector { return s.canvas }
func (s *Session) Transform() geom.Transform { return s.view.Transform() }
func (s *Session) Selection() selection.Rect { return s.editor.Rect() }
func (s *Session) Handle() selection.Handle { return s.editor.Handle() }
func (s *Session) Aspect() float64 { return s.editor.Aspect() }
func (s *Session) Fill() color.Color { return s.fill }
func (s *Session) ZoomLimits() view.Limits { return s.view.Limits() }
func (s *Session) SetZoomLimits(l view.Limits) { s.view.SetLimits(l) }
func (s *Session) SetAspect(a float64) { s.editor.SetAspect(a) }

// Cursor returns the pointer shape for the current hover position.
func (s *Session) Cursor() string { return s.cursor }

// ImageSize returns the size of the current image, zero when none.
func (s *Session) ImageSize() geom.Vector {
	if s.image == nil {
		return geom.Vector{}
	}
	b := s.image.Bounds()
	return geom.Vec(float64(b.Dx()), float64(b.Dy()))
}

// SetFill changes the rectangle export colour.
func (s *Session) SetFill(c color.Color) {
	if c != nil {
		s.fill = c
	}
}

// SetTool switches tools. Any gesture in progress is finished first.
func (s *Session) SetTool(t Tool) {
	if s.mode != ModeIdle {
		s.finish()
	}
	s.tool = t
	s.cursor = selection.HandleNone.Cursor()
	s.log.Debug("tool changed", "tool", t)
}

// SetImage makes img current, fits it to the canvas and clears the
// selection.
func (s *Session) SetImage(name string, img image.Image) {
	s.image = img
	s.name = name
	s.mode = ModeIdle
	s.editor.Reset(s.ImageSize())
	s.Refit()
	s.log.Info("image set", "name", name, "width", s.ImageSize().X, "height", s.ImageSize().Y)
}

// Refit fits the current image to the canvas.
func (s *Session) Refit() {
	s.view.Fit(s.canvas, s.ImageSize())
}

// Resize records a new canvas size. The view transform is kept.
func (s *Session) Resize(w, h float64) {
	s.canvas = geom.Vec(w, h)
}

// SetSelection replaces the selection, clamped to the image.
func (s *Session) SetSelection(r selection.Rect) {
	s.editor.SetRect(r)
}

// Nudge moves the selection by d, or grows it when resize is set.
func (s *Session) Nudge(d geom.Vector, resize bool) {
	if resize {
		s.editor.Grow(d)
	} else {
		s.editor.Translate(d)
	}
}

func (s *Session) toImage(p geom.Point) (geom.Point, bool) {
	ip, ok := s.view.CanvasToImage(p)
	if !ok {
		s.log.Debug("view transform is singular, event skipped", "x", p.X, "y", p.Y)
	}
	return ip, ok
}

func (s *Session) radius() float64 {
	m := math.Abs(s.view.Transform().M11)
	if m == 0 {
		return 0
	}
	return HandleRadius / m
}

// PointerDown starts a gesture for the active tool at canvas point p.
func (s *Session) PointerDown(p geom.Point) {
	switch s.tool {
	case ToolNormal:
		s.mode = ModePanning
		s.last = p
	case ToolSelect:
		if s.image == nil {
			return
		}
		ip, ok := s.toImage(p)
		if !ok {
			return
		}
		s.editor.BeginDraw(ip)
		s.mode = ModeDrawing
	case ToolModify:
		if s.image == nil {
			return
		}
		ip, ok := s.toImage(p)
		if !ok {
			return
		}
		h := selection.HitTest(s.editor.Rect(), ip, s.radius())
		if !s.editor.BeginEdit(ip, h) {
			return
		}
		if h == selection.HandleMove {
			s.mode = ModeMoving
		} else {
			s.mode = ModeResizing
		}
		s.cursor = h.Cursor()
	}
}

// PointerMove continues the current gesture, or updates the hover cursor
// when no button is held.
func (s *Session) PointerMove(p geom.Point) {
	switch s.mode {
	case ModePanning:
		s.view.Pan(p.Sub(s.last))
		s.last = p
	case ModeDrawing, ModeMoving, ModeResizing:
		if ip, ok := s.toImage(p); ok {
			s.editor.Drag(ip)
		}
	case ModeIdle:
		s.hover(p)
	}
}

func (s *Session) hover(p geom.Point) {
	s.cursor = selection.HandleNone.Cursor()
	if s.tool != ToolModify || s.image == nil {
		return
	}
	ip, ok := s.toImage(p)
	if !ok {
		return
	}
	s.cursor = selection.HitTest(s.editor.Rect(), ip, s.radius()).Cursor()
}

// PointerUp ends the current gesture.
func (s *Session) PointerUp(p geom.Point) {
	if s.mode == ModeIdle {
		return
	}
	s.finish()
	s.log.Debug("selection", "rect", s.editor.Rect().String())
}

func (s *Session) finish() {
	s.editor.End()
	s.mode = ModeIdle
	s.last = geom.Point{}
}

// Wheel zooms about canvas point p. It reports whether the view changed.
func (s *Session) Wheel(p geom.Point, delta float64) bool {
	if !s.view.Zoom(p, delta) {
		s.log.Debug("zoom step refused", "delta", delta, "scale", s.view.Transform().M11)
		return false
	}
	return true
}

// LoadFiles decodes each path in turn and makes every successful result
// the current image, so the last good file wins. A failing file is logged
// and skipped; the failures are returned joined together.
func (s *Session) LoadFiles(ctx context.Context, decode Decoder, paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		img, err := decode(path)
		if err != nil {
			s.log.Error("cannot read image", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("load %s: %w", path, err))
			continue
		}
		s.SetImage(filepath.Base(path), img)
	}
	return errors.Join(errs...)
}

// Export composes the current image and selection in the given mode.
func (s *Session) Export(mode export.Mode) (Result, error) {
	if s.image == nil {
		return Result{}, ErrNoImage
	}
	r := s.editor.Rect()
	img, err := export.Compose(s.image, r, mode, s.fill)
	if err != nil {
		return Result{}, fmt.Errorf("export %s: %w", mode, err)
	}
	return Result{Image: img, Name: export.FileName(s.name, r, mode), Mode: mode}, nil
}
