package selection

import (
	"math"

	"github.com/example/cropview/internal/geom"
)

// State is the editor's position in the drag state machine.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateMoving
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	}
	return "unknown"
}

type snapshot struct {
	pointer geom.Point
	origin  geom.Point
	size    geom.Vector
}

// Editor drives a single selection rectangle through draw, move and resize
// gestures. All points are in image coordinates; the caller maps canvas
// positions through the inverse view transform first.
type Editor struct {
	rect   Rect
	bounds geom.Vector
	aspect float64

	state  State
	handle Handle
	anchor geom.Point
	snap   snapshot
}

// NewEditor returns an idle editor with an empty selection inside bounds.
func NewEditor(bounds geom.Vector) *Editor {
	return &Editor{bounds: bounds}
}

func (e *Editor) Rect() Rect { return e.rect }
func (e *Editor) Bounds() geom.Vector { return e.bounds }
func (e *Editor) State() State { return e.state }

// Handle returns the handle being dragged, or HandleNone.
func (e *Editor) Handle() Handle { return e.handle }

// Aspect returns the width/height constraint, zero when unconstrained.
func (e *Editor) Aspect() float64 { return e.aspect }

// SetAspect sets the width/height constraint applied while drawing and
// while dragging a corner. Non-positive values remove the constraint.
func (e *Editor) SetAspect(a float64) {
	if a < 0 {
		a = 0
	}
	e.aspect = a
}

// Reset empties the selection, sets new image bounds and abandons any
// gesture in progress.
func (e *Editor) Reset(bounds geom.Vector) {
	*e = Editor{bounds: bounds, aspect: e.aspect}
}

// SetRect replaces the selection, clamped to the image bounds.
func (e *Editor) SetRect(r Rect) {
	e.rect = r.Clamp(e.bounds)
}

// BeginDraw starts a new selection anchored at p.
func (e *Editor) BeginDraw(p geom.Point) {
	e.anchor = e.snapToImage(p)
	e.rect = Rect{Origin: e.anchor}
	e.state = StateDrawing
	e.handle = HandleNone
}

// BeginEdit starts moving or resizing the current selection by handle h
// grabbed at p. It reports false and stays idle when h is HandleNone.
func (e *Editor) BeginEdit(p geom.Point, h Handle) bool {
	if h == HandleNone {
		return false
	}
	e.snap = snapshot{pointer: p.Round(), origin: e.rect.Origin, size: e.rect.Size}
	e.handle = h
	if h == HandleMove {
		e.state = StateMoving
	} else {
		e.state = StateResizing
	}
	return true
}

// Drag updates the live rectangle for the pointer at p. It is a no-op when
// idle.
func (e *Editor) Drag(p geom.Point) {
	switch e.state {
	case StateDrawing:
		far := e.snapToImage(p)
		if e.aspect > 0 {
			far = e.anchor.Add(fitAspect(far.Sub(e.anchor), e.aspect))
		}
		e.rect = Span(e.anchor, far)
	case StateMoving, StateResizing:
		u := p.Round().Sub(e.snap.pointer)
		if e.aspect > 0 && e.handle.IsCorner() {
			e.rect = e.resizeWithAspect(u)
			return
		}
		origin, size := Resize(e.handle, e.snap.origin, e.snap.size, u)
		e.rect = Rect{Origin: origin, Size: size}
	}
}

// End finishes the gesture: the rectangle is clamped to the image and
// normalized, and the transient drag state is cleared.
func (e *Editor) End() {
	e.rect = e.rect.Clamp(e.bounds)
	e.state = StateIdle
	e.handle = HandleNone
	e.anchor = geom.Point{}
	e.snap = snapshot{}
}

// Translate shifts an idle selection by d, keeping its size and stopping
// at the image edges.
func (e *Editor) Translate(d geom.Vector) {
	if e.state != StateIdle {
		return
	}
	r := e.rect.Normalize()
	limit := e.bounds.Sub(r.Size).Clamp(geom.Vector{}, e.bounds)
	r.Origin = r.Origin.Add(d).Clamp(geom.Vector{}, limit)
	e.rect = r
}

// Grow changes the size of an idle selection by d, keeping the origin.
func (e *Editor) Grow(d geom.Vector) {
	if e.state != StateIdle {
		return
	}
	r := e.rect.Normalize()
	r.Size = r.Size.Add(d).Clamp(geom.Vector{}, e.bounds)
	e.rect = r.Clamp(e.bounds)
}

func (e *Editor) snapToImage(p geom.Point) geom.Point {
	return p.Round().Clamp(geom.Vector{}, e.bounds)
}

// resizeWithAspect drags a corner while the opposite corner of the
// snapshot stays put.
func (e *Editor) resizeWithAspect(u geom.Vector) Rect {
	snap := Rect{Origin: e.snap.origin, Size: e.snap.size}
	fixed := snap.Corner(e.handle.Opposite())
	moving := snap.Corner(e.handle).Add(u)
	return Span(fixed, fixed.Add(fitAspect(moving.Sub(fixed), e.aspect)))
}

// fitAspect shrinks the longer side of d so that |d.X|/|d.Y| == aspect,
// preserving the signs of both components.
func fitAspect(d geom.Vector, aspect float64) geom.Vector {
	w, h := d.Abs().X, d.Abs().Y
	if w == 0 || h == 0 {
		return geom.Vector{}
	}
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	return geom.Vec(math.Copysign(w, d.X), math.Copysign(h, d.Y))
}

