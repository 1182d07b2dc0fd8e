package selection

import (
	"github.com/example/cropview/internal/geom"
)

// Handle identifies the part of a selection under the pointer.
type Handle int

const (
	HandleNone Handle = iota
	HandleMove
	HandleTopLeft
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
)

// Corners lists the corner handles in hit-test order.
var Corners = []Handle{HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft}

// Edges lists the edge handles in hit-test order.
var Edges = []Handle{HandleTop, HandleBottom, HandleLeft, HandleRight}

var handleNames = [...]string{
	HandleNone:        "none",
	HandleMove:        "move",
	HandleTopLeft:     "topLeft",
	HandleTopRight:    "topRight",
	HandleBottomRight: "bottomRight",
	HandleBottomLeft:  "bottomLeft",
	HandleTop:         "top",
	HandleBottom:      "bottom",
	HandleLeft:        "left",
	HandleRight:       "right",
}

var handleCursors = [...]string{
	HandleNone:        "default",
	HandleMove:        "move",
	HandleTopLeft:     "nwse-resize",
	HandleTopRight:    "nesw-resize",
	HandleBottomRight: "nwse-resize",
	HandleBottomLeft:  "nesw-resize",
	HandleTop:         "ns-resize",
	HandleBottom:      "ns-resize",
	HandleLeft:        "ew-resize",
	HandleRight:       "ew-resize",
}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "unknown"
	}
	return handleNames[h]
}

// Cursor returns the pointer shape name conventionally shown over h.
func (h Handle) Cursor() string {
	if h < 0 || int(h) >= len(handleCursors) {
		return handleCursors[HandleNone]
	}
	return handleCursors[h]
}

// IsCorner reports whether h is one of the four corner handles.
func (h Handle) IsCorner() bool {
	return h >= HandleTopLeft && h <= HandleBottomLeft
}

// Opposite returns the handle diagonally or directly across the rectangle.
func (h Handle) Opposite() Handle {
	switch h {
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTopRight:
		return HandleBottomLeft
	case HandleBottomRight:
		return HandleTopLeft
	case HandleBottomLeft:
		return HandleTopRight
	case HandleTop:
		return HandleBottom
	case HandleBottom:
		return HandleTop
	case HandleLeft:
		return HandleRight
	case HandleRight:
		return HandleLeft
	}
	return h
}

// Resize applies a pointer displacement u to a snapshot origin q and size
// s according to the rule for handle h.
func Resize(h Handle, q geom.Point, s, u geom.Vector) (geom.Point, geom.Vector) {
	switch h {
	case HandleMove:
		return q.Add(u), s
	case HandleTopLeft:
		return q.Add(u), s.Sub(u)
	case HandleTopRight:
		return q.Add(geom.Vec(0, u.Y)), s.Add(geom.Vec(u.X, -u.Y))
	case HandleBottomRight:
		return q, s.Add(u)
	case HandleBottomLeft:
		return q.Add(geom.Vec(u.X, 0)), s.Add(geom.Vec(-u.X, u.Y))
	case HandleTop:
		return q.Add(geom.Vec(0, u.Y)), s.Sub(geom.Vec(0, u.Y))
	case HandleBottom:
		return q, s.Add(geom.Vec(0, u.Y))
	case HandleLeft:
		return q.Add(geom.Vec(u.X, 0)), s.Sub(geom.Vec(u.X, 0))
	case HandleRight:
		return q, s.Add(geom.Vec(u.X, 0))
	}
	return q, s
}

// HitTest returns the handle of r under p, both in image coordinates.
// radius is the pick tolerance in image units and is compared squared.
// The centre wins over corners and corners win over edges; an empty
// rectangle has no handles.
func HitTest(r Rect, p geom.Point, radius float64) Handle {
	if r.Size.LengthSquared() == 0 {
		return HandleNone
	}
	r = r.Normalize()
	r2 := radius * radius

	if r.Center().DistanceSquared(p) <= r2 {
		return HandleMove
	}
	for _, h := range Corners {
		if r.Corner(h).DistanceSquared(p) <= r2 {
			return h
		}
	}

	lo, hi := r.Origin, r.Max()
	withinX := p.X >= lo.X && p.X <= hi.X
	withinY := p.Y >= lo.Y && p.Y <= hi.Y
	sq := func(v float64) float64 { return v * v }
	switch {
	case withinX && sq(p.Y-lo.Y) <= r2:
		return HandleTop
	case withinX && sq(p.Y-hi.Y) <= r2:
		return HandleBottom
	case withinY && sq(p.X-lo.X) <= r2:
		return HandleLeft
	case withinY && sq(p.X-hi.X) <= r2:
		return HandleRight
	}
	return HandleNone
}
