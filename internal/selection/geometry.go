package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/cropview/internal/geom"
)

// Geometry formats r as "x,y,w,h", the form accepted by ParseRect.
func (r Rect) Geometry() string {
	return strings.Join([]string{num(r.Origin.X), num(r.Origin.Y), num(r.Size.X), num(r.Size.Y)}, ",")
}

// ParseRect reads a rectangle written as "x,y,w,h". A negative width or
// height is normalized.
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("geometry %q: want x,y,w,h", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Rect{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		v[i] = f
	}
	return Rect{Origin: geom.Pt(v[0], v[1]), Size: geom.Vec(v[2], v[3])}.Normalize(), nil
}
