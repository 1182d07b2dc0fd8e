package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var rgbaType = reflect.TypeOf(color.RGBA{})

// Parse reads a theme definition from an io.Reader.
// The format is one "Key: colour" pair per line; unknown keys are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	val := reflect.ValueOf(t).Elem()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "Name" {
			t.Name = value
			continue
		}
		field := val.FieldByName(key)
		if !field.IsValid() || field.Type() != rgbaType {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid color for key %s: %w", lineNo, key, err)
		}
		field.Set(reflect.ValueOf(col))
	}
	return t, scanner.Err()
}

// Write serializes t in the format Parse reads.
func Write(w io.Writer, t *Theme) error {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	if _, err := fmt.Fprintf(w, "Name: %s\n", t.Name); err != nil {
		return err
	}
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != rgbaType {
			continue
		}
		col := val.Field(i).Interface().(color.RGBA)
		if _, err := fmt.Fprintf(w, "%s: %s\n", typ.Field(i).Name, FormatColor(col)); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA or an SVG colour name such
// as "red" or "slategray".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex length in %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c as #RRGGBB, or #RRGGBBAA when not opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
