// Package config reads and writes the cropview RC file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/cropview/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
	Load   bool
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	ExportDir string
	Tool      string
	// FillColor paints the selection in rectangle export mode.
	FillColor color.RGBA
	// ImageFill and SelectionColor override the theme when set.
	ImageFill      *color.RGBA
	SelectionColor *color.RGBA
	MinScale       float64
	MaxScale       float64
	Notify         Notify
	Themes         map[string]*theme.Theme
}

// DefaultFillColor is the rectangle export colour when none is configured.
var DefaultFillColor = color.RGBA{0x99, 0x99, 0x99, 0xff}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		FillColor: DefaultFillColor,
		Themes:    make(map[string]*theme.Theme),
	}
}

// ApplyTheme returns t with the colour overrides from c applied.
func (c *Config) ApplyTheme(t *theme.Theme) *theme.Theme {
	out := *t
	if c.ImageFill != nil {
		out.ImageFill = *c.ImageFill
	}
	if c.SelectionColor != nil {
		out.Selection = *c.SelectionColor
	}
	return &out
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	if c.Tool != "" {
		fmt.Fprintf(&sb, "tool = %s\n", c.Tool)
	}
	fmt.Fprintf(&sb, "fill_color = %s\n", theme.FormatColor(c.FillColor))
	if c.ImageFill != nil {
		fmt.Fprintf(&sb, "image_fill = %s\n", theme.FormatColor(*c.ImageFill))
	}
	if c.SelectionColor != nil {
		fmt.Fprintf(&sb, "selection_color = %s\n", theme.FormatColor(*c.SelectionColor))
	}
	if c.MinScale > 0 {
		fmt.Fprintf(&sb, "min_scale = %s\n", strconv.FormatFloat(c.MinScale, 'g', -1, 64))
	}
	if c.MaxScale > 0 {
		fmt.Fprintf(&sb, "max_scale = %s\n", strconv.FormatFloat(c.MaxScale, 'g', -1, 64))
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	sb.WriteString("\n")

	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_ = theme.Write(&sb, c.Themes[name])
		sb.WriteString("\n")
	}

	return sb.String()
}
