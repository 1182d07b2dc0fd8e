// Package theme defines the colours used to paint the cropview window.
package theme

import (
	"image/color"
)

// Theme defines the color palette for the application UI.
type Theme struct {
	Name string

	// Canvas
	Background   color.RGBA // Behind the backdrop when it is disabled
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
	ImageFill    color.RGBA // Painted under the image so transparency is visible

	// Selection overlay
	Selection    color.RGBA
	HandleFill   color.RGBA
	HandleBorder color.RGBA

	// Property panel
	PanelBackground color.RGBA
	PanelText       color.RGBA
	PanelBorder     color.RGBA

	// Transient messages
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{220, 220, 220, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
		ImageFill:         color.RGBA{0x99, 0x99, 0x99, 255},
		Selection:         color.RGBA{255, 0, 0, 255},
		HandleFill:        color.RGBA{255, 255, 255, 255},
		HandleBorder:      color.RGBA{0, 0, 0, 255},
		PanelBackground:   color.RGBA{240, 240, 240, 230},
		PanelText:         color.RGBA{0, 0, 0, 255},
		PanelBorder:       color.RGBA{120, 120, 120, 255},
		MessageBackground: color.RGBA{255, 255, 255, 230},
		MessageText:       color.RGBA{0, 0, 0, 255},
	}
}
