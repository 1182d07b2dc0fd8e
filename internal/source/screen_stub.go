//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package source

import (
	"context"
	"image"
)

// Screen is only available on X11 and Wayland platforms.
func Screen(context.Context) (image.Image, error) { return nil, ErrNoDisplay }
