//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = ErrNoDisplay
			return
		}
		initErr = ErrUnsupported
	})
	return initErr
}

func WriteImage(image.Image) error { return ensureInit() }

func ReadImage() (image.Image, error) { return nil, ensureInit() }

func WriteText(string) error { return ensureInit() }

func ReadText() (string, error) { return "", ensureInit() }
