// Package clipboard moves images and selection geometry between cropview
// and the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
)

var (
	// ErrNoDisplay means neither an X11 nor a Wayland display is reachable.
	ErrNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")
	// ErrUnsupported means this build has no clipboard backend.
	ErrUnsupported = errors.New("clipboard is not supported by this build")
	// ErrEmpty means the clipboard holds no data of the requested kind.
	ErrEmpty = errors.New("clipboard is empty")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// decodeImage accepts any format registered with the image package; the
// clipboard normally carries PNG but some producers offer other formats.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("read image: %w", ErrEmpty)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}
