// Package source loads images into cropview: files on disk, the system
// clipboard and the X11 screen.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/example/cropview/internal/clipboard"
)

// ErrNoDisplay is returned by Screen when no X server can be reached.
var ErrNoDisplay = errors.New("source: no X11 display")

// Decode reads a single image in any registered format and reports the
// format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Clipboard returns the image currently held by the system clipboard.
func Clipboard() (image.Image, error) {
	img, err := clipboard.ReadImage()
	if err != nil {
		return nil, fmt.Errorf("paste image: %w", err)
	}
	return img, nil
}
