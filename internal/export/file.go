package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/cropview/internal/selection"
)

// FileName derives the output name from the source file name, the
// selection and the mode, e.g. "photo-10-20-300-200-selection.png". The
// numbers are the pixel bounds Compose crops to.
func FileName(source string, r selection.Rect, mode Mode) string {
	r = selection.FromImage(r.Image())
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "image"
	}
	parts := []string{
		base,
		num(r.Origin.X), num(r.Origin.Y),
		num(r.Size.X), num(r.Size.Y),
		mode.String(),
	}
	return strings.Join(parts, "-") + ".png"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return bw.Flush()
}

// WriteFile encodes img into dir/name and returns the full path. An empty
// dir means the current directory.
func WriteFile(dir, name string, img image.Image) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
