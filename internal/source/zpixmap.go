package source

import (
	"fmt"
	"image"
)

// zpixmapToRGBA converts little-endian BGR(X) Z-pixmap rows into an opaque
// RGBA image. Only 24 and 32 bits per pixel are understood.
func zpixmapToRGBA(data []byte, width, height, bpp int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("screen has empty geometry")
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported pixel format %d bpp", bpp)
	}
	if len(data) == 0 || len(data)%height != 0 {
		return nil, fmt.Errorf("unexpected image data length %d for %d rows", len(data), height)
	}
	stride := len(data) / height
	step := bpp / 8
	if stride < width*step {
		return nil, fmt.Errorf("row stride %d too short for width %d", stride, width)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			in := row[x*step:]
			px := out[x*4:]
			px[0], px[1], px[2], px[3] = in[2], in[1], in[0], 0xff
		}
	}
	return img, nil
}
