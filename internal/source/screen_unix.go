//go:build linux || freebsd || openbsd || netbsd || dragonfly

package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Screen grabs the whole screen: the X11 root window when DISPLAY is set,
// otherwise the desktop screenshot portal on Wayland sessions.
func Screen(ctx context.Context) (image.Image, error) {
	img, err := x11Screen()
	if err == nil {
		return img, nil
	}
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, err
	}
	pimg, perr := portalScreen(ctx)
	if perr != nil {
		if errors.Is(err, ErrNoDisplay) {
			return nil, perr
		}
		return nil, errors.Join(err, perr)
	}
	return pimg, nil
}

func x11Screen() (*image.RGBA, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, ErrNoDisplay
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	root := setup.DefaultScreen(conn)
	if root == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}
	w, h := root.WidthInPixels, root.HeightInPixels
	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(root.Root), 0, 0, w, h, ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("root window pixels: %w", err)
	}
	bpp := bitsPerPixel(setup.PixmapFormats, reply.Depth)
	return zpixmapToRGBA(reply.Data, int(w), int(h), bpp)
}

func bitsPerPixel(formats []xproto.Format, depth byte) int {
	for _, f := range formats {
		if f.Depth == depth {
			return int(f.BitsPerPixel)
		}
	}
	return 0
}
