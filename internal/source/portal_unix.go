//go:build linux || freebsd || openbsd || netbsd || dragonfly

package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalResponse = "org.freedesktop.portal.Request.Response"
)

// ErrPortalCancelled is returned when the user dismisses the screenshot
// dialog.
var ErrPortalCancelled = errors.New("source: screenshot cancelled")

// portalScreen asks xdg-desktop-portal for a non-interactive screenshot and
// decodes the file it hands back. The file is removed afterwards.
func portalScreen(ctx context.Context) (image.Image, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.portal.Request"),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return nil, fmt.Errorf("portal subscribe: %w", err)
	}

	opts := map[string]dbus.Variant{
		"interactive":  dbus.MakeVariant(false),
		"handle_token": dbus.MakeVariant(fmt.Sprintf("cropview%d", time.Now().UnixNano())),
	}
	var handle dbus.ObjectPath
	call := conn.Object(portalDest, portalPath).CallWithContext(ctx, "org.freedesktop.portal.Screenshot.Screenshot", 0, "", opts)
	if err := call.Store(&handle); err != nil {
		return nil, fmt.Errorf("portal screenshot: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case sig, ok := <-sigc:
			if !ok {
				return nil, fmt.Errorf("portal screenshot: bus closed")
			}
			path, done, err := portalResult(sig, handle)
			if !done {
				continue
			}
			if err != nil {
				return nil, err
			}
			img, err := DecodeFile(path)
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				slog.Debug("remove portal screenshot", "path", path, "error", rerr)
			}
			return img, err
		}
	}
}

// portalResult interprets a Request.Response signal. done is false for
// signals about other requests.
func portalResult(sig *dbus.Signal, handle dbus.ObjectPath) (path string, done bool, err error) {
	if sig == nil || sig.Path != handle || sig.Name != portalResponse {
		return "", false, nil
	}
	if len(sig.Body) < 2 {
		return "", true, fmt.Errorf("portal screenshot: malformed response")
	}
	if code, ok := sig.Body[0].(uint32); ok && code != 0 {
		if code == 1 {
			return "", true, ErrPortalCancelled
		}
		return "", true, fmt.Errorf("portal screenshot: response code %d", code)
	}
	results, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return "", true, fmt.Errorf("portal screenshot: malformed results")
	}
	v, ok := results["uri"]
	if !ok {
		return "", true, fmt.Errorf("portal screenshot: response missing image data")
	}
	uri, ok := v.Value().(string)
	if !ok {
		return "", true, fmt.Errorf("portal screenshot: uri is %T", v.Value())
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return "", true, fmt.Errorf("portal screenshot: unexpected uri %q", uri)
	}
	return u.Path, true, nil
}
