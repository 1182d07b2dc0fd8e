//go:build linux || freebsd || openbsd || netbsd || dragonfly

package source

import (
	"context"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalResult(t *testing.T) {
	handle := dbus.ObjectPath("/org/freedesktop/portal/desktop/request/1_2/cropview1")
	ok := &dbus.Signal{
		Path: handle,
		Name: portalResponse,
		Body: []any{uint32(0), map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/Screenshot%20one.png")}},
	}
	path, done, err := portalResult(ok, handle)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "/tmp/Screenshot one.png", path)

	_, done, err = portalResult(&dbus.Signal{Path: "/other", Name: portalResponse}, handle)
	assert.False(t, done)
	assert.NoError(t, err)

	cancelled := &dbus.Signal{Path: handle, Name: portalResponse, Body: []any{uint32(1), map[string]dbus.Variant{}}}
	_, done, err = portalResult(cancelled, handle)
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrPortalCancelled)

	missing := &dbus.Signal{Path: handle, Name: portalResponse, Body: []any{uint32(0), map[string]dbus.Variant{}}}
	_, _, err = portalResult(missing, handle)
	assert.ErrorContains(t, err, "missing image data")

	remote := &dbus.Signal{Path: handle, Name: portalResponse, Body: []any{uint32(0), map[string]dbus.Variant{"uri": dbus.MakeVariant("https://example.com/x.png")}}}
	_, _, err = portalResult(remote, handle)
	assert.Error(t, err)
}

func TestScreenWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	_, err := Screen(context.Background())
	assert.ErrorIs(t, err, ErrNoDisplay)
}
