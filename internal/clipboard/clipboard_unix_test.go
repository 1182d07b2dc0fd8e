//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureInitWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil

	assert.ErrorIs(t, WriteText("10,20,30,40"), ErrNoDisplay)
	_, err := ReadImage()
	assert.ErrorIs(t, err, ErrNoDisplay)
}
