package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"#00FF0080", color.RGBA{0, 255, 0, 128}},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 255}},
		{"SlateGray", color.RGBA{112, 128, 144, 255}},
		{" red ", color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	for _, bad := range []string{"#12", "#gggggg", "notacolour", ""} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	in := strings.NewReader(`# comment
Name: Test
Selection: #00ff00
HandleFill: navy
Unknown: #123456
not a pair
`)
	th, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, "Test", th.Name)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, th.Selection)
	assert.Equal(t, color.RGBA{0, 0, 128, 255}, th.HandleFill)
	assert.Equal(t, Default().CheckerDark, th.CheckerDark)
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: x\nSelection: #zz\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	src := Default()
	src.PanelBackground = color.RGBA{1, 2, 3, 4}
	require.NoError(t, Write(&buf, src))
	got, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEmbeddedThemes(t *testing.T) {
	assert.Equal(t, []string{"dark", "light"}, EmbeddedNames())

	l := &Loader{}
	light, err := l.Load("Light")
	require.NoError(t, err)
	assert.Equal(t, Default().ImageFill, light.ImageFill)
	assert.Equal(t, Default().Selection, light.Selection)

	dark, err := l.Load("dark")
	require.NoError(t, err)
	assert.Equal(t, "Dark", dark.Name)
}

func TestLoaderSearchOrder(t *testing.T) {
	cfg := t.TempDir()
	sys := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(sys, "ocean.theme"), []byte("Name: SysOcean\n"), 0o644))
	l := &Loader{ConfigDir: cfg, SystemDir: sys}

	th, err := l.Load("ocean")
	require.NoError(t, err)
	assert.Equal(t, "SysOcean", th.Name)

	require.NoError(t, os.WriteFile(filepath.Join(cfg, "ocean.theme"), []byte("Name: UserOcean\n"), 0o644))
	th, err = l.Load("ocean")
	require.NoError(t, err)
	assert.Equal(t, "UserOcean", th.Name)

	direct := filepath.Join(t.TempDir(), "custom.theme")
	require.NoError(t, os.WriteFile(direct, []byte("Name: Direct\n"), 0o644))
	th, err = l.Load(direct)
	require.NoError(t, err)
	assert.Equal(t, "Direct", th.Name)

	_, err = l.Load("missing")
	assert.Error(t, err)

	th, err = l.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Default", th.Name)
}
