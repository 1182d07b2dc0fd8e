package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/cropview/internal/config"
	"github.com/example/cropview/internal/export"
	"github.com/example/cropview/internal/source"
	"github.com/example/cropview/internal/theme"
)

func testRoot() *root {
	return &root{
		program:     "cropview",
		config:      config.New(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		activeTheme: theme.Default(),
	}
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestExportWritesNamedFile(t *testing.T) {
	in := writePNG(t, t.TempDir(), "photo.png", 20, 10)
	out := t.TempDir()
	cmd, err := parseExportCmd([]string{"-rect", "2,3,5,4", "-mode", "inside", "-dir", out, in}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var stdout bytes.Buffer
	cmd.stdout = &stdout
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := filepath.Join(out, "photo-2-3-5-4-inside.png")
	if got := strings.TrimSpace(stdout.String()); got != want {
		t.Fatalf("printed %q, want %q", got, want)
	}
	img, err := source.DecodeFile(want)
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("inside export keeps the image size, got %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("outside the selection should be transparent, alpha %d", a)
	}
}

func TestExportNameMatchesCroppedPixels(t *testing.T) {
	in := writePNG(t, t.TempDir(), "photo.png", 20, 10)
	out := t.TempDir()
	cmd, err := parseExportCmd([]string{"-rect", "1.5,0,10,10", "-dir", out, in}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var stdout bytes.Buffer
	cmd.stdout = &stdout
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := filepath.Join(out, "photo-2-0-10-10-selection.png")
	if got := strings.TrimSpace(stdout.String()); got != want {
		t.Fatalf("printed %q, want %q", got, want)
	}
	img, err := source.DecodeFile(want)
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 2 {
		t.Fatalf("first column should come from x=2, red %d", r>>8)
	}
}

func TestExportEmptySelection(t *testing.T) {
	in := writePNG(t, t.TempDir(), "photo.png", 4, 4)
	cmd, err := parseExportCmd([]string{"-rect", "1,1,0,3", "-dir", t.TempDir(), in}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.stdout = io.Discard
	if err := cmd.Run(); !errors.Is(err, export.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestExportDecodeError(t *testing.T) {
	original := decodeFn
	sentinel := errors.New("corrupt header")
	decodeFn = func(string) (image.Image, error) { return nil, sentinel }
	t.Cleanup(func() { decodeFn = original })

	cmd, err := parseExportCmd([]string{"-rect", "0,0,1,1", "broken.png"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = cmd.Run()
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}
	if want := "load broken.png"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestExportToClipboard(t *testing.T) {
	original := writeClipboardFn
	var copied image.Image
	writeClipboardFn = func(img image.Image) error { copied = img; return nil }
	t.Cleanup(func() { writeClipboardFn = original })

	in := writePNG(t, t.TempDir(), "shot.png", 8, 8)
	cmd, err := parseExportCmd([]string{"-rect", "1,1,2,2", "-to-clipboard", in}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var stdout bytes.Buffer
	cmd.stdout = &stdout
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if copied == nil || copied.Bounds().Dx() != 2 || copied.Bounds().Dy() != 2 {
		t.Fatalf("expected a 2x2 selection on the clipboard, got %v", copied)
	}
	if !strings.Contains(stdout.String(), "shot-1-1-2-2-selection.png") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestExportRejectsBadArguments(t *testing.T) {
	if _, err := parseExportCmd([]string{"photo.png"}, testRoot()); err == nil {
		t.Fatalf("expected usage error without -rect")
	} else {
		var uerr *UsageError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected UsageError, got %T", err)
		}
		if want := "Usage: cropview export"; !strings.Contains(uerr.Error(), want) {
			t.Fatalf("help should contain %q, got %q", want, uerr.Error())
		}
	}

	for _, args := range [][]string{
		{"-rect", "1,2,3", "x.png"},
		{"-rect", "1,2,3,4", "-mode", "sideways", "x.png"},
		{"-rect", "1,2,3,4", "-fill", "notacolour", "x.png"},
	} {
		cmd, err := parseExportCmd(args, testRoot())
		if err != nil {
			t.Fatalf("parse %v: %v", args, err)
		}
		if err := cmd.Run(); err == nil || !strings.HasPrefix(err.Error(), "export:") {
			t.Fatalf("%v: expected export error, got %v", args, err)
		}
	}
}

func TestRootUnknownCommand(t *testing.T) {
	r := newRoot()
	err := r.Run([]string{"bogus"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: cropview", "export", "-theme"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help should mention %q:\n%s", want, help)
		}
	}
}

func TestViewParsesTool(t *testing.T) {
	cmd, err := parseViewCmd([]string{"-tool", "modify", "a.png", "b.png"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cmd.paths) != 2 {
		t.Fatalf("expected two paths, got %v", cmd.paths)
	}
	sess, err := cmd.newSession()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := sess.Tool().String(); got != "modify" {
		t.Fatalf("tool %q, want modify", got)
	}

	cmd, err = parseViewCmd([]string{"-tool", "lasso"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := cmd.newSession(); err == nil {
		t.Fatalf("expected unknown tool error")
	}
}

func TestConfigPrint(t *testing.T) {
	r := testRoot()
	r.config.ExportDir = "/tmp/crops"
	cmd, err := parseConfigCmd([]string{"print"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"export_dir = /tmp/crops", "fill_color = #999999", "[notify]"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}

func TestConfigSaveToOverride(t *testing.T) {
	original := configPathOverride
	configPathOverride = filepath.Join(t.TempDir(), "nested", "config.rc")
	t.Cleanup(func() { configPathOverride = original })

	cmd, err := parseConfigCmd([]string{"save"}, testRoot())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.out = io.Discard
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(configPathOverride)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	cfg, err := config.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse saved config: %v", err)
	}
	if cfg.FillColor != config.DefaultFillColor {
		t.Fatalf("fill colour %v did not round trip", cfg.FillColor)
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	v := &versionCmd{r: testRoot(), out: &out}
	if err := v.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "cropview version dev"; !strings.Contains(out.String(), want) {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}
