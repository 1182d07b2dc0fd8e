package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/example/cropview/internal/clipboard"
	"github.com/example/cropview/internal/export"
	"github.com/example/cropview/internal/selection"
	"github.com/example/cropview/internal/session"
	"github.com/example/cropview/internal/source"
	"github.com/example/cropview/internal/theme"
)

var (
	decodeFn         session.Decoder = source.DecodeFile
	writeClipboardFn                 = clipboard.WriteImage
)

type exportCmd struct {
	rect        string
	mode        string
	fill        string
	dir         string
	toClipboard bool
	file        string
	stdout      io.Writer
	*root
	fs *flag.FlagSet
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	c := &exportCmd{root: r.subcommand("export"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.rect, "rect", "", "selection as x,y,w,h in image pixels")
	fs.StringVar(&c.mode, "mode", export.ModeSelection.String(), "export mode (selection, inside, outside, rectangle)")
	fs.StringVar(&c.fill, "fill", theme.FormatColor(r.config.FillColor), "selection colour for the rectangle mode")
	fs.StringVar(&c.dir, "dir", r.config.ExportDir, "directory the PNG is written to")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the export to the clipboard instead of writing a file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 || c.rect == "" {
		return nil, &UsageError{of: c}
	}
	c.file = fs.Arg(0)
	return c, nil
}

func (e *exportCmd) Run() error {
	r, err := selection.ParseRect(e.rect)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	mode, err := export.ParseMode(e.mode)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fill, err := theme.ParseColor(e.fill)
	if err != nil {
		return fmt.Errorf("export: fill: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := session.New(session.WithLogger(e.log), session.WithFill(fill))
	if err := sess.LoadFiles(ctx, decodeFn, []string{e.file}); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	sess.SetSelection(r)
	res, err := sess.Export(mode)
	if err != nil {
		return err
	}

	out := e.stdout
	if out == nil {
		out = os.Stdout
	}
	if e.toClipboard {
		if err := writeClipboardFn(res.Image); err != nil {
			return fmt.Errorf("copy %s: %w", res.Name, err)
		}
		e.notifier.Copy(res.Name)
		fmt.Fprintf(out, "copied %s\n", res.Name)
		return nil
	}
	dir := e.dir
	if dir == "" {
		dir = "."
	}
	path, err := export.WriteFile(dir, res.Name, res.Image)
	if err != nil {
		return err
	}
	e.notifier.Export(path)
	fmt.Fprintln(out, path)
	return nil
}
