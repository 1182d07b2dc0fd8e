package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/cropview/internal/config"
	"github.com/example/cropview/internal/notify"
	"github.com/example/cropview/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	log          *slog.Logger
	verbose      bool
	exportAlerts bool
	copyAlerts   bool
	loadAlerts   bool
	themeName    string
	activeTheme  *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	c := *r
	c.fs = nil
	c.program = program
	return &c
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:      flag.NewFlagSet("cropview", flag.ContinueOnError),
		program: "cropview",
		config:  cfg,
		log:     slog.Default(),
	}
	r.fs.BoolVar(&r.verbose, "v", false, "log debug messages to stderr")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after writing an export")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after an image loads")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.EmbeddedNames(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	level := slog.LevelInfo
	if r.verbose {
		level = slog.LevelDebug
	}
	r.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(r.log)

	r.notifier = notify.New(notify.LoadPreferences(), notify.WithLogger(r.log))
	r.notifier.Enable(notify.EventExport, r.exportAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.notifier.Enable(notify.EventLoad, r.loadAlerts)

	r.activeTheme = r.config.ApplyTheme(r.resolveTheme())

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "view":
		cmd, err = parseViewCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("CROPVIEW_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}
	if t, ok := r.config.Themes[themeName]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "" && themeName != "default" {
			r.log.Warn("failed to load theme, using default", "theme", themeName, "error", err)
		}
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
