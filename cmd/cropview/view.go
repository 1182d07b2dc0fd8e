package main

import (
	"flag"

	"github.com/example/cropview/internal/appstate"
	"github.com/example/cropview/internal/session"
)

type viewCmd struct {
	tool  string
	dir   string
	fps   int
	paths []string
	*root
	fs *flag.FlagSet
}

func (v *viewCmd) FlagSet() *flag.FlagSet {
	return v.fs
}

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	c := &viewCmd{root: r.subcommand("view"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.tool, "tool", r.config.Tool, "starting tool (normal, select, modify)")
	fs.StringVar(&c.dir, "dir", r.config.ExportDir, "directory exports are written to")
	fs.IntVar(&c.fps, "fps", 60, "frames painted per second")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.paths = fs.Args()
	return c, nil
}

func (v *viewCmd) newSession() (*session.Session, error) {
	opts := []session.Option{
		session.WithLogger(v.log),
		session.WithFill(v.config.FillColor),
		session.WithZoomLimits(v.config.MinScale, v.config.MaxScale),
	}
	if v.tool != "" {
		t, err := session.ParseTool(v.tool)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithTool(t))
	}
	return session.New(opts...), nil
}

func (v *viewCmd) Run() error {
	sess, err := v.newSession()
	if err != nil {
		return err
	}
	dir := v.dir
	if dir == "" {
		dir = "."
	}
	st := appstate.New(
		appstate.WithSession(sess),
		appstate.WithTheme(v.activeTheme),
		appstate.WithExportDir(dir),
		appstate.WithPaths(v.paths...),
		appstate.WithFrameRate(v.fps),
		appstate.WithNotifier(v.notifier),
		appstate.WithLogger(v.log),
	)
	st.Run()
	return nil
}
