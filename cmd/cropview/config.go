package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/cropview/internal/config"
)

type configCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r.subcommand("config"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

func (c *configCmd) runPrint() error {
	fmt.Fprint(c.output(), c.config.String())
	return nil
}

func (c *configCmd) runSave() error {
	path := configPathOverride
	if path == "" {
		path = config.NewLoader(version, configPathOverride).GetConfigPath()
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path available")
	}
	if err := config.Save(path, c.config); err != nil {
		return err
	}
	fmt.Fprintf(c.output(), "Configuration saved to %s\n", path)
	return nil
}
