package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
	"github.com/lamchau/vim-tmux-navigator/internal/paniclog"
	"github.com/lamchau/vim-tmux-navigator/internal/tmux"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	tmux tmux.Driver // overridden in tests
}

const _name = "vim-tmux-navigator"

const _usage = `usage: %v [options]

Installs tmux key bindings that move between panes with vim-style
directional keys, forwarding the keystroke to a vim-like editor when one
owns the current pane.

Run it from the tmux configuration so that it executes at server start:

	run-shell vim-tmux-navigator

The following flags are available:

	-log-level LEVEL
		minimum severity of messages to log.
		LEVEL is one of debug, info, warning, error, or critical,
		case-insensitive.
		Defaults to info.
`

func (cmd *mainCmd) Run(args []string) (err error) {
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}

	var cfg config
	cfg.RegisterFlags(flag)
	if err := flag.Parse(args); err != nil {
		return err
	}

	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	defer paniclog.Recover(&err, cmd.Stderr)

	logger := log.New(cmd.Stderr).WithLevel(cfg.LogLevel)

	driver := cmd.tmux
	if driver == nil {
		shell := &tmux.ShellDriver{}
		shell.SetLogger(logger.WithName("tmux"))
		driver = shell
	}

	return (&navigator{
		Log:  logger,
		Tmux: driver,
	}).Run()
}
