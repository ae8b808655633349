package tmux

import (
	"errors"
	"io"
	"os/exec"
	"sync"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
)

const _defaultTmux = "tmux"

// minimal hook to change how exec.Cmd are run. Tests will provide a different
// implementation.
type runner struct {
	Run    func(*exec.Cmd) error
	Output func(*exec.Cmd) ([]byte, error)
}

var defaultRunner = runner{
	Run:    (*exec.Cmd).Run,
	Output: (*exec.Cmd).Output,
}

// ShellDriver is a Driver implementation that shells out to tmux to run
// commands.
type ShellDriver struct {
	// Path to the tmux executable. Defaults to "tmux".
	Path string

	log  *log.Logger
	run  *runner
	once sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() {
	s.once.Do(func() {
		if s.log == nil {
			s.log = log.Discard
		}

		if s.Path == "" {
			s.Path = _defaultTmux
		}

		if s.run == nil {
			s.run = &defaultRunner
		}
	})
}

// SetLogger specifies the logger for the ShellDriver. By default, the
// ShellDriver does not log anything.
func (s *ShellDriver) SetLogger(log *log.Logger) {
	s.log = log
}

func (s *ShellDriver) cmd(args ...string) *exec.Cmd {
	return exec.Command(s.Path, args...)
}

// errorWriter sets the provided io.Writers to the same log.Writer and returns
// a function to close them.
//
//	cmd := s.cmd("some", "cmd")
//	defer s.errorWriter(&cmd.Stderr)()
func (s *ShellDriver) errorWriter(ws ...*io.Writer) (close func()) {
	writer := &log.Writer{Log: s.log, Level: log.Error}
	for _, w := range ws {
		*w = writer
	}
	return func() { writer.Close() }
}

// Version runs the tmux -V command and returns its output.
func (s *ShellDriver) Version() ([]byte, error) {
	s.init()

	cmd := s.cmd("-V")
	defer s.errorWriter(&cmd.Stderr)()

	s.log.Debugf("version")
	return s.run.Output(cmd)
}

// ShowOption runs the show-options command for a single option and returns
// its output. Absent the -q flag, tmux exits non-zero for an unset user
// option, so callers can tell "unset" apart from "set to an empty string".
func (s *ShellDriver) ShowOption(req ShowOptionRequest) ([]byte, error) {
	s.init()

	args := []string{"show-options"}
	if req.Global {
		args = append(args, "-g")
	}
	args = append(args, "-v", req.Name)

	cmd := s.cmd(args...)
	defer s.errorWriter(&cmd.Stderr)()

	s.log.Debugf("show option: %v", req)
	return s.run.Output(cmd)
}

// BindKey runs the bind-key command.
func (s *ShellDriver) BindKey(req BindKeyRequest) error {
	s.init()

	if len(req.Command) == 0 {
		return errors.New("bind-key requires a command")
	}

	args := []string{"bind-key"}
	if n := req.Note; len(n) > 0 {
		args = append(args, "-N", n)
	}
	if req.Root {
		args = append(args, "-n")
	}
	if t := req.Table; len(t) > 0 {
		args = append(args, "-T", t)
	}
	args = append(args, req.Key)
	args = append(args, req.Command...)

	cmd := s.cmd(args...)
	defer s.errorWriter(&cmd.Stdout, &cmd.Stderr)()

	s.log.Debugf("bind key: %v", req)
	return s.run.Run(cmd)
}
