package tmux

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os/exec"
	"reflect"
	"sync"
	"testing"

	"github.com/lamchau/vim-tmux-navigator/internal/log/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionArgs(t *testing.T) {
	t.Parallel()

	blob := make([]byte, 10)
	randRead(t, blob)

	r := newFakeRunner(t)
	r.ExpectOutput("tmux", "-V").Stdout(blob)

	driver := ShellDriver{
		run: r.Runner(),
		log: logtest.NewLogger(t),
	}
	got, err := driver.Version()
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestShowOptionArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give ShowOptionRequest
		want []string
	}{
		{
			desc: "local",
			give: ShowOptionRequest{Name: "@foo"},
			want: []string{"show-options", "-v", "@foo"},
		},
		{
			desc: "global",
			give: ShowOptionRequest{Name: "@foo", Global: true},
			want: []string{"show-options", "-g", "-v", "@foo"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			blob := make([]byte, 10)
			randRead(t, blob)

			r := newFakeRunner(t)
			r.ExpectOutput("tmux", tt.want...).Stdout(blob)

			driver := ShellDriver{
				run: r.Runner(),
				log: logtest.NewLogger(t),
			}
			got, err := driver.ShowOption(tt.give)
			require.NoError(t, err)
			assert.Equal(t, blob, got)
		})
	}
}

func TestBindKeyArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give BindKeyRequest
		want []string
	}{
		{
			desc: "prefix table",
			give: BindKeyRequest{
				Key:     "C-l",
				Command: []string{"send-keys", "C-l"},
			},
			want: []string{"bind-key", "C-l", "send-keys", "C-l"},
		},
		{
			desc: "root table",
			give: BindKeyRequest{
				Key:     "C-h",
				Root:    true,
				Command: []string{"select-pane", "-L"},
			},
			want: []string{"bind-key", "-n", "C-h", "select-pane", "-L"},
		},
		{
			desc: "note",
			give: BindKeyRequest{
				Key:     "C-h",
				Root:    true,
				Note:    "Move: left",
				Command: []string{"select-pane", "-L"},
			},
			want: []string{
				"bind-key", "-N", "Move: left", "-n",
				"C-h", "select-pane", "-L",
			},
		},
		{
			desc: "key table",
			give: BindKeyRequest{
				Key:     "C-h",
				Table:   "copy-mode-vi",
				Command: []string{"select-pane", "-L"},
			},
			want: []string{
				"bind-key", "-T", "copy-mode-vi",
				"C-h", "select-pane", "-L",
			},
		},
		{
			desc: "conditional",
			give: BindKeyRequest{
				Key:  "C-h",
				Root: true,
				Command: []string{
					"if-shell", "true",
					"send-keys C-h", "select-pane -L",
				},
			},
			want: []string{
				"bind-key", "-n", "C-h",
				"if-shell", "true",
				"send-keys C-h", "select-pane -L",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			r := newFakeRunner(t)
			r.ExpectOutput("tmux", tt.want...)

			driver := ShellDriver{
				run: r.Runner(),
				log: logtest.NewLogger(t),
			}
			err := driver.BindKey(tt.give)
			assert.NoError(t, err)
		})
	}
}

func TestBindKeyNoCommand(t *testing.T) {
	t.Parallel()

	driver := ShellDriver{
		run: newFakeRunner(t).Runner(),
		log: logtest.NewLogger(t),
	}
	err := driver.BindKey(BindKeyRequest{Key: "C-h"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "requires a command")
}

type fakeCall struct {
	name string
	args []string
	out  []byte
}

func (c *fakeCall) Stdout(out []byte) *fakeCall {
	c.out = out
	return c
}

func (c *fakeCall) String() string {
	return fmt.Sprintf("%v %q", c.name, c.args)
}

func (c *fakeCall) matches(cmd *exec.Cmd) bool {
	return c.name == cmd.Args[0] && reflect.DeepEqual(c.args, cmd.Args[1:])
}

type fakeRunner struct {
	t     testing.TB
	mu    sync.Mutex
	calls []*fakeCall
}

func newFakeRunner(t testing.TB) *fakeRunner {
	t.Helper()

	r := &fakeRunner{t: t}
	t.Cleanup(r._verify)
	return r
}

func (r *fakeRunner) Runner() *runner {
	return &runner{
		Output: r.Output,
		Run:    r.Run,
	}
}

func (r *fakeRunner) ExpectOutput(name string, args ...string) *fakeCall {
	call := &fakeCall{name: name, args: args}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	return call
}

func (r *fakeRunner) Run(cmd *exec.Cmd) error {
	r.t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.calls {
		if !c.matches(cmd) {
			continue
		}

		// Match!
		copy(r.calls[i:], r.calls[i+1:])
		r.calls = r.calls[:len(r.calls)-1]
		return nil
	}

	r.t.Errorf("unexpected runner.Run call: %v %q", cmd.Args[0], cmd.Args[1:])
	return errors.New("unexpected call")
}

func (r *fakeRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	r.t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.calls {
		if !c.matches(cmd) {
			continue
		}

		// Match!
		copy(r.calls[i:], r.calls[i+1:])
		r.calls = r.calls[:len(r.calls)-1]
		return c.out, nil
	}

	r.t.Errorf("unexpected runner.Output call: %v %q", cmd.Args[0], cmd.Args[1:])
	return nil, errors.New("unexpected call")
}

func (r *fakeRunner) _verify() {
	r.t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.calls {
		r.t.Errorf("missing call: %v", c)
	}
}

func randRead(t testing.TB, bs []byte) {
	t.Helper()

	_, err := rand.Read(bs)
	require.NoError(t, err)
}
