package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
	"github.com/lamchau/vim-tmux-navigator/internal/tmux"
	"github.com/lamchau/vim-tmux-navigator/internal/tmux/tmuxopt"
	"go.uber.org/multierr"
)

// _minVersion is the oldest tmux this program supports; bind-key -N notes
// appeared in tmux 3.1.
var _minVersion = tmux.Version{Major: 3, Minor: 1}

const (
	_copyModeTable = "copy-mode-vi"

	_clearScreenOption = "@vim_navigator_prefix_mapping_clear_screen"
	_clearScreenKey    = "C-l"
	_clearScreenNote   = "Clear screen"
)

// navigator installs the navigation key bindings into the running tmux
// server. Each direction gets a root-table binding that forwards the
// keystroke to a vim-like editor owning the pane and switches panes
// otherwise, and a copy-mode binding that always switches panes.
type navigator struct {
	Log  *log.Logger
	Tmux tmux.Driver

	resolver *tmuxopt.Resolver
}

func (nav *navigator) init() {
	if nav.resolver == nil {
		nav.resolver = &tmuxopt.Resolver{Tmux: nav.Tmux, Log: nav.Log}
	}
}

// Run installs all bindings, consulting tmux for user overrides.
//
// An unsupported or unrecognizable tmux version is not an error: the
// bindings are skipped, the problem is logged, and Run reports success so
// that a tmux startup script carrying this program doesn't fail outright.
func (nav *navigator) Run() error {
	nav.init()

	out, err := nav.Tmux.Version()
	if err != nil {
		return fmt.Errorf("query tmux version: %v", err)
	}

	version, err := tmux.ParseVersion(string(bytes.TrimSpace(out)))
	if err != nil {
		nav.Log.Errorf("unrecognizable tmux version: %v", err)
		return nil
	}
	if !version.AtLeast(_minVersion) {
		nav.Log.Errorf("tmux %v is too old, need %v or newer; not installing bindings",
			version, _minVersion)
		return nil
	}
	nav.Log.Debugf("tmux version %v", version)

	for _, d := range _directions {
		for _, key := range nav.resolver.Keys(d.option(), d.key) {
			key = strings.TrimSpace(key)
			if len(key) == 0 {
				nav.Log.Debugf("direction %q unbound, skipping", d.name)
				continue
			}

			if err := nav.bindMove(key, d); err != nil {
				return fmt.Errorf("bind %q for %q: %v", key, d.name, err)
			}
		}
	}

	return nav.bindClearScreen()
}

// bindMove installs the two bindings for one key chord of one direction.
func (nav *navigator) bindMove(key string, d direction) error {
	err := nav.Tmux.BindKey(tmux.BindKeyRequest{
		Key:  key,
		Root: true,
		Note: d.note(),
		Command: []string{
			"if-shell", _isEditor,
			"send-keys " + key,
			d.nav,
		},
	})

	// Install the copy-mode binding even if the root-table one failed. A
	// partially bound direction is acceptable for a one-shot program that
	// is safe to re-run; the caller still sees the failure.
	err = multierr.Append(err, nav.Tmux.BindKey(tmux.BindKeyRequest{
		Key:     key,
		Table:   _copyModeTable,
		Note:    d.note(),
		Command: strings.Fields(d.nav),
	}))
	return err
}

// bindClearScreen rebinds a prefix-table key to send C-l into the pane,
// compensating for the root-table C-l binding taken over by "right".
func (nav *navigator) bindClearScreen() error {
	for _, key := range nav.resolver.Keys(_clearScreenOption, _clearScreenKey) {
		key = strings.TrimSpace(key)
		if len(key) == 0 {
			nav.Log.Debugf("clear-screen unbound, skipping")
			continue
		}

		err := nav.Tmux.BindKey(tmux.BindKeyRequest{
			Key:     key,
			Note:    _clearScreenNote,
			Command: []string{"send-keys", "C-l"},
		})
		if err != nil {
			return fmt.Errorf("bind %q for clear-screen: %v", key, err)
		}
	}
	return nil
}
