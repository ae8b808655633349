// Package tmuxopt resolves user-overridable tmux options into lists of key
// chords.
package tmuxopt

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
	"github.com/lamchau/vim-tmux-navigator/internal/tmux"
)

// Resolver reads global user options from tmux, falling back to supplied
// defaults when an option is unset.
type Resolver struct {
	Tmux tmux.Driver
	Log  *log.Logger
}

func (r *Resolver) logger() *log.Logger {
	if r.Log != nil {
		return r.Log
	}
	return log.Discard
}

// Keys resolves the named option into an ordered list of key chords.
//
// An unset option resolves to the default. An option explicitly set to a
// blank string resolves to a single empty chord: that is the user saying
// "don't bind this", which is different from "use the default". Anything
// else is split on whitespace, so one option may name several chords.
//
// Each call queries tmux independently; nothing is cached.
func (r *Resolver) Keys(option, def string) []string {
	out, err := r.Tmux.ShowOption(tmux.ShowOptionRequest{
		Name:   option,
		Global: true,
	})
	if err != nil {
		// tmux exits non-zero for unset user options.
		r.logger().Debugf("option %q unset, using default %q", option, def)
		return splitChords(def)
	}

	value := unquote(string(bytes.TrimSpace(out)))
	if len(value) == 0 {
		return []string{""}
	}
	return splitChords(value)
}

// splitChords splits a space-separated list of key chords into its parts.
// Plain whitespace splitting only: chords like C-\ contain shell metacharacters
// that a shell-style tokenizer would mangle.
func splitChords(s string) []string {
	return strings.Fields(s)
}

// unquote removes one level of quoting that tmux may apply to option values
// holding spaces. Values that don't unquote cleanly are kept as-is.
func unquote(s string) string {
	if len(s) > 0 {
		switch s[0] {
		case '"', '\'':
			if o, err := strconv.Unquote(s); err == nil {
				return o
			}
		}
	}
	return s
}
