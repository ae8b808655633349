package tmux

import (
	"log/slog"
	"strings"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
)

//go:generate mockgen -destination tmuxtest/mock_driver.go -package tmuxtest github.com/lamchau/vim-tmux-navigator/internal/tmux Driver

// Driver is a low-level API to access tmux. This maps directly to tmux
// commands.
type Driver interface {
	// Version runs the tmux -V command and returns its output.
	Version() ([]byte, error)

	// ShowOption runs the tmux show-options command for a single option
	// and returns its output. The command exits non-zero when the option
	// is unset.
	ShowOption(ShowOptionRequest) ([]byte, error)

	// BindKey runs the tmux bind-key command.
	BindKey(BindKeyRequest) error
}

// ShowOptionRequest specifies the parameters for a show-options command that
// reads a single option by name.
type ShowOptionRequest struct {
	// Name of the option to read.
	Name string

	// Whether to read from the global option table.
	Global bool
}

func (r ShowOptionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "name", r.Name),
		slog.Bool("global", r.Global),
	)
}

// BindKeyRequest specifies the parameters for a bind-key command.
type BindKeyRequest struct {
	// Key chord to bind.
	Key string

	// Whether the binding works without the prefix key. This places the
	// binding in the root key table.
	Root bool

	// Key table to place the binding in, if any. Defaults to the prefix
	// table. Mutually exclusive with Root.
	Table string

	// Human-readable note attached to the binding, shown by
	// list-keys -N.
	Note string

	// Command and arguments that tmux runs when the key is pressed. Must
	// have at least one element.
	Command []string
}

func (r BindKeyRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "key", r.Key),
		slog.Bool("root", r.Root),
		log.OmitEmpty(slog.String, "table", r.Table),
		log.OmitEmpty(slog.String, "note", r.Note),
		log.OmitEmpty(slog.String, "command", strings.Join(r.Command, " ")),
	)
}
