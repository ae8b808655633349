package main

// _isEditor is the shell predicate that decides whether the foreground
// process of the current pane is a vim-like editor (vim and neovim variants,
// their diff modes, and fzf), ignoring stopped and zombie processes.
//
// The exact pattern is a contract with the editor plugins that pair with
// this program. Keep it byte-for-byte as they expect it; do not reinterpret
// or "clean up" the regular expression.
const _isEditor = `ps -o state= -o comm= -t '#{pane_tty}' | grep -iqE '^[^TXZ ]+ +(\S+\/)?g?(view|l?n?vim?x?|fzf)(diff)?$'`

// direction is one logical navigation direction: the key chord bound to it
// by default and the select-pane invocation that moves that way.
type direction struct {
	name string // left, down, up, right, previous
	key  string // default key chord
	nav  string // select-pane command moving in this direction
}

// The five directions, in the order their bindings are installed.
var _directions = [...]direction{
	{name: "left", key: "C-h", nav: "select-pane -L"},
	{name: "down", key: "C-j", nav: "select-pane -D"},
	{name: "up", key: "C-k", nav: "select-pane -U"},
	{name: "right", key: "C-l", nav: "select-pane -R"},
	{name: "previous", key: `C-\`, nav: "select-pane -l"},
}

// option is the tmux user option that overrides the keys for this direction.
func (d direction) option() string {
	return "@vim_navigator_mapping_" + d.name
}

// note is the human-readable description attached to this direction's
// bindings.
func (d direction) note() string {
	return "Move: " + d.name
}
