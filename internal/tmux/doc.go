// Package tmux provides APIs to interact with the tmux(1) terminal multiplexer.
//
// It provides a [Driver] interface and a [ShellDriver] implementation.
// These provide direct, low-level interaction with tmux operations.
package tmux
