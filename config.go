package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lamchau/vim-tmux-navigator/internal/log"
)

type config struct {
	LogLevel log.Level
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(levelValue{&c.LogLevel}, "log-level", "")
}

// levelValue parses a log level by name, case-insensitively.
type levelValue struct{ lvl *log.Level }

var _ flag.Value = levelValue{}

func (v levelValue) String() string {
	if v.lvl == nil {
		return ""
	}

	switch *v.lvl {
	case log.Debug:
		return "debug"
	case log.Info:
		return "info"
	case log.Warn:
		return "warning"
	case log.Error:
		return "error"
	case log.Critical:
		return "critical"
	default:
		return v.lvl.String()
	}
}

func (v levelValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "debug":
		*v.lvl = log.Debug
	case "info":
		*v.lvl = log.Info
	case "warning":
		*v.lvl = log.Warn
	case "error":
		*v.lvl = log.Error
	case "critical":
		*v.lvl = log.Critical
	default:
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}
