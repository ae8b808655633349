// Package paniclog converts panics into errors, writing the panic and its
// stack to an io.Writer so that a crash still leaves a usable report on
// stderr.
package paniclog

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Recover recovers a panic, reports it to the given writer, and stores the
// error form of the panic value in err. It has no effect if there was no
// panic.
//
//	func run() (err error) {
//		defer paniclog.Recover(&err, os.Stderr)
//		...
//	}
func Recover(err *error, w io.Writer) {
	pval := recover()
	if pval == nil {
		return
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())
	*err = toError(pval)
}

func toError(pval interface{}) error {
	switch pval := pval.(type) {
	case error:
		return pval
	case string:
		return errors.New(pval)
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}
