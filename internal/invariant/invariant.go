// Package invariant checks internal assumptions at runtime.
//
// Checks are on by default and can be switched off process-wide, in which case
// That costs one atomic load.
package invariant

import (
	"fmt"
	"sync/atomic"
)

var disabled atomic.Bool

// Violation is the panic value raised by a failed check.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return "invariant violated: " + v.Message
}

// Enable switches checks on or off.
func Enable(on bool) {
	disabled.Store(!on)
}

// Enabled reports whether checks are on.
func Enabled() bool {
	return !disabled.Load()
}

// That panics with a *Violation when checks are enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if cond || disabled.Load() {
		return
	}

	panic(&Violation{Message: fmt.Sprintf(format, args...)})
}
