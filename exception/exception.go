package exception

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/logx"
)

// SafeRun calls fn and turns a panic into an internal_error.
func SafeRun(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error("PANIC", "Panic in: ", name, " ", r, "\n", string(debug.Stack()))
			err = errors.NewError(errors.ErrCodeInternal, fmt.Sprintf("%s crashed: %v", name, r))
		}
	}()
	return fn()
}

// CrashGuard must be deferred directly. It logs a panic with its stack and exits 1.
func CrashGuard(name string) {
	if r := recover(); r != nil {
		_ = logx.Errorf("%s CRASHED: %v\n%s", name, r, debug.Stack())
		fmt.Fprintf(os.Stderr, "%s crashed: %v\n", name, r)
		os.Exit(1)
	}
}
