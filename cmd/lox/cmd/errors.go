package cmd

import "errors"

// exitError pairs a process exit code with the underlying cause, per
// spec.md §6's exit-code table: 64 usage, 65 compile-time, 70 runtime,
// 74 file I/O.
type exitError struct {
	code int
	err  error
}

func newExitError(code int, err error) *exitError {
	return &exitError{code: code, err: err}
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCodeFor extracts the process exit code carried by err, defaulting to
// 1 for errors that never went through newExitError (cobra usage errors,
// for instance, print their own message and warrant a generic failure).
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
