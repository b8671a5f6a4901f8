package runner

import "errors"

// ErrCheckFailed is matched by the error [Runner.Exec] returns when at least one check failed.
var ErrCheckFailed = errors.New("check failed")

// Capture runs fn and returns the error it panicked with, or nil if it returned normally.
// A panic with a value that isn't an error is not a check failure, so it's re-raised.
func Capture(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// CheckError reports every failure from a single invocation.
type CheckError struct {
	failures *Collector
}

func (e *CheckError) Error() string {
	return e.failures.Error()
}

func (e *CheckError) Is(err error) bool {
	return err == ErrCheckFailed
}

func (e *CheckError) Unwrap() error {
	return e.failures
}

// Failures returns each failure in the order it occurred.
func (e *CheckError) Failures() []error {
	return e.failures.Unwrap()
}
