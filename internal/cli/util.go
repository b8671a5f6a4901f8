package cli

import (
	"errors"
	"fmt"
)

// MustGet is used with a [pflag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
// Flags are registered next to the code that reads them, so a failure here is a programming error.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs maps positional arguments to targets, requiring exactly len(targets) arguments.
// The returned error is a [UsageError] wrapping [ErrArgMap].
func MapArgs(args []string, targets ...*string) error {
	if len(args) != len(targets) {
		return &UsageError{wrapped: fmt.Errorf("%w: expected %d argument(s), got %d", ErrArgMap, len(targets), len(args))}
	}
	for i := range args {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = args[i]
	}
	return nil
}
