package require

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")      // ErrInvalidArgument matches any failure raised with a default kind.
	ErrInvalidNullArgument = errors.New("invalid null argument") // ErrInvalidNullArgument matches failures raised by a default not-null check.
)

// Kind is the constraint for error types that a check may panic with.
// The type must have an underlying string type, since the failure message is converted directly to it.
type Kind interface {
	~string
	error
}

// InvalidArgument is the default failure raised by checks.
type InvalidArgument string

func (e InvalidArgument) Error() string {
	return string(e)
}

func (e InvalidArgument) Is(err error) bool {
	return err == ErrInvalidArgument
}

// InvalidNullArgument is raised by [IsNotNull], and by the string checks when they're given a nil *string.
// It's also considered an [ErrInvalidArgument] by [errors.Is].
type InvalidNullArgument string

func (e InvalidNullArgument) Error() string {
	return string(e)
}

func (e InvalidNullArgument) Is(err error) bool {
	return err == ErrInvalidNullArgument || err == ErrInvalidArgument
}

// Text is satisfied by the types accepted by the string checks.
// A nil *string is considered absent.
type Text interface {
	string | *string
}
