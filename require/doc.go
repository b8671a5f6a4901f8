/*
Package require provides debug-time precondition checks that panic with a descriptive error when an invariant is violated.

Each check comes in two forms:
  - A default form, such as [IsTrue], that panics with an [InvalidArgument] (or an [InvalidNullArgument] for [IsNotNull]).
  - A form suffixed with "As", such as [IsTrueAs], that panics with a caller-selected error [Kind].

Any string-based error type can be used as a [Kind].

	type ConfigError string

	func (e ConfigError) Error() string { return string(e) }

	require.IsNotBlankAs[ConfigError](cfg.Name, "config name must be set")

The trailing msgAndArgs parameters replace the generated message.
If the first is a string, then it's used as a format string with the remaining args.
A func() string is only called when the check fails.

# Release builds

Checks are meant for development and testing.
To strip them from a build, use the 'noassert' build tag.

	go build -tags noassert ./...

With the tag, every check is an empty function: no condition is evaluated, no message is formatted, and nothing panics regardless of input.
Use [IsTrueFunc] when even computing the condition should be skipped.
The [Enabled] constant reports which profile was compiled.
*/
package require
