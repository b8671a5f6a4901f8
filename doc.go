/*
Package debug is the root of development-time tooling that should cost nothing in release builds.

  - Package require holds precondition checks that panic with a descriptive error, and that are stripped with the 'noassert' build tag.
  - The require command in cmd/require exposes the same checks to shell scripts.
*/
package debug
