/*
Package cli provides the command structure for the require tool.

A few policies apply:
  - User-visible output goes to STDERR by default through a [Printer], so scripts can keep STDOUT for themselves.
  - Flags are parsed with [pflag], and are not interspersed with arguments.
  - Each [Command] gets '-h' and '--help' flags, and the top-level [CommandSet] prints its command listing when called without arguments.
  - Argument and flag problems are reported as a [UsageError], which the caller maps to its own exit code.

[pflag]: https://github.com/spf13/pflag
*/
package cli
