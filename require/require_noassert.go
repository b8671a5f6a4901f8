//go:build noassert

package require

import "cmp"

// Enabled reports whether checks are compiled into this build.
const Enabled = false

func IsNull(v any, msgAndArgs ...any) {
	// No op
}

func IsNullAs[E Kind](v any, msgAndArgs ...any) {
	// No op
}

func IsNotNull(v any, msgAndArgs ...any) {
	// No op
}

func IsNotNullAs[E Kind](v any, msgAndArgs ...any) {
	// No op
}

func IsEmpty[S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsEmptyAs[E Kind, S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsNotEmpty[S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsNotEmptyAs[E Kind, S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsBlank[S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsBlankAs[E Kind, S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsNotBlank[S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsNotBlankAs[E Kind, S Text](s S, msgAndArgs ...any) {
	// No op
}

func IsTrue(v bool, msgAndArgs ...any) {
	// No op
}

func IsTrueAs[E Kind](v bool, msgAndArgs ...any) {
	// No op
}

func IsFalse(v bool, msgAndArgs ...any) {
	// No op
}

func IsFalseAs[E Kind](v bool, msgAndArgs ...any) {
	// No op
}

func AreEqual[T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreEqualAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreNotEqual[T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreNotEqualAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreSame[T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreSameAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreNotSame[T any](a, b T, msgAndArgs ...any) {
	// No op
}

func AreNotSameAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	// No op
}

func IsLessThan[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsLessThanAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsGreaterThan[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsGreaterThanAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsAtMost[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsAtMostAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsAtLeast[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsAtLeastAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	// No op
}

func IsTrueFunc(fn func() bool, msgAndArgs ...any) {
	// No op
}

func IsTrueFuncAs[E Kind](fn func() bool, msgAndArgs ...any) {
	// No op
}

func IsFalseFunc(fn func() bool, msgAndArgs ...any) {
	// No op
}

func IsFalseFuncAs[E Kind](fn func() bool, msgAndArgs ...any) {
	// No op
}
