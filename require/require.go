//go:build !noassert

package require

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Enabled reports whether checks are compiled into this build.
const Enabled = true

func message(msgAndArgs []any, format string, args ...any) string {
	if len(msgAndArgs) == 0 {
		return fmt.Sprintf(format, args...)
	}
	switch first := msgAndArgs[0].(type) {
	case string:
		if len(msgAndArgs) == 1 {
			return first
		}
		return fmt.Sprintf(first, msgAndArgs[1:]...)
	case func() string:
		return first()
	}
	return fmt.Sprint(msgAndArgs...)
}

// fail panics with E. The default message is only formatted if msgAndArgs is empty.
func fail[E Kind](msgAndArgs []any, format string, args ...any) {
	panic(E(message(msgAndArgs, format, args...)))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func textOf[S Text](s S) (string, bool) {
	if ptr, ok := any(s).(*string); ok {
		if ptr == nil {
			return "", false
		}
		return *ptr, true
	}
	return any(s).(string), true
}

func equal[T any](a, b T) bool {
	if !isNil(a) {
		if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
			return eq.Equal(b)
		}
	}
	return reflect.DeepEqual(a, b)
}

func same[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	default:
		// Everything else is copied on assignment, so it has no identity to share.
		return false
	}
}

// IsNull panics with an [InvalidArgument] if v is not nil.
// Typed nil pointers, maps, slices, channels, and functions are considered nil.
func IsNull(v any, msgAndArgs ...any) {
	IsNullAs[InvalidArgument](v, msgAndArgs...)
}

// IsNullAs is like [IsNull], but panics with E.
func IsNullAs[E Kind](v any, msgAndArgs ...any) {
	if isNil(v) {
		return
	}
	fail[E](msgAndArgs, "Expected null but was %v.", v)
}

// IsNotNull panics with an [InvalidNullArgument] if v is nil.
func IsNotNull(v any, msgAndArgs ...any) {
	IsNotNullAs[InvalidNullArgument](v, msgAndArgs...)
}

// IsNotNullAs is like [IsNotNull], but panics with E.
func IsNotNullAs[E Kind](v any, msgAndArgs ...any) {
	if !isNil(v) {
		return
	}
	fail[E](msgAndArgs, "Unexpected null.")
}

// present returns the value of s, or panics with N if it's a nil *string.
func present[N Kind, S Text](s S, msgAndArgs []any) string {
	str, ok := textOf(s)
	if !ok {
		fail[N](msgAndArgs, "Unexpected null.")
	}
	return str
}

// IsEmpty panics with an [InvalidArgument] if s is not the empty string.
// A nil *string panics with an [InvalidNullArgument] instead.
func IsEmpty[S Text](s S, msgAndArgs ...any) {
	isEmpty[InvalidArgument, InvalidNullArgument](s, msgAndArgs)
}

// IsEmptyAs is like [IsEmpty], but panics with E in both cases.
func IsEmptyAs[E Kind, S Text](s S, msgAndArgs ...any) {
	isEmpty[E, E](s, msgAndArgs)
}

func isEmpty[E, N Kind, S Text](s S, msgAndArgs []any) {
	str := present[N](s, msgAndArgs)
	if len(str) == 0 {
		return
	}
	fail[E](msgAndArgs, "Expected empty string but was %s.", str)
}

// IsNotEmpty panics with an [InvalidArgument] if s is the empty string.
// A nil *string panics with an [InvalidNullArgument] instead.
func IsNotEmpty[S Text](s S, msgAndArgs ...any) {
	isNotEmpty[InvalidArgument, InvalidNullArgument](s, msgAndArgs)
}

// IsNotEmptyAs is like [IsNotEmpty], but panics with E in both cases.
func IsNotEmptyAs[E Kind, S Text](s S, msgAndArgs ...any) {
	isNotEmpty[E, E](s, msgAndArgs)
}

func isNotEmpty[E, N Kind, S Text](s S, msgAndArgs []any) {
	str := present[N](s, msgAndArgs)
	if len(str) > 0 {
		return
	}
	fail[E](msgAndArgs, "Expected non-empty string but was %s.", str)
}

// IsBlank panics with an [InvalidArgument] if s contains anything other than white space.
// A nil *string panics with an [InvalidNullArgument] instead.
func IsBlank[S Text](s S, msgAndArgs ...any) {
	isBlank[InvalidArgument, InvalidNullArgument](s, msgAndArgs)
}

// IsBlankAs is like [IsBlank], but panics with E in both cases.
func IsBlankAs[E Kind, S Text](s S, msgAndArgs ...any) {
	isBlank[E, E](s, msgAndArgs)
}

func isBlank[E, N Kind, S Text](s S, msgAndArgs []any) {
	str := present[N](s, msgAndArgs)
	if len(strings.TrimSpace(str)) == 0 {
		return
	}
	fail[E](msgAndArgs, "Expected blank string but was %s.", str)
}

// IsNotBlank panics with an [InvalidArgument] if s is empty or only contains white space.
// A nil *string panics with an [InvalidNullArgument] instead.
func IsNotBlank[S Text](s S, msgAndArgs ...any) {
	isNotBlank[InvalidArgument, InvalidNullArgument](s, msgAndArgs)
}

// IsNotBlankAs is like [IsNotBlank], but panics with E in both cases.
func IsNotBlankAs[E Kind, S Text](s S, msgAndArgs ...any) {
	isNotBlank[E, E](s, msgAndArgs)
}

func isNotBlank[E, N Kind, S Text](s S, msgAndArgs []any) {
	str := present[N](s, msgAndArgs)
	if len(strings.TrimSpace(str)) > 0 {
		return
	}
	fail[E](msgAndArgs, "Expected non-blank string.")
}

// IsTrue panics with an [InvalidArgument] if v is false.
func IsTrue(v bool, msgAndArgs ...any) {
	IsTrueAs[InvalidArgument](v, msgAndArgs...)
}

// IsTrueAs is like [IsTrue], but panics with E.
func IsTrueAs[E Kind](v bool, msgAndArgs ...any) {
	if v {
		return
	}
	fail[E](msgAndArgs, "Expected true but was false.")
}

// IsTrueFunc panics with an [InvalidArgument] if fn returns false.
// The function is never called when checks are stripped from the build.
func IsTrueFunc(fn func() bool, msgAndArgs ...any) {
	IsTrueFuncAs[InvalidArgument](fn, msgAndArgs...)
}

func IsTrueFuncAs[E Kind](fn func() bool, msgAndArgs ...any) {
	IsTrueAs[E](fn(), msgAndArgs...)
}

// IsFalse panics with an [InvalidArgument] if v is true.
func IsFalse(v bool, msgAndArgs ...any) {
	IsFalseAs[InvalidArgument](v, msgAndArgs...)
}

// IsFalseAs is like [IsFalse], but panics with E.
func IsFalseAs[E Kind](v bool, msgAndArgs ...any) {
	if !v {
		return
	}
	fail[E](msgAndArgs, "Expected false but was true.")
}

// IsFalseFunc panics with an [InvalidArgument] if fn returns true.
// The function is never called when checks are stripped from the build.
func IsFalseFunc(fn func() bool, msgAndArgs ...any) {
	IsFalseFuncAs[InvalidArgument](fn, msgAndArgs...)
}

func IsFalseFuncAs[E Kind](fn func() bool, msgAndArgs ...any) {
	IsFalseAs[E](fn(), msgAndArgs...)
}

// AreEqual panics with an [InvalidArgument] if a and b are not equal in value.
//
// If T has an Equal(T) bool method, like [time.Time], then that is used.
// Otherwise, values are compared with [reflect.DeepEqual], which follows pointers.
func AreEqual[T any](a, b T, msgAndArgs ...any) {
	AreEqualAs[InvalidArgument](a, b, msgAndArgs...)
}

// AreEqualAs is like [AreEqual], but panics with E.
func AreEqualAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	if equal(a, b) {
		return
	}
	fail[E](msgAndArgs, "Expected %v to equal %v.", a, b)
}

// AreNotEqual panics with an [InvalidArgument] if a and b are equal in value, as defined by [AreEqual].
func AreNotEqual[T any](a, b T, msgAndArgs ...any) {
	AreNotEqualAs[InvalidArgument](a, b, msgAndArgs...)
}

// AreNotEqualAs is like [AreNotEqual], but panics with E.
func AreNotEqualAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	if !equal(a, b) {
		return
	}
	fail[E](msgAndArgs, "Expected %v to not equal %v.", a, b)
}

// AreSame panics with an [InvalidArgument] if a and b don't refer to the same instance.
//
// Pointers, maps, channels, and functions are the same if they have the same address.
// Slices must also have the same length.
// Two nil values are the same.
// Any other kind of value is copied on assignment, so it's never the same as another.
//
// Note that Go may give distinct zero-sized allocations the same address.
func AreSame[T any](a, b T, msgAndArgs ...any) {
	AreSameAs[InvalidArgument](a, b, msgAndArgs...)
}

// AreSameAs is like [AreSame], but panics with E.
func AreSameAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	if same(a, b) {
		return
	}
	fail[E](msgAndArgs, "Expected %v to reference-equal %v.", a, b)
}

// AreNotSame panics with an [InvalidArgument] if a and b refer to the same instance, as defined by [AreSame].
func AreNotSame[T any](a, b T, msgAndArgs ...any) {
	AreNotSameAs[InvalidArgument](a, b, msgAndArgs...)
}

// AreNotSameAs is like [AreNotSame], but panics with E.
func AreNotSameAs[E Kind, T any](a, b T, msgAndArgs ...any) {
	if !same(a, b) {
		return
	}
	fail[E](msgAndArgs, "Expected %v to not reference-equal %v.", a, b)
}

// IsLessThan panics with an [InvalidArgument] unless a sorts before b.
// Values are ordered with [cmp.Compare], so a NaN is less than any other float.
func IsLessThan[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	IsLessThanAs[InvalidArgument](a, b, msgAndArgs...)
}

// IsLessThanAs is like [IsLessThan], but panics with E.
func IsLessThanAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	if cmp.Compare(a, b) < 0 {
		return
	}
	fail[E](msgAndArgs, "Expected %v to be less than %v.", a, b)
}

// IsGreaterThan panics with an [InvalidArgument] unless a sorts after b.
func IsGreaterThan[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	IsGreaterThanAs[InvalidArgument](a, b, msgAndArgs...)
}

// IsGreaterThanAs is like [IsGreaterThan], but panics with E.
func IsGreaterThanAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	if cmp.Compare(a, b) > 0 {
		return
	}
	fail[E](msgAndArgs, "Expected %v to be greater than %v.", a, b)
}

// IsAtMost panics with an [InvalidArgument] if a sorts after b.
func IsAtMost[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	IsAtMostAs[InvalidArgument](a, b, msgAndArgs...)
}

// IsAtMostAs is like [IsAtMost], but panics with E.
func IsAtMostAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	if cmp.Compare(a, b) <= 0 {
		return
	}
	fail[E](msgAndArgs, "Expected %v to be at most %v.", a, b)
}

// IsAtLeast panics with an [InvalidArgument] if a sorts before b.
func IsAtLeast[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	IsAtLeastAs[InvalidArgument](a, b, msgAndArgs...)
}

// IsAtLeastAs is like [IsAtLeast], but panics with E.
func IsAtLeastAs[E Kind, T cmp.Ordered](a, b T, msgAndArgs ...any) {
	if cmp.Compare(a, b) >= 0 {
		return
	}
	fail[E](msgAndArgs, "Expected %v to be at least %v.", a, b)
}
