//go:build !noassert

package require_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/saylorsolutions/debug/require"
	"github.com/stretchr/testify/assert"
)

type customError string

func (e customError) Error() string {
	return string(e)
}

type point struct {
	X, Y int
}

func (p point) String() string {
	return "point"
}

func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	fn()
	return nil
}

func strPtr(s string) *string {
	return &s
}

func TestEnabled(t *testing.T) {
	assert.True(t, require.Enabled)
}

func TestChecks_Pass(t *testing.T) {
	var (
		a       = &point{1, 2}
		nilPtr  *point
		nilMap  map[string]int
		nilFunc func()
	)
	tests := map[string]func(){
		"IsNull untyped":      func() { require.IsNull(nil) },
		"IsNull pointer":      func() { require.IsNull(nilPtr) },
		"IsNull map":          func() { require.IsNull(nilMap) },
		"IsNull func":         func() { require.IsNull(nilFunc) },
		"IsNotNull":           func() { require.IsNotNull(a) },
		"IsNotNull value":     func() { require.IsNotNull(0) },
		"IsEmpty":             func() { require.IsEmpty("") },
		"IsEmpty pointer":     func() { require.IsEmpty(strPtr("")) },
		"IsNotEmpty":          func() { require.IsNotEmpty("non empty string") },
		"IsNotEmpty space":    func() { require.IsNotEmpty(" ") },
		"IsBlank empty":       func() { require.IsBlank("") },
		"IsBlank space":       func() { require.IsBlank(" \t\n") },
		"IsBlank pointer":     func() { require.IsBlank(strPtr(" ")) },
		"IsNotBlank":          func() { require.IsNotBlank("non empty string") },
		"IsTrue":              func() { require.IsTrue(true) },
		"IsTrueFunc":          func() { require.IsTrueFunc(func() bool { return true }) },
		"IsFalse":             func() { require.IsFalse(false) },
		"IsFalseFunc":         func() { require.IsFalseFunc(func() bool { return false }) },
		"AreEqual":            func() { require.AreEqual(1, 1) },
		"AreEqual pointers":   func() { require.AreEqual(&point{1, 2}, &point{1, 2}) },
		"AreEqual nil":        func() { require.AreEqual(nilPtr, nil) },
		"AreNotEqual":         func() { require.AreNotEqual(1, 2) },
		"AreSame":             func() { require.AreSame(a, a) },
		"AreSame nil":         func() { require.AreSame[any](nil, nil) },
		"AreNotSame":          func() { require.AreNotSame(a, &point{1, 2}) },
		"AreNotSame values":   func() { require.AreNotSame(1, 1) },
		"IsLessThan":          func() { require.IsLessThan(1, 2) },
		"IsLessThan strings":  func() { require.IsLessThan("a", "b") },
		"IsGreaterThan":       func() { require.IsGreaterThan(2, 1) },
		"IsAtMost equal":      func() { require.IsAtMost(1, 1) },
		"IsAtMost less":       func() { require.IsAtMost(1, 2) },
		"IsAtLeast equal":     func() { require.IsAtLeast(1, 1) },
		"IsAtLeast greater":   func() { require.IsAtLeast(2, 1) },
		"IsLessThan NaN":      func() { require.IsLessThan(math.NaN(), math.Inf(-1)) },
		"IsAtLeast NaN equal": func() { require.IsAtLeast(math.NaN(), math.NaN()) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, fn)
		})
	}
}

func TestChecks_DefaultFailure(t *testing.T) {
	var (
		a      = &point{1, 2}
		b      = &point{1, 2}
		nilStr *string
	)
	tests := map[string]struct {
		check    func()
		expected string
		isNull   bool
	}{
		"IsNull":             {check: func() { require.IsNull(5) }, expected: "Expected null but was 5."},
		"IsNotNull":          {check: func() { require.IsNotNull(nil) }, expected: "Unexpected null.", isNull: true},
		"IsEmpty":            {check: func() { require.IsEmpty("x") }, expected: "Expected empty string but was x."},
		"IsEmpty space":      {check: func() { require.IsEmpty(" ") }, expected: "Expected empty string but was  ."},
		"IsEmpty nil":        {check: func() { require.IsEmpty(nilStr) }, expected: "Unexpected null.", isNull: true},
		"IsNotEmpty":         {check: func() { require.IsNotEmpty("") }, expected: "Expected non-empty string but was ."},
		"IsNotEmpty nil":     {check: func() { require.IsNotEmpty(nilStr) }, expected: "Unexpected null.", isNull: true},
		"IsBlank":            {check: func() { require.IsBlank("non empty string") }, expected: "Expected blank string but was non empty string."},
		"IsBlank nil":        {check: func() { require.IsBlank(nilStr) }, expected: "Unexpected null.", isNull: true},
		"IsNotBlank":         {check: func() { require.IsNotBlank(" ") }, expected: "Expected non-blank string."},
		"IsNotBlank empty":   {check: func() { require.IsNotBlank(strPtr("")) }, expected: "Expected non-blank string."},
		"IsNotBlank nil":     {check: func() { require.IsNotBlank(nilStr) }, expected: "Unexpected null.", isNull: true},
		"IsTrue":             {check: func() { require.IsTrue(false) }, expected: "Expected true but was false."},
		"IsTrueFunc":         {check: func() { require.IsTrueFunc(func() bool { return false }) }, expected: "Expected true but was false."},
		"IsFalse":            {check: func() { require.IsFalse(true) }, expected: "Expected false but was true."},
		"IsFalseFunc":        {check: func() { require.IsFalseFunc(func() bool { return true }) }, expected: "Expected false but was true."},
		"AreEqual":           {check: func() { require.AreEqual(1, 2) }, expected: "Expected 1 to equal 2."},
		"AreNotEqual":        {check: func() { require.AreNotEqual(1, 1) }, expected: "Expected 1 to not equal 1."},
		"AreNotEqual values": {check: func() { require.AreNotEqual(a, b) }, expected: "Expected point to not equal point."},
		"AreSame":            {check: func() { require.AreSame(a, b) }, expected: "Expected point to reference-equal point."},
		"AreSame values":     {check: func() { require.AreSame(1, 1) }, expected: "Expected 1 to reference-equal 1."},
		"AreNotSame":         {check: func() { require.AreNotSame(a, a) }, expected: "Expected point to not reference-equal point."},
		"IsLessThan":         {check: func() { require.IsLessThan(2, 1) }, expected: "Expected 2 to be less than 1."},
		"IsLessThan equal":   {check: func() { require.IsLessThan(1, 1) }, expected: "Expected 1 to be less than 1."},
		"IsGreaterThan":      {check: func() { require.IsGreaterThan(1, 2) }, expected: "Expected 1 to be greater than 2."},
		"IsGreaterThan eq":   {check: func() { require.IsGreaterThan(1, 1) }, expected: "Expected 1 to be greater than 1."},
		"IsAtMost":           {check: func() { require.IsAtMost(2, 1) }, expected: "Expected 2 to be at most 1."},
		"IsAtLeast":          {check: func() { require.IsAtLeast(1, 2) }, expected: "Expected 1 to be at least 2."},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := catch(tc.check)
			if !assert.Error(t, err, "Check should have panicked") {
				return
			}
			assert.EqualError(t, err, tc.expected)
			assert.ErrorIs(t, err, require.ErrInvalidArgument)
			if tc.isNull {
				assert.IsType(t, require.InvalidNullArgument(""), err)
				assert.ErrorIs(t, err, require.ErrInvalidNullArgument)
			} else {
				assert.IsType(t, require.InvalidArgument(""), err)
				assert.NotErrorIs(t, err, require.ErrInvalidNullArgument)
			}
		})
	}
}

func TestChecks_CustomKind(t *testing.T) {
	var (
		a      = &point{1, 2}
		b      = &point{1, 2}
		nilStr *string
	)
	tests := map[string]struct {
		check    func()
		expected string
	}{
		"IsNullAs":         {check: func() { require.IsNullAs[customError](a) }, expected: "Expected null but was point."},
		"IsNotNullAs":      {check: func() { require.IsNotNullAs[customError](nil) }, expected: "Unexpected null."},
		"IsEmptyAs":        {check: func() { require.IsEmptyAs[customError]("non empty string") }, expected: "Expected empty string but was non empty string."},
		"IsEmptyAs nil":    {check: func() { require.IsEmptyAs[customError](nilStr) }, expected: "Unexpected null."},
		"IsNotEmptyAs":     {check: func() { require.IsNotEmptyAs[customError]("") }, expected: "Expected non-empty string but was ."},
		"IsNotEmptyAs nil": {check: func() { require.IsNotEmptyAs[customError](nilStr) }, expected: "Unexpected null."},
		"IsBlankAs":        {check: func() { require.IsBlankAs[customError]("x") }, expected: "Expected blank string but was x."},
		"IsBlankAs nil":    {check: func() { require.IsBlankAs[customError](nilStr) }, expected: "Unexpected null."},
		"IsNotBlankAs":     {check: func() { require.IsNotBlankAs[customError]("") }, expected: "Expected non-blank string."},
		"IsNotBlankAs nil": {check: func() { require.IsNotBlankAs[customError](nilStr) }, expected: "Unexpected null."},
		"IsTrueAs":         {check: func() { require.IsTrueAs[customError](false) }, expected: "Expected true but was false."},
		"IsTrueFuncAs":     {check: func() { require.IsTrueFuncAs[customError](func() bool { return false }) }, expected: "Expected true but was false."},
		"IsFalseAs":        {check: func() { require.IsFalseAs[customError](true) }, expected: "Expected false but was true."},
		"IsFalseFuncAs":    {check: func() { require.IsFalseFuncAs[customError](func() bool { return true }) }, expected: "Expected false but was true."},
		"AreEqualAs":       {check: func() { require.AreEqualAs[customError](1, 2) }, expected: "Expected 1 to equal 2."},
		"AreNotEqualAs":    {check: func() { require.AreNotEqualAs[customError](1, 1) }, expected: "Expected 1 to not equal 1."},
		"AreSameAs":        {check: func() { require.AreSameAs[customError](a, b) }, expected: "Expected point to reference-equal point."},
		"AreNotSameAs":     {check: func() { require.AreNotSameAs[customError](a, a) }, expected: "Expected point to not reference-equal point."},
		"IsLessThanAs":     {check: func() { require.IsLessThanAs[customError](2, 1) }, expected: "Expected 2 to be less than 1."},
		"IsGreaterThanAs":  {check: func() { require.IsGreaterThanAs[customError](1, 2) }, expected: "Expected 1 to be greater than 2."},
		"IsAtMostAs":       {check: func() { require.IsAtMostAs[customError](2, 1) }, expected: "Expected 2 to be at most 1."},
		"IsAtLeastAs":      {check: func() { require.IsAtLeastAs[customError](1, 2) }, expected: "Expected 1 to be at least 2."},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := catch(tc.check)
			if !assert.Error(t, err, "Check should have panicked") {
				return
			}
			assert.Equal(t, customError(tc.expected), err)
			assert.NotErrorIs(t, err, require.ErrInvalidArgument)
		})
	}
}

func TestCustomKind_Pass(t *testing.T) {
	assert.NotPanics(t, func() {
		require.IsNullAs[customError](nil)
		require.IsNotNullAs[customError](t)
		require.IsEmptyAs[customError]("")
		require.IsNotEmptyAs[customError](" ")
		require.IsBlankAs[customError](" ")
		require.IsNotBlankAs[customError]("x")
		require.IsTrueAs[customError](true)
		require.IsFalseAs[customError](false)
		require.AreEqualAs[customError]("a", "a")
		require.AreNotEqualAs[customError]("a", "b")
		require.AreSameAs[customError](t, t)
		require.AreNotSameAs[customError](t, &testing.T{})
		require.IsLessThanAs[customError](1.5, 2.5)
		require.IsGreaterThanAs[customError](uint8(2), 1)
		require.IsAtMostAs[customError]("a", "a")
		require.IsAtLeastAs[customError]("b", "a")
	})
}

func TestMessage(t *testing.T) {
	tests := map[string]struct {
		msgAndArgs []any
		expected   string
	}{
		"Plain string":     {msgAndArgs: []any{"port must be set"}, expected: "port must be set"},
		"Percent literal":  {msgAndArgs: []any{"100% wrong"}, expected: "100% wrong"},
		"Format":           {msgAndArgs: []any{"port %d is out of range", 70000}, expected: "port 70000 is out of range"},
		"Func":             {msgAndArgs: []any{func() string { return "lazy" }}, expected: "lazy"},
		"Non-string value": {msgAndArgs: []any{42}, expected: "42"},
		"Empty message":    {msgAndArgs: []any{""}, expected: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := catch(func() {
				require.IsTrue(false, tc.msgAndArgs...)
			})
			assert.EqualError(t, err, tc.expected)
		})
	}
}

func TestMessage_NotNullGuard(t *testing.T) {
	var nilStr *string
	err := catch(func() {
		require.IsNotBlank(nilStr, "name is required")
	})
	assert.EqualError(t, err, "name is required")
	assert.ErrorIs(t, err, require.ErrInvalidNullArgument)
}

func TestMessage_LazyOnSuccess(t *testing.T) {
	called := false
	require.IsTrue(true, func() string {
		called = true
		return "should not be called"
	})
	assert.False(t, called)
}

type stamp struct {
	at time.Time
}

func TestAreEqual_EqualMethod(t *testing.T) {
	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("UTC+2", 2*60*60))

	assert.NotPanics(t, func() {
		require.AreEqual(utc, local)
	}, "time.Time.Equal should be used")
	assert.Panics(t, func() {
		require.AreEqual(stamp{utc}, stamp{local})
	}, "structs without Equal are compared deeply")
}

func TestAreSame_Slices(t *testing.T) {
	backing := []int{1, 2, 3}
	assert.NotPanics(t, func() {
		require.AreSame(backing, backing)
		require.AreNotSame(backing, backing[:2])
		require.AreNotSame(backing, []int{1, 2, 3})
	})

	m := map[string]int{"a": 1}
	assert.NotPanics(t, func() {
		require.AreSame(m, m)
		require.AreNotSame(m, map[string]int{"a": 1})
	})
}

func TestAreSame_EqualValuesDistinctInstances(t *testing.T) {
	a, b := &point{1, 2}, &point{1, 2}

	assert.NotPanics(t, func() {
		require.AreEqual(a, b)
		require.AreNotSame(a, b)
	})
	err := catch(func() {
		require.AreSame(a, b)
	})
	assert.True(t, errors.Is(err, require.ErrInvalidArgument))
}

func TestPanicsWithError(t *testing.T) {
	// The failure is the panic value, so testify's panic helpers work directly.
	assert.PanicsWithError(t, "Expected 2 to be less than 1.", func() {
		require.IsLessThan(2, 1)
	})
	assert.PanicsWithValue(t, require.InvalidNullArgument("Unexpected null."), func() {
		require.IsNotNull(nil)
	})
}
