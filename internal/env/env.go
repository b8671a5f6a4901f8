// Package env reads tool configuration and check subjects from environment variables.
package env

import (
	"os"
	"strings"
)

// Lookup returns the raw value of the variable named key, and whether it's set at all.
// An exact match is preferred, otherwise keys are compared case-insensitive.
// The value is not trimmed, since it may be the subject of a blank check.
func Lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		k, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		if strings.EqualFold(k, key) {
			return val, true
		}
	}
	return "", false
}

// Val returns the trimmed value of the variable named key.
// If the variable isn't set, or is blank, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	val, ok := Lookup(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets a variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range DefaultTrue {
		if strings.EqualFold(sval, v) {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if strings.EqualFold(sval, v) {
			return false
		}
	}
	return defaultVal
}

// Set reports whether the variable named key is set, even if it's empty.
// This follows the NO_COLOR convention, where presence alone has meaning.
func Set(key string) bool {
	_, ok := Lookup(key)
	return ok
}
