// Package must contains helpers that panic on error instead of returning it.
package must

import (
	"hop.computer/dlist/pkg"
)

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	n := must.Do(strconv.Atoi("42"))
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}

