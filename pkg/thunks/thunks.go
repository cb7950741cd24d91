// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"os"
)

// UserHomeDir is an alias for os.UserHomeDir
var UserHomeDir func() (string, error) = os.UserHomeDir

// SetUpTest replaces thunks with stable test versions.
func SetUpTest() {
	UserHomeDir = func() (string, error) {
		return "/home/user", nil
	}
}

// TearDownTest restores the real implementations.
func TearDownTest() {
	UserHomeDir = os.UserHomeDir
}
