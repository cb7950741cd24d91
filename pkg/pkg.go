// Package pkg contains standalone utility functions that do not depend on
// anything except themselves.
package pkg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Panicf functions like printf, but for constructing a string sent to panic. Do
// not use if you think that fmt.Sprintf would also panic, e.g. if you are
// already inside a panic handler.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}

// PanicWrapf panics with err annotated by the formatted message. Unlike
// Panicf, the panic value is an error, so a recover() site can still match the
// cause with errors.Is.
func PanicWrapf(err error, msg string, args ...interface{}) {
	panic(errors.Wrapf(err, msg, args...))
}
