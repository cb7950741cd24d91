package list

import (
	"github.com/pkg/errors"

	"hop.computer/dlist/pkg"
)

// Contract violations. The list never returns these; it panics with a value
// wrapping one of them, so a caller that recovers can match with errors.Is.
var (
	// ErrInvalidDereference is raised when reading or writing through an
	// iterator positioned at a sentinel.
	ErrInvalidDereference = errors.New("dereference of sentinel")

	// ErrInvalidRemoval is raised when erasing a sentinel, or when popping or
	// peeking at an empty list.
	ErrInvalidRemoval = errors.New("invalid removal")

	// ErrUnreachableRange is raised when the end of a range cannot be reached
	// from its start by forward traversal.
	ErrUnreachableRange = errors.New("unreachable range")

	// ErrOwnershipViolation is raised when an iterator refers to a node that
	// was erased, or to a different list than the one being mutated.
	ErrOwnershipViolation = errors.New("ownership violation")

	// ErrOutOfRange is raised when stepping past the head or tail sentinel.
	ErrOutOfRange = errors.New("iterator out of range")
)

func violation(err error, format string, args ...interface{}) {
	pkg.PanicWrapf(err, format, args...)
}
