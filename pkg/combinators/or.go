// Package combinators defines small generic combinator functions.
package combinators

// Or returns v if it is not the zero value of its type. Otherwise, it returns
// the provided default.
func Or[T comparable](v, orDefault T) T {
	var zero T
	if v == zero {
		return orDefault
	}
	return v
}

