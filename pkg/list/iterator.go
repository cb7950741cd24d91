package list

// Iterator references one node of a List, either a data node or one of the two
// sentinels. It does not own the node: once the node is erased the iterator
// is stale, and any use of it other than Valid or Equal panics with
// ErrOwnershipViolation. Insertions and removals elsewhere in the list, and
// Sort, do not affect it.
//
// Iterators are small values and are meant to be copied. Next, Prev and Offset
// return a new iterator rather than moving the receiver.
type Iterator[T any] struct {
	l   *List[T]
	i   int
	gen uint32
}

// lookup resolves it to its node, panicking if it is unbound or stale.
func (it Iterator[T]) lookup(op string) *node[T] {
	if it.l == nil {
		violation(ErrOwnershipViolation, "%s: iterator is not bound to a list", op)
	}
	if !it.l.a.live(it.i, it.gen) {
		violation(ErrOwnershipViolation, "%s: node %d was erased", op, it.i)
	}
	return &it.l.a.nodes[it.i]
}

func (it Iterator[T]) where() string {
	switch it.i {
	case headIndex:
		return "head sentinel"
	case tailIndex:
		return "end"
	}
	return "data node"
}

// Valid reports whether the iterator still references a live node of its list.
func (it Iterator[T]) Valid() bool {
	return it.l != nil && it.l.a.live(it.i, it.gen)
}

// Value returns the value at the iterator. It panics with
// ErrInvalidDereference if the iterator is at a sentinel, including End.
func (it Iterator[T]) Value() T {
	n := it.lookup("Value")
	if n.kind == kindSentinel {
		violation(ErrInvalidDereference, "Value at %s", it.where())
	}
	return n.value
}

// Set replaces the value at the iterator. The same restrictions as Value
// apply.
func (it Iterator[T]) Set(v T) {
	n := it.lookup("Set")
	if n.kind == kindSentinel {
		violation(ErrInvalidDereference, "Set at %s", it.where())
	}
	n.value = v
}

// Next returns an iterator to the following node. Calling Next on End panics
// with ErrOutOfRange.
func (it Iterator[T]) Next() Iterator[T] {
	n := it.lookup("Next")
	if n.next == nilIndex {
		violation(ErrOutOfRange, "Next past %s", it.where())
	}
	return it.l.at(n.next)
}

// Prev returns an iterator to the preceding node. Prev of the first element
// yields the head sentinel, which may be stepped forward again but not
// dereferenced; Prev of the head sentinel panics with ErrOutOfRange.
func (it Iterator[T]) Prev() Iterator[T] {
	n := it.lookup("Prev")
	if n.prev == nilIndex {
		violation(ErrOutOfRange, "Prev before %s", it.where())
	}
	return it.l.at(n.prev)
}

// Equal reports whether both iterators reference the same node of the same
// list.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.l == other.l && it.i == other.i && it.gen == other.gen
}

// Offset steps |n| times forward (n > 0) or backward (n < 0). This function is
// O(|n|).
func (it Iterator[T]) Offset(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance returns the number of Next steps needed to reach to from it. No
// backward search is performed: if to is not reachable going forward, Distance
// panics with ErrUnreachableRange. This function is O(n).
func (it Iterator[T]) Distance(to Iterator[T]) int {
	it.lookup("Distance")
	to.lookup("Distance")
	if it.l != to.l {
		violation(ErrUnreachableRange, "Distance: iterators belong to different lists")
	}
	return it.l.distance(it.i, to.i)
}
