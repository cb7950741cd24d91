// Package list implements a doubly-linked list with stable iterators.
//
// Nodes live in an arena owned by the list and link to each other by slot
// index. Two permanent sentinel nodes bound the chain: Begin is the node after
// the head sentinel, End is the tail sentinel. Misuse (dereferencing End,
// erasing a sentinel, using an iterator after its node was erased) panics with
// an error wrapping one of the Err values in this package.
package list

import (
	"iter"
)

// List implements a doubly linked-list. The zero value is an empty list ready
// to use. Size is tracked internally, so Len is constant time, as are Insert
// and Erase once an iterator is in hand. The list is not thread-safe.
//
// A List must not be copied by value after first use, since the copy would
// share its arena with the original. Use Clone.
type List[T any] struct {
	a    arena[T]
	size int
}

func (l *List[T]) lazyInit() {
	if len(l.a.nodes) == 0 {
		l.a.init()
	}
}

func (l *List[T]) at(i int) Iterator[T] {
	return Iterator[T]{l: l, i: i, gen: l.a.nodes[i].gen}
}

// own checks that it is a live iterator into l and returns its slot index.
func (l *List[T]) own(it Iterator[T], op string) int {
	if it.l != nil && it.l != l {
		violation(ErrOwnershipViolation, "%s: iterator belongs to another list", op)
	}
	it.lookup(op)
	return it.i
}

// distance counts forward hops from slot from to slot to.
func (l *List[T]) distance(from, to int) int {
	n := 0
	for i := from; i != to; n++ {
		i = l.a.nodes[i].next
		if i == nilIndex {
			violation(ErrUnreachableRange, "node %d is not reachable from node %d", to, from)
		}
	}
	return n
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := new(List[T])
	l.lazyInit()
	return l
}

// NewN returns a list holding n zero values.
func NewN[T any](n int) *List[T] {
	l := New[T]()
	var zero T
	for ; n > 0; n-- {
		l.Insert(l.Begin(), zero)
	}
	return l
}

// Of returns a list holding values, in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.InsertValues(l.End(), values...)
	return l
}

// FromRange returns a list holding copies of the values in [first, last),
// which may belong to any list.
func FromRange[T any](first, last Iterator[T]) *List[T] {
	l := New[T]()
	l.InsertRange(l.End(), first, last)
	return l
}

// FromSeq returns a list holding the values yielded by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Clone returns a new list holding the same values. The two lists share no
// nodes, so mutating one never affects the other.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.All())
}

// Len returns the length of the list. This function is constant time.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Begin returns an iterator to the first element, or End if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.at(l.a.nodes[headIndex].next)
}

// End returns an iterator to the tail sentinel, one past the last element.
// It must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.at(tailIndex)
}

// Front returns the first value. It panics with ErrInvalidRemoval if the list
// is empty.
func (l *List[T]) Front() T {
	if l.size == 0 {
		violation(ErrInvalidRemoval, "Front of empty list")
	}
	return l.Begin().Value()
}

// Back returns the last value. It panics with ErrInvalidRemoval if the list is
// empty.
func (l *List[T]) Back() T {
	if l.size == 0 {
		violation(ErrInvalidRemoval, "Back of empty list")
	}
	return l.End().Prev().Value()
}

// Insert links a new node holding v immediately before pos and returns an
// iterator to it. pos may be End but not the head sentinel.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	next := l.own(pos, "Insert")
	if next == headIndex {
		violation(ErrOutOfRange, "Insert before head sentinel")
	}
	prev := l.a.nodes[next].prev
	i := l.a.alloc(v, prev, next)
	l.a.nodes[prev].next = i
	l.a.nodes[next].prev = i
	l.size++
	return l.at(i)
}

// InsertValues inserts values, in order, immediately before pos. It returns an
// iterator to the first inserted node, or pos if values is empty.
func (l *List[T]) InsertValues(pos Iterator[T], values ...T) Iterator[T] {
	l.own(pos, "InsertValues")
	if len(values) == 0 {
		return pos
	}
	first := l.Insert(pos, values[0])
	for _, v := range values[1:] {
		l.Insert(pos, v)
	}
	return first
}

// InsertRange inserts copies of the values in [first, last), in order,
// immediately before pos. The source range may belong to l itself. It returns
// an iterator to the first inserted node, or pos if the range is empty.
func (l *List[T]) InsertRange(pos, first, last Iterator[T]) Iterator[T] {
	l.own(pos, "InsertRange")
	n := first.Distance(last)
	values := make([]T, 0, n)
	for it := first; !it.Equal(last); it = it.Next() {
		values = append(values, it.Value())
	}
	return l.InsertValues(pos, values...)
}

// Erase unlinks and releases the node at pos and returns an iterator to the
// node that followed it. Erasing a sentinel panics with ErrInvalidRemoval.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	i := l.own(pos, "Erase")
	n := &l.a.nodes[i]
	if n.kind == kindSentinel {
		violation(ErrInvalidRemoval, "Erase of %s", pos.where())
	}
	prev, next := n.prev, n.next
	l.a.nodes[prev].next = next
	l.a.nodes[next].prev = prev
	l.a.release(i)
	l.size--
	return l.at(next)
}

// EraseRange erases every node in [first, last) and returns last. The range is
// checked before anything is erased, so an unreachable last leaves the list
// untouched.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	l.own(first, "EraseRange")
	l.own(last, "EraseRange")
	if first.i == headIndex && first.i != last.i {
		violation(ErrInvalidRemoval, "EraseRange starting at head sentinel")
	}
	for n := l.distance(first.i, last.i); n > 0; n-- {
		first = l.Erase(first)
	}
	return last
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.Insert(l.Begin(), v)
}

// PushBack appends v to the list.
func (l *List[T]) PushBack(v T) {
	l.Insert(l.End(), v)
}

// PopFront removes the first item from the list and returns it. It panics with
// ErrInvalidRemoval if the list is empty.
func (l *List[T]) PopFront() T {
	if l.size == 0 {
		violation(ErrInvalidRemoval, "PopFront on empty list")
	}
	it := l.Begin()
	v := it.Value()
	l.Erase(it)
	return v
}

// PopBack removes the last item from the list and returns it. It panics with
// ErrInvalidRemoval if the list is empty.
func (l *List[T]) PopBack() T {
	if l.size == 0 {
		violation(ErrInvalidRemoval, "PopBack on empty list")
	}
	it := l.End().Prev()
	v := it.Value()
	l.Erase(it)
	return v
}

// Clear erases every element. Iterators to erased elements become stale.
func (l *List[T]) Clear() {
	for it := l.Begin(); !it.Equal(l.End()); {
		it = l.Erase(it)
	}
}

// All returns an iterator over the values from front to back. The element
// being visited may be erased during iteration; other mutations are not
// allowed.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for i := l.a.nodes[headIndex].next; i != tailIndex; {
			next := l.a.nodes[i].next
			if !yield(l.a.nodes[i].value) {
				return
			}
			i = next
		}
	}
}

// Backward is like All, from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for i := l.a.nodes[tailIndex].prev; i != headIndex; {
			prev := l.a.nodes[i].prev
			if !yield(l.a.nodes[i].value) {
				return
			}
			i = prev
		}
	}
}

// Values returns a slice holding the values from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Equal reports whether a and b hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare values. Lists of different
// length are never equal.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Begin(), b.Begin()
	for end := a.End(); !ia.Equal(end); ia, ib = ia.Next(), ib.Next() {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
	}
	return true
}
