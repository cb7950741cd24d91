package list

import (
	"golang.org/x/exp/constraints"
)

// Sort orders the list by less using a stable merge sort. Nodes are relinked,
// never copied or reallocated, so every iterator keeps referencing the same
// value after the sort. Equal elements keep their relative order.
//
// Sort performs O(n log n) comparisons and allocates a single scratch slice of
// n indices.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	s := sorter[T]{
		nodes:   l.a.nodes,
		less:    less,
		scratch: make([]int, 0, l.size),
	}
	s.sort(l.a.nodes[headIndex].next, tailIndex, l.size)
}

// SortOrdered sorts l in ascending order.
func SortOrdered[T constraints.Ordered](l *List[T]) {
	l.Sort(func(a, b T) bool { return a < b })
}

// IsSorted reports whether no element is less than its predecessor.
func (l *List[T]) IsSorted(less func(a, b T) bool) bool {
	if l.size < 2 {
		return true
	}
	nodes := l.a.nodes
	for i := nodes[headIndex].next; nodes[i].next != tailIndex; i = nodes[i].next {
		if less(nodes[nodes[i].next].value, nodes[i].value) {
			return false
		}
	}
	return true
}

// sorter holds the state shared by every level of one Sort call. nodes aliases
// the arena; nothing is allocated while sorting, so the alias stays valid.
type sorter[T any] struct {
	nodes   []node[T]
	less    func(a, b T) bool
	scratch []int
}

// sort orders the n nodes of [first, last) and returns the slot now at the
// front of the range. last itself is never moved.
func (s *sorter[T]) sort(first, last, n int) int {
	if n < 2 {
		return first
	}
	half := n / 2
	mid := first
	for k := 0; k < half; k++ {
		mid = s.nodes[mid].next
	}
	first = s.sort(first, mid, half)
	mid = s.sort(mid, last, n-half)
	return s.merge(first, mid, last)
}

// merge combines the sorted runs [first, mid) and [mid, last). The merged order
// is collected as slot indices first, then the links of the whole range are
// rewritten in one pass.
func (s *sorter[T]) merge(first, mid, last int) int {
	nodes := s.nodes
	order := s.scratch[:0]
	i, j := first, mid
	for i != mid && j != last {
		// Take from the right only when strictly less; ties go left.
		if s.less(nodes[j].value, nodes[i].value) {
			order = append(order, j)
			j = nodes[j].next
		} else {
			order = append(order, i)
			i = nodes[i].next
		}
	}
	for ; i != mid; i = nodes[i].next {
		order = append(order, i)
	}
	for ; j != last; j = nodes[j].next {
		order = append(order, j)
	}

	prev := nodes[first].prev
	for _, k := range order {
		nodes[prev].next = k
		nodes[k].prev = prev
		prev = k
	}
	nodes[prev].next = last
	nodes[last].prev = prev
	s.scratch = order
	return order[0]
}
