package list

// nilIndex terminates the chain on both ends: head.prev and tail.next.
const nilIndex = -1

const (
	headIndex = 0
	tailIndex = 1
)

type kind uint8

const (
	kindFree kind = iota
	kindSentinel
	kindData
)

// node is a single arena slot. Links are slot indices, never pointers, so a
// growing arena cannot leave a dangling link behind.
type node[T any] struct {
	value      T
	prev, next int
	gen        uint32
	kind       kind
}

// arena owns every node of a list, including the two sentinels. Released slots
// go on a free-list and are handed out again by alloc.
type arena[T any] struct {
	nodes []node[T]
	free  []int
}

func (a *arena[T]) init() {
	a.nodes = append(a.nodes[:0],
		node[T]{prev: nilIndex, next: tailIndex, kind: kindSentinel},
		node[T]{prev: headIndex, next: nilIndex, kind: kindSentinel},
	)
	a.free = a.free[:0]
}

func (a *arena[T]) alloc(v T, prev, next int) int {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		slot := &a.nodes[i]
		slot.value = v
		slot.prev = prev
		slot.next = next
		slot.kind = kindData
		return i
	}
	a.nodes = append(a.nodes, node[T]{value: v, prev: prev, next: next, kind: kindData})
	return len(a.nodes) - 1
}

// release returns slot i to the free-list. The generation bump is what turns
// every outstanding iterator to i into a stale one.
func (a *arena[T]) release(i int) {
	var zero T
	slot := &a.nodes[i]
	slot.value = zero
	slot.prev = nilIndex
	slot.next = nilIndex
	slot.kind = kindFree
	slot.gen++
	a.free = append(a.free, i)
}

// live reports whether i names an allocated slot (data or sentinel) of the
// given generation.
func (a *arena[T]) live(i int, gen uint32) bool {
	if i < 0 || i >= len(a.nodes) {
		return false
	}
	slot := &a.nodes[i]
	return slot.kind != kindFree && slot.gen == gen
}
