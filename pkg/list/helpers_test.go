package list

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

// checkRing walks l in both directions and verifies that the links are
// symmetric and that both walks visit exactly Len() data nodes.
func checkRing[T any](t *testing.T, l *List[T]) {
	t.Helper()
	nodes := l.a.nodes
	if len(nodes) == 0 {
		assert.Equal(t, 0, l.size)
		return
	}
	assert.Equal(t, nilIndex, nodes[headIndex].prev)
	assert.Equal(t, nilIndex, nodes[tailIndex].next)

	hops := 0
	for i := nodes[headIndex].next; i != tailIndex; i = nodes[i].next {
		assert.Assert(t, hops < l.size, "forward walk is longer than size %d", l.size)
		assert.Equal(t, kindData, nodes[i].kind)
		assert.Equal(t, i, nodes[nodes[i].next].prev)
		hops++
	}
	assert.Equal(t, l.size, hops)

	hops = 0
	for i := nodes[tailIndex].prev; i != headIndex; i = nodes[i].prev {
		assert.Assert(t, hops < l.size, "backward walk is longer than size %d", l.size)
		hops++
	}
	assert.Equal(t, l.size, hops)
	assert.Equal(t, l.size, len(nodes)-len(l.a.free)-2)
}

// expectViolation runs f and checks that it panics with an error wrapping
// target.
func expectViolation(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		assert.Assert(t, r != nil, "expected a panic wrapping %q", target)
		err, ok := r.(error)
		assert.Assert(t, ok, "panic value %v is not an error", r)
		assert.Assert(t, errors.Is(err, target), "got %q, want %q", err, target)
	}()
	f()
}
