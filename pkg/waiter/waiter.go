// Package waiter implements a a wait queue, where waiters can be registered to
// be notified of events. It is loosely based on the implementation in gVisor.
package waiter

import (
	"sync"

	"hop.computer/dlist/pkg/list"
)

type Queue[T any] struct {
	l list.List[*Entry[T]]
	m sync.RWMutex
}

// Entry is a registered waiter. It remembers its position in the queue, so
// unregistering is constant time.
type Entry[T any] struct {
	object   *T
	listener EventListener[T]

	q   *Queue[T]
	pos list.Iterator[*Entry[T]]
}

type EventListener[T any] interface {
	NotifyEvent(*T)
}

// EventRegister appends e to the queue. Registering an entry that is already
// in a queue has no effect.
func (q *Queue[T]) EventRegister(e *Entry[T]) {
	q.m.Lock()
	defer q.m.Unlock()
	if e.q != nil {
		return
	}
	q.l.PushBack(e)
	e.q = q
	e.pos = q.l.End().Prev()
}

// EventUnregister removes e from the queue. It returns false if e was not
// registered with q.
func (q *Queue[T]) EventUnregister(e *Entry[T]) bool {
	q.m.Lock()
	defer q.m.Unlock()
	if e.q != q {
		return false
	}
	q.l.Erase(e.pos)
	e.q = nil
	e.pos = list.Iterator[*Entry[T]]{}
	return true
}

// Len returns the number of registered entries.
func (q *Queue[T]) Len() int {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.l.Len()
}

// Notify calls every registered listener, in registration order.
func (q *Queue[T]) Notify() {
	q.m.RLock()
	defer q.m.RUnlock()
	for entry := range q.l.All() {
		entry.listener.NotifyEvent(entry.object)
	}
}

type functionNotifier[T any] func(*T)

func (f functionNotifier[T]) NotifyEvent(t *T) {
	f(t)
}

func NewFunctionEntry[T any](object *T, f func(*T)) *Entry[T] {
	return &Entry[T]{
		object:   object,
		listener: functionNotifier[T](f),
	}
}

type channelNotifier[T any] chan *T

func (c channelNotifier[T]) NotifyEvent(t *T) {
	c <- t
}

func NewChannelEntry[T any](object *T, c chan *T) *Entry[T] {
	return &Entry[T]{
		object:   object,
		listener: channelNotifier[T](c),
	}
}
