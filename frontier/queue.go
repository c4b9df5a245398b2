// Package frontier provides a generic min-ordered priority queue for
// best-first searches.
//
// Queue keeps pending entries ordered by ascending priority on top of
// container/heap. It supports the "lazy decrease-key" strategy: instead of
// adjusting an entry in place, the caller pushes a duplicate with the better
// priority and discards outdated entries when they are popped.
//
// Complexity:
//
//   - Push, Pop: O(log N).
//   - Peek, Len: O(1).
//
// Ties between equal priorities are broken arbitrarily. A Queue is not safe
// for concurrent use; each search owns its own instance.
package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// item pairs a value with its priority.
type item[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

// items is a min-heap of item, ordered by priority ascending.
type items[T any, P constraints.Ordered] []item[T, P]

// Len returns the number of items in the heap.
func (h items[T, P]) Len() int { return len(h) }

// Less defines the comparison: smaller priority → popped first.
func (h items[T, P]) Less(i, j int) bool { return h[i].priority < h[j].priority }

// Swap swaps two elements in the heap.
func (h items[T, P]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *items[T, P]) Push(x any) { *h = append(*h, x.(item[T, P])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *items[T, P]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of values of type T keyed by P.
// The zero value is ready to use.
type Queue[T any, P constraints.Ordered] struct {
	h items[T, P]
}

// New returns an empty Queue with room for capacity entries before growing.
func New[T any, P constraints.Ordered](capacity int) *Queue[T, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T, P]{h: make(items[T, P], 0, capacity)}
}

// Push inserts v with priority p.
func (q *Queue[T, P]) Push(v T, p P) {
	heap.Push(&q.h, item[T, P]{value: v, priority: p})
}

// Pop removes and returns the entry with the lowest priority.
// ok is false when the queue is empty.
func (q *Queue[T, P]) Pop() (v T, p P, ok bool) {
	if len(q.h) == 0 {
		return v, p, false
	}
	it := heap.Pop(&q.h).(item[T, P])

	return it.value, it.priority, true
}

// Peek returns the lowest-priority entry without removing it.
// ok is false when the queue is empty.
func (q *Queue[T, P]) Peek() (v T, p P, ok bool) {
	if len(q.h) == 0 {
		return v, p, false
	}

	return q.h[0].value, q.h[0].priority, true
}

// Len returns the number of pending entries, stale duplicates included.
func (q *Queue[T, P]) Len() int { return len(q.h) }

// Reset drops every entry but keeps the allocated storage.
func (q *Queue[T, P]) Reset() { q.h = q.h[:0] }
