// Package frontier provides a min-priority container for search frontiers.
//
// A Frontier orders its items by a key function supplied at construction.
// It is backed by container/heap, so Insert and ExtractMin cost O(log n).
//
// Duplicates are not suppressed: the same logical node may be inserted many
// times with different keys. Callers that need "first extraction wins"
// semantics keep their own visited set and skip stale items when they are
// extracted (lazy deletion), as package search does.
//
// Ties are broken arbitrarily. A Frontier is not safe for concurrent use.
package frontier

import "container/heap"

// Frontier is a min-priority queue of T ordered by key.
type Frontier[T any] struct {
	key   func(T) float64
	items itemHeap[T]
}

// New returns an empty Frontier ordered by key. The key is evaluated once per
// item, at insertion.
func New[T any](key func(T) float64) *Frontier[T] {
	return &Frontier[T]{key: key}
}

// Insert adds item. Complexity: O(log n).
func (f *Frontier[T]) Insert(item T) {
	heap.Push(&f.items, entry[T]{value: item, priority: f.key(item)})
}

// ExtractMin removes and returns the item with the smallest key.
// ok is false when the frontier is empty. Complexity: O(log n).
func (f *Frontier[T]) ExtractMin() (item T, ok bool) {
	if f.items.Len() == 0 {
		return item, false
	}
	e := heap.Pop(&f.items).(entry[T])
	return e.value, true
}

// PeekKey returns the smallest key without removing its item.
func (f *Frontier[T]) PeekKey() (float64, bool) {
	if f.items.Len() == 0 {
		return 0, false
	}
	return f.items[0].priority, true
}

// IsEmpty reports whether no items remain.
func (f *Frontier[T]) IsEmpty() bool { return f.items.Len() == 0 }

// Len returns the number of queued items, stale ones included.
func (f *Frontier[T]) Len() int { return f.items.Len() }

// entry pairs a value with its cached key.
type entry[T any] struct {
	value    T
	priority float64
}

// itemHeap implements heap.Interface ordered by ascending priority.
type itemHeap[T any] []entry[T]

func (h itemHeap[T]) Len() int           { return len(h) }
func (h itemHeap[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h itemHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *itemHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*h = old[:n-1]

	return e
}
