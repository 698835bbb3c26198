package search

import "container/heap"

// candidate is a frontier entry: a state reached at an accumulated cost.
// parent is the visited key of the state it was expanded from, or -1.
type candidate struct {
	cost   int64
	state  State
	parent int
}

// frontier is a min-heap of candidates ordered by cost ascending.
// We use the “lazy-decrease-key” approach: a cheaper route to a state pushes
// a new candidate; the outdated one is dropped when popped (visited check).
type frontier []candidate

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type candidate.
func (f *frontier) Push(x any) { *f = append(*f, x.(candidate)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum there.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// push inserts c in O(log n).
func (f *frontier) push(c candidate) { heap.Push(f, c) }

// popMin extracts a cheapest candidate in O(log n).
// ok is false when the frontier is empty.
func (f *frontier) popMin() (c candidate, ok bool) {
	if f.Len() == 0 {
		return candidate{}, false
	}

	return heap.Pop(f).(candidate), true
}
