package astar

import "container/heap"

// Item is an entry of the open list: a node and its estimated total cost
// (accumulated cost plus heuristic). It carries no authoritative state; the closed list
// does.
type Item[N any, C Cost] struct {
	Priority C
	Node     N
}

// OpenList is the frontier of a search, popped in ascending priority.
//
// Implementations are not required to deduplicate nodes or support decrease-key: the
// same node may be present several times with different priorities.
type OpenList[N any, C Cost] interface {
	IsEmpty() bool
	Push(item Item[N, C])
	// PopMin removes and returns the item with the lowest priority. The boolean is
	// false when the list is empty.
	PopMin() (Item[N, C], bool)
}

// itemHeap is a min-heap of items ordered by priority only. Node identity plays no
// part in the ordering, so ties come out in whatever order the heap yields them.
type itemHeap[N any, C Cost] []Item[N, C]

func (h itemHeap[N, C]) Len() int           { return len(h) }
func (h itemHeap[N, C]) Less(i, j int) bool { return h[i].Priority < h[j].Priority }
func (h itemHeap[N, C]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[N, C]) Push(x any) { *h = append(*h, x.(Item[N, C])) }

func (h *itemHeap[N, C]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// HeapOpenList is an OpenList backed by container/heap.
type HeapOpenList[N any, C Cost] struct {
	items itemHeap[N, C]
}

// NewHeapOpenList creates an empty open list with room for capacity items.
func NewHeapOpenList[N any, C Cost](capacity int) *HeapOpenList[N, C] {
	h := make(itemHeap[N, C], 0, capacity)
	heap.Init(&h)
	return &HeapOpenList[N, C]{items: h}
}

func (o *HeapOpenList[N, C]) IsEmpty() bool { return len(o.items) == 0 }

// Len returns the number of pending items, stale duplicates included.
func (o *HeapOpenList[N, C]) Len() int { return len(o.items) }

func (o *HeapOpenList[N, C]) Push(item Item[N, C]) { heap.Push(&o.items, item) }

func (o *HeapOpenList[N, C]) PopMin() (Item[N, C], bool) {
	if len(o.items) == 0 {
		var zero Item[N, C]
		return zero, false
	}
	return heap.Pop(&o.items).(Item[N, C]), true
}

// Reset drops every pending item but keeps the allocated storage.
func (o *HeapOpenList[N, C]) Reset() { o.items = o.items[:0] }
