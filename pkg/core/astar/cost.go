// Package astar provides a generic A* search over pluggable open and closed lists.
//
// The search driver never allocates its own bookkeeping: callers hand it an OpenList
// (the frontier, ordered by estimated total cost) and a ClosedList (how each node was
// reached), seed both with a starting point, and then call Search. The driver is fully
// synchronous and performs no I/O, so a single search can be run from any goroutine
// as long as its lists are not shared.
//
// Basic usage:
//
//	open := astar.NewHeapOpenList[uint32, int](64)
//	closed := astar.NewSliceClosedList[uint32, int](n)
//	astar.Seed(open, closed, start, 0, h)
//	goal, err := astar.Search(open, closed, isGoal, h, neighbours)
//	if err != nil {
//	    return err
//	}
//	path := astar.Unwind(closed, goal)
package astar

// Cost is the numeric contract for path weights and heuristic estimates.
// The zero value is the additive identity. Floating point costs are accepted, but NaN
// has no place in a total order and is rejected by Search with ErrUnorderedCost.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Index is the constraint for node handles that can address a slice directly.
type Index interface {
	~int | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64
}

// isNaN reports whether c is a floating point NaN. It is always false for integers.
func isNaN[C Cost](c C) bool {
	return c != c
}
