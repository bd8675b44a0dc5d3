package universe

import (
	"iter"
	"slices"
)

// InlineNeighbours is how many neighbours a system can hold without a separate
// allocation. Most systems in New Eden have three gates or fewer.
const InlineNeighbours = 3

// Neighbours is the jump list of one system. It is either an inline array (degree up
// to InlineNeighbours) or a heap slice, chosen once when the map is built.
type Neighbours struct {
	inline [InlineNeighbours]Index
	count  uint8
	heap   []Index
}

func newNeighbours(targets []Index) Neighbours {
	var n Neighbours
	if len(targets) > InlineNeighbours {
		n.heap = slices.Clone(targets)
		return n
	}
	n.count = uint8(copy(n.inline[:], targets))
	return n
}

// Len returns the number of neighbours.
func (n *Neighbours) Len() int {
	if n.heap != nil {
		return len(n.heap)
	}
	return int(n.count)
}

// Inline reports whether the neighbours are stored in place.
func (n *Neighbours) Inline() bool { return n.heap == nil }

// Slice returns the neighbours in gate order. The result aliases the map's storage and
// must not be modified.
func (n *Neighbours) Slice() []Index {
	if n.heap != nil {
		return n.heap
	}
	return n.inline[:n.count]
}

// All returns a restartable sequence over the neighbours.
func (n *Neighbours) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for _, i := range n.Slice() {
			if !yield(i) {
				return
			}
		}
	}
}
