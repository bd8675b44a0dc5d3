package astar

import "slices"

// StateKind tells how a node has been reached.
type StateKind uint8

const (
	// Unvisited is the default for every node.
	Unvisited StateKind = iota
	// StartingPoint marks a search origin with a baseline cost.
	StartingPoint
	// PathFrom marks a node reached from a predecessor at an accumulated cost.
	PathFrom
)

func (k StateKind) String() string {
	switch k {
	case Unvisited:
		return "unvisited"
	case StartingPoint:
		return "starting-point"
	case PathFrom:
		return "path-from"
	default:
		return "unknown"
	}
}

// State is the visitation record of a single node in a ClosedList.
// From is only meaningful when Kind is PathFrom.
type State[N any, C Cost] struct {
	Kind StateKind
	From N
	Cost C
	// Expanded is set once the node has been popped from the open list and its
	// neighbours enumerated. The label of an expanded node never changes again.
	Expanded bool
}

// Start returns a StartingPoint state with the given baseline cost.
func Start[N any, C Cost](cost C) State[N, C] {
	return State[N, C]{Kind: StartingPoint, Cost: cost}
}

// Reached returns a PathFrom state.
func Reached[N any, C Cost](from N, cost C) State[N, C] {
	return State[N, C]{Kind: PathFrom, From: from, Cost: cost}
}

// ClosedList stores the visitation state of every node for one search.
//
// Implementations must give constant-time random access. Callers only ever pass nodes
// that belong to the graph being searched; what happens otherwise is up to the
// implementation (SliceClosedList panics).
type ClosedList[N any, C Cost] interface {
	Get(node N) State[N, C]
	Set(node N, state State[N, C])
}

// Unwind follows PathFrom links back from node to the nearest StartingPoint and
// returns the nodes in traversal order, start first and node last.
// Unwind(closed, start) is [start].
func Unwind[N any, C Cost](closed ClosedList[N, C], node N) []N {
	path := []N{node}
	for {
		st := closed.Get(node)
		if st.Kind != PathFrom {
			break
		}
		node = st.From
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}

// SliceClosedList is a ClosedList over dense integer node handles.
// Its capacity is fixed at construction and indexing past it panics.
type SliceClosedList[N Index, C Cost] struct {
	states []State[N, C]
}

// NewSliceClosedList creates a closed list for nodes in [0, capacity).
func NewSliceClosedList[N Index, C Cost](capacity int) *SliceClosedList[N, C] {
	return &SliceClosedList[N, C]{states: make([]State[N, C], capacity)}
}

// Get returns the state of node.
func (c *SliceClosedList[N, C]) Get(node N) State[N, C] { return c.states[node] }

// Set replaces the state of node.
func (c *SliceClosedList[N, C]) Set(node N, state State[N, C]) { c.states[node] = state }

// Len returns the capacity the list was created with.
func (c *SliceClosedList[N, C]) Len() int { return len(c.states) }

// Reset marks every node Unvisited so the list can serve another search.
func (c *SliceClosedList[N, C]) Reset() { clear(c.states) }

// MapClosedList is a ClosedList for sparse or non-integer node types.
// Nodes that were never set read as Unvisited.
type MapClosedList[N comparable, C Cost] struct {
	states map[N]State[N, C]
}

func NewMapClosedList[N comparable, C Cost]() *MapClosedList[N, C] {
	return &MapClosedList[N, C]{states: make(map[N]State[N, C])}
}

func (c *MapClosedList[N, C]) Get(node N) State[N, C] { return c.states[node] }

func (c *MapClosedList[N, C]) Set(node N, state State[N, C]) { c.states[node] = state }

// Len returns the number of nodes that have a recorded state.
func (c *MapClosedList[N, C]) Len() int { return len(c.states) }
