package astar

import (
	"errors"
	"iter"
)

var (
	// ErrPathNotFound is returned when the open list runs dry before a goal is popped.
	// It is an ordinary negative answer.
	ErrPathNotFound = errors.New("astar: path not found")

	// ErrOpenItemNotInClosedList means a popped node has no visitation state, which
	// only happens when the lists were seeded inconsistently.
	ErrOpenItemNotInClosedList = errors.New("astar: open item not in closed list")

	// ErrFoundHigherCostPath means a strictly cheaper path was found to a node that was
	// already expanded. The heuristic is not consistent or an edge cost is negative.
	ErrFoundHigherCostPath = errors.New("astar: found cheaper path to an expanded node")

	// ErrUnorderedCost means a cost or heuristic value was NaN.
	ErrUnorderedCost = errors.New("astar: unordered cost value")
)

// Heuristic estimates the remaining cost from a node to the goal. It must never
// overestimate, and must be consistent: h(a) <= cost(a, b) + h(b) for every edge.
type Heuristic[N any, C Cost] func(node N) C

// Neighbours enumerates the edges leaving a node as (neighbour, edge cost) pairs.
type Neighbours[N any, C Cost] func(node N) iter.Seq2[N, C]

// Zero is the heuristic that always answers zero. A* with Zero is Dijkstra.
func Zero[N any, C Cost](N) C {
	var zero C
	return zero
}

// Seed marks start as a StartingPoint with the given baseline cost and pushes it
// with priority cost + h(start).
func Seed[N any, C Cost](open OpenList[N, C], closed ClosedList[N, C], start N, cost C, h Heuristic[N, C]) {
	closed.Set(start, Start[N](cost))
	open.Push(Item[N, C]{Priority: cost + h(start), Node: start})
}

// Search runs A* over pre-seeded lists and returns the first goal node popped.
//
// A PathFrom label is tentative until its node is expanded: a cheaper path found before
// that point relabels the node and pushes a new item, leaving the old one stale. Once a
// node is expanded its label is final, and a cheaper path to it fails the search with
// ErrFoundHigherCostPath. Start nodes are never rerouted.
func Search[N any, C Cost](
	open OpenList[N, C],
	closed ClosedList[N, C],
	isGoal func(N) bool,
	h Heuristic[N, C],
	neighbours Neighbours[N, C],
) (N, error) {
	for {
		item, ok := open.PopMin()
		if !ok {
			var zero N
			return zero, ErrPathNotFound
		}
		current := item.Node

		if isGoal(current) {
			return current, nil
		}

		st := closed.Get(current)
		if st.Kind == Unvisited {
			return current, ErrOpenItemNotInClosedList
		}
		if st.Expanded {
			continue
		}
		st.Expanded = true
		closed.Set(current, st)

		for next, edgeCost := range neighbours(current) {
			candidate := edgeCost + st.Cost
			if isNaN(candidate) {
				return current, ErrUnorderedCost
			}

			existing := closed.Get(next)
			switch existing.Kind {
			case StartingPoint:
				continue
			case PathFrom:
				if existing.Cost <= candidate {
					continue
				}
				if existing.Expanded {
					return next, ErrFoundHigherCostPath
				}
			}

			estimate := h(next)
			if isNaN(estimate) {
				return next, ErrUnorderedCost
			}
			closed.Set(next, Reached(current, candidate))
			open.Push(Item[N, C]{Priority: candidate + estimate, Node: next})
		}
	}
}

// FindPath runs a complete search from start over a dense node space of the given size
// and returns the path and its cost.
func FindPath[N Index, C Cost](
	size int,
	start N,
	isGoal func(N) bool,
	h Heuristic[N, C],
	neighbours Neighbours[N, C],
) ([]N, C, error) {
	open := NewHeapOpenList[N, C](64)
	closed := NewSliceClosedList[N, C](size)
	var zero C
	Seed[N, C](open, closed, start, zero, h)

	goal, err := Search[N, C](open, closed, isGoal, h, neighbours)
	if err != nil {
		return nil, zero, err
	}
	return Unwind[N, C](closed, goal), closed.Get(goal).Cost, nil
}

// Edges adapts a slice of edges to a Neighbours function result.
func Edges[N any, C Cost](edges []Edge[N, C]) iter.Seq2[N, C] {
	return func(yield func(N, C) bool) {
		for _, e := range edges {
			if !yield(e.To, e.Cost) {
				return
			}
		}
	}
}

// Edge is a weighted arc towards To.
type Edge[N any, C Cost] struct {
	To   N
	Cost C
}
