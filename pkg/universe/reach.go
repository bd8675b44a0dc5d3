package universe

import (
	"github.com/sanonone/evenav/pkg/core/bitset"
)

// Reach is a system found by Within together with its jump distance from the origin.
type Reach struct {
	Index Index
	Jumps int
}

// Within returns every system at most jumps stargate jumps from origin, origin included,
// ordered by jump distance and then by discovery order.
func (m *Map) Within(origin Index, jumps int) []Reach {
	if jumps < 0 {
		return nil
	}
	seen := bitset.New(uint32(m.Len()))
	seen.Add(uint32(origin))
	out := []Reach{{Index: origin}}

	// Level-by-level BFS: queue holds the systems first reached at depth.
	queue := []Index{origin}
	for depth := 1; depth <= jumps && len(queue) > 0; depth++ {
		var next []Index
		for _, curr := range queue {
			for n := range m.All(curr) {
				if seen.Has(uint32(n)) {
					continue
				}
				seen.Add(uint32(n))
				out = append(out, Reach{Index: n, Jumps: depth})
				next = append(next, n)
			}
		}
		queue = next
	}
	return out
}
