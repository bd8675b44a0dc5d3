// Package universe holds the compact, immutable stargate map of New Eden.
//
// Systems are addressed internally by a dense Index assigned at build time in ascending
// SystemID order. The SystemID is the identifier used by the game and by users; it is
// only ever translated to an Index at the boundary (Index, Lookup) and never used as an
// offset.
//
// A Map is built once with Build and is safe for concurrent reads by any number of
// goroutines.
package universe

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrUnknownSystem is returned when a SystemID or name is not part of the map.
	ErrUnknownSystem = errors.New("unknown solar system")
	// ErrDuplicateSystem is returned by Build when two records share a SystemID.
	ErrDuplicateSystem = errors.New("duplicate solar system")
	// ErrNeighboursAlreadySet is returned by Build when a system's jump list would be
	// assigned twice.
	ErrNeighboursAlreadySet = errors.New("neighbours already set")
	// ErrUnresolvedGate is returned by Build when a stargate's destination does not
	// belong to any system.
	ErrUnresolvedGate = errors.New("unresolved stargate destination")
)

// Index is the dense offset of a system in a Map. It is only meaningful for the Map
// that produced it.
type Index uint32

// SystemID is the game's solar system identifier, e.g. 30000142 for Jita.
type SystemID uint64

func (id SystemID) String() string { return strconv.FormatUint(uint64(id), 10) }

// HighSec is the lowest rounded security status of a high security system.
const HighSec = 0.45

// SystemInfo is the cold, display oriented data of a system. It lives in a slice
// parallel to the jump data so that searches only touch what they need.
type SystemInfo struct {
	ID                SystemID
	Name              string
	ConstellationID   uint64
	ConstellationName string
	RegionID          uint64
	RegionName        string
	Security          float64
	Position          r3.Vec
}

// HighSec reports whether the system counts as high security.
func (s *SystemInfo) HighSec() bool { return s.Security >= HighSec }

// system is the hot record touched during searches.
type system struct {
	id         SystemID
	neighbours Neighbours
	set        bool
}

// Map is the compact stargate graph.
type Map struct {
	systems []system
	info    []SystemInfo
	byID    map[SystemID]Index
	// names maps lower-cased names to indices, ordered for prefix completion.
	names *btree.BTreeG[nameEntry]

	maxGateSpan float64
	gates       int
}

// Len returns the number of systems.
func (m *Map) Len() int { return len(m.systems) }

// Gates returns the number of directed jumps in the map.
func (m *Map) Gates() int { return m.gates }

// Index translates a SystemID into an Index.
func (m *Map) Index(id SystemID) (Index, error) {
	i, ok := m.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSystem, id)
	}
	return i, nil
}

// ID returns the SystemID of i.
func (m *Map) ID(i Index) SystemID { return m.systems[i].id }

// Info returns the extended record of i. The record must not be modified.
func (m *Map) Info(i Index) *SystemInfo { return &m.info[i] }

// Neighbours returns the systems one jump away from i, in gate order. The slice
// aliases the map and must not be modified. It does not allocate.
func (m *Map) Neighbours(i Index) []Index { return m.systems[i].neighbours.Slice() }

// All returns a lazy, restartable sequence over the neighbours of i.
func (m *Map) All(i Index) iter.Seq[Index] { return m.systems[i].neighbours.All() }

// Degree returns the number of gates of i.
func (m *Map) Degree(i Index) int { return m.systems[i].neighbours.Len() }

// Systems returns every index in ascending SystemID order.
func (m *Map) Systems() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i := range m.systems {
			if !yield(Index(i)) {
				return
			}
		}
	}
}

// Distance returns the distance in metres between the centres of two systems.
func (m *Map) Distance(a, b Index) float64 {
	return r3.Norm(r3.Sub(m.info[a].Position, m.info[b].Position))
}

// MaxGateSpan is the longest distance between two systems directly connected by a
// gate. It is zero for a map without gates.
func (m *Map) MaxGateSpan() float64 { return m.maxGateSpan }
