package universe

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stargate is one gate of a system and the gate it jumps to.
type Stargate struct {
	ID          uint64
	Destination uint64
}

// SystemRecord is the raw, parsed description of a solar system.
type SystemRecord struct {
	ID              SystemID
	Name            string
	ConstellationID uint64
	RegionID        uint64
	Security        float64
	Position        r3.Vec
	// Stargates in the order their jumps should be listed.
	Stargates []Stargate
}

// Dataset is everything Build needs: the systems plus the names of their parents.
type Dataset struct {
	Systems        []SystemRecord
	Constellations map[uint64]string
	Regions        map[uint64]string
}

// Build turns a complete dataset into a Map in a single pass.
//
// Systems are indexed by ascending SystemID. Every stargate destination must be a gate
// of some system in the dataset; all unresolved gates are reported together.
func Build(ds Dataset) (*Map, error) {
	records := slices.Clone(ds.Systems)
	slices.SortFunc(records, func(a, b SystemRecord) int { return cmp.Compare(a.ID, b.ID) })

	m := &Map{
		systems: make([]system, len(records)),
		info:    make([]SystemInfo, len(records)),
		byID:    make(map[SystemID]Index, len(records)),
		names:   newNameIndex(),
	}

	gateOwner := make(map[uint64]Index)
	for i, rec := range records {
		if i > 0 && records[i-1].ID == rec.ID {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSystem, rec.ID)
		}
		idx := Index(i)
		m.byID[rec.ID] = idx
		m.systems[i].id = rec.ID
		m.info[i] = SystemInfo{
			ID:                rec.ID,
			Name:              rec.Name,
			ConstellationID:   rec.ConstellationID,
			ConstellationName: ds.Constellations[rec.ConstellationID],
			RegionID:          rec.RegionID,
			RegionName:        ds.Regions[rec.RegionID],
			Security:          rec.Security,
			Position:          rec.Position,
		}
		m.names.Set(nameEntry{key: strings.ToLower(rec.Name), index: idx})
		for _, g := range rec.Stargates {
			gateOwner[g.ID] = idx
		}
	}

	var errs *multierror.Error
	targets := make([]Index, 0, 8)
	for i, rec := range records {
		targets = targets[:0]
		for _, g := range rec.Stargates {
			dst, ok := gateOwner[g.Destination]
			if !ok {
				errs = multierror.Append(errs, fmt.Errorf("%w: gate %d of %s (%d) jumps to %d",
					ErrUnresolvedGate, g.ID, rec.Name, rec.ID, g.Destination))
				continue
			}
			targets = append(targets, dst)
		}
		if err := m.setNeighbours(Index(i), targets); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	for i := range m.systems {
		for _, j := range m.Neighbours(Index(i)) {
			m.gates++
			m.maxGateSpan = max(m.maxGateSpan, m.Distance(Index(i), j))
		}
	}
	return m, nil
}

// setNeighbours assigns the jump list of i. It may only happen once per system.
func (m *Map) setNeighbours(i Index, targets []Index) error {
	s := &m.systems[i]
	if s.set {
		return fmt.Errorf("%w: %d", ErrNeighboursAlreadySet, s.id)
	}
	s.neighbours = newNeighbours(targets)
	s.set = true
	return nil
}
