package sde

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/sanonone/evenav/pkg/universe"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

const (
	regionFile        = "region.staticdata"
	constellationFile = "constellation.staticdata"
	systemFile        = "solarsystem.staticdata"
)

type itemKind uint8

const (
	kindRegion itemKind = iota + 1
	kindConstellation
	kindSystem
)

// entry is a universe file found in the archive. rel is relative to the universe
// root, e.g. "The Forge/Kimotoro/Jita/solarsystem.staticdata".
type entry struct {
	path string
	rel  string
	kind itemKind
}

// parsed is the result of reading one entry. For constellations and systems, parent is
// the directory key of the enclosing region or constellation.
type parsed struct {
	kind   itemKind
	key    string
	parent string
	id     uint64
	name   string
	system universe.SystemRecord
}

// staticData is the union of the fields used from region, constellation and solar
// system files.
type staticData struct {
	RegionID        *uint64              `yaml:"regionID"`
	ConstellationID *uint64              `yaml:"constellationID"`
	SolarSystemID   *uint64              `yaml:"solarSystemID"`
	Security        float64              `yaml:"security"`
	Center          []float64            `yaml:"center"`
	Stargates       map[uint64]gateEntry `yaml:"stargates"`
}

type gateEntry struct {
	Destination uint64 `yaml:"destination"`
}

// classify returns the entry for a universe file, or false for anything else.
func classify(p string) (entry, bool) {
	const marker = "universe/eve/"
	i := strings.Index(p, marker)
	if i < 0 || (i > 0 && p[i-1] != '/') {
		return entry{}, false
	}
	rel := p[i+len(marker):]
	parts := strings.Split(rel, "/")
	e := entry{path: p, rel: rel}
	switch {
	case len(parts) == 2 && parts[1] == regionFile:
		e.kind = kindRegion
	case len(parts) == 3 && parts[2] == constellationFile:
		e.kind = kindConstellation
	case len(parts) == 4 && parts[3] == systemFile:
		e.kind = kindSystem
	default:
		return entry{}, false
	}
	return e, true
}

// parse decodes one universe file. The directory hierarchy supplies names and parents:
// the file's own directory is its name, the directory above is its parent.
func parse(e entry, data []byte) (parsed, error) {
	if len(data) == 0 {
		return parsed{}, fmt.Errorf("%s: empty file", e.path)
	}
	var sd staticData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return parsed{}, fmt.Errorf("failed to parse %s: %w", e.path, err)
	}

	dir := path.Dir(e.rel)
	out := parsed{
		kind:   e.kind,
		key:    dir,
		parent: path.Dir(dir),
		name:   path.Base(dir),
	}

	var id *uint64
	var field string
	switch e.kind {
	case kindRegion:
		id, field = sd.RegionID, "regionID"
		out.parent = ""
	case kindConstellation:
		id, field = sd.ConstellationID, "constellationID"
	case kindSystem:
		id, field = sd.SolarSystemID, "solarSystemID"
	}
	if id == nil {
		return parsed{}, fmt.Errorf("%s: missing %q field", e.path, field)
	}
	out.id = *id

	if e.kind != kindSystem {
		return out, nil
	}

	rec := universe.SystemRecord{
		ID:       universe.SystemID(out.id),
		Name:     out.name,
		Security: sd.Security,
	}
	if len(sd.Center) == 3 {
		rec.Position = r3.Vec{X: sd.Center[0], Y: sd.Center[1], Z: sd.Center[2]}
	}
	for gateID, g := range sd.Stargates {
		rec.Stargates = append(rec.Stargates, universe.Stargate{ID: gateID, Destination: g.Destination})
	}
	// Map iteration order is random; gate ids give a stable jump order.
	slices.SortFunc(rec.Stargates, func(a, b universe.Stargate) int { return cmp.Compare(a.ID, b.ID) })
	out.system = rec
	return out, nil
}
