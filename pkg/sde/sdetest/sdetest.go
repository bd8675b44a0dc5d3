// Package sdetest provides a small in-memory SDE for tests.
//
// The sample universe has two routes from Jita to Urlen:
//
//	Jita - Maurasi - Tama - Urlen                    3 jumps, Tama is low-sec
//	Jita - Niyabainen - Perimeter - Sobaseki - Urlen 4 jumps, all high-sec
//
// Jita also has two dead-end neighbours (Kisogo, Ikuchi) so that it has more gates than
// fit inline. Polaris has no gates at all.
package sdetest

import (
	"context"
	"fmt"
	"path"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sanonone/evenav/pkg/sde"
	"github.com/sanonone/evenav/pkg/universe"
)

// Root is where the sample universe lives inside the file system.
const Root = "sde/fsd/universe/eve"

type Region struct {
	Name string
	ID   uint64
}

type Constellation struct {
	Region Region
	Name   string
	ID     uint64
}

type System struct {
	Constellation Constellation
	Name          string
	ID            uint64
	Security      float64
	Center        [3]float64
}

var (
	TheForge  = Region{Name: "The Forge", ID: 10000002}
	BlackRise = Region{Name: "Black Rise", ID: 10000069}
	PureBlind = Region{Name: "Pure Blind", ID: 10000023}

	Kimotoro = Constellation{Region: TheForge, Name: "Kimotoro", ID: 20000020}
	Kurala   = Constellation{Region: BlackRise, Name: "Kurala", ID: 20000806}
	Hyperion = Constellation{Region: PureBlind, Name: "Hyperion", ID: 20000280}
)

const ly = 9.4607e15

// Systems of the sample universe.
var Systems = []System{
	{Kimotoro, "Jita", 30000142, 0.95, [3]float64{0, 0, 0}},
	{Kimotoro, "Maurasi", 30000140, 0.9, [3]float64{3 * ly, 0, 0}},
	{Kurala, "Tama", 30002813, 0.3, [3]float64{6 * ly, 0, 0}},
	{Kimotoro, "Urlen", 30000139, 0.95, [3]float64{9 * ly, 0, 0}},
	{Kimotoro, "Niyabainen", 30000143, 0.95, [3]float64{2 * ly, 3 * ly, 0}},
	{Kimotoro, "Perimeter", 30000144, 0.95, [3]float64{4 * ly, 4 * ly, 0}},
	{Kimotoro, "Sobaseki", 30000141, 0.8, [3]float64{7 * ly, 3 * ly, 0}},
	{Kimotoro, "Kisogo", 30001379, 0.6, [3]float64{-2 * ly, 1 * ly, 0}},
	{Kimotoro, "Ikuchi", 30000132, 0.85, [3]float64{-1 * ly, -2 * ly, 0}},
	{Hyperion, "Polaris", 30000380, -1.0, [3]float64{50 * ly, 50 * ly, 50 * ly}},
}

// Gates of the sample universe, as undirected pairs of system names.
var Gates = [][2]string{
	{"Jita", "Maurasi"},
	{"Jita", "Niyabainen"},
	{"Jita", "Kisogo"},
	{"Jita", "Ikuchi"},
	{"Maurasi", "Tama"},
	{"Tama", "Urlen"},
	{"Niyabainen", "Perimeter"},
	{"Perimeter", "Sobaseki"},
	{"Sobaseki", "Urlen"},
}

// FS returns the sample universe as an SDE file tree, plus a few files the loader must
// ignore.
func FS() fstest.MapFS {
	fsys := fstest.MapFS{
		"sde/fsd/typeIDs.yaml":                                       {Data: []byte("34:\n  name: Tritanium\n")},
		"sde/fsd/universe/wormhole/A-R00001/region.staticdata":       {Data: []byte("regionID: 11000001\n")},
		"sde/fsd/universe/eve/The Forge/landmarks.staticdata":        {Data: []byte("nothing: here\n")},
		"sde/bsd/invNames.yaml":                                      {Data: []byte("- itemID: 1\n  itemName: EVE System\n")},
		"sde/fsd/universe/eve/The Forge/Kimotoro/Jita/notes.txt":     {Data: []byte("trade hub\n")},
		"sde/fsd/universe/eve/Black Rise/Kurala/Tama/planet.yaml":    {Data: []byte("x: 1\n")},
		"sde/fsd/universe/eve/Pure Blind/Hyperion/Polaris/README.md": {Data: []byte("GM system\n")},
	}

	gates := make(map[string][][2]uint64)
	next := uint64(50000001)
	for _, g := range Gates {
		a, b := next, next+1
		next += 2
		gates[g[0]] = append(gates[g[0]], [2]uint64{a, b})
		gates[g[1]] = append(gates[g[1]], [2]uint64{b, a})
	}

	seen := map[string]bool{}
	for _, s := range Systems {
		c := s.Constellation
		r := c.Region
		if !seen[r.Name] {
			seen[r.Name] = true
			fsys[path.Join(Root, r.Name, "region.staticdata")] = &fstest.MapFile{
				Data: []byte(fmt.Sprintf("regionID: %d\ncenter: [0.0, 0.0, 0.0]\n", r.ID)),
			}
		}
		if !seen[r.Name+"/"+c.Name] {
			seen[r.Name+"/"+c.Name] = true
			fsys[path.Join(Root, r.Name, c.Name, "constellation.staticdata")] = &fstest.MapFile{
				Data: []byte(fmt.Sprintf("constellationID: %d\nradius: 1.0e+16\n", c.ID)),
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "solarSystemID: %d\n", s.ID)
		fmt.Fprintf(&b, "security: %g\n", s.Security)
		fmt.Fprintf(&b, "center:\n- %g\n- %g\n- %g\n", s.Center[0], s.Center[1], s.Center[2])
		fmt.Fprintf(&b, "border: false\n")
		if len(gates[s.Name]) > 0 {
			b.WriteString("stargates:\n")
			for _, g := range gates[s.Name] {
				fmt.Fprintf(&b, "  %d:\n    destination: %d\n    typeID: 16\n", g[0], g[1])
			}
		}
		fsys[path.Join(Root, r.Name, c.Name, s.Name, "solarsystem.staticdata")] = &fstest.MapFile{
			Data: []byte(b.String()),
		}
	}
	return fsys
}

// Map builds the sample universe through the regular loader.
func Map(tb testing.TB) *universe.Map {
	tb.Helper()
	m, err := sde.Load(context.Background(), FS())
	if err != nil {
		tb.Fatalf("failed to load sample universe: %v", err)
	}
	return m
}

// Index resolves a sample system name, failing the test when it is unknown.
func Index(tb testing.TB, m *universe.Map, name string) universe.Index {
	tb.Helper()
	i, err := m.Lookup(name)
	if err != nil {
		tb.Fatalf("lookup %s: %v", name, err)
	}
	return i
}
