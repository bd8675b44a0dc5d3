package mcp

import (
	"github.com/sanonone/evenav/pkg/route"
)

// --- Tool Arguments ---

type FindRouteArgs struct {
	From      string   `json:"from" jsonschema:"Origin solar system name or numeric id (e.g. 'Jita')"`
	To        string   `json:"to" jsonschema:"Destination solar system name or numeric id (e.g. 'Amarr')"`
	Profile   string   `json:"profile,omitempty" jsonschema:"Cost profile: 'shortest' (default), 'safer' (avoid low and null sec) or 'less-secure' (prefer low and null sec)"`
	Avoid     []string `json:"avoid,omitempty" jsonschema:"Systems the route must not pass through"`
	Heuristic string   `json:"heuristic,omitempty" jsonschema:"Search heuristic: 'distance' (default) or 'none'"`
}

type FindRouteResult struct {
	Summary string      `json:"summary"` // "Jita (0.9) -> Perimeter (1.0), 1 jump"
	Jumps   int         `json:"jumps"`
	Cost    int         `json:"cost"`
	Hops    []route.Hop `json:"hops"`
}

type DescribeSystemArgs struct {
	Name string `json:"name" jsonschema:"Solar system name or numeric id"`
}

type SystemNeighbour struct {
	Name     string  `json:"name"`
	Security float64 `json:"security"`
	Region   string  `json:"region"`
}

type DescribeSystemResult struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Constellation string            `json:"constellation"`
	Region        string            `json:"region"`
	Security      float64           `json:"security"`
	Neighbours    []SystemNeighbour `json:"neighbours"`
}

type CompleteSystemArgs struct {
	Prefix string `json:"prefix" jsonschema:"Beginning of a solar system name, case-insensitive"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max number of names (default 10)"`
}

type CompleteSystemResult struct {
	Names []string `json:"names"`
}
