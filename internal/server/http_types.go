package server

import (
	"github.com/sanonone/evenav/pkg/universe"
)

// SystemSummary is the short form of a system used in lists.
type SystemSummary struct {
	ID       universe.SystemID `json:"id"`
	Name     string            `json:"name"`
	Region   string            `json:"region"`
	Security float64           `json:"security"`
}

// SystemResponse describes one system and the systems it has gates to.
type SystemResponse struct {
	ID                universe.SystemID `json:"id"`
	Name              string            `json:"name"`
	ConstellationID   uint64            `json:"constellation_id"`
	ConstellationName string            `json:"constellation"`
	RegionID          uint64            `json:"region_id"`
	RegionName        string            `json:"region"`
	Security          float64           `json:"security"`
	Position          [3]float64        `json:"position"`
	Neighbours        []SystemSummary   `json:"neighbours"`
}

// CompletionResponse is returned by the name completion endpoint.
type CompletionResponse struct {
	Systems []SystemSummary `json:"systems"`
}

// ReachSummary is a system together with its jump distance from the origin.
type ReachSummary struct {
	SystemSummary
	Jumps int `json:"jumps"`
}

// WithinResponse is returned by the jump range endpoint.
type WithinResponse struct {
	Systems []ReachSummary `json:"systems"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Systems int    `json:"systems"`
	Gates   int    `json:"gates"`
}

func summary(m *universe.Map, i universe.Index) SystemSummary {
	info := m.Info(i)
	return SystemSummary{
		ID:       info.ID,
		Name:     info.Name,
		Region:   info.RegionName,
		Security: info.Security,
	}
}
