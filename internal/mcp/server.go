// Package mcp exposes the route planner as Model Context Protocol tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/evenav/pkg/route"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

func NewMCPServer(planner *route.Planner) *mcp.Server {
	service := NewService(planner)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "evenav",
		Version: Version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_route",
		Description: "Plan a stargate route between two EVE Online solar systems, optionally preferring high-sec or avoiding given systems.",
	}, service.FindRoute)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "describe_system",
		Description: "Describe a solar system: security status, constellation, region and the systems its stargates lead to.",
	}, service.DescribeSystem)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "complete_system",
		Description: "List solar system names starting with a prefix, to resolve partial or misspelled names.",
	}, service.CompleteSystem)

	return s
}
