package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/evenav/pkg/route"
)

type Service struct {
	planner *route.Planner
}

func NewService(planner *route.Planner) *Service {
	return &Service{planner: planner}
}

// --- Tool Handlers ---

func (s *Service) FindRoute(ctx context.Context, req *mcp.CallToolRequest, args FindRouteArgs) (*mcp.CallToolResult, FindRouteResult, error) {
	r, err := s.planner.Plan(ctx, route.Request{
		From:      args.From,
		To:        args.To,
		Profile:   route.Profile(args.Profile),
		Heuristic: route.Heuristic(args.Heuristic),
		Avoid:     args.Avoid,
	})
	if err != nil {
		return nil, FindRouteResult{}, err
	}

	// Formatted for the LLM
	var sb strings.Builder
	for i, h := range r.Hops {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "%s (%.1f)", h.Name, h.Security)
	}
	fmt.Fprintf(&sb, ", %d %s", r.Jumps, plural(r.Jumps, "jump", "jumps"))

	return nil, FindRouteResult{
		Summary: sb.String(),
		Jumps:   r.Jumps,
		Cost:    r.Cost,
		Hops:    r.Hops,
	}, nil
}

func (s *Service) DescribeSystem(ctx context.Context, req *mcp.CallToolRequest, args DescribeSystemArgs) (*mcp.CallToolResult, DescribeSystemResult, error) {
	m := s.planner.Map()
	i, err := m.Resolve(args.Name)
	if err != nil {
		return nil, DescribeSystemResult{}, err
	}

	info := m.Info(i)
	res := DescribeSystemResult{
		ID:            uint64(info.ID),
		Name:          info.Name,
		Constellation: info.ConstellationName,
		Region:        info.RegionName,
		Security:      info.Security,
		Neighbours:    make([]SystemNeighbour, 0, m.Degree(i)),
	}
	for n := range m.All(i) {
		ni := m.Info(n)
		res.Neighbours = append(res.Neighbours, SystemNeighbour{
			Name:     ni.Name,
			Security: ni.Security,
			Region:   ni.RegionName,
		})
	}
	return nil, res, nil
}

func (s *Service) CompleteSystem(ctx context.Context, req *mcp.CallToolRequest, args CompleteSystemArgs) (*mcp.CallToolResult, CompleteSystemResult, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}
	m := s.planner.Map()
	found := m.Complete(args.Prefix, limit)
	res := CompleteSystemResult{Names: make([]string, 0, len(found))}
	for _, i := range found {
		res.Names = append(res.Names, m.Info(i).Name)
	}
	return nil, res, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
