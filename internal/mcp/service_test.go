package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde/sdetest"
	"github.com/sanonone/evenav/pkg/universe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(route.NewPlanner(sdetest.Map(t)))
}

func TestFindRoute(t *testing.T) {
	s := newService(t)

	_, res, err := s.FindRoute(context.Background(), nil, FindRouteArgs{From: "Jita", To: "Maurasi"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Jumps)
	assert.Contains(t, res.Summary, "Jita (")
	assert.Contains(t, res.Summary, "-> Maurasi (")
	assert.Contains(t, res.Summary, ", 1 jump")

	_, res, err = s.FindRoute(context.Background(), nil, FindRouteArgs{From: "Jita", To: "Urlen", Profile: "safer"})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Jumps)
	assert.Contains(t, res.Summary, "4 jumps")

	_, _, err = s.FindRoute(context.Background(), nil, FindRouteArgs{From: "Jita", To: "Polaris"})
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

func TestDescribeSystem(t *testing.T) {
	s := newService(t)

	_, res, err := s.DescribeSystem(context.Background(), nil, DescribeSystemArgs{Name: "tama"})
	require.NoError(t, err)
	assert.Equal(t, "Tama", res.Name)
	assert.Equal(t, "Black Rise", res.Region)
	require.Len(t, res.Neighbours, 2)
	assert.Equal(t, "Maurasi", res.Neighbours[0].Name)
	assert.Equal(t, "Urlen", res.Neighbours[1].Name)

	_, _, err = s.DescribeSystem(context.Background(), nil, DescribeSystemArgs{Name: "Amarr"})
	assert.ErrorIs(t, err, universe.ErrUnknownSystem)
}

func TestCompleteSystem(t *testing.T) {
	s := newService(t)

	_, res, err := s.CompleteSystem(context.Background(), nil, CompleteSystemArgs{Prefix: "P"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Perimeter", "Polaris"}, res.Names)
}

func TestServerOverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	server := NewMCPServer(route.NewPlanner(sdetest.Map(t)))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"find_route", "describe_system", "complete_system"}, names)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "find_route",
		Arguments: map[string]any{"from": "Jita", "to": "Urlen", "avoid": []string{"Tama"}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out FindRouteResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 4, out.Jumps)
	assert.Len(t, out.Hops, 5)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "describe_system",
		Arguments: map[string]any{"name": "Amarr"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
