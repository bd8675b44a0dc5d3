package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanonone/evenav/internal/server"
	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde/sdetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *Client {
	t.Helper()
	s := server.NewServer(route.NewPlanner(sdetest.Map(t)), ":0")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL + "/")
}

func TestClient_Route(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	r, err := c.Route(ctx, RouteRequest{From: "Jita", To: "Urlen"})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Jumps)
	assert.Equal(t, "shortest", r.Profile)
	require.Len(t, r.Hops, 4)
	assert.Equal(t, uint64(30000142), r.Hops[0].ID)

	r, err = c.Route(ctx, RouteRequest{From: "Jita", To: "Urlen", Avoid: []string{"Tama", "Kisogo"}, Heuristic: "none"})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Jumps)
	assert.Equal(t, "Sobaseki", r.Hops[3].Name)
}

func TestClient_Errors(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Route(ctx, RouteRequest{From: "Jita", To: "Polaris"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
	assert.Contains(t, apiErr.Message, "no route")

	_, err = c.Route(ctx, RouteRequest{From: "Jita", To: "Urlen", Profile: "fastest"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = c.System(ctx, "Amarr")
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
}

func TestClient_SystemAndComplete(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	sys, err := c.System(ctx, "30002813")
	require.NoError(t, err)
	assert.Equal(t, "Tama", sys.Name)
	assert.Equal(t, "Kurala", sys.ConstellationName)
	assert.Len(t, sys.Neighbours, 2)

	found, err := c.Complete(ctx, "ni", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Niyabainen", found[0].Name)

	reach, err := c.Within(ctx, "Jita", 1)
	require.NoError(t, err)
	assert.Len(t, reach, 5)
	assert.Equal(t, "Jita", reach[0].Name)
	assert.Equal(t, 1, reach[4].Jumps)

	require.NoError(t, c.Healthy(ctx))
}

func TestClient_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := New(ts.URL).System(context.Background(), "Jita")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
