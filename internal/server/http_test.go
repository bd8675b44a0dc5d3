package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/sde/sdetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(route.NewPlanner(sdetest.Map(t)), ":0")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthzEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var health HealthResponse
	resp := getJSON(t, ts, "/healthz", &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, len(sdetest.Systems), health.Systems)
	assert.Equal(t, 2*len(sdetest.Gates), health.Gates)
}

func TestRouteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var rt route.Route
	resp := getJSON(t, ts, "/route?from=Jita&to=Urlen&profile=safer", &rt)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 4, rt.Jumps)
	assert.Equal(t, route.Safer, rt.Profile)
	require.Len(t, rt.Hops, 5)
	assert.Equal(t, "Jita", rt.Hops[0].Name)
	assert.Equal(t, "Urlen", rt.Hops[4].Name)

	q := url.Values{"from": {"jita"}, "to": {"30000139"}, "avoid": {"Tama,", " Kisogo"}}
	resp = getJSON(t, ts, "/route?"+q.Encode(), &rt)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, rt.Jumps)
}

func TestRouteEndpoint_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing to", "from=Jita", http.StatusBadRequest},
		{"unknown system", "from=Jita&to=Amarr", http.StatusNotFound},
		{"unreachable", "from=Jita&to=Polaris", http.StatusNotFound},
		{"bad profile", "from=Jita&to=Urlen&profile=fastest", http.StatusBadRequest},
		{"bad heuristic", "from=Jita&to=Urlen&heuristic=psychic", http.StatusBadRequest},
		{"avoided endpoint", "from=Jita&to=Urlen&avoid=Jita", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			resp := getJSON(t, ts, "/route?"+tt.query, &body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSystemEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var sys SystemResponse
	resp := getJSON(t, ts, "/systems/jita", &sys)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jita", sys.Name)
	assert.Equal(t, "Kimotoro", sys.ConstellationName)
	assert.Equal(t, "The Forge", sys.RegionName)

	names := make([]string, 0, len(sys.Neighbours))
	for _, n := range sys.Neighbours {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Maurasi", "Niyabainen", "Kisogo", "Ikuchi"}, names)

	resp = getJSON(t, ts, "/systems/Amarr", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWithinEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got WithinResponse
	resp := getJSON(t, ts, "/systems/Tama/within?jumps=1", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Systems, 3)
	assert.Equal(t, "Tama", got.Systems[0].Name)
	assert.Zero(t, got.Systems[0].Jumps)
	assert.Equal(t, 1, got.Systems[2].Jumps)

	resp = getJSON(t, ts, "/systems/Tama/within?jumps=99", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, ts, "/systems/Amarr/within", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompleteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got CompletionResponse
	resp := getJSON(t, ts, "/systems?prefix=ji", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Systems, 1)
	assert.Equal(t, "Jita", got.Systems[0].Name)

	resp = getJSON(t, ts, "/systems?limit=2", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, got.Systems, 2)

	resp = getJSON(t, ts, "/systems?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/systems/Jita", nil)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/systems/Jita", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "trace-42")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-42", resp.Header.Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	getJSON(t, ts, "/route?from=Jita&to=Maurasi", nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var b strings.Builder
	_, err = io.Copy(&b, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, b.String(), "evenav_route_plans_total")
	assert.Contains(t, b.String(), `path="GET /route"`)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := &Server{}
	h := s.RecoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}
