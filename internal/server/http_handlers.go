package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sanonone/evenav/pkg/route"
	"github.com/sanonone/evenav/pkg/universe"
)

const (
	defaultCompletionLimit = 10
	maxCompletionLimit     = 100

	defaultWithinJumps = 5
	maxWithinJumps     = 20
)

// registerHTTPHandlers sets up the REST API routes.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /route", s.handleRoute)
	mux.HandleFunc("GET /systems", s.handleComplete)
	mux.HandleFunc("GET /systems/{name}", s.handleSystem)
	mux.HandleFunc("GET /systems/{name}/within", s.handleWithin)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	m := s.Planner.Map()
	s.writeHTTPResponse(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Systems: m.Len(),
		Gates:   m.Gates(),
	})
}

// handleRoute serves GET /route?from=&to=&profile=&heuristic=&avoid=a,b
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := route.Request{
		From:      strings.TrimSpace(q.Get("from")),
		To:        strings.TrimSpace(q.Get("to")),
		Profile:   route.Profile(q.Get("profile")),
		Heuristic: route.Heuristic(q.Get("heuristic")),
		Avoid:     splitList(q["avoid"]),
	}
	if req.From == "" || req.To == "" {
		s.writeHTTPError(w, http.StatusBadRequest, "both 'from' and 'to' are required")
		return
	}

	rt, err := s.Planner.Plan(r.Context(), req)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, rt)
}

// handleSystem serves GET /systems/{name}. The name may also be a numeric system id.
func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	m := s.Planner.Map()
	i, err := m.Resolve(r.PathValue("name"))
	if err != nil {
		s.writeHTTPError(w, http.StatusNotFound, err.Error())
		return
	}

	info := m.Info(i)
	resp := SystemResponse{
		ID:                info.ID,
		Name:              info.Name,
		ConstellationID:   info.ConstellationID,
		ConstellationName: info.ConstellationName,
		RegionID:          info.RegionID,
		RegionName:        info.RegionName,
		Security:          info.Security,
		Position:          [3]float64{info.Position.X, info.Position.Y, info.Position.Z},
		Neighbours:        make([]SystemSummary, 0, m.Degree(i)),
	}
	for n := range m.All(i) {
		resp.Neighbours = append(resp.Neighbours, summary(m, n))
	}
	s.writeHTTPResponse(w, http.StatusOK, resp)
}

// handleWithin serves GET /systems/{name}/within?jumps=N
func (s *Server) handleWithin(w http.ResponseWriter, r *http.Request) {
	jumps := defaultWithinJumps
	if v := r.URL.Query().Get("jumps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxWithinJumps {
			s.writeHTTPError(w, http.StatusBadRequest, fmt.Sprintf("'jumps' must be between 0 and %d", maxWithinJumps))
			return
		}
		jumps = n
	}

	m := s.Planner.Map()
	i, err := m.Resolve(r.PathValue("name"))
	if err != nil {
		s.writeHTTPError(w, http.StatusNotFound, err.Error())
		return
	}
	found := m.Within(i, jumps)
	resp := WithinResponse{Systems: make([]ReachSummary, 0, len(found))}
	for _, rc := range found {
		resp.Systems = append(resp.Systems, ReachSummary{SystemSummary: summary(m, rc.Index), Jumps: rc.Jumps})
	}
	s.writeHTTPResponse(w, http.StatusOK, resp)
}

// handleComplete serves GET /systems?prefix=&limit=
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	limit := defaultCompletionLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeHTTPError(w, http.StatusBadRequest, "'limit' must be a positive integer")
			return
		}
		limit = min(n, maxCompletionLimit)
	}

	m := s.Planner.Map()
	found := m.Complete(r.URL.Query().Get("prefix"), limit)
	resp := CompletionResponse{Systems: make([]SystemSummary, 0, len(found))}
	for _, i := range found {
		resp.Systems = append(resp.Systems, summary(m, i))
	}
	s.writeHTTPResponse(w, http.StatusOK, resp)
}

// writePlanError maps planner errors onto status codes.
func (s *Server) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, universe.ErrUnknownSystem), errors.Is(err, route.ErrNoRoute):
		s.writeHTTPError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, route.ErrUnknownProfile),
		errors.Is(err, route.ErrUnknownHeuristic),
		errors.Is(err, route.ErrAvoidedEndpoint):
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.writeHTTPError(w, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error("Route planning failed", "error", err, "request_id", RequestID(r.Context()))
		s.writeHTTPError(w, http.StatusInternalServerError, "route planning failed")
	}
}

// splitList flattens repeated and comma separated query values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, map[string]string{"error": message})
}
