// Package client provides a Go client for the evenav HTTP API.
//
// It covers route planning, system lookup, jump range queries and name completion. The client handles
// HTTP communication, JSON decoding and standardized error handling: any response with
// status >= 400 is returned as an *APIError.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// --- Custom Errors ---

// APIError represents an error returned by the evenav API (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// NotFound reports whether the server answered 404: unknown system or no route.
func (e *APIError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// --- JSON Response Structs ---

// Hop is one system along a route.
type Hop struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Security float64 `json:"security"`
	Region   string  `json:"region"`
}

// Route is a planned route.
type Route struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Profile  string        `json:"profile"`
	Hops     []Hop         `json:"hops"`
	Jumps    int           `json:"jumps"`
	Cost     int           `json:"cost"`
	Expanded int           `json:"expanded"`
	Duration time.Duration `json:"duration_ns"`
}

// SystemSummary is the short form of a system.
type SystemSummary struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Region   string  `json:"region"`
	Security float64 `json:"security"`
}

// System models the system lookup response.
type System struct {
	ID                uint64          `json:"id"`
	Name              string          `json:"name"`
	ConstellationID   uint64          `json:"constellation_id"`
	ConstellationName string          `json:"constellation"`
	RegionID          uint64          `json:"region_id"`
	RegionName        string          `json:"region"`
	Security          float64         `json:"security"`
	Position          [3]float64      `json:"position"`
	Neighbours        []SystemSummary `json:"neighbours"`
}

type completionResponse struct {
	Systems []SystemSummary `json:"systems"`
}

// Reach is a system together with its jump distance from the origin.
type Reach struct {
	SystemSummary
	Jumps int `json:"jumps"`
}

type withinResponse struct {
	Systems []Reach `json:"systems"`
}

// RouteRequest describes a route query. Empty fields use the server defaults.
type RouteRequest struct {
	From      string
	To        string
	Profile   string
	Heuristic string
	Avoid     []string
}

// --- Client ---

// Client is the Go client for the evenav API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:9191".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// getJSON executes a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(respBody, &errResp) == nil && errResp["error"] != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp["error"]}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Route plans a route.
func (c *Client) Route(ctx context.Context, r RouteRequest) (*Route, error) {
	q := url.Values{}
	q.Set("from", r.From)
	q.Set("to", r.To)
	if r.Profile != "" {
		q.Set("profile", r.Profile)
	}
	if r.Heuristic != "" {
		q.Set("heuristic", r.Heuristic)
	}
	if len(r.Avoid) > 0 {
		q.Set("avoid", strings.Join(r.Avoid, ","))
	}

	var out Route
	if err := c.getJSON(ctx, "/route", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// System looks up a system by name or numeric id.
func (c *Client) System(ctx context.Context, name string) (*System, error) {
	var out System
	if err := c.getJSON(ctx, "/systems/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Within lists the systems at most jumps jumps from name, nearest first.
func (c *Client) Within(ctx context.Context, name string, jumps int) ([]Reach, error) {
	q := url.Values{}
	q.Set("jumps", strconv.Itoa(jumps))

	var out withinResponse
	if err := c.getJSON(ctx, "/systems/"+url.PathEscape(name)+"/within", q, &out); err != nil {
		return nil, err
	}
	return out.Systems, nil
}

// Complete returns up to limit systems whose name starts with prefix.
// A limit of zero uses the server default.
func (c *Client) Complete(ctx context.Context, prefix string, limit int) ([]SystemSummary, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out completionResponse
	if err := c.getJSON(ctx, "/systems", q, &out); err != nil {
		return nil, err
	}
	return out.Systems, nil
}

// Healthy reports whether the server answers its health check.
func (c *Client) Healthy(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/healthz", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("server reports status %q", out.Status)
	}
	return nil
}
