// Package route plans jump routes across New Eden.
//
// A Planner pairs the immutable universe map with the generic A* core. Every call to
// Plan gets its own open and closed lists, so a single Planner can serve any number of
// concurrent requests.
//
// Basic usage:
//
//	p := route.NewPlanner(m)
//	r, err := p.Plan(ctx, route.Request{From: "Jita", To: "Amarr", Profile: route.Safer})
package route

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"time"

	"github.com/sanonone/evenav/pkg/core/astar"
	"github.com/sanonone/evenav/pkg/core/bitset"
	"github.com/sanonone/evenav/pkg/metrics"
	"github.com/sanonone/evenav/pkg/universe"
)

var (
	// ErrNoRoute is returned when the destination cannot be reached.
	ErrNoRoute = errors.New("no route")
	// ErrAvoidedEndpoint is returned when the origin or destination is on the avoid list.
	ErrAvoidedEndpoint = errors.New("origin or destination is avoided")
	// ErrUnknownProfile is returned for an unrecognised cost profile name.
	ErrUnknownProfile = errors.New("unknown route profile")
	// ErrUnknownHeuristic is returned for an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
)

// Profile selects how jumps are priced.
type Profile string

const (
	// Shortest prices every jump at 1.
	Shortest Profile = "shortest"
	// Safer adds a penalty for entering low and null security systems.
	Safer Profile = "safer"
	// LessSecure adds a penalty for entering high security systems.
	LessSecure Profile = "less-secure"
)

// ParseProfile accepts the profile names used on the command line and in the API.
// An empty name is Shortest.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "", Shortest:
		return Shortest, nil
	case Safer, LessSecure:
		return Profile(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// Heuristic selects the A* estimate.
type Heuristic string

const (
	// NoHeuristic runs a uniform-cost (Dijkstra) search.
	NoHeuristic Heuristic = "none"
	// DistanceHeuristic estimates remaining jumps from the straight-line distance to the
	// destination divided by the longest gate in the map.
	DistanceHeuristic Heuristic = "distance"
)

// ParseHeuristic accepts heuristic names. An empty name is DistanceHeuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch Heuristic(s) {
	case "", DistanceHeuristic:
		return DistanceHeuristic, nil
	case NoHeuristic:
		return NoHeuristic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// DefaultPenalty is the extra cost of entering a system the profile dislikes.
const DefaultPenalty = 50

// Options configures a Planner.
type Options struct {
	// Penalty is added to the jump cost by the Safer and LessSecure profiles.
	// Values below zero are treated as zero.
	Penalty int
	// Profile is used when a request does not name one.
	Profile Profile
	// Heuristic is used when a request does not name one.
	Heuristic Heuristic
}

// Option modifies Options.
type Option func(*Options)

// WithPenalty sets the profile penalty.
func WithPenalty(p int) Option { return func(o *Options) { o.Penalty = max(p, 0) } }

// WithDefaultProfile sets the profile used when a request leaves it empty.
func WithDefaultProfile(p Profile) Option { return func(o *Options) { o.Profile = p } }

// WithDefaultHeuristic sets the heuristic used when a request leaves it empty.
func WithDefaultHeuristic(h Heuristic) Option { return func(o *Options) { o.Heuristic = h } }

// Planner finds routes on a universe map.
type Planner struct {
	m    *universe.Map
	opts Options
}

// NewPlanner creates a planner over m.
func NewPlanner(m *universe.Map, options ...Option) *Planner {
	opts := Options{
		Penalty:   DefaultPenalty,
		Profile:   Shortest,
		Heuristic: DistanceHeuristic,
	}
	for _, o := range options {
		o(&opts)
	}
	return &Planner{m: m, opts: opts}
}

// Map returns the universe the planner searches.
func (p *Planner) Map() *universe.Map { return p.m }

// Request describes one route query. From, To and Avoid accept system names or ids.
type Request struct {
	From      string
	To        string
	Profile   Profile
	Heuristic Heuristic
	Avoid     []string
}

// Hop is one system along a route.
type Hop struct {
	Index    universe.Index    `json:"-"`
	ID       universe.SystemID `json:"id"`
	Name     string            `json:"name"`
	Security float64           `json:"security"`
	Region   string            `json:"region"`
}

// Route is a planned route. Hops includes both the origin and the destination.
type Route struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Profile  Profile       `json:"profile"`
	Hops     []Hop         `json:"hops"`
	Jumps    int           `json:"jumps"`
	Cost     int           `json:"cost"`
	Expanded int           `json:"expanded"`
	Duration time.Duration `json:"duration_ns"`
}

// Plan finds the cheapest route for req.
func (p *Planner) Plan(ctx context.Context, req Request) (*Route, error) {
	profile := req.Profile
	if profile == "" {
		profile = p.opts.Profile
	}
	if _, err := ParseProfile(string(profile)); err != nil {
		return nil, err
	}
	heuristic := req.Heuristic
	if heuristic == "" {
		heuristic = p.opts.Heuristic
	}
	if _, err := ParseHeuristic(string(heuristic)); err != nil {
		return nil, err
	}

	from, err := p.m.Resolve(req.From)
	if err != nil {
		return nil, err
	}
	to, err := p.m.Resolve(req.To)
	if err != nil {
		return nil, err
	}
	var avoid *bitset.BitSet
	if len(req.Avoid) > 0 {
		avoid = bitset.New(uint32(p.m.Len()))
		for _, name := range req.Avoid {
			i, err := p.m.Resolve(name)
			if err != nil {
				return nil, err
			}
			avoid.Add(uint32(i))
		}
		if avoid.Has(uint32(from)) || avoid.Has(uint32(to)) {
			return nil, ErrAvoidedEndpoint
		}
	}
	// The search itself cannot be interrupted; honour cancellation before it starts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &search{
		m:       p.m,
		goal:    to,
		penalty: p.opts.Penalty,
		profile: profile,
		avoid:   avoid,
	}
	h := astar.Zero[universe.Index, int]
	if heuristic == DistanceHeuristic && p.m.MaxGateSpan() > 0 {
		h = s.distance
	}

	start := time.Now()
	path, cost, err := astar.FindPath(p.m.Len(), from,
		func(i universe.Index) bool { return i == to },
		h, s.neighbours)
	elapsed := time.Since(start)

	metrics.RoutePlanDuration.WithLabelValues(string(profile)).Observe(elapsed.Seconds())
	metrics.RouteExpandedNodes.Observe(float64(s.expanded))

	if err != nil {
		if errors.Is(err, astar.ErrPathNotFound) {
			metrics.RoutePlansTotal.WithLabelValues(string(profile), "no_route").Inc()
			return nil, fmt.Errorf("%w from %s to %s", ErrNoRoute, p.m.Info(from).Name, p.m.Info(to).Name)
		}
		metrics.RoutePlansTotal.WithLabelValues(string(profile), "error").Inc()
		slog.Error("Route search failed",
			"from", p.m.Info(from).Name,
			"to", p.m.Info(to).Name,
			"profile", profile,
			"error", err,
		)
		return nil, fmt.Errorf("route search failed: %w", err)
	}
	metrics.RoutePlansTotal.WithLabelValues(string(profile), "found").Inc()

	r := &Route{
		From:     p.m.Info(from).Name,
		To:       p.m.Info(to).Name,
		Profile:  profile,
		Hops:     make([]Hop, 0, len(path)),
		Jumps:    len(path) - 1,
		Cost:     cost,
		Expanded: s.expanded,
		Duration: elapsed,
	}
	for _, i := range path {
		info := p.m.Info(i)
		r.Hops = append(r.Hops, Hop{
			Index:    i,
			ID:       info.ID,
			Name:     info.Name,
			Security: info.Security,
			Region:   info.RegionName,
		})
	}
	slog.Debug("Route planned",
		"from", r.From,
		"to", r.To,
		"profile", profile,
		"jumps", r.Jumps,
		"cost", r.Cost,
		"expanded", r.Expanded,
		"duration", elapsed.String(),
	)
	return r, nil
}

// search holds the per-request state shared by the cost and heuristic callbacks.
type search struct {
	m        *universe.Map
	goal     universe.Index
	penalty  int
	profile  Profile
	avoid    *bitset.BitSet
	expanded int
}

// jumpCost prices entering system i. Every jump costs at least 1, which keeps the
// distance heuristic consistent under every profile.
func (s *search) jumpCost(i universe.Index) int {
	switch s.profile {
	case Safer:
		if !s.m.Info(i).HighSec() {
			return 1 + s.penalty
		}
	case LessSecure:
		if s.m.Info(i).HighSec() {
			return 1 + s.penalty
		}
	}
	return 1
}

func (s *search) neighbours(i universe.Index) iter.Seq2[universe.Index, int] {
	s.expanded++
	return func(yield func(universe.Index, int) bool) {
		for _, n := range s.m.Neighbours(i) {
			if s.avoid.Has(uint32(n)) {
				continue
			}
			if !yield(n, s.jumpCost(n)) {
				return
			}
		}
	}
}

// distance is a lower bound on the number of jumps left: no single gate spans more
// than MaxGateSpan, so reaching the goal takes at least distance/MaxGateSpan jumps.
func (s *search) distance(i universe.Index) int {
	return int(math.Floor(s.m.Distance(i, s.goal) / s.m.MaxGateSpan()))
}
