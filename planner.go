package routemapper

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp/go-routemapper/internal/graph"
)

// Planner answers shortest path queries over a fixed set of locations and
// routes.
//
// A Planner is immutable once New returns and is safe for concurrent use.
// Each query keeps its own working state.
//
// Routes are undirected. Parallel routes between the same two locations
// are all considered; the shortest wins. Every route must reference known
// locations: a route naming an unknown location is a LoadError from New
// rather than something discovered while searching.
type Planner struct {
	g      *graph.Graph
	logger hclog.Logger
}

// New creates a Planner from the given options.
func New(opts ...Option) (*Planner, error) {
	b, err := newPlannerBuilder(opts...)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	g := new(graph.Graph)
	for _, l := range b.locations {
		g.AddLocation(l.Name, l.Lng, l.Lat)
	}

	for i, r := range b.routes {
		if addErr := g.AddEdge(r.From, r.To, r.Distance, r.Cost); addErr != nil {
			err = multierror.Append(err, fmt.Errorf("route %d: %w", i, addErr))
		}
	}

	if verr := g.Validate(); verr != nil {
		err = multierror.Append(err, verr)
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	log := b.logger
	log.Trace("route graph", "graph", g.String())
	log.Debug("planner ready",
		"locations", len(g.LocationNames()),
		"routes", len(g.Edges()))

	return &Planner{g: g, logger: log}, nil
}

// Location returns the named location.
func (p *Planner) Location(name string) (Location, bool) {
	l, ok := p.g.Location(name)
	if !ok {
		return Location{}, false
	}

	return locationFromGraph(l), true
}

// Locations returns all locations sorted by name.
func (p *Planner) Locations() []Location {
	names := p.g.LocationNames()
	result := make([]Location, len(names))
	for i, name := range names {
		l, _ := p.g.Location(name)
		result[i] = locationFromGraph(l)
	}

	return result
}

// Routes returns all routes in the order they were added.
func (p *Planner) Routes() []Route {
	edges := p.g.Edges()
	result := make([]Route, len(edges))
	for i, e := range edges {
		result[i] = routeFromEdge(e)
	}

	return result
}

// ShortestPath returns the path with the smallest total distance between
// the locations named from and to.
//
// If from or to is empty a *ValidationError is returned. Otherwise the
// error is always nil; when from is unknown, to is unknown, or to cannot
// be reached, the returned Path is not Found.
//
// Filters restrict which routes may be used. With more than one filter a
// route must pass all of them.
func (p *Planner) ShortestPath(from, to string, filters ...RouteFilter) (*Path, error) {
	if from == "" {
		return nil, &ValidationError{Arg: "from", Err: graph.ErrEmptyName}
	}
	if to == "" {
		return nil, &ValidationError{Arg: "to", Err: graph.ErrEmptyName}
	}

	var opts []graph.SearchOption
	if len(filters) > 0 {
		keep := FilterAnd(filters...)
		opts = append(opts, graph.WithEdgeFilter(func(e graph.Edge) bool {
			return keep(routeFromEdge(e))
		}))
	}

	result, err := p.g.ShortestPath(from, to, opts...)
	if err != nil {
		return nil, err
	}

	path := &Path{From: from, To: to}
	if !result.Found() {
		p.logger.Debug("no route", "from", from, "to", to)
		return path, nil
	}

	for _, name := range result.Path {
		l, _ := p.g.Location(name)
		path.Stops = append(path.Stops, locationFromGraph(l))
	}
	for i, idx := range result.Edges {
		// Legs read in travel order even if the route was given reversed.
		leg := routeFromEdge(p.g.Edge(idx))
		if leg.From != result.Path[i] {
			leg.From, leg.To = leg.To, leg.From
		}
		path.Legs = append(path.Legs, leg)
		path.Cost += leg.Cost
	}
	path.Distance = result.Distance

	p.logger.Debug("route found",
		"from", from,
		"to", to,
		"stops", len(path.Stops),
		"distance", path.Distance)

	return path, nil
}
