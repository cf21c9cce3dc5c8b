package graph

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrUnknownLocation is returned by Validate for an edge whose endpoint
	// does not name a known location.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrNegativeDistance is returned by AddEdge when the distance is
	// negative or NaN. Dijkstra requires non-negative weights.
	ErrNegativeDistance = errors.New("distance must be non-negative")
)

// Location is a named point. Lng and Lat are in degrees.
type Location struct {
	Name string
	Lng  float64
	Lat  float64
}

// Edge is an undirected connection between two locations. Distance is the
// weight used for shortest path. Cost is carried along but never used as
// a weight.
type Edge struct {
	A, B     string
	Distance float64
	Cost     float64
}

// Other returns the endpoint of e opposite to name.
func (e Edge) Other(name string) string {
	if e.A == name {
		return e.B
	}

	return e.A
}

// Graph represents the set of locations and the undirected edges between
// them.
//
// A Graph must not be modified once queries start. After that point any
// number of goroutines may call the read methods, including ShortestPath,
// concurrently.
type Graph struct {
	locations map[string]Location
	edges     []Edge

	// incident maps a location name to the indexes into edges that touch
	// it, in insertion order. Names may appear here before (or without)
	// appearing in locations.
	incident map[string][]int
}

// AddLocation adds the location to the graph. If a location with the same
// name already exists it is replaced.
func (g *Graph) AddLocation(name string, lng, lat float64) {
	g.init()
	g.locations[name] = Location{Name: name, Lng: lng, Lat: lat}
}

// AddEdge appends an undirected edge between src and dest. The endpoints
// are not required to exist yet; see Validate. Parallel edges are kept.
func (g *Graph) AddEdge(src, dest string, distance, cost float64) error {
	if distance < 0 || math.IsNaN(distance) {
		return fmt.Errorf("%w: %s-%s distance=%v", ErrNegativeDistance, src, dest, distance)
	}

	g.init()
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{A: src, B: dest, Distance: distance, Cost: cost})
	g.incident[src] = append(g.incident[src], idx)
	if dest != src {
		g.incident[dest] = append(g.incident[dest], idx)
	}

	return nil
}

// Location returns the location with the given name.
func (g *Graph) Location(name string) (Location, bool) {
	l, ok := g.locations[name]
	return l, ok
}

// HasLocation reports whether name is a known location.
func (g *Graph) HasLocation(name string) bool {
	_, ok := g.locations[name]
	return ok
}

// LocationNames returns the names of all locations, sorted.
func (g *Graph) LocationNames() []string {
	result := make([]string, 0, len(g.locations))
	for name := range g.locations {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

// Edges returns the edges in insertion order. The returned slice must not
// be modified.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Edge returns the i'th edge in insertion order.
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Neighbors yields every (neighbor, distance) pair reachable over one edge
// from name, in edge insertion order. Undirected edges are yielded whichever
// endpoint name is. Endpoints that are not known locations are skipped.
func (g *Graph) Neighbors(name string) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for idx, other := range g.incidentEdges(name) {
			if !yield(other, g.edges[idx].Distance) {
				return
			}
		}
	}
}

// incidentEdges yields the edge index and the neighbor for every edge
// touching name whose far endpoint is a known location.
func (g *Graph) incidentEdges(name string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, idx := range g.incident[name] {
			other := g.edges[idx].Other(name)
			if !g.HasLocation(other) {
				continue
			}

			if !yield(idx, other) {
				return
			}
		}
	}
}

// Validate checks that every edge endpoint names a known location. All
// problems are reported, not only the first.
func (g *Graph) Validate() error {
	var err error
	for i, e := range g.edges {
		for _, name := range []string{e.A, e.B} {
			if !g.HasLocation(name) {
				err = multierror.Append(err, fmt.Errorf(
					"edge %d (%s-%s): %w %q", i, e.A, e.B, ErrUnknownLocation, name))
			}
		}
	}

	return err
}

// String outputs some human-friendly output for the graph structure.
func (g *Graph) String() string {
	var buf bytes.Buffer

	for _, name := range g.LocationNames() {
		l := g.locations[name]
		buf.WriteString(fmt.Sprintf("%s (%g, %g)\n", name, l.Lng, l.Lat))

		// Alphabetize neighbors, keeping parallel edges
		var deps []string
		for other, d := range g.Neighbors(name) {
			deps = append(deps, fmt.Sprintf("%s %g", other, d))
		}
		sort.Strings(deps)

		for _, d := range deps {
			buf.WriteString(fmt.Sprintf("  %s\n", d))
		}
	}

	return buf.String()
}

func (g *Graph) init() {
	if g.locations == nil {
		g.locations = make(map[string]Location)
	}
	if g.incident == nil {
		g.incident = make(map[string][]int)
	}
}
