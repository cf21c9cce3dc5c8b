package routemapper

import (
	"fmt"

	"github.com/hashicorp/go-routemapper/internal/graph"
)

var (
	// ErrUnknownLocation is matched (via errors.Is) by a LoadError when a
	// route names a location that was never added.
	ErrUnknownLocation = graph.ErrUnknownLocation

	// ErrNegativeDistance is matched (via errors.Is) by a LoadError when a
	// route has a negative distance.
	ErrNegativeDistance = graph.ErrNegativeDistance

	// ErrEmptyName is matched (via errors.Is) by a ValidationError.
	ErrEmptyName = graph.ErrEmptyName
)

// Location is a named place on the map.
type Location struct {
	Name string  `json:"name"`
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", l.Name, l.Lat, l.Lng)
}

// Route is a two-way connection between two locations. Distance is what
// ShortestPath minimizes. Cost is reported back on a Path but never
// affects which path is chosen.
type Route struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Cost     float64 `json:"cost"`
}

func routeFromEdge(e graph.Edge) Route {
	return Route{From: e.A, To: e.B, Distance: e.Distance, Cost: e.Cost}
}

func locationFromGraph(l graph.Location) Location {
	return Location{Name: l.Name, Lng: l.Lng, Lat: l.Lat}
}
