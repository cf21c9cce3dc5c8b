package routemapper

import "strings"

// Path is returned from Planner.ShortestPath. A Path with no stops means no
// route exists between From and To; check Found before using the stops.
type Path struct {
	From string `json:"from"`
	To   string `json:"to"`

	// Stops are the locations visited from From to To, inclusive.
	Stops []Location `json:"stops"`

	// Legs are the routes taken between consecutive stops. When parallel
	// routes connect two stops, this is the shortest one.
	Legs []Route `json:"legs"`

	Distance float64 `json:"distance"`

	// Cost is the sum of the cost of every leg.
	Cost float64 `json:"cost"`
}

// Found reports whether a route was found.
func (p *Path) Found() bool {
	return p != nil && len(p.Stops) > 0
}

// Names returns the names of the stops in order.
func (p *Path) Names() []string {
	if p == nil {
		return nil
	}

	result := make([]string, len(p.Stops))
	for i, s := range p.Stops {
		result[i] = s.Name
	}

	return result
}

// String formats the stops as "A -> B -> C".
func (p *Path) String() string {
	if !p.Found() {
		return "no route"
	}

	return strings.Join(p.Names(), " -> ")
}
