// Package routemapper finds the shortest road route between two named
// places and renders it as an interactive map.
//
// A Planner holds a fixed set of locations and the two-way routes between
// them. It is built once, either from options (see New), from CSV data
// (see FromCSV), or from the bundled set of Indian cities (see Bundled),
// and then answers any number of ShortestPath queries, concurrently if
// desired.
//
// A query for a location that doesn't exist, or between two locations that
// aren't connected, is not an error: the returned Path is simply not Found.
// Only an empty location name is an error.
//
// Paths can be drawn on a Leaflet map with RenderMap.
package routemapper
