package graph

import (
	"container/heap"
	"errors"
	"math"
)

// ErrEmptyName is returned by ShortestPath when the source or destination
// name is empty.
var ErrEmptyName = errors.New("location name must not be empty")

// Result is the outcome of a ShortestPath query. A Result with no Path
// means the destination cannot be reached from the source.
type Result struct {
	// Path is the list of location names from source to destination,
	// inclusive. It is nil if there is no path.
	Path []string

	// Edges holds the index (see Graph.Edge) of the edge taken for each
	// leg of Path, so len(Edges) == len(Path)-1.
	Edges []int

	// Distance is the total distance along Path.
	Distance float64
}

// Found reports whether a path exists.
func (r Result) Found() bool { return len(r.Path) > 0 }

// SearchOption configures a single ShortestPath call.
type SearchOption func(*search)

// WithEdgeFilter excludes every edge for which keep returns false.
func WithEdgeFilter(keep func(Edge) bool) SearchOption {
	return func(s *search) {
		s.keep = keep
	}
}

// ShortestPath returns the minimum-distance path from src to dst using
// Dijkstra's algorithm.
//
// An unknown src, an unknown dst, or a dst that cannot be reached all
// result in a Result with no path and a nil error. The only error is
// ErrEmptyName.
//
// When two candidate paths to a location have the same distance, the one
// discovered first (in edge insertion order) is kept.
func (g *Graph) ShortestPath(src, dst string, opts ...SearchOption) (Result, error) {
	if src == "" || dst == "" {
		return Result{}, ErrEmptyName
	}

	if !g.HasLocation(src) {
		return Result{}, nil
	}

	s := &search{g: g}
	for _, opt := range opts {
		opt(s)
	}
	s.run(src)

	return s.result(src, dst), nil
}

// search holds the state of a single query so a Graph can be searched
// concurrently.
type search struct {
	g    *Graph
	keep func(Edge) bool

	dist    map[string]float64
	prev    map[string]string
	prevEdg map[string]int
	visited map[string]struct{}
	queue   distQueue
	seq     uint64
}

func (s *search) run(src string) {
	n := len(s.g.locations)
	s.dist = make(map[string]float64, n)
	s.prev = make(map[string]string, n)
	s.prevEdg = make(map[string]int, n)
	s.visited = make(map[string]struct{}, n)

	for name := range s.g.locations {
		s.dist[name] = math.Inf(1)
	}
	s.dist[src] = 0
	s.push(src, 0)

	for s.queue.Len() > 0 {
		u := heap.Pop(&s.queue).(queueEntry).name
		if _, ok := s.visited[u]; ok {
			continue
		}
		s.visited[u] = struct{}{}

		for idx, v := range s.g.incidentEdges(u) {
			e := s.g.edges[idx]
			if s.keep != nil && !s.keep(e) {
				continue
			}

			// Strictly less: the first candidate found wins ties.
			candidate := s.dist[u] + e.Distance
			if candidate < s.dist[v] {
				s.dist[v] = candidate
				s.prev[v] = u
				s.prevEdg[v] = idx
				s.push(v, candidate)
			}
		}
	}
}

func (s *search) push(name string, dist float64) {
	heap.Push(&s.queue, queueEntry{dist: dist, seq: s.seq, name: name})
	s.seq++
}

func (s *search) result(src, dst string) Result {
	if src == dst {
		return Result{Path: []string{src}}
	}

	if _, ok := s.prev[dst]; !ok {
		return Result{}
	}

	var path []string
	var edges []int
	for at := dst; at != src; at = s.prev[at] {
		path = append(path, at)
		edges = append(edges, s.prevEdg[at])
	}
	path = append(path, src)
	reverse(path)
	reverse(edges)

	return Result{
		Path:     path,
		Edges:    edges,
		Distance: s.dist[dst],
	}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
