package routemapper

// RouteFilter decides whether a route may be used by a ShortestPath query.
// Routes for which the filter returns false are treated as if they did not
// exist.
type RouteFilter func(Route) bool

// FilterMaxDistance only allows routes no longer than d.
func FilterMaxDistance(d float64) RouteFilter {
	return func(r Route) bool {
		return r.Distance <= d
	}
}

// FilterMaxCost only allows routes costing no more than c.
func FilterMaxCost(c float64) RouteFilter {
	return func(r Route) bool {
		return r.Cost <= c
	}
}

// FilterAvoid rejects every route touching one of the named locations.
// Avoiding the source or destination of a query therefore means there is
// no path, unless they are the same location.
func FilterAvoid(names ...string) RouteFilter {
	avoid := make(map[string]struct{}, len(names))
	for _, n := range names {
		avoid[n] = struct{}{}
	}

	return func(r Route) bool {
		_, from := avoid[r.From]
		_, to := avoid[r.To]
		return !from && !to
	}
}

// FilterOr returns a RouteFilter that returns true if any of the given
// filter functions return true.
func FilterOr(fs ...RouteFilter) RouteFilter {
	return func(r Route) bool {
		for _, f := range fs {
			if f(r) {
				return true
			}
		}

		return false
	}
}

// FilterAnd returns a RouteFilter that returns true if all of the given
// filter functions return true.
func FilterAnd(fs ...RouteFilter) RouteFilter {
	return func(r Route) bool {
		for _, f := range fs {
			if !f(r) {
				return false
			}
		}

		return true
	}
}
