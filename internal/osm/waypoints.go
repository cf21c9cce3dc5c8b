package osm

import (
	"context"
	"time"
)

const (
	// waypointStart is the first geometry index sampled. Earlier points
	// are still inside the start town.
	waypointStart = 10

	// waypointMinStep is the smallest distance, in geometry points,
	// between two samples.
	waypointMinStep = 30
)

// Town is a settlement found along a route.
type Town struct {
	Name string
	Coord
}

// sampleIndexes returns the indexes of the points of an n point geometry
// that Waypoints looks up: about ten, evenly spaced.
func sampleIndexes(n int) []int {
	step := n / 10
	if step < waypointMinStep {
		step = waypointMinStep
	}

	var result []int
	for i := waypointStart; i < n; i += step {
		result = append(result, i)
	}

	return result
}

// Waypoints guesses the towns a route passes through by reverse geocoding
// points sampled along its geometry. Each town is reported once, in the
// order first seen.
//
// A failed lookup is logged and skipped. Only a cancelled ctx stops the
// sampling early, in which case the towns found so far are returned along
// with ctx.Err().
func (c *Client) Waypoints(ctx context.Context, geometry []Coord) ([]Town, error) {
	var result []Town
	seen := map[string]struct{}{}

	for n, idx := range sampleIndexes(len(geometry)) {
		if n > 0 && c.delay > 0 {
			timer := time.NewTimer(c.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return result, ctx.Err()
			case <-timer.C:
			}
		}

		p := geometry[idx]
		name, err := c.Reverse(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}

			c.logger.Warn("skipping waypoint", "index", idx, "error", err)
			continue
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		result = append(result, Town{Name: name, Coord: p})
	}

	return result, nil
}
