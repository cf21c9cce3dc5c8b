package osm

import (
	"context"
	"fmt"
	"time"
)

// DefaultCostPerKm is the cost estimate per kilometre driven.
const DefaultCostPerKm = 10.0

// Driving is a road route returned by the router.
type Driving struct {
	// Geometry is the road line from start to end.
	Geometry []Coord

	// DistanceMeters and DurationSeconds are as reported by the router.
	DistanceMeters  float64
	DurationSeconds float64
}

func (d *Driving) DistanceKm() float64 { return d.DistanceMeters / 1000 }

func (d *Driving) DurationHours() float64 { return d.DurationSeconds / 3600 }

func (d *Driving) Duration() time.Duration {
	return time.Duration(d.DurationSeconds * float64(time.Second))
}

// Cost estimates the cost of the trip at perKm per kilometre.
func (d *Driving) Cost(perKm float64) float64 { return d.DistanceKm() * perKm }

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			// GeoJSON order: longitude first.
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route returns the driving route from one point to another. Only the
// first route suggested by the router is used.
func (c *Client) Route(ctx context.Context, from, to Coord) (*Driving, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.osrmURL, from.Lng, from.Lat, to.Lng, to.Lat)

	var resp routeResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("routing %s to %s: %w", from, to, err)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("routing %s to %s: %w (code %q)", from, to, ErrNoRoute, resp.Code)
	}

	r := resp.Routes[0]
	result := &Driving{
		Geometry:        make([]Coord, len(r.Geometry.Coordinates)),
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}
	for i, pt := range r.Geometry.Coordinates {
		result.Geometry[i] = Coord{Lat: pt[1], Lng: pt[0]}
	}

	c.logger.Debug("route found",
		"points", len(result.Geometry),
		"km", result.DistanceKm(),
		"duration", result.Duration())
	return result, nil
}
