package osm

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

// Geocode returns the coordinates of the best match for place.
func (c *Client) Geocode(ctx context.Context, place string) (Coord, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []searchResult
	if err := c.getJSON(ctx, c.nominatimURL+"/search?"+q.Encode(), &results); err != nil {
		return Coord{}, fmt.Errorf("geocoding %q: %w", place, err)
	}
	if len(results) == 0 {
		return Coord{}, fmt.Errorf("geocoding %q: %w", place, ErrPlaceNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("geocoding %q: bad latitude: %w", place, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("geocoding %q: bad longitude: %w", place, err)
	}

	coord := Coord{Lat: lat, Lng: lng}
	c.logger.Debug("geocoded", "place", place, "coord", coord.String())
	return coord, nil
}

// Reverse returns the name of the city, town or village at p, in that
// order of preference. It returns "" if p is in none of them.
func (c *Client) Reverse(ctx context.Context, p Coord) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	q.Set("format", "json")

	var result reverseResult
	if err := c.getJSON(ctx, c.nominatimURL+"/reverse?"+q.Encode(), &result); err != nil {
		return "", fmt.Errorf("reverse geocoding %s: %w", p, err)
	}

	switch a := result.Address; {
	case a.City != "":
		return a.City, nil
	case a.Town != "":
		return a.Town, nil
	default:
		return a.Village, nil
	}
}
