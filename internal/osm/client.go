// Package osm talks to OpenStreetMap services: a Nominatim geocoder and an
// OSRM router.
package osm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultOSRMURL      = "https://router.project-osrm.org"
	DefaultUserAgent    = "go-routemapper"

	// DefaultDelay is the pause between consecutive reverse lookups made
	// by Waypoints. The public Nominatim allows about one request per
	// second.
	DefaultDelay = 500 * time.Millisecond
)

var (
	// ErrPlaceNotFound is returned by Geocode when the place has no match.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrNoRoute is returned by Route when no driving route exists.
	ErrNoRoute = errors.New("no driving route found")
)

// Coord is a point in degrees.
type Coord struct {
	Lat float64
	Lng float64
}

func (c Coord) String() string {
	return fmt.Sprintf("(%.5f, %.5f)", c.Lat, c.Lng)
}

// Client is a client for Nominatim and OSRM. The zero value is not usable;
// use New.
type Client struct {
	http         *http.Client
	nominatimURL string
	osrmURL      string
	userAgent    string
	delay        time.Duration
	logger       hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithNominatimURL sets the base URL of the geocoder.
func WithNominatimURL(u string) Option {
	return func(cl *Client) { cl.nominatimURL = u }
}

// WithOSRMURL sets the base URL of the router.
func WithOSRMURL(u string) Option {
	return func(cl *Client) { cl.osrmURL = u }
}

// WithUserAgent sets the User-Agent header. Nominatim rejects requests
// without one.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithDelay sets the pause between reverse lookups in Waypoints.
func WithDelay(d time.Duration) Option {
	return func(cl *Client) { cl.delay = d }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// New returns a Client for the public OpenStreetMap services, modified by
// opts.
func New(opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		nominatimURL: DefaultNominatimURL,
		osrmURL:      DefaultOSRMURL,
		userAgent:    DefaultUserAgent,
		delay:        DefaultDelay,
		logger:       hclog.L(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// getJSON fetches u and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Trace("request", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: unexpected status %s: %s", u, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", u, err)
	}

	return nil
}
