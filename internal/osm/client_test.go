package osm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func init() {
	hclog.L().SetLevel(hclog.Trace)
}

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(
		WithHTTPClient(srv.Client()),
		WithNominatimURL(srv.URL),
		WithOSRMURL(srv.URL),
		WithDelay(0),
	)
}

func TestGeocode(t *testing.T) {
	cases := []struct {
		Name     string
		Status   int
		Body     string
		Expected Coord
		Err      string
	}{
		{
			"found",
			200,
			`[{"lat":"28.6139","lon":"77.2090","display_name":"Delhi"}]`,
			Coord{Lat: 28.6139, Lng: 77.2090},
			"",
		},

		{
			"not found",
			200,
			`[]`,
			Coord{},
			"place not found",
		},

		{
			"server error",
			503,
			`busy`,
			Coord{},
			"unexpected status 503",
		},

		{
			"bad json",
			200,
			`{`,
			Coord{},
			"decoding response",
		},

		{
			"bad latitude",
			200,
			`[{"lat":"north","lon":"77.2090"}]`,
			Coord{},
			"bad latitude",
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			var gotPath, gotQuery, gotUA string
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.Query().Get("q")
				gotUA = r.Header.Get("User-Agent")
				w.WriteHeader(tt.Status)
				fmt.Fprint(w, tt.Body)
			})

			actual, err := c.Geocode(context.Background(), "New Delhi")
			require.Equal("/search", gotPath)
			require.Equal("New Delhi", gotQuery)
			require.Equal(DefaultUserAgent, gotUA)
			if tt.Err != "" {
				require.Error(err)
				require.Contains(err.Error(), tt.Err)
				return
			}

			require.NoError(err)
			require.Equal(tt.Expected, actual)
		})
	}
}

func TestReverse(t *testing.T) {
	cases := []struct {
		Name     string
		Body     string
		Expected string
	}{
		{"city", `{"address":{"city":"Agra","town":"x","village":"y"}}`, "Agra"},
		{"town", `{"address":{"town":"Mathura","village":"y"}}`, "Mathura"},
		{"village", `{"address":{"village":"Chhata"}}`, "Chhata"},
		{"nothing", `{"address":{"road":"NH 19"}}`, ""},
		{"no address", `{"error":"Unable to geocode"}`, ""},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			var got *url.URL
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.URL
				fmt.Fprint(w, tt.Body)
			})

			actual, err := c.Reverse(context.Background(), Coord{Lat: 27.5, Lng: 77.7})
			require.NoError(err)
			require.Equal("/reverse", got.Path)
			require.Equal("27.5", got.Query().Get("lat"))
			require.Equal("77.7", got.Query().Get("lon"))
			require.Equal(tt.Expected, actual)
		})
	}
}

func TestRoute(t *testing.T) {
	require := require.New(t)

	var got *url.URL
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL
		fmt.Fprint(w, `{"code":"Ok","routes":[{
			"distance": 233400,
			"duration": 12600,
			"geometry": {"type":"LineString","coordinates":[[77.2,28.6],[77.6,27.9],[78.0,27.2]]}
		}]}`)
	})

	d, err := c.Route(context.Background(), Coord{Lat: 28.6, Lng: 77.2}, Coord{Lat: 27.2, Lng: 78.0})
	require.NoError(err)
	require.Equal("/route/v1/driving/77.200000,28.600000;78.000000,27.200000", got.Path)
	require.Equal("full", got.Query().Get("overview"))
	require.Equal("geojson", got.Query().Get("geometries"))
	require.Equal([]Coord{{28.6, 77.2}, {27.9, 77.6}, {27.2, 78.0}}, d.Geometry)
	require.Equal(233.4, d.DistanceKm())
	require.Equal(3.5, d.DurationHours())
	require.Equal(210*time.Minute, d.Duration())
	require.InDelta(2334.0, d.Cost(DefaultCostPerKm), 1e-9)
}

func TestRoute_none(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
	})

	_, err := c.Route(context.Background(), Coord{}, Coord{Lat: 1, Lng: 1})
	require.ErrorIs(t, err, ErrNoRoute)
	require.Contains(t, err.Error(), `"NoRoute"`)
}

func TestSampleIndexes(t *testing.T) {
	cases := []struct {
		N        int
		Expected []int
	}{
		{0, nil},
		{10, nil},
		{11, []int{10}},
		{100, []int{10, 40, 70}},
		{1000, []int{10, 110, 210, 310, 410, 510, 610, 710, 810, 910}},
	}

	for _, tt := range cases {
		t.Run(strconv.Itoa(tt.N), func(t *testing.T) {
			require.Equal(t, tt.Expected, sampleIndexes(tt.N))
		})
	}
}

func TestWaypoints(t *testing.T) {
	require := require.New(t)

	// Points 0..99 with latitude i. Sampled indexes are 10, 40 and 70.
	geometry := make([]Coord, 100)
	for i := range geometry {
		geometry[i] = Coord{Lat: float64(i), Lng: 1}
	}

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("lat") {
		case "10":
			fmt.Fprint(w, `{"address":{"city":"Mathura"}}`)
		case "40":
			// A failing lookup doesn't stop the rest.
			w.WriteHeader(500)
		case "70":
			fmt.Fprint(w, `{"address":{"town":"Mathura"}}`)
		}
	})

	towns, err := c.Waypoints(context.Background(), geometry)
	require.NoError(err)
	require.Equal([]Town{{Name: "Mathura", Coord: Coord{Lat: 10, Lng: 1}}}, towns)
}

func TestWaypoints_cancel(t *testing.T) {
	require := require.New(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"address":{"city":"Agra"}}`)
	}))
	defer srv.Close()

	c := New(
		WithHTTPClient(srv.Client()),
		WithNominatimURL(srv.URL),
		WithDelay(time.Hour),
	)

	// The first lookup happens right away, the second would wait an hour.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	towns, err := c.Waypoints(ctx, make([]Coord, 1000))
	require.ErrorIs(err, context.DeadlineExceeded)
	require.Equal([]Town{{Name: "Agra"}}, towns)
	require.Equal(int32(1), atomic.LoadInt32(&calls))
}
