package routemapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLocations(t *testing.T) {
	cases := []struct {
		Name     string
		Input    string
		Expected []Location
		Err      []string
	}{
		{
			"basic",
			"name,longitude,latitude\nDelhi,77.2,28.6\nAgra, 78.0 ,27.1\n",
			[]Location{
				{Name: "Delhi", Lng: 77.2, Lat: 28.6},
				{Name: "Agra", Lng: 78.0, Lat: 27.1},
			},
			nil,
		},

		{
			"header only",
			"name,longitude,latitude\n",
			nil,
			nil,
		},

		{
			"empty",
			"",
			nil,
			nil,
		},

		{
			"blank lines are skipped",
			"name,longitude,latitude\n\nDelhi,77.2,28.6\n\n",
			[]Location{{Name: "Delhi", Lng: 77.2, Lat: 28.6}},
			nil,
		},

		{
			"bad rows are all reported",
			"name,longitude,latitude\nDelhi,east,28.6\nAgra,78.0\n,1,2\nJaipur,75.7,north\n",
			nil,
			[]string{
				`line 2: invalid longitude "east"`,
				"line 3: expected 3 fields, got 2",
				"line 4: empty location name",
				`line 5: invalid latitude "north"`,
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			actual, err := ReadLocations(strings.NewReader(tt.Input))
			if len(tt.Err) > 0 {
				require.Error(err)
				for _, msg := range tt.Err {
					require.Contains(err.Error(), msg)
				}
				return
			}

			require.NoError(err)
			require.Equal(tt.Expected, actual)
		})
	}
}

func TestReadRoutes(t *testing.T) {
	cases := []struct {
		Name     string
		Input    string
		Expected []Route
		Err      []string
	}{
		{
			"basic",
			"source,destination,distance,cost\nDelhi,Agra,233,650\nMumbai,Pune,148,320.5\n",
			[]Route{
				{From: "Delhi", To: "Agra", Distance: 233, Cost: 650},
				{From: "Mumbai", To: "Pune", Distance: 148, Cost: 320.5},
			},
			nil,
		},

		{
			"bad numbers",
			"source,destination,distance,cost\nDelhi,Agra,far,650\nDelhi,Agra,1,free\n",
			nil,
			[]string{
				`line 2: invalid distance "far"`,
				`line 3: invalid cost "free"`,
			},
		},

		{
			"malformed quote",
			"source,destination,distance,cost\n\"Delhi,Agra,1,2\n",
			nil,
			[]string{"extraneous or missing"},
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			actual, err := ReadRoutes(strings.NewReader(tt.Input))
			if len(tt.Err) > 0 {
				require.Error(err)
				for _, msg := range tt.Err {
					require.Contains(err.Error(), msg)
				}
				return
			}

			require.NoError(err)
			require.Equal(tt.Expected, actual)
		})
	}
}

func TestFromCSV(t *testing.T) {
	require := require.New(t)

	p, err := FromCSV(
		strings.NewReader("name,longitude,latitude\nA,0,0\nB,0,1\nC,0,2\n"),
		strings.NewReader("source,destination,distance,cost\nA,B,5,1\nB,C,3,1\nA,C,10,1\n"),
	)
	require.NoError(err)

	path, err := p.ShortestPath("A", "C")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, path.Names())
	require.Equal(8.0, path.Distance)
}

func TestFromCSV_errors(t *testing.T) {
	require := require.New(t)

	_, err := FromCSV(
		strings.NewReader("name,longitude,latitude\nA,x,0\n"),
		strings.NewReader("source,destination,distance,cost\nA,B,y,1\n"),
	)
	require.Error(err)

	var lerr *LoadError
	require.True(errors.As(err, &lerr))
	require.Contains(err.Error(), "locations: ")
	require.Contains(err.Error(), "routes: ")

	// Parsing succeeds but a route references a missing city.
	_, err = FromCSV(
		strings.NewReader("name,longitude,latitude\nA,0,0\n"),
		strings.NewReader("source,destination,distance,cost\nA,B,1,1\n"),
	)
	require.ErrorIs(err, ErrUnknownLocation)
}

func TestBundled(t *testing.T) {
	require := require.New(t)

	p, err := Bundled()
	require.NoError(err)
	require.Len(p.Locations(), 20)

	cases := []struct {
		Name     string
		From, To string
		Filters  []RouteFilter
		Stops    []string
		Distance float64
	}{
		{
			"delhi to mumbai",
			"Delhi", "Mumbai",
			nil,
			[]string{"Delhi", "Jaipur", "Indore", "Mumbai"},
			1471,
		},

		{
			"delhi to mumbai avoiding indore",
			"Delhi", "Mumbai",
			[]RouteFilter{FilterAvoid("Indore")},
			[]string{"Delhi", "Jaipur", "Ahmedabad", "Mumbai"},
			1481,
		},

		{
			"expressway",
			"Mumbai", "Pune",
			nil,
			[]string{"Mumbai", "Pune"},
			148,
		},

		{
			"old highway when the expressway costs too much",
			"Pune", "Mumbai",
			[]RouteFilter{FilterMaxCost(300)},
			[]string{"Pune", "Mumbai"},
			155,
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			path, err := p.ShortestPath(tt.From, tt.To, tt.Filters...)
			require.NoError(err)
			require.Equal(tt.Stops, path.Names())
			require.Equal(tt.Distance, path.Distance)
		})
	}
}
