package routemapper

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

//go:embed data/cities.csv data/routes.csv
var bundled embed.FS

// ReadLocations parses locations from CSV. The first record is a header
// and is skipped. Columns are name, longitude, latitude.
//
// Every record is checked and all problems are returned together.
func ReadLocations(r io.Reader) ([]Location, error) {
	var result []Location
	err := readRecords(r, 3, func(fields []string) error {
		lng, err := parseFloat("longitude", fields[1])
		if err != nil {
			return err
		}
		lat, err := parseFloat("latitude", fields[2])
		if err != nil {
			return err
		}
		if fields[0] == "" {
			return errors.New("empty location name")
		}

		result = append(result, Location{Name: fields[0], Lng: lng, Lat: lat})
		return nil
	})

	return result, err
}

// ReadRoutes parses routes from CSV. The first record is a header and is
// skipped. Columns are source, destination, distance, cost.
func ReadRoutes(r io.Reader) ([]Route, error) {
	var result []Route
	err := readRecords(r, 4, func(fields []string) error {
		distance, err := parseFloat("distance", fields[2])
		if err != nil {
			return err
		}
		cost, err := parseFloat("cost", fields[3])
		if err != nil {
			return err
		}

		result = append(result, Route{
			From:     fields[0],
			To:       fields[1],
			Distance: distance,
			Cost:     cost,
		})
		return nil
	})

	return result, err
}

// FromCSV builds a Planner from a locations CSV and a routes CSV. See
// ReadLocations and ReadRoutes for the formats. Any additional opts are
// applied after the CSV data.
func FromCSV(locations, routes io.Reader, opts ...Option) (*Planner, error) {
	var err error
	ls, lerr := ReadLocations(locations)
	if lerr != nil {
		err = multierror.Append(err, fmt.Errorf("locations: %w", lerr))
	}
	rs, rerr := ReadRoutes(routes)
	if rerr != nil {
		err = multierror.Append(err, fmt.Errorf("routes: %w", rerr))
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	return New(append([]Option{WithLocations(ls...), WithRoutes(rs...)}, opts...)...)
}

// Bundled returns a Planner over the built-in set of Indian cities and the
// highways between them. Distances are in kilometres and costs in rupees.
func Bundled(opts ...Option) (*Planner, error) {
	cities, err := bundled.Open("data/cities.csv")
	if err != nil {
		return nil, err
	}
	defer cities.Close()

	routes, err := bundled.Open("data/routes.csv")
	if err != nil {
		return nil, err
	}
	defer routes.Close()

	return FromCSV(cities, routes, opts...)
}

// readRecords calls fn for every record after the header. Errors from fn
// are collected with the line number they came from.
func readRecords(r io.Reader, fields int, fn func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var result error
	header := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed quote leaves the reader in an unknown state so
			// there is no point continuing.
			return multierror.Append(result, err)
		}

		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(record) != fields {
			result = multierror.Append(result, fmt.Errorf(
				"line %d: expected %d fields, got %d", line, fields, len(record)))
			continue
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if err := fn(record); err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", line, err))
		}
	}

	return result
}

func parseFloat(field, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, v)
	}

	return f, nil
}
