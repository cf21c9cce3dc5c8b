// Command routemapper finds a route between two cities and writes it as an
// HTML map.
//
//	routemapper route -from Delhi -to Mumbai [-cities c.csv -routes r.csv] [-out route.html]
//	routemapper drive -from Delhi -to Agra [-out route.html]
//	routemapper serve [-addr :8080] [-cities c.csv -routes r.csv]
//
// The log level is read from ROUTEMAPPER_LOG (trace, debug, info, warn,
// error). ROUTEMAPPER_NOMINATIM_URL and ROUTEMAPPER_OSRM_URL override the
// services used by drive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	routemapper "github.com/hashicorp/go-routemapper"
	"github.com/hashicorp/go-routemapper/internal/osm"
	"github.com/hashicorp/go-routemapper/internal/server"
)

const usage = `Usage: routemapper <command> [options]

Commands:
    route    shortest route over the city graph
    drive    driving route from OpenStreetMap
    serve    serve routes and maps over HTTP
`

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "routemapper",
		Level: hclog.LevelFromString(os.Getenv("ROUTEMAPPER_LOG")),
	})
	hclog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "route":
		err = runRoute(logger, args)
	case "drive":
		err = runDrive(ctx, logger, args)
	case "serve":
		err = runServe(ctx, logger, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// graphFlags are the flags shared by commands that use the city graph.
type graphFlags struct {
	cities string
	routes string
}

func (g *graphFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.cities, "cities", "", "cities CSV (name,longitude,latitude); bundled data if empty")
	fs.StringVar(&g.routes, "routes", "", "routes CSV (source,destination,distance,cost); bundled data if empty")
}

func (g *graphFlags) planner(logger hclog.Logger) (*routemapper.Planner, error) {
	opts := []routemapper.Option{routemapper.WithLogger(logger.Named("planner"))}
	if g.cities == "" && g.routes == "" {
		return routemapper.Bundled(opts...)
	}
	if g.cities == "" || g.routes == "" {
		return nil, errors.New("-cities and -routes must be given together")
	}

	cities, err := os.Open(g.cities)
	if err != nil {
		return nil, err
	}
	defer cities.Close()

	routes, err := os.Open(g.routes)
	if err != nil {
		return nil, err
	}
	defer routes.Close()

	return routemapper.FromCSV(cities, routes, opts...)
}

func runRoute(logger hclog.Logger, args []string) error {
	var gf graphFlags
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	gf.register(fs)
	from := fs.String("from", "", "source city")
	to := fs.String("to", "", "destination city")
	out := fs.String("out", "route.html", "HTML map output file")
	fs.Parse(args)

	p, err := gf.planner(logger)
	if err != nil {
		return err
	}

	path, err := p.ShortestPath(*from, *to)
	if err != nil {
		return err
	}
	if !path.Found() {
		fmt.Println("No route found.")
		return nil
	}

	fmt.Printf("Route: %s (%.0f km, cost %.2f)\n", path, path.Distance, path.Cost)
	return writeFile(*out, func(f *os.File) error {
		return routemapper.RenderMap(f, path)
	})
}

func runDrive(ctx context.Context, logger hclog.Logger, args []string) error {
	fs := flag.NewFlagSet("drive", flag.ExitOnError)
	from := fs.String("from", "", "source place")
	to := fs.String("to", "", "destination place")
	out := fs.String("out", "route.html", "HTML map output file")
	costPerKm := fs.Float64("cost-per-km", osm.DefaultCostPerKm, "cost estimate per kilometre")
	towns := fs.Bool("towns", true, "look up towns along the route")
	fs.Parse(args)

	if *from == "" || *to == "" {
		return errors.New("-from and -to are required")
	}

	opts := []osm.Option{osm.WithLogger(logger.Named("osm"))}
	if v := os.Getenv("ROUTEMAPPER_NOMINATIM_URL"); v != "" {
		opts = append(opts, osm.WithNominatimURL(v))
	}
	if v := os.Getenv("ROUTEMAPPER_OSRM_URL"); v != "" {
		opts = append(opts, osm.WithOSRMURL(v))
	}
	client := osm.New(opts...)

	src, err := client.Geocode(ctx, *from)
	if err != nil {
		return err
	}
	dst, err := client.Geocode(ctx, *to)
	if err != nil {
		return err
	}

	d, err := client.Route(ctx, src, dst)
	if err != nil {
		return err
	}

	m := routemapper.DrivingMap{
		Start:         routemapper.Location{Name: *from, Lat: src.Lat, Lng: src.Lng},
		End:           routemapper.Location{Name: *to, Lat: dst.Lat, Lng: dst.Lng},
		Geometry:      make([][2]float64, len(d.Geometry)),
		DistanceKm:    d.DistanceKm(),
		DurationHours: d.DurationHours(),
		Cost:          d.Cost(*costPerKm),
	}
	for i, c := range d.Geometry {
		m.Geometry[i] = [2]float64{c.Lat, c.Lng}
	}

	if *towns {
		found, err := client.Waypoints(ctx, d.Geometry)
		if err != nil {
			return err
		}
		for _, t := range found {
			m.Towns = append(m.Towns, routemapper.Location{Name: t.Name, Lat: t.Lat, Lng: t.Lng})
		}
	}

	if err := writeFile(*out, func(f *os.File) error {
		return routemapper.RenderDriving(f, m)
	}); err != nil {
		return err
	}

	fmt.Printf("Route map generated: %s (%.2f km, %.2f hr, cost %.2f)\n",
		*out, m.DistanceKm, m.DurationHours, m.Cost)
	return nil
}

func runServe(ctx context.Context, logger hclog.Logger, args []string) error {
	var gf graphFlags
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	gf.register(fs)
	addr := fs.String("addr", ":8080", "listen address")
	fs.Parse(args)

	p, err := gf.planner(logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.NewHandler(p, logger.Named("http")).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// writeFile creates path and calls fn to fill it.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
