package routemapper

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Option is an option to New that sets the data or behavior of a Planner.
type Option func(*plannerBuilder) error

type plannerBuilder struct {
	logger    hclog.Logger
	locations []Location
	routes    []Route
}

func newPlannerBuilder(opts ...Option) (*plannerBuilder, error) {
	builder := &plannerBuilder{
		logger: hclog.L(),
	}

	var buildErr error
	for _, opt := range opts {
		if err := opt(builder); err != nil {
			buildErr = multierror.Append(buildErr, err)
		}
	}

	return builder, buildErr
}

// WithLocations adds locations to the planner. A location with the same
// name as an earlier one replaces it.
func WithLocations(ls ...Location) Option {
	return func(b *plannerBuilder) error {
		b.locations = append(b.locations, ls...)
		return nil
	}
}

// WithRoutes adds routes to the planner. Every route must name locations
// that are known once all options are applied.
func WithRoutes(rs ...Route) Option {
	return func(b *plannerBuilder) error {
		b.routes = append(b.routes, rs...)
		return nil
	}
}

// WithLogger sets the logger. The default is hclog.L().
func WithLogger(l hclog.Logger) Option {
	return func(b *plannerBuilder) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}

		b.logger = l
		return nil
	}
}
