// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package routemapper

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrNoPath is returned when rendering a Path that has no stops.
var ErrNoPath = errors.New("no route found")

// ValidationError is returned by Planner.ShortestPath when a location name
// argument is missing. It is never returned for a name that is simply not
// known; that results in a Path that is not found.
type ValidationError struct {
	// Arg is the name of the offending argument, "from" or "to".
	Arg string

	// Err is the underlying cause.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Arg, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// LoadError is returned when a Planner cannot be built from the given
// locations and routes. Every problem found is reported, not only the first.
//
// Use errors.Is with graph.ErrUnknownLocation or graph.ErrNegativeDistance
// (re-exported as ErrUnknownLocation and ErrNegativeDistance) to check for
// a specific problem.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	var problems []error
	var merr *multierror.Error
	if errors.As(e.Err, &merr) {
		problems = merr.Errors
	} else {
		problems = []error{e.Err}
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%d problem(s) loading route graph:\n", len(problems))
	for _, err := range problems {
		fmt.Fprintf(buf, "  * %s\n", err)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	_ error = (*ValidationError)(nil)
	_ error = (*LoadError)(nil)
)
