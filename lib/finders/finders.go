// Package finders defines the contract shared by every parking-violation
// provider integration: the normalized violation record, the Finder
// interface and the browser-like HTTP session client they all build on.
package finders

import (
	"context"
	"fmt"
)

// Query is the subject of a violation search.
type Query struct {
	Plate string
	State string
}

// Finder is one provider integration. Find performs whatever multi-step
// protocol the provider requires and returns normalized violations.
// Implementations return errors as values; callers are expected to treat
// a failing finder as yielding no results rather than aborting a batch.
type Finder interface {
	Name() string
	Link() string
	Find(ctx context.Context, query Query) ([]ParkingViolation, error)
}

// FindError carries the provider and query context of a failed find,
// so a batch run can report which provider broke for which plate.
type FindError struct {
	Finder string
	Plate  string
	State  string
	Err    error
}

func (e *FindError) Error() string {
	return fmt.Sprintf("%s: find plate=%s state=%s: %s", e.Finder, e.Plate, e.State, e.Err)
}

func (e *FindError) Unwrap() error {
	return e.Err
}
