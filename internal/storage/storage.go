// Package storage defines the Users interface: the contract any source of
// user records must satisfy for the fetch simulation to read from it.
//
// The fetcher depends only on this interface, so tests can hand it a
// small fixture and the walk-through can hand it the seeded store.
package storage

import (
	"context"

	"github.com/aasma0/fundamentals/internal/types"
)

// Users is the read side of a user source.
// Any type with this method satisfies the interface implicitly.
type Users interface {
	// GetUsers returns every known user. Returns an empty slice (not nil)
	// when there are none.
	GetUsers(ctx context.Context) ([]types.User, error)
}
