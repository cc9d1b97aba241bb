// Package memory provides an in-process implementation of storage.Users.
//
// There is no file and no database: the records live in a slice guarded
// by a mutex, and every read hands back a deep copy so callers can append
// to or edit what they receive without changing the store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aasma0/fundamentals/internal/types"
)

// Seed is the fixed list the simulated fetch resolves with.
func Seed() []types.User {
	return []types.User{
		{ID: 1, Name: "Alice", Age: 25},
		{ID: 2, Name: "Bob", Age: 30},
		{ID: 3, Name: "Charlie", Age: 35},
	}
}

// Store is the concrete implementation of storage.Users.
type Store struct {
	mu    sync.RWMutex
	users []types.User
}

// New returns a Store holding users. With no arguments it holds Seed().
func New(users ...types.User) *Store {
	if len(users) == 0 {
		users = Seed()
	}
	return &Store{users: clone(users)}
}

// GetUsers returns a copy of every stored user.
func (s *Store) GetUsers(ctx context.Context) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GetUsers: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.users), nil
}

func clone(users []types.User) []types.User {
	out := make([]types.User, 0, len(users))
	for _, u := range users {
		if u.Hobbies != nil {
			u.Hobbies = append([]string(nil), u.Hobbies...)
		}
		out = append(out, u)
	}
	return out
}
