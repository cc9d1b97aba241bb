// Package fetch simulates a slow, unreliable network call.
//
// A Fetcher waits a fixed delay and then either resolves with the users
// from its storage.Users source or rejects with ErrFetchFailed. Which of
// the two happens is decided by an Outcome, injected by the caller, so
// tests can pin the result while the CLI can still flip a coin.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/aasma0/fundamentals/internal/promise"
	"github.com/aasma0/fundamentals/internal/storage"
	"github.com/aasma0/fundamentals/internal/types"
	"github.com/google/uuid"
)

// ErrFetchFailed is the simulated rejection.
var ErrFetchFailed = errors.New("failed to fetch data")

// DefaultDelay matches the pause a caller sees when nothing is configured.
const DefaultDelay = 2 * time.Second

// Outcome decides whether a single fetch succeeds.
type Outcome func() bool

// Always is an Outcome that never fails.
func Always() Outcome { return func() bool { return true } }

// Never is an Outcome that always fails.
func Never() Outcome { return func() bool { return false } }

// RandomOutcome succeeds with probability rate. A zero seed draws one from
// the clock; any other seed gives a reproducible sequence.
func RandomOutcome(rate float64, seed int64) Outcome {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))

	return func() bool {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64() < rate
	}
}

// Fetcher is the simulated remote endpoint.
type Fetcher struct {
	source  storage.Users
	delay   time.Duration
	outcome Outcome
	log     *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDelay sets how long each fetch waits before settling.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.delay = d }
}

// WithOutcome replaces the default coin flip.
func WithOutcome(o Outcome) Option {
	return func(f *Fetcher) { f.outcome = o }
}

// WithLogger sets the logger used for per-request logs.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.log = l }
}

// New returns a Fetcher reading from source. Without options it waits
// DefaultDelay and succeeds half the time.
func New(source storage.Users, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:  source,
		delay:   DefaultDelay,
		outcome: RandomOutcome(0.5, 0),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch blocks for the configured delay, then returns the users or
// ErrFetchFailed. A cancelled ctx ends the wait early with ctx.Err().
func (f *Fetcher) Fetch(ctx context.Context) ([]types.User, error) {
	log := f.log.With(slog.String("request_id", uuid.NewString()))
	log.Debug("fetching users", slog.Duration("delay", f.delay))

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Debug("fetch abandoned", slog.String("error", ctx.Err().Error()))
		return nil, fmt.Errorf("fetch.Fetch: %w", ctx.Err())
	case <-timer.C:
	}

	if !f.outcome() {
		log.Debug("fetch rejected")
		return nil, ErrFetchFailed
	}

	users, err := f.source.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch.Fetch: read source: %w", err)
	}

	log.Debug("fetch resolved", slog.Int("users", len(users)))
	return users, nil
}

// Start begins a Fetch in the background and returns its Promise.
func (f *Fetcher) Start(ctx context.Context) *promise.Promise[[]types.User] {
	return promise.New(ctx, f.Fetch)
}
