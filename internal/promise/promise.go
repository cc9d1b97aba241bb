// Package promise provides a small generic future: a value that will be
// available later, or an error explaining why it never will be.
//
// A Promise is settled exactly once by the function passed to New, which
// runs in its own goroutine. Consumers either block on Await (the
// "await" style) or register callbacks with Then and Catch (the
// "then/catch" style). Both styles observe the same single result.
package promise

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Promise holds the eventual result of one asynchronous call.
type Promise[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	value     T
	err       error
	onFulfill []func(T)
	onReject  []func(error)
}

// New starts fn in a goroutine and returns a Promise for its result.
// fn receives ctx unchanged; cancelling ctx is how a caller abandons it.
func New[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}

	go func() {
		v, err := fn(ctx)
		p.settle(v, err)
	}()

	return p
}

// Resolved returns a Promise already fulfilled with v.
func Resolved[T any](v T) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	p.settle(v, nil)
	return p
}

// Rejected returns a Promise already rejected with err.
func Rejected[T any](err error) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	var zero T
	p.settle(zero, err)
	return p
}

func (p *Promise[T]) settle(v T, err error) {
	p.mu.Lock()
	p.value, p.err = v, err
	fulfill, reject := p.onFulfill, p.onReject
	p.onFulfill, p.onReject = nil, nil
	close(p.done)
	p.mu.Unlock()

	// Callbacks run outside the lock so they may call Await or Then.
	if err != nil {
		for _, f := range reject {
			f(err)
		}
		return
	}
	for _, f := range fulfill {
		f(v)
	}
}

// Done is closed once the Promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the Promise settles or ctx is done, whichever is first.
// A ctx error does not settle the Promise; another caller may still await it.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then registers f to run with the value if the Promise fulfills.
// If it already has, f runs immediately on the calling goroutine.
func (p *Promise[T]) Then(f func(T)) *Promise[T] {
	p.mu.Lock()
	select {
	case <-p.done:
		v, err := p.value, p.err
		p.mu.Unlock()
		if err == nil {
			f(v)
		}
	default:
		p.onFulfill = append(p.onFulfill, f)
		p.mu.Unlock()
	}
	return p
}

// Catch registers f to run with the error if the Promise rejects.
// If it already has, f runs immediately on the calling goroutine.
func (p *Promise[T]) Catch(f func(error)) *Promise[T] {
	p.mu.Lock()
	select {
	case <-p.done:
		err := p.err
		p.mu.Unlock()
		if err != nil {
			f(err)
		}
	default:
		p.onReject = append(p.onReject, f)
		p.mu.Unlock()
	}
	return p
}

// All awaits every promise and returns their values in order.
// The first rejection cancels the wait on the rest and is returned.
func All[T any](ctx context.Context, promises ...*Promise[T]) ([]T, error) {
	values := make([]T, len(promises))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range promises {
		g.Go(func() error {
			v, err := p.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
