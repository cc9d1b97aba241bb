// Package demo wires the examples together into a runnable walk-through.
//
// Each Run* method exercises one idea and prints its result through the
// response helpers. The three fetch consumers show the same simulated
// call handled in two styles:
//
//	RunPromise            callbacks registered with Then / Catch
//	RunAsync              blocking Await, error checked inline
//	RunWithErrorHandling  same as RunAsync, plus validation of the result
//
// A fetch rejection is "caught": it is logged and printed, never returned.
// Only failures to write output, or a cancelled context, surface as errors.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aasma0/fundamentals/internal/collections"
	"github.com/aasma0/fundamentals/internal/counter"
	"github.com/aasma0/fundamentals/internal/fetch"
	"github.com/aasma0/fundamentals/internal/people"
	"github.com/aasma0/fundamentals/internal/types"
	"github.com/aasma0/fundamentals/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// Runner prints example results to out.
type Runner struct {
	fetcher *fetch.Fetcher
	log     *slog.Logger

	mu  sync.Mutex // serialises writes from concurrent fetch consumers
	out io.Writer
}

// New returns a Runner. A nil logger means slog.Default().
func New(fetcher *fetch.Fetcher, out io.Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{fetcher: fetcher, out: out, log: log}
}

func (r *Runner) print(v response.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := response.WriteJSON(r.out, v); err != nil {
		return fmt.Errorf("demo: write %s: %w", v.Example, err)
	}
	return nil
}

// RunAll runs every example: the fetches concurrently, the rest in order.
func (r *Runner) RunAll(ctx context.Context) error {
	if err := r.RunCounter(ctx); err != nil {
		return err
	}
	if err := r.RunCollections(ctx); err != nil {
		return err
	}
	if err := r.RunPeople(ctx); err != nil {
		return err
	}
	return r.RunFetches(ctx)
}

// RunFetches starts all three fetch consumers at once and waits for them.
func (r *Runner) RunFetches(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.RunPromise(gctx) })
	g.Go(func() error { return r.RunAsync(gctx) })
	g.Go(func() error { return r.RunWithErrorHandling(gctx) })
	return g.Wait()
}

// RunPromise consumes the fetch through Then / Catch callbacks.
func (r *Runner) RunPromise(ctx context.Context) error {
	const name = "fetchData.then"

	done := make(chan error, 1)
	r.fetcher.Start(ctx).
		Then(func(users []types.User) {
			r.log.Info("fetch resolved", slog.String("example", name), slog.Int("users", len(users)))
			done <- r.print(response.OK(name, users))
		}).
		Catch(func(err error) {
			if ctx.Err() != nil {
				done <- ctx.Err()
				return
			}
			r.log.Error("fetch rejected", slog.String("example", name), slog.String("error", err.Error()))
			done <- r.print(response.GeneralError(name, err))
		})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunAsync awaits the fetch and handles the error inline.
func (r *Runner) RunAsync(ctx context.Context) error {
	const name = "fetchDataAsync"

	users, err := r.fetcher.Start(ctx).Await(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.log.Error("fetch failed", slog.String("example", name), slog.String("error", err.Error()))
		return r.print(response.GeneralError(name, err))
	}

	return r.print(response.OK(name, users))
}

// RunWithErrorHandling awaits the fetch, then validates every record
// before printing it. Only ErrFetchFailed is treated as expected.
func (r *Runner) RunWithErrorHandling(ctx context.Context) error {
	const name = "fetchDataWithErrorHandling"

	users, err := r.fetcher.Fetch(ctx)
	switch {
	case errors.Is(err, fetch.ErrFetchFailed):
		r.log.Warn("simulated fetch failure", slog.String("example", name))
		return r.print(response.GeneralError(name, err))
	case err != nil:
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.log.Error("unexpected fetch error", slog.String("example", name), slog.String("error", err.Error()))
		return r.print(response.GeneralError(name, err))
	}

	for _, u := range users {
		if err := types.Validate(u); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return r.print(response.ValidationError(name, verrs))
			}
			return r.print(response.GeneralError(name, err))
		}
	}

	return r.print(response.OK(name, users))
}

// RunCounter increments a fresh counter three times and prints the count.
func (r *Runner) RunCounter(context.Context) error {
	c := counter.New()
	for i := 0; i < 3; i++ {
		c.Increment()
	}
	r.log.Debug("counter incremented", slog.Int("count", c.GetCount()))
	return r.print(response.OK("createCounter", c.GetCount()))
}

// SampleNumbers is the input the number transforms run over.
var SampleNumbers = []int{5, 12, 8, 130, 44, 3, 16}

// SampleUsers is the input the user transforms run over.
var SampleUsers = []types.User{
	{ID: 1, Name: "Alice", Age: 25, Hobbies: []string{"reading", "chess"}},
	{ID: 2, Name: "Bob", Age: 30, Hobbies: []string{"cycling", "reading"}},
	{ID: 3, Name: "Charlie", Age: 35, Hobbies: []string{"chess", "hiking"}},
}

// RunCollections prints every slice transform over the sample data.
func (r *Runner) RunCollections(context.Context) error {
	found, ok := collections.FindNumber(SampleNumbers)
	var findResult any
	if ok {
		findResult = found
	}

	results := []response.Response{
		response.OK("processData", collections.ProcessData(SampleNumbers, func(n int) string {
			return fmt.Sprintf("#%d", n)
		})),
		response.OK("doubleNumbers", collections.DoubleNumbers(SampleNumbers)),
		response.OK("filterNumbers", collections.FilterNumbers(SampleNumbers)),
		response.OK("findNumber", findResult),
		response.OK("sumNumbers", collections.SumNumbers(SampleNumbers)),
		response.OK("transformUsers", collections.TransformUsers(SampleUsers)),
		response.OK("uniqueHobbies", collections.UniqueHobbies(SampleUsers)),
	}

	for _, res := range results {
		if err := r.print(res); err != nil {
			return err
		}
	}
	return nil
}

// RunPeople prints what a Person and a Student say about themselves.
func (r *Runner) RunPeople(context.Context) error {
	p := people.NewPerson("Alice", 25)
	s := people.NewStudent("Bob", 20, "A")

	results := []response.Response{
		response.OK("person.describe", p.Describe()),
		response.OK("student.describe", s.Describe()),
		response.OK("student.study", s.Study()),
	}

	for _, res := range results {
		if err := r.print(res); err != nil {
			return err
		}
	}
	return nil
}
