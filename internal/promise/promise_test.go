package promise

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

func TestAwait_Fulfilled(t *testing.T) {
	p := New(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestAwait_Rejected(t *testing.T) {
	p := New(context.Background(), func(context.Context) (string, error) {
		return "", errBoom
	})

	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestAwait_ContextDone(t *testing.T) {
	release := make(chan struct{})
	p := New(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The promise itself is still pending and settles normally later.
	close(release)
	v, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestThenCatch_BeforeSettle(t *testing.T) {
	release := make(chan struct{})
	p := New(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var got int
	caught := false
	p.Then(func(v int) {
		got = v
		wg.Done()
	}).Catch(func(error) {
		caught = true
	})

	close(release)
	wg.Wait()

	assert.Equal(t, 7, got)
	assert.False(t, caught)
}

func TestThenCatch_AfterSettle(t *testing.T) {
	var fulfilled, rejected []string

	Resolved("ok").
		Then(func(v string) { fulfilled = append(fulfilled, v) }).
		Catch(func(err error) { rejected = append(rejected, err.Error()) })

	Rejected[string](errBoom).
		Then(func(v string) { fulfilled = append(fulfilled, v) }).
		Catch(func(err error) { rejected = append(rejected, err.Error()) })

	assert.Equal(t, []string{"ok"}, fulfilled)
	assert.Equal(t, []string{"boom"}, rejected)
}

func TestDone(t *testing.T) {
	p := Resolved(1)

	select {
	case <-p.Done():
	default:
		t.Fatal("expected resolved promise to be done")
	}
}

func TestAll(t *testing.T) {
	ctx := context.Background()

	values, err := All(ctx, Resolved(1), Resolved(2), Resolved(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)

	_, err = All(ctx, Resolved(1), Rejected[int](errBoom))
	assert.ErrorIs(t, err, errBoom)
}
