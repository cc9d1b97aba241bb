package demo

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aasma0/fundamentals/internal/fetch"
	"github.com/aasma0/fundamentals/internal/storage/memory"
	"github.com/aasma0/fundamentals/internal/types"
	"github.com/aasma0/fundamentals/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunner(t *testing.T, o fetch.Outcome, users ...types.User) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	f := fetch.New(memory.New(users...), fetch.WithDelay(0), fetch.WithOutcome(o), fetch.WithLogger(quietLogger()))
	return New(f, &buf, quietLogger()), &buf
}

// lines decodes one response per output line, keyed by example name.
func lines(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()
	out := make(map[string]map[string]any)
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out[m["example"].(string)] = m
	}
	require.NoError(t, sc.Err())
	return out
}

func TestRunFetches_Resolved(t *testing.T) {
	r, buf := newRunner(t, fetch.Always())

	require.NoError(t, r.RunFetches(context.Background()))

	got := lines(t, buf)
	for _, name := range []string{"fetchData.then", "fetchDataAsync", "fetchDataWithErrorHandling"} {
		require.Contains(t, got, name)
		assert.Equal(t, response.StatusOK, got[name]["status"], name)
		assert.Len(t, got[name]["data"], 3, name)
	}
}

func TestRunFetches_RejectedIsCaught(t *testing.T) {
	r, buf := newRunner(t, fetch.Never())

	require.NoError(t, r.RunFetches(context.Background()))

	got := lines(t, buf)
	assert.Len(t, got, 3)
	for name, res := range got {
		assert.Equal(t, response.StatusError, res["status"], name)
		assert.Equal(t, "failed to fetch data", res["error"], name)
	}
}

func TestRunWithErrorHandling_InvalidRecord(t *testing.T) {
	r, buf := newRunner(t, fetch.Always(), types.User{ID: 9, Name: "", Age: 4})

	require.NoError(t, r.RunWithErrorHandling(context.Background()))

	got := lines(t, buf)["fetchDataWithErrorHandling"]
	assert.Equal(t, response.StatusError, got["status"])
	assert.Equal(t, "field Name is required", got["error"])
}

func TestRunPromise_ContextCancelled(t *testing.T) {
	var buf bytes.Buffer
	f := fetch.New(memory.New(), fetch.WithDelay(time.Hour), fetch.WithOutcome(fetch.Always()), fetch.WithLogger(quietLogger()))
	r := New(f, &buf, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := r.RunPromise(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, buf.Len())
}

func TestRunCollections(t *testing.T) {
	r, buf := newRunner(t, fetch.Always())

	require.NoError(t, r.RunCollections(context.Background()))

	got := lines(t, buf)
	assert.Equal(t, []any{"#5", "#12", "#8", "#130", "#44", "#3", "#16"}, got["processData"]["data"])
	assert.Equal(t, []any{10.0, 24.0, 16.0, 260.0, 88.0, 6.0, 32.0}, got["doubleNumbers"]["data"])
	assert.Equal(t, []any{12.0, 130.0, 44.0, 16.0}, got["filterNumbers"]["data"])
	assert.Equal(t, 130.0, got["findNumber"]["data"])
	assert.Equal(t, 218.0, got["sumNumbers"]["data"])
	assert.Equal(t, []any{"reading", "chess", "cycling", "hiking"}, got["uniqueHobbies"]["data"])
	assert.Len(t, got["transformUsers"]["data"], 3)
}

func TestRunPeopleAndCounter(t *testing.T) {
	r, buf := newRunner(t, fetch.Always())
	ctx := context.Background()

	require.NoError(t, r.RunCounter(ctx))
	require.NoError(t, r.RunPeople(ctx))

	got := lines(t, buf)
	assert.Equal(t, 3.0, got["createCounter"]["data"])
	assert.Equal(t, "Alice is 25 years old.", got["person.describe"]["data"])
	assert.Equal(t, "Bob is 20 years old.", got["student.describe"]["data"])
	assert.Equal(t, "Bob is studying.", got["student.study"]["data"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunAll_WriteError(t *testing.T) {
	f := fetch.New(memory.New(), fetch.WithDelay(0), fetch.WithOutcome(fetch.Always()), fetch.WithLogger(quietLogger()))
	r := New(f, failingWriter{}, quietLogger())

	err := r.RunAll(context.Background())
	assert.ErrorContains(t, err, "disk full")
}
