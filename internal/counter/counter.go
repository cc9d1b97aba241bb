// Package counter demonstrates a closure: two functions sharing a variable
// that nothing else in the program can reach.
//
// New declares count as a local, then returns two function values that
// both capture it. Once New returns, the only way to read or change
// count is through those functions.
package counter

import "sync"

// Counter is a pair of closures over the same private count.
type Counter struct {
	Increment func()
	GetCount  func() int
}

// New returns a Counter starting at zero. It is safe for concurrent use.
func New() Counter {
	var (
		mu    sync.Mutex
		count int
	)

	return Counter{
		Increment: func() {
			mu.Lock()
			count++
			mu.Unlock()
		},
		GetCount: func() int {
			mu.Lock()
			defer mu.Unlock()
			return count
		},
	}
}
