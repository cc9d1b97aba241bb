// Package collections holds higher-order slice helpers and the small
// transforms built on them.
//
// HIGHER-ORDER FUNCTIONS
// ──────────────────────
// Map, Filter, Find and Reduce each take a function value as a parameter
// and apply it per element. The named transforms below (DoubleNumbers,
// SumNumbers, TransformUsers, ...) are one-liners over those four:
//
//	DoubleNumbers(xs) == Map(xs, func(n int) int { return n * 2 })
//
// None of them modify their input slice.
package collections

import (
	"github.com/aasma0/fundamentals/internal/types"
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Generic primitives
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new slice holding f applied to each element of xs.
func Map[T, R any](xs []T, f func(T) R) []R {
	out := make([]R, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

// Filter returns the elements of xs for which keep reports true,
// in their original order.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Find returns the first element matching pred. The bool is false when
// nothing matched, in which case the value is T's zero value.
func Find[T any](xs []T, pred func(T) bool) (T, bool) {
	for _, x := range xs {
		if pred(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Reduce folds xs into a single value, starting from initial.
func Reduce[T, A any](xs []T, initial A, f func(acc A, x T) A) A {
	acc := initial
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Number transforms
// ─────────────────────────────────────────────────────────────────────────────

// ProcessData applies callback to every number. The caller decides what
// "processing" means; ProcessData only drives the loop.
func ProcessData[R any](numbers []int, callback func(int) R) []R {
	return Map(numbers, callback)
}

// DoubleNumbers returns each number multiplied by two.
func DoubleNumbers[N Number](numbers []N) []N {
	return Map(numbers, func(n N) N { return n * 2 })
}

// FilterNumbers keeps the numbers that are at least 10.
func FilterNumbers[N Number](numbers []N) []N {
	return Filter(numbers, func(n N) bool { return n >= 10 })
}

// FindNumber returns the first number greater than 15.
func FindNumber[N Number](numbers []N) (N, bool) {
	return Find(numbers, func(n N) bool { return n > 15 })
}

// SumNumbers adds every number. The sum of an empty slice is 0.
func SumNumbers[N Number](numbers []N) N {
	return Reduce(numbers, N(0), func(acc, n N) N { return acc + n })
}

// ─────────────────────────────────────────────────────────────────────────────
// User transforms
// ─────────────────────────────────────────────────────────────────────────────

// TransformUsers indexes users by ID. When two users share an ID the
// later one wins.
func TransformUsers(users []types.User) map[int]types.User {
	return Reduce(users, make(map[int]types.User, len(users)),
		func(acc map[int]types.User, u types.User) map[int]types.User {
			acc[u.ID] = u
			return acc
		})
}

// UniqueHobbies returns every distinct hobby across users, in the order
// each was first seen.
func UniqueHobbies(users []types.User) []string {
	seen := make(map[string]struct{})

	return Reduce(users, []string{}, func(acc []string, u types.User) []string {
		for _, h := range u.Hobbies {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			acc = append(acc, h)
		}
		return acc
	})
}
