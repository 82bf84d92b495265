//go:build go1.18

// Package dynarr provides a growable sequence with asserted bounds.
//
// Array is a thin wrapper over a Go slice that carries the usual sequence
// operations: push, pop, ordered and unordered removal, and insertion at an
// index. Out-of-range indices trip an assertion in debug builds before the
// runtime bounds check does.
//
// An Array is not safe for concurrent use.
package dynarr

import "github.com/flier/memutil/internal/debug"

// Array is a growable sequence of T.
//
// The zero value is an empty sequence ready to use.
type Array[T any] struct {
	elems []T
}

// New returns an empty sequence with room for capacity elements.
func New[T any](capacity int) *Array[T] {
	return &Array[T]{elems: make([]T, 0, capacity)}
}

// Of returns a sequence holding the given values.
func Of[T any](values ...T) *Array[T] {
	a := New[T](len(values))
	a.Append(values...)
	return a
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.elems) }

// Cap returns the capacity before the next growth.
func (a *Array[T]) Cap() int { return cap(a.elems) }

// Empty reports whether the sequence has no elements.
func (a *Array[T]) Empty() bool { return len(a.elems) == 0 }

// Get returns the element at index i.
func (a *Array[T]) Get(i int) T {
	debug.Assert(i >= 0 && i < len(a.elems), "index %d out of range [0, %d)", i, len(a.elems))

	return a.elems[i]
}

// Set stores v at index i.
func (a *Array[T]) Set(i int, v T) {
	debug.Assert(i >= 0 && i < len(a.elems), "index %d out of range [0, %d)", i, len(a.elems))

	a.elems[i] = v
}

// Push appends v and returns its index.
func (a *Array[T]) Push(v T) int {
	a.elems = append(a.elems, v)
	return len(a.elems) - 1
}

// Append appends all values in order.
func (a *Array[T]) Append(values ...T) {
	a.elems = append(a.elems, values...)
}

// Insert places v at index i, shifting later elements up. i may equal Len,
// which appends.
func (a *Array[T]) Insert(i int, v T) {
	debug.Assert(i >= 0 && i <= len(a.elems), "index %d out of range [0, %d]", i, len(a.elems))

	var zero T
	a.elems = append(a.elems, zero)
	copy(a.elems[i+1:], a.elems[i:])
	a.elems[i] = v
}

// Remove deletes and returns the element at index i, shifting later
// elements down.
func (a *Array[T]) Remove(i int) T {
	debug.Assert(i >= 0 && i < len(a.elems), "index %d out of range [0, %d)", i, len(a.elems))

	v := a.elems[i]
	copy(a.elems[i:], a.elems[i+1:])
	a.truncate(len(a.elems) - 1)
	return v
}

// RemoveSwap deletes and returns the element at index i by moving the last
// element into its place. It does not preserve order.
func (a *Array[T]) RemoveSwap(i int) T {
	debug.Assert(i >= 0 && i < len(a.elems), "index %d out of range [0, %d)", i, len(a.elems))

	v := a.elems[i]
	a.elems[i] = a.elems[len(a.elems)-1]
	a.truncate(len(a.elems) - 1)
	return v
}

// Pop deletes and returns the last element.
func (a *Array[T]) Pop() T {
	debug.Assert(len(a.elems) > 0, "pop of an empty sequence")

	v := a.elems[len(a.elems)-1]
	a.truncate(len(a.elems) - 1)
	return v
}

// Peek returns the last element without removing it.
func (a *Array[T]) Peek() T {
	debug.Assert(len(a.elems) > 0, "peek of an empty sequence")

	return a.elems[len(a.elems)-1]
}

// Clear removes every element, keeping the capacity.
func (a *Array[T]) Clear() {
	a.truncate(0)
}

// Reserve ensures room for at least n more elements without growing.
func (a *Array[T]) Reserve(n int) {
	if free := cap(a.elems) - len(a.elems); free < n {
		elems := make([]T, len(a.elems), len(a.elems)+n)
		copy(elems, a.elems)
		a.elems = elems
	}
}

// Resize sets the length to n, zero-filling new elements or dropping the
// tail.
func (a *Array[T]) Resize(n int) {
	debug.Assert(n >= 0, "negative length %d", n)

	if n <= len(a.elems) {
		a.truncate(n)
		return
	}

	a.Reserve(n - len(a.elems))
	a.elems = a.elems[:n]
}

// Raw returns the underlying slice. It stays valid until the next growth.
func (a *Array[T]) Raw() []T { return a.elems }

// truncate shortens to n elements, zeroing the dropped tail so it does not
// pin garbage.
func (a *Array[T]) truncate(n int) {
	var zero T
	for i := n; i < len(a.elems); i++ {
		a.elems[i] = zero
	}
	a.elems = a.elems[:n]
}
