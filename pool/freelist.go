// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded free-list recycling for frequently churned objects.

package pool

import "sync"

// FreeList recycles objects through a bounded LIFO stack. Push on a full
// list discards the object so the list never grows past its capacity; Pop
// on an empty list reports a miss and the caller allocates fresh. The zero
// bound disables recycling entirely.
type FreeList[T any] struct {
	mu    sync.Mutex
	stack []T
	cap   int
}

// NewFreeList creates a free list holding at most capacity objects.
func NewFreeList[T any](capacity int) *FreeList[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FreeList[T]{
		stack: make([]T, 0, capacity),
		cap:   capacity,
	}
}

// Pop returns a recycled object, or the zero value and false when empty.
func (fl *FreeList[T]) Pop() (T, bool) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	var zero T
	if len(fl.stack) == 0 {
		return zero, false
	}
	obj := fl.stack[len(fl.stack)-1]
	fl.stack[len(fl.stack)-1] = zero
	fl.stack = fl.stack[:len(fl.stack)-1]
	return obj, true
}

// Push returns an object to the list; reports false when the list is full
// and the object has been dropped for the caller to let go of.
func (fl *FreeList[T]) Push(obj T) bool {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if len(fl.stack) >= fl.cap {
		return false
	}
	fl.stack = append(fl.stack, obj)
	return true
}

// Len returns the number of objects currently held.
func (fl *FreeList[T]) Len() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.stack)
}
