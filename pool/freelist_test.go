// File: pool/freelist_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/aniketawati/pulseaudio-new-modules/pool"
)

func TestFreeListRecycles(t *testing.T) {
	fl := pool.NewFreeList[*int](4)

	if _, ok := fl.Pop(); ok {
		t.Fatal("Pop() on empty list must miss")
	}

	v := new(int)
	if !fl.Push(v) {
		t.Fatal("Push() within bound must succeed")
	}
	got, ok := fl.Pop()
	if !ok || got != v {
		t.Fatalf("Pop() = %v, %v; want recycled object", got, ok)
	}
}

func TestFreeListBound(t *testing.T) {
	fl := pool.NewFreeList[int](2)

	if !fl.Push(1) || !fl.Push(2) {
		t.Fatal("pushes within bound must succeed")
	}
	if fl.Push(3) {
		t.Fatal("Push() past the bound must drop the object")
	}
	if fl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fl.Len())
	}
}

func TestFreeListLIFO(t *testing.T) {
	fl := pool.NewFreeList[int](8)
	fl.Push(1)
	fl.Push(2)

	if v, _ := fl.Pop(); v != 2 {
		t.Fatalf("Pop() = %d, want most recently pushed", v)
	}
	if v, _ := fl.Pop(); v != 1 {
		t.Fatalf("Pop() = %d, want 1", v)
	}
}

func TestFreeListZeroBound(t *testing.T) {
	fl := pool.NewFreeList[int](0)
	if fl.Push(1) {
		t.Fatal("zero-bound list must drop every push")
	}
}
