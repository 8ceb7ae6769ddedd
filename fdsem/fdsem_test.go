// File: fdsem/fdsem_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fdsem_test

import (
	"sync"
	"testing"
	"time"

	"github.com/aniketawati/pulseaudio-new-modules/fdsem"
)

func TestPostWaitAcrossGoroutines(t *testing.T) {
	s, err := fdsem.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.Wait(); err != nil {
			t.Errorf("Wait() error: %v", err)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	if err := s.Post(); err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by post")
	}
}

func TestPostsCoalesce(t *testing.T) {
	s, err := fdsem.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post()
		}()
	}
	wg.Wait()

	// All posts collapse into one pending wakeup.
	if s.BeforePoll() {
		t.Fatal("BeforePoll must veto when a post is pending")
	}
	if !s.BeforePoll() {
		t.Fatal("pending post must be consumed by the first check")
	}
}

func TestBeforePollWithoutPost(t *testing.T) {
	s, err := fdsem.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if !s.BeforePoll() {
		t.Fatal("BeforePoll must allow blocking on an unsignalled semaphore")
	}
}

func TestAfterPollClearsPending(t *testing.T) {
	s, err := fdsem.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if err := s.Post(); err != nil {
		t.Fatalf("Post() error: %v", err)
	}
	s.AfterPoll()
	if !s.BeforePoll() {
		t.Fatal("AfterPoll must consume the pending post")
	}
}

func TestPostAfterClose(t *testing.T) {
	s, err := fdsem.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := s.Post(); err != fdsem.ErrClosed {
		t.Fatalf("Post() after close: got %v, want ErrClosed", err)
	}
}
