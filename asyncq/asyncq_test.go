// File: asyncq/asyncq_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package asyncq_test

import (
	"sync"
	"testing"

	"github.com/aniketawati/pulseaudio-new-modules/asyncq"
)

func TestFIFOOrder(t *testing.T) {
	q, err := asyncq.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer q.Close()

	for n := 0; n < 5; n++ {
		if err := q.Push(n); err != nil {
			t.Fatalf("Push(%d) error: %v", n, err)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}

	for n := 0; n < 5; n++ {
		msg, ok := q.TryPop()
		if !ok {
			t.Fatalf("TryPop() empty at %d", n)
		}
		if msg != n {
			t.Fatalf("TryPop() = %v, want %d", msg, n)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("TryPop() on empty queue must report false")
	}
}

func TestBeforePollVetoesWithBacklog(t *testing.T) {
	q, err := asyncq.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer q.Close()

	if !q.BeforePoll() {
		t.Fatal("empty queue must allow blocking")
	}

	q.Push("pending")
	if q.BeforePoll() {
		t.Fatal("queued messages must veto the wait")
	}

	// Consuming the backlog re-enables blocking.
	q.TryPop()
	q.AfterPoll()
	if !q.BeforePoll() {
		t.Fatal("drained queue must allow blocking again")
	}
}

func TestConcurrentProducers(t *testing.T) {
	q, err := asyncq.New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer q.Close()

	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for pn := 0; pn < producers; pn++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < perProducer; n++ {
				if err := q.Push(n); err != nil {
					t.Errorf("Push error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got := 0
	for {
		if _, ok := q.TryPop(); !ok {
			break
		}
		got++
	}
	if got != producers*perProducer {
		t.Fatalf("drained %d messages, want %d", got, producers*perProducer)
	}
}
