// File: asyncq/asyncq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-thread message queue with a pollable wakeup descriptor.

package asyncq

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/aniketawati/pulseaudio-new-modules/fdsem"
)

// Queue delivers opaque messages from any number of producer goroutines to
// the single goroutine driving a reactor. Delivery order is FIFO. The
// wakeup descriptor becomes readable when messages are pending; draining
// happens through the api.Waker protocol.
type Queue struct {
	mu   sync.Mutex
	ring *queue.Queue
	sem  *fdsem.Semaphore
}

// New creates an empty queue.
func New() (*Queue, error) {
	sem, err := fdsem.New()
	if err != nil {
		return nil, err
	}
	return &Queue{ring: queue.New(), sem: sem}, nil
}

// Push enqueues a message and wakes the consumer.
func (q *Queue) Push(msg any) error {
	q.mu.Lock()
	q.ring.Add(msg)
	q.mu.Unlock()
	return q.sem.Post()
}

// TryPop dequeues the oldest message, reporting false when empty.
func (q *Queue) TryPop() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Length() == 0 {
		return nil, false
	}
	return q.ring.Remove(), true
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Length()
}

// Fd implements api.Waker.
func (q *Queue) Fd() int {
	return q.sem.Fd()
}

// BeforePoll implements api.Waker. Pending messages veto the wait so the
// consumer drains them before blocking.
func (q *Queue) BeforePoll() bool {
	if q.Len() > 0 {
		q.sem.AfterPoll()
		return false
	}
	return q.sem.BeforePoll()
}

// AfterPoll implements api.Waker.
func (q *Queue) AfterPoll() {
	q.sem.AfterPoll()
}

// Close releases the wakeup descriptor. Queued messages are discarded.
func (q *Queue) Close() error {
	return q.sem.Close()
}
