// File: api/waker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract between the poll reactor and cross-thread wakeup primitives.

package api

// Waker is the contract a cross-thread signaling primitive must satisfy to
// be bridged into a reactor's wait as a one-slot poll item. The primitive
// exposes a single pollable descriptor, a pre-wait check, and a post-wait
// acknowledge. Signaling (whatever form it takes) must be safe from any
// goroutine; BeforePoll and AfterPoll are only ever called by the goroutine
// driving the reactor.
type Waker interface {
	// Fd returns the readable descriptor to include in the poll set.
	Fd() int

	// BeforePoll reports whether the primitive would block. A false result
	// means work is already pending and the caller must not enter the wait;
	// the primitive has consumed its pending signal in that case.
	BeforePoll() bool

	// AfterPoll consumes and acknowledges a readable indication after the
	// wait has returned.
	AfterPoll()
}
