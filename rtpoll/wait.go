// File: rtpoll/wait.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interruptible timed wait abstraction with two backends: a
// high-resolution timer descriptor woven into the poll set, and a plain
// computed-timeout fallback.

package rtpoll

import (
	"time"

	"golang.org/x/sys/unix"
)

// waitBackend is selected once at Install and hides how a timer deadline
// interrupts the blocking wait.
type waitBackend interface {
	// program arms or disarms the backend's wake mechanism for the given
	// timer state. Called on every timer mutation.
	program(enabled bool, deadline time.Time, period time.Duration)

	// wait blocks on the descriptor set until events arrive or the timer
	// elapses. It returns the number of ready descriptors, excluding any
	// internal wake descriptor; timer expiry yields 0.
	wait(fds []unix.PollFd, timerEnabled bool, deadline time.Time) (int, error)

	// precise reports whether the high-resolution mechanism is active.
	precise() bool

	close()
}

// fallbackWait computes a plain timeout from the deadline at each wait.
// Correct everywhere, but wakeup latency is bounded by poll's timeout
// granularity rather than the timer's.
type fallbackWait struct{}

func (fallbackWait) program(bool, time.Time, time.Duration) {
	// Nothing to arm: the timeout is recomputed from the deadline on
	// every wait.
}

func (fallbackWait) wait(fds []unix.PollFd, timerEnabled bool, deadline time.Time) (int, error) {
	timeout := time.Duration(-1)
	if timerEnabled {
		timeout = time.Until(deadline)
		if timeout < 0 {
			timeout = 0
		}
	}
	return pollTimed(fds, timeout)
}

func (fallbackWait) precise() bool { return false }

func (fallbackWait) close() {}
