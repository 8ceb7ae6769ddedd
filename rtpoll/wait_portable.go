//go:build unix && !linux

// File: rtpoll/wait_portable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wait support for unices without timerfd: the fallback backend is the
// only backend.

package rtpoll

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// newPreciseBackend always degrades here; the plain-timeout fallback is
// the supported mechanism on this platform.
func newPreciseBackend() (waitBackend, error) {
	return nil, errors.New("high-resolution timer wakeup requires timerfd")
}

// pollTimed blocks with poll(2). Millisecond granularity; the timeout is
// rounded up so the wait never returns before the deadline.
func pollTimed(fds []unix.PollFd, timeout time.Duration) (int, error) {
	ms := -1
	if timeout >= 0 {
		ms = int((timeout + time.Millisecond - 1) / time.Millisecond)
	}
	return unix.Poll(fds, ms)
}
