//go:build linux

// File: rtpoll/wait_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux wait backends: timerfd-driven high-resolution wakeup and
// nanosecond-granular ppoll timeouts for the fallback.

package rtpoll

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// timerfdWait interrupts the blocking wait through a CLOCK_MONOTONIC timer
// descriptor appended to the poll set as one hidden trailing slot. Arming
// happens at timer-mutation time, not wait time, so there is no window
// between checking the deadline and blocking; this replaces the
// realtime-signal scheme a signal-owning runtime cannot host.
type timerfdWait struct {
	fd int
	// joined is the reusable poll buffer holding the caller's descriptors
	// plus the timer slot.
	joined []unix.PollFd
}

// newPreciseBackend reserves the timer descriptor. Callers treat failure
// as a degraded-mode signal, not an error.
func newPreciseBackend() (waitBackend, error) {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_NONBLOCK|unix.TFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("timerfd create: %w", err)
	}
	return &timerfdWait{fd: fd}, nil
}

func (w *timerfdWait) program(enabled bool, deadline time.Time, period time.Duration) {
	var its unix.ItimerSpec
	if enabled {
		d := time.Until(deadline)
		if d <= 0 {
			// An all-zero value disarms; one nanosecond means "already
			// elapsed, fire now".
			d = 1
		}
		its.Value = unix.NsecToTimespec(int64(d))
		if period > 0 {
			its.Interval = unix.NsecToTimespec(int64(period))
		}
	}
	if err := unix.TimerfdSettime(w.fd, 0, &its, nil); err != nil {
		panic(fmt.Sprintf("rtpoll: timerfd settime: %v", err))
	}
}

func (w *timerfdWait) wait(fds []unix.PollFd, _ bool, _ time.Time) (int, error) {
	joined := append(w.joined[:0], fds...)
	joined = append(joined, unix.PollFd{Fd: int32(w.fd), Events: unix.POLLIN})
	w.joined = joined

	n, err := unix.Ppoll(joined, nil, nil)
	if err != nil {
		return n, err
	}

	// Surface the returned events on the caller's table, then strip the
	// timer slot out of the result.
	copy(fds, joined[:len(fds)])
	if joined[len(joined)-1].Revents != 0 {
		var buf [8]byte
		_, _ = unix.Read(w.fd, buf[:]) // consume expiration count
		if n > 0 {
			n--
		}
	}
	return n, nil
}

func (w *timerfdWait) precise() bool { return true }

func (w *timerfdWait) close() {
	_ = unix.Close(w.fd)
}

// pollTimed blocks with ppoll so fallback timeouts keep nanosecond
// granularity. A negative timeout blocks indefinitely.
func pollTimed(fds []unix.PollFd, timeout time.Duration) (int, error) {
	var ts *unix.Timespec
	if timeout >= 0 {
		t := unix.NsecToTimespec(int64(timeout))
		ts = &t
	}
	return unix.Ppoll(fds, ts, nil)
}
