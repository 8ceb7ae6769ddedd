// File: fdsem/fdsem.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-thread counting wakeup semaphore backed by a pollable descriptor.

package fdsem

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned when posting to a closed semaphore.
var ErrClosed = errors.New("fdsem: semaphore is closed")

// Semaphore is a binary wakeup flag with a pollable read descriptor. Post
// may be called from any goroutine; everything else belongs to the single
// goroutine that polls the descriptor. Repeated posts before a consume
// coalesce into one wakeup.
type Semaphore struct {
	readFd    int
	writeFd   int
	signalled atomic.Uint32
	closed    atomic.Bool
}

// New creates a semaphore in the unsignalled state.
func New() (*Semaphore, error) {
	rfd, wfd, err := newWakeFd()
	if err != nil {
		return nil, err
	}
	return &Semaphore{readFd: rfd, writeFd: wfd}, nil
}

// Fd returns the descriptor to poll for readability.
func (s *Semaphore) Fd() int {
	return s.readFd
}

// Post signals the semaphore. Posting an already-signalled semaphore is a
// no-op; the descriptor becomes readable at most once per consume.
func (s *Semaphore) Post() error {
	if s.closed.Load() {
		return ErrClosed
	}
	if !s.signalled.CompareAndSwap(0, 1) {
		return nil
	}
	// Nonzero counter increment for eventfd; the pipe path writes only the
	// first byte.
	buf := [8]byte{0: 1, 7: 1}
	for {
		_, err := unix.Write(s.writeFd, buf[:wakeWriteLen])
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			// Pipe full means a wakeup is already pending.
			return nil
		}
		return err
	}
}

// BeforePoll implements api.Waker. It reports whether blocking is safe: a
// false result means a post was pending and has been consumed, so the
// caller must process it instead of entering the wait.
func (s *Semaphore) BeforePoll() bool {
	return !s.tryConsume()
}

// AfterPoll implements api.Waker, consuming the readable indication left by
// a post that arrived during the wait. It runs only after the descriptor
// polled readable, so it drains unconditionally: a poster that set the flag
// but had not yet written when a pre-wait check consumed the flag leaves
// the write landing afterwards, and skipping the drain on a clear flag
// would make every later wait wake instantly on that stray byte.
func (s *Semaphore) AfterPoll() {
	s.signalled.Store(0)
	s.drain()
}

// Wait blocks the calling goroutine until the semaphore is posted. Intended
// for standalone use outside a reactor.
func (s *Semaphore) Wait() error {
	for {
		if s.tryConsume() {
			return nil
		}
		fds := []unix.PollFd{{Fd: int32(s.readFd), Events: unix.POLLIN}}
		if _, err := pollWait(fds, -1); err != nil && err != unix.EINTR && err != unix.EAGAIN {
			return err
		}
	}
}

// tryConsume claims a pending post, draining the descriptor.
func (s *Semaphore) tryConsume() bool {
	if s.signalled.Swap(0) == 0 {
		return false
	}
	s.drain()
	return true
}

func (s *Semaphore) drain() {
	var buf [8]byte
	for {
		_, err := unix.Read(s.readFd, buf[:])
		if err == unix.EINTR {
			continue
		}
		// EAGAIN (nothing buffered) and success both leave the descriptor
		// quiescent: eventfd reads reset the counter in one call, and the
		// pipe path never writes more than one pending byte.
		return
	}
}

// Close releases the descriptor resources. The semaphore must no longer be
// registered with any reactor.
func (s *Semaphore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := unix.Close(s.readFd)
	if s.writeFd != s.readFd {
		if cerr := unix.Close(s.writeFd); err == nil {
			err = cerr
		}
	}
	return err
}
