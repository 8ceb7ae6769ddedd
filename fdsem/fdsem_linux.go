//go:build linux

// File: fdsem/fdsem_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux eventfd(2) backing for the wakeup semaphore.

package fdsem

import "golang.org/x/sys/unix"

// wakeWriteLen is the write size for a post: eventfd requires a full
// 8-byte counter value.
const wakeWriteLen = 8

// newWakeFd creates a nonblocking eventfd serving as both ends.
func newWakeFd() (readFd, writeFd int, err error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		return 0, 0, err
	}
	return fd, fd, nil
}

func pollWait(fds []unix.PollFd, timeoutMs int) (int, error) {
	var ts *unix.Timespec
	if timeoutMs >= 0 {
		t := unix.NsecToTimespec(int64(timeoutMs) * 1e6)
		ts = &t
	}
	return unix.Ppoll(fds, ts, nil)
}
