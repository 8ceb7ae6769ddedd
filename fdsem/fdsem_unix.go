//go:build unix && !linux

// File: fdsem/fdsem_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Self-pipe backing for the wakeup semaphore on unices without eventfd.

package fdsem

import "golang.org/x/sys/unix"

// wakeWriteLen is the write size for a post: one byte down the pipe.
const wakeWriteLen = 1

// newWakeFd creates a nonblocking close-on-exec pipe pair.
func newWakeFd() (readFd, writeFd int, err error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return 0, 0, err
	}
	for _, fd := range fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(fds[0])
			unix.Close(fds[1])
			return 0, 0, err
		}
	}
	return fds[0], fds[1], nil
}

func pollWait(fds []unix.PollFd, timeoutMs int) (int, error) {
	return unix.Poll(fds, timeoutMs)
}
