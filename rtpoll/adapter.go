// File: rtpoll/adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wakeup adapter: bridges a cross-thread signaling primitive into the
// prepare/react protocol as a one-slot poll item.

package rtpoll

import (
	"golang.org/x/sys/unix"

	"github.com/aniketawati/pulseaudio-new-modules/api"
)

// NewWakerItem registers a ready-made one-slot item for a cross-thread
// wakeup primitive, such as an fdsem semaphore or an asyncq message queue.
// The primitive's descriptor is polled for readability; its BeforePoll
// check gates the wait and its AfterPoll acknowledge runs after every
// wakeup. This is the sole mechanism by which other goroutines inject
// events into this poller's wait.
func NewWakerItem(p *Poller, w api.Waker) *Item {
	it := NewItem(p, 1)

	fds := it.Descriptors()
	fds[0].Fd = int32(w.Fd())
	fds[0].Events = unix.POLLIN

	it.SetPrepare(func(i *Item) bool {
		return w.BeforePoll()
	})
	it.SetReact(func(i *Item) {
		if revents := i.Descriptors()[0].Revents; revents&^unix.POLLIN != 0 {
			panic("rtpoll: unexpected poll events on wakeup descriptor")
		}
		w.AfterPoll()
	})
	it.SetContext(w)
	return it
}
