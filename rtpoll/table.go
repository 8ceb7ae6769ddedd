// File: rtpoll/table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Descriptor table rebuild: double-buffered, contiguous per-item slot runs
// in participant order.

package rtpoll

import "golang.org/x/sys/unix"

// rebuild recomputes the descriptor table from the participant list. Every
// item, dead ones included until they are compacted out, is assigned the
// next contiguous run of slots in list order; previously populated slots
// are carried over, never-populated runs read as zeroed descriptors. The
// freshly built buffer becomes active and the previous one is kept as
// scratch so steady-state rebuilds allocate nothing.
func (p *Poller) rebuild() {
	p.rebuildNeeded = false

	if p.nUsed > cap(p.scratch) {
		newCap := 2 * cap(p.scratch)
		if newCap < p.nUsed {
			newCap = p.nUsed
		}
		p.scratch = make([]unix.PollFd, 0, newCap)
	}

	next := p.scratch[:0]
	for _, it := range p.items {
		if it.nfds == 0 {
			it.view = nil
			continue
		}
		start := len(next)
		if it.view != nil {
			next = append(next, it.view...)
		} else {
			next = next[:start+it.nfds]
			clear(next[start:])
		}
		it.view = next[start : start+it.nfds]
	}

	if len(next) != p.nUsed {
		panic("rtpoll: descriptor table slot count mismatch after rebuild")
	}

	p.scratch = p.active[:0]
	p.active = next

	// Keep the scratch buffer able to absorb the next swap without an
	// allocation.
	if cap(p.scratch) < cap(p.active) {
		p.scratch = make([]unix.PollFd, 0, cap(p.active))
	}
}
