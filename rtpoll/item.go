// File: rtpoll/item.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Poll item lifecycle: registration, descriptor views, callbacks and
// deferred destruction.

package rtpoll

import "golang.org/x/sys/unix"

// PrepareFunc runs before the blocking wait. Returning false vetoes the
// wait for this cycle and triggers the rewind protocol. Prepare callbacks
// must not block.
type PrepareFunc func(i *Item) bool

// ReactFunc runs after the blocking wait, or during a rewind, to consume
// results. React callbacks must not block.
type ReactFunc func(i *Item)

// Item is a registered participant owning a contiguous run of descriptor
// table slots. An Item is valid from NewItem until Free; it is a borrowed
// reference into poller-owned storage, never retained past Free.
type Item struct {
	poller *Poller
	dead   bool

	nfds int
	// view aliases the poller's active table and is invalidated by any
	// rebuild. Callbacks must re-fetch it through Descriptors.
	view []unix.PollFd

	prepare PrepareFunc
	react   ReactFunc
	ctx     any
}

// NewItem registers a participant with nfds descriptor slots at the end of
// the dispatch order. The slots read as zeroed descriptors until the owner
// populates them through Descriptors. Panics when nfds < 1.
func NewItem(p *Poller, nfds int) *Item {
	if p == nil {
		panic("rtpoll: nil poller")
	}
	if nfds < 1 {
		panic("rtpoll: item needs at least one descriptor slot")
	}

	it, ok := p.freeList.Pop()
	if !ok {
		it = new(Item)
	}
	*it = Item{poller: p, nfds: nfds}

	p.items = append(p.items, it)
	p.rebuildNeeded = true
	p.nUsed += nfds
	return it
}

// Descriptors returns the item's current slot view, rebuilding the table
// first if it is stale. The returned slice stays valid only until the next
// structural change to the poller.
func (i *Item) Descriptors() []unix.PollFd {
	p := i.owner()
	if p.rebuildNeeded {
		p.rebuild()
	}
	return i.view
}

// SetPrepare installs the pre-wait callback. A nil callback is skipped
// during the prepare pass.
func (i *Item) SetPrepare(fn PrepareFunc) {
	i.owner()
	i.prepare = fn
}

// SetReact installs the post-wait callback. A nil callback is skipped
// during the react and rewind passes.
func (i *Item) SetReact(fn ReactFunc) {
	i.owner()
	i.react = fn
}

// SetContext attaches an opaque owner value to the item.
func (i *Item) SetContext(ctx any) {
	i.owner()
	i.ctx = ctx
}

// Context returns the value set by SetContext.
func (i *Item) Context() any {
	i.owner()
	return i.ctx
}

// Free unregisters the item. Inside an active cycle the item is only
// marked dead: it is skipped by every later callback pass and physically
// removed when the cycle ends. Outside a cycle removal is immediate. The
// item must not be used afterwards.
func (i *Item) Free() {
	p := i.owner()
	if p.running {
		i.dead = true
		p.scanForDead = true
		return
	}
	p.unlink(i)
}

// owner asserts the item is still registered.
func (i *Item) owner() *Poller {
	if i == nil || i.poller == nil {
		panic("rtpoll: item is not registered")
	}
	return i.poller
}

// unlink removes the item from the participant list immediately. Only legal
// outside a run cycle.
func (p *Poller) unlink(it *Item) {
	for idx, x := range p.items {
		if x == it {
			copy(p.items[idx:], p.items[idx+1:])
			p.items[len(p.items)-1] = nil
			p.items = p.items[:len(p.items)-1]
			break
		}
	}
	p.nUsed -= it.nfds
	p.rebuildNeeded = true
	p.recycle(it)
}

// recycle clears the storage and hands it to the free list; a full list
// drops it for the allocator to reclaim.
func (p *Poller) recycle(it *Item) {
	*it = Item{}
	p.freeList.Push(it)
}
