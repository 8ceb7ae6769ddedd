// File: rtpoll/rtpoll.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-threaded poll reactor: one blocking wait per cycle multiplexing
// device descriptors, cross-thread wakeups and timed wakeups, with ordered
// prepare/react dispatch around it.

package rtpoll

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/aniketawati/pulseaudio-new-modules/control"
	"github.com/aniketawati/pulseaudio-new-modules/pool"
)

// Poller owns a descriptor table, an ordered participant list and one timer
// deadline, and drives wait-and-dispatch cycles over them. A Poller belongs
// to exactly one goroutine; nothing here locks, cross-thread interaction
// goes through Waker adapters only.
type Poller struct {
	// Double-buffered descriptor table. active is what the wait call sees;
	// scratch is swapped in on rebuild so a rebuild never allocates in the
	// steady state.
	active  []unix.PollFd
	scratch []unix.PollFd
	nUsed   int

	// Participants in registration order. Entries marked dead stay in
	// place until the end of the cycle that marked them.
	items []*Item

	timerEnabled bool
	deadline     time.Time
	period       time.Duration

	running       bool
	installed     bool
	rebuildNeeded bool
	scanForDead   bool

	backend       waitBackend
	forceFallback bool

	freeList *pool.FreeList[*Item]
	log      zerolog.Logger

	cycles uint64
}

// New creates an un-installed Poller with default tuning. No timer or
// descriptor resources are acquired until Install.
func New() *Poller {
	return NewWithConfig(control.Default())
}

// NewWithConfig creates an un-installed Poller tuned by cfg.
func NewWithConfig(cfg control.Config) *Poller {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Poller{
		active:        make([]unix.PollFd, 0, cfg.TableCapacity),
		scratch:       make([]unix.PollFd, 0, cfg.TableCapacity),
		freeList:      pool.NewFreeList[*Item](cfg.FreeListBound),
		forceFallback: cfg.ForceFallbackTimer,
		log:           zerolog.Nop(),
	}
}

// SetLogger replaces the poller's logger. The default discards everything.
func (p *Poller) SetLogger(l zerolog.Logger) {
	p.log = l
}

// Install binds the Poller to its owning goroutine and acquires the wait
// backend, preferring the high-resolution timer mechanism. Failure to
// acquire it is not an error: the Poller degrades to plain poll timeouts
// and stays fully correct.
func (p *Poller) Install() {
	if p.installed {
		panic("rtpoll: poller is already installed")
	}
	p.installed = true

	if p.forceFallback {
		p.backend = fallbackWait{}
	} else if b, err := newPreciseBackend(); err != nil {
		p.log.Warn().Err(err).Msg("failed to acquire high-resolution timer, falling back to poll timeouts")
		p.backend = fallbackWait{}
	} else {
		p.log.Debug().Msg("acquired high-resolution timer descriptor")
		p.backend = b
	}

	// Arm whatever timer state was set before installation.
	p.programTimer()
}

// Run executes one wait-and-dispatch cycle. It returns the number of ready
// descriptors, or 0 when the wait timed out, was interrupted, produced no
// events, or was vetoed by a prepare callback. A non-nil error reports a
// hard wait failure; transient outcomes are never surfaced as errors.
// Run panics when called reentrantly or before Install.
func (p *Poller) Run() (int, error) {
	if p.running {
		panic("rtpoll: run cycle already in progress")
	}
	if !p.installed {
		panic("rtpoll: poller is not installed")
	}

	p.running = true
	p.cycles++
	defer p.finishCycle()

	// Prepare pass, registration order. A refusal unwinds the items
	// already prepared, newest first, and aborts the cycle before the
	// wait. The refusing item itself is not unwound.
	for idx := 0; idx < len(p.items); idx++ {
		it := p.items[idx]
		if it.dead || it.prepare == nil {
			continue
		}
		if it.prepare(it) {
			continue
		}
		for j := idx - 1; j >= 0; j-- {
			prev := p.items[j]
			if prev.dead || prev.react == nil {
				continue
			}
			prev.react(prev)
		}
		return 0, nil
	}

	if p.rebuildNeeded {
		p.rebuild()
	}

	n, err := p.backend.wait(p.active, p.timerEnabled, p.deadline)

	// The wait has consumed the current deadline, whatever woke us.
	p.advanceTimer()

	noEvents := false
	switch {
	case err == unix.EAGAIN || err == unix.EINTR:
		err = nil
		n = 0
		noEvents = true
	case err != nil:
		n = 0
	case n == 0:
		noEvents = true
	}

	// React pass, registration order. On a no-event outcome the returned
	// event bits are cleared first so a react callback can never mistake a
	// previous cycle's bits for fresh events; returned bits are only
	// meaningful inside a react call.
	for idx := 0; idx < len(p.items); idx++ {
		it := p.items[idx]
		if it.dead || it.react == nil {
			continue
		}
		if noEvents {
			for k := range it.view {
				it.view[k].Revents = 0
			}
		}
		it.react(it)
	}

	return n, err
}

// finishCycle clears the running flag and compacts out participants marked
// dead during the cycle. Physical removal is safe here: no callback pass is
// iterating anymore.
func (p *Poller) finishCycle() {
	p.running = false
	if !p.scanForDead {
		return
	}
	p.scanForDead = false

	kept := p.items[:0]
	for _, it := range p.items {
		if !it.dead {
			kept = append(kept, it)
			continue
		}
		p.nUsed -= it.nfds
		p.rebuildNeeded = true
		p.recycle(it)
	}
	for k := len(kept); k < len(p.items); k++ {
		p.items[k] = nil
	}
	p.items = kept
}

// Close destroys all remaining participants and releases the wait backend.
// Must not be called from inside a cycle.
func (p *Poller) Close() {
	if p.running {
		panic("rtpoll: close during run cycle")
	}
	for len(p.items) > 0 {
		p.items[len(p.items)-1].Free()
	}
	if p.backend != nil {
		p.backend.close()
		p.backend = nil
	}
	p.installed = false
}

// Stats is a point-in-time snapshot of poller internals, meant for debug
// probes and tests.
type Stats struct {
	Items        int
	Slots        int
	TimerEnabled bool
	HighResTimer bool
	Cycles       uint64
}

// Snapshot reports current poller state. Call it from the owning goroutine
// or from a prepare/react callback.
func (p *Poller) Snapshot() Stats {
	live := 0
	for _, it := range p.items {
		if !it.dead {
			live++
		}
	}
	return Stats{
		Items:        live,
		Slots:        p.nUsed,
		TimerEnabled: p.timerEnabled,
		HighResTimer: p.backend != nil && p.backend.precise(),
		Cycles:       p.cycles,
	}
}
