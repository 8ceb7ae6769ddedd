// File: control/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Probe registry for inspecting live poller internals: cycle counters,
// table occupancy, timer mode. Probes run on the caller's goroutine; a
// probe reading reactor state must therefore be sampled from the reactor's
// own goroutine or from inside one of its callbacks.

package control

import (
	"sort"
	"sync"
)

// Probe reports one named piece of internal state, typically a stats
// snapshot such as rtpoll's Poller.Snapshot.
type Probe func() any

// DebugProbes is a registry of named probes. Registration is safe from any
// goroutine; the probe functions themselves are invoked outside the
// registry lock so a slow probe never blocks registration.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

// NewDebugProbes creates an empty registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]Probe)}
}

// RegisterProbe installs or replaces the probe under name. Nil probes are
// ignored.
func (dp *DebugProbes) RegisterProbe(name string, fn Probe) {
	if fn == nil {
		return
	}
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// RemoveProbe drops a probe; unknown names are a no-op.
func (dp *DebugProbes) RemoveProbe(name string) {
	dp.mu.Lock()
	delete(dp.probes, name)
	dp.mu.Unlock()
}

// Names lists registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	names := make([]string, 0, len(dp.probes))
	for name := range dp.probes {
		names = append(names, name)
	}
	dp.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Sample runs a single probe, reporting false for unknown names.
func (dp *DebugProbes) Sample(name string) (any, bool) {
	dp.mu.RLock()
	fn, ok := dp.probes[name]
	dp.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fn(), true
}

// DumpState samples every registered probe.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	snapshot := make(map[string]Probe, len(dp.probes))
	for name, fn := range dp.probes {
		snapshot[name] = fn
	}
	dp.mu.RUnlock()

	out := make(map[string]any, len(snapshot))
	for name, fn := range snapshot {
		out[name] = fn()
	}
	return out
}
