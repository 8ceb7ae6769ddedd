// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package rtpoll implements a single-threaded real-time poll reactor: a
// per-goroutine event loop multiplexing device descriptors, cross-thread
// wakeup primitives and one timed wakeup into a single blocking wait, with
// ordered prepare/react callback dispatch, rewind on refusal, and deferred
// participant destruction for reentrancy safety.
//
// A Poller and all of its Items belong to exactly one goroutine. Other
// goroutines interact only through api.Waker primitives registered via
// NewWakerItem.
package rtpoll
