// File: rtpoll/timer_internal_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rtpoll

import (
	"testing"
	"time"
)

// The deadline advance must land strictly in the future in whole-period
// steps, however far behind the deadline has fallen.
func TestAdvanceTimerCatchUp(t *testing.T) {
	const period = 10 * time.Millisecond

	for _, stall := range []time.Duration{0, period / 2, period, 3 * period, 5 * period, 100 * period} {
		p := New()
		now := time.Now()
		p.timerEnabled = true
		p.period = period
		p.deadline = now.Add(-stall)

		p.advanceTimer()

		if !p.timerEnabled {
			t.Fatalf("stall=%v: periodic timer must stay enabled", stall)
		}
		after := time.Now()
		if !p.deadline.After(after) {
			t.Fatalf("stall=%v: advanced deadline %v not strictly past now %v", stall, p.deadline, after)
		}
		if behind := p.deadline.Sub(now.Add(-stall)); behind%period != 0 {
			t.Fatalf("stall=%v: deadline advanced by %v, not a whole number of periods", stall, behind)
		}
	}
}

func TestAdvanceTimerOneShotConsumed(t *testing.T) {
	p := New()
	p.timerEnabled = true
	p.period = 0
	p.deadline = time.Now()

	p.advanceTimer()

	if p.timerEnabled {
		t.Fatal("one-shot timer must disable itself after the wait returns")
	}
}

func TestAdvanceTimerDisabledNoop(t *testing.T) {
	p := New()
	p.advanceTimer()
	if p.timerEnabled {
		t.Fatal("advance must not enable a disabled timer")
	}
}
