// File: rtpoll/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Timer subsystem: one absolute deadline, optional repeat period, armed
// through whichever wait backend is installed.

package rtpoll

import "time"

// SetTimerAbsolute arms a one-shot wakeup at an absolute timestamp.
func (p *Poller) SetTimerAbsolute(t time.Time) {
	p.deadline = t
	p.period = 0
	p.timerEnabled = true
	p.programTimer()
}

// SetTimerRelative arms a one-shot wakeup at now plus delay.
func (p *Poller) SetTimerRelative(delay time.Duration) {
	p.deadline = time.Now().Add(delay)
	p.period = 0
	p.timerEnabled = true
	p.programTimer()
}

// SetTimerPeriodic arms a repeating wakeup; the first deadline is one
// period from now.
func (p *Poller) SetTimerPeriodic(period time.Duration) {
	p.period = period
	p.deadline = time.Now().Add(period)
	p.timerEnabled = true
	p.programTimer()
}

// DisableTimer clears the timer.
func (p *Poller) DisableTimer() {
	p.period = 0
	p.deadline = time.Time{}
	p.timerEnabled = false
	p.programTimer()
}

// TimerDeadline reports the currently armed deadline, if any.
func (p *Poller) TimerDeadline() (time.Time, bool) {
	return p.deadline, p.timerEnabled
}

// programTimer pushes the current timer state into the wait backend.
// Before installation there is nothing to arm; Install replays the state.
func (p *Poller) programTimer() {
	if p.backend != nil {
		p.backend.program(p.timerEnabled, p.deadline, p.period)
	}
}

// advanceTimer consumes the deadline after a wait has returned. A periodic
// timer is advanced by whole periods until the deadline is strictly in the
// future, so a stalled thread neither re-fires immediately nor replays the
// missed periods. A one-shot timer is disabled.
func (p *Poller) advanceTimer() {
	if !p.timerEnabled {
		return
	}
	if p.period <= 0 {
		p.timerEnabled = false
		return
	}

	p.deadline = p.deadline.Add(p.period)
	if now := time.Now(); !p.deadline.After(now) {
		behind := now.Sub(p.deadline)
		p.deadline = p.deadline.Add((behind/p.period + 1) * p.period)
	}
}
