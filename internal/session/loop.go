package session

import (
	"time"

	"github.com/devbreak/arcade/internal/sched"
)

// Loop owns the single timer for one concern of a game (countdown, spawn,
// movement, a delayed resolution). Scheduling through a Loop always cancels
// the previous timer first, so a concern never has two timers alive.
//
// Hold and Release suspend the timer without losing the part of the
// current period that already ran.
type Loop struct {
	timer sched.Timer

	s      sched.Scheduler
	fn     func()
	period time.Duration // zero for one-shot timers
	due    time.Duration // scheduler time of the next fire

	held bool
	left time.Duration
}

// Every replaces the current timer with a periodic one.
func (l *Loop) Every(s sched.Scheduler, d time.Duration, fn func()) {
	l.Stop()
	if d <= 0 {
		d = time.Millisecond
	}
	l.s, l.fn, l.period = s, fn, d
	l.due = s.Now() + d
	l.timer = s.Every(d, func() {
		l.due = s.Now() + d
		fn()
	})
}

// After replaces the current timer with a one-shot one. The loop is
// inactive again by the time fn runs.
func (l *Loop) After(s sched.Scheduler, d time.Duration, fn func()) {
	l.Stop()
	l.s, l.fn, l.period = s, fn, 0
	l.due = s.Now() + max(d, 0)
	var self sched.Timer
	self = s.After(d, func() {
		if l.timer == self {
			l.timer = nil
		}
		fn()
	})
	l.timer = self
}

// Hold stops the timer and remembers how long was left until it would
// have fired. No-op when nothing is scheduled.
func (l *Loop) Hold() {
	if l.timer == nil {
		return
	}
	l.timer.Stop()
	l.timer = nil
	l.held = true
	l.left = max(l.due-l.s.Now(), 0)
}

// Release reschedules a held timer for the time it had left. A periodic
// timer fires once after that remainder and then keeps its period.
func (l *Loop) Release() {
	if !l.held {
		return
	}
	l.held = false
	s, fn, period := l.s, l.fn, l.period
	if period == 0 {
		l.After(s, l.left, fn)
		return
	}
	l.After(s, l.left, func() {
		l.Every(s, period, fn)
		fn()
	})
	// keep the period so a second Hold before the remainder fires
	// resumes into the same periodic timer
	l.period = period
	l.fn = fn
}

// Stop cancels the current timer, if any, and forgets a held one.
func (l *Loop) Stop() {
	l.held = false
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

// Active reports whether a timer is scheduled or held.
func (l *Loop) Active() bool {
	return l.timer != nil || l.held
}

// Held reports whether the timer is suspended by Hold.
func (l *Loop) Held() bool {
	return l.held
}

// Remaining returns the time until the next fire, or the time left when
// held. Zero when idle.
func (l *Loop) Remaining() time.Duration {
	switch {
	case l.held:
		return l.left
	case l.timer != nil:
		return max(l.due-l.s.Now(), 0)
	default:
		return 0
	}
}
