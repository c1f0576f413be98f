package sched

import (
	"sort"
	"time"
)

// Manual is a deterministic scheduler driven by Advance. It is used by tests
// and by headless runs; time only moves when the caller says so.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers map[uint64]*manualTimer
}

type manualTimer struct {
	m     *Manual
	id    uint64
	at    time.Duration
	every time.Duration
	fn    func()
}

// NewManual creates a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[uint64]*manualTimer)}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Timer {
	return m.add(d, 0, fn)
}

// Every implements Scheduler. Non-positive periods are clamped to 1ms.
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.add(d, d, fn)
}

func (m *Manual) add(d, every time.Duration, fn func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, id: m.seq, at: m.now + d, every: every, fn: fn}
	m.timers[t.id] = t
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() {
	delete(t.m.timers, t.id)
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of live timers.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves virtual time forward by d, firing every due callback in
// deadline order (ties broken by scheduling order). Callbacks may schedule
// or stop timers; newly scheduled timers due within the window also fire.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.at
		if t.every > 0 {
			t.at += t.every
		} else {
			delete(m.timers, t.id)
		}
		t.fn()
	}
	m.now = target
}

func (m *Manual) next(limit time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if t.at <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].id < due[j].id
	})
	return due[0]
}
