package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered to the Bubble Tea program when a timer is due. The
// root model hands it back to Tea.Fire.
type FireMsg struct {
	ID uint64
}

// Tea schedules timers as tea.Tick commands. It is not safe for concurrent
// use; all calls happen inside the program's Update.
type Tea struct {
	start   time.Time
	seq     uint64
	live    map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s     *Tea
	id    uint64
	d     time.Duration
	every bool
	fn    func()
}

// NewTea creates an empty Tea scheduler.
func NewTea() *Tea {
	return &Tea{start: time.Now(), live: make(map[uint64]*teaTimer)}
}

// Now implements Scheduler with wall-clock time since NewTea.
func (s *Tea) Now() time.Duration {
	return time.Since(s.start)
}

// After implements Scheduler.
func (s *Tea) After(d time.Duration, fn func()) Timer {
	return s.add(d, false, fn)
}

// Every implements Scheduler.
func (s *Tea) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, true, fn)
}

func (s *Tea) add(d time.Duration, every bool, fn func()) *teaTimer {
	s.seq++
	t := &teaTimer{s: s, id: s.seq, d: d, every: every, fn: fn}
	s.live[t.id] = t
	s.arm(t)
	return t
}

func (s *Tea) arm(t *teaTimer) {
	id := t.id
	s.pending = append(s.pending, tea.Tick(t.d, func(time.Time) tea.Msg {
		return FireMsg{ID: id}
	}))
}

// Stop implements Timer. A tick already in flight for a stopped timer is
// dropped by Fire.
func (t *teaTimer) Stop() {
	delete(t.s.live, t.id)
}

// Fire runs the callback for msg if its timer is still live. Periodic
// timers are re-armed before the callback runs so the callback may stop them.
func (s *Tea) Fire(msg FireMsg) {
	t, ok := s.live[msg.ID]
	if !ok {
		return
	}
	if t.every {
		s.arm(t)
	} else {
		delete(s.live, t.id)
	}
	t.fn()
}

// Cmd drains the tick commands queued since the last call.
func (s *Tea) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live timers.
func (s *Tea) Pending() int {
	return len(s.live)
}
