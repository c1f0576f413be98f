package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/sound"
)

func TestStateMarshalJSON(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Uninitialized, `"uninitialized"`},
		{Running, `"running"`},
		{Paused, `"paused"`},
		{Ended, `"ended"`},
		{Cleaned, `"cleaned"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.state)
		if err != nil {
			t.Errorf("Marshal(%v) error: %v", tt.state, err)
			continue
		}
		if string(data) != tt.expected {
			t.Errorf("Marshal(%v) = %s, want %s", tt.state, data, tt.expected)
		}

		var back State
		if err := json.Unmarshal(data, &back); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", data, err)
		}
		if back != tt.state {
			t.Errorf("Unmarshal(%s) = %v, want %v", data, back, tt.state)
		}
	}
}

func TestLifecycleTransitions(t *testing.T) {
	var l Lifecycle
	if l.State() != Uninitialized {
		t.Fatalf("zero state = %v", l.State())
	}
	if l.Pause() {
		t.Error("Pause from Uninitialized should be a no-op")
	}
	if !l.Begin() || l.State() != Running {
		t.Fatal("Begin should enter Running")
	}
	if l.Resume() {
		t.Error("Resume while Running should be a no-op")
	}
	if !l.Pause() || l.State() != Paused {
		t.Fatal("Pause should enter Paused")
	}
	if l.Pause() {
		t.Error("second Pause should be a no-op")
	}
	if l.End() {
		t.Error("End from Paused should be a no-op")
	}
	if !l.Resume() || !l.Running() {
		t.Fatal("Resume should re-enter Running")
	}
	if !l.End() || l.State() != Ended {
		t.Fatal("End should enter Ended")
	}
	if !l.State().IsTerminal() {
		t.Error("Ended should be terminal")
	}
	if !l.Begin() {
		t.Error("Begin from Ended (restart) should succeed")
	}
	if !l.Release() {
		t.Error("first Release should report a change")
	}
	if l.Release() {
		t.Error("second Release should be a no-op")
	}
	if l.Begin() {
		t.Error("Begin after Release must fail")
	}
}

func TestLoopKeepsSingleTimer(t *testing.T) {
	m := sched.NewManual()
	var l Loop
	calls := 0

	l.Every(m, time.Second, func() { calls++ })
	l.Every(m, time.Second, func() { calls++ })
	if m.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", m.Pending())
	}

	m.Advance(3 * time.Second)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	l.Stop()
	l.Stop()
	if l.Active() || m.Pending() != 0 {
		t.Error("Stop should cancel the timer")
	}
}

func TestLoopAfterDeactivatesBeforeCallback(t *testing.T) {
	m := sched.NewManual()
	var l Loop
	rescheduled := 0

	l.After(m, time.Second, func() {
		if l.Active() {
			t.Error("loop should be inactive inside its own callback")
		}
		rescheduled++
		if rescheduled < 3 {
			l.After(m, time.Second, func() { rescheduled++ })
		}
	})
	m.Advance(5 * time.Second)
	if rescheduled != 2 {
		t.Errorf("rescheduled = %d, want 2", rescheduled)
	}
	if l.Active() {
		t.Error("loop should be idle once all one-shots fired")
	}
}

func TestLoopHoldKeepsElapsedPeriod(t *testing.T) {
	m := sched.NewManual()
	var l Loop
	calls := 0
	l.Every(m, time.Second, func() { calls++ })

	// hold every 900ms; the held time must not be lost
	for range 10 {
		m.Advance(900 * time.Millisecond)
		l.Hold()
		if !l.Held() || m.Pending() != 0 {
			t.Fatal("Hold should suspend the timer")
		}
		m.Advance(5 * time.Second)
		l.Release()
	}
	if calls != 9 {
		t.Errorf("calls = %d after 9s of running time, want 9", calls)
	}
	if got := l.Remaining(); got != time.Second {
		t.Errorf("Remaining() = %v, want 1s", got)
	}

	m.Advance(3 * time.Second)
	if calls != 12 {
		t.Errorf("calls = %d, periodic timer should resume its period", calls)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestLoopHoldOneShot(t *testing.T) {
	tests := []struct {
		name    string
		before  time.Duration
		after   time.Duration
		release bool
		fired   bool
	}{
		{"fires after remainder", 300 * time.Millisecond, 700 * time.Millisecond, true, true},
		{"not before remainder", 300 * time.Millisecond, 699 * time.Millisecond, true, false},
		{"held never fires", 300 * time.Millisecond, time.Hour, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sched.NewManual()
			var l Loop
			fired := false
			l.After(m, time.Second, func() { fired = true })
			m.Advance(tt.before)
			l.Hold()
			m.Advance(time.Minute)
			if tt.release {
				l.Release()
			}
			m.Advance(tt.after)
			if fired != tt.fired {
				t.Errorf("fired = %v, want %v", fired, tt.fired)
			}
		})
	}
}

func TestLoopStopForgetsHold(t *testing.T) {
	m := sched.NewManual()
	var l Loop
	l.Hold()
	if l.Held() {
		t.Fatal("Hold on an idle loop is a no-op")
	}
	l.Every(m, time.Second, func() { t.Error("stopped loop fired") })
	l.Hold()
	if !l.Active() {
		t.Error("a held loop counts as active")
	}
	l.Stop()
	l.Release()
	m.Advance(time.Minute)
	if l.Active() || m.Pending() != 0 {
		t.Error("Release after Stop must not reschedule")
	}
}

type scoreSink struct{ last int }

func (s *scoreSink) Report(score int) { s.last = score }

func TestContextHelpersTolerateNil(t *testing.T) {
	var c Context
	if c.IsPaused() {
		t.Error("nil predicate should read as not paused")
	}
	c.Play(sound.Whack)
	c.Report(5)
	if c.Logger() == nil || c.RNG() == nil {
		t.Error("defaults should be non-nil")
	}

	sink := &scoreSink{}
	rec := &sound.Recorder{}
	paused := true
	c = Context{Scores: sink, Sound: rec, Paused: func() bool { return paused }}
	c.Report(42)
	c.Play(sound.Whack)
	if sink.last != 42 || rec.Count(sound.Whack) != 1 || !c.IsPaused() {
		t.Error("context should forward to its collaborators")
	}
}
