package status

import (
	"strings"
	"testing"
)

func TestSpringSettlesOnTarget(t *testing.T) {
	m := New()
	m.SetScore(40)
	if !m.Animating() {
		t.Fatal("expected animation after a score change")
	}
	for i := 0; i < FPS*5 && m.Animating(); i++ {
		m.Step()
	}
	if m.Animating() {
		t.Fatal("spring did not settle within five seconds of frames")
	}
	if m.DisplayScore() != 40 {
		t.Errorf("DisplayScore() = %d, want 40", m.DisplayScore())
	}
}

func TestNoAnimationSnaps(t *testing.T) {
	m := New()
	m.Animate = false
	m.SetScore(25)
	if m.Animating() || m.DisplayScore() != 25 {
		t.Errorf("animating=%v shown=%d", m.Animating(), m.DisplayScore())
	}
}

func TestResetSkipsAnimation(t *testing.T) {
	m := New()
	m.SetScore(90)
	m.Step()
	m.Reset(0)
	if m.Animating() || m.DisplayScore() != 0 {
		t.Errorf("animating=%v shown=%d after reset", m.Animating(), m.DisplayScore())
	}
}

func TestViewShowsIndicators(t *testing.T) {
	m := New()
	m.Title = "Snake"
	m.Clock = "1:05"
	m.Reset(30)
	m.Paused = true
	m.SoundOn = false
	v := m.View()
	for _, want := range []string{"Snake", "Score 30", "1:05", "PAUSED", "off"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
