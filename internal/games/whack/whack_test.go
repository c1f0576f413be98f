package whack

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/session/sessiontest"
	"github.com/devbreak/arcade/internal/sound"
)

func startGame(t *testing.T) (*Game, *sessiontest.Harness) {
	t.Helper()
	h := sessiontest.New(7)
	g := New(h.Context)
	g.Start()
	if g.State() != session.Running {
		t.Fatalf("State() = %v after Start", g.State())
	}
	return g, h
}

// raise advances the clock until a whackable mole is up and returns its hole.
func raise(t *testing.T, g *Game, h *sessiontest.Harness) int {
	t.Helper()
	for range 100 {
		h.Clock.Advance(50 * time.Millisecond)
		if i := g.Raised(); i >= 0 && !g.Stunned(i) {
			return i
		}
	}
	t.Fatal("no mole raised")
	return -1
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{19, 1000 * time.Millisecond},
		{20, 950 * time.Millisecond},
		{100, 750 * time.Millisecond},
		{200, 500 * time.Millisecond},
		{1000, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.score); got != tt.want {
			t.Errorf("SpawnInterval(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestStartSchedulesCountdownAndSpawn(t *testing.T) {
	g, h := startGame(t)
	if h.Clock.Pending() != 2 {
		t.Errorf("Pending() = %d, want countdown and spawn", h.Clock.Pending())
	}
	if g.Raised() != -1 {
		t.Error("no mole should be up before the first spawn")
	}
	h.Clock.Advance(BaseSpeed)
	if g.Raised() == -1 {
		t.Error("a mole should be up after the first spawn tick")
	}
}

func TestMoleLowersAutomatically(t *testing.T) {
	g, h := startGame(t)
	h.Clock.Advance(BaseSpeed)
	i := g.Raised()
	if i < 0 {
		t.Fatal("expected a raised mole")
	}
	h.Clock.Advance(BaseSpeed*8/10 - time.Millisecond)
	if !g.Up(i) {
		t.Fatal("mole lowered too early")
	}
	h.Clock.Advance(time.Millisecond)
	if g.Up(i) {
		t.Error("mole should lower after 80% of the spawn interval")
	}
}

func TestWhackScoresAndStuns(t *testing.T) {
	g, h := startGame(t)
	i := raise(t, g, h)

	if g.Whack((i + 1) % Holes) {
		t.Error("whacking an empty hole must not score")
	}
	if !g.Whack(i) {
		t.Fatal("whacking a raised mole should score")
	}
	if g.Score() != WhackPoints || h.Scores.Last() != WhackPoints {
		t.Errorf("Score() = %d reported %d, want %d", g.Score(), h.Scores.Last(), WhackPoints)
	}
	if h.Sounds.Count(sound.Whack) != 1 {
		t.Error("expected one whack sound")
	}
	if g.Up(i) || !g.Stunned(i) {
		t.Error("whacked mole should be down and stunned")
	}
	if g.Whack(i) {
		t.Error("a stunned hole cannot be whacked again")
	}
	h.Clock.Advance(Cooldown)
	if g.Stunned(i) {
		t.Error("stun should clear after the cooldown")
	}
}

func TestSpeedUpAfterTwentyWhacks(t *testing.T) {
	g, h := startGame(t)
	for g.Whacks() < 20 {
		g.Whack(raise(t, g, h))
	}
	if g.Score() != 100 {
		t.Fatalf("Score() = %d, want 100", g.Score())
	}
	if g.Speed() != 750*time.Millisecond {
		t.Errorf("Speed() = %v, want 750ms", g.Speed())
	}
}

func TestCountdownEndsGame(t *testing.T) {
	g, h := startGame(t)
	h.Clock.Advance(Duration * time.Second)
	if g.State() != session.Ended {
		t.Fatalf("State() = %v, want ended", g.State())
	}
	if h.Clock.Pending() != 0 {
		t.Errorf("Pending() = %d after the game ended", h.Clock.Pending())
	}
	if g.Raised() != -1 {
		t.Error("all moles should be hidden at game over")
	}
	sum, ok := g.Summary()
	if !ok || sum.Headline != "Time's Up!" {
		t.Errorf("Summary() = %+v, %v", sum, ok)
	}
	if h.Sounds.Last() != sound.GameOver {
		t.Errorf("last sound = %v, want game over", h.Sounds.Last())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g, h := startGame(t)
	i := raise(t, g, h)
	remaining := g.Remaining()

	h.PauseGame(g)
	if h.Clock.Pending() != 0 {
		t.Fatalf("Pending() = %d while paused", h.Clock.Pending())
	}
	if g.Whack(i) {
		t.Error("whacks are ignored while paused")
	}
	h.Clock.Advance(time.Minute)
	if g.Remaining() != remaining {
		t.Errorf("Remaining() = %d, want %d", g.Remaining(), remaining)
	}

	h.ResumeGame(g)
	// countdown, spawn and the raised mole's auto-lower
	if h.Clock.Pending() != 3 {
		t.Errorf("Pending() = %d after resume, want 3", h.Clock.Pending())
	}
}

func TestRestartResets(t *testing.T) {
	g, h := startGame(t)
	g.Whack(raise(t, g, h))
	g.Restart()
	g.Restart()
	if g.Score() != 0 || g.Remaining() != Duration || g.Speed() != BaseSpeed {
		t.Errorf("restart state: score=%d remaining=%d speed=%v", g.Score(), g.Remaining(), g.Speed())
	}
	if h.Clock.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", h.Clock.Pending())
	}
}

func TestCleanupStopsTimers(t *testing.T) {
	g, h := startGame(t)
	g.Cleanup()
	g.Cleanup()
	if h.Clock.Pending() != 0 {
		t.Errorf("Pending() = %d after cleanup", h.Clock.Pending())
	}
	g.Restart()
	if g.State() != session.Cleaned {
		t.Errorf("State() = %v, restart after cleanup must be a no-op", g.State())
	}
}

func TestDigitKeysMapToHoles(t *testing.T) {
	g, h := startGame(t)
	i := raise(t, g, h)
	g.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune('1' + i)}})
	if g.Score() != WhackPoints {
		t.Errorf("key %c should whack hole %d", rune('1'+i), i)
	}
	g.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	g.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if g.Score() != WhackPoints {
		t.Error("non-hole keys must be ignored")
	}
}

func TestViewLabelsHoles(t *testing.T) {
	g, _ := startGame(t)
	v := g.View(80)
	for _, label := range []string{"1", "5", "9"} {
		if !strings.Contains(v, label) {
			t.Errorf("view missing hole label %s", label)
		}
	}
}

func TestCountdownSurvivesFrequentPauses(t *testing.T) {
	g, h := startGame(t)
	h.PauseEvery(g, 900*time.Millisecond, 20)
	if g.Remaining() != Duration-18 {
		t.Errorf("Remaining() = %d after 18s of play, want %d", g.Remaining(), Duration-18)
	}
}

func TestPausedMoleLowersOnTime(t *testing.T) {
	g, h := startGame(t)
	h.Clock.Advance(BaseSpeed)
	i := g.Raised()
	if i < 0 {
		t.Fatal("expected a mole after the first spawn")
	}
	h.Clock.Advance(100 * time.Millisecond)
	h.PauseGame(g)
	h.Clock.Advance(time.Minute)
	h.ResumeGame(g)

	h.Clock.Advance(BaseSpeed*8/10 - 100*time.Millisecond - time.Millisecond)
	if !g.Up(i) {
		t.Fatal("mole lowered early")
	}
	h.Clock.Advance(time.Millisecond)
	if g.Up(i) {
		t.Error("mole should lower 0.8×speed of play time after rising")
	}
}
