// Package session defines the contract every mini-game implements so that
// one host can drive any of them: the Game interface, the lifecycle state
// machine, and the Context a game is constructed with.
package session

import (
	"fmt"
	"io"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/sound"
)

// InputMode tells the host how a game consumes keystrokes.
type InputMode int

const (
	// InputKeys games use discrete keys; host shortcuts take priority.
	InputKeys InputMode = iota
	// InputText games capture printable characters, so host shortcuts
	// that collide with text must use a modifier.
	InputText
)

// Game is a live mini-game session.
type Game interface {
	// ID returns the catalog id of the game.
	ID() string

	// Start enters Running, schedules timers and builds the first round.
	Start()
	// Pause stops time-driven progression. No-op unless Running.
	Pause()
	// Resume continues from where Pause left off. No-op unless Paused.
	Resume()
	// Restart discards the round, reseeds random content, resets the score
	// and enters Running. No-op after Cleanup.
	Restart()
	// Cleanup cancels every timer and input registration. Idempotent.
	Cleanup()

	State() State
	Score() int
	// Summary returns the end-of-game summary once the game has Ended.
	Summary() (Summary, bool)

	HandleKey(msg tea.KeyMsg)
	InputMode() InputMode
	View(width int) string
}

// Metric is one labelled line of an end-of-game summary.
type Metric struct {
	Label string
	Value string
}

// Summary is the terminal overlay shown when a game ends.
type Summary struct {
	Headline string
	Score    int
	Metrics  []Metric
}

// Lines renders the summary as overlay lines.
func (s Summary) Lines() []string {
	lines := []string{s.Headline, ""}
	for _, m := range s.Metrics {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Label, m.Value))
	}
	return append(lines, fmt.Sprintf("Final score: %d", s.Score), "", "restart to play again")
}

// ScorePort receives score updates from the active game.
type ScorePort interface {
	Report(score int)
}

// Context carries the shared collaborators injected into every game.
// Games read Paused but never change it.
type Context struct {
	Scores ScorePort
	Sound  sound.Port
	Paused func() bool
	Sched  sched.Scheduler
	Rand   *rand.Rand
	Log    *log.Logger
}

// IsPaused reports the host's pause flag.
func (c Context) IsPaused() bool {
	return c.Paused != nil && c.Paused()
}

// Play triggers a sound effect.
func (c Context) Play(e sound.Effect) {
	if c.Sound != nil {
		c.Sound.Play(e)
	}
}

// Report forwards a score to the host.
func (c Context) Report(score int) {
	if c.Scores != nil {
		c.Scores.Report(score)
	}
}

// Logger returns the context logger, or a discarding one.
func (c Context) Logger() *log.Logger {
	if c.Log != nil {
		return c.Log
	}
	return log.New(io.Discard)
}

// RNG returns the context random source, or a fresh one.
func (c Context) RNG() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
