// Package sessiontest provides a deterministic harness for exercising games
// outside the terminal: a manual clock, a recorded sound port, a score sink
// and a host-style pause flag.
package sessiontest

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// Harness bundles the collaborators a game is constructed with.
type Harness struct {
	Clock   *sched.Manual
	Sounds  *sound.Recorder
	Scores  *Scores
	Paused  bool
	Context session.Context
}

// Scores records every reported score.
type Scores struct {
	Reports []int
}

// Report implements session.ScorePort.
func (s *Scores) Report(score int) {
	s.Reports = append(s.Reports, score)
}

// Last returns the most recent report, or -1 if none.
func (s *Scores) Last() int {
	if len(s.Reports) == 0 {
		return -1
	}
	return s.Reports[len(s.Reports)-1]
}

// New creates a harness whose random source is seeded deterministically.
func New(seed uint64) *Harness {
	h := &Harness{
		Clock:  sched.NewManual(),
		Sounds: &sound.Recorder{},
		Scores: &Scores{},
	}
	h.Context = session.Context{
		Scores: h.Scores,
		Sound:  h.Sounds,
		Paused: func() bool { return h.Paused },
		Sched:  h.Clock,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Log:    log.New(io.Discard),
	}
	return h
}

// PauseGame sets the host flag and pauses g, as the host does.
func (h *Harness) PauseGame(g session.Game) {
	h.Paused = true
	g.Pause()
}

// ResumeGame clears the host flag and resumes g.
func (h *Harness) ResumeGame(g session.Game) {
	h.Paused = false
	g.Resume()
}

// PauseEvery runs g for run, pauses it for a long while and resumes it,
// rounds times over.
func (h *Harness) PauseEvery(g session.Game, run time.Duration, rounds int) {
	for range rounds {
		h.Clock.Advance(run)
		h.PauseGame(g)
		h.Clock.Advance(5 * time.Second)
		h.ResumeGame(g)
	}
}
