// Package colormatch implements ColorMatch: pick the color named by the
// prompt while the prompt itself is drawn in a distracting ink.
package colormatch

import (
	"strconv"
	"time"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// ID is the catalog id of the game.
const ID = "color-match"

const (
	Duration      = 30 // seconds
	TickInterval  = time.Second
	Options       = 4
	CorrectPoints = 5
	WrongPenalty  = 2
	NextRound     = 500 * time.Millisecond
)

// Colors is the palette prompts and options are drawn from.
var Colors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

// Round is one prompt and its answer options.
type Round struct {
	// Prompt is the color name shown, and the correct answer.
	Prompt string
	// Ink is the color the prompt is rendered in. It is not scored.
	Ink     string
	Options []string
}

// Game is a ColorMatch session.
type Game struct {
	ctx  session.Context
	life session.Lifecycle

	round     Round
	remaining int
	score     int
	correct   int
	wrong     int

	countdown session.Loop
	next      session.Loop

	summary *session.Summary
}

var _ session.Game = (*Game)(nil)

// New creates an unstarted game.
func New(ctx session.Context) *Game {
	return &Game{ctx: ctx}
}

func (g *Game) ID() string { return ID }
func (g *Game) State() session.State { return g.life.State() }
func (g *Game) Score() int { return g.score }
func (g *Game) InputMode() session.InputMode { return session.InputKeys }
func (g *Game) Remaining() int { return g.remaining }
func (g *Game) Round() Round { return g.round }

// Advancing reports whether a correct answer is waiting for the next round.
func (g *Game) Advancing() bool { return g.next.Active() }

// Summary implements session.Game.
func (g *Game) Summary() (session.Summary, bool) {
	if g.summary == nil {
		return session.Summary{}, false
	}
	return *g.summary, true
}

// Start implements session.Game.
func (g *Game) Start() {
	if !g.life.Begin() {
		return
	}
	g.next.Stop()
	g.remaining = Duration
	g.score = 0
	g.correct = 0
	g.wrong = 0
	g.summary = nil
	g.ctx.Report(0)
	g.newRound()
	g.countdown.Every(g.ctx.Sched, TickInterval, g.tick)
}

// Restart implements session.Game.
func (g *Game) Restart() {
	g.Start()
}

// Pause implements session.Game.
func (g *Game) Pause() {
	if !g.life.Pause() {
		return
	}
	g.countdown.Hold()
	g.next.Hold()
}

// Resume implements session.Game.
func (g *Game) Resume() {
	if !g.life.Resume() {
		return
	}
	g.countdown.Release()
	g.next.Release()
}

// Cleanup implements session.Game.
func (g *Game) Cleanup() {
	if !g.life.Release() {
		return
	}
	g.countdown.Stop()
	g.next.Stop()
}

func (g *Game) tick() {
	if !g.life.Running() || g.ctx.IsPaused() {
		return
	}
	g.remaining--
	if g.remaining <= 0 {
		g.remaining = 0
		g.finish()
	}
}

func (g *Game) newRound() {
	rng := g.ctx.RNG()
	g.round = Round{
		Prompt: Colors[rng.IntN(len(Colors))],
		Ink:    Colors[rng.IntN(len(Colors))],
	}

	opts := make([]string, len(Colors))
	for i, p := range rng.Perm(len(Colors)) {
		opts[i] = Colors[p]
	}
	opts = opts[:Options]
	found := false
	for _, o := range opts {
		if o == g.round.Prompt {
			found = true
			break
		}
	}
	if !found {
		opts[0] = g.round.Prompt
	}
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	g.round.Options = opts
}

func (g *Game) scheduleNext() {
	g.next.After(g.ctx.Sched, NextRound, func() {
		if !g.life.Running() {
			return
		}
		if g.ctx.IsPaused() {
			g.scheduleNext()
			return
		}
		g.newRound()
	})
}

// Choose selects option i. It reports whether the answer was correct.
// Choices are ignored while a correct answer waits for the next round.
func (g *Game) Choose(i int) bool {
	if !g.life.Running() || g.ctx.IsPaused() || g.Advancing() {
		return false
	}
	if i < 0 || i >= len(g.round.Options) {
		return false
	}

	if g.round.Options[i] == g.round.Prompt {
		g.score += CorrectPoints
		g.correct++
		g.ctx.Report(g.score)
		g.ctx.Play(sound.Correct)
		g.scheduleNext()
		return true
	}

	g.score = max(0, g.score-WrongPenalty)
	g.wrong++
	g.ctx.Report(g.score)
	g.ctx.Play(sound.Wrong)
	return false
}

func (g *Game) finish() {
	g.life.End()
	g.countdown.Stop()
	g.next.Stop()
	g.ctx.Play(sound.GameOver)
	g.ctx.Logger().Info("color match over", "correct", g.correct, "wrong", g.wrong, "score", g.score)

	g.summary = &session.Summary{
		Headline: "Time's Up!",
		Score:    g.score,
		Metrics: []session.Metric{
			{Label: "Correct", Value: strconv.Itoa(g.correct)},
			{Label: "Wrong", Value: strconv.Itoa(g.wrong)},
		},
	}
}
