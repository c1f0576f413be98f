// Package whack implements WhackAMole: moles pop out of nine holes at an
// interval that shrinks as the score grows, for sixty seconds.
package whack

import (
	"fmt"
	"time"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// ID is the catalog id of the game.
const ID = "whack-a-mole"

const (
	Holes         = 9
	Duration      = 60 // seconds
	TickInterval  = time.Second
	BaseSpeed     = 1000 * time.Millisecond
	MinSpeed      = 500 * time.Millisecond
	SpeedStep     = 50 * time.Millisecond
	PointsPerStep = 20
	WhackPoints   = 5
	Cooldown      = 500 * time.Millisecond
)

// SpawnInterval returns the spawn interval for a score.
func SpawnInterval(score int) time.Duration {
	return max(MinSpeed, BaseSpeed-time.Duration(score/PointsPerStep)*SpeedStep)
}

// Game is a WhackAMole session.
type Game struct {
	ctx  session.Context
	life session.Lifecycle

	up        [Holes]bool
	stunned   [Holes]bool
	remaining int
	score     int
	whacks    int
	speed     time.Duration

	countdown session.Loop
	spawn     session.Loop
	lower     session.Loop
	cooldown  [Holes]session.Loop

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
func (g *Game) Speed() time.Duration { return g.speed }
func (g *Game) Whacks() int { return g.whacks }
func (g *Game) Up(i int) bool { return g.up[i] }
func (g *Game) Stunned(i int) bool { return g.stunned[i] }

// Raised returns the index of the raised mole, or -1.
func (g *Game) Raised() int {
	for i, up := range g.up {
		if up {
			return i
		}
	}
	return -1
}

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
	g.stopAll()
	g.hideAll()
	g.remaining = Duration
	g.score = 0
	g.whacks = 0
	g.speed = BaseSpeed
	g.summary = nil
	g.ctx.Report(0)
	g.schedule()
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
	g.eachLoop((*session.Loop).Hold)
}

// Resume implements session.Game.
func (g *Game) Resume() {
	if !g.life.Resume() {
		return
	}
	g.eachLoop((*session.Loop).Release)
}

// Cleanup implements session.Game.
func (g *Game) Cleanup() {
	if !g.life.Release() {
		return
	}
	g.stopAll()
}

func (g *Game) schedule() {
	g.countdown.Every(g.ctx.Sched, TickInterval, g.tick)
	g.spawn.Every(g.ctx.Sched, g.speed, g.spawnMole)
}

// eachLoop applies fn to every timer the game owns.
func (g *Game) eachLoop(fn func(*session.Loop)) {
	fn(&g.countdown)
	fn(&g.spawn)
	fn(&g.lower)
	for i := range g.cooldown {
		fn(&g.cooldown[i])
	}
}

// stopAll cancels every timer the game owns and releases stunned moles.
func (g *Game) stopAll() {
	g.eachLoop((*session.Loop).Stop)
	for i := range g.stunned {
		g.stunned[i] = false
	}
}

func (g *Game) hideAll() {
	for i := range g.up {
		g.up[i] = false
	}
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

func (g *Game) spawnMole() {
	if !g.life.Running() || g.ctx.IsPaused() {
		return
	}
	g.hideAll()
	i := g.ctx.RNG().IntN(Holes)
	g.up[i] = true
	g.lower.After(g.ctx.Sched, g.speed*8/10, func() {
		if g.life.Running() {
			g.up[i] = false
		}
	})
}

// Whack hits hole i. It reports whether a mole was hit.
func (g *Game) Whack(i int) bool {
	if !g.life.Running() || g.ctx.IsPaused() {
		return false
	}
	if i < 0 || i >= Holes || !g.up[i] || g.stunned[i] {
		return false
	}

	g.score += WhackPoints
	g.whacks++
	g.ctx.Report(g.score)
	g.ctx.Play(sound.Whack)

	g.up[i] = false
	g.stunned[i] = true
	g.cooldown[i].After(g.ctx.Sched, Cooldown, func() {
		g.stunned[i] = false
	})

	if next := SpawnInterval(g.score); next != g.speed {
		g.speed = next
		g.spawn.Every(g.ctx.Sched, g.speed, g.spawnMole)
	}
	return true
}

func (g *Game) finish() {
	g.life.End()
	g.stopAll()
	g.hideAll()
	g.ctx.Play(sound.GameOver)
	g.ctx.Logger().Info("whack-a-mole over", "whacks", g.whacks, "score", g.score)

	g.summary = &session.Summary{
		Headline: "Time's Up!",
		Score:    g.score,
		Metrics: []session.Metric{
			{Label: "Moles whacked", Value: fmt.Sprint(g.whacks)},
		},
	}
}
