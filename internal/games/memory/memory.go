// Package memory implements MemoryMatch: sixteen face-down cards holding
// eight symbols twice, flipped two at a time until every pair is found.
package memory

import (
	"fmt"
	"time"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// ID is the catalog id of the game.
const ID = "memory-match"

const (
	Pairs         = 8
	Cards         = 2 * Pairs
	Columns       = 4
	MatchPoints   = 10
	FlipBackDelay = time.Second
)

// Symbols are the card faces.
var Symbols = [Pairs]string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼"}

// Card is one card on the board. Symbol indexes Symbols.
type Card struct {
	Symbol  int
	FaceUp  bool
	Matched bool
}

// Game is a MemoryMatch session.
type Game struct {
	ctx  session.Context
	life session.Lifecycle
	keys KeyMap

	cards   [Cards]Card
	flipped []int
	matched int
	moves   int
	score   int
	bonus   int
	cursor  int

	// flipBack resolves a mismatch. It is held across a pause; pendingBack
	// stays set until the pair has actually turned back.
	flipBack    session.Loop
	pendingBack bool

	summary *session.Summary
}

var _ session.Game = (*Game)(nil)

// New creates an unstarted game.
func New(ctx session.Context) *Game {
	return &Game{ctx: ctx, keys: DefaultKeyMap()}
}

func (g *Game) ID() string { return ID }
func (g *Game) State() session.State { return g.life.State() }
func (g *Game) Score() int { return g.score }
func (g *Game) InputMode() session.InputMode { return session.InputKeys }
func (g *Game) Moves() int { return g.moves }
func (g *Game) MatchedPairs() int { return g.matched }
func (g *Game) Bonus() int { return g.bonus }
func (g *Game) PendingFlipBack() bool { return g.pendingBack }
func (g *Game) Cursor() int { return g.cursor }
func (g *Game) Card(i int) Card { return g.cards[i] }

// Board returns a copy of the cards.
func (g *Game) Board() [Cards]Card {
	return g.cards
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
	g.deal()
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
	g.flipBack.Hold()
}

// Resume implements session.Game.
func (g *Game) Resume() {
	if !g.life.Resume() {
		return
	}
	switch {
	case g.flipBack.Held():
		g.flipBack.Release()
	case g.pendingBack:
		g.scheduleFlipBack()
	}
}

// Cleanup implements session.Game.
func (g *Game) Cleanup() {
	if !g.life.Release() {
		return
	}
	g.flipBack.Stop()
	g.pendingBack = false
	g.flipped = nil
}

func (g *Game) deal() {
	g.flipBack.Stop()
	g.pendingBack = false

	perm := g.ctx.RNG().Perm(Cards)
	for i, p := range perm {
		g.cards[i] = Card{Symbol: p % Pairs}
	}
	g.flipped = g.flipped[:0]
	g.matched = 0
	g.moves = 0
	g.score = 0
	g.bonus = 0
	g.cursor = 0
	g.summary = nil
	g.ctx.Report(0)
}

// Flip turns card i face up. It reports whether the flip was accepted.
func (g *Game) Flip(i int) bool {
	if !g.life.Running() || g.ctx.IsPaused() {
		return false
	}
	if i < 0 || i >= Cards {
		return false
	}
	c := &g.cards[i]
	if c.FaceUp || c.Matched || len(g.flipped) == 2 {
		return false
	}

	c.FaceUp = true
	g.flipped = append(g.flipped, i)
	g.ctx.Play(sound.CardFlip)
	if len(g.flipped) < 2 {
		return true
	}

	g.moves++
	a, b := g.flipped[0], g.flipped[1]
	if g.cards[a].Symbol != g.cards[b].Symbol {
		g.scheduleFlipBack()
		return true
	}

	g.cards[a].Matched = true
	g.cards[b].Matched = true
	g.flipped = g.flipped[:0]
	g.matched++
	g.score += MatchPoints
	g.ctx.Report(g.score)
	g.ctx.Play(sound.MatchFound)

	if g.matched == Pairs {
		g.finish()
	}
	return true
}

func (g *Game) scheduleFlipBack() {
	g.pendingBack = true
	g.flipBack.After(g.ctx.Sched, FlipBackDelay, g.resolveMismatch)
}

func (g *Game) resolveMismatch() {
	if g.life.State() == session.Cleaned || g.ctx.IsPaused() {
		return
	}
	for _, i := range g.flipped {
		g.cards[i].FaceUp = false
	}
	g.flipped = g.flipped[:0]
	g.pendingBack = false
	g.ctx.Play(sound.NoMatch)
}

// CompletionBonus returns the bonus for a game finished in moves moves.
func CompletionBonus(moves int) int {
	return max(0, 100-(moves-Pairs)*5)
}

func (g *Game) finish() {
	g.bonus = CompletionBonus(g.moves)
	g.score += g.bonus
	g.ctx.Report(g.score)
	g.life.End()
	g.flipBack.Stop()
	g.ctx.Play(sound.GameCompleted)
	g.ctx.Logger().Info("memory match completed", "moves", g.moves, "bonus", g.bonus, "score", g.score)

	g.summary = &session.Summary{
		Headline: "Great job!",
		Score:    g.score,
		Metrics: []session.Metric{
			{Label: "Moves", Value: fmt.Sprint(g.moves)},
			{Label: "Bonus points", Value: fmt.Sprint(g.bonus)},
		},
	}
}
