// Package typing implements TypingSpeed: type as many programming terms as
// possible before a 30 second countdown runs out.
package typing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// ID is the catalog id of the game.
const ID = "typing-speed"

const (
	Duration     = 30 // seconds
	TickInterval = time.Second
	BasePoints   = 10
	LetterPoints = 2
)

// Words is the pool target words are drawn from.
var Words = []string{
	"function", "variable", "const", "let", "array",
	"object", "string", "boolean", "number", "null",
	"undefined", "async", "await", "promise", "callback",
	"event", "listener", "component", "prop", "state",
	"render", "effect", "hook", "context", "redux",
	"react", "angular", "vue", "node", "express",
	"api", "rest", "json", "xml", "http",
	"request", "response", "server", "client", "database",
	"query", "model", "view", "controller", "method",
	"class", "import", "export", "module", "package",
	"bug", "debug", "error", "exception", "try",
	"catch", "finally", "throw", "git", "commit",
	"branch", "merge", "pull", "push", "clone",
}

// Game is a TypingSpeed session.
type Game struct {
	ctx  session.Context
	life session.Lifecycle

	words     []string
	target    string
	remaining int
	count     int
	score     int
	history   []string
	input     textinput.Model

	countdown session.Loop
	summary   *session.Summary
}

var _ session.Game = (*Game)(nil)

// New creates an unstarted game drawing from Words.
func New(ctx session.Context) *Game {
	return NewWithWords(ctx, Words)
}

// NewWithWords creates an unstarted game drawing from words.
func NewWithWords(ctx session.Context, words []string) *Game {
	ti := textinput.New()
	ti.Placeholder = "Type the word here..."
	ti.Prompt = "› "
	ti.CharLimit = 32
	return &Game{ctx: ctx, words: words, input: ti}
}

func (g *Game) ID() string { return ID }
func (g *Game) State() session.State { return g.life.State() }
func (g *Game) Score() int { return g.score }
func (g *Game) InputMode() session.InputMode { return session.InputText }
func (g *Game) Target() string { return g.target }
func (g *Game) Remaining() int { return g.remaining }
func (g *Game) WordCount() int { return g.count }

// History returns completed words, most recent first.
func (g *Game) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
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
	g.remaining = Duration
	g.count = 0
	g.score = 0
	g.history = nil
	g.summary = nil
	g.input.SetValue("")
	g.input.Focus()
	g.nextWord()
	g.ctx.Report(0)
	g.countdown.Every(g.ctx.Sched, TickInterval, g.tick)
}

// Restart implements session.Game.
func (g *Game) Restart() {
	g.countdown.Stop()
	g.Start()
}

// Pause implements session.Game.
func (g *Game) Pause() {
	if !g.life.Pause() {
		return
	}
	g.countdown.Hold()
	g.input.Blur()
}

// Resume implements session.Game.
func (g *Game) Resume() {
	if !g.life.Resume() {
		return
	}
	g.input.Focus()
	g.countdown.Release()
}

// Cleanup implements session.Game.
func (g *Game) Cleanup() {
	if !g.life.Release() {
		return
	}
	g.countdown.Stop()
	g.input.Blur()
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

func (g *Game) nextWord() {
	if len(g.words) == 0 {
		g.target = ""
		return
	}
	g.target = g.words[g.ctx.RNG().IntN(len(g.words))]
}

// Input handles a change of the input field. It reports whether the value
// completed the target word.
func (g *Game) Input(value string) bool {
	if !g.life.Running() || g.ctx.IsPaused() || g.target == "" {
		return false
	}
	if strings.TrimSpace(value) != g.target {
		return false
	}

	g.count++
	g.score += BasePoints + LetterPoints*len(g.target)
	g.ctx.Report(g.score)
	g.history = append([]string{g.target}, g.history...)
	g.ctx.Play(sound.Correct)
	g.input.SetValue("")
	g.nextWord()
	return true
}

// WordsPerMinute converts a word count over the fixed duration to WPM.
func WordsPerMinute(words int) int {
	return int(math.Round(float64(words) / Duration * 60))
}

func (g *Game) finish() {
	g.life.End()
	g.countdown.Stop()
	g.input.Blur()
	wpm := WordsPerMinute(g.count)
	g.ctx.Play(sound.GameOver)
	g.ctx.Logger().Info("typing round over", "words", g.count, "wpm", wpm, "score", g.score)

	g.summary = &session.Summary{
		Headline: "Time's Up!",
		Score:    g.score,
		Metrics: []session.Metric{
			{Label: "Words typed", Value: fmt.Sprint(g.count)},
			{Label: "Words per minute", Value: fmt.Sprint(wpm)},
		},
	}
}
