// Package snake implements Snake on a 20x20 grid. There is no time limit;
// the game ends when the snake leaves the grid or runs into itself.
package snake

import (
	"slices"
	"strconv"
	"time"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
)

// ID is the catalog id of the game.
const ID = "snake"

const (
	Size       = 20
	Interval   = 150 * time.Millisecond
	FoodPoints = 10
)

// Point is a grid cell. X grows to the right and Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// InBounds reports whether p lies on the grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Start and StartFood are the positions of the first round.
var (
	Start     = Point{10, 10}
	StartFood = Point{15, 15}
)

// Direction is a heading on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) delta() Point {
	switch d {
	case Up:
		return Point{0, -1}
	case Down:
		return Point{0, 1}
	case Left:
		return Point{-1, 0}
	default:
		return Point{1, 0}
	}
}

// Game is a Snake session.
type Game struct {
	ctx  session.Context
	life session.Lifecycle
	keys KeyMap

	body   []Point // head first
	dir    Direction
	next   Direction
	food   Point
	score  int
	eaten  int
	rounds int

	loop    session.Loop
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
func (g *Game) Head() Point { return g.body[0] }
func (g *Game) Len() int { return len(g.body) }
func (g *Game) Food() Point { return g.food }
func (g *Game) Direction() Direction { return g.dir }

// Body returns the snake cells, head first.
func (g *Game) Body() []Point {
	return slices.Clone(g.body)
}

// Summary implements session.Game.
func (g *Game) Summary() (session.Summary, bool) {
	if g.summary == nil {
		return session.Summary{}, false
	}
	return *g.summary, true
}

// Start implements session.Game. The first round uses the fixed start
// food; later rounds place it at random.
func (g *Game) Start() {
	if !g.life.Begin() {
		return
	}
	g.body = []Point{Start}
	g.dir = Right
	g.next = Right
	g.score = 0
	g.eaten = 0
	g.summary = nil
	if g.rounds == 0 {
		g.food = StartFood
	} else {
		g.placeFood()
	}
	g.rounds++
	g.ctx.Report(0)
	g.loop.Every(g.ctx.Sched, Interval, g.step)
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
	g.loop.Hold()
}

// Resume implements session.Game.
func (g *Game) Resume() {
	if !g.life.Resume() {
		return
	}
	g.loop.Release()
}

// Cleanup implements session.Game.
func (g *Game) Cleanup() {
	if !g.life.Release() {
		return
	}
	g.loop.Stop()
}

// Turn latches the heading applied on the next step. Reversing into the
// body is rejected.
func (g *Game) Turn(d Direction) bool {
	if !g.life.Running() || g.ctx.IsPaused() {
		return false
	}
	if d == g.dir.Opposite() {
		return false
	}
	g.next = d
	return true
}

func (g *Game) step() {
	if !g.life.Running() || g.ctx.IsPaused() {
		return
	}
	g.dir = g.next
	head := g.body[0].add(g.dir.delta())
	if !head.InBounds() || slices.Contains(g.body, head) {
		g.finish()
		return
	}

	g.body = append([]Point{head}, g.body...)
	if head != g.food {
		g.body = g.body[:len(g.body)-1]
		return
	}

	g.score += FoodPoints
	g.eaten++
	g.ctx.Report(g.score)
	g.ctx.Play(sound.FoodEaten)
	if !g.placeFood() {
		g.finish()
	}
}

// placeFood puts food on a random free cell by rejection sampling. It
// reports false when the snake fills the grid.
func (g *Game) placeFood() bool {
	if len(g.body) >= Size*Size {
		return false
	}
	rng := g.ctx.RNG()
	for {
		p := Point{rng.IntN(Size), rng.IntN(Size)}
		if !slices.Contains(g.body, p) {
			g.food = p
			return true
		}
	}
}

func (g *Game) finish() {
	g.life.End()
	g.loop.Stop()
	g.ctx.Play(sound.GameOver)
	g.ctx.Logger().Info("snake over", "length", len(g.body), "score", g.score)

	g.summary = &session.Summary{
		Headline: "Game Over!",
		Score:    g.score,
		Metrics: []session.Metric{
			{Label: "Length", Value: strconv.Itoa(len(g.body))},
			{Label: "Food eaten", Value: strconv.Itoa(g.eaten)},
		},
	}
}
