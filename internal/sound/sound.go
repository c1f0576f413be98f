// Package sound implements the fire-and-forget sound effect port. A
// terminal has no mixer, so the Player rings the terminal bell for the few
// effects that warrant it and logs the rest at debug level.
package sound

import (
	"io"

	"github.com/charmbracelet/log"
)

// Effect names a known sound effect.
type Effect string

const (
	GameStart     Effect = "game-start"
	GameClose     Effect = "game-close"
	GamePause     Effect = "game-pause"
	GameResume    Effect = "game-resume"
	GameRestart   Effect = "game-restart"
	GameOver      Effect = "game-over"
	GameCompleted Effect = "game-completed"
	CardFlip      Effect = "card-flip"
	MatchFound    Effect = "match-found"
	NoMatch       Effect = "no-match"
	Correct       Effect = "correct"
	Wrong         Effect = "wrong"
	Whack         Effect = "whack"
	FoodEaten     Effect = "food-eaten"
)

var known = map[Effect]bool{
	GameStart:     true,
	GameClose:     true,
	GamePause:     true,
	GameResume:    true,
	GameRestart:   true,
	GameOver:      true,
	GameCompleted: true,
	CardFlip:      true,
	MatchFound:    true,
	NoMatch:       true,
	Correct:       true,
	Wrong:         true,
	Whack:         true,
	FoodEaten:     true,
}

// bell lists the effects that ring the terminal bell.
var bell = map[Effect]bool{
	GameOver:      true,
	GameCompleted: true,
	Wrong:         true,
}

// Known reports whether e is a recognised effect name.
func Known(e Effect) bool {
	return known[e]
}

// Port plays named effects. Implementations never fail: an unknown effect
// or disabled output is a silent no-op.
type Port interface {
	Play(e Effect)
}

// Nop discards every effect.
type Nop struct{}

// Play implements Port.
func (Nop) Play(Effect) {}

// Player is the terminal sound port.
type Player struct {
	out     io.Writer
	log     *log.Logger
	enabled bool
	volume  int
}

// NewPlayer creates an enabled Player at full volume. out may be nil, in
// which case nothing is written.
func NewPlayer(out io.Writer, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{out: out, log: logger, enabled: true, volume: 100}
}

// SetEnabled turns output on or off.
func (p *Player) SetEnabled(on bool) {
	p.enabled = on
}

// Enabled reports whether effects are audible.
func (p *Player) Enabled() bool {
	return p.enabled && p.volume > 0
}

// SetVolume sets the volume in percent, clamped to 0..100.
func (p *Player) SetVolume(v int) {
	p.volume = max(0, min(100, v))
}

// Volume returns the volume in percent.
func (p *Player) Volume() int {
	return p.volume
}

// Play implements Port.
func (p *Player) Play(e Effect) {
	if !p.Enabled() || !known[e] {
		return
	}
	p.log.Debug("sound", "effect", string(e))
	if p.out == nil || !bell[e] {
		return
	}
	if _, err := io.WriteString(p.out, "\a"); err != nil {
		p.log.Debug("bell write failed", "err", err)
	}
}

// Recorder captures played effects in order. Useful for tests and for the
// debug overlay.
type Recorder struct {
	Played []Effect
}

// Play implements Port.
func (r *Recorder) Play(e Effect) {
	if !known[e] {
		return
	}
	r.Played = append(r.Played, e)
}

// Count returns how many times e was played.
func (r *Recorder) Count(e Effect) int {
	n := 0
	for _, p := range r.Played {
		if p == e {
			n++
		}
	}
	return n
}

// Last returns the most recent effect, or "" if none.
func (r *Recorder) Last() Effect {
	if len(r.Played) == 0 {
		return ""
	}
	return r.Played[len(r.Played)-1]
}
