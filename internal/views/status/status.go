// Package status renders the in-game HUD: title, score, best score, the
// shared m:ss clock, and the pause and sound indicators.
package status

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

// FPS is the frame rate of the score animation.
const FPS = 30

// Model holds the HUD state.
type Model struct {
	Title   string
	Best    int
	Clock   string
	Paused  bool
	SoundOn bool
	// Animate springs the displayed score towards the reported one.
	Animate bool
	Width   int

	score  int
	shown  float64
	vel    float64
	spring harmonica.Spring
}

// New creates a HUD model.
func New() Model {
	return Model{
		Clock:   "0:00",
		SoundOn: true,
		Animate: true,
		spring:  harmonica.NewSpring(harmonica.FPS(FPS), 7.0, 0.6),
	}
}

// SetScore sets the score the HUD moves towards.
func (m *Model) SetScore(score int) {
	m.score = score
	if !m.Animate {
		m.snap()
	}
}

// Reset jumps straight to score without animating.
func (m *Model) Reset(score int) {
	m.score = score
	m.snap()
}

// Step advances the animation by one frame.
func (m *Model) Step() {
	m.shown, m.vel = m.spring.Update(m.shown, m.vel, float64(m.score))
	if math.Abs(m.shown-float64(m.score)) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.snap()
	}
}

func (m *Model) snap() {
	m.shown = float64(m.score)
	m.vel = 0
}

// Animating reports whether more frames are needed.
func (m Model) Animating() bool {
	return m.shown != float64(m.score) || m.vel != 0
}

// Score returns the score target.
func (m Model) Score() int { return m.score }

// DisplayScore returns the score as currently drawn.
func (m Model) DisplayScore() int {
	return int(math.Round(m.shown))
}

// View renders the HUD bar.
func (m Model) View() string {
	width := max(m.Width, 40)

	title := theme.StyleHeader.Render(m.Title)
	score := lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).
		Render(fmt.Sprintf("Score %d", m.DisplayScore()))
	best := theme.StyleDimmed.Render(fmt.Sprintf("Best %d", m.Best))
	clock := fmt.Sprintf("⏱ %s", m.Clock)

	snd := lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render("♪ on")
	if !m.SoundOn {
		snd = theme.StyleDimmed.Render("♪ off")
	}

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")
	content := title + sep + score + sep + best + sep + clock + sep + snd
	if m.Paused {
		content += sep + lipgloss.NewStyle().Foreground(theme.ColorWarning).Bold(true).Render("PAUSED")
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
