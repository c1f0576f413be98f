package typing

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

const historyShown = 12

// HandleKey implements session.Game. Keys go to the text field; every change
// is checked against the target word.
func (g *Game) HandleKey(msg tea.KeyMsg) {
	if !g.life.Running() || g.ctx.IsPaused() {
		return
	}
	before := g.input.Value()
	g.input, _ = g.input.Update(msg)
	if v := g.input.Value(); v != before {
		g.Input(v)
	}
}

// View implements session.Game.
func (g *Game) View(width int) string {
	stats := theme.StyleDimmed.Render(fmt.Sprintf("Time: %ds   Words: %d", g.remaining, g.count))

	word := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorAccent).
		Padding(1, 2).
		Render(g.target)

	var done []string
	for i, w := range g.history {
		if i == historyShown {
			break
		}
		done = append(done, lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render(w))
	}
	hist := theme.StyleDimmed.Render("—")
	if len(done) > 0 {
		hist = strings.Join(done, " ")
	}

	view := lipgloss.JoinVertical(lipgloss.Left, stats, word, g.input.View(), "", hist)
	if sum, ok := g.Summary(); ok {
		view = lipgloss.JoinVertical(lipgloss.Left, view, theme.Overlay(min(width, 40), sum.Lines()...))
	}
	return view
}
