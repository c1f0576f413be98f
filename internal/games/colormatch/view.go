package colormatch

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

// HandleKey implements session.Game. Digits 1-4 pick an option.
func (g *Game) HandleKey(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 || n > len(g.round.Options) {
		return
	}
	g.Choose(n - 1)
}

// View implements session.Game.
func (g *Game) View(width int) string {
	stats := theme.StyleDimmed.Render(fmt.Sprintf("Time: %ds", g.remaining))

	prompt := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 2).
		Foreground(theme.PaletteColor(g.round.Ink)).
		Render(g.round.Prompt)

	var swatches []string
	for i, name := range g.round.Options {
		swatch := lipgloss.NewStyle().
			Width(8).
			Height(2).
			Background(theme.PaletteColor(name)).
			Render("")
		label := theme.StyleDimmed.Render(strconv.Itoa(i + 1))
		swatches = append(swatches, lipgloss.NewStyle().
			MarginRight(1).
			Render(lipgloss.JoinVertical(lipgloss.Center, swatch, label)))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, stats, prompt, lipgloss.JoinHorizontal(lipgloss.Top, swatches...))
	if sum, ok := g.Summary(); ok {
		view = lipgloss.JoinVertical(lipgloss.Left, view, theme.Overlay(min(width, 40), sum.Lines()...))
	}
	return view
}
