package whack

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

const gridSide = 3

// HandleKey implements session.Game. Digits 1-9 map to holes row by row.
func (g *Game) HandleKey(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 || n > Holes {
		return
	}
	g.Whack(n - 1)
}

// View implements session.Game.
func (g *Game) View(width int) string {
	var rows []string
	for r := 0; r < gridSide; r++ {
		var cells []string
		for c := 0; c < gridSide; c++ {
			cells = append(cells, g.renderHole(r*gridSide+c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	stats := theme.StyleDimmed.Render(fmt.Sprintf("Time: %ds   Speed: %dms", g.remaining, g.speed.Milliseconds()))
	view := lipgloss.JoinVertical(lipgloss.Left, stats, lipgloss.JoinVertical(lipgloss.Left, rows...))
	if sum, ok := g.Summary(); ok {
		view = lipgloss.JoinVertical(lipgloss.Left, view, theme.Overlay(min(width, 40), sum.Lines()...))
	}
	return view
}

func (g *Game) renderHole(i int) string {
	face := "  "
	border := theme.ColorHole
	switch {
	case g.stunned[i]:
		face = "😵"
		border = theme.ColorDanger
	case g.up[i]:
		face = "😊"
		border = theme.ColorMole
	}
	label := theme.StyleDimmed.Render(strconv.Itoa(i + 1))
	return lipgloss.NewStyle().
		Width(6).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(lipgloss.JoinVertical(lipgloss.Center, face, label))
}
