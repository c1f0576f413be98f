package memory

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

// KeyMap holds the MemoryMatch key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Flip  key.Binding
}

// DefaultKeyMap returns the default MemoryMatch key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter", "f"),
			key.WithHelp("enter/f", "flip card"),
		),
	}
}

// HandleKey implements session.Game. Cursor movement is allowed whenever
// the game is running; flips go through Flip and its guards.
func (g *Game) HandleKey(msg tea.KeyMsg) {
	if !g.life.Running() || g.ctx.IsPaused() {
		return
	}
	row, col := g.cursor/Columns, g.cursor%Columns
	rows := Cards / Columns
	switch {
	case key.Matches(msg, g.keys.Up):
		row = (row - 1 + rows) % rows
	case key.Matches(msg, g.keys.Down):
		row = (row + 1) % rows
	case key.Matches(msg, g.keys.Left):
		col = (col - 1 + Columns) % Columns
	case key.Matches(msg, g.keys.Right):
		col = (col + 1) % Columns
	case key.Matches(msg, g.keys.Flip):
		g.Flip(g.cursor)
		return
	default:
		return
	}
	g.cursor = row*Columns + col
}

// View implements session.Game.
func (g *Game) View(width int) string {
	var rows []string
	for r := 0; r < Cards/Columns; r++ {
		var cells []string
		for c := 0; c < Columns; c++ {
			i := r*Columns + c
			cells = append(cells, g.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	stats := theme.StyleDimmed.Render(fmt.Sprintf("Moves: %d   Pairs: %d/%d", g.moves, g.matched, Pairs))
	board := lipgloss.JoinVertical(lipgloss.Left, rows...)
	view := lipgloss.JoinVertical(lipgloss.Left, board, stats)

	if sum, ok := g.Summary(); ok {
		view = lipgloss.JoinVertical(lipgloss.Left, view, theme.Overlay(min(width, 40), sum.Lines()...))
	}
	return view
}

func (g *Game) renderCard(i int) string {
	card := g.cards[i]
	face := "?"
	fg := theme.ColorBright
	border := theme.ColorCardBack
	switch {
	case card.Matched:
		face = Symbols[card.Symbol]
		border = theme.ColorMatched
	case card.FaceUp:
		face = Symbols[card.Symbol]
		border = theme.ColorBright
	}
	style := lipgloss.NewStyle().
		Width(4).
		Align(lipgloss.Center).
		Foreground(fg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
	if i == g.cursor && g.life.Running() {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(theme.ColorAccent)
	}
	return style.Render(face)
}
