package snake

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/theme"
)

// KeyMap holds the Snake key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// DefaultKeyMap returns the default Snake key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
	}
}

// HandleKey implements session.Game.
func (g *Game) HandleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, g.keys.Up):
		g.Turn(Up)
	case key.Matches(msg, g.keys.Down):
		g.Turn(Down)
	case key.Matches(msg, g.keys.Left):
		g.Turn(Left)
	case key.Matches(msg, g.keys.Right):
		g.Turn(Right)
	}
}

var (
	cellEmpty = lipgloss.NewStyle().Foreground(theme.ColorGrid).Render("· ")
	cellHead  = lipgloss.NewStyle().Foreground(theme.ColorSnakeHead).Render("██")
	cellBody  = lipgloss.NewStyle().Foreground(theme.ColorSnakeBody).Render("██")
	cellFood  = lipgloss.NewStyle().Foreground(theme.ColorFood).Render("● ")
)

// View implements session.Game. The grid is redrawn from current state, so
// the final position stays visible under the game-over overlay.
func (g *Game) View(width int) string {
	if len(g.body) == 0 {
		return ""
	}
	occupied := make(map[Point]bool, len(g.body))
	for _, p := range g.body[1:] {
		occupied[p] = true
	}

	var b strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := Point{x, y}
			switch {
			case p == g.body[0]:
				b.WriteString(cellHead)
			case occupied[p]:
				b.WriteString(cellBody)
			case p == g.food:
				b.WriteString(cellFood)
			default:
				b.WriteString(cellEmpty)
			}
		}
		if y < Size-1 {
			b.WriteByte('\n')
		}
	}

	stats := theme.StyleDimmed.Render(fmt.Sprintf("Length: %d   Heading: %s", len(g.body), g.dir))
	board := theme.StyleBorder.Render(b.String())
	view := lipgloss.JoinVertical(lipgloss.Left, stats, board)
	if sum, ok := g.Summary(); ok {
		view = lipgloss.JoinVertical(lipgloss.Left, view, theme.Overlay(min(width, 40), sum.Lines()...))
	}
	return view
}
