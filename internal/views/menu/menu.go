// Package menu renders the game catalog as a selectable list.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/host"
	"github.com/devbreak/arcade/internal/theme"
)

// Model holds the catalog list state.
type Model struct {
	Games    []catalog.Descriptor
	Selected int
	Width    int
}

// New creates a list over games.
func New(games []catalog.Descriptor) Model {
	return Model{Games: games}
}

// Up moves the selection up, wrapping.
func (m *Model) Up() {
	if n := len(m.Games); n > 0 {
		m.Selected = (m.Selected - 1 + n) % n
	}
}

// Down moves the selection down, wrapping.
func (m *Model) Down() {
	if n := len(m.Games); n > 0 {
		m.Selected = (m.Selected + 1) % n
	}
}

// SelectedID returns the id of the selected game, or "".
func (m Model) SelectedID() string {
	if m.Selected < 0 || m.Selected >= len(m.Games) {
		return ""
	}
	return m.Games[m.Selected].ID
}

// View renders the list.
func (m Model) View() string {
	header := theme.StyleHeader.Render("DEVBREAK ARCADE")
	if len(m.Games) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, theme.StyleDimmed.Render("  No games available"))
	}

	lines := []string{header, ""}
	for i, g := range m.Games {
		prefix := "  "
		title := g.Title
		if i == m.Selected {
			prefix = "> "
			title = theme.StyleSelected.Render(title)
		}
		tags := lipgloss.NewStyle().Foreground(theme.CategoryColor(string(g.Category))).Render(string(g.Category)) +
			" " + lipgloss.NewStyle().Foreground(theme.DifficultyColor(string(g.Difficulty))).Render(string(g.Difficulty))
		stats := theme.StyleDimmed.Render(fmt.Sprintf("best %d  played %s", g.BestScore, host.FormatElapsed(g.TimePlayed)))
		lines = append(lines, fmt.Sprintf("%s%-16s %s  %s", prefix, title, tags, stats))
		if i == m.Selected {
			lines = append(lines, theme.StyleDimmed.Render("    "+g.Description))
		}
	}
	return strings.Join(lines, "\n")
}
