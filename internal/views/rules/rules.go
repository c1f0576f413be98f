// Package rules renders a game's how-to-play text and the key hints of
// the help overlay.
package rules

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/theme"
)

// Glamour style names.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StylePlain = "notty"
)

// Model renders markdown rules, caching the renderer per width and style.
type Model struct {
	Style string
	Help  help.Model

	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a rules model using the given glamour style.
func New(style string) *Model {
	h := help.New()
	h.ShowAll = true
	return &Model{Style: style, Help: h}
}

// StyleFor maps a stored theme name to a glamour style.
func StyleFor(themeName string) string {
	if themeName == "dark" {
		return StyleDark
	}
	return StyleLight
}

// Render converts markdown to terminal output wrapped at width. On a
// renderer error the raw markdown is returned.
func (m *Model) Render(markdown string, width int) string {
	width = max(width, 20)
	if m.renderer == nil || m.width != width || m.style != m.Style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.Style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return markdown
		}
		m.renderer, m.width, m.style = r, width, m.Style
	}
	out, err := m.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}

// View renders the help overlay for d with the key hints below it. toggle
// is the binding that closes the overlay besides esc.
func (m *Model) View(d catalog.Descriptor, keys help.KeyMap, toggle key.Binding, width int) string {
	inner := max(min(width, 80)-6, 20)
	m.Help.Width = inner

	body := m.Render(d.Rules, inner)
	hints := m.Help.View(keys)
	footer := theme.StyleDimmed.Render("esc or " + toggle.Help().Key + " to close")

	content := lipgloss.JoinVertical(lipgloss.Left, body, "", hints, "", footer)
	return lipgloss.NewStyle().
		Width(inner+2).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorAccent).
		Render(content)
}
