// Package debug provides a scrollable overlay of session host events.
package debug

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/devbreak/arcade/internal/host"
	"github.com/devbreak/arcade/internal/theme"
)

const maxEntries = 200

// Entry is a single event log line.
type Entry struct {
	Time    time.Time
	Kind    string
	Game    string
	Message string
}

// Model holds debug log state.
type Model struct {
	Entries []Entry
	Offset  int // scroll offset from the bottom
}

// New creates an empty debug model.
func New() *Model {
	return &Model{}
}

// Record appends a host event.
func (m *Model) Record(e host.Event) {
	m.add(Entry{Time: e.Time, Kind: string(e.Kind), Game: e.Game, Message: e.Detail})
}

// Add appends a free-form entry. The shell uses it for storage failures.
func (m *Model) Add(kind, message string) {
	m.add(Entry{Time: time.Now(), Kind: kind, Message: message})
}

func (m *Model) add(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	m.Entries = append(m.Entries, e)
	if len(m.Entries) > maxEntries {
		m.Entries = m.Entries[len(m.Entries)-maxEntries:]
	}
	m.Offset = 0
}

// ScrollUp moves the viewport up.
func (m *Model) ScrollUp(n int) {
	m.Offset = min(m.Offset+n, max(len(m.Entries)-1, 0))
}

// ScrollDown moves the viewport down.
func (m *Model) ScrollDown(n int) {
	m.Offset = max(m.Offset-n, 0)
}

func panelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder)
}

// View renders the log as an overlay panel.
func (m *Model) View(width, height int) string {
	innerW := max(width-4, 20)
	visible := max(height-6, 3)

	title := theme.StyleHeader.Render(" DEBUG LOG ")
	help := theme.StyleDimmed.Render(fmt.Sprintf("j/k:scroll  esc:close  %d entries", len(m.Entries)))

	if len(m.Entries) == 0 {
		body := theme.StyleDimmed.Render("  No events recorded yet.")
		return panelStyle(innerW).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", help))
	}

	end := max(len(m.Entries)-m.Offset, 0)
	start := max(end-visible, 0)

	lines := make([]string, 0, end-start)
	for _, e := range m.Entries[start:end] {
		ts := theme.StyleDimmed.Render(e.Time.Format("15:04:05.000"))
		kind := lipgloss.NewStyle().Foreground(kindColor(e.Kind)).Width(8).Render(e.Kind)
		msg := e.Message
		if e.Game != "" {
			msg = e.Game + " " + msg
		}
		if innerW > 30 && len(msg) > innerW-26 {
			msg = msg[:innerW-29] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", ts, kind, msg))
	}

	scroll := ""
	if m.Offset > 0 {
		scroll = theme.StyleDimmed.Render(fmt.Sprintf(" ↓ %d more", m.Offset))
	}
	return panelStyle(innerW).Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), scroll, help))
}

func kindColor(kind string) lipgloss.Color {
	switch host.EventKind(kind) {
	case host.EventOpen, host.EventRestart:
		return theme.ColorAccent
	case host.EventBest:
		return theme.ColorHealthy
	case host.EventPause, host.EventResume:
		return theme.ColorWarning
	case host.EventError:
		return theme.ColorDanger
	case "store":
		return theme.ColorWarning
	default:
		return theme.ColorDimmed
	}
}
