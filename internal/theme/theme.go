// Package theme provides the Lip Gloss color palette and reusable styles
// for the arcade TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Difficulty colors.
var (
	ColorEasy   = lipgloss.Color("#22c55e")
	ColorMedium = lipgloss.Color("#d97706")
	ColorHard   = lipgloss.Color("#dc2626")
)

// Category colors.
var (
	ColorMemory = lipgloss.Color("#a855f7")
	ColorReflex = lipgloss.Color("#3b82f6")
	ColorPuzzle = lipgloss.Color("#06b6d4")
)

// Game piece colors.
var (
	ColorCardBack  = lipgloss.Color("#4a4de7")
	ColorMatched   = lipgloss.Color("#16a34a")
	ColorMole      = lipgloss.Color("#b45309")
	ColorHole      = lipgloss.Color("#374151")
	ColorSnakeHead = lipgloss.Color("#4a4de7")
	ColorSnakeBody = lipgloss.Color("#6c757d")
	ColorFood      = lipgloss.Color("#dc2626")
	ColorGrid      = lipgloss.Color("#1f2937")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorAccent  = lipgloss.Color("#4a4de7")
	ColorHealthy = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
)

// Palette maps the game color names to terminal colors.
var Palette = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#ff0000"),
	"blue":   lipgloss.Color("#0000ff"),
	"green":  lipgloss.Color("#00ff00"),
	"yellow": lipgloss.Color("#ffff00"),
	"purple": lipgloss.Color("#800080"),
	"orange": lipgloss.Color("#ffa500"),
}

// DifficultyColor returns the color for a difficulty name.
func DifficultyColor(d string) lipgloss.Color {
	switch d {
	case "easy":
		return ColorEasy
	case "medium":
		return ColorMedium
	case "hard":
		return ColorHard
	default:
		return ColorDimmed
	}
}

// CategoryColor returns the color for a category name.
func CategoryColor(c string) lipgloss.Color {
	switch c {
	case "memory":
		return ColorMemory
	case "reflex":
		return ColorReflex
	case "puzzle":
		return ColorPuzzle
	default:
		return ColorDimmed
	}
}

// PaletteColor returns the terminal color for a game color name.
func PaletteColor(name string) lipgloss.Color {
	if c, ok := Palette[name]; ok {
		return c
	}
	return ColorDimmed
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorDanger)
)

// Apply switches between the normal and high-contrast chrome. It is
// called once when settings load or change, before rendering.
func Apply(highContrast bool) {
	if highContrast {
		ColorBorder = lipgloss.Color("#ffffff")
		ColorDimmed = lipgloss.Color("#d1d5db")
		ColorAccent = lipgloss.Color("#ffff00")
	} else {
		ColorBorder = lipgloss.Color("#4b5563")
		ColorDimmed = lipgloss.Color("#6b7280")
		ColorAccent = lipgloss.Color("#4a4de7")
	}
	StyleBorder = StyleBorder.BorderForeground(ColorBorder)
	StyleDimmed = StyleDimmed.Foreground(ColorDimmed)
}

// Overlay renders an end-of-game or modal panel.
func Overlay(width int, lines ...string) string {
	if width < 24 {
		width = 24
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(ColorAccent).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
