package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host-level bindings. Bindings with a Text variant
// are swapped for it while a text-input game is active.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Help     key.Binding
	Debug    key.Binding
	Sound    key.Binding
	Contrast key.Binding
	Theme    key.Binding

	RestartText key.Binding
	HelpText    key.Binding
	DebugText   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev game"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next game"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQ: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "how to play"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d", "f2"),
			key.WithHelp("d", "debug log"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sound"),
		),
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "high contrast"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "light/dark"),
		),
		RestartText: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		HelpText: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "how to play"),
		),
		DebugText: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "debug log"),
		),
	}
}

// forText returns the bindings in effect while a text-input game is
// active.
func (k KeyMap) forText() KeyMap {
	k.Restart = k.RestartText
	k.Help = k.HelpText
	k.Debug = k.DebugText
	return k
}

// gameHints adapts a KeyMap to help.KeyMap for the in-game key list.
type gameHints struct{ KeyMap }

func (h gameHints) ShortHelp() []key.Binding {
	return []key.Binding{h.Pause, h.Restart, h.Help, h.Escape}
}

func (h gameHints) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.Pause, h.Restart}, {h.Help, h.Debug, h.Escape}}
}

// menuHints adapts a KeyMap to help.KeyMap for the catalog screen.
type menuHints struct{ KeyMap }

func (h menuHints) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Enter, h.Help, h.Sound, h.Contrast, h.Theme, h.Debug, h.Quit}
}

func (h menuHints) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.Up, h.Down, h.Enter}, {h.Help, h.Sound, h.Contrast, h.Theme}, {h.Debug, h.Quit}}
}
