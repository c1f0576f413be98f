// Package app is the root Bubble Tea model: the catalog screen, the
// in-game screen with its HUD, and the help and debug overlays.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/host"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
	"github.com/devbreak/arcade/internal/store"
	"github.com/devbreak/arcade/internal/theme"
	"github.com/devbreak/arcade/internal/views/debug"
	"github.com/devbreak/arcade/internal/views/menu"
	"github.com/devbreak/arcade/internal/views/rules"
	"github.com/devbreak/arcade/internal/views/status"
)

// Screen identifies the main view.
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenGame
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayDebug
)

// frameMsg advances the HUD score animation.
type frameMsg struct{}

func frame() tea.Cmd {
	return tea.Tick(time.Second/status.FPS, func(time.Time) tea.Msg { return frameMsg{} })
}

// Options wires the model to its collaborators. Host, Sched and Progress
// are required; the host must have been built on the same Sched.
type Options struct {
	Host     *host.Host
	Sched    *sched.Tea
	Progress *store.Progress
	// Store, when set, has its swallowed errors mirrored into the debug log.
	Store  *store.Safe
	Player *sound.Player
	Log      *log.Logger
	// Animations enables the HUD score spring.
	Animations bool
	// Start opens this game immediately when set.
	Start string
}

// Model is the root Bubble Tea model.
type Model struct {
	host     *host.Host
	sched    *sched.Tea
	progress *store.Progress
	player   *sound.Player
	log      *log.Logger

	keys   KeyMap
	width  int
	height int

	screen  Screen
	overlay Overlay
	start   string
	message string
	framing bool

	menu   menu.Model
	hud    status.Model
	footer help.Model
	rules  *rules.Model
	debug  *debug.Model
}

// New creates the root model.
func New(opts Options) Model {
	m := Model{
		host:     opts.Host,
		sched:    opts.Sched,
		progress: opts.Progress,
		player:   opts.Player,
		log:      opts.Log,
		keys:     DefaultKeyMap(),
		start:    opts.Start,
		menu:     menu.New(opts.Host.Catalog().Games()),
		hud:      status.New(),
		footer:   help.New(),
		rules:    rules.New(rules.StyleFor(opts.Progress.Theme())),
		debug:    debug.New(),
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	m.hud.Animate = opts.Animations
	m.hud.SoundOn = m.soundOn()
	m.host.Subscribe(m.debug.Record)
	if opts.Store != nil {
		dbg := m.debug
		opts.Store.OnFailure(func(op, key string, err error) {
			dbg.Add("store", fmt.Sprintf("%s %s: %v", op, key, err))
		})
	}
	return m
}

// Init opens the start game, if any.
func (m Model) Init() tea.Cmd {
	if m.start == "" {
		return nil
	}
	id := m.start
	return func() tea.Msg { return openMsg{id: id} }
}

type openMsg struct{ id string }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hud.Width = msg.Width
		m.menu.Width = msg.Width
		m.footer.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case openMsg:
		m.open(msg.id)
		return m, m.after()

	case sched.FireMsg:
		m.sched.Fire(msg)
		m.sync()
		return m, m.after()

	case frameMsg:
		m.hud.Step()
		if m.hud.Animating() {
			return m, frame()
		}
		m.framing = false
		return m, nil
	}
	return m, nil
}

// after collects the scheduler's pending ticks and, when the HUD needs
// it, an animation frame.
func (m *Model) after() tea.Cmd {
	cmds := []tea.Cmd{m.sched.Cmd()}
	if m.hud.Animating() && !m.framing {
		m.framing = true
		cmds = append(cmds, frame())
	}
	return tea.Batch(cmds...)
}

// sync copies the host's session state into the HUD.
func (m *Model) sync() {
	if !m.host.Active() {
		return
	}
	d := m.host.Descriptor()
	m.hud.Title = d.Title
	m.hud.Best = d.BestScore
	m.hud.Clock = host.FormatElapsed(m.host.Elapsed())
	m.hud.Paused = m.host.Paused()
	m.hud.SoundOn = m.soundOn()
	m.hud.SetScore(m.host.Score())
}

func (m *Model) soundOn() bool {
	return m.player != nil && m.player.Enabled()
}

func (m *Model) keyMap() KeyMap {
	if m.screen == ScreenGame && m.host.Game() != nil && m.host.Game().InputMode() == session.InputText {
		return m.keys.forText()
	}
	return m.keys
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMap()

	if key.Matches(msg, keys.ForceQ) {
		return m.quit()
	}

	if m.overlay != OverlayNone {
		switch {
		case key.Matches(msg, keys.Escape),
			m.overlay == OverlayHelp && key.Matches(msg, keys.Help),
			m.overlay == OverlayDebug && key.Matches(msg, keys.Debug):
			m.overlay = OverlayNone
		case m.overlay == OverlayDebug && key.Matches(msg, keys.Up):
			m.debug.ScrollUp(1)
		case m.overlay == OverlayDebug && key.Matches(msg, keys.Down):
			m.debug.ScrollDown(1)
		}
		return m, nil
	}

	if m.screen == ScreenGame {
		return m.handleGameKey(msg, keys)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Up):
		m.menu.Up()
	case key.Matches(msg, keys.Down):
		m.menu.Down()
	case key.Matches(msg, keys.Enter):
		m.open(m.menu.SelectedID())
		return m, m.after()
	case key.Matches(msg, keys.Help):
		if m.menu.SelectedID() != "" {
			m.overlay = OverlayHelp
		}
	case key.Matches(msg, keys.Debug):
		m.overlay = OverlayDebug
	case key.Matches(msg, keys.Sound):
		m.toggleSound()
	case key.Matches(msg, keys.Contrast):
		m.toggleContrast()
	case key.Matches(msg, keys.Theme):
		m.toggleTheme()
	}
	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg, keys KeyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.closeGame()
		return m, nil
	case key.Matches(msg, keys.Pause):
		m.lifecycle("pause", m.host.TogglePause())
	case key.Matches(msg, keys.Restart):
		m.lifecycle("restart", m.host.Restart())
		m.hud.Reset(0)
	case key.Matches(msg, keys.Help):
		m.lifecycle("pause", m.host.Pause())
		m.overlay = OverlayHelp
	case key.Matches(msg, keys.Debug):
		m.overlay = OverlayDebug
	default:
		m.host.HandleKey(msg)
	}
	m.sync()
	return m, m.after()
}

// lifecycle logs a failed host call and shows it in the status line.
func (m *Model) lifecycle(op string, err error) {
	if err == nil {
		return
	}
	m.log.Warn("session "+op+" failed", "err", err)
	m.message = err.Error()
}

func (m *Model) open(id string) {
	if err := m.host.Open(id); err != nil {
		m.message = err.Error()
		return
	}
	m.message = ""
	m.screen = ScreenGame
	m.overlay = OverlayNone
	m.hud.Reset(0)
	m.sync()
}

func (m *Model) closeGame() {
	res, err := m.host.Close()
	m.screen = ScreenCatalog
	m.overlay = OverlayNone
	m.menu.Games = m.host.Catalog().Games()
	if err != nil {
		return
	}
	m.message = fmt.Sprintf("%s: %d points in %s", res.GameID, res.Score, host.FormatElapsed(res.Elapsed))
	if res.NewBest {
		m.message += " (new best!)"
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.host.Active() {
		m.closeGame()
	}
	return m, tea.Quit
}

func (m *Model) toggleSound() {
	prefs := m.progress.Preferences()
	prefs.SoundEnabled = !prefs.SoundEnabled
	m.progress.SavePreferences(prefs)
	if m.player != nil {
		m.player.SetEnabled(prefs.SoundEnabled && !m.progress.Settings().MuteEffects)
	}
	m.hud.SoundOn = m.soundOn()
	m.message = "sound " + onOff(prefs.SoundEnabled)
}

func (m *Model) toggleContrast() {
	s := m.progress.Settings()
	s.HighContrast = !s.HighContrast
	m.progress.SaveSettings(s)
	theme.Apply(s.HighContrast)
	m.message = "high contrast " + onOff(s.HighContrast)
}

func (m *Model) toggleTheme() {
	name := store.ThemeDark
	if m.progress.Theme() == store.ThemeDark {
		name = store.ThemeLight
	}
	m.progress.SetTheme(name)
	m.rules.Style = rules.StyleFor(name)
	m.message = name + " theme"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Screen returns the active screen.
func (m Model) Screen() Screen { return m.screen }

// Overlay returns the active overlay.
func (m Model) Overlay() Overlay { return m.overlay }

// Message returns the status line text.
func (m Model) Message() string { return m.message }

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.overlay {
	case OverlayHelp:
		var hints help.KeyMap = menuHints{m.keys}
		if m.screen == ScreenGame {
			hints = gameHints{m.keyMap()}
		}
		return m.rules.View(m.helpTarget(), hints, m.keyMap().Help, m.width)
	case OverlayDebug:
		return m.debug.View(m.width, m.height)
	}

	if m.screen == ScreenGame && m.host.Active() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.hud.View(),
			m.host.Game().View(m.width),
			m.footer.View(gameHints{m.keyMap()}),
		)
	}

	sections := []string{m.menu.View(), ""}
	if m.message != "" {
		sections = append(sections, theme.StyleDimmed.Render("  "+m.message))
	}
	sections = append(sections, m.footer.View(menuHints{m.keys}))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) helpTarget() catalog.Descriptor {
	if m.host.Active() {
		return m.host.Descriptor()
	}
	d, _ := m.host.Catalog().Get(m.menu.SelectedID())
	return d
}
