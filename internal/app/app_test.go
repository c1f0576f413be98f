package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/host"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
	"github.com/devbreak/arcade/internal/store"
)

type fixture struct {
	m        Model
	sched    *sched.Tea
	host     *host.Host
	progress *store.Progress
	player   *sound.Player
}

func newFixture(t *testing.T, start string) *fixture {
	t.Helper()
	return newFixtureOn(t, start, store.NewMemory())
}

func newFixtureOn(t *testing.T, start string, backend store.Backend) *fixture {
	t.Helper()
	kv := store.NewSafe(backend, nil)
	f := &fixture{
		sched:    sched.NewTea(),
		progress: store.NewProgress(kv, nil),
		player:   sound.NewPlayer(io.Discard, nil),
	}
	f.host = host.New(host.Options{
		Catalog:  catalog.Default(),
		Progress: f.progress,
		Sound:    f.player,
		Sched:    f.sched,
		Rand:     rand.New(rand.NewPCG(3, 4)),
	})
	f.m = New(Options{Host: f.host, Sched: f.sched, Progress: f.progress, Store: kv, Player: f.player, Start: start})
	f.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.m.Update(msg)
	f.m = next.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestEnterOpensSelectedGame(t *testing.T) {
	f := newFixture(t, "")
	f.send(runes("j"))
	cmd := f.send(enter)
	if f.m.Screen() != ScreenGame || !f.host.Active() {
		t.Fatal("enter should open the selected game")
	}
	if f.host.Game().ID() != "typing-speed" {
		t.Errorf("opened %s", f.host.Game().ID())
	}
	if cmd == nil || f.sched.Pending() == 0 {
		t.Error("opening a game should schedule ticks")
	}
	if !strings.Contains(f.m.View(), "Speed Typer") {
		t.Error("HUD should show the game title")
	}
}

func TestFireMsgDrivesHostClock(t *testing.T) {
	f := newFixture(t, "")
	f.send(enter)
	// memory match arms no timer at start, so the host clock is the first
	if cmd := f.send(sched.FireMsg{ID: 1}); cmd == nil {
		t.Error("the clock tick should be re-armed")
	}
	if f.host.Elapsed() != 1 {
		t.Errorf("Elapsed() = %d, want 1", f.host.Elapsed())
	}
	if cmd := f.send(sched.FireMsg{ID: 999}); f.host.Elapsed() != 1 {
		t.Errorf("unknown timer changed state: %v", cmd)
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	f := newFixture(t, "")
	f.send(enter)
	f.send(space)
	if !f.host.Paused() || f.host.Game().State() != session.Paused {
		t.Fatal("space should pause")
	}
	if !strings.Contains(f.m.View(), "PAUSED") {
		t.Error("HUD should show the pause flag")
	}
	f.send(space)
	if f.host.Paused() {
		t.Error("second space should resume")
	}
}

func TestTextGameKeepsPlainLetters(t *testing.T) {
	f := newFixture(t, "typing-speed")
	f.send(f.m.Init()())
	if f.m.Screen() != ScreenGame {
		t.Fatal("start game should open")
	}
	f.send(runes("d"))
	f.send(runes("r"))
	if f.m.Overlay() != OverlayNone {
		t.Error("plain letters belong to the text field")
	}
	f.send(tea.KeyMsg{Type: tea.KeyF1})
	if f.m.Overlay() != OverlayHelp || !strings.Contains(f.m.View(), "esc or f1 to close") {
		t.Error("help in a text game should name f1 as its close key")
	}
	f.send(tea.KeyMsg{Type: tea.KeyF1})
	f.host.Resume()
	f.send(tea.KeyMsg{Type: tea.KeyF2})
	if f.m.Overlay() != OverlayDebug {
		t.Error("f2 should open the debug log")
	}
	f.send(esc)
	if f.m.Overlay() != OverlayNone || f.m.Screen() != ScreenGame {
		t.Error("esc should close only the overlay")
	}
}

func TestKeyGameShortcuts(t *testing.T) {
	f := newFixture(t, "")
	f.send(enter)
	f.send(runes("?"))
	if f.m.Overlay() != OverlayHelp || !f.host.Paused() {
		t.Fatal("help should open and pause the game")
	}
	if !strings.Contains(f.m.View(), "Memory") {
		t.Error("help should show the game's rules")
	}
	f.send(runes("?"))
	f.send(runes("r"))
	if f.host.Paused() || f.host.Game().State() != session.Running {
		t.Error("restart should resume play")
	}
}

func TestEscClosesAndSaves(t *testing.T) {
	f := newFixture(t, "")
	f.send(enter)
	f.send(sched.FireMsg{ID: 1})
	f.send(esc)
	if f.m.Screen() != ScreenCatalog || f.host.Active() {
		t.Fatal("esc should return to the catalog")
	}
	if f.sched.Pending() != 0 {
		t.Errorf("Pending() = %d after close", f.sched.Pending())
	}
	if !strings.Contains(f.m.Message(), "memory-match") {
		t.Errorf("Message() = %q", f.m.Message())
	}
	if rec := f.progress.Games()["memory-match"]; rec.TimePlayed != 1 {
		t.Errorf("saved record = %+v", rec)
	}
}

func TestUnknownStartGame(t *testing.T) {
	f := newFixture(t, "pinball")
	f.send(f.m.Init()())
	if f.m.Screen() != ScreenCatalog || f.host.Active() {
		t.Fatal("an unknown game must not open")
	}
	if !strings.Contains(f.m.Message(), "not implemented") {
		t.Errorf("Message() = %q", f.m.Message())
	}
}

func TestCatalogToggles(t *testing.T) {
	f := newFixture(t, "")
	f.send(runes("s"))
	if f.player.Enabled() || f.progress.Preferences().SoundEnabled {
		t.Error("s should disable sound and persist it")
	}
	f.send(runes("c"))
	if !f.progress.Settings().HighContrast {
		t.Error("c should enable high contrast")
	}
	f.send(runes("c"))
	f.send(runes("t"))
	if f.progress.Theme() != store.ThemeDark {
		t.Errorf("Theme() = %q", f.progress.Theme())
	}
}

func TestQuitClosesSession(t *testing.T) {
	f := newFixture(t, "")
	f.send(enter)
	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if f.host.Active() {
		t.Error("quit should close the session")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestFrameStopsWhenSettled(t *testing.T) {
	f := newFixture(t, "")
	if cmd := f.send(frameMsg{}); cmd != nil {
		t.Error("a settled HUD needs no more frames")
	}
}

type brokenDisk struct{}

func (brokenDisk) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("read-only file system")
}

func (brokenDisk) Save(context.Context, string, string) error {
	return errors.New("read-only file system")
}

func (brokenDisk) Close() error { return nil }

func TestStoreFailuresReachDebugLog(t *testing.T) {
	f := newFixtureOn(t, "", brokenDisk{})
	f.send(runes("s"))
	var found bool
	for _, e := range f.m.debug.Entries {
		if e.Kind == "store" && strings.Contains(e.Message, "write devbreak-preferences") {
			found = true
		}
	}
	if !found {
		t.Errorf("debug entries = %+v, want a store write failure", f.m.debug.Entries)
	}
	f.send(runes("d"))
	if !strings.Contains(f.m.View(), "read-only file system") {
		t.Error("debug overlay should show the storage error")
	}
}

func TestLifecycleErrorsAreLogged(t *testing.T) {
	f := newFixture(t, "")
	var buf bytes.Buffer
	f.m.log = log.New(&buf)
	f.send(enter)
	f.host.Close()

	f.send(space)
	if !strings.Contains(buf.String(), "session pause failed") {
		t.Errorf("log = %q", buf.String())
	}
	if !strings.Contains(f.m.Message(), "no active game session") {
		t.Errorf("Message() = %q", f.m.Message())
	}
}
