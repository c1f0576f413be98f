package rules

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/devbreak/arcade/internal/catalog"
)

type hints struct{ quit key.Binding }

func (h hints) ShortHelp() []key.Binding  { return []key.Binding{h.quit} }
func (h hints) FullHelp() [][]key.Binding { return [][]key.Binding{{h.quit}} }

func TestRenderEveryGame(t *testing.T) {
	m := New(StylePlain)
	for _, d := range catalog.Default().Games() {
		out := m.Render(d.Rules, 60)
		if !strings.Contains(out, d.Title) {
			t.Errorf("%s: rendered rules missing title %q", d.ID, d.Title)
		}
	}
}

func TestRendererCachedPerWidth(t *testing.T) {
	m := New(StylePlain)
	m.Render("# A", 40)
	first := m.renderer
	m.Render("# B", 40)
	if m.renderer != first {
		t.Error("same width should reuse the renderer")
	}
	m.Render("# C", 50)
	if m.renderer == first {
		t.Error("a new width needs a new renderer")
	}
}

func TestStyleFor(t *testing.T) {
	tests := map[string]string{"dark": StyleDark, "light": StyleLight, "": StyleLight}
	for in, want := range tests {
		if got := StyleFor(in); got != want {
			t.Errorf("StyleFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestViewIncludesKeyHints(t *testing.T) {
	m := New(StylePlain)
	d, _ := catalog.Default().Get("snake")
	keys := hints{quit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave game"))}
	toggle := key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "how to play"))
	v := m.View(d, keys, toggle, 80)
	for _, want := range []string{"Snake", "leave game", "esc or f1 to close"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
