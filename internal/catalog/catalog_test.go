package catalog

import (
	"errors"
	"testing"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/session/sessiontest"
	"github.com/devbreak/arcade/internal/store"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	want := []struct {
		id         string
		category   Category
		difficulty Difficulty
	}{
		{"memory-match", Memory, Easy},
		{"typing-speed", Reflex, Medium},
		{"whack-a-mole", Reflex, Medium},
		{"color-match", Puzzle, Easy},
		{"snake", Reflex, Hard},
	}
	games := c.Games()
	if len(games) != len(want) {
		t.Fatalf("Games() has %d entries, want %d", len(games), len(want))
	}
	for i, w := range want {
		g := games[i]
		if g.ID != w.id || g.Category != w.category || g.Difficulty != w.difficulty {
			t.Errorf("games[%d] = %s/%s/%s, want %s/%s/%s", i, g.ID, g.Category, g.Difficulty, w.id, w.category, w.difficulty)
		}
		if g.Title == "" || g.Rules == "" {
			t.Errorf("%s: missing title or rules", g.ID)
		}
	}
}

func TestCreateBuildsMatchingGame(t *testing.T) {
	c := Default()
	h := sessiontest.New(1)
	for _, d := range c.Games() {
		g, err := c.Create(d.ID, h.Context)
		if err != nil {
			t.Fatalf("Create(%q): %v", d.ID, err)
		}
		if g.ID() != d.ID {
			t.Errorf("Create(%q) built %q", d.ID, g.ID())
		}
		if g.State() != session.Uninitialized {
			t.Errorf("%s: State() = %v, factories must not start the game", d.ID, g.State())
		}
	}
}

func TestCreateUnknownGame(t *testing.T) {
	c := Default()
	g, err := c.Create("tetris", sessiontest.New(1).Context)
	if !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("err = %v, want ErrUnknownGame", err)
	}
	if g != nil {
		t.Error("no game should be built for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	c := New()
	c.Register(Descriptor{ID: "x"}, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate id")
		}
	}()
	c.Register(Descriptor{ID: "x"}, nil)
}

func TestRecords(t *testing.T) {
	c := Default()
	c.ApplyRecords(store.GameRecords{
		"snake":        {BestScore: 50, TimePlayed: 30},
		"unknown":      {BestScore: 999},
		"typing-speed": {BestScore: -3, TimePlayed: -1},
	})
	if d, _ := c.Get("snake"); d.BestScore != 50 || d.TimePlayed != 30 {
		t.Errorf("snake = %+v", d)
	}
	if d, _ := c.Get("typing-speed"); d.BestScore != 0 || d.TimePlayed != 0 {
		t.Errorf("negative values should clamp: %+v", d)
	}

	if c.RecordScore("snake", 40) {
		t.Error("a lower score must not replace the best")
	}
	if !c.RecordScore("snake", 60) {
		t.Error("a higher score should replace the best")
	}
	c.AddTime("snake", 15)
	c.AddTime("snake", -5)
	if r := c.Record("snake"); r.BestScore != 60 || r.TimePlayed != 45 {
		t.Errorf("Record() = %+v", r)
	}
	if c.RecordScore("unknown", 1) {
		t.Error("unknown ids are ignored")
	}
}
