// Package catalog lists the available games and builds sessions for them.
package catalog

import (
	"errors"
	"fmt"

	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/store"
)

// ErrUnknownGame is returned when no game is registered under an id.
var ErrUnknownGame = errors.New("game not implemented")

// Category groups games in the catalog.
type Category string

const (
	Memory Category = "memory"
	Reflex Category = "reflex"
	Puzzle Category = "puzzle"
)

// Difficulty is the advertised difficulty of a game.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Descriptor describes one catalog entry and its persisted progress.
type Descriptor struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Difficulty  Difficulty
	// Rules is a markdown how-to-play text.
	Rules string

	BestScore  int
	TimePlayed int // seconds
}

// Factory builds an unstarted game.
type Factory func(ctx session.Context) session.Game

type entry struct {
	desc    Descriptor
	factory Factory
}

// Catalog holds the registered games in registration order.
type Catalog struct {
	order   []string
	entries map[string]*entry
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]*entry)}
}

// Register adds a game. Panics if the id is already registered.
func (c *Catalog) Register(d Descriptor, f Factory) {
	if _, exists := c.entries[d.ID]; exists {
		panic(fmt.Sprintf("catalog: game %q already registered", d.ID))
	}
	c.entries[d.ID] = &entry{desc: d, factory: f}
	c.order = append(c.order, d.ID)
}

// Games returns every descriptor in registration order.
func (c *Catalog) Games() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].desc)
	}
	return out
}

// Len returns the number of registered games.
func (c *Catalog) Len() int { return len(c.order) }

// Get returns the descriptor for id.
func (c *Catalog) Get(id string) (Descriptor, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// Create builds an unstarted game for id.
func (c *Catalog) Create(id string, ctx session.Context) (session.Game, error) {
	e, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("create %q: %w", id, ErrUnknownGame)
	}
	return e.factory(ctx), nil
}

// ApplyRecords copies stored progress onto matching descriptors. Records
// for unknown ids are ignored and negative values are clamped to zero.
func (c *Catalog) ApplyRecords(recs store.GameRecords) {
	for id, r := range recs {
		e, ok := c.entries[id]
		if !ok {
			continue
		}
		e.desc.BestScore = max(0, r.BestScore)
		e.desc.TimePlayed = max(0, r.TimePlayed)
	}
}

// RecordScore raises the best score of id to score if it is higher. It
// reports whether the best score changed.
func (c *Catalog) RecordScore(id string, score int) bool {
	e, ok := c.entries[id]
	if !ok || score <= e.desc.BestScore {
		return false
	}
	e.desc.BestScore = score
	return true
}

// AddTime adds seconds to the time played of id.
func (c *Catalog) AddTime(id string, seconds int) {
	if e, ok := c.entries[id]; ok && seconds > 0 {
		e.desc.TimePlayed += seconds
	}
}

// Record returns the persisted form of id's progress.
func (c *Catalog) Record(id string) store.GameRecord {
	e, ok := c.entries[id]
	if !ok {
		return store.GameRecord{}
	}
	return store.GameRecord{BestScore: e.desc.BestScore, TimePlayed: e.desc.TimePlayed}
}
