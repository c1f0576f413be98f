package catalog

import (
	"github.com/devbreak/arcade/internal/games/colormatch"
	"github.com/devbreak/arcade/internal/games/memory"
	"github.com/devbreak/arcade/internal/games/snake"
	"github.com/devbreak/arcade/internal/games/typing"
	"github.com/devbreak/arcade/internal/games/whack"
	"github.com/devbreak/arcade/internal/session"
)

// Default returns the catalog of built-in games.
func Default() *Catalog {
	c := New()
	c.Register(Descriptor{
		ID:          memory.ID,
		Title:       "Memory Match",
		Description: "Test your memory by matching pairs of cards",
		Category:    Memory,
		Difficulty:  Easy,
		Rules:       memoryRules,
	}, func(ctx session.Context) session.Game { return memory.New(ctx) })

	c.Register(Descriptor{
		ID:          typing.ID,
		Title:       "Speed Typer",
		Description: "Test your typing speed with programming terms",
		Category:    Reflex,
		Difficulty:  Medium,
		Rules:       typingRules,
	}, func(ctx session.Context) session.Game { return typing.New(ctx) })

	c.Register(Descriptor{
		ID:          whack.ID,
		Title:       "Whack-a-Mole",
		Description: "Hit moles as they appear to score points",
		Category:    Reflex,
		Difficulty:  Medium,
		Rules:       whackRules,
	}, func(ctx session.Context) session.Game { return whack.New(ctx) })

	c.Register(Descriptor{
		ID:          colormatch.ID,
		Title:       "Color Match",
		Description: "Select the color that matches the displayed word",
		Category:    Puzzle,
		Difficulty:  Easy,
		Rules:       colorRules,
	}, func(ctx session.Context) session.Game { return colormatch.New(ctx) })

	c.Register(Descriptor{
		ID:          snake.ID,
		Title:       "Snake",
		Description: "Steer the snake to eat food and grow without hitting walls",
		Category:    Reflex,
		Difficulty:  Hard,
		Rules:       snakeRules,
	}, func(ctx session.Context) session.Game { return snake.New(ctx) })
	return c
}
