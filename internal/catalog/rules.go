package catalog

const memoryRules = `# Memory Match

Sixteen cards hide eight pairs of symbols.

- Move with **arrows** or **hjkl**, flip with **enter** or **f**.
- Two matching cards stay face up and score **10** points.
- A mismatch turns back over after one second.
- Clear the board for a bonus of ` + "`100 - (moves - 8) × 5`" + ` points.
`

const typingRules = `# Speed Typer

Type as many programming terms as you can in **30 seconds**.

- Each word scores **10 + 2 × length** points.
- Only an exact, case-sensitive match counts.
- Your words per minute are shown when time runs out.
- Use **ctrl+r** to restart, since plain keys go to the text field.
`

const whackRules = `# Whack-a-Mole

Moles pop out of nine holes for **60 seconds**.

- Hit a hole with the keys **1** to **9**, laid out like a phone keypad top row first.
- Each mole scores **5** points.
- Every 20 points the moles get faster, down to one every half second.
`

const colorRules = `# Color Match

A color name appears, drawn in a different ink.

- Pick the option matching the **word**, not the ink, with keys **1** to **4**.
- Correct answers score **5** points.
- Wrong answers cost **2** points, never going below zero.
- You have **30 seconds**.
`

const snakeRules = `# Snake

Steer the snake around a 20 × 20 grid.

- Turn with **arrows** or **hjkl**. You cannot reverse into yourself.
- Food scores **10** points and grows the snake by one.
- Hitting a wall or your own body ends the game.
`
