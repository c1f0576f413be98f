// Package host owns the single active game session. It builds games from
// the catalog, drives their lifecycle, keeps the shared elapsed clock and
// pause flag, and records progress when a session closes.
package host

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/session"
	"github.com/devbreak/arcade/internal/sound"
	"github.com/devbreak/arcade/internal/store"
	"github.com/google/uuid"
)

var (
	// ErrSessionActive is returned by Open while another session is live.
	ErrSessionActive = errors.New("a game session is already active")
	// ErrNoSession is returned by lifecycle calls when nothing is open.
	ErrNoSession = errors.New("no active game session")
)

const clockInterval = time.Second

// Options configures a Host. Catalog and Sched are required.
type Options struct {
	Catalog  *catalog.Catalog
	Progress *store.Progress
	Sound    sound.Port
	Sched    sched.Scheduler
	Rand     *rand.Rand
	Log      *log.Logger
}

// Result describes a closed session.
type Result struct {
	GameID    string
	SessionID string
	Score     int
	Elapsed   int // seconds
	BestScore int
	NewBest   bool
	Summary   *session.Summary
}

// Host is the session host. It is not safe for concurrent use; the TUI
// calls it from its update loop only.
type Host struct {
	cat      *catalog.Catalog
	progress *store.Progress
	sound    sound.Port
	sched    sched.Scheduler
	rng      *rand.Rand
	log      *log.Logger

	game      session.Game
	desc      catalog.Descriptor
	sessionID string
	gen       uint64
	paused    bool
	score     int
	elapsed   int
	startBest int
	clock     session.Loop

	listeners []func(Event)
}

// New creates a Host with no active session.
func New(opts Options) *Host {
	h := &Host{
		cat:      opts.Catalog,
		progress: opts.Progress,
		sound:    opts.Sound,
		sched:    opts.Sched,
		rng:      opts.Rand,
		log:      opts.Log,
	}
	if h.sound == nil {
		h.sound = sound.Nop{}
	}
	if h.log == nil {
		h.log = log.New(io.Discard)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return h
}

// Catalog returns the catalog the host builds games from.
func (h *Host) Catalog() *catalog.Catalog { return h.cat }

// Active reports whether a session is open.
func (h *Host) Active() bool { return h.game != nil }

// Game returns the active game, or nil.
func (h *Host) Game() session.Game { return h.game }

// SessionID returns the id of the active session, or "".
func (h *Host) SessionID() string { return h.sessionID }

// Paused reports the shared pause flag. Games read it through their
// context before every self-scheduled tick.
func (h *Host) Paused() bool { return h.paused }

// Score returns the last score reported by the active game.
func (h *Host) Score() int { return h.score }

// Elapsed returns the seconds the active session has been running
// unpaused.
func (h *Host) Elapsed() int { return h.elapsed }

// Descriptor returns the descriptor of the active game with its current
// best score.
func (h *Host) Descriptor() catalog.Descriptor {
	if h.game == nil {
		return catalog.Descriptor{}
	}
	d, _ := h.cat.Get(h.desc.ID)
	return d
}

// Open builds and starts the game registered under id.
func (h *Host) Open(id string) error {
	if h.game != nil {
		return fmt.Errorf("open %q: %w", id, ErrSessionActive)
	}

	h.gen++
	ctx := session.Context{
		Scores: scorePort{h: h, gen: h.gen},
		Sound:  h.sound,
		Paused: h.Paused,
		Sched:  h.sched,
		Rand:   h.rng,
		Log:    h.log.With("game", id),
	}
	g, err := h.cat.Create(id, ctx)
	if err != nil {
		h.log.Warn("open failed", "game", id, "err", err)
		h.emit(Event{Kind: EventError, Game: id, Detail: err.Error()})
		return err
	}

	h.game = g
	h.desc, _ = h.cat.Get(id)
	h.sessionID = uuid.NewString()
	h.paused = false
	h.score = 0
	h.elapsed = 0
	h.startBest = h.desc.BestScore

	g.Start()
	h.clock.Every(h.sched, clockInterval, h.tick)
	h.sound.Play(sound.GameStart)
	h.log.Info("session opened", "game", id, "session", h.sessionID)
	h.emit(Event{Kind: EventOpen, Game: id, Detail: h.sessionID})
	return nil
}

// Switch closes the active session, if any, and opens id.
func (h *Host) Switch(id string) error {
	if h.game != nil {
		if _, err := h.Close(); err != nil {
			return err
		}
	}
	return h.Open(id)
}

// Pause stops the elapsed clock and pauses the game. It is a no-op when
// already paused or when the game is not running.
func (h *Host) Pause() error {
	if h.game == nil {
		return ErrNoSession
	}
	if h.paused || h.game.State() != session.Running {
		return nil
	}
	h.paused = true
	h.clock.Hold()
	h.game.Pause()
	h.sound.Play(sound.GamePause)
	h.emit(Event{Kind: EventPause, Game: h.desc.ID})
	return nil
}

// Resume continues a paused session. It is a no-op when not paused.
func (h *Host) Resume() error {
	if h.game == nil {
		return ErrNoSession
	}
	if !h.paused {
		return nil
	}
	h.paused = false
	h.clock.Release()
	h.game.Resume()
	h.sound.Play(sound.GameResume)
	h.emit(Event{Kind: EventResume, Game: h.desc.ID})
	return nil
}

// TogglePause pauses a running session or resumes a paused one.
func (h *Host) TogglePause() error {
	if h.paused {
		return h.Resume()
	}
	return h.Pause()
}

// Restart resets the active game and the elapsed clock. A paused session
// restarts unpaused.
func (h *Host) Restart() error {
	if h.game == nil {
		return ErrNoSession
	}
	h.paused = false
	h.score = 0
	h.elapsed = 0
	h.game.Restart()
	h.clock.Every(h.sched, clockInterval, h.tick)
	h.sound.Play(sound.GameRestart)
	h.emit(Event{Kind: EventRestart, Game: h.desc.ID})
	return nil
}

// Close cleans up the active game, adds the elapsed time to the game's
// total, and saves its progress.
func (h *Host) Close() (Result, error) {
	if h.game == nil {
		return Result{}, ErrNoSession
	}
	g, id := h.game, h.desc.ID

	h.clock.Stop()
	g.Cleanup()
	h.cat.AddTime(id, h.elapsed)
	rec := h.cat.Record(id)
	if h.progress != nil {
		h.progress.SaveGame(id, rec)
	}

	res := Result{
		GameID:    id,
		SessionID: h.sessionID,
		Score:     h.score,
		Elapsed:   h.elapsed,
		BestScore: rec.BestScore,
		NewBest:   rec.BestScore > h.startBest,
	}
	if sum, ok := g.Summary(); ok {
		res.Summary = &sum
	}

	h.game = nil
	h.gen++
	h.paused = false
	h.sessionID = ""
	h.sound.Play(sound.GameClose)
	h.log.Info("session closed", "game", id, "session", res.SessionID, "score", res.Score, "elapsed", res.Elapsed)
	h.emit(Event{Kind: EventClose, Game: id, Detail: fmt.Sprintf("score %d in %s", res.Score, FormatElapsed(res.Elapsed))})
	return res, nil
}

// HandleKey forwards a key to the active game.
func (h *Host) HandleKey(msg tea.KeyMsg) {
	if h.game != nil {
		h.game.HandleKey(msg)
	}
}

func (h *Host) tick() {
	if h.game == nil || h.paused || h.game.State() != session.Running {
		return
	}
	h.elapsed++
}

func (h *Host) report(gen uint64, score int) {
	if h.game == nil || gen != h.gen {
		return
	}
	h.score = score
	if h.cat.RecordScore(h.desc.ID, score) {
		h.log.Debug("new best score", "game", h.desc.ID, "score", score)
		h.emit(Event{Kind: EventBest, Game: h.desc.ID, Detail: fmt.Sprint(score)})
	}
}

// scorePort binds a game's score reports to the session it was built
// for, so reports from a closed session are dropped.
type scorePort struct {
	h   *Host
	gen uint64
}

func (p scorePort) Report(score int) { p.h.report(p.gen, score) }

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
