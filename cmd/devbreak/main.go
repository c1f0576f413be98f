package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devbreak/arcade/internal/app"
	"github.com/devbreak/arcade/internal/catalog"
	"github.com/devbreak/arcade/internal/config"
	"github.com/devbreak/arcade/internal/host"
	"github.com/devbreak/arcade/internal/logging"
	"github.com/devbreak/arcade/internal/sched"
	"github.com/devbreak/arcade/internal/sound"
	"github.com/devbreak/arcade/internal/store"
	"github.com/devbreak/arcade/internal/theme"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Uint64("seed", 0, "Random seed for reproducible rounds (0 = random)")
	game := flag.String("game", "", "Open this game id directly")
	resetSettings := flag.Bool("reset-settings", false, "Restore default settings before starting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Games.Seed = *seed
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	backend, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		logger.Warn("persistence unavailable, progress will not be saved", "driver", cfg.Store.Driver, "err", err)
	}
	kv := store.NewSafe(backend, logger)
	defer kv.Close()

	progress := store.NewProgress(kv, logger)
	settings := progress.Settings()
	if *resetSettings {
		settings = progress.ResetSettings()
		logger.Info("settings reset to defaults")
	}
	prefs := progress.Preferences()
	theme.Apply(settings.HighContrast)

	player := sound.NewPlayer(os.Stderr, logger)
	player.SetVolume(settings.Volume)
	player.SetEnabled(prefs.SoundEnabled && !settings.MuteEffects)

	cat := catalog.Default()
	cat.ApplyRecords(progress.Games())

	rngSeed := cfg.Games.Seed
	if rngSeed == 0 {
		rngSeed = rand.Uint64()
	}
	timers := sched.NewTea()
	h := host.New(host.Options{
		Catalog:  cat,
		Progress: progress,
		Sound:    player,
		Sched:    timers,
		Rand:     rand.New(rand.NewPCG(rngSeed, rngSeed^0x9e3779b97f4a7c15)),
		Log:      logger,
	})
	logger.Info("starting", "games", cat.Len(), "store", cfg.Store.Driver, "seed", rngSeed)

	m := app.New(app.Options{
		Host:       h,
		Sched:      timers,
		Progress:   progress,
		Store:      kv,
		Player:     player,
		Log:        logger,
		Animations: cfg.UI.Animations && settings.Animations,
		Start:      *game,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
