package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"lifeguard/pkg/game/config"
	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/logger"
	"lifeguard/pkg/game/persistence"
	"lifeguard/pkg/game/renderer"
	"lifeguard/pkg/game/renderer/ebiten"
	"lifeguard/pkg/game/renderer/tui"
	"lifeguard/pkg/game/setup"
)

// storeTimeout bounds each read or write of the durable flag.
const storeTimeout = 3 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lifeguard:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	log, logFile, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	facility, err := setup.LoadFile(cfg.LayoutPath)
	if err != nil {
		log.Error("Facility layout rejected", "path", cfg.LayoutPath, "error", err)
		return err
	}

	store := openStore(cfg, log)
	defer store.Close()

	advanced := loadFlag(store, log)

	session := gameplay.NewSession(facility, gameplay.Options{
		AdvancedUnlocked:   advanced,
		OnAdvancedUnlocked: saveFlag(store, log),
		Logger:             log,
	})

	var r renderer.Renderer
	switch cfg.Renderer {
	case "ebiten":
		r = ebiten.New(log)
	default:
		r = tui.New()
	}
	if err := r.Init(); err != nil {
		return err
	}
	return r.Run(session)
}

// openStore opens the configured flag store. When it cannot be opened the run
// continues on an in-memory store and progress is not kept across runs.
func openStore(cfg *config.Config, log *slog.Logger) persistence.FlagStore {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	store, err := persistence.Open(ctx, persistence.Options{
		Backend:    cfg.Store,
		SQLitePath: cfg.SQLitePath,
		RedisAddr:  cfg.RedisAddr,
		Logger:     log,
	})
	if err != nil {
		logger.WithError(log, err).Warn("Could not open progress store, progress will not be saved", "store", cfg.Store)
		return persistence.NewMemoryStore()
	}
	return store
}

// loadFlag reads the durable flag once. A failing store starts the player
// without it rather than refusing to run.
func loadFlag(store persistence.FlagStore, log *slog.Logger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	unlocked, err := store.Load(ctx)
	if err != nil {
		logger.WithError(log, err).Warn("Could not load progress")
		return false
	}
	log.Info("Progress loaded", "advanced_unlocked", unlocked)
	return unlocked
}

// saveFlag returns the session callback that writes the flag through. Errors
// are logged and never reach the session.
func saveFlag(store persistence.FlagStore, log *slog.Logger) func(bool) {
	return func(unlocked bool) {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.Save(ctx, unlocked); err != nil {
			logger.WithError(log, err).Error("Could not save progress")
			return
		}
		log.Info("Progress saved", "advanced_unlocked", unlocked)
	}
}
