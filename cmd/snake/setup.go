package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/game"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// env holds what every command shares: config, logger and the optional store.
type env struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	closer io.Closer
}

// setup loads the config and opens logging and storage.
// Full-screen commands pass interactive so logs stay off the terminal
// unless --log-file is given.
func setup(interactive, withStore bool) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, e.closer = f, f
	case interactive:
		out = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("log level: %w", err)
	}
	e.logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	if withStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Play still works without persistence.
			e.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		} else {
			e.store = store
		}
	}

	opts := game.SessionOptions{Config: &e.cfg, Logger: e.logger}
	if e.store != nil {
		opts.Store = e.store.HighScoreStore(cfg.Score.HighScoreKey)
		opts.Saver = e.store
	}
	game.SetDefaults(opts)
	return e, nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.closer != nil {
		e.closer.Close()
	}
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}
