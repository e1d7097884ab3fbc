package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// runtimeConfig sizes the field to the terminal, falling back to the
// default 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger writes to --log when given. The terminal belongs to the game,
// so logs are discarded otherwise. The returned func closes the log file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closeLog, nil
}

// localDeps opens the shared collaborators of a local session. The returned
// func releases them.
func localDeps() (tui.Deps, func(), error) {
	logger, closeLog, err := newLogger()
	if err != nil {
		return tui.Deps{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}

	soundCfg := audio.LoadConfig()
	if flagSound {
		soundCfg.Enabled = true
	}
	player, err := audio.New(soundCfg)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		player = audio.Nop{}
	}

	deps := tui.Deps{Store: store, Audio: player, Logger: logger}
	release := func() {
		player.Close()
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return deps, release, nil
}
