package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/registry"
	"github.com/vovakirdan/platformgen/internal/runner"
	"github.com/vovakirdan/platformgen/internal/storage"
)

// newLogger builds the stderr logger at --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformgen",
		Level:           level,
	}), nil
}

// presetArg returns the preset named on the command line, or --preset.
func presetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagPreset
}

// loadLevel resolves --config or the preset and applies --difficulty.
func loadLevel(args []string) (config.Level, error) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Level{}, err
	}

	var lvl config.Level
	if flagConfig != "" {
		lvl, err = config.Load("", flagConfig)
	} else {
		preset := presetArg(args)
		if !registry.Exists(preset) {
			return config.Level{}, fmt.Errorf("unknown preset %q (run 'platformgen list' to see presets)", preset)
		}
		lvl, err = registry.Level(preset)
	}
	if err != nil {
		return config.Level{}, err
	}

	config.ApplyDifficulty(&lvl, difficulty)
	return lvl, nil
}

// setup loads the level and builds a runner with the CLI logger.
func setup(args []string) (*runner.Runner, *log.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	lvl, err := loadLevel(args)
	if err != nil {
		return nil, nil, err
	}
	r, err := runner.New(lvl, logger)
	if err != nil {
		return nil, nil, err
	}
	return r, logger, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}

// runtimeConfig sizes the UI to the terminal.
func runtimeConfig(seed uint64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = seed
	return cfg
}

// stdoutStyled reports whether stdout is a terminal worth coloring.
func stdoutStyled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// openStore opens the run history, logging and returning nil on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
