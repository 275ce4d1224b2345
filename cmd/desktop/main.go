package main

import (
	"math/rand"
	"os"

	"github.com/ha5him97/game/internal/config"
	"github.com/ha5him97/game/internal/desktop"
	lconfig "github.com/ha5him97/game/internal/loop/config"
)

func main() {
	settings, settingsErr := config.Load()
	logger, err := config.NewLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		logger.Warn("invalid log level", "err", err)
	}
	if settingsErr != nil {
		logger.Warn("invalid settings, using defaults", "err", settingsErr)
	}

	palette, err := lconfig.DefaultPalette().WithOverrides(settings.Colors)
	if err != nil {
		logger.Warn("invalid colour override", "err", err)
	}

	logger.Info("starting desktop game", "seed", settings.Seed, "tps", settings.FPS)
	if err := desktop.Run(desktop.Options{
		Rand:    rand.New(rand.NewSource(settings.Seed)),
		Logger:  logger,
		Palette: palette,
		TPS:     settings.FPS,
	}); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
