package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/ha5him97/game/internal/config"
	"github.com/ha5him97/game/internal/loop/client"
	lconfig "github.com/ha5him97/game/internal/loop/config"
)

func main() {
	settings, settingsErr := config.Load()

	// The game owns stdout, so logs go to a file when one is configured
	// and are dropped otherwise.
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := config.NewLogger(logOut, settings.LogLevel)
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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "seed", settings.Seed, "fps", settings.FPS)

	reader := bufio.NewReader(os.Stdin)
	c := client.New(reader, os.Stdout, client.Options{
		Rand:    rand.New(rand.NewSource(settings.Seed)),
		Logger:  logger,
		Palette: palette,
		FPS:     settings.FPS,
	})
	if err := c.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
