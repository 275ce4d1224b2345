package config

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ColorRoles lists the palette entries that can be overridden through
// GAME_COLOR_<ROLE> variables.
var ColorRoles = []string{"player", "enemy", "bullet", "background"}

// Settings holds the runtime configuration shared by all front ends.
type Settings struct {
	Seed     int64  // Random seed for the simulation
	LogLevel string // charmbracelet/log level name
	LogFile  string // Terminal front end log destination; empty drops logs
	FPS      int    // Terminal frame rate

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	// Colors maps a palette role to a hex colour override.
	Colors map[string]string
}

// Load reads Settings from the environment. Every malformed value is
// reported; fields with malformed values keep their defaults.
func Load() (Settings, error) {
	s := Settings{
		LogLevel:   GetEnv("GAME_LOG_LEVEL", "info"),
		LogFile:    GetEnv("GAME_LOG_FILE", ""),
		SSHHost:    GetEnv("SSH_HOST", "::"),
		SSHPort:    GetEnv("SSH_PORT", "2222"),
		SSHHostKey: GetEnv("SSH_HOST_KEY", ".ssh/host_key"),
		Colors:     make(map[string]string),
	}

	var errs []error

	seed, err := GetEnvInt64("GAME_RAND_SEED", time.Now().UnixNano())
	if err != nil {
		errs = append(errs, err)
	}
	s.Seed = seed

	fps, err := GetEnvInt("GAME_FPS", 60)
	if err != nil {
		errs = append(errs, err)
	}
	if fps < 1 {
		errs = append(errs, errors.New("GAME_FPS: must be positive"))
		fps = 60
	}
	s.FPS = fps

	for _, role := range ColorRoles {
		if hex := GetEnv("GAME_COLOR_"+strings.ToUpper(role), ""); hex != "" {
			s.Colors[role] = hex
		}
	}

	return s, errors.Join(errs...)
}

// NewLogger builds the structured logger used across the game.
// An unknown level name falls back to info and is reported.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		return logger, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}
