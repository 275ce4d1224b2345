package config

import (
	"io"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GAME_TEST_VALUE", "set")

	if got := GetEnv("GAME_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want %q", got, "set")
	}
	if got := GetEnv("GAME_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv missing = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int
		wantErr bool
	}{
		{name: "unset", set: false, want: 7},
		{name: "empty", value: "  ", set: true, want: 7},
		{name: "valid", value: "42", set: true, want: 42},
		{name: "negative", value: "-3", set: true, want: -3},
		{name: "malformed", value: "fast", set: true, want: 7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("GAME_TEST_INT", tt.value)
			}
			got, err := GetEnvInt("GAME_TEST_INT", 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetEnvInt error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GAME_RAND_SEED", "1234")
	t.Setenv("GAME_FPS", "30")
	t.Setenv("GAME_LOG_LEVEL", "debug")
	t.Setenv("GAME_LOG_FILE", "game.log")
	t.Setenv("GAME_COLOR_ENEMY", "#ff8800")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", s.Seed)
	}
	if s.FPS != 30 {
		t.Errorf("FPS = %d, want 30", s.FPS)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.LogFile != "game.log" {
		t.Errorf("LogFile = %q, want game.log", s.LogFile)
	}
	if s.Colors["enemy"] != "#ff8800" {
		t.Errorf("Colors[enemy] = %q, want #ff8800", s.Colors["enemy"])
	}
	if _, ok := s.Colors["player"]; ok {
		t.Error("unset colour role should not appear in Colors")
	}
}

func TestLoadRejectsBadFPS(t *testing.T) {
	t.Setenv("GAME_FPS", "0")

	s, err := Load()
	if err == nil {
		t.Fatal("Load accepted GAME_FPS=0")
	}
	if s.FPS != 60 {
		t.Errorf("FPS = %d, want default 60", s.FPS)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger(io.Discard, "warn"); err != nil {
		t.Errorf("NewLogger(warn): %v", err)
	}
	logger, err := NewLogger(io.Discard, "chatty")
	if err == nil {
		t.Error("NewLogger accepted an unknown level")
	}
	if logger == nil {
		t.Fatal("NewLogger returned nil logger on error")
	}
}
