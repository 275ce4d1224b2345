package config

import "testing"

func TestWithOverrides(t *testing.T) {
	base := DefaultPalette()

	p, err := base.WithOverrides(map[string]string{
		"enemy":      "#00ff00",
		"background": "#101010",
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	if got := p.Enemy.Hex(); got != "#00ff00" {
		t.Errorf("Enemy = %s, want #00ff00", got)
	}
	if got := p.Background.Hex(); got != "#101010" {
		t.Errorf("Background = %s, want #101010", got)
	}
	if p.Player != base.Player {
		t.Error("untouched role changed")
	}
	if base.Enemy.Hex() != "#ff0040" {
		t.Error("WithOverrides mutated the receiver")
	}
}

func TestWithOverridesErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{name: "bad hex", overrides: map[string]string{"player": "cyan"}},
		{name: "unknown role", overrides: map[string]string{"laser": "#ffffff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DefaultPalette().WithOverrides(tt.overrides); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFrameTime(t *testing.T) {
	if got := FrameTime(0); got != FrameTime(DefaultFPS) {
		t.Errorf("FrameTime(0) = %v, want default", got)
	}
	if got := FrameTime(50); got.Milliseconds() != 20 {
		t.Errorf("FrameTime(50) = %v, want 20ms", got)
	}
}
