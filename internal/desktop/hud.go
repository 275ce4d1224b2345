package desktop

import "github.com/ha5him97/game/internal/loop"

// HUD holds the counters and panel state pushed by the scheduler.
type HUD struct {
	Score, Lives, Level int
	GameOver            bool
	FinalScore          int
}

// ShowStats implements loop.UI.
func (h *HUD) ShowStats(score, lives, level int) {
	h.Score, h.Lives, h.Level = score, lives, level
}

// ShowGameOver implements loop.UI.
func (h *HUD) ShowGameOver(visible bool, finalScore int) {
	h.GameOver = visible
	h.FinalScore = finalScore
}

var _ loop.UI = (*HUD)(nil)
