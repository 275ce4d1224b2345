package client

import "github.com/ha5him97/game/internal/loop"

// ClientState holds what the terminal HUD shows. It is the scheduler's UI
// surface: the scheduler pushes counters and the game-over panel into it,
// the draw pass reads them back.
type ClientState struct {
	Score      int
	Lives      int
	Level      int
	GameOver   bool // Game-over panel visible
	FinalScore int
	Running    bool       // Client loop running
	drawnPhase loop.Phase // Phase of the last drawn frame, for clears on transitions
	drawn      bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Level:   1,
		Running: true,
	}
}

// ShowStats implements loop.UI.
func (s *ClientState) ShowStats(score, lives, level int) {
	s.Score = score
	s.Lives = lives
	s.Level = level
}

// ShowGameOver implements loop.UI.
func (s *ClientState) ShowGameOver(visible bool, finalScore int) {
	s.GameOver = visible
	s.FinalScore = finalScore
}

var _ loop.UI = (*ClientState)(nil)
