package desktop

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-util/mathutil"

	"github.com/ha5him97/game/internal/desktop/controls"
	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/loop"
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
)

const (
	screenWidth  = config.ViewWidth
	stripHeight  = 120
	screenHeight = config.ViewHeight + stripHeight

	// DebugPrint glyph size.
	glyphWidth  = 6
	glyphHeight = 16
)

// Options configures the desktop game.
type Options struct {
	Rand    object.Rand
	Logger  *log.Logger
	Palette config.Palette
	TPS     int
}

// Game implements ebiten.Game around a loop.Scheduler.
type Game struct {
	sched   *loop.Scheduler
	hud     *HUD
	surface Surface
	strip   *controls.Strip
	panel   *controls.Strip // Restart button on the pause and game-over panels
	palette config.Palette
	logger  *log.Logger

	touchIDs []ebiten.TouchID
	pointers []*mathutil.Vector2D
	taps     []*mathutil.Vector2D
}

// NewGame creates a game and starts the first session.
func NewGame(opts Options) *Game {
	if opts.Palette == (config.Palette{}) {
		opts.Palette = config.DefaultPalette()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	hud := &HUD{}
	g := &Game{
		hud:     hud,
		strip:   controls.NewStrip(screenWidth, config.ViewHeight, stripHeight),
		panel:   &controls.Strip{Buttons: []controls.Button{controls.RestartButton(screenWidth, config.ViewHeight/2+40)}},
		palette: opts.Palette,
		logger:  opts.Logger,
	}
	g.sched = loop.New(loop.Options{
		Rand:    opts.Rand,
		Logger:  opts.Logger,
		Palette: opts.Palette,
		UI:      hud,
	})
	g.sched.Init()
	return g
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update reads input and advances the scheduler by one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Info("quit", "score", g.sched.State().Game.Score)
		return ebiten.Termination
	}

	g.collectPointers()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sched.TogglePause()
	}
	cmds := g.strip.Tapped(g.taps)
	if g.restartOffered() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			cmds = append(cmds, input.CommandRestart)
		} else {
			cmds = append(cmds, g.panel.Tapped(g.taps)...)
		}
	}
	for _, cmd := range cmds {
		switch cmd {
		case input.CommandPause:
			g.sched.TogglePause()
		case input.CommandRestart:
			g.sched.Restart()
		}
	}

	g.sched.Step(input.Frame{Held: g.heldKeys() | g.strip.Held(g.pointers)})
	return nil
}

// restartOffered reports whether the current phase shows a restart control.
func (g *Game) restartOffered() bool {
	phase := g.sched.Phase()
	return phase == loop.PhasePaused || phase == loop.PhaseGameOver
}

var keyBindings = []struct {
	key  input.Key
	keys []ebiten.Key
}{
	{input.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{input.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{input.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{input.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{input.KeyFire, []ebiten.Key{ebiten.KeySpace}},
}

func (g *Game) heldKeys() input.KeySet {
	var held input.KeySet
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				held = held.With(b.key)
				break
			}
		}
	}
	return held
}

// collectPointers gathers the mouse and touch positions that are down, and
// those that went down this tick.
func (g *Game) collectPointers() {
	g.pointers = g.pointers[:0]
	g.taps = g.taps[:0]

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pos := mathutil.NewVector2D(float64(x), float64(y))
		g.pointers = append(g.pointers, pos)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.taps = append(g.taps, pos)
		}
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.pointers = append(g.pointers, mathutil.NewVector2D(float64(x), float64(y)))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.taps = append(g.taps, mathutil.NewVector2D(float64(x), float64(y)))
	}
}

// Draw renders the playfield, the HUD, the phase panel and the control strip.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.surface.dst = screen.SubImage(image.Rect(0, 0, config.ViewWidth, config.ViewHeight)).(*ebiten.Image)
	g.sched.Render(&g.surface)

	g.drawHUD(screen)
	switch g.sched.Phase() {
	case loop.PhasePaused:
		g.drawPanel(screen, []string{"PAUSED", "", "P to resume"})
	case loop.PhaseGameOver:
		if g.hud.GameOver {
			g.drawPanel(screen, []string{"GAME OVER", "", fmt.Sprintf("Final score: %d", g.hud.FinalScore)})
		}
	}
	g.drawStrip(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", g.hud.Score), 10, 6)

	level := fmt.Sprintf("LEVEL %d", g.hud.Level)
	ebitenutil.DebugPrintAt(screen, level, screenWidth/2-len(level)*glyphWidth/2, 6)

	lives := fmt.Sprintf("LIVES %d", g.hud.Lives)
	ebitenutil.DebugPrintAt(screen, lives, screenWidth-10-len(lives)*glyphWidth, 6)
}

func (g *Game) drawPanel(screen *ebiten.Image, lines []string) {
	const w, h = 300.0, 200.0
	x, y := float32(screenWidth/2-w/2), float32(config.ViewHeight/2-h/2)
	vector.DrawFilledRect(screen, x, y, w, h, nrgba(g.palette.Background, 0.85), false)
	vector.StrokeRect(screen, x, y, w, h, 2, nrgba(g.palette.Player, 1), false)

	top := int(y) + 30
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, screenWidth/2-len(line)*glyphWidth/2, top+i*glyphHeight)
	}
	for _, b := range g.panel.Buttons {
		g.drawButton(screen, b, false)
	}
}

func (g *Game) drawStrip(screen *ebiten.Image) {
	r := g.strip.Bounds
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), nrgba(g.palette.Background, 1), false)
	for _, b := range g.strip.Buttons {
		pressed := false
		for _, p := range g.pointers {
			if b.Contains(p) {
				pressed = true
				break
			}
		}
		g.drawButton(screen, b, pressed)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b controls.Button, pressed bool) {
	r := b.Rect
	if pressed {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), nrgba(g.palette.Player, 0.3), false)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, nrgba(g.palette.Player, 0.8), false)
	cx, cy := r.Center()
	ebitenutil.DebugPrintAt(screen, b.Label, int(cx)-len(b.Label)*glyphWidth/2, int(cy)-glyphHeight/2)
}

// Layout implements ebiten.Game with a fixed logical screen; ebiten scales
// it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
