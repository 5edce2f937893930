// Package window hosts the game in a desktop window using ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
	"github.com/lguibr/brickbreaker/utils"
)

const Title = "Arkanoid"

// Host implements ebiten.Game on top of a GameActor.
type Host struct {
	ctx     context.Context
	engine  *bollywood.Engine
	gamePID *bollywood.PID
	feed    *game.Feed
	width   int
	height  int

	state    game.GameState
	hasState bool
	gameOver *game.GameOverMessage

	justPressed []ebiten.Key
}

func NewHost(ctx context.Context, engine *bollywood.Engine, gamePID *bollywood.PID, cfg utils.Config) *Host {
	return &Host{
		ctx:     ctx,
		engine:  engine,
		gamePID: gamePID,
		feed:    game.NewFeed(),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Run opens the window and blocks until it is closed.
func (h *Host) Run() error {
	feedPID := h.engine.Spawn(bollywood.NewProps(game.NewFeedProducer(h.feed, h.gamePID)))
	if feedPID == nil {
		return fmt.Errorf("window host: %w", bollywood.ErrEngineStopping)
	}
	defer h.engine.Stop(feedPID)

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(Title)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window host: %w", err)
	}
	return nil
}

func (h *Host) Update() error {
	if h.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if state, ok := h.feed.Latest(); ok {
		h.state, h.hasState = state, true
	}
	if over, ok := h.feed.GameOver(); ok {
		if h.gameOver == nil {
			h.gameOver = &over
			return nil
		}
		// Any key closes the window once the game is over.
		h.justPressed = inpututil.AppendJustPressedKeys(h.justPressed[:0])
		if len(h.justPressed) > 0 {
			return ebiten.Termination
		}
		return nil
	}
	h.gameOver = nil

	for _, binding := range []struct {
		keys      []ebiten.Key
		direction string
	}{
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, utils.KeyArrowLeft},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, utils.KeyArrowRight},
	} {
		for _, key := range binding.keys {
			if render.KeyRepeat(inpututil.KeyPressDuration(key)) {
				h.engine.Send(h.gamePID, game.MovePaddleCommand{Direction: binding.direction}, nil)
				break
			}
		}
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(toColor(render.ColorBackground))
	if !h.hasState {
		ebitenutil.DebugPrintAt(screen, "Waiting for game...", 10, 10)
		return
	}

	for _, block := range h.state.VisibleBlocks() {
		fillRect(screen, block.Bounds(), render.ColorBlock)
	}
	for _, bonus := range h.state.Bonuses {
		fillRect(screen, bonus.Bounds(), render.ColorBonus)
		ebitenutil.DebugPrintAt(screen, bonus.Kind.Description(), bonus.X+bonus.Size+2, bonus.Y)
	}
	fillRect(screen, h.state.Paddle.Bounds(), render.ColorPaddle)
	for _, ball := range h.state.Balls {
		fillRect(screen, ball.Bounds(), render.ColorBall)
	}
	ebitenutil.DebugPrintAt(screen, render.StatusLine(h.state), 10, 10)

	if h.gameOver != nil {
		boxW, boxH := float32(320), float32(60)
		x := (float32(h.width) - boxW) / 2
		y := (float32(h.height) - boxH) / 2
		vector.DrawFilledRect(screen, x, y, boxW, boxH, color.RGBA{120, 0, 0, 230}, false)
		ebitenutil.DebugPrintAt(screen, render.GameOverText(*h.gameOver), int(x)+12, int(y)+14)
		ebitenutil.DebugPrintAt(screen, "Press any key to exit", int(x)+12, int(y)+34)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

func fillRect(screen *ebiten.Image, r game.Rect, pixel render.RGBPixel) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(pixel), false)
}

func toColor(pixel render.RGBPixel) color.RGBA {
	return color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 255}
}
