// File: game/paddle.go
package game

import "github.com/lguibr/brickbreaker/utils"

type Paddle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Step   int `json:"step"` // Pixels per key press before multipliers
}

// NewPaddle centres the paddle horizontally, one paddle height above the bottom.
func NewPaddle(cfg utils.Config) *Paddle {
	return &Paddle{
		X:      (cfg.Width - cfg.PaddleWidth) / 2,
		Y:      cfg.Height - cfg.PaddleHeight*2,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Step:   cfg.PaddleStep,
	}
}

func (paddle *Paddle) Bounds() Rect {
	return Rect{X: paddle.X, Y: paddle.Y, W: paddle.Width, H: paddle.Height}
}

// Move shifts the paddle by Step*multiplier in direction ("left" or "right"),
// clamped to the canvas. It reports whether the paddle actually moved.
func (paddle *Paddle) Move(direction string, multiplier int, canvas Canvas) bool {
	step := paddle.Step * multiplier
	previousX := paddle.X

	switch direction {
	case utils.DirectionLeft:
		paddle.X -= step
	case utils.DirectionRight:
		paddle.X += step
	default:
		return false
	}

	paddle.X = utils.Clamp(paddle.X, 0, canvas.Width-paddle.Width)
	return paddle.X != previousX
}
