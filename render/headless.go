package render

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
)

// HeadlessOptions configures a Headless run.
type HeadlessOptions struct {
	Cols, Rows int
	Every      int  // Print a frame every Every ticks; 0 prints only the last frame
	MaxFrames  int  // Stop after this many printed frames; 0 means no limit
	Autopilot  bool // Keep the paddle under the lowest ball
}

func DefaultHeadlessOptions() HeadlessOptions {
	return HeadlessOptions{Cols: 80, Rows: 30, Every: 50}
}

// Headless runs a game without a screen, writing ASCII frames to out.
type Headless struct {
	engine  *bollywood.Engine
	gamePID *bollywood.PID
	out     io.Writer
	opts    HeadlessOptions
	feed    *game.Feed
}

func NewHeadless(engine *bollywood.Engine, gamePID *bollywood.PID, out io.Writer, opts HeadlessOptions) *Headless {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		defaults := DefaultHeadlessOptions()
		opts.Cols, opts.Rows = defaults.Cols, defaults.Rows
	}
	return &Headless{
		engine:  engine,
		gamePID: gamePID,
		out:     out,
		opts:    opts,
		feed:    game.NewFeed(),
	}
}

// Run blocks until the game is over, MaxFrames frames were printed or ctx is
// cancelled. It returns the last state seen.
func (h *Headless) Run(ctx context.Context) (game.GameState, error) {
	feedPID := h.engine.Spawn(bollywood.NewProps(game.NewFeedProducer(h.feed, h.gamePID)))
	if feedPID == nil {
		return game.GameState{}, fmt.Errorf("headless host: %w", bollywood.ErrEngineStopping)
	}
	defer h.engine.Stop(feedPID)

	frames := 0
	lastPrinted := -1
	var state game.GameState
	for {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-h.feed.Updates():
		}

		var ok bool
		state, ok = h.feed.Latest()
		if !ok {
			continue
		}

		if over, isOver := h.feed.GameOver(); isOver {
			if err := h.printFrame(state); err != nil {
				return state, err
			}
			_, err := fmt.Fprintln(h.out, GameOverText(over))
			log.Printf("Headless: %s", GameOverText(over))
			return state, err
		}

		if h.opts.Every > 0 && (lastPrinted < 0 || state.Ticks-lastPrinted >= h.opts.Every) {
			if err := h.printFrame(state); err != nil {
				return state, err
			}
			lastPrinted = state.Ticks
			frames++
			if h.opts.MaxFrames > 0 && frames >= h.opts.MaxFrames {
				return state, nil
			}
		}

		if h.opts.Autopilot {
			if direction := AutopilotDirection(state); direction != "" {
				h.engine.Send(h.gamePID, game.MovePaddleCommand{Direction: direction}, nil)
			}
		}
	}
}

func (h *Headless) printFrame(state game.GameState) error {
	_, err := fmt.Fprintf(h.out, "%s%s\n", RenderToASCII(state, h.opts.Cols, h.opts.Rows), StatusLine(state))
	return err
}

// AutopilotDirection steers the paddle towards the lowest ball that is
// falling, or the lowest ball at all when none is. It returns "" when the
// paddle is already under it.
func AutopilotDirection(state game.GameState) string {
	var target *game.Ball
	for i := range state.Balls {
		ball := &state.Balls[i]
		if target == nil ||
			(ball.Dy > 0 && target.Dy < 0) ||
			(ball.Dy*target.Dy > 0 && ball.Y > target.Y) {
			target = ball
		}
	}
	if target == nil {
		return ""
	}

	ballCentre := target.X + target.Size/2
	paddleCentre := state.Paddle.X + state.Paddle.Width/2
	deadZone := state.Paddle.Width / 4
	switch {
	case ballCentre < paddleCentre-deadZone:
		return utils.KeyArrowLeft
	case ballCentre > paddleCentre+deadZone:
		return utils.KeyArrowRight
	}
	return ""
}
