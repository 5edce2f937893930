package render

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
)

// TerminalHost plays the game inside a terminal using tcell.
type TerminalHost struct {
	screen  tcell.Screen
	engine  *bollywood.Engine
	gamePID *bollywood.PID
	feed    *game.Feed
}

// NewTerminalHost initialises screen, or the real terminal when screen is nil.
func NewTerminalHost(engine *bollywood.Engine, gamePID *bollywood.PID, screen tcell.Screen) (*TerminalHost, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create terminal screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	return &TerminalHost{
		screen:  screen,
		engine:  engine,
		gamePID: gamePID,
		feed:    game.NewFeed(),
	}, nil
}

// Run draws every frame until the user quits, the game is over and a key is
// pressed, or ctx is cancelled. The screen is released before Run returns.
func (h *TerminalHost) Run(ctx context.Context) error {
	defer h.screen.Fini()

	feedPID := h.engine.Spawn(bollywood.NewProps(game.NewFeedProducer(h.feed, h.gamePID)))
	if feedPID == nil {
		return fmt.Errorf("terminal host: %w", bollywood.ErrEngineStopping)
	}
	defer h.engine.Stop(feedPID)

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(h.screen, eventChan, done)

	gameOver := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if gameOver || isQuitKey(ev) {
					return nil
				}
				if direction := keyToDirection(ev); direction != "" {
					h.engine.Send(h.gamePID, game.MovePaddleCommand{Direction: direction}, nil)
				}
			case *tcell.EventResize:
				h.screen.Sync()
				h.redraw()
			}

		case <-h.feed.Updates():
			over := h.redraw()
			if over && !gameOver {
				msg, _ := h.feed.GameOver()
				log.Printf("TerminalHost: %s", GameOverText(msg))
			}
			gameOver = over
		}
	}
}

// forwardEvents pumps screen events into events until the screen is
// finalised or done is closed.
func forwardEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// redraw paints the latest frame and reports whether the game is over.
func (h *TerminalHost) redraw() bool {
	state, ok := h.feed.Latest()
	if !ok {
		return false
	}
	h.draw(state)
	over, isOver := h.feed.GameOver()
	if isOver {
		h.drawGameOver(over)
	}
	h.screen.Show()
	return isOver
}

func (h *TerminalHost) draw(state game.GameState) {
	h.screen.Clear()
	width, height := h.screen.Size()
	if width <= 0 || height <= 1 {
		return
	}

	cells := Rasterize(state, width, height-1)
	for y, line := range cells {
		for x, cell := range line {
			if cell == CellEmpty {
				continue
			}
			h.screen.SetContent(x, y, cell.Glyph(), nil, styleFor(cell))
		}
	}
	drawText(h.screen, 0, height-1, tcell.StyleDefault.Foreground(tcell.ColorWhite), StatusLine(state))
}

// drawGameOver shows a centred dialog over the last frame.
func (h *TerminalHost) drawGameOver(msg game.GameOverMessage) {
	width, height := h.screen.Size()
	lines := []string{GameOverText(msg), "Press any key to exit"}
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, len(line))
	}
	boxWidth += 4
	boxHeight := len(lines) + 2
	left := max((width-boxWidth)/2, 0)
	top := max((height-boxHeight)/2, 0)

	style := tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
	for y := top; y < top+boxHeight; y++ {
		for x := left; x < left+boxWidth; x++ {
			h.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, line := range lines {
		drawText(h.screen, left+(boxWidth-len(line))/2, top+1+i, style.Bold(i == 0), line)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func styleFor(cell CellKind) tcell.Style {
	pixel := cell.Color()
	color := tcell.NewRGBColor(int32(pixel.R), int32(pixel.G), int32(pixel.B))
	return tcell.StyleDefault.Foreground(color).Bold(true)
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// keyToDirection maps arrows and a/d to the key names GameActor accepts.
func keyToDirection(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return utils.KeyArrowLeft
	case tcell.KeyRight:
		return utils.KeyArrowRight
	case tcell.KeyRune:
		switch utils.DirectionFromString(string(ev.Rune())) {
		case utils.DirectionLeft:
			return utils.KeyArrowLeft
		case utils.DirectionRight:
			return utils.KeyArrowRight
		}
	}
	return ""
}
