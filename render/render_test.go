package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockGameActor answers Subscribe with a fixed frame sequence and records
// paddle commands.
type MockGameActor struct {
	mu       sync.Mutex
	Frames   []interface{}
	Commands []game.MovePaddleCommand
}

func (a *MockGameActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case game.Subscribe:
		for _, frame := range a.Frames {
			ctx.Engine().Send(msg.PID, frame, ctx.Self())
		}
	case game.MovePaddleCommand:
		a.mu.Lock()
		a.Commands = append(a.Commands, msg)
		a.mu.Unlock()
	}
}

func (a *MockGameActor) GetCommands() []game.MovePaddleCommand {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]game.MovePaddleCommand(nil), a.Commands...)
}

func newState() game.GameState {
	return game.New(utils.DefaultConfig(), nil).State()
}

func gameOverFrames() (game.GameState, []interface{}) {
	g := game.New(utils.DefaultConfig(), nil)
	g.Balls[0].X, g.Balls[0].Y, g.Balls[0].Dy = 100, 589, 1
	g.Tick()
	state := g.State()
	return state, []interface{}{
		game.NewGameStateUpdate(state),
		game.NewGameOverMessage(g, game.GameOverReasonNoBalls),
	}
}

func TestRasterize(t *testing.T) {
	state := newState()
	cells := Rasterize(state, 80, 30)
	require.Len(t, cells, 30)
	require.Len(t, cells[0], 80)

	assert.Equal(t, CellBall, cells[14][39])
	assert.Equal(t, CellBall, cells[15][40])
	assert.Equal(t, CellPaddle, cells[29][35])
	assert.Equal(t, CellPaddle, cells[29][44])
	assert.Equal(t, CellEmpty, cells[29][45])
	assert.Equal(t, CellBlock, cells[2][0])
	assert.Equal(t, CellBlock, cells[3][7])
	assert.Equal(t, CellEmpty, cells[10][70])
}

func TestRasterize_Layers(t *testing.T) {
	state := newState()
	state.Blocks[0].Visible = false
	state.Balls[0].X, state.Balls[0].Y = state.Paddle.X, state.Paddle.Y
	state.Bonuses = []game.Bonus{*game.NewBonus(1, 400, 100, 20, game.BonusExtraBall)}

	cells := Rasterize(state, 80, 30)
	assert.Equal(t, CellEmpty, cells[2][0], "hidden blocks are not drawn")
	assert.Equal(t, CellBall, cells[29][35], "balls are drawn over the paddle")
	assert.Equal(t, CellBonus, cells[5][40])
}

func TestRasterize_Degenerate(t *testing.T) {
	assert.Nil(t, Rasterize(newState(), 0, 10))
	assert.Nil(t, Rasterize(game.GameState{}, 80, 30))
}

func TestRenderToASCII(t *testing.T) {
	frame := RenderToASCII(newState(), 80, 30)
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	require.Len(t, lines, 30)
	for _, line := range lines {
		assert.Len(t, line, 80)
	}
	assert.Contains(t, frame, "O")
	assert.Contains(t, frame, "=")
	assert.Contains(t, frame, "#")
	assert.NotContains(t, frame, "+")
}

func TestRenderToANSI(t *testing.T) {
	frame := RenderToANSI(newState(), 40, 15)
	assert.Contains(t, frame, rgbToAnsi(ColorBall))
	assert.Contains(t, frame, rgbToAnsi(ColorPaddle))
	assert.Contains(t, frame, rgbToAnsi(ColorBlock))
	assert.Equal(t, 15, strings.Count(frame, "\n"))
}

func TestGrayToAscii(t *testing.T) {
	assert.Equal(t, byte(' '), grayToAscii(0))
	assert.Equal(t, byte('@'), grayToAscii(255*3))
	assert.NotEqual(t, grayToAscii(rgbToGray(ColorBall)), grayToAscii(rgbToGray(ColorBonus)))
}

func TestStatusLine(t *testing.T) {
	state := newState()
	assert.Equal(t, "Balls: 1  Blocks: 50  Destroyed: 0  Ticks: 0", StatusLine(state))

	state.PaddleFast, state.BallFast = true, true
	assert.Contains(t, StatusLine(state), "[Paddle speed up, Ball speed up]")
}

func TestGameOverText(t *testing.T) {
	msg := game.GameOverMessage{BlocksDestroyed: 7, Ticks: 1234}
	assert.Equal(t, "Game Over! 7 blocks destroyed in 1234 ticks.", GameOverText(msg))
}

func TestAutopilotDirection(t *testing.T) {
	state := newState()
	state.Paddle.X = 350 // centre 400

	state.Balls[0].X = 100
	assert.Equal(t, utils.KeyArrowLeft, AutopilotDirection(state))
	state.Balls[0].X = 700
	assert.Equal(t, utils.KeyArrowRight, AutopilotDirection(state))
	state.Balls[0].X = 400
	assert.Equal(t, "", AutopilotDirection(state))

	// A falling ball wins over a rising one, even if it is higher up.
	state.Balls = []game.Ball{
		{Id: 1, X: 700, Y: 500, Size: 10, Dx: 1, Dy: -1},
		{Id: 2, X: 100, Y: 200, Size: 10, Dx: 1, Dy: 1},
	}
	assert.Equal(t, utils.KeyArrowLeft, AutopilotDirection(state))

	state.Balls = nil
	assert.Equal(t, "", AutopilotDirection(state))
}

func TestKeyRepeat(t *testing.T) {
	assert.False(t, KeyRepeat(0))
	assert.True(t, KeyRepeat(1))
	assert.False(t, KeyRepeat(2))
	assert.False(t, KeyRepeat(14))
	assert.True(t, KeyRepeat(15))
	assert.False(t, KeyRepeat(16))
	assert.True(t, KeyRepeat(18))
}
