// File: game/game_actor_test.go
package game

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitForMessageTimeout = 2 * time.Second
	testShutdownTimeout   = 2 * time.Second
	askTimeout            = time.Second
)

// MockSubscriberActor captures every message sent to it.
type MockSubscriberActor struct {
	mu       sync.Mutex
	Received []interface{}
}

func (a *MockSubscriberActor) Receive(ctx bollywood.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Received = append(a.Received, ctx.Message())
}

func (a *MockSubscriberActor) GetMessages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.Received))
	copy(msgs, a.Received)
	return msgs
}

func (a *MockSubscriberActor) StateUpdates() []GameStateUpdate {
	updates := make([]GameStateUpdate, 0)
	for _, msg := range a.GetMessages() {
		if update, ok := msg.(GameStateUpdate); ok {
			updates = append(updates, update)
		}
	}
	return updates
}

func (a *MockSubscriberActor) GameOvers() []GameOverMessage {
	overs := make([]GameOverMessage, 0)
	for _, msg := range a.GetMessages() {
		if over, ok := msg.(GameOverMessage); ok {
			overs = append(overs, over)
		}
	}
	return overs
}

// manualConfig never ticks on its own, so tests drive the game with GameTick.
func manualConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = time.Hour
	cfg.BonusChance = 0
	return cfg
}

func spawnGameActor(t *testing.T, engine *bollywood.Engine, actor *GameActor) *bollywood.PID {
	t.Helper()
	pid := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return actor }))
	require.NotNil(t, pid)
	return pid
}

func spawnSubscriber(t *testing.T, engine *bollywood.Engine, gamePID *bollywood.PID) (*MockSubscriberActor, *bollywood.PID) {
	t.Helper()
	mock := &MockSubscriberActor{}
	pid := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return mock }))
	require.NotNil(t, pid)
	engine.Send(gamePID, Subscribe{PID: pid}, nil)
	require.Eventually(t, func() bool { return len(mock.StateUpdates()) >= 1 },
		waitForMessageTimeout, 5*time.Millisecond, "subscriber should get the current state on subscribe")
	return mock, pid
}

func askState(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID) GameState {
	t.Helper()
	reply, err := engine.Ask(pid, GetStateRequest{}, askTimeout)
	require.NoError(t, err)
	state, ok := reply.(GameState)
	require.True(t, ok, "expected GameState, got %T", reply)
	return state
}

func newManualGameActor() *GameActor {
	return NewGameActorProducer(manualConfig(), rand.New(rand.NewSource(1)))().(*GameActor)
}

func TestGameActor_GetState(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)
	pid := spawnGameActor(t, engine, newManualGameActor())

	state := askState(t, engine, pid)
	assert.NotEmpty(t, state.GameID)
	assert.Len(t, state.Balls, 1)
	assert.Equal(t, 50, state.BlocksLeft)
	assert.Equal(t, 0, state.Ticks)
	assert.False(t, state.Over)
}

func TestGameActor_TickBroadcastsState(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)
	pid := spawnGameActor(t, engine, newManualGameActor())
	mock, _ := spawnSubscriber(t, engine, pid)

	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool { return len(mock.StateUpdates()) >= 3 },
		waitForMessageTimeout, 5*time.Millisecond)
	updates := mock.StateUpdates()
	last := updates[len(updates)-1]
	assert.Equal(t, MessageTypeGameState, last.MessageType)
	assert.Equal(t, 2, last.State.Ticks)
	assert.Equal(t, 397, last.State.Balls[0].X)
}

func TestGameActor_MovePaddle(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)
	pid := spawnGameActor(t, engine, newManualGameActor())

	engine.Send(pid, MovePaddleCommand{Direction: utils.KeyArrowLeft}, nil)
	engine.Send(pid, MovePaddleCommand{Direction: "ArrowUp"}, nil)
	engine.Send(pid, MovePaddleCommand{Direction: "d"}, nil)
	engine.Send(pid, MovePaddleCommand{Direction: "d"}, nil)

	// Mailbox order guarantees the moves are applied before the query.
	state := askState(t, engine, pid)
	assert.Equal(t, 355, state.Paddle.X)
}

func TestGameActor_GameOver(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)

	actor := newManualGameActor()
	ball := actor.game.Balls[0]
	ball.X, ball.Y, ball.Dy = 100, 589, 1
	pid := spawnGameActor(t, engine, actor)
	mock, _ := spawnSubscriber(t, engine, pid)

	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool { return len(mock.GameOvers()) == 1 },
		waitForMessageTimeout, 5*time.Millisecond)
	over := mock.GameOvers()[0]
	assert.Equal(t, MessageTypeGameOver, over.MessageType)
	assert.Equal(t, 1, over.Ticks)
	assert.Equal(t, GameOverReasonNoBalls, over.Reason)

	// Further ticks and input change nothing.
	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, MovePaddleCommand{Direction: "ArrowLeft"}, nil)
	state := askState(t, engine, pid)
	assert.True(t, state.Over)
	assert.Equal(t, 1, state.Ticks)
	assert.Equal(t, 350, state.Paddle.X)
	assert.Len(t, mock.GameOvers(), 1, "game over is announced once")
}

func TestGameActor_LateSubscriberSeesGameOver(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)

	actor := newManualGameActor()
	actor.game.Balls[0].Y, actor.game.Balls[0].Dy = 589, 1
	actor.game.Balls[0].X = 100
	pid := spawnGameActor(t, engine, actor)
	engine.Send(pid, GameTick{}, nil)
	require.True(t, askState(t, engine, pid).Over)

	mock, _ := spawnSubscriber(t, engine, pid)
	require.Eventually(t, func() bool { return len(mock.GameOvers()) == 1 },
		waitForMessageTimeout, 5*time.Millisecond)
}

func TestGameActor_Restart(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)
	pid := spawnGameActor(t, engine, newManualGameActor())
	mock, _ := spawnSubscriber(t, engine, pid)

	engine.Send(pid, GameTick{}, nil)
	before := askState(t, engine, pid)
	require.Equal(t, 1, before.Ticks)

	engine.Send(pid, RestartCommand{}, nil)
	after := askState(t, engine, pid)
	assert.NotEqual(t, before.GameID, after.GameID)
	assert.Equal(t, 0, after.Ticks)

	require.Eventually(t, func() bool {
		updates := mock.StateUpdates()
		return updates[len(updates)-1].State.GameID == after.GameID
	}, waitForMessageTimeout, 5*time.Millisecond, "subscribers survive a restart")
}

func TestGameActor_Unsubscribe(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)
	pid := spawnGameActor(t, engine, newManualGameActor())
	mock, mockPID := spawnSubscriber(t, engine, pid)

	engine.Send(pid, Unsubscribe{PID: mockPID}, nil)
	engine.Send(pid, GameTick{}, nil)
	askState(t, engine, pid)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, mock.StateUpdates(), 1)
}

func TestGameActor_Ticker(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)

	cfg := manualConfig()
	cfg.TickPeriod = 2 * time.Millisecond
	pid := spawnGameActor(t, engine, NewGameActorProducer(cfg, nil)().(*GameActor))

	require.Eventually(t, func() bool {
		reply, err := engine.Ask(pid, GetStateRequest{}, askTimeout)
		if err != nil {
			return false
		}
		return reply.(GameState).Ticks >= 5
	}, waitForMessageTimeout, 10*time.Millisecond, "ticker should drive the game")

	engine.Stop(pid)
	require.Eventually(t, func() bool {
		_, err := engine.Ask(pid, GetStateRequest{}, 10*time.Millisecond)
		return err != nil
	}, waitForMessageTimeout, 10*time.Millisecond)
}
