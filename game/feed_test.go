package game

import (
	"testing"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_FollowsGameActor(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(testShutdownTimeout)

	actor := newManualGameActor()
	actor.game.Balls[0].X, actor.game.Balls[0].Y, actor.game.Balls[0].Dy = 100, 580, 1
	gamePID := spawnGameActor(t, engine, actor)

	feed := NewFeed()
	_, ok := feed.Latest()
	assert.False(t, ok)

	require.NotNil(t, engine.Spawn(bollywood.NewProps(NewFeedProducer(feed, gamePID))))

	select {
	case <-feed.Updates():
	case <-time.After(waitForMessageTimeout):
		t.Fatal("feed was never signalled")
	}
	state, ok := feed.Latest()
	require.True(t, ok)
	assert.Equal(t, 0, state.Ticks)

	// Ten ticks take the ball from y=580 past the bottom edge.
	for i := 0; i < 10; i++ {
		engine.Send(gamePID, GameTick{}, nil)
	}
	require.Eventually(t, func() bool {
		_, over := feed.GameOver()
		return over
	}, waitForMessageTimeout, 5*time.Millisecond)

	over, _ := feed.GameOver()
	state, _ = feed.Latest()
	assert.True(t, state.Over)
	assert.Equal(t, state.Ticks, over.Ticks)
	assert.Equal(t, state.GameID, over.GameID)

	engine.Send(gamePID, RestartCommand{}, nil)
	require.Eventually(t, func() bool {
		_, over := feed.GameOver()
		return !over
	}, waitForMessageTimeout, 5*time.Millisecond, "a fresh state clears the game over notice")
}

func TestFeed_SignalIsCoalesced(t *testing.T) {
	feed := NewFeed()
	feed.storeState(GameState{Ticks: 1})
	feed.storeState(GameState{Ticks: 2})
	feed.storeGameOver(GameOverMessage{Ticks: 2})

	<-feed.Updates()
	select {
	case <-feed.Updates():
		t.Fatal("expected a single pending signal")
	default:
	}
	state, _ := feed.Latest()
	assert.Equal(t, 2, state.Ticks)
	_, over := feed.GameOver()
	assert.True(t, over)
}
