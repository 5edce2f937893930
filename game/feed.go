// File: game/feed.go
package game

import (
	"sync"

	"github.com/lguibr/brickbreaker/bollywood"
)

// Feed keeps the latest frame published by a GameActor so that hosts running
// their own loops (tcell, ebiten, headless) can poll it without owning an
// actor themselves.
type Feed struct {
	mu       sync.Mutex
	state    GameState
	hasState bool
	gameOver *GameOverMessage
	updates  chan struct{}
}

func NewFeed() *Feed {
	return &Feed{updates: make(chan struct{}, 1)}
}

// Latest returns the most recent state, if any arrived yet.
func (f *Feed) Latest() (GameState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.hasState
}

// GameOver returns the game over notice of the current game, if any.
func (f *Feed) GameOver() (GameOverMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gameOver == nil {
		return GameOverMessage{}, false
	}
	return *f.gameOver, true
}

// Updates is signalled (coalesced) whenever a new frame is stored.
func (f *Feed) Updates() <-chan struct{} {
	return f.updates
}

func (f *Feed) storeState(state GameState) {
	f.mu.Lock()
	f.state = state
	f.hasState = true
	if !state.Over {
		f.gameOver = nil
	}
	f.mu.Unlock()
	f.signal()
}

func (f *Feed) storeGameOver(msg GameOverMessage) {
	f.mu.Lock()
	f.gameOver = &msg
	f.mu.Unlock()
	f.signal()
}

func (f *Feed) signal() {
	select {
	case f.updates <- struct{}{}:
	default:
	}
}

// feedActor subscribes to a GameActor and copies what it receives into a Feed.
type feedActor struct {
	feed         *Feed
	gameActorPID *bollywood.PID
}

// NewFeedProducer creates a producer for an actor that fills feed with the
// updates of gameActorPID.
func NewFeedProducer(feed *Feed, gameActorPID *bollywood.PID) bollywood.Producer {
	return func() bollywood.Actor {
		return &feedActor{feed: feed, gameActorPID: gameActorPID}
	}
}

func (a *feedActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		ctx.Engine().Send(a.gameActorPID, Subscribe{PID: ctx.Self()}, ctx.Self())
	case GameStateUpdate:
		a.feed.storeState(msg.State)
	case GameOverMessage:
		a.feed.storeGameOver(msg)
	case bollywood.Stopping:
		ctx.Engine().Send(a.gameActorPID, Unsubscribe{PID: ctx.Self()}, ctx.Self())
	}
}
