// File: game/game_actor.go
package game

import (
	"log"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/utils"
)

// GameActor owns one Game. Ticks, key presses and state queries all arrive
// through its mailbox, so the Game is only ever touched from Receive.
type GameActor struct {
	cfg     utils.Config
	rng     *rand.Rand
	game    *Game
	selfPID *bollywood.PID

	subscribers map[string]*bollywood.PID

	ticker       *time.Ticker
	stopTickerCh chan struct{}
}

// NewGameActorProducer creates a producer for GameActor. rng may be nil.
func NewGameActorProducer(cfg utils.Config, rng *rand.Rand) bollywood.Producer {
	return func() bollywood.Actor {
		return &GameActor{
			cfg:         cfg,
			rng:         rng,
			game:        New(cfg, rng),
			subscribers: make(map[string]*bollywood.PID),
		}
	}
}

// Receive handles messages for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in GameActor %s Receive: %v\n%s", a.selfPID, r, debug.Stack())
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("GameActor %s: Started game %s.", a.selfPID, a.game.ID)
		a.startTicker(ctx)

	case GameTick:
		a.handleTick(ctx)

	case MovePaddleCommand:
		a.handleMovePaddle(msg)

	case GetStateRequest:
		ctx.Respond(a.game.State())

	case Subscribe:
		if msg.PID == nil {
			return
		}
		a.subscribers[msg.PID.ID] = msg.PID
		ctx.Engine().Send(msg.PID, NewGameStateUpdate(a.game.State()), a.selfPID)
		if a.game.Over {
			ctx.Engine().Send(msg.PID, NewGameOverMessage(a.game, GameOverReasonNoBalls), a.selfPID)
		}

	case Unsubscribe:
		if msg.PID != nil {
			delete(a.subscribers, msg.PID.ID)
		}

	case RestartCommand:
		a.game = New(a.cfg, a.rng)
		log.Printf("GameActor %s: Restarted with game %s.", a.selfPID, a.game.ID)
		a.broadcast(ctx, NewGameStateUpdate(a.game.State()))
		a.startTicker(ctx)

	case bollywood.Stopping:
		a.stopTicker()
		log.Printf("GameActor %s: Stopping.", a.selfPID)

	case bollywood.Stopped:

	default:
		log.Printf("GameActor %s: Received unknown message type: %T", a.selfPID, msg)
	}
}

func (a *GameActor) handleTick(ctx bollywood.Context) {
	if a.game.Over {
		return
	}
	report := a.game.Tick()
	a.broadcast(ctx, NewGameStateUpdate(a.game.State()))

	if report.GameOver {
		a.stopTicker()
		log.Printf("GameActor %s: Game %s over after %d ticks, %d blocks destroyed.",
			a.selfPID, a.game.ID, a.game.Ticks, a.game.BlocksDestroyed)
		a.broadcast(ctx, NewGameOverMessage(a.game, GameOverReasonNoBalls))
	}
}

func (a *GameActor) handleMovePaddle(msg MovePaddleCommand) {
	direction := utils.DirectionFromString(msg.Direction)
	if direction == "" {
		log.Printf("GameActor %s: Ignoring unknown direction %q.", a.selfPID, msg.Direction)
		return
	}
	a.game.MovePaddle(direction)
}

func (a *GameActor) broadcast(ctx bollywood.Context, message interface{}) {
	for _, pid := range a.subscribers {
		ctx.Engine().Send(pid, message, a.selfPID)
	}
}

// startTicker posts GameTick to self every TickPeriod until stopTicker.
func (a *GameActor) startTicker(ctx bollywood.Context) {
	if a.ticker != nil {
		return
	}
	a.ticker = time.NewTicker(a.cfg.TickPeriod)
	a.stopTickerCh = make(chan struct{})

	tickerCh := a.ticker.C
	stopCh := a.stopTickerCh
	engine := ctx.Engine()
	self := a.selfPID

	go func() {
		for {
			select {
			case <-stopCh:
				return
			case <-tickerCh:
				engine.Send(self, GameTick{}, nil)
			}
		}
	}()
}

func (a *GameActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.stopTickerCh)
	a.ticker = nil
	a.stopTickerCh = nil
}
