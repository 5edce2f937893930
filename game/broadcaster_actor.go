// File: game/broadcaster_actor.go
package game

import (
	"log"
	"runtime/debug"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"golang.org/x/net/websocket"
)

// clientWriteTimeout bounds each frame write, so a client that stops reading
// is dropped instead of stalling every other client.
var clientWriteTimeout = 2 * time.Second

// BroadcasterActor fans GameActor updates out to websocket clients. Each
// client picks its own codec (JSON, msgpack, ASCII frames).
type BroadcasterActor struct {
	clients      map[*websocket.Conn]websocket.Codec
	selfPID      *bollywood.PID
	gameActorPID *bollywood.PID

	lastUpdate *GameStateUpdate
	gameOver   *GameOverMessage
}

// NewBroadcasterProducer creates a producer for BroadcasterActor. The actor
// subscribes itself to gameActorPID when it starts.
func NewBroadcasterProducer(gameActorPID *bollywood.PID) bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients:      make(map[*websocket.Conn]websocket.Codec),
			gameActorPID: gameActorPID,
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\n%s", a.selfPID, r, debug.Stack())
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		ctx.Engine().Send(a.gameActorPID, Subscribe{PID: a.selfPID}, a.selfPID)

	case AddClient:
		if msg.Conn == nil {
			return
		}
		a.clients[msg.Conn] = msg.Codec
		// Late joiners get the latest frame straight away.
		if a.lastUpdate != nil {
			a.sendTo(msg.Conn, msg.Codec, *a.lastUpdate)
		}
		if a.gameOver != nil {
			a.sendTo(msg.Conn, msg.Codec, *a.gameOver)
		}

	case RemoveClient:
		delete(a.clients, msg.Conn)

	case GameStateUpdate:
		if !msg.State.Over {
			a.gameOver = nil
		}
		a.lastUpdate = &msg
		a.broadcast(msg)

	case GameOverMessage:
		log.Printf("Broadcaster %s: Game %s over, notifying %d clients.", a.selfPID, msg.GameID, len(a.clients))
		a.gameOver = &msg
		a.broadcast(msg)

	case bollywood.Stopping:
		ctx.Engine().Send(a.gameActorPID, Unsubscribe{PID: a.selfPID}, a.selfPID)
		a.closeAllConnections()

	case bollywood.Stopped:

	default:
		log.Printf("BroadcasterActor %s: Received unknown message type: %T", a.selfPID, msg)
	}
}

func (a *BroadcasterActor) broadcast(message interface{}) {
	for ws, codec := range a.clients {
		a.sendTo(ws, codec, message)
	}
}

// sendTo writes one frame. A client whose write fails is dropped.
func (a *BroadcasterActor) sendTo(ws *websocket.Conn, codec websocket.Codec, message interface{}) {
	err := ws.SetWriteDeadline(time.Now().Add(clientWriteTimeout))
	if err == nil {
		err = codec.Send(ws, message)
	}
	if err != nil {
		log.Printf("Broadcaster %s: Dropping client after write error: %v", a.selfPID, err)
		delete(a.clients, ws)
		_ = ws.Close()
	}
}

func (a *BroadcasterActor) closeAllConnections() {
	if len(a.clients) > 0 {
		log.Printf("Broadcaster %s: Closing %d connections.", a.selfPID, len(a.clients))
	}
	for ws := range a.clients {
		_ = ws.Close()
	}
	a.clients = make(map[*websocket.Conn]websocket.Codec)
}
