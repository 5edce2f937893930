// File: game/messages.go
package game

import (
	"github.com/lguibr/brickbreaker/bollywood"
	"golang.org/x/net/websocket"
)

// --- Messages handled by GameActor ---

// GameTick advances the game by one step. Posted by the actor's own ticker.
type GameTick struct{}

// MovePaddleCommand carries one key press from a host or a websocket client.
// Direction accepts key names understood by utils.DirectionFromString.
type MovePaddleCommand struct {
	Direction string `json:"direction"`
}

// GetStateRequest is answered with a GameState through Context.Respond.
type GetStateRequest struct{}

// Subscribe registers PID to receive GameStateUpdate and GameOverMessage.
type Subscribe struct {
	PID *bollywood.PID
}

type Unsubscribe struct {
	PID *bollywood.PID
}

// RestartCommand replaces the game with a fresh one and keeps subscribers.
type RestartCommand struct{}

// --- Messages sent by GameActor to subscribers ---

// MessageHeader matches the leading field of every outgoing frame, so clients
// can switch on the message type before decoding the rest.
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

const (
	MessageTypeGameState = "gameState"
	MessageTypeGameOver  = "gameOver"
)

// GameStateUpdate is sent after every tick.
type GameStateUpdate struct {
	MessageType string    `json:"messageType"`
	State       GameState `json:"state"`
}

func NewGameStateUpdate(state GameState) GameStateUpdate {
	return GameStateUpdate{MessageType: MessageTypeGameState, State: state}
}

// GameOverMessage is sent once, when the last ball is lost.
type GameOverMessage struct {
	MessageType     string `json:"messageType"`
	GameID          string `json:"gameId"`
	BlocksDestroyed int    `json:"blocksDestroyed"`
	Ticks           int    `json:"ticks"`
	Reason          string `json:"reason"`
}

const GameOverReasonNoBalls = "all balls lost"

func NewGameOverMessage(g *Game, reason string) GameOverMessage {
	return GameOverMessage{
		MessageType:     MessageTypeGameOver,
		GameID:          g.ID,
		BlocksDestroyed: g.BlocksDestroyed,
		Ticks:           g.Ticks,
		Reason:          reason,
	}
}

// --- Messages handled by BroadcasterActor ---

// AddClient registers a websocket client. Codec decides the wire format.
type AddClient struct {
	Conn  *websocket.Conn
	Codec websocket.Codec
}

type RemoveClient struct {
	Conn *websocket.Conn
}
