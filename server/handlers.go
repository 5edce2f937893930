// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/utils"
	"golang.org/x/net/websocket"
)

// HandleGetState returns the current game state as JSON by asking the GameActor.
func (s *Server) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC recovered in HandleGetState: %v\n%s", rec, debug.Stack())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		reply, err := s.engine.Ask(s.gameActorPID, game.GetStateRequest{}, s.askTimeout)
		if err != nil {
			log.Printf("HandleGetState: %v", err)
			http.Error(w, "Game unavailable", http.StatusServiceUnavailable)
			return
		}
		state, ok := reply.(game.GameState)
		if !ok {
			log.Printf("HandleGetState: unexpected reply type %T", reply)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(state); err != nil {
			log.Println("Error writing HTTP game state:", err)
		}
	}
}

// HandleSubscribe streams game frames to a websocket client and forwards its
// {"direction": "..."} messages to the GameActor. ?format=msgpack switches the
// stream to binary msgpack frames.
func (s *Server) HandleSubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codec, err := codecForFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		websocket.Handler(func(ws *websocket.Conn) {
			s.serveClient(ws, codec, s.readDirections)
		}).ServeHTTP(w, r)
	}
}

// HandleWatch streams ASCII frames, coloured with ?color=true. Clients send
// single key names ("a", "d", "ArrowLeft") as plain text or JSON direction
// messages.
func (s *Server) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codec, err := watchCodec(r.URL.Query().Get("color"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		websocket.Handler(func(ws *websocket.Conn) {
			s.serveClient(ws, codec, s.readDirections)
		}).ServeHTTP(w, r)
	}
}

// HandleRestart starts a fresh game. Connected clients keep streaming.
func (s *Server) HandleRestart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		s.engine.Send(s.gameActorPID, game.RestartCommand{}, nil)
		w.WriteHeader(http.StatusAccepted)
	}
}

// serveClient registers ws with the broadcaster for the lifetime of readLoop.
func (s *Server) serveClient(ws *websocket.Conn, codec websocket.Codec, readLoop func(*websocket.Conn)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in websocket handler: %v\n%s", r, debug.Stack())
		}
		_ = ws.Close()
	}()

	if s.broadcasterPID == nil {
		log.Println("Server: no broadcaster, closing websocket")
		return
	}
	s.engine.Send(s.broadcasterPID, game.AddClient{Conn: ws, Codec: codec}, nil)
	defer s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)

	readLoop(ws)
}

// readDirections forwards client key presses until the connection closes.
func (s *Server) readDirections(ws *websocket.Conn) {
	for {
		var raw string
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("ReadLoop: closing client: %v", err)
			}
			return
		}

		direction := parseDirection(raw)
		if utils.DirectionFromString(direction) == "" {
			continue
		}
		s.engine.Send(s.gameActorPID, game.MovePaddleCommand{Direction: direction}, nil)
	}
}

// parseDirection accepts {"direction":"ArrowLeft"} or a bare key name.
func parseDirection(raw string) string {
	var msg game.MovePaddleCommand
	if err := json.Unmarshal([]byte(raw), &msg); err == nil {
		return msg.Direction
	}
	return raw
}
