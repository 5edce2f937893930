// File: server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
)

const (
	defaultAskTimeout = time.Second
	shutdownTimeout   = 5 * time.Second

	watchCols = 80
	watchRows = 30
)

// Server exposes one GameActor over HTTP and websockets.
type Server struct {
	engine         *bollywood.Engine
	gameActorPID   *bollywood.PID
	broadcasterPID *bollywood.PID
	askTimeout     time.Duration
	mux            *http.ServeMux
}

// New spawns the broadcaster for gameActorPID and registers the routes.
func New(engine *bollywood.Engine, gameActorPID *bollywood.PID) *Server {
	s := &Server{
		engine:       engine,
		gameActorPID: gameActorPID,
		askTimeout:   defaultAskTimeout,
		mux:          http.NewServeMux(),
	}
	s.broadcasterPID = engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer(gameActorPID)))
	if s.broadcasterPID == nil {
		log.Printf("Server: failed to spawn broadcaster for game actor %s", gameActorPID)
	}

	s.mux.HandleFunc("/", s.HandleGetState())
	s.mux.HandleFunc("/subscribe", s.HandleSubscribe())
	s.mux.HandleFunc("/watch", s.HandleWatch())
	s.mux.HandleFunc("/restart", s.HandleRestart())
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.mux}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server: listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if s.broadcasterPID != nil {
		s.engine.Stop(s.broadcasterPID)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
