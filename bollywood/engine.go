package bollywood

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil when the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	proc.sendMessage(&messageEnvelope{Message: Started{}})
	go proc.run()

	return pid
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

// Send delivers a message to the actor identified by pid. Messages to unknown
// actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.sendMessage(&messageEnvelope{Sender: sender, Message: message})
	}
}

// Ask sends message to pid and waits up to timeout for the actor to answer
// through Context.Respond.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("ask %s: %w", pid, ErrActorNotFound)
	}

	replyCh := make(chan interface{}, 1)
	proc.sendMessage(&messageEnvelope{Message: message, replyTo: replyCh})

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		return reply, nil
	case <-proc.done:
		return nil, fmt.Errorf("ask %s: %w", pid, ErrActorNotFound)
	case <-timer.C:
		return nil, fmt.Errorf("ask %s (%T): %w", pid, message, ErrTimeout)
	}
}

// Stop requests an actor to stop. The actor receives Stopping, then Stopped.
func (e *Engine) Stop(pid *PID) {
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.sendMessage(&messageEnvelope{Message: Stopping{}})
	proc.signalStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	for _, proc := range procs {
		e.Stop(proc.pid)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline.C:
			log.Printf("Engine shutdown timeout: %d actors did not stop gracefully", e.count())
			return
		}
	}
}

func (e *Engine) count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}
