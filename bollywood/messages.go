package bollywood

import "errors"

// --- System Messages ---

// Started is sent to an actor after its goroutine has started.
type Started struct{}

// Stopping is sent to an actor to signal it should prepare to stop.
// No more user messages will be delivered after Stopping.
type Stopping struct{}

// Stopped is the final message an actor receives before its goroutine exits.
type Stopped struct{}

var (
	ErrTimeout        = errors.New("bollywood: ask timed out")
	ErrActorNotFound  = errors.New("bollywood: actor not found")
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	replyTo chan interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
