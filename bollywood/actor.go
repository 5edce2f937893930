package bollywood

// Actor is the interface that defines actor behavior.
// Actors process messages from their mailbox one at a time, so state owned by
// an actor never needs a lock while it is touched from Receive.
type Actor interface {
	Receive(ctx Context)
}

// PID identifies a running actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "nil"
	}
	return pid.ID
}

// Producer is a function that creates a new instance of an Actor.
type Producer func() Actor

// Props is used to create actors.
type Props struct {
	producer Producer
}

// NewProps creates a new Props object with the given actor producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}
