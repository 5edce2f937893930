package bollywood

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{}
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) sendMessage(envelope *messageEnvelope) {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return
	}
	select {
	case p.mailbox <- envelope:
	default:
		log.Printf("Actor %s mailbox full, dropping message type %T", p.pid, envelope.Message)
	}
}

func (p *process) run() {
	defer close(p.done)
	defer p.engine.remove(p.pid)
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s panicked: %v\n%s", p.pid, r, debug.Stack())
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		log.Printf("Actor %s producer returned nil actor", p.pid)
		return
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
				}
				p.signalStop()
			case Stopped:
				// Delivered by run's defer only.
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope)
			}
		}
	}
}

// invokeReceive calls the actor's Receive, recovering panics so one bad
// message does not kill the actor.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		replyTo: envelope.replyTo,
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s panicked during Receive(%T): %v\n%s", p.pid, envelope.Message, r, debug.Stack())
		}
	}()
	p.actor.Receive(ctx)
}
