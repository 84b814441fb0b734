package pipe

import "sync"

// defaultBacklog is the per-port buffer size used by New. The scheduling
// use case posts a single empty message per pipe, so the buffer only needs
// to absorb a short burst before the listener goroutine catches up.
const defaultBacklog = 16

// Maker produces a fresh Pipe. The scheduler creates one pipe per scheduled
// task, trading object-creation cost for the impossibility of handle-routing
// collisions.
type Maker func() *Pipe

// Pipe is a pair of connected ports. Data posted on one port is delivered,
// asynchronously and in FIFO order, to the listener of the other port.
// All methods are safe for concurrent use.
type Pipe struct {
	p1, p2    *Port
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a pipe with the default per-port backlog.
func New() *Pipe {
	return NewBuffered(defaultBacklog)
}

// NewBuffered creates a pipe whose ports buffer up to backlog undelivered
// messages each. A minimum backlog of 1 is enforced so that a single Post
// before Listen is never lost.
func NewBuffered(backlog int) *Pipe {
	done := make(chan struct{})
	p1 := &Port{in: make(chan string, max(backlog, 1)), done: done}
	p2 := &Port{in: make(chan string, max(backlog, 1)), done: done}
	p1.peer, p2.peer = p2, p1
	return &Pipe{p1: p1, p2: p2, done: done}
}

// Port1 returns the first endpoint.
func (p *Pipe) Port1() *Port { return p.p1 }

// Port2 returns the second endpoint.
func (p *Pipe) Port2() *Port { return p.p2 }

// Close tears down both endpoints and stops their delivery goroutines.
// Messages still in a port's backlog are discarded. Close is idempotent and
// safe to call from inside a listener.
func (p *Pipe) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// Port is one endpoint of a Pipe.
type Port struct {
	peer *Port
	in   chan string
	done chan struct{}

	mu        sync.Mutex
	listening bool
}

// Post delivers data to the opposite port's listener. It never blocks:
// posting on a closed pipe returns ErrPipeClosed, and a full backlog on the
// receiving side returns ErrBacklogFull.
func (pt *Port) Post(data string) error {
	select {
	case <-pt.done:
		return ErrPipeClosed
	default:
	}

	select {
	case pt.peer.in <- data:
		return nil
	case <-pt.done:
		return ErrPipeClosed
	default:
		return ErrBacklogFull
	}
}

// Listen installs fn as the port's listener and starts asynchronous
// delivery. Each port accepts exactly one listener for its lifetime;
// installing a second returns ErrListenerInstalled. Messages posted before
// Listen are retained in the backlog and delivered once the listener is
// installed.
func (pt *Port) Listen(fn func(data string)) error {
	if fn == nil {
		return ErrNilListener
	}

	pt.mu.Lock()
	if pt.listening {
		pt.mu.Unlock()
		return ErrListenerInstalled
	}
	pt.listening = true
	pt.mu.Unlock()

	go func() {
		for {
			select {
			case <-pt.done:
				return
			case data := <-pt.in:
				fn(data)
			}
		}
	}()

	return nil
}
