package bus

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryBus is an in-process broadcast medium with asynchronous FIFO
// delivery: Publish enqueues and returns, a single dispatch goroutine fans
// the message out to subscribers in publish order. All methods are safe for
// concurrent use.
type MemoryBus struct {
	origin string
	queue  chan Message
	done   chan struct{}
	wg     sync.WaitGroup

	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
	closed bool
}

// NewMemoryBus creates an in-process bus. The backlog parameter bounds how
// many published messages may await dispatch; a minimum of 1 is enforced.
// When the backlog is full, Publish returns ErrBusOverflow rather than
// blocking.
func NewMemoryBus(backlog int) *MemoryBus {
	b := &MemoryBus{
		origin: uuid.New().String(),
		queue:  make(chan Message, max(backlog, 1)),
		done:   make(chan struct{}),
		subs:   make(map[uint64]Handler),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Origin returns the identity stamped on messages published by this
// instance.
func (b *MemoryBus) Origin() string { return b.origin }

// Publish enqueues data for delivery to every subscriber and returns
// without waiting for delivery.
func (b *MemoryBus) Publish(ctx context.Context, data string) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrBusClosed
	}

	select {
	case b.queue <- Message{Origin: b.origin, Data: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrBusClosed
	default:
		return ErrBusOverflow
	}
}

// Subscribe installs h as a persistent handler. The returned function
// removes the handler and is safe to call more than once.
func (b *MemoryBus) Subscribe(h Handler) (func(), error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}, nil
}

// Close stops the dispatch goroutine. Messages still in the backlog are
// discarded. Close is idempotent.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
	return nil
}

func (b *MemoryBus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case msg := <-b.queue:
			// Snapshot under read lock so handlers run without holding it:
			// a handler may subscribe or unsubscribe reentrantly.
			b.mu.RLock()
			handlers := make([]Handler, 0, len(b.subs))
			for _, h := range b.subs {
				handlers = append(handlers, h)
			}
			b.mu.RUnlock()

			for _, h := range handlers {
				h(msg)
			}
		}
	}
}
