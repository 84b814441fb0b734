package bus

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SyncBus is an in-process broadcast medium that delivers inside the
// Publish call itself: every handler has already run by the time Publish
// returns. It models hosts whose broadcast fires same-turn, which makes it
// unsuitable as an asynchronous scheduling trigger — consumers probing for
// delivery timing will correctly reject it.
type SyncBus struct {
	origin string

	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
	closed bool
}

// NewSyncBus creates a synchronously delivering in-process bus.
func NewSyncBus() *SyncBus {
	return &SyncBus{
		origin: uuid.New().String(),
		subs:   make(map[uint64]Handler),
	}
}

// Origin returns the identity stamped on messages published by this
// instance.
func (b *SyncBus) Origin() string { return b.origin }

// Publish delivers data to every subscriber before returning.
func (b *SyncBus) Publish(ctx context.Context, data string) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	msg := Message{Origin: b.origin, Data: data}
	for _, h := range handlers {
		h(msg)
	}
	return nil
}

// Subscribe installs h as a persistent handler. The returned function
// removes the handler and is safe to call more than once.
func (b *SyncBus) Subscribe(h Handler) (func(), error) {
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

// Close marks the bus closed. Close is idempotent.
func (b *SyncBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	clear(b.subs)
	return nil
}
