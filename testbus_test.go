package immediate

import (
	"context"
	"sync"

	"github.com/dmitrymomot/immediate/pkg/bus"
)

// gatedBus is a broadcast medium whose delivery the test controls: Publish
// only queues, Deliver flushes queued messages to the current handlers.
// That makes "cancel before the trigger fires" and "trigger fires twice"
// scenarios deterministic, which a real asynchronous medium cannot offer.
type gatedBus struct {
	mu        sync.Mutex
	origin    string
	queue     []bus.Message
	subs      map[uint64]bus.Handler
	nextID    uint64
	publishes int
}

func newGatedBus() *gatedBus {
	return &gatedBus{
		origin: "test-origin",
		subs:   make(map[uint64]bus.Handler),
	}
}

func (b *gatedBus) Origin() string { return b.origin }

func (b *gatedBus) Publish(ctx context.Context, data string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.publishes++
	b.queue = append(b.queue, bus.Message{Origin: b.origin, Data: data})
	return nil
}

func (b *gatedBus) Subscribe(h bus.Handler) (func(), error) {
	if h == nil {
		return nil, bus.ErrNilHandler
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

func (b *gatedBus) Close() error { return nil }

// Deliver flushes all queued messages to the current subscribers.
func (b *gatedBus) Deliver() {
	b.mu.Lock()
	pending := b.queue
	b.queue = nil
	handlers := make([]bus.Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, msg := range pending {
		for _, h := range handlers {
			h(msg)
		}
	}
}

// Inject hands a forged message straight to the current subscribers,
// bypassing Publish, as foreign code sharing the medium would.
func (b *gatedBus) Inject(msg bus.Message) {
	b.mu.Lock()
	handlers := make([]bus.Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
}

// PublishCount reports how many times Publish was called, probe traffic
// included.
func (b *gatedBus) PublishCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.publishes
}
