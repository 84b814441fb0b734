package immediate

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/immediate/pkg/bus"
)

// broadcastAdapter arms tasks by publishing the handle on a shared
// broadcast medium. A single persistent listener, installed once at
// construction, dispatches incoming messages back to the registry.
//
// The payload convention is <prefix><handle>, where prefix is random per
// scheduler. The prefix exists purely to reject unrelated traffic that
// happens to share the medium; it is an anti-collision measure, not a
// cryptographic one.
type broadcastAdapter struct {
	reg    *registry
	bus    bus.Bus
	prefix string
	log    *slog.Logger
}

// newBroadcastAdapter installs the persistent listener and returns the
// adapter together with the listener's unsubscribe function.
func newBroadcastAdapter(reg *registry, b bus.Bus, log *slog.Logger) (*broadcastAdapter, func(), error) {
	a := &broadcastAdapter{
		reg:    reg,
		bus:    b,
		prefix: uuid.New().String() + ":",
		log:    log,
	}

	unsubscribe, err := b.Subscribe(a.onMessage)
	if err != nil {
		return nil, nil, err
	}
	return a, unsubscribe, nil
}

// onMessage is the persistent listener. Foreign or forged messages are
// rejected silently: wrong origin, wrong prefix, or an unparseable handle
// suffix never runs a task and never raises.
func (a *broadcastAdapter) onMessage(m bus.Message) {
	if m.Origin != a.bus.Origin() {
		return
	}
	if !strings.HasPrefix(m.Data, a.prefix) {
		return
	}

	raw := strings.TrimPrefix(m.Data, a.prefix)
	h, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return
	}

	a.reg.runIfPresent(Handle(h))
}

func (a *broadcastAdapter) schedule(t task) Handle {
	h := a.reg.register(t)

	payload := a.prefix + strconv.FormatUint(uint64(h), 10)
	if err := a.bus.Publish(context.Background(), payload); err != nil {
		a.log.Error("broadcast arm failed, task stays pending",
			slog.Uint64("handle", uint64(h)),
			slog.String("error", err.Error()))
	}

	return h
}

func (a *broadcastAdapter) cancel(h Handle) {
	a.reg.remove(h)
}
