package immediate

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/immediate/pkg/bus"
)

// selectTier is the capability probe. It runs exactly once, synchronously,
// during construction, before any scheduling occurs; whichever tier it
// accepts stays bound for the scheduler's lifetime. Failing to detect a
// tier is a normal negative result, never an error — selection silently
// falls through to the next tier, ending at the timer tier which is always
// assumed available.
//
// forced (from the IMMEDIATE_TIER override) skips higher non-native tiers
// but cannot conjure an absent capability and cannot displace a native
// pair.
func selectTier(o *options, forced Tier, log *slog.Logger) Tier {
	if o.nativeSchedule != nil && o.nativeCancel != nil {
		return TierNative
	}

	if forced == TierTimer {
		return TierTimer
	}

	if o.pipeMaker != nil && (forced == TierUnknown || forced == TierPipe) {
		return TierPipe
	}

	if o.bus != nil && (forced == TierUnknown || forced == TierBroadcast) &&
		probeAsyncDelivery(o.bus, log) {
		return TierBroadcast
	}

	return TierTimer
}

// probeAsyncDelivery checks whether the bus delivers messages
// asynchronously with respect to Publish. A temporary listener is
// installed, one empty throwaway broadcast is sent, and the listener's
// state is inspected as soon as Publish returns: if it already fired,
// delivery happened in the same turn and the medium is unusable as an
// asynchronous trigger.
//
// The probe has an observable side effect (the throwaway broadcast reaches
// every other subscriber) and its detection is inherently timing-sensitive,
// so the result is best-effort. The temporary listener is always removed
// before returning; pre-existing listeners are untouched.
func probeAsyncDelivery(b bus.Bus, log *slog.Logger) bool {
	var fired atomic.Bool
	unsubscribe, err := b.Subscribe(func(bus.Message) {
		fired.Store(true)
	})
	if err != nil {
		return false
	}
	defer unsubscribe()

	if err := b.Publish(context.Background(), ""); err != nil {
		log.Debug("broadcast probe publish failed, tier rejected",
			slog.String("error", err.Error()))
		return false
	}

	if fired.Load() {
		log.Debug("broadcast medium delivers synchronously, tier rejected")
		return false
	}
	return true
}
