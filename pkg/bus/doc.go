// Package bus abstracts the host's shared broadcast medium: a single
// channel on which every subscriber sees every published message, the way
// unrelated code sharing one global message surface would.
//
// Because the medium is shared, consumers are expected to filter messages
// themselves — by Origin (which bus instance published it) and by whatever
// payload convention they use. The scheduler in the parent module relies on
// exactly that: it publishes a random per-process prefix concatenated with a
// task handle, and its single persistent listener drops anything whose
// origin or prefix does not match.
//
// Two in-process implementations are provided:
//
//   - MemoryBus delivers asynchronously through a dispatch goroutine, in
//     FIFO publish order. This is the medium suitable for scheduling.
//   - SyncBus delivers inside the Publish call itself, modelling hosts whose
//     broadcast fires same-turn. It exists mostly to exercise asynchrony
//     probes and is unsuitable as a scheduling trigger.
//
// RedisBus extends the medium across processes via Redis pub/sub, keeping
// the same origin/payload filtering contract. Its connection settings follow
// the usual env-tag convention:
//
//	cfg := bus.RedisConfig{} // or populate via github.com/caarlos0/env
//	b, err := bus.DialRedis(ctx, cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer b.Close()
//
// # Error Handling
//
// Package-level sentinel errors (ErrBusClosed, ErrBusOverflow, ...) can be
// checked with errors.Is.
package bus
